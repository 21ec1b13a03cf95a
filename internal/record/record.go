// Package record derives review statistics from persisted quiz records.
// Everything here is pure and read-only; callers filter records by user
// before aggregating.
package record

import (
	"math"
	"sort"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WrongWordFrequency counts how many records each distinct wrong word
// appears in, sorted by count descending. Ties keep first-encounter order
// across the records.
func WrongWordFrequency(records []models.QuizRecord) []WordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, r := range records {
		for _, w := range r.WrongWords {
			if _, seen := counts[w]; !seen {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	out := make([]WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}

// AccuracyPercent rounds a record's accuracy to a whole percentage.
func AccuracyPercent(r models.QuizRecord) int {
	return int(math.Round(r.Quiz.Accuracy * 100))
}
