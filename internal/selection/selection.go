// Package selection filters the word catalog by a selection condition and
// caps the result. All functions are pure: catalog order is preserved and the
// input slice is never mutated.
package selection

import (
	"strings"
	"unicode"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
)

// Apply filters the catalog by cond and truncates the result to the first
// maxCount entries. maxCount <= 0 means no cap. An empty result is a valid
// outcome, not an error.
func Apply(catalog []models.WordEntry, cond models.SelectionCondition, maxCount int) []models.WordEntry {
	filtered := Filter(catalog, cond)
	if maxCount > 0 && len(filtered) > maxCount {
		filtered = filtered[:maxCount]
	}
	return filtered
}

// Filter returns the subsequence of the catalog matching cond. Malformed
// payloads degrade per variant: missing bounds widen to the full range,
// a missing page or frequency level selects everything, an empty custom
// list selects nothing. An unrecognized type selects everything.
func Filter(catalog []models.WordEntry, cond models.SelectionCondition) []models.WordEntry {
	switch cond.Type {
	case models.SelectionPageRange:
		start, end := 1, 999
		if cond.Pages != nil {
			start, end = cond.Pages[0], cond.Pages[1]
		}
		return keep(catalog, func(w models.WordEntry) bool {
			return w.Page >= start && w.Page <= end
		})
	case models.SelectionSinglePage:
		if cond.Pages == nil || cond.Pages[0] == 0 {
			return keep(catalog, nil)
		}
		page := cond.Pages[0]
		return keep(catalog, func(w models.WordEntry) bool {
			return w.Page == page
		})
	case models.SelectionFrequency:
		if cond.FrequencyGroup == nil {
			return keep(catalog, nil)
		}
		level := *cond.FrequencyGroup
		return keep(catalog, func(w models.WordEntry) bool {
			for _, g := range w.FrequencyGroup {
				if g == level {
					return true
				}
			}
			return false
		})
	case models.SelectionAlphabet:
		from, to := "a", "z"
		if cond.AlphabetRange != nil {
			from = strings.ToLower(cond.AlphabetRange[0])
			to = strings.ToLower(cond.AlphabetRange[1])
		}
		return keep(catalog, func(w models.WordEntry) bool {
			first := firstLetter(w.Word)
			return first != "" && first >= from && first <= to
		})
	case models.SelectionCustomList:
		wanted := make(map[string]struct{}, len(cond.CustomWords))
		for _, w := range cond.CustomWords {
			wanted[strings.ToLower(w)] = struct{}{}
		}
		return keep(catalog, func(w models.WordEntry) bool {
			_, ok := wanted[strings.ToLower(w.Word)]
			return ok
		})
	default:
		return keep(catalog, nil)
	}
}

// keep copies the entries matching pred; a nil pred matches everything.
func keep(catalog []models.WordEntry, pred func(models.WordEntry) bool) []models.WordEntry {
	out := make([]models.WordEntry, 0, len(catalog))
	for _, w := range catalog {
		if pred == nil || pred(w) {
			out = append(out, w)
		}
	}
	return out
}

func firstLetter(word string) string {
	for _, r := range word {
		return string(unicode.ToLower(r))
	}
	return ""
}
