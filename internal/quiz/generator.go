// Package quiz turns a session word set into randomized multiple-choice
// questions. Every word in the subset becomes exactly one question.
package quiz

import (
	"math/rand"
	"time"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"go.uber.org/zap"
)

const maxDistractors = 3

type Generator struct {
	rnd *rand.Rand
	log *zap.Logger
}

// NewGenerator builds a Generator around the given random source. A nil rnd
// gets a time-seeded source; tests pass a fixed seed instead.
func NewGenerator(rnd *rand.Rand, log *zap.Logger) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		rnd: rnd,
		log: log,
	}
}

// Questions generates one question per word in subset, in freshly shuffled
// order. An empty subset yields no questions; a subset smaller than four
// words yields questions with fewer than four options.
func (g *Generator) Questions(subset []models.WordEntry, mode models.QuizMode) []models.QuizQuestion {
	if len(subset) == 0 {
		return []models.QuizQuestion{}
	}

	order := make([]models.WordEntry, len(subset))
	copy(order, subset)
	g.rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	questions := make([]models.QuizQuestion, 0, len(order))
	for _, w := range order {
		prompt, answer := promptAndAnswer(w, mode)
		options := append([]string{answer}, g.distractors(subset, w, mode, answer)...)
		g.rnd.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, models.QuizQuestion{
			WordID:  w.ID,
			Prompt:  prompt,
			Options: options,
			Answer:  answer,
			Mode:    mode,
		})
	}

	return questions
}

// distractors samples up to three wrong options from the subset without
// replacement. A candidate whose rendered text collides with the correct
// answer or an already-picked option is skipped, so tiny subsets or shared
// meanings can legitimately yield fewer than three.
func (g *Generator) distractors(subset []models.WordEntry, target models.WordEntry, mode models.QuizMode, answer string) []string {
	pool := make([]models.WordEntry, 0, len(subset))
	for _, w := range subset {
		if w.ID != target.ID {
			pool = append(pool, w)
		}
	}
	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	used := map[string]bool{answer: true}
	picked := make([]string, 0, maxDistractors)
	for _, w := range pool {
		if len(picked) == maxDistractors {
			break
		}
		_, text := promptAndAnswer(w, mode)
		if used[text] {
			continue
		}
		used[text] = true
		picked = append(picked, text)
	}

	return picked
}

// promptAndAnswer renders one word for the given quiz direction. The meaning
// side falls back to the word text itself when no meaning is recorded.
func promptAndAnswer(w models.WordEntry, mode models.QuizMode) (prompt, answer string) {
	meaning := w.MeaningDisplay()
	if meaning == "" {
		meaning = w.Word
	}
	if mode == models.QuizModeEnToZh {
		return w.Word, meaning
	}
	return meaning, w.Word
}
