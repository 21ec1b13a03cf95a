package quiz

import (
	"math/rand"
	"testing"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), zap.NewNop())
}

func word(id int, text, meaning string) models.WordEntry {
	return models.WordEntry{
		ID:   id,
		Word: text,
		PosList: []models.WordDefinition{
			{Pos: "n.", MeaningZh: meaning},
		},
	}
}

func TestGeneratorQuestions(t *testing.T) {
	t.Parallel()

	subset := []models.WordEntry{
		word(1, "abandon", "放棄"),
		word(2, "benefit", "利益"),
		word(3, "candidate", "候選人"),
		word(4, "debate", "辯論"),
		word(5, "effort", "努力"),
	}

	for seed := int64(0); seed < 20; seed++ {
		gen := newTestGenerator(seed)
		questions := gen.Questions(subset, models.QuizModeEnToZh)

		require.Len(t, questions, len(subset))

		seen := make(map[int]bool)
		for _, q := range questions {
			assert.False(t, seen[q.WordID], "word %d generated twice", q.WordID)
			seen[q.WordID] = true

			assert.Len(t, q.Options, 4)

			count := 0
			unique := make(map[string]bool)
			for _, opt := range q.Options {
				unique[opt] = true
				if opt == q.Answer {
					count++
				}
			}
			assert.Equal(t, 1, count, "answer must appear exactly once")
			assert.Len(t, unique, len(q.Options), "options must be distinct")
		}
	}
}

func TestGeneratorQuestionsModes(t *testing.T) {
	t.Parallel()

	subset := []models.WordEntry{word(1, "abandon", "放棄")}

	t.Run("enToZh prompts with the word", func(t *testing.T) {
		t.Parallel()

		questions := newTestGenerator(1).Questions(subset, models.QuizModeEnToZh)
		require.Len(t, questions, 1)
		assert.Equal(t, "abandon", questions[0].Prompt)
		assert.Equal(t, "放棄", questions[0].Answer)
	})

	t.Run("zhToEn prompts with the meaning", func(t *testing.T) {
		t.Parallel()

		questions := newTestGenerator(1).Questions(subset, models.QuizModeZhToEn)
		require.Len(t, questions, 1)
		assert.Equal(t, "放棄", questions[0].Prompt)
		assert.Equal(t, "abandon", questions[0].Answer)
	})

	t.Run("missing meaning falls back to the word text", func(t *testing.T) {
		t.Parallel()

		questions := newTestGenerator(1).Questions([]models.WordEntry{{ID: 1, Word: "bare"}}, models.QuizModeEnToZh)
		require.Len(t, questions, 1)
		assert.Equal(t, "bare", questions[0].Answer)
	})
}

func TestGeneratorQuestionsSmallSubsets(t *testing.T) {
	t.Parallel()

	t.Run("empty subset yields no questions", func(t *testing.T) {
		t.Parallel()

		questions := newTestGenerator(1).Questions(nil, models.QuizModeEnToZh)
		assert.Empty(t, questions)
	})

	t.Run("single word yields one question with only the answer", func(t *testing.T) {
		t.Parallel()

		questions := newTestGenerator(1).Questions([]models.WordEntry{word(1, "abandon", "放棄")}, models.QuizModeEnToZh)
		require.Len(t, questions, 1)
		assert.Equal(t, []string{"放棄"}, questions[0].Options)
	})

	t.Run("three words yield three options", func(t *testing.T) {
		t.Parallel()

		subset := []models.WordEntry{
			word(1, "abandon", "放棄"),
			word(2, "benefit", "利益"),
			word(3, "candidate", "候選人"),
		}
		questions := newTestGenerator(1).Questions(subset, models.QuizModeEnToZh)
		require.Len(t, questions, 3)
		for _, q := range questions {
			assert.Len(t, q.Options, 3)
		}
	})
}

func TestGeneratorSkipsCollidingDistractors(t *testing.T) {
	t.Parallel()

	// Two words share a rendered meaning; it must never show up twice.
	subset := []models.WordEntry{
		word(1, "glad", "高興的"),
		word(2, "happy", "高興的"),
		word(3, "candidate", "候選人"),
		word(4, "debate", "辯論"),
	}

	for seed := int64(0); seed < 50; seed++ {
		questions := newTestGenerator(seed).Questions(subset, models.QuizModeEnToZh)
		for _, q := range questions {
			unique := make(map[string]bool)
			for _, opt := range q.Options {
				assert.False(t, unique[opt], "duplicate option %q (seed %d)", opt, seed)
				unique[opt] = true
			}
		}
	}
}

func TestGeneratorDoesNotMutateSubset(t *testing.T) {
	t.Parallel()

	subset := []models.WordEntry{
		word(1, "abandon", "放棄"),
		word(2, "benefit", "利益"),
		word(3, "candidate", "候選人"),
	}
	newTestGenerator(7).Questions(subset, models.QuizModeEnToZh)

	assert.Equal(t, 1, subset[0].ID)
	assert.Equal(t, 2, subset[1].ID)
	assert.Equal(t, 3, subset[2].ID)
}
