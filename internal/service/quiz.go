package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/quiz"
	"github.com/hsiaochiang/ExamWordPrep/internal/session"
	"go.uber.org/zap"
)

var ErrEmptySession = errors.New("no session word set built")

type QuizRI interface {
	AddRecord(ctx context.Context, rec models.QuizRecord) error
}

// QuizResult is what the caller reports after finishing a quiz.
type QuizResult struct {
	Username       string          `json:"username"`
	Mode           models.QuizMode `json:"mode"`
	TotalQuestions int             `json:"totalQuestions"`
	CorrectCount   int             `json:"correctCount"`
	WrongWords     []string        `json:"wrongWords"`
}

type QuizS struct {
	gen   *quiz.Generator
	state *session.State
	repo  QuizRI
	log   *zap.Logger
}

func NewQuizService(gen *quiz.Generator, state *session.State, repo QuizRI, log *zap.Logger) *QuizS {
	return &QuizS{
		gen:   gen,
		state: state,
		repo:  repo,
		log:   log,
	}
}

// Questions generates a fresh quiz over the active session word set.
func (q *QuizS) Questions(mode models.QuizMode) ([]models.QuizQuestion, error) {
	words := q.state.Words()
	if len(words) == 0 {
		return nil, ErrEmptySession
	}
	return q.gen.Questions(words, mode), nil
}

// SubmitResult freezes one finished quiz into a record and appends it to the
// history. Wrong words are deduplicated and accuracy is derived here, so the
// stored record always honors its invariants.
func (q *QuizS) SubmitResult(ctx context.Context, result QuizResult) (models.QuizRecord, error) {
	cond, ok := q.state.Condition()
	if !ok {
		cond = models.SelectionCondition{Type: models.SelectionPageRange, Pages: &[2]int{1, 1}}
	}

	accuracy := 0.0
	if result.TotalQuestions > 0 {
		accuracy = float64(result.CorrectCount) / float64(result.TotalQuestions)
	}

	rec := models.QuizRecord{
		Username:           result.Username,
		SessionID:          fmt.Sprintf("%s-%s", result.Username, uuid.NewString()[:8]),
		CreatedAt:          time.Now().UTC(),
		SelectionCondition: cond,
		WordCount:          len(q.state.Words()),
		Quiz: models.QuizSummary{
			Mode:           result.Mode,
			TotalQuestions: result.TotalQuestions,
			CorrectCount:   result.CorrectCount,
			Accuracy:       accuracy,
		},
		WrongWords: dedupe(result.WrongWords),
	}

	if err := q.repo.AddRecord(ctx, rec); err != nil {
		q.log.Error("failed to save quiz record", zap.String("username", result.Username), zap.Error(err))
		return models.QuizRecord{}, err
	}

	return rec, nil
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
