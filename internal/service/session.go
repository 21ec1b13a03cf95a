package service

import (
	"context"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/selection"
	"github.com/hsiaochiang/ExamWordPrep/internal/session"
	"go.uber.org/zap"
)

type SettingsReaderI interface {
	Settings(ctx context.Context, username string) (models.UserSettings, error)
}

// SessionS owns the catalog and the active study round.
type SessionS struct {
	catalog []models.WordEntry
	state   *session.State
	repo    SettingsReaderI
	log     *zap.Logger
}

func NewSessionService(catalog []models.WordEntry, state *session.State, repo SettingsReaderI, log *zap.Logger) *SessionS {
	return &SessionS{
		catalog: catalog,
		state:   state,
		repo:    repo,
		log:     log,
	}
}

// BuildSession filters the catalog by cond, caps the result and replaces the
// active word set. maxCount <= 0 falls back to the user's configured
// per-session maximum. An empty result is returned as-is so the caller can
// surface "no matches".
func (s *SessionS) BuildSession(ctx context.Context, username string, cond models.SelectionCondition, maxCount int) []models.WordEntry {
	if maxCount <= 0 {
		settings, err := s.repo.Settings(ctx, username)
		if err != nil {
			settings = models.DefaultSettings(username)
		}
		maxCount = settings.MaxWordsPerSession
	}

	chosen := selection.Apply(s.catalog, cond, maxCount)
	return s.state.Build(chosen, cond)
}

func (s *SessionS) MarkFamiliarity(id int, value models.Familiarity) error {
	return s.state.MarkFamiliarity(id, value)
}

func (s *SessionS) ResetSession() {
	s.state.Reset()
}

func (s *SessionS) SessionWords() []models.WordEntry {
	return s.state.Words()
}

func (s *SessionS) Selection() (models.SelectionCondition, bool) {
	return s.state.Condition()
}

func (s *SessionS) Familiarity() map[int]models.Familiarity {
	return s.state.Familiarity()
}

func (s *SessionS) Catalog() []models.WordEntry {
	return append([]models.WordEntry(nil), s.catalog...)
}
