// Package session owns the mutable state of one study round: the built word
// set, the condition that built it, and per-word familiarity marks.
package session

import (
	"errors"
	"sync"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
)

var ErrInvalidFamiliarity = errors.New("familiarity must be known or unknown")

type State struct {
	mu          sync.Mutex
	words       []models.WordEntry
	condition   *models.SelectionCondition
	familiarity map[int]models.Familiarity
}

func NewState() *State {
	return &State{
		familiarity: make(map[int]models.Familiarity),
	}
}

// Build replaces the current word set and active condition in one step and
// returns a copy of the new set. Familiarity marks from earlier sets are
// kept; only Reset clears them.
func (s *State) Build(words []models.WordEntry, cond models.SelectionCondition) []models.WordEntry {
	copied := append([]models.WordEntry(nil), words...)
	stored := cond.Clone()

	s.mu.Lock()
	s.words = copied
	s.condition = &stored
	s.mu.Unlock()

	return append([]models.WordEntry(nil), copied...)
}

func (s *State) Words() []models.WordEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WordEntry(nil), s.words...)
}

func (s *State) Condition() (models.SelectionCondition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.condition == nil {
		return models.SelectionCondition{}, false
	}
	return s.condition.Clone(), true
}

// MarkFamiliarity upserts one mark. Unmarked is represented by absence and
// cannot be set here; use Reset to clear marks.
func (s *State) MarkFamiliarity(id int, value models.Familiarity) error {
	if value != models.FamiliarityKnown && value != models.FamiliarityUnknown {
		return ErrInvalidFamiliarity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.familiarity[id] = value
	return nil
}

func (s *State) FamiliarityOf(id int) models.Familiarity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value, ok := s.familiarity[id]; ok {
		return value
	}
	return models.FamiliarityUnmarked
}

func (s *State) Familiarity() map[int]models.Familiarity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]models.Familiarity, len(s.familiarity))
	for id, value := range s.familiarity {
		out[id] = value
	}
	return out
}

// Reset clears the word set, condition and familiarity marks together.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = nil
	s.condition = nil
	s.familiarity = make(map[int]models.Familiarity)
}
