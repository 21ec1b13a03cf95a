// Package appdata owns the persisted application document: users, quiz
// records and per-user settings. The document is read entirely into memory
// at startup and rewritten entirely on every mutation.
package appdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")

type ImportMode string

const (
	ImportReplace ImportMode = "replace"
	ImportMerge   ImportMode = "merge"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
)

type Store struct {
	mu   sync.Mutex
	path string
	data models.AppData
	log  *zap.Logger
}

// Open reads the document at path. A missing file seeds the default
// document; a malformed one is discarded and replaced with the default.
func Open(path string, log *zap.Logger) (*Store, error) {
	s := &Store{
		path: path,
		log:  log,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.data = defaultDocument()
		return s.flush()
	}
	if err != nil {
		return fmt.Errorf("failed to read app data: %w", err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn("app data malformed, resetting to default", zap.String("path", s.path), zap.Error(err))
		s.data = defaultDocument()
		return s.flush()
	}

	s.data = data
	return nil
}

func defaultDocument() models.AppData {
	return models.AppData{
		Users: []models.User{
			{
				Username:  defaultAdminUsername,
				Password:  defaultAdminPassword,
				IsAdmin:   true,
				CreatedAt: time.Now().UTC(),
			},
		},
		Records:      []models.QuizRecord{},
		UserSettings: []models.UserSettings{},
	}
}

// flush rewrites the whole document. Callers must hold s.mu.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal app data: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write app data: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace app data: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the in-memory document.
func (s *Store) Snapshot() models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

func (s *Store) User(ctx context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.Users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.data.Users))
	for _, u := range s.data.Users {
		out = append(out, u.Clone())
	}
	return out, nil
}

// SaveUser upserts by username.
func (s *Store) SaveUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.data.Users {
		if u.Username == user.Username {
			s.data.Users[i] = user.Clone()
			return s.flush()
		}
	}
	s.data.Users = append(s.data.Users, user.Clone())
	return s.flush()
}

func (s *Store) DeleteUser(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.data.Users {
		if u.Username == username {
			s.data.Users = append(s.data.Users[:i], s.data.Users[i+1:]...)
			return s.flush()
		}
	}
	return ErrNotFound
}

// AddRecord prepends, so the newest record comes first.
func (s *Store) AddRecord(ctx context.Context, rec models.QuizRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Records = append([]models.QuizRecord{rec.Clone()}, s.data.Records...)
	return s.flush()
}

// Records returns the records owned by username; an empty username returns
// everything.
func (s *Store) Records(ctx context.Context, username string) ([]models.QuizRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.QuizRecord, 0, len(s.data.Records))
	for _, r := range s.data.Records {
		if username == "" || r.Username == username {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

// ClearRecords deletes the records owned by username; an empty username
// deletes everything.
func (s *Store) ClearRecords(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if username == "" {
		s.data.Records = []models.QuizRecord{}
		return s.flush()
	}
	kept := make([]models.QuizRecord, 0, len(s.data.Records))
	for _, r := range s.data.Records {
		if r.Username != username {
			kept = append(kept, r)
		}
	}
	s.data.Records = kept
	return s.flush()
}

func (s *Store) Settings(ctx context.Context, username string) (models.UserSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.data.UserSettings {
		if st.Username == username {
			return st, nil
		}
	}
	return models.UserSettings{}, ErrNotFound
}

func (s *Store) UpsertSettings(ctx context.Context, settings models.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.data.UserSettings {
		if st.Username == settings.Username {
			s.data.UserSettings[i] = settings
			return s.flush()
		}
	}
	s.data.UserSettings = append(s.data.UserSettings, settings)
	return s.flush()
}

// Export serializes the whole document.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal app data: %w", err)
	}
	return raw, nil
}

// Import replaces or merges the document with an exported one. The payload
// is validated against the document schema first, so a malformed import
// never corrupts the store. Merge keys users and settings by username with
// incoming values winning, and prepends incoming records.
func (s *Store) Import(ctx context.Context, raw []byte, mode ImportMode) error {
	if err := validateDocument(raw); err != nil {
		return err
	}

	var incoming models.AppData
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return fmt.Errorf("failed to unmarshal app data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case ImportReplace:
		s.data = incoming
	case ImportMerge:
		s.data = models.AppData{
			Users:        mergeByKey(s.data.Users, incoming.Users, func(u models.User) string { return u.Username }),
			Records:      append(append([]models.QuizRecord{}, incoming.Records...), s.data.Records...),
			UserSettings: mergeByKey(s.data.UserSettings, incoming.UserSettings, func(st models.UserSettings) string { return st.Username }),
		}
	default:
		return fmt.Errorf("unknown import mode %q", mode)
	}

	return s.flush()
}

// mergeByKey keeps base order, replaces entries the incoming set also has,
// and appends the rest of the incoming set in its own order.
func mergeByKey[T any](base, incoming []T, key func(T) string) []T {
	out := append([]T(nil), base...)
	index := make(map[string]int, len(out))
	for i, item := range out {
		index[key(item)] = i
	}
	for _, item := range incoming {
		if i, ok := index[key(item)]; ok {
			out[i] = item
		} else {
			index[key(item)] = len(out)
			out = append(out, item)
		}
	}
	return out
}
