package service

import (
	"context"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/pkg/validator"
	"go.uber.org/zap"
)

type SettingsRI interface {
	Settings(ctx context.Context, username string) (models.UserSettings, error)
	UpsertSettings(ctx context.Context, settings models.UserSettings) error
}

type SettingsS struct {
	repo SettingsRI
	log  *zap.Logger
}

func NewSettingsService(repo SettingsRI, log *zap.Logger) *SettingsS {
	return &SettingsS{
		repo: repo,
		log:  log,
	}
}

// Settings returns the user's saved settings, or the defaults when none
// were ever saved.
func (s *SettingsS) Settings(ctx context.Context, username string) models.UserSettings {
	settings, err := s.repo.Settings(ctx, username)
	if err != nil {
		return models.DefaultSettings(username)
	}
	return settings
}

// UpsertSettings validates the bounds (session size 10-50, TTS interval
// 1-5s) before persisting.
func (s *SettingsS) UpsertSettings(ctx context.Context, settings models.UserSettings) error {
	if err := validator.ValidateStruct(settings); err != nil {
		return err
	}
	return s.repo.UpsertSettings(ctx, settings)
}
