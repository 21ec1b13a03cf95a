package service

import (
	"time"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/quiz"
	"github.com/hsiaochiang/ExamWordPrep/internal/session"
	"go.uber.org/zap"
)

type RepositoryI interface {
	AuthRI
	UserRI
	QuizRI
	RecordRI
	SettingsRI
}

type Service struct {
	*AuthS
	*SessionS
	*QuizS
	*RecordS
	*SettingsS
	*UserS
}

// InitServices wires all services around one shared session state and the
// whole-document repository.
func InitServices(catalog []models.WordEntry, repo RepositoryI, gen *quiz.Generator, jwtSecret string, tokenTTL time.Duration, log *zap.Logger) *Service {
	state := session.NewState()

	return &Service{
		AuthS:     NewAuthService(repo, jwtSecret, tokenTTL, log),
		SessionS:  NewSessionService(catalog, state, repo, log),
		QuizS:     NewQuizService(gen, state, repo, log),
		RecordS:   NewRecordService(repo, log),
		SettingsS: NewSettingsService(repo, log),
		UserS:     NewUserService(repo, log),
	}
}
