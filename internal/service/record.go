package service

import (
	"context"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/record"
	"go.uber.org/zap"
)

type RecordRI interface {
	Records(ctx context.Context, username string) ([]models.QuizRecord, error)
	ClearRecords(ctx context.Context, username string) error
}

type RecordS struct {
	repo RecordRI
	log  *zap.Logger
}

func NewRecordService(repo RecordRI, log *zap.Logger) *RecordS {
	return &RecordS{
		repo: repo,
		log:  log,
	}
}

// History returns the user's records, newest first.
func (r *RecordS) History(ctx context.Context, username string) ([]models.QuizRecord, error) {
	return r.repo.Records(ctx, username)
}

// WrongWordFrequency aggregates the user's most-missed words.
func (r *RecordS) WrongWordFrequency(ctx context.Context, username string) ([]record.WordCount, error) {
	records, err := r.repo.Records(ctx, username)
	if err != nil {
		return nil, err
	}
	return record.WrongWordFrequency(records), nil
}

// ResetRecords deletes a user's history; an empty username wipes everyone's.
func (r *RecordS) ResetRecords(ctx context.Context, username string) error {
	if err := r.repo.ClearRecords(ctx, username); err != nil {
		r.log.Error("failed to clear records", zap.String("username", username), zap.Error(err))
		return err
	}
	return nil
}
