package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/session"
	mock_service "github.com/hsiaochiang/ExamWordPrep/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sessionCatalog() []models.WordEntry {
	return []models.WordEntry{
		{ID: 1, Word: "abandon", Page: 1},
		{ID: 2, Word: "benefit", Page: 1},
		{ID: 3, Word: "candidate", Page: 1},
		{ID: 4, Word: "debate", Page: 2},
	}
}

func newSessionServiceMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *SessionS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	return NewSessionService(sessionCatalog(), session.NewState(), repo, zap.NewNop())
}

func TestSessionS_BuildSession(t *testing.T) {
	t.Parallel()

	cond := models.SelectionCondition{Type: models.SelectionPageRange, Pages: &[2]int{1, 1}}

	t.Run("explicit max count wins", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newSessionServiceMock(ctrl, nil)

		words := svc.BuildSession(context.Background(), "mei", cond, 2)
		assert.Len(t, words, 2)
		assert.Equal(t, words, svc.SessionWords())
	})

	t.Run("falls back to the user's configured maximum", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settings := models.DefaultSettings("mei")
		settings.MaxWordsPerSession = 10
		svc := newSessionServiceMock(ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().Settings(gomock.Any(), "mei").Return(settings, nil)
		})

		words := svc.BuildSession(context.Background(), "mei", cond, 0)
		assert.Len(t, words, 3)
	})

	t.Run("defaults when the user never saved settings", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newSessionServiceMock(ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().Settings(gomock.Any(), "mei").Return(models.UserSettings{}, errNotFound)
		})

		words := svc.BuildSession(context.Background(), "mei", cond, 0)
		assert.Len(t, words, 3)
	})

	t.Run("empty result is a valid outcome", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := newSessionServiceMock(ctrl, nil)

		none := models.SelectionCondition{Type: models.SelectionCustomList}
		words := svc.BuildSession(context.Background(), "mei", none, 5)
		assert.Empty(t, words)

		stored, ok := svc.Selection()
		require.True(t, ok)
		assert.Equal(t, models.SelectionCustomList, stored.Type)
	})
}

func TestSessionS_ResetSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, nil)

	cond := models.SelectionCondition{Type: models.SelectionPageRange}
	svc.BuildSession(context.Background(), "mei", cond, 3)
	require.NoError(t, svc.MarkFamiliarity(1, models.FamiliarityKnown))

	svc.ResetSession()

	assert.Empty(t, svc.SessionWords())
	assert.Empty(t, svc.Familiarity())
	_, ok := svc.Selection()
	assert.False(t, ok)
}
