package api

import (
	"errors"
	"net/http"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/service"
	"go.uber.org/zap"
)

type quizQuestionsRequest struct {
	Mode models.QuizMode `json:"mode"`
}

// POST /quiz/questions
func (h *Handler) quizQuestions(w http.ResponseWriter, r *http.Request) {
	var req quizQuestionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Mode != models.QuizModeEnToZh && req.Mode != models.QuizModeZhToEn {
		respondError(w, http.StatusBadRequest, "mode must be enToZh or zhToEn")
		return
	}

	questions, err := h.services.Questions(req.Mode)
	if errors.Is(err, service.ErrEmptySession) {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate quiz")
		return
	}

	respondJSON(w, http.StatusOK, questions)
}

type submitResultRequest struct {
	Mode           models.QuizMode `json:"mode"`
	TotalQuestions int             `json:"totalQuestions"`
	CorrectCount   int             `json:"correctCount"`
	WrongWords     []string        `json:"wrongWords"`
}

// POST /quiz/results
func (h *Handler) submitQuizResult(w http.ResponseWriter, r *http.Request) {
	var req submitResultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.TotalQuestions < 0 || req.CorrectCount < 0 || req.CorrectCount > req.TotalQuestions {
		respondError(w, http.StatusBadRequest, "inconsistent question counts")
		return
	}

	username := claimsFrom(r).Username
	rec, err := h.services.SubmitResult(r.Context(), service.QuizResult{
		Username:       username,
		Mode:           req.Mode,
		TotalQuestions: req.TotalQuestions,
		CorrectCount:   req.CorrectCount,
		WrongWords:     req.WrongWords,
	})
	if err != nil {
		h.log.Error("failed to store quiz result", zap.String("username", username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to store result")
		return
	}

	respondJSON(w, http.StatusCreated, rec)
}
