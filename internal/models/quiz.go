package models

import "time"

type QuizMode string

const (
	QuizModeEnToZh QuizMode = "enToZh"
	QuizModeZhToEn QuizMode = "zhToEn"
)

type QuizQuestion struct {
	WordID  int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Mode    QuizMode `json:"mode"`
}

type QuizSummary struct {
	Mode           QuizMode `json:"mode"`
	TotalQuestions int      `json:"totalQuestions"`
	CorrectCount   int      `json:"correctCount"`
	Accuracy       float64  `json:"accuracy"`
}

type QuizRecord struct {
	Username           string             `json:"username"`
	SessionID          string             `json:"sessionId"`
	CreatedAt          time.Time          `json:"createdAt"`
	SelectionCondition SelectionCondition `json:"selectionCondition"`
	WordCount          int                `json:"wordCount"`
	Quiz               QuizSummary        `json:"quiz"`
	WrongWords         []string           `json:"wrongWords"`
}

func (r QuizRecord) Clone() QuizRecord {
	out := r
	out.SelectionCondition = r.SelectionCondition.Clone()
	if r.WrongWords != nil {
		out.WrongWords = append([]string(nil), r.WrongWords...)
	}
	return out
}
