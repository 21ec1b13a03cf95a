package models

import "strings"

type WordDefinition struct {
	Pos       string `json:"pos"`
	MeaningZh string `json:"meaningZh"`
}

type WordEntry struct {
	ID             int              `json:"id"`
	Word           string           `json:"word"`
	PosList        []WordDefinition `json:"posList"`
	FrequencyGroup []int            `json:"frequencyGroup"`
	FrequencyCount int              `json:"frequencyCount"`
	Page           int              `json:"page"`
	NeedsReview    bool             `json:"needsReview"`
	Status         string           `json:"status"`
}

// MeaningDisplay joins all recorded meanings into one display string.
func (w WordEntry) MeaningDisplay() string {
	if len(w.PosList) == 0 {
		return ""
	}
	parts := make([]string, 0, len(w.PosList))
	for _, def := range w.PosList {
		parts = append(parts, def.MeaningZh)
	}
	return strings.Join(parts, "；")
}

// PosDisplay joins all parts of speech into one display string.
func (w WordEntry) PosDisplay() string {
	if len(w.PosList) == 0 {
		return ""
	}
	parts := make([]string, 0, len(w.PosList))
	for _, def := range w.PosList {
		parts = append(parts, def.Pos)
	}
	return strings.Join(parts, "、")
}

type Familiarity string

const (
	FamiliarityUnmarked Familiarity = "unmarked"
	FamiliarityKnown    Familiarity = "known"
	FamiliarityUnknown  Familiarity = "unknown"
)
