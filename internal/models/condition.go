package models

type SelectionType string

const (
	SelectionPageRange  SelectionType = "pageRange"
	SelectionSinglePage SelectionType = "singlePage"
	SelectionFrequency  SelectionType = "frequency"
	SelectionAlphabet   SelectionType = "alphabet"
	SelectionCustomList SelectionType = "customList"
)

// SelectionCondition is a tagged variant: Type decides which payload field is
// read, the others stay nil. Filter sites switch on Type exhaustively.
type SelectionCondition struct {
	Type           SelectionType `json:"type"`
	Pages          *[2]int       `json:"pages,omitempty"`
	FrequencyGroup *int          `json:"frequencyGroup,omitempty"`
	AlphabetRange  *[2]string    `json:"alphabetRange,omitempty"`
	CustomWords    []string      `json:"customWords,omitempty"`
}

// Clone returns a deep copy, detaching the payload pointers.
func (c SelectionCondition) Clone() SelectionCondition {
	out := c
	if c.Pages != nil {
		pages := *c.Pages
		out.Pages = &pages
	}
	if c.FrequencyGroup != nil {
		level := *c.FrequencyGroup
		out.FrequencyGroup = &level
	}
	if c.AlphabetRange != nil {
		alphabet := *c.AlphabetRange
		out.AlphabetRange = &alphabet
	}
	if c.CustomWords != nil {
		out.CustomWords = append([]string(nil), c.CustomWords...)
	}
	return out
}
