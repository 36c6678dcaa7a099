package model

import "strings"

// ViewMode selects how questions are presented on the page.
type ViewMode string

const (
	// ModeList shows every question in document order, grouped by week.
	ModeList ViewMode = "list"
	// ModeSingle shows one question at a time with manual navigation.
	ModeSingle ViewMode = "single"
	// ModeExam is one-at-a-time browsing with exam styling. Navigation
	// mechanics are identical to ModeSingle.
	ModeExam ViewMode = "exam"
)

// ParseViewMode maps a mode string (e.g. from a data-mode attribute) to a
// ViewMode. The second return is false for unknown values.
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeList:
		return ModeList, true
	case ModeSingle:
		return ModeSingle, true
	case ModeExam:
		return ModeExam, true
	}
	return "", false
}

// Option is one answer choice of a multiple-choice question.
type Option struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Position   int    `json:"position"`
	Text       string `json:"text"`
	Correct    bool   `json:"correct"`
}

// Question is a multiple-choice question with its explanation.
type Question struct {
	ID          int64    `json:"id"`
	WeekID      int64    `json:"week_id"`
	Position    int      `json:"position"`
	Text        string   `json:"text"`
	Explanation string   `json:"explanation"`
	Options     []Option `json:"options"`
}

// Week groups questions into one weekly section of the page.
type Week struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// PageConfig holds runtime page parameters set via CLI flags.
type PageConfig struct {
	Lang        string // UI language tag (tr, en)
	MaxAttempts int    // wrong answers allowed before a question is exhausted
	BasePath    string // URL prefix for sub-path deployments (e.g. "/quiz")
}

// OptionImport is one answer choice in a questions JSON file.
type OptionImport struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// QuestionImport is used for loading questions from JSON.
type QuestionImport struct {
	Text        string         `json:"text"`
	Explanation string         `json:"explanation"`
	Options     []OptionImport `json:"options"`
}

// WeekImport is one weekly section in a questions JSON file.
type WeekImport struct {
	Week      int              `json:"week"`
	Title     string           `json:"title"`
	Questions []QuestionImport `json:"questions"`
}
