package model

// BankExport is the top-level JSON structure for question bank export.
type BankExport struct {
	Title         string `json:"title"`
	Lang          string `json:"lang"`
	WeekCount     int    `json:"week_count"`
	QuestionCount int    `json:"question_count"`
	Weeks         []Week `json:"weeks"`
}
