package store

import (
	"fmt"

	"github.com/quizview/quizview/internal/model"
)

// ExportBank builds an export-ready snapshot of the whole question bank.
func (s *Store) ExportBank(title, lang string) (*model.BankExport, error) {
	weeks, err := s.LoadBank()
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	questionCount := 0
	for _, w := range weeks {
		questionCount += len(w.Questions)
	}
	return &model.BankExport{
		Title:         title,
		Lang:          lang,
		WeekCount:     len(weeks),
		QuestionCount: questionCount,
		Weeks:         weeks,
	}, nil
}
