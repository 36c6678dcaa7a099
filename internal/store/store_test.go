package store

import (
	"database/sql"
	"testing"

	"github.com/quizview/quizview/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func insertTestQuestion(t *testing.T, s *Store, weekID int64, text string, correctIdx int) int64 {
	t.Helper()
	opts := []model.Option{
		{Text: "A"},
		{Text: "B"},
		{Text: "C"},
	}
	opts[correctIdx].Correct = true
	id, err := s.InsertQuestion(model.Question{
		WeekID:      weekID,
		Text:        text,
		Explanation: "because " + text,
		Options:     opts,
	})
	if err != nil {
		t.Fatalf("insertTestQuestion: %v", err)
	}
	return id
}

func TestUpsertWeek(t *testing.T) {
	s := newTestStore(t)

	id1, err := s.UpsertWeek(1, "Birinci Hafta")
	if err != nil {
		t.Fatalf("UpsertWeek: %v", err)
	}

	// Same number returns the same week.
	id2, err := s.UpsertWeek(1, "")
	if err != nil {
		t.Fatalf("UpsertWeek repeat: %v", err)
	}
	if id1 != id2 {
		t.Errorf("expected same week ID, got %d and %d", id1, id2)
	}

	w, err := s.GetWeek(1)
	if err != nil {
		t.Fatalf("GetWeek: %v", err)
	}
	if w.Title != "Birinci Hafta" {
		t.Errorf("empty title must not overwrite, got %q", w.Title)
	}

	// Non-empty title updates.
	if _, err := s.UpsertWeek(1, "Hafta 1"); err != nil {
		t.Fatalf("UpsertWeek update: %v", err)
	}
	w, _ = s.GetWeek(1)
	if w.Title != "Hafta 1" {
		t.Errorf("expected updated title, got %q", w.Title)
	}

	// Missing week.
	if _, err := s.GetWeek(99); err != sql.ErrNoRows {
		t.Errorf("expected ErrNoRows, got %v", err)
	}
}

func TestQuestionsAndOptions(t *testing.T) {
	s := newTestStore(t)

	wID, err := s.UpsertWeek(1, "Hafta 1")
	if err != nil {
		t.Fatalf("UpsertWeek: %v", err)
	}
	insertTestQuestion(t, s, wID, "Q1", 0)
	insertTestQuestion(t, s, wID, "Q2", 2)

	qs, err := s.ListQuestions(wID)
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Text != "Q1" || qs[1].Text != "Q2" {
		t.Errorf("unexpected order: %q, %q", qs[0].Text, qs[1].Text)
	}
	if len(qs[0].Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(qs[0].Options))
	}
	if !qs[0].Options[0].Correct || qs[0].Options[1].Correct {
		t.Error("correct flag not preserved on first question")
	}
	if !qs[1].Options[2].Correct {
		t.Error("correct flag not preserved on second question")
	}
	if qs[0].Explanation != "because Q1" {
		t.Errorf("explanation = %q", qs[0].Explanation)
	}
}

func TestLoadBankAndCounts(t *testing.T) {
	s := newTestStore(t)

	// Empty bank.
	weeks, err := s.LoadBank()
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if len(weeks) != 0 {
		t.Fatalf("expected empty bank, got %d weeks", len(weeks))
	}

	w1, _ := s.UpsertWeek(2, "Hafta 2")
	w2, _ := s.UpsertWeek(1, "Hafta 1")
	insertTestQuestion(t, s, w1, "Q-a", 0)
	insertTestQuestion(t, s, w2, "Q-b", 1)
	insertTestQuestion(t, s, w2, "Q-c", 1)

	weeks, err = s.LoadBank()
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}
	// Ordered by week number, not insertion order.
	if weeks[0].Number != 1 || weeks[1].Number != 2 {
		t.Errorf("weeks out of order: %d, %d", weeks[0].Number, weeks[1].Number)
	}
	if len(weeks[0].Questions) != 2 || len(weeks[1].Questions) != 1 {
		t.Errorf("question distribution wrong: %d, %d",
			len(weeks[0].Questions), len(weeks[1].Questions))
	}

	qc, err := s.QuestionCount()
	if err != nil {
		t.Fatalf("QuestionCount: %v", err)
	}
	if qc != 3 {
		t.Errorf("expected 3 questions, got %d", qc)
	}
	wc, err := s.WeekCount()
	if err != nil {
		t.Fatalf("WeekCount: %v", err)
	}
	if wc != 2 {
		t.Errorf("expected 2 weeks, got %d", wc)
	}
}

func TestImportedFileHash(t *testing.T) {
	s := newTestStore(t)

	// Missing file returns empty string.
	hash, err := s.GetImportedFileHash("/some/path.json")
	if err != nil {
		t.Fatalf("GetImportedFileHash: %v", err)
	}
	if hash != "" {
		t.Errorf("expected empty hash, got %q", hash)
	}

	if err := s.SetImportedFileHash("/some/path.json", "abc123"); err != nil {
		t.Fatalf("SetImportedFileHash: %v", err)
	}
	hash, err = s.GetImportedFileHash("/some/path.json")
	if err != nil {
		t.Fatalf("GetImportedFileHash: %v", err)
	}
	if hash != "abc123" {
		t.Errorf("expected 'abc123', got %q", hash)
	}

	// Update existing.
	if err := s.SetImportedFileHash("/some/path.json", "def456"); err != nil {
		t.Fatalf("SetImportedFileHash update: %v", err)
	}
	hash, _ = s.GetImportedFileHash("/some/path.json")
	if hash != "def456" {
		t.Errorf("expected 'def456', got %q", hash)
	}
}

func TestExportBank(t *testing.T) {
	s := newTestStore(t)

	wID, _ := s.UpsertWeek(1, "Hafta 1")
	insertTestQuestion(t, s, wID, "Q1", 0)
	insertTestQuestion(t, s, wID, "Q2", 1)

	export, err := s.ExportBank("Vize Hazırlık", "tr")
	if err != nil {
		t.Fatalf("ExportBank: %v", err)
	}
	if export.Title != "Vize Hazırlık" || export.Lang != "tr" {
		t.Errorf("metadata wrong: %+v", export)
	}
	if export.WeekCount != 1 || export.QuestionCount != 2 {
		t.Errorf("counts wrong: weeks=%d questions=%d", export.WeekCount, export.QuestionCount)
	}
	if len(export.Weeks) != 1 || len(export.Weeks[0].Questions) != 2 {
		t.Error("nested bank content missing")
	}
}
