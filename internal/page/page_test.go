package page

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
	appI18n "github.com/quizview/quizview/internal/i18n"
	"github.com/quizview/quizview/internal/model"
)

func testCtx(t *testing.T, lang string) context.Context {
	t.Helper()
	if err := appI18n.Init(lang); err != nil {
		t.Fatalf("i18n init: %v", err)
	}
	return appI18n.WithLocalizer(context.Background(), appI18n.NewLocalizer(lang))
}

func bank() []model.Week {
	return []model.Week{
		{
			Number: 1,
			Title:  "Giriş",
			Questions: []model.Question{
				{
					ID:          1,
					Text:        "İlk soru?",
					Explanation: "Çünkü.",
					Options: []model.Option{
						{Text: "Yanlış"},
						{Text: "Doğru", Correct: true},
					},
				},
			},
		},
		{
			Number: 2,
			Questions: []model.Question{
				{ID: 2, Text: "q2", Options: []model.Option{{Text: "a", Correct: true}}},
				{ID: 3, Text: "q3", Options: []model.Option{{Text: "a", Correct: true}}},
			},
		},
	}
}

func TestBuildScanSymmetry(t *testing.T) {
	ctx := testCtx(t, "tr")
	doc := Build(ctx, bank())
	p := Scan(doc)

	if len(p.Questions) != 3 {
		t.Errorf("scanned %d questions, want 3", len(p.Questions))
	}
	if len(p.Sections) != 2 {
		t.Errorf("scanned %d sections, want 2", len(p.Sections))
	}
	for i, s := range p.Sections {
		if s.Header == nil || s.Body == nil {
			t.Errorf("section %d missing header or body", i)
		}
	}
	if p.Surface == nil || p.Progress == nil || p.PrevBtn == nil || p.NextBtn == nil {
		t.Error("single-view plumbing missing")
	}
	if len(p.ModeButtons) != 3 {
		t.Errorf("scanned %d mode buttons, want 3", len(p.ModeButtons))
	}
	if p.Fab == nil || p.FabMain == nil || len(p.FabActions) != 3 {
		t.Error("fab structure missing")
	}
	if p.Header == nil || p.HeaderToggle == nil {
		t.Error("page header structure missing")
	}
}

func TestBuildMarkers(t *testing.T) {
	ctx := testCtx(t, "tr")
	doc := Build(ctx, bank())
	p := Scan(doc)

	// Explicit week title wins; missing title falls back to the
	// localized "N. Hafta" form.
	if h := dom.First(p.Sections[0].Header, dom.ByTag("h2")); dom.Text(h) != "Giriş" {
		t.Errorf("week 1 title = %q, want 'Giriş'", dom.Text(h))
	}
	if h := dom.First(p.Sections[1].Header, dom.ByTag("h2")); dom.Text(h) != "2. Hafta" {
		t.Errorf("week 2 title = %q, want '2. Hafta'", dom.Text(h))
	}

	// Correctness is a static attribute on the option.
	opts := dom.Query(p.Questions[0], dom.ByClass(ClassOption))
	if len(opts) != 2 {
		t.Fatalf("question 1 has %d options, want 2", len(opts))
	}
	if dom.Attr(opts[0], AttrCorrect) != "false" || dom.Attr(opts[1], AttrCorrect) != "true" {
		t.Error("data-correct markers wrong")
	}

	// Explanations start hidden; sections start expanded.
	expl := dom.First(p.Questions[0], dom.ByClass(ClassExplanation))
	if expl == nil || dom.HasClass(expl, ClassVisible) {
		t.Error("explanation should exist and start hidden")
	}
	for i, s := range p.Sections {
		if dom.HasClass(s.Root, ClassCollapsed) {
			t.Errorf("section %d should start expanded", i)
		}
	}

	// The list mode button starts active; the body carries the mode.
	if dom.Attr(p.Body, AttrViewMode) != string(model.ModeList) {
		t.Error("body should start in list mode")
	}
	for _, btn := range p.ModeButtons {
		want := dom.Attr(btn, AttrMode) == string(model.ModeList)
		if dom.HasClass(btn, ClassActive) != want {
			t.Errorf("mode button %q initial active state wrong", dom.Attr(btn, AttrMode))
		}
	}
}

func TestBuildStats(t *testing.T) {
	ctx := testCtx(t, "tr")
	doc := Build(ctx, bank())
	p := Scan(doc)

	if got := dom.Text(p.StatQuestions); got != "3 soru" {
		t.Errorf("question stat = %q, want '3 soru'", got)
	}
	if got := dom.Text(p.StatWeeks); got != "2 hafta" {
		t.Errorf("week stat = %q, want '2 hafta'", got)
	}
}

func TestBuildRendersParseableHTML(t *testing.T) {
	ctx := testCtx(t, "tr")
	doc := Build(ctx, bank())

	out := dom.RenderString(doc)
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(out, "İlk soru?") {
		t.Error("question text missing from rendered page")
	}

	reparsed, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	p2 := Scan(reparsed)
	if len(p2.Questions) != 3 || len(p2.Sections) != 2 {
		t.Errorf("render/parse round trip lost structure: %d questions, %d sections",
			len(p2.Questions), len(p2.Sections))
	}
}

func TestScanEmptyDocument(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<html><body><p>boş</p></body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := Scan(doc)
	if len(p.Questions) != 0 || len(p.Sections) != 0 {
		t.Error("empty document should scan to empty page")
	}
	if p.Surface != nil || p.Fab != nil {
		t.Error("missing markers should stay nil")
	}
	if p.Body == nil {
		t.Error("body should still be found")
	}
}
