package controller

import (
	"testing"

	"github.com/quizview/quizview/internal/dom"
	"github.com/quizview/quizview/internal/event"
	"github.com/quizview/quizview/internal/model"
	"github.com/quizview/quizview/internal/page"
)

func TestBindRoutesClicksAndKeys(t *testing.T) {
	c, p := newTestController(t, 2)
	d := &event.Dispatcher{}
	c.Bind(d)

	// Mode button switches mode.
	for _, btn := range p.ModeButtons {
		if dom.Attr(btn, page.AttrMode) == string(model.ModeSingle) {
			d.Click(btn)
		}
	}
	if c.Mode() != model.ModeSingle {
		t.Fatalf("mode = %q after mode-button click, want single", c.Mode())
	}

	// Next button advances.
	d.Click(p.NextBtn)
	if c.CurrentIndex() != 1 {
		t.Errorf("index = %d after next click, want 1", c.CurrentIndex())
	}
	d.Click(p.PrevBtn)
	if c.CurrentIndex() != 0 {
		t.Errorf("index = %d after prev click, want 0", c.CurrentIndex())
	}

	// A click on an option's text node reaches the answer machine.
	rec := c.Record(0)
	wrong := options(rec.El)[0]
	d.Click(wrong.FirstChild)
	if rec.Attempts != 1 {
		t.Errorf("attempts = %d after option text click, want 1", rec.Attempts)
	}

	// Show-answer toggles the explanation even though it sits inside the
	// question card.
	show := dom.First(rec.El, dom.ByClass(page.ClassShowAnswer))
	d.Click(show)
	if !dom.HasClass(explanation(rec.El), page.ClassVisible) {
		t.Error("show-answer click should reveal the explanation")
	}

	// Keyboard shortcut expands sections only in list mode.
	d.Keydown("c", true)
	if !c.SectionExpanded(0) {
		t.Error("Alt+C must be ignored in single mode")
	}
	d.Click(p.ModeButtons[0]) // back to list
	d.Keydown("c", true)
	if c.SectionExpanded(0) {
		t.Error("Alt+C should collapse sections in list mode")
	}

	// Fab action through the dispatcher.
	d.Click(p.FabMain)
	if !dom.HasClass(p.Fab, page.ClassOpen) {
		t.Fatal("fab-main click should open the menu")
	}
	for _, a := range p.FabActions {
		if dom.Attr(a, page.AttrAction) == page.ActionExpandAll {
			d.Click(a)
		}
	}
	if !c.SectionExpanded(0) {
		t.Error("expand-all fab action should expand sections")
	}
	if dom.HasClass(p.Fab, page.ClassOpen) {
		t.Error("fab should close after an action click")
	}
}

func TestBindWeekHeaderAndHeaderToggle(t *testing.T) {
	c, p := newTestController(t, 1, 1)
	d := &event.Dispatcher{}
	c.Bind(d)

	// Clicking the title inside the header still toggles the section.
	h2 := dom.First(p.Sections[0].Header, dom.ByTag("h2"))
	d.Click(h2)
	if c.SectionExpanded(0) {
		t.Error("week header click should collapse its section")
	}

	d.Click(p.HeaderToggle)
	if !dom.HasClass(p.Header, page.ClassCollapsed) {
		t.Error("header toggle click should collapse the page header")
	}
}
