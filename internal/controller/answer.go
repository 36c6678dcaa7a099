package controller

import (
	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
	"github.com/quizview/quizview/internal/page"
)

// HandleOptionClick runs the answer state machine for a click on one
// option. Clicks on resolved questions and on options already marked
// wrong are ignored. Correctness comes from the option's static
// data-correct marker.
func (c *Controller) HandleOptionClick(opt *html.Node) {
	card := dom.Closest(opt, dom.ByClass(page.ClassQuestionCard))
	rec := c.byElement[card]
	if rec == nil {
		return
	}
	if rec.Answered || dom.HasClass(opt, page.ClassUserIncorrect) {
		return
	}

	correct := dom.Attr(opt, page.AttrCorrect) == "true"
	rec.Attempts++

	if correct {
		dom.AddClass(opt, page.ClassUserCorrect)
		c.resolve(rec)
		return
	}

	dom.AddClass(opt, page.ClassUserIncorrect)
	setDisabled(opt, true)

	if rec.Attempts >= c.maxAttempts {
		if truth := dom.First(rec.El, func(n *html.Node) bool {
			return dom.HasClass(n, page.ClassOption) && dom.Attr(n, page.AttrCorrect) == "true"
		}); truth != nil {
			dom.AddClass(truth, page.ClassRevealed)
		}
		c.resolve(rec)
	}
}

// resolve moves a question into its terminal state: no further option
// clicks, all options disabled, explanation forced open.
func (c *Controller) resolve(rec *QuestionRecord) {
	rec.Answered = true
	for _, o := range dom.Query(rec.El, dom.ByClass(page.ClassOption)) {
		setDisabled(o, true)
	}
	c.revealExplanation(rec)
}

func (c *Controller) revealExplanation(rec *QuestionRecord) {
	if expl := dom.First(rec.El, dom.ByClass(page.ClassExplanation)); expl != nil {
		dom.AddClass(expl, page.ClassVisible)
	}
}

// ToggleExplanation flips explanation visibility for the question that
// contains origin (typically its show-answer control). Manual toggling
// stays available after the question resolves.
func (c *Controller) ToggleExplanation(origin *html.Node) {
	card := dom.Closest(origin, dom.ByClass(page.ClassQuestionCard))
	if card == nil {
		return
	}
	if expl := dom.First(card, dom.ByClass(page.ClassExplanation)); expl != nil {
		dom.ToggleClass(expl, page.ClassVisible)
	}
}
