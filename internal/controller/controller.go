// Package controller implements the quiz view controller: the view-mode
// state machine, single-question navigation, re-parenting of question
// nodes between the list and the single-question surface, and the
// per-question answer state machine.
package controller

import (
	"context"

	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
	appI18n "github.com/quizview/quizview/internal/i18n"
	"github.com/quizview/quizview/internal/model"
	"github.com/quizview/quizview/internal/page"
)

// DefaultMaxAttempts is the number of wrong answers a question accepts
// before it resolves as exhausted.
const DefaultMaxAttempts = 2

// QuestionRecord tracks one question element, its original placement,
// and its answer state. Attempts only grows and Answered never resets.
type QuestionRecord struct {
	El             *html.Node
	OriginalParent *html.Node
	// OriginalNext is the sibling immediately after the question at load
	// time, or nil when the question was its parent's last child.
	OriginalNext *html.Node

	Attempts int
	Answered bool
}

// Controller owns the question registry and the current view state. It
// is constructed once per page and mutated only from event handlers, so
// it needs no locking.
type Controller struct {
	ctx  context.Context
	page *page.Page

	registry  []*QuestionRecord
	byElement map[*html.Node]*QuestionRecord

	mode         model.ViewMode
	currentIndex int

	maxAttempts int

	// ScrollTop is the cosmetic scroll hook. The tree model has no
	// viewport, so hosts that can scroll (the terminal player, a future
	// renderer) plug one in; nil means the action does nothing.
	ScrollTop func()
}

// New builds the registry from the scanned page and starts in list mode.
// The context carries the localizer used for the progress readout.
func New(ctx context.Context, p *page.Page, maxAttempts int) *Controller {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	c := &Controller{
		ctx:         ctx,
		page:        p,
		byElement:   make(map[*html.Node]*QuestionRecord),
		mode:        model.ModeList,
		maxAttempts: maxAttempts,
	}
	for _, el := range p.Questions {
		rec := &QuestionRecord{
			El:             el,
			OriginalParent: el.Parent,
			OriginalNext:   el.NextSibling,
		}
		c.registry = append(c.registry, rec)
		c.byElement[el] = rec
	}
	c.applyModeIndicator()
	return c
}

// Mode returns the current view mode.
func (c *Controller) Mode() model.ViewMode { return c.mode }

// CurrentIndex returns the index of the question shown when mode is not
// list. It defaults to 0 before the first single/exam entry.
func (c *Controller) CurrentIndex() int { return c.currentIndex }

// Len returns the registry size.
func (c *Controller) Len() int { return len(c.registry) }

// Record returns the registry entry at i, or nil when out of range.
func (c *Controller) Record(i int) *QuestionRecord {
	if i < 0 || i >= len(c.registry) {
		return nil
	}
	return c.registry[i]
}

// Page returns the scanned page the controller operates on.
func (c *Controller) Page() *page.Page { return c.page }

// SwitchMode changes the view mode. Switching to the current mode is a
// no-op. Entering single or exam mode shows whichever index was last
// active.
func (c *Controller) SwitchMode(mode model.ViewMode) {
	if mode == c.mode {
		return
	}
	c.mode = mode
	c.applyModeIndicator()

	if mode == model.ModeList {
		c.RestoreListView()
		return
	}
	c.RenderSingleQuestion(c.currentIndex)
}

// applyModeIndicator stamps the mode on the document and marks exactly
// the matching mode-selector control active.
func (c *Controller) applyModeIndicator() {
	dom.SetAttr(c.page.Body, page.AttrViewMode, string(c.mode))
	for _, btn := range c.page.ModeButtons {
		dom.SetClass(btn, page.ClassActive, dom.Attr(btn, page.AttrMode) == string(c.mode))
	}
}

// RenderSingleQuestion shows the question at index as the sole child of
// the display surface and updates the progress readout and navigation
// controls. A missing surface, empty registry, or out-of-range index is
// a silent no-op.
func (c *Controller) RenderSingleQuestion(index int) {
	if len(c.registry) == 0 || c.page.Surface == nil {
		return
	}
	if index < 0 || index >= len(c.registry) {
		return
	}

	dom.Clear(c.page.Surface)
	rec := c.registry[index]
	dom.Append(c.page.Surface, rec.El)
	c.currentIndex = index

	if c.page.Progress != nil {
		dom.SetText(c.page.Progress, appI18n.Td(c.ctx, "QuestionProgress", map[string]any{
			"Current": index + 1,
			"Total":   len(c.registry),
		}))
	}
	setDisabled(c.page.PrevBtn, index == 0)
	setDisabled(c.page.NextBtn, index == len(c.registry)-1)
}

// RestoreListView puts every question back under its original parent in
// its original position. Calling it when everything is already in place
// changes nothing.
func (c *Controller) RestoreListView() {
	dom.Clear(c.page.Surface)

	for _, rec := range c.registry {
		if rec.OriginalParent == nil {
			continue
		}
		// The captured next sibling may itself be a question that is
		// currently off-tree; follow the sibling chain until an anchor
		// that is still attached (or nil) is found, so original order
		// survives any number of detached questions.
		anchor := rec.OriginalNext
		for anchor != nil && anchor.Parent != rec.OriginalParent {
			next, ok := c.byElement[anchor]
			if !ok {
				anchor = nil
				break
			}
			anchor = next.OriginalNext
		}
		dom.InsertBefore(rec.OriginalParent, rec.El, anchor)
	}
}

// Next advances single/exam navigation by one question.
func (c *Controller) Next() {
	if c.mode == model.ModeList {
		return
	}
	if c.currentIndex+1 < len(c.registry) {
		c.RenderSingleQuestion(c.currentIndex + 1)
	}
}

// Prev steps single/exam navigation back by one question.
func (c *Controller) Prev() {
	if c.mode == model.ModeList {
		return
	}
	if c.currentIndex > 0 {
		c.RenderSingleQuestion(c.currentIndex - 1)
	}
}

func setDisabled(btn *html.Node, disabled bool) {
	if btn == nil {
		return
	}
	if disabled {
		dom.SetAttr(btn, page.AttrDisabled, "")
	} else {
		dom.RemoveAttr(btn, page.AttrDisabled)
	}
}
