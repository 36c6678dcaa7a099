package controller

import (
	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
	"github.com/quizview/quizview/internal/model"
	"github.com/quizview/quizview/internal/page"
)

// ToggleSection flips the expanded state of the weekly section that
// contains origin (typically its header).
func (c *Controller) ToggleSection(origin *html.Node) {
	sec := dom.Closest(origin, dom.ByClass(page.ClassWeekSection))
	if sec == nil {
		return
	}
	dom.ToggleClass(sec, page.ClassCollapsed)
}

// SectionExpanded reports whether the i-th weekly section is expanded.
// Out-of-range indices report false.
func (c *Controller) SectionExpanded(i int) bool {
	if i < 0 || i >= len(c.page.Sections) {
		return false
	}
	return !dom.HasClass(c.page.Sections[i].Root, page.ClassCollapsed)
}

// ExpandAll expands every weekly section. Outside list mode the bulk
// action is a no-op.
func (c *Controller) ExpandAll() {
	if c.mode != model.ModeList {
		return
	}
	for _, s := range c.page.Sections {
		dom.RemoveClass(s.Root, page.ClassCollapsed)
	}
}

// CollapseAll collapses every weekly section. Outside list mode the bulk
// action is a no-op.
func (c *Controller) CollapseAll() {
	if c.mode != model.ModeList {
		return
	}
	for _, s := range c.page.Sections {
		dom.AddClass(s.Root, page.ClassCollapsed)
	}
}

// ToggleFab opens or closes the floating action menu.
func (c *Controller) ToggleFab() {
	dom.ToggleClass(c.page.Fab, page.ClassOpen)
}

// HandleFabAction runs one labeled floating-menu action and closes the
// menu. Unknown actions only close the menu.
func (c *Controller) HandleFabAction(action string) {
	switch action {
	case page.ActionExpandAll:
		c.ExpandAll()
	case page.ActionCollapseAll:
		c.CollapseAll()
	case page.ActionScrollTop:
		c.scrollToTop()
	}
	dom.RemoveClass(c.page.Fab, page.ClassOpen)
}

// ToggleHeader collapses or expands the page header region.
func (c *Controller) ToggleHeader() {
	dom.ToggleClass(c.page.Header, page.ClassCollapsed)
}

// HandleKey dispatches the page's keyboard shortcuts: Alt+E expands all
// sections, Alt+C collapses them, and a bare T scrolls to the top.
func (c *Controller) HandleKey(key string, alt bool) {
	if alt {
		switch key {
		case "e", "E":
			c.ExpandAll()
		case "c", "C":
			c.CollapseAll()
		}
		return
	}
	switch key {
	case "t", "T", "Home":
		c.scrollToTop()
	}
}

func (c *Controller) scrollToTop() {
	if c.ScrollTop != nil {
		c.ScrollTop()
	}
}
