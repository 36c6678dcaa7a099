package controller

import (
	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
	"github.com/quizview/quizview/internal/event"
	"github.com/quizview/quizview/internal/model"
	"github.com/quizview/quizview/internal/page"
)

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool { return dom.ID(n) == id }
}

// Bind registers the controller's handlers on the event source. Option
// clicks are registered first so a click inside a question card never
// bubbles into a structural handler.
func (c *Controller) Bind(d *event.Dispatcher) {
	d.OnClick(dom.ByClass(page.ClassOption), func(e event.Event) {
		c.HandleOptionClick(e.Target)
	})
	d.OnClick(dom.ByClass(page.ClassShowAnswer), func(e event.Event) {
		c.ToggleExplanation(e.Target)
	})
	d.OnClick(dom.ByClass(page.ClassModeButton), func(e event.Event) {
		if mode, ok := model.ParseViewMode(dom.Attr(e.Target, page.AttrMode)); ok {
			c.SwitchMode(mode)
		}
	})
	d.OnClick(byID(page.IDPrev), func(event.Event) { c.Prev() })
	d.OnClick(byID(page.IDNext), func(event.Event) { c.Next() })
	d.OnClick(byID(page.IDHeaderToggle), func(event.Event) { c.ToggleHeader() })
	d.OnClick(dom.ByClass(page.ClassWeekHeader), func(e event.Event) {
		c.ToggleSection(e.Target)
	})
	d.OnClick(dom.ByClass(page.ClassFabAction), func(e event.Event) {
		c.HandleFabAction(dom.Attr(e.Target, page.AttrAction))
	})
	d.OnClick(dom.ByClass(page.ClassFabMain), func(event.Event) { c.ToggleFab() })

	d.OnKey(func(e event.Event) { c.HandleKey(e.Key, e.Alt) })
}
