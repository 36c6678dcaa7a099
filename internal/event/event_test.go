package event

import (
	"testing"

	"github.com/quizview/quizview/internal/dom"
)

func TestClickDelegation(t *testing.T) {
	card := dom.NewElement("article", "class", "question-card")
	opt := dom.NewElement("button", "class", "option")
	dom.SetText(opt, "cevap")
	dom.Append(card, opt)

	d := &Dispatcher{}
	var gotOption, gotCard int
	d.OnClick(dom.ByClass("option"), func(e Event) {
		gotOption++
		if e.Target != opt {
			t.Error("delegated target should be the matched option element")
		}
	})
	d.OnClick(dom.ByClass("question-card"), func(Event) { gotCard++ })

	// Clicking the text inside the option resolves to the option
	// binding, not the card binding.
	if !d.Click(opt.FirstChild) {
		t.Fatal("click should be consumed")
	}
	if gotOption != 1 || gotCard != 0 {
		t.Errorf("handlers fired option=%d card=%d, want 1/0", gotOption, gotCard)
	}

	// Clicking the card itself falls through to the card binding.
	if !d.Click(card) {
		t.Fatal("card click should be consumed")
	}
	if gotCard != 1 {
		t.Errorf("card handler fired %d times, want 1", gotCard)
	}
}

func TestClickRegistrationOrderWins(t *testing.T) {
	n := dom.NewElement("button", "class", "option special")

	d := &Dispatcher{}
	var order []string
	d.OnClick(dom.ByClass("special"), func(Event) { order = append(order, "special") })
	d.OnClick(dom.ByClass("option"), func(Event) { order = append(order, "option") })

	d.Click(n)
	if len(order) != 1 || order[0] != "special" {
		t.Errorf("expected only the first matching binding to fire, got %v", order)
	}
}

func TestUnmatchedClickIsNoop(t *testing.T) {
	d := &Dispatcher{}
	d.OnClick(dom.ByClass("option"), func(Event) { t.Error("handler must not fire") })

	if d.Click(dom.NewElement("div")) {
		t.Error("unmatched click reported as consumed")
	}
	if d.Click(nil) {
		t.Error("nil target reported as consumed")
	}
}

func TestKeydownFanOut(t *testing.T) {
	d := &Dispatcher{}
	var calls int
	d.OnKey(func(e Event) {
		calls++
		if e.Key != "e" || !e.Alt {
			t.Errorf("unexpected key event: %+v", e)
		}
	})
	d.OnKey(func(Event) { calls++ })

	d.Keydown("e", true)
	if calls != 2 {
		t.Errorf("expected both key handlers to fire, got %d", calls)
	}
}
