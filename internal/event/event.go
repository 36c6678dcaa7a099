// Package event is the abstract event source the controller registers
// its handlers against. Clicks are delivered with ancestor delegation:
// the dispatcher walks from the clicked node up through its parents and
// fires the first handler whose matcher accepts a node on that path.
// Handlers run to completion before the next event is dispatched; there
// is no concurrency.
package event

import "golang.org/x/net/html"

// Kind is the event category.
type Kind int

const (
	Click Kind = iota
	Keydown
)

// Event is one user input occurrence. Target is set for clicks (the
// matched node, which may be an ancestor of the clicked one); Key and
// Alt are set for keydown events.
type Event struct {
	Kind   Kind
	Target *html.Node
	Key    string
	Alt    bool
}

// Handler reacts to one event.
type Handler func(Event)

type clickBinding struct {
	match func(*html.Node) bool
	fn    Handler
}

// Dispatcher routes events to registered handlers.
type Dispatcher struct {
	clicks []clickBinding
	keys   []Handler
}

// OnClick registers a delegated click handler. Bindings are consulted in
// registration order, so register the most specific matchers first.
func (d *Dispatcher) OnClick(match func(*html.Node) bool, fn Handler) {
	d.clicks = append(d.clicks, clickBinding{match: match, fn: fn})
}

// OnKey registers a keydown handler. All key handlers see every key
// event.
func (d *Dispatcher) OnKey(fn Handler) {
	d.keys = append(d.keys, fn)
}

// Click dispatches a click on target. It reports whether any handler
// consumed the event; an unmatched click is a no-op.
func (d *Dispatcher) Click(target *html.Node) bool {
	for n := target; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		for _, b := range d.clicks {
			if b.match(n) {
				b.fn(Event{Kind: Click, Target: n})
				return true
			}
		}
	}
	return false
}

// Keydown dispatches a key press to every key handler.
func (d *Dispatcher) Keydown(key string, alt bool) {
	e := Event{Kind: Keydown, Key: key, Alt: alt}
	for _, fn := range d.keys {
		fn(e)
	}
}
