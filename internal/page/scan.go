package page

import (
	"log/slog"

	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
)

// Section is one weekly section: its root element, header control, and
// collapsible body.
type Section struct {
	Root   *html.Node
	Header *html.Node
	Body   *html.Node
}

// Page holds references to the quiz markers found in a document. Any
// field may be nil (or empty) when the document lacks the corresponding
// structure; consumers degrade to no-ops in that case.
type Page struct {
	Root *html.Node
	Body *html.Node

	Surface  *html.Node
	Progress *html.Node
	PrevBtn  *html.Node
	NextBtn  *html.Node

	ModeButtons []*html.Node

	Fab        *html.Node
	FabMain    *html.Node
	FabActions []*html.Node

	Header       *html.Node
	HeaderToggle *html.Node

	Sections  []Section
	Questions []*html.Node

	StatQuestions *html.Node
	StatWeeks     *html.Node
}

// Scan walks the document once and collects every quiz marker. Missing
// markers are left nil; the scan itself never fails.
func Scan(root *html.Node) *Page {
	p := &Page{Root: root}

	p.Body = dom.First(root, dom.ByTag("body"))
	if p.Body == nil {
		// Fragment without a body: treat the root as the mode indicator
		// carrier so data-view-mode still lands somewhere.
		p.Body = root
	}

	p.Surface = dom.ElementByID(root, IDSurface)
	p.Progress = dom.ElementByID(root, IDProgress)
	p.PrevBtn = dom.ElementByID(root, IDPrev)
	p.NextBtn = dom.ElementByID(root, IDNext)
	p.ModeButtons = dom.Query(root, dom.ByClass(ClassModeButton))

	p.Fab = dom.ElementByID(root, IDFab)
	if p.Fab != nil {
		p.FabMain = dom.First(p.Fab, dom.ByClass(ClassFabMain))
		p.FabActions = dom.Query(p.Fab, dom.ByClass(ClassFabAction))
	}

	p.Header = dom.ElementByID(root, IDHeader)
	p.HeaderToggle = dom.ElementByID(root, IDHeaderToggle)

	for _, sec := range dom.Query(root, dom.ByClass(ClassWeekSection)) {
		p.Sections = append(p.Sections, Section{
			Root:   sec,
			Header: dom.First(sec, dom.ByClass(ClassWeekHeader)),
			Body:   dom.First(sec, dom.ByClass(ClassWeekBody)),
		})
	}

	p.Questions = dom.Query(root, dom.ByClass(ClassQuestionCard))

	p.StatQuestions = dom.ElementByID(root, IDStatQuestions)
	p.StatWeeks = dom.ElementByID(root, IDStatWeeks)

	slog.Info("scanned quiz page",
		"questions", len(p.Questions),
		"weeks", len(p.Sections),
		"surface", p.Surface != nil)

	return p
}
