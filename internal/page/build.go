package page

import (
	"context"
	"strconv"

	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/dom"
	appI18n "github.com/quizview/quizview/internal/i18n"
	"github.com/quizview/quizview/internal/model"
)

// Build renders the full quiz document from bank content. The result is
// a document node suitable for html.Render and for Scan.
func Build(ctx context.Context, weeks []model.Week) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := dom.NewElement("html", "lang", appI18n.T(ctx, "LangTag"))
	dom.Append(doc, root)

	head := dom.NewElement("head")
	dom.Append(root, head)
	dom.Append(head, dom.NewElement("meta", "charset", "utf-8"))
	title := dom.NewElement("title")
	dom.SetText(title, appI18n.T(ctx, "AppTitle"))
	dom.Append(head, title)

	body := dom.NewElement("body", AttrViewMode, string(model.ModeList))
	dom.Append(root, body)

	dom.Append(body, buildHeader(ctx, weeks))
	dom.Append(body, buildModeBar(ctx))
	dom.Append(body, buildSinglePanel(ctx))

	list := dom.NewElement("main", "id", IDQuizList)
	dom.Append(body, list)
	for _, w := range weeks {
		dom.Append(list, buildWeek(ctx, w))
	}

	dom.Append(body, buildFab(ctx))
	return doc
}

func buildHeader(ctx context.Context, weeks []model.Week) *html.Node {
	header := dom.NewElement("header", "id", IDHeader)

	h1 := dom.NewElement("h1")
	dom.SetText(h1, appI18n.T(ctx, "AppTitle"))
	dom.Append(header, h1)

	sub := dom.NewElement("p", "class", "subtitle")
	dom.SetText(sub, appI18n.T(ctx, "PageSubtitle"))
	dom.Append(header, sub)

	questionCount := 0
	for _, w := range weeks {
		questionCount += len(w.Questions)
	}
	summary := dom.NewElement("div", "class", "summary")
	statQ := dom.NewElement("span", "id", IDStatQuestions)
	dom.SetText(statQ, appI18n.Tp(ctx, "TotalQuestions", questionCount))
	statW := dom.NewElement("span", "id", IDStatWeeks)
	dom.SetText(statW, appI18n.Tp(ctx, "TotalWeeks", len(weeks)))
	dom.Append(summary, statQ)
	dom.Append(summary, statW)
	dom.Append(header, summary)

	toggle := dom.NewElement("button", "id", IDHeaderToggle, "type", "button")
	dom.SetText(toggle, "▲")
	dom.Append(header, toggle)

	return header
}

func buildModeBar(ctx context.Context) *html.Node {
	bar := dom.NewElement("nav", "class", "mode-bar")
	modes := []struct {
		mode  model.ViewMode
		label string
	}{
		{model.ModeList, appI18n.T(ctx, "ModeList")},
		{model.ModeSingle, appI18n.T(ctx, "ModeSingle")},
		{model.ModeExam, appI18n.T(ctx, "ModeExam")},
	}
	for _, m := range modes {
		btn := dom.NewElement("button",
			"class", ClassModeButton,
			"type", "button",
			AttrMode, string(m.mode))
		if m.mode == model.ModeList {
			dom.AddClass(btn, ClassActive)
		}
		dom.SetText(btn, m.label)
		dom.Append(bar, btn)
	}
	return bar
}

func buildSinglePanel(ctx context.Context) *html.Node {
	panel := dom.NewElement("section", "class", "single-panel")

	progress := dom.NewElement("div", "id", IDProgress)
	dom.Append(panel, progress)

	surface := dom.NewElement("div", "id", IDSurface)
	dom.Append(panel, surface)

	nav := dom.NewElement("div", "class", "single-nav")
	prev := dom.NewElement("button", "id", IDPrev, "type", "button")
	dom.SetText(prev, appI18n.T(ctx, "Previous"))
	next := dom.NewElement("button", "id", IDNext, "type", "button")
	dom.SetText(next, appI18n.T(ctx, "Next"))
	dom.Append(nav, prev)
	dom.Append(nav, next)
	dom.Append(panel, nav)

	return panel
}

func buildWeek(ctx context.Context, w model.Week) *html.Node {
	section := dom.NewElement("section",
		"class", ClassWeekSection,
		AttrWeek, strconv.Itoa(w.Number))

	header := dom.NewElement("div", "class", ClassWeekHeader)
	h2 := dom.NewElement("h2")
	titleText := w.Title
	if titleText == "" {
		titleText = appI18n.Td(ctx, "WeekTitle", map[string]any{"Number": w.Number})
	}
	dom.SetText(h2, titleText)
	dom.Append(header, h2)

	count := dom.NewElement("span", "class", "week-count")
	dom.SetText(count, appI18n.Tp(ctx, "TotalQuestions", len(w.Questions)))
	dom.Append(header, count)
	dom.Append(section, header)

	bodyEl := dom.NewElement("div", "class", ClassWeekBody)
	for _, q := range w.Questions {
		dom.Append(bodyEl, buildQuestion(ctx, q))
	}
	dom.Append(section, bodyEl)

	return section
}

func buildQuestion(ctx context.Context, q model.Question) *html.Node {
	card := dom.NewElement("article",
		"class", ClassQuestionCard,
		"data-question", strconv.FormatInt(q.ID, 10))

	text := dom.NewElement("p", "class", ClassQuestionText)
	dom.SetText(text, q.Text)
	dom.Append(card, text)

	opts := dom.NewElement("div", "class", ClassOptions)
	for _, o := range q.Options {
		btn := dom.NewElement("button",
			"class", ClassOption,
			"type", "button",
			AttrCorrect, strconv.FormatBool(o.Correct))
		dom.SetText(btn, o.Text)
		dom.Append(opts, btn)
	}
	dom.Append(card, opts)

	show := dom.NewElement("button", "class", ClassShowAnswer, "type", "button")
	dom.SetText(show, appI18n.T(ctx, "ShowAnswer"))
	dom.Append(card, show)

	expl := dom.NewElement("div", "class", ClassExplanation)
	dom.SetText(expl, q.Explanation)
	dom.Append(card, expl)

	return card
}

func buildFab(ctx context.Context) *html.Node {
	fab := dom.NewElement("div", "id", IDFab)

	main := dom.NewElement("button", "class", ClassFabMain, "type", "button")
	dom.SetText(main, appI18n.T(ctx, "Menu"))
	dom.Append(fab, main)

	actions := dom.NewElement("div", "class", ClassFabActions)
	for _, a := range []struct{ action, label string }{
		{ActionExpandAll, appI18n.T(ctx, "ExpandAll")},
		{ActionCollapseAll, appI18n.T(ctx, "CollapseAll")},
		{ActionScrollTop, appI18n.T(ctx, "ScrollTop")},
	} {
		btn := dom.NewElement("button",
			"class", ClassFabAction,
			"type", "button",
			AttrAction, a.action)
		dom.SetText(btn, a.label)
		dom.Append(actions, btn)
	}
	dom.Append(fab, actions)

	return fab
}
