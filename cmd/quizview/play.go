package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/quizview/quizview/internal/controller"
	"github.com/quizview/quizview/internal/dom"
	"github.com/quizview/quizview/internal/event"
	appI18n "github.com/quizview/quizview/internal/i18n"
	"github.com/quizview/quizview/internal/model"
	"github.com/quizview/quizview/internal/page"
)

// runPlay drives the quiz page from the terminal. Every command is
// translated into a click or key event on the dispatcher, so the exact
// same handlers run as on the page.
func runPlay(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := openBank(v)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := appI18n.WithLocalizer(context.Background(), appI18n.NewLocalizer(v.GetString("lang")))
	doc, err := buildDocument(ctx, db)
	if err != nil {
		return err
	}

	p := page.Scan(doc)
	if len(p.Questions) == 0 {
		return fmt.Errorf("question bank is empty")
	}

	ctrl := controller.New(ctx, p, v.GetInt("max-attempts"))
	out := cmd.OutOrStdout()
	ctrl.ScrollTop = func() { fmt.Fprintln(out, "~~~ "+appI18n.T(ctx, "ScrollTop")) }

	d := &event.Dispatcher{}
	ctrl.Bind(d)

	fmt.Fprintln(out, appI18n.T(ctx, "AppTitle"))
	printView(out, ctrl, p)
	fmt.Fprintln(out, `(komutlar için "help")`)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return nil
		case "help", "h":
			printHelp(out)
			continue
		case "html":
			fmt.Fprintln(out, dom.RenderString(doc))
			continue
		case "list", "single", "exam":
			clickModeButton(d, p, fields[0])
		case "next", "n":
			d.Click(p.NextBtn)
		case "prev", "p":
			d.Click(p.PrevBtn)
		case "answer", "a":
			if len(fields) < 3 {
				fmt.Fprintln(out, "usage: answer <question#> <option letter>")
				continue
			}
			clickOption(out, d, ctrl, fields[1], fields[2])
		case "show", "s":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: show <question#>")
				continue
			}
			clickShowAnswer(out, d, ctrl, fields[1])
		case "week", "w":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: week <week#>")
				continue
			}
			clickWeekHeader(out, d, p, fields[1])
		case "fab":
			d.Click(p.FabMain)
		case "do":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: do <expand-all|collapse-all|scroll-top>")
				continue
			}
			clickFabAction(out, d, p, fields[1])
		case "expand":
			d.Keydown("e", true)
		case "collapse":
			d.Keydown("c", true)
		case "top":
			d.Keydown("t", false)
		default:
			fmt.Fprintf(out, "bilinmeyen komut: %s\n", fields[0])
			continue
		}

		printView(out, ctrl, p)
	}
	return scanner.Err()
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `  list | single | exam      switch view mode
  next | prev               navigate in single/exam mode
  answer <q#> <letter>      click an option (e.g. "answer 3 B")
  show <q#>                 toggle a question's explanation
  week <week#>              toggle a weekly section
  fab                       open/close the floating menu
  do <action>               run a floating-menu action
  expand | collapse | top   keyboard shortcuts
  html                      dump the page HTML
  quit
`)
}

func clickModeButton(d *event.Dispatcher, p *page.Page, mode string) {
	for _, btn := range p.ModeButtons {
		if dom.Attr(btn, page.AttrMode) == mode {
			d.Click(btn)
			return
		}
	}
}

func clickOption(w io.Writer, d *event.Dispatcher, ctrl *controller.Controller, qArg, optArg string) {
	rec := recordForArg(w, ctrl, qArg)
	if rec == nil {
		return
	}
	opts := dom.Query(rec.El, dom.ByClass(page.ClassOption))
	idx := optionIndex(optArg)
	if idx < 0 || idx >= len(opts) {
		fmt.Fprintf(w, "seçenek yok: %s\n", optArg)
		return
	}
	d.Click(opts[idx])
}

func clickShowAnswer(w io.Writer, d *event.Dispatcher, ctrl *controller.Controller, qArg string) {
	rec := recordForArg(w, ctrl, qArg)
	if rec == nil {
		return
	}
	if btn := dom.First(rec.El, dom.ByClass(page.ClassShowAnswer)); btn != nil {
		d.Click(btn)
	}
}

func clickWeekHeader(w io.Writer, d *event.Dispatcher, p *page.Page, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(p.Sections) {
		fmt.Fprintf(w, "hafta yok: %s\n", arg)
		return
	}
	if header := p.Sections[n-1].Header; header != nil {
		d.Click(header)
	}
}

func clickFabAction(w io.Writer, d *event.Dispatcher, p *page.Page, action string) {
	for _, btn := range p.FabActions {
		if dom.Attr(btn, page.AttrAction) == action {
			d.Click(btn)
			return
		}
	}
	fmt.Fprintf(w, "eylem yok: %s\n", action)
}

func recordForArg(w io.Writer, ctrl *controller.Controller, arg string) *controller.QuestionRecord {
	n, err := strconv.Atoi(arg)
	if err != nil || ctrl.Record(n-1) == nil {
		fmt.Fprintf(w, "soru yok: %s\n", arg)
		return nil
	}
	return ctrl.Record(n - 1)
}

// optionIndex accepts "A".."Z" or a 1-based number.
func optionIndex(arg string) int {
	arg = strings.ToUpper(strings.TrimSpace(arg))
	if len(arg) == 1 && arg[0] >= 'A' && arg[0] <= 'Z' {
		return int(arg[0] - 'A')
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return n - 1
	}
	return -1
}

func printView(w io.Writer, ctrl *controller.Controller, p *page.Page) {
	if ctrl.Mode() == model.ModeList {
		printListView(w, ctrl, p)
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", ctrl.Mode(), dom.Text(p.Progress))
	if rec := ctrl.Record(ctrl.CurrentIndex()); rec != nil {
		printQuestion(w, rec.El, ctrl.CurrentIndex()+1)
	}
	fmt.Fprintf(w, "  (prev %s, next %s)\n",
		navState(p.PrevBtn), navState(p.NextBtn))
}

func navState(btn *html.Node) string {
	if dom.HasAttr(btn, page.AttrDisabled) {
		return "kapalı"
	}
	return "açık"
}

func printListView(w io.Writer, ctrl *controller.Controller, p *page.Page) {
	number := 0
	for i, sec := range p.Sections {
		marker := "[-]"
		if !ctrl.SectionExpanded(i) {
			marker = "[+]"
		}
		title := ""
		if h := dom.First(sec.Header, dom.ByTag("h2")); h != nil {
			title = dom.Text(h)
		}
		fmt.Fprintf(w, "%s %s\n", marker, title)
		cards := dom.Query(sec.Body, dom.ByClass(page.ClassQuestionCard))
		for _, card := range cards {
			number++
			if ctrl.SectionExpanded(i) {
				printQuestion(w, card, number)
			}
		}
	}
}

func printQuestion(w io.Writer, card *html.Node, number int) {
	text := ""
	if t := dom.First(card, dom.ByClass(page.ClassQuestionText)); t != nil {
		text = dom.Text(t)
	}
	fmt.Fprintf(w, "  %d. %s\n", number, text)

	for i, opt := range dom.Query(card, dom.ByClass(page.ClassOption)) {
		mark := " "
		switch {
		case dom.HasClass(opt, page.ClassUserCorrect):
			mark = "+"
		case dom.HasClass(opt, page.ClassUserIncorrect):
			mark = "x"
		case dom.HasClass(opt, page.ClassRevealed):
			mark = "*"
		case dom.HasAttr(opt, page.AttrDisabled):
			mark = "."
		}
		fmt.Fprintf(w, "     %c) [%s] %s\n", 'A'+i, mark, dom.Text(opt))
	}

	if expl := dom.First(card, dom.ByClass(page.ClassExplanation)); expl != nil && dom.HasClass(expl, page.ClassVisible) {
		fmt.Fprintf(w, "     » %s\n", dom.Text(expl))
	}
}
