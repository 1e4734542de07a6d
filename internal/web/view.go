package web

import (
	"html/template"

	"github.com/sells-group/zorah/internal/feed"
	"github.com/sells-group/zorah/internal/ui"
)

// pageView is the server-side rendition of the crawl page. The controller
// drives it exactly like a browser DOM; page() then snapshots it.
type pageView struct {
	busy     bool
	status   string
	cards    []feed.Card
	errMsg   string
	attaches int
}

func newPageView() *pageView {
	return &pageView{}
}

func (v *pageView) SetBusy(busy bool) { v.busy = busy }

func (v *pageView) ClearResults() {
	v.cards = nil
	v.errMsg = ""
}

func (v *pageView) SetStatus(msg string) { v.status = msg }

func (v *pageView) Attach(cards []feed.Card) {
	v.cards = append(v.cards, cards...)
	v.attaches++
}

func (v *pageView) ShowError(msg string) {
	v.status = ""
	v.cards = nil
	v.errMsg = msg
}

// pageData is what the page template renders.
type pageData struct {
	InputValue  string
	Busy        bool
	ButtonLabel string
	Status      string
	Results     template.HTML
}

func (v *pageView) page(input string) (pageData, error) {
	d := pageData{
		InputValue:  input,
		Busy:        v.busy,
		ButtonLabel: ui.LabelIdle,
		Status:      v.status,
	}
	if v.busy {
		d.ButtonLabel = ui.LabelBusy
	}

	var err error
	switch {
	case v.errMsg != "":
		d.Results, err = feed.ErrorFragment(v.errMsg)
	case len(v.cards) > 0:
		d.Results, err = feed.HTMLFragment(v.cards)
	}
	return d, err
}
