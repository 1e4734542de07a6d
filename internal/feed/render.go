// Package feed turns crawl results into classified cards and writes them in
// the supported output formats.
package feed

import "github.com/sells-group/zorah/internal/model"

// Display is the surface the renderer replaces content on.
type Display interface {
	SetStatus(msg string)
	// Attach inserts all cards in a single update.
	Attach(cards []Card)
}

// Render shows items on d. An empty list is a finished crawl with nothing to
// show, not an error: only the status line changes.
func Render(d Display, items []model.CrawlResultItem) {
	if len(items) == 0 {
		d.SetStatus(MsgNoResults)
		return
	}

	d.SetStatus(SummaryMessage(len(items)))
	d.Attach(BuildCards(items))
}
