package feed

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/rotisserie/eris"
)

// MarkdownWriter writes cards as a Markdown report.
type MarkdownWriter struct {
	out io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to out.
func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	return &MarkdownWriter{out: out}
}

// WriteCards writes a summary table followed by one section per card.
func (w *MarkdownWriter) WriteCards(cards []Card) error {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("Crawl Results")
	md.PlainText("")
	if len(cards) == 0 {
		md.PlainText(MsgNoResults)
		return w.flush(md, &buf)
	}
	md.PlainText(SummaryMessage(len(cards)))
	md.PlainText("")

	rows := make([][]string, len(cards))
	for i, c := range cards {
		rows[i] = []string{
			fmt.Sprint(i + 1),
			"`" + c.Label + "`",
			cell(c.Title),
			cell(c.URL),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Status", "Title", "URL"},
		Rows:   rows,
	})
	md.PlainText("")

	for i, c := range cards {
		md.H2(fmt.Sprintf("%d. %s %s", i+1, c.Label, c.Title))
		md.PlainText("")
		md.PlainText(fmt.Sprintf("[%s](%s)", c.URL, c.URL))
		md.PlainText("")
		if line := c.NoteLine(); line != "" {
			md.PlainText("_" + line + "_")
			md.PlainText("")
		}
		if len(c.Badges) > 0 {
			texts := make([]string, len(c.Badges))
			for j, b := range c.Badges {
				texts[j] = b.Text
			}
			md.BulletList(texts...)
			md.PlainText("")
		}
	}

	return w.flush(md, &buf)
}

func (w *MarkdownWriter) flush(md *markdown.Markdown, buf *bytes.Buffer) error {
	if err := md.Build(); err != nil {
		return eris.Wrap(err, "feed: build markdown")
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return eris.Wrap(err, "feed: write markdown")
	}
	return nil
}

// cell keeps table cells on one line and escapes the column separator.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
