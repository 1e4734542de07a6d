package feed

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rotisserie/eris"
)

var toneColors = map[Tone][]color.Attribute{
	ToneSuccess: {color.FgGreen, color.Bold},
	ToneWarning: {color.FgYellow, color.Bold},
	ToneDanger:  {color.FgRed, color.Bold},
	ToneNeutral: {color.FgWhite, color.Bold},
	ToneInfo:    {color.FgBlue, color.Bold},
	ToneDefault: {color.Bold},
}

var badgeColors = map[BadgeKind][]color.Attribute{
	BadgeCDN:      {color.FgHiWhite, color.BgBlue},
	BadgeSecurity: {color.FgHiWhite, color.BgRed},
}

// TextWriter writes cards as terminal text, colored by tone.
type TextWriter struct {
	out   io.Writer
	color bool
}

// NewTextWriter creates a TextWriter. When useColor is false no ANSI
// sequences are emitted.
func NewTextWriter(out io.Writer, useColor bool) *TextWriter {
	return &TextWriter{out: out, color: useColor}
}

func (w *TextWriter) paint(attrs []color.Attribute, s string) string {
	c := color.New(attrs...)
	if w.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// WriteCards writes every card, separated by blank lines, in one write.
func (w *TextWriter) WriteCards(cards []Card) error {
	var buf bytes.Buffer
	for i, c := range cards {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(w.paint(toneColors[c.Style.Tone], c.Label))
		if c.Title != "" {
			buf.WriteString(" " + c.Title)
		}
		buf.WriteString("\n  " + c.URL + "\n")
		if line := c.NoteLine(); line != "" {
			buf.WriteString("  " + w.paint([]color.Attribute{color.Faint, color.Italic}, line) + "\n")
		}
		if len(c.Badges) > 0 {
			parts := make([]string, len(c.Badges))
			for j, b := range c.Badges {
				parts[j] = w.paint(badgeColors[b.Kind], " "+b.Text+" ")
			}
			buf.WriteString("  " + strings.Join(parts, " ") + "\n")
		}
	}

	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return eris.Wrap(err, "feed: write text")
	}
	return nil
}
