package feed

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// Format names a card output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON, FormatYAML}
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", eris.Errorf("feed: unknown output format %q", s)
}

// Writer outputs a batch of cards. Implementations emit the whole batch with
// a single write to the destination.
type Writer interface {
	WriteCards(cards []Card) error
}

// WriterOption configures writers created by NewWriter.
type WriterOption func(*writerOpts)

type writerOpts struct {
	noColor bool
}

// WithoutColor disables ANSI colors in text output.
func WithoutColor() WriterOption {
	return func(o *writerOpts) {
		o.noColor = true
	}
}

// NewWriter returns the Writer for format f writing to out.
func NewWriter(f Format, out io.Writer, opts ...WriterOption) (Writer, error) {
	o := writerOpts{}
	for _, opt := range opts {
		opt(&o)
	}

	switch f {
	case FormatText:
		return NewTextWriter(out, !o.noColor), nil
	case FormatMarkdown:
		return NewMarkdownWriter(out), nil
	case FormatHTML:
		return NewHTMLWriter(out), nil
	case FormatJSON:
		return NewJSONWriter(out), nil
	case FormatYAML:
		return NewYAMLWriter(out), nil
	default:
		return nil, eris.Errorf("feed: unknown output format %q", f)
	}
}

func items(cards []Card) []any {
	out := make([]any, len(cards))
	for i, c := range cards {
		out[i] = c.Item
	}
	return out
}
