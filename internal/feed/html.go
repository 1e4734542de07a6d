package feed

import (
	"bytes"
	"html/template"
	"io"

	"github.com/rotisserie/eris"
)

const cardsTemplate = `{{define "cards"}}{{range .}}<div class="p-3 rounded-lg shadow-md border-l-4 break-words {{.Style.Classes}}" data-type="{{.Item.Type}}" data-tone="{{.Style.Tone}}">
<div class="flex items-center space-x-2 mb-1"><span class="font-mono font-bold text-sm card-label">{{.Label}}</span><span class="font-semibold text-gray-100 card-title">{{.Title}}</span></div>
<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="text-blue-400 hover:underline text-sm card-url">{{.URL}}</a>
{{- with .NoteLine}}
<div class="text-gray-400 text-xs mt-2 italic card-note">{{.}}</div>
{{- end}}
{{- if .Badges}}
<div class="flex flex-wrap gap-2 mt-2 card-badges">{{range .Badges}}<span class="{{.Classes}} badge-{{.Kind}}">{{.Text}}</span>{{end}}</div>
{{- end}}
</div>
{{end}}{{end}}
{{define "error"}}<div class="p-3 bg-red-900 text-red-100 rounded-lg border-l-4 border-red-500 error-block">{{.}}</div>{{end}}`

var htmlTemplates = template.Must(template.New("feed").Parse(cardsTemplate))

// HTMLFragment renders cards as a trusted HTML fragment for embedding in a
// page template.
func HTMLFragment(cards []Card) (template.HTML, error) {
	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, "cards", cards); err != nil {
		return "", eris.Wrap(err, "feed: render cards")
	}
	return template.HTML(buf.String()), nil
}

// ErrorFragment renders msg as the highlighted error block. The message is
// escaped, never interpreted as markup.
func ErrorFragment(msg string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, "error", msg); err != nil {
		return "", eris.Wrap(err, "feed: render error")
	}
	return template.HTML(buf.String()), nil
}

// HTMLWriter writes cards as an HTML fragment.
type HTMLWriter struct {
	out io.Writer
}

// NewHTMLWriter creates an HTMLWriter that outputs to out.
func NewHTMLWriter(out io.Writer) *HTMLWriter {
	return &HTMLWriter{out: out}
}

// WriteCards renders off-screen first and attaches with one write.
func (w *HTMLWriter) WriteCards(cards []Card) error {
	frag, err := HTMLFragment(cards)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w.out, string(frag)); err != nil {
		return eris.Wrap(err, "feed: write html")
	}
	return nil
}
