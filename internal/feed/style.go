package feed

import (
	"fmt"

	"github.com/sells-group/zorah/internal/model"
)

// Tone is the visual treatment family of a card.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
	ToneInfo    Tone = "info"
	ToneDefault Tone = "default"
)

// Style describes how one outcome type is presented.
type Style struct {
	Tone    Tone
	Classes string // background and border utility classes
	Suffix  string // label suffix after the status; empty means none
}

// Label formats the status label shown at the top of a card.
func (s Style) Label(status model.Status) string {
	if s.Suffix == "" {
		return fmt.Sprintf("[%s]", status)
	}
	return fmt.Sprintf("[%s %s]", status, s.Suffix)
}

var styles = map[model.OutcomeType]Style{
	model.OutcomePage:     {Tone: ToneSuccess, Classes: "bg-gray-800 border-green-500", Suffix: "OK"},
	model.OutcomeBlocked:  {Tone: ToneWarning, Classes: "bg-yellow-900 border-yellow-500", Suffix: "BLOCKED"},
	model.OutcomeError:    {Tone: ToneDanger, Classes: "bg-red-900 border-red-500", Suffix: "ERROR"},
	model.OutcomeFile:     {Tone: ToneNeutral, Classes: "bg-gray-700 border-gray-500", Suffix: "FILE"},
	model.OutcomeRedirect: {Tone: ToneInfo, Classes: "bg-blue-900 border-blue-500", Suffix: "REDIRECT"},
}

// DefaultStyle applies to any outcome type the table does not list.
var DefaultStyle = Style{Tone: ToneDefault, Classes: "bg-gray-800 border-gray-500"}

// StyleFor looks up the presentation for an outcome type.
func StyleFor(t model.OutcomeType) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return DefaultStyle
}
