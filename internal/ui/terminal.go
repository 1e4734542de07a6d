package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/sells-group/zorah/internal/feed"
)

var spinnerFrames = []string{"|", "/", "-", `\`}

// TerminalView renders a submission on a terminal: status lines and the
// progress spinner go to status, cards go through the feed writer.
type TerminalView struct {
	status   *lineWriter
	cards    feed.Writer
	spinner  bool
	interval time.Duration

	mu       sync.Mutex
	busy     bool
	stop     chan struct{}
	done     chan struct{}
	writeErr error

	statusColor *color.Color
	errorColor  *color.Color
}

// TerminalOption configures a TerminalView.
type TerminalOption func(*TerminalView)

// WithSpinner enables the animated progress indicator while busy.
func WithSpinner(interval time.Duration) TerminalOption {
	return func(v *TerminalView) {
		v.spinner = true
		v.interval = interval
	}
}

// WithColor forces colored status output on or off.
func WithColor(enabled bool) TerminalOption {
	return func(v *TerminalView) {
		for _, c := range []*color.Color{v.statusColor, v.errorColor} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewTerminalView creates a TerminalView.
func NewTerminalView(status io.Writer, cards feed.Writer, opts ...TerminalOption) *TerminalView {
	v := &TerminalView{
		status:      &lineWriter{w: status},
		cards:       cards,
		statusColor: color.New(color.FgCyan),
		errorColor:  color.New(color.FgHiWhite, color.BgRed, color.Bold),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Busy reports whether busy affordances are currently shown.
func (v *TerminalView) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

// Err returns the first error from writing cards, if any.
func (v *TerminalView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.writeErr
}

func (v *TerminalView) SetBusy(busy bool) {
	v.mu.Lock()
	if v.busy == busy {
		v.mu.Unlock()
		return
	}
	v.busy = busy
	if busy && v.spinner {
		v.stop = make(chan struct{})
		v.done = make(chan struct{})
		go v.spin(v.stop, v.done)
	}
	stop, done := v.stop, v.done
	if !busy {
		v.stop, v.done = nil, nil
	}
	v.mu.Unlock()

	if !busy && stop != nil {
		close(stop)
		<-done
	}
}

func (v *TerminalView) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		v.status.frame(fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], LabelBusy))
		select {
		case <-stop:
			v.status.clearFrame()
			return
		case <-ticker.C:
		}
	}
}

// ClearResults is a no-op: a terminal cannot take back printed output.
func (v *TerminalView) ClearResults() {}

func (v *TerminalView) SetStatus(msg string) {
	if msg == "" {
		return
	}
	v.status.line(v.statusColor.Sprint(msg))
}

func (v *TerminalView) Attach(cards []feed.Card) {
	if err := v.cards.WriteCards(cards); err != nil {
		zap.L().Error("write cards", zap.Error(err))
		v.mu.Lock()
		if v.writeErr == nil {
			v.writeErr = err
		}
		v.mu.Unlock()
	}
}

func (v *TerminalView) ShowError(msg string) {
	v.status.line(v.errorColor.Sprint(" " + msg + " "))
}

// lineWriter serializes spinner frames with status lines. A frame is
// drawn in place with a carriage return and must be erased before a full
// line can be printed on the same row.
type lineWriter struct {
	mu     sync.Mutex
	w      io.Writer
	framed bool
}

const eraseLine = "\r\033[K"

func (l *lineWriter) frame(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, "\r"+s)
	l.framed = true
}

func (l *lineWriter) clearFrame() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.framed {
		io.WriteString(l.w, eraseLine)
		l.framed = false
	}
}

func (l *lineWriter) line(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.framed {
		s = eraseLine + s
		l.framed = false
	}
	io.WriteString(l.w, s+"\n")
}
