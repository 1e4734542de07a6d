// Package ui drives the lifecycle of a crawl submission against a View.
package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/zorah/internal/feed"
	"github.com/sells-group/zorah/internal/model"
	"github.com/sells-group/zorah/pkg/crawlsvc"
)

// User-facing messages set by the controller.
const (
	MsgInvalidURL = "Please enter a valid URL."
	MsgInProgress = "Crawling in progress... This may take a few minutes."
)

// Busy affordance labels for the submit control.
const (
	LabelIdle = "Start Crawl"
	LabelBusy = "Crawling..."
)

// View is the rendering substrate the controller drives.
type View interface {
	feed.Display
	// SetBusy toggles every busy affordance: the disabled submit control,
	// its alternate label and the progress indicator.
	SetBusy(busy bool)
	// ClearResults removes any displayed cards or error block.
	ClearResults()
	// ShowError clears the status line and replaces displayed results with
	// a single error block containing msg verbatim.
	ShowError(msg string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller owns the state of one client and runs submissions.
//
// It does not serialize submissions: a second Submit while one is in flight
// runs concurrently, and the view's disabled control is the only guard.
type Controller struct {
	client crawlsvc.Client
	view   View
	log    *zap.Logger

	mu    sync.Mutex
	state State
}

// NewController creates an idle Controller.
func NewController(client crawlsvc.Client, view View, opts ...Option) *Controller {
	c := &Controller{
		client: client,
		view:   view,
		state:  idle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.L()
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Submit runs one crawl for raw. Only emptiness is checked locally, and raw
// is sent exactly as given. Busy affordances are released on every exit.
func (c *Controller) Submit(ctx context.Context, raw string) {
	if strings.TrimSpace(raw) == "" {
		c.fail(c.log, &InputError{Message: MsgInvalidURL})
		return
	}

	log := c.log.With(
		zap.String("submission_id", uuid.NewString()),
		zap.String("url", raw),
	)

	c.setState(busy())
	c.view.SetBusy(true)
	defer c.release()

	c.view.ClearResults()
	c.view.SetStatus(MsgInProgress)
	log.Info("crawl submitted")

	items, err := c.client.Crawl(ctx, model.CrawlRequest{URL: raw})
	if err != nil {
		c.fail(log, err)
		return
	}

	feed.Render(c.view, items)
	c.setState(displaying(items))
	log.Info("crawl finished", zap.Int("items", len(items)))
}

// release reverts busy affordances. A submission that never reached a
// terminal state (the client panicked) falls back to idle.
func (c *Controller) release() {
	c.view.SetBusy(false)

	c.mu.Lock()
	if c.state.Phase == PhaseBusy {
		c.state = idle()
	}
	c.mu.Unlock()
}

func (c *Controller) fail(log *zap.Logger, err error) {
	kind := Classify(err)
	fields := []zap.Field{zap.String("kind", string(kind)), zap.Error(err)}
	var svcErr *crawlsvc.ServiceError
	if errors.As(err, &svcErr) {
		fields = append(fields, zap.Int("status_code", svcErr.StatusCode))
	}

	if kind == KindInput {
		log.Debug("crawl rejected", fields...)
	} else {
		log.Warn("crawl failed", fields...)
	}

	msg := err.Error()
	c.view.ShowError(msg)
	c.setState(displayingError(msg))
}
