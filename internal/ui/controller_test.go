package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/zorah/internal/feed"
	"github.com/sells-group/zorah/internal/model"
	"github.com/sells-group/zorah/pkg/crawlsvc"
	"github.com/sells-group/zorah/pkg/crawlsvc/mocks"
)

// fakeView records every call the controller makes.
type fakeView struct {
	events  []string
	busy    bool
	status  string
	cards   []feed.Card
	attachN int
	errMsg  string
}

func (v *fakeView) SetBusy(b bool) {
	v.busy = b
	if b {
		v.events = append(v.events, "busy:on")
	} else {
		v.events = append(v.events, "busy:off")
	}
}

func (v *fakeView) ClearResults() {
	v.cards = nil
	v.errMsg = ""
	v.events = append(v.events, "clear")
}

func (v *fakeView) SetStatus(msg string) {
	v.status = msg
	v.events = append(v.events, "status")
}

func (v *fakeView) Attach(cards []feed.Card) {
	v.cards = append(v.cards, cards...)
	v.attachN++
	v.events = append(v.events, "attach")
}

func (v *fakeView) ShowError(msg string) {
	v.status = ""
	v.cards = nil
	v.errMsg = msg
	v.events = append(v.events, "error")
}

func newController(t *testing.T, client crawlsvc.Client) (*Controller, *fakeView) {
	t.Helper()
	v := &fakeView{}
	return NewController(client, v, WithLogger(zap.NewNop())), v
}

func TestSubmit_EmptyInput(t *testing.T) {
	inputs := map[string]string{
		"empty":      "",
		"space":      " ",
		"whitespace": "\t\n ",
	}
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			client := mocks.NewMockClient(t)
			c, v := newController(t, client)

			c.Submit(context.Background(), raw)

			client.AssertNotCalled(t, "Crawl", mock.Anything, mock.Anything)
			assert.Equal(t, MsgInvalidURL, v.errMsg)
			assert.Equal(t, []string{"error"}, v.events, "no busy affordances for a local rejection")

			st := c.State()
			assert.Equal(t, PhaseDisplayingError, st.Phase)
			assert.Equal(t, "Please enter a valid URL.", st.Message)
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	items := []model.CrawlResultItem{
		{URL: "https://a.example", Status: model.StatusCode(200), Type: model.OutcomePage},
		{URL: "https://b.example", Status: model.StatusCode(403), Type: model.OutcomeBlocked},
		{URL: "https://c.example", Status: model.StatusCode(500), Type: model.OutcomeError},
	}

	client := mocks.NewMockClient(t)
	c, v := newController(t, client)

	client.On("Crawl", mock.Anything, model.CrawlRequest{URL: " https://a.example"}).
		Run(func(args mock.Arguments) {
			assert.True(t, v.busy, "busy while the request is outstanding")
			assert.Equal(t, MsgInProgress, v.status)
			assert.Equal(t, PhaseBusy, c.State().Phase)
		}).
		Return(items, nil).Once()

	c.Submit(context.Background(), " https://a.example")

	assert.False(t, v.busy)
	assert.Equal(t, []string{"busy:on", "clear", "status", "status", "attach", "busy:off"}, v.events)
	assert.Equal(t, "Crawl finished. Processed 3 URLs.", v.status)
	assert.Equal(t, 1, v.attachN)
	require.Len(t, v.cards, 3)
	assert.Equal(t, "https://a.example", v.cards[0].URL)
	assert.Equal(t, "https://b.example", v.cards[1].URL)
	assert.Equal(t, "https://c.example", v.cards[2].URL)

	st := c.State()
	assert.Equal(t, PhaseDisplaying, st.Phase)
	assert.Equal(t, items, st.Items)
}

func TestSubmit_EmptyResults(t *testing.T) {
	client := mocks.NewMockClient(t)
	c, v := newController(t, client)
	client.On("Crawl", mock.Anything, mock.Anything).Return([]model.CrawlResultItem{}, nil).Once()

	c.Submit(context.Background(), "https://empty.example")

	assert.Equal(t, feed.MsgNoResults, v.status)
	assert.Empty(t, v.cards)
	assert.Zero(t, v.attachN)
	assert.Empty(t, v.errMsg)
	assert.Equal(t, PhaseDisplaying, c.State().Phase)
	assert.False(t, v.busy)
}

func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantKind ErrorKind
	}{
		{
			name:     "service error",
			err:      &crawlsvc.ServiceError{StatusCode: 400, Message: "No URL provided"},
			wantMsg:  "No URL provided",
			wantKind: KindService,
		},
		{
			name:     "transport error",
			err:      &crawlsvc.TransportError{Err: errors.New("connection refused")},
			wantMsg:  "connection refused",
			wantKind: KindTransport,
		},
		{
			name:     "unclassified error",
			err:      errors.New("boom"),
			wantMsg:  "boom",
			wantKind: KindTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockClient(t)
			c, v := newController(t, client)
			client.On("Crawl", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) { assert.True(t, v.busy) }).
				Return(nil, tt.err).Once()

			c.Submit(context.Background(), "https://example.com")

			assert.False(t, v.busy)
			assert.Equal(t, tt.wantMsg, v.errMsg)
			assert.Empty(t, v.cards)
			assert.Equal(t, []string{"busy:on", "clear", "status", "error", "busy:off"}, v.events)
			assert.Equal(t, tt.wantKind, Classify(tt.err))

			st := c.State()
			assert.Equal(t, PhaseDisplayingError, st.Phase)
			assert.Equal(t, tt.wantMsg, st.Message)
			assert.Nil(t, st.Items)
		})
	}
}

func TestSubmit_BusyReleasedOnPanic(t *testing.T) {
	client := mocks.NewMockClient(t)
	c, v := newController(t, client)
	client.On("Crawl", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { panic("client bug") }).
		Return(nil, nil).Once()

	assert.Panics(t, func() { c.Submit(context.Background(), "https://example.com") })
	assert.False(t, v.busy)
	assert.Equal(t, PhaseIdle, c.State().Phase)
}

func TestSubmit_ErrorReplacesPreviousResults(t *testing.T) {
	client := mocks.NewMockClient(t)
	c, v := newController(t, client)

	client.On("Crawl", mock.Anything, model.CrawlRequest{URL: "https://ok.example"}).
		Return([]model.CrawlResultItem{{URL: "https://ok.example", Type: model.OutcomePage}}, nil).Once()
	client.On("Crawl", mock.Anything, model.CrawlRequest{URL: "https://bad.example"}).
		Return(nil, &crawlsvc.ServiceError{StatusCode: 500, Message: "HTTP error! Status: 500"}).Once()

	c.Submit(context.Background(), "https://ok.example")
	require.Len(t, v.cards, 1)

	c.Submit(context.Background(), "https://bad.example")
	assert.Empty(t, v.cards)
	assert.Equal(t, "HTTP error! Status: 500", v.errMsg)

	client.On("Crawl", mock.Anything, model.CrawlRequest{URL: "https://ok.example"}).
		Return([]model.CrawlResultItem{{URL: "https://ok.example", Type: model.OutcomePage}}, nil).Once()
	c.Submit(context.Background(), "https://ok.example")
	assert.Empty(t, v.errMsg, "a new submission clears the previous error")
	assert.Equal(t, PhaseDisplaying, c.State().Phase)
}

func TestNewController_Idle(t *testing.T) {
	c := NewController(mocks.NewMockClient(t), &fakeView{})
	assert.Equal(t, PhaseIdle, c.State().Phase)
	assert.NotNil(t, c.log)
}

func TestSubmit_AgainstService(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		wantN   int
	}{
		{"error field", http.StatusForbidden, `{"error":"blocked by robots.txt"}`, "blocked by robots.txt", 0},
		{"fallback", http.StatusInternalServerError, `{}`, "HTTP error! Status: 500", 0},
		{"malformed success", http.StatusOK, `[{"url":`, "", 0},
		{"results", http.StatusOK, `[{"url":"https://a","status":200,"type":"Page"},{"url":"https://b","status":"N/A","type":"Error"}]`, "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, v := newController(t, crawlsvc.NewClient(crawlsvc.WithBaseURL(srv.URL)))
			c.Submit(context.Background(), "https://example.com")

			assert.Equal(t, int32(1), calls.Load(), "exactly one request per submission")
			assert.False(t, v.busy)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, v.errMsg)
			}
			if tt.name == "malformed success" {
				assert.Equal(t, PhaseDisplayingError, c.State().Phase)
				assert.NotEmpty(t, v.errMsg)
			}
			assert.Len(t, v.cards, tt.wantN)
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindInput, Classify(&InputError{Message: MsgInvalidURL}))
	assert.Equal(t, KindService, Classify(&crawlsvc.ServiceError{StatusCode: 502}))
	assert.Equal(t, KindTransport, Classify(&crawlsvc.TransportError{Err: context.Canceled}))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "busy", PhaseBusy.String())
	assert.Equal(t, "displaying", PhaseDisplaying.String())
	assert.Equal(t, "displaying_error", PhaseDisplayingError.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
