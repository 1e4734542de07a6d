// Package web serves the crawl form page and renders submissions
// server-side.
package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/zorah/internal/ui"
	"github.com/sells-group/zorah/pkg/crawlsvc"
)

// MsgRateLimited is shown when submissions arrive faster than the crawl
// service is allowed to receive them.
const MsgRateLimited = "Too many crawl requests. Please wait a moment and try again."

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithAllowedOrigins enables CORS for the given origins.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithSubmitLimit caps how often submissions reach the crawl service.
func WithSubmitLimit(perSecond float64, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// Server hosts the crawl page.
type Server struct {
	client  crawlsvc.Client
	log     *zap.Logger
	origins []string
	limiter *rate.Limiter
}

// NewServer creates a Server submitting crawls through client.
func NewServer(client crawlsvc.Client, opts ...Option) *Server {
	s := &Server{
		client:  client,
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.L()
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(s.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSubmit)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, newPageView(), "")
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	raw := r.PostForm.Get("url")
	view := newPageView()

	if !s.limiter.Allow() {
		s.log.Warn("crawl submission rate limited", zap.String("remote", r.RemoteAddr))
		view.ShowError(MsgRateLimited)
		s.render(w, http.StatusTooManyRequests, view, raw)
		return
	}

	start := time.Now()
	ctl := ui.NewController(s.client, view, ui.WithLogger(s.log))
	ctl.Submit(r.Context(), raw)

	st := ctl.State()
	s.log.Debug("submission rendered",
		zap.String("phase", st.Phase.String()),
		zap.Int("cards", len(view.cards)),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.render(w, http.StatusOK, view, raw)
}

// render builds the whole page before writing, so a template failure never
// leaves a half-written document.
func (s *Server) render(w http.ResponseWriter, status int, v *pageView, input string) {
	data, err := v.page(input)
	if err == nil {
		var buf bytes.Buffer
		if err = page.Execute(&buf, data); err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			w.Write(buf.Bytes())
			return
		}
		err = eris.Wrap(err, "web: execute page template")
	}
	s.log.Error("render page", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
