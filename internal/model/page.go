package model

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// OutcomeType is the classification the crawl service assigns to each
// crawled resource. Unknown values are carried through unchanged.
type OutcomeType string

const (
	OutcomePage     OutcomeType = "Page"
	OutcomeBlocked  OutcomeType = "Blocked"
	OutcomeError    OutcomeType = "Error"
	OutcomeFile     OutcomeType = "File"
	OutcomeRedirect OutcomeType = "Redirect"
)

// AllOutcomeTypes returns the outcome types the renderer knows how to style.
func AllOutcomeTypes() []OutcomeType {
	return []OutcomeType{
		OutcomePage,
		OutcomeBlocked,
		OutcomeError,
		OutcomeFile,
		OutcomeRedirect,
	}
}

// Known reports whether t is one of the recognized outcome types.
func (t OutcomeType) Known() bool {
	for _, k := range AllOutcomeTypes() {
		if t == k {
			return true
		}
	}
	return false
}

// CrawlRequest is the body for POST /crawl.
type CrawlRequest struct {
	URL string `json:"url"`
}

// Services holds infrastructure fingerprints detected by the crawl service.
type Services struct {
	CDN string `json:"cdn,omitempty" yaml:"cdn,omitempty"`
	WAF string `json:"waf,omitempty" yaml:"waf,omitempty"`
}

// HasAny reports whether at least one fingerprint is present.
func (s *Services) HasAny() bool {
	return s != nil && (s.CDN != "" || s.WAF != "")
}

// CrawlResultItem is one crawled resource as reported by the crawl service.
type CrawlResultItem struct {
	URL      string      `json:"url" yaml:"url"`
	Status   Status      `json:"status" yaml:"status"`
	Title    string      `json:"title" yaml:"title"`
	Note     string      `json:"note,omitempty" yaml:"note,omitempty"`
	Type     OutcomeType `json:"type" yaml:"type"`
	Services *Services   `json:"services,omitempty" yaml:"services,omitempty"`
}

// DecodeResults parses a success-path payload into result items. A JSON null
// payload yields an empty, non-nil slice. Item order is preserved.
func DecodeResults(r io.Reader) ([]CrawlResultItem, error) {
	var items []CrawlResultItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, eris.Wrap(err, "model: decode crawl results")
	}
	if items == nil {
		items = []CrawlResultItem{}
	}
	return items, nil
}
