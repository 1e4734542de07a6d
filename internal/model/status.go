package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/rotisserie/eris"
)

// StatusUnavailable is the sentinel the crawl service sends when a resource
// produced no HTTP response at all.
const StatusUnavailable = "N/A"

// Status is an HTTP-like status code or a service-defined sentinel string.
// The service emits either a JSON number (200) or a string ("N/A"). The zero
// value means no status was sent; a numeric 0 is a real value.
type Status struct {
	Code int
	Text string
	set  bool
}

// StatusCode returns a numeric Status.
func StatusCode(code int) Status {
	return Status{Code: code, set: true}
}

// StatusText returns a sentinel Status. An empty text is no status.
func StatusText(text string) Status {
	if text == "" {
		return Status{}
	}
	return Status{Text: text, set: true}
}

// IsZero reports whether no status was sent.
func (s Status) IsZero() bool {
	return !s.set
}

// String renders the status the way it appears in card labels.
func (s Status) String() string {
	switch {
	case !s.set:
		return StatusUnavailable
	case s.Text != "":
		return s.Text
	default:
		return strconv.Itoa(s.Code)
	}
}

// UnmarshalJSON accepts an integral number, a string, or null.
func (s *Status) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Status{}
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return eris.Wrap(err, "model: decode status string")
		}
		if code, err := strconv.Atoi(text); err == nil {
			*s = StatusCode(code)
			return nil
		}
		*s = StatusText(text)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return eris.Wrap(err, "model: decode status")
	}
	code, err := statusCode(n)
	if err != nil {
		return err
	}
	*s = StatusCode(code)
	return nil
}

// statusCode converts n to an int, rejecting fractions and values outside
// the int32 range instead of truncating them.
func statusCode(n json.Number) (int, error) {
	if code, err := n.Int64(); err == nil {
		if code < math.MinInt32 || code > math.MaxInt32 {
			return 0, eris.Errorf("model: status %s out of range", n)
		}
		return int(code), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, eris.Wrap(err, "model: decode status number")
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, eris.Errorf("model: status %s is not an integer code", n)
	}
	return int(f), nil
}

// MarshalJSON writes the status back in the service's own shape.
func (s Status) MarshalJSON() ([]byte, error) {
	switch {
	case !s.set:
		return []byte("null"), nil
	case s.Text != "":
		return json.Marshal(s.Text)
	default:
		return json.Marshal(s.Code)
	}
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (s Status) MarshalYAML() (any, error) {
	switch {
	case !s.set:
		return nil, nil
	case s.Text != "":
		return s.Text, nil
	default:
		return s.Code, nil
	}
}
