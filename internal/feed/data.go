package feed

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// JSONWriter writes the underlying result items as a JSON array.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to out.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// WriteCards encodes the items behind cards, in card order.
func (w *JSONWriter) WriteCards(cards []Card) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items(cards)); err != nil {
		return eris.Wrap(err, "feed: encode json")
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return eris.Wrap(err, "feed: write json")
	}
	return nil
}

// YAMLWriter writes the underlying result items as a YAML sequence.
type YAMLWriter struct {
	out io.Writer
}

// NewYAMLWriter creates a YAMLWriter that outputs to out.
func NewYAMLWriter(out io.Writer) *YAMLWriter {
	return &YAMLWriter{out: out}
}

// WriteCards encodes the items behind cards, in card order.
func (w *YAMLWriter) WriteCards(cards []Card) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(items(cards)); err != nil {
		return eris.Wrap(err, "feed: encode yaml")
	}
	if err := enc.Close(); err != nil {
		return eris.Wrap(err, "feed: flush yaml")
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return eris.Wrap(err, "feed: write yaml")
	}
	return nil
}
