// Package topicdoc turns free-form model output into a validated topic document.
package topicdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformed wraps every reason a payload is not a usable topic document.
var ErrMalformed = errors.New("topicdoc: malformed document")

var validate = validator.New(validator.WithRequiredStructEnabled())

type Document struct {
	Title    string    `json:"title" validate:"required"`
	Sections []Section `json:"sections" validate:"required,min=1,dive"`
}

type Section struct {
	Name   string   `json:"name" validate:"required"`
	Topics []string `json:"topics" validate:"required,min=1,dive,required"`
}

// Extract returns the outermost {...} span of raw. Surrounding prose and
// markdown fences are dropped.
func Extract(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("%w: no JSON object found", ErrMalformed)
	}
	return raw[start : end+1], nil
}

// Decode parses an exact JSON document and validates its shape.
func Decode(data []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}
	doc.normalize()
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}

// Parse extracts and decodes a document from model output.
func Parse(raw string) (*Document, error) {
	span, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	return Decode([]byte(span))
}

// ParseRaw accepts either an inline JSON object or a JSON string holding one.
func ParseRaw(data json.RawMessage) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return Parse(s)
	}
	return Decode(trimmed)
}

// JSON is the canonical serialization stored and returned to clients.
func (d *Document) JSON() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// TopicCount sums topics over all sections.
func (d *Document) TopicCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Topics)
	}
	return n
}

func (d *Document) normalize() {
	d.Title = strings.TrimSpace(d.Title)
	for i := range d.Sections {
		s := &d.Sections[i]
		s.Name = strings.TrimSpace(s.Name)
		for j := range s.Topics {
			s.Topics[j] = strings.TrimSpace(s.Topics[j])
		}
	}
}
