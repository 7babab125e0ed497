// Package report renders variant search outcomes for people and programs.
//
// Three formats are supported:
//
//   - Text: a styled list with the changed digits of each variation
//     highlighted against the original, followed by the summary line.
//   - JSON and YAML: the same data as a stable document
//     (id, original, entries[{cpf, differences}], checked, level, levels,
//     elapsed, summary).
//
// Styling is optional; with color disabled Text output is plain ASCII plus
// the check mark.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cpfvariant/variant"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for names other than text, json and yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders out to w in format f. color only affects Text.
func Write(w io.Writer, out variant.Outcome, f Format, color bool) error {
	switch f {
	case Text:
		return WriteText(w, out, color)
	case JSON:
		return WriteJSON(w, out)
	case YAML:
		return WriteYAML(w, out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

type document struct {
	ID       string  `json:"id" yaml:"id"`
	Original string  `json:"original" yaml:"original"`
	Entries  []entry `json:"entries" yaml:"entries"`
	Checked  int     `json:"checked" yaml:"checked"`
	Level    int     `json:"level" yaml:"level"`
	Levels   []level `json:"levels" yaml:"levels"`
	Elapsed  string  `json:"elapsed" yaml:"elapsed"`
	Summary  string  `json:"summary" yaml:"summary"`
}

type entry struct {
	CPF         string `json:"cpf" yaml:"cpf"`
	Differences int    `json:"differences" yaml:"differences"`
}

type level struct {
	Level        int `json:"level" yaml:"level"`
	PositionSets int `json:"position_sets" yaml:"position_sets"`
	Checked      int `json:"checked" yaml:"checked"`
	Found        int `json:"found" yaml:"found"`
}

func newDocument(out variant.Outcome) document {
	doc := document{
		ID:       out.ID.String(),
		Original: out.Original,
		Entries:  make([]entry, 0, len(out.Entries)),
		Checked:  out.Checked,
		Level:    out.Level,
		Levels:   make([]level, 0, len(out.Levels)),
		Elapsed:  out.Elapsed.String(),
		Summary:  out.Summary(),
	}
	for _, e := range out.Entries {
		doc.Entries = append(doc.Entries, entry{CPF: e.Formatted, Differences: e.Differences})
	}
	for _, l := range out.Levels {
		doc.Levels = append(doc.Levels, level{
			Level:        l.Level,
			PositionSets: l.PositionSets,
			Checked:      l.Checked,
			Found:        l.Found,
		})
	}

	return doc
}

// WriteJSON writes out as an indented JSON document.
func WriteJSON(w io.Writer, out variant.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(newDocument(out))
}

// WriteYAML writes out as a YAML document.
func WriteYAML(w io.Writer, out variant.Outcome) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(out)); err != nil {
		return err
	}

	return enc.Close()
}
