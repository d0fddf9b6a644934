// Package report renders resonance detection results for display.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/autiwa/mercurygo/pkg/resonance"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Entry is the displayable form of one pair result. Resonance holds the
// primary commensurability as "p+q:p", empty when none was accepted.
type Entry struct {
	Inner            string   `json:"inner" yaml:"inner"`
	Outer            string   `json:"outer" yaml:"outer"`
	Resonance        string   `json:"resonance,omitempty" yaml:"resonance,omitempty"`
	Extras           []string `json:"extras,omitempty" yaml:"extras,omitempty"`
	ApsidalAlignment bool     `json:"apsidal_alignment" yaml:"apsidal_alignment"`
}

// Build converts detector output into display entries.
func Build(results []resonance.PairResult) []Entry {
	entries := make([]Entry, 0, len(results))
	for _, res := range results {
		e := Entry{
			Inner:            res.Inner,
			Outer:            res.Outer,
			ApsidalAlignment: res.ApsidalAligned,
		}
		if res.Primary != nil {
			e.Resonance = res.Primary.String()
		}
		for _, c := range res.Secondary {
			e.Extras = append(e.Extras, c.String())
		}
		entries = append(entries, e)
	}
	return entries
}

// Write renders entries to w in the given format.
func Write(w io.Writer, entries []Entry, format string) error {
	switch format {
	case FormatText:
		return writeText(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(entries)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeText prints one line per pair. An asterisk marks apsidal
// alignment, matching the labels used on resonance diagrams.
func writeText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		label := e.Resonance
		if label == "" {
			label = "none"
		}
		if e.ApsidalAlignment {
			label += "*"
		}
		line := fmt.Sprintf("%s - %s: %s", e.Inner, e.Outer, label)
		if len(e.Extras) > 0 {
			line += " (also " + strings.Join(e.Extras, " ; ") + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
