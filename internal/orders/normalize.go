package orders

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// StringList accepts either a JSON array of strings or a single
// comma-delimited string and always decodes to a list. Segments from the
// delimited form are trimmed and empty segments dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*l = SplitDelimited(joined)
	return nil
}

// SplitDelimited splits a comma-delimited string into trimmed, non-empty
// segments. The result is empty (never nil) for a blank input.
func SplitDelimited(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// BreakdownColorList accepts the canonical list of {name, unit_price}
// records as well as the legacy list of bare colour names. Legacy names
// are upgraded to records with a zero unit price.
type BreakdownColorList []BreakdownColor

func (l *BreakdownColorList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	colors := make([]BreakdownColor, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			colors = append(colors, BreakdownColor{Name: name, UnitPrice: decimal.Zero})
			continue
		}
		var color BreakdownColor
		if err := json.Unmarshal(item, &color); err != nil {
			return err
		}
		colors = append(colors, color)
	}
	*l = colors
	return nil
}

// Names returns the colour names without pricing.
func (l BreakdownColorList) Names() []string {
	names := make([]string, 0, len(l))
	for _, c := range l {
		names = append(names, c.Name)
	}
	return names
}

// normalizeLines back-fills per-line colours and size ranges from the
// breakdown when the line omits them, and applies line defaults. Explicit
// non-empty values are never overwritten. Idempotent.
func normalizeLines(lines []OrderLine, breakdown SizeColourBreakdown) []OrderLine {
	out := make([]OrderLine, len(lines))
	for i, line := range lines {
		if len(line.Colors) == 0 {
			line.Colors = breakdown.Colors.Names()
		}
		if len(line.SizeRange) == 0 {
			line.SizeRange = append([]string(nil), breakdown.Sizes...)
		}
		if line.Unit == "" {
			line.Unit = "pcs"
		}
		out[i] = line
	}
	return out
}
