package threshold

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by WriteDetails for formats other than
// "text" and "yaml".
var ErrUnknownFormat = errors.New("threshold: unknown details format")

// WriteDetails renders d in the given format ("text" or "yaml").
func WriteDetails(w io.Writer, d Details, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		return WriteText(w, d)
	case "yaml", "yml":
		return WriteYAML(w, d)
	default:
		return ErrUnknownFormat
	}
}

// WriteText writes the human-readable report: one "label: value" line per
// metric, separated by blank lines.
func WriteText(w io.Writer, d Details) error {
	var b strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&b, "%s: %v\n\n", label, value)
	}

	line("Calculated threshold", g6(d.Threshold))
	line("Average instruction size(in bytes)", d.AvgInstructionSize)
	line("L1 instruction cache size(in bytes)", d.L1CacheSize)
	line("Cache instruction capacity(instruction number)", g6(d.CacheCapacity))
	line("Test case number", d.Cases)
	line("Case distances number", d.Pairs)
	line("Case distances below threshold", fmt.Sprintf("%d (%s%%)", d.PairsBelow, g6(d.PercentBelow)))
	line("Case distance average", g6(d.MeanDistance))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteYAML writes d as a YAML document.
func WriteYAML(w io.Writer, d Details) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// g6 formats v with six significant digits, trailing zeros trimmed.
func g6(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
