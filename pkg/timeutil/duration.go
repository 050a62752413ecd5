// Package timeutil reads the free-text activity durations shown in the
// catalog ("2-3 hours", "6+ hours", "1h30m") as estimated spans.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	rangePattern   = regexp.MustCompile(`^(\d+)\s*(?:-\s*(\d+))?\s*(\+)?\s*([a-z]+)$`)
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
	}
)

// Span is an estimated length. Open spans have no stated upper bound.
type Span struct {
	Min  time.Duration
	Max  time.Duration
	Open bool
}

// ParseSpan reads a range such as "2-3 hours", an open range such as
// "6+ hours", a single value such as "45 min", or compact segments such
// as "1h30m".
func ParseSpan(input string) (Span, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return Span{}, fmt.Errorf("empty duration")
	}

	if m := rangePattern.FindStringSubmatch(lower); m != nil {
		unit, ok := unitMap[m[4]]
		if !ok {
			return Span{}, fmt.Errorf("unsupported duration unit %q", m[4])
		}
		lo, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Span{}, fmt.Errorf("invalid duration value %q: %w", m[1], err)
		}
		hi := lo
		if m[2] != "" {
			if hi, err = strconv.ParseInt(m[2], 10, 64); err != nil {
				return Span{}, fmt.Errorf("invalid duration value %q: %w", m[2], err)
			}
		}
		if lo <= 0 || hi < lo {
			return Span{}, fmt.Errorf("invalid duration range %q", input)
		}
		return Span{
			Min:  time.Duration(lo) * unit,
			Max:  time.Duration(hi) * unit,
			Open: m[3] != "",
		}, nil
	}

	total, err := parseSegments(lower)
	if err != nil {
		return Span{}, err
	}
	return Span{Min: total, Max: total}, nil
}

func parseSegments(remaining string) (time.Duration, error) {
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = strings.TrimLeft(remaining[len(matches[0]):], " ")
	}
	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return total, nil
}

// Add sums two spans.
func (s Span) Add(o Span) Span {
	return Span{Min: s.Min + o.Min, Max: s.Max + o.Max, Open: s.Open || o.Open}
}

// IsZero reports whether nothing has been added to s.
func (s Span) IsZero() bool {
	return s.Min == 0 && s.Max == 0
}

func (s Span) String() string {
	if s.IsZero() {
		return "0m"
	}
	out := Format(s.Min)
	if s.Max != s.Min {
		out += "-" + Format(s.Max)
	}
	if s.Open {
		out += "+"
	}
	return out
}

// Format renders a duration using day/hour/minute tokens, e.g. "1h30m".
func Format(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, "")
}
