// Package theme holds the weekend theme presets: their colour triads and the
// moods each one suggests.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/weekend/pkg/activity"
)

// ID names a theme preset.
type ID string

const (
	Default     ID = "default"
	Lazy        ID = "lazy"
	Adventurous ID = "adventurous"
	Family      ID = "family"
)

// Colors is the primary/secondary/accent triad as CSS-style hsl() strings.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Theme is a named preset.
type Theme struct {
	ID             ID       `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Icon           string   `json:"icon"`
	Colors         Colors   `json:"colors"`
	SuggestedMoods []string `json:"suggestedMoods"`
}

// Suggests reports whether mood is one of the theme's suggested moods.
func (t Theme) Suggests(mood string) bool {
	for _, m := range t.SuggestedMoods {
		if m == mood {
			return true
		}
	}
	return false
}

// Recommended reports whether a should be flagged for this theme.
func (t Theme) Recommended(a activity.Activity) bool {
	return t.Suggests(a.Mood)
}

// Hex returns the triad converted to #rrggbb strings, in primary, secondary,
// accent order.
func (c Colors) Hex() (primary, secondary, accent string, err error) {
	if primary, err = HexOf(c.Primary); err != nil {
		return
	}
	if secondary, err = HexOf(c.Secondary); err != nil {
		return
	}
	accent, err = HexOf(c.Accent)
	return
}

// ParseHSL reads "hsl(158, 64%, 52%)". Hue is in degrees, saturation and
// lightness are returned as 0..1 fractions.
func ParseHSL(raw string) (h, s, l float64, err error) {
	v := strings.TrimSpace(raw)
	if !strings.HasPrefix(v, "hsl(") || !strings.HasSuffix(v, ")") {
		return 0, 0, 0, fmt.Errorf("theme: not an hsl colour %q", raw)
	}
	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(v, "hsl("), ")"), ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("theme: not an hsl colour %q", raw)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "%")
		f, perr := strconv.ParseFloat(p, 64)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("theme: bad hsl component %q: %w", p, perr)
		}
		vals[i] = f
	}
	return vals[0], vals[1] / 100, vals[2] / 100, nil
}

// HexOf converts an hsl() string to #rrggbb.
func HexOf(raw string) (string, error) {
	h, s, l, err := ParseHSL(raw)
	if err != nil {
		return "", err
	}
	return colorful.Hsl(h, s, l).Clamped().Hex(), nil
}
