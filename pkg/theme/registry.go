package theme

import (
	"fmt"
	"strings"
)

var presets = []Theme{
	{
		ID:          Default,
		Name:        "Balanced Weekend",
		Description: "Perfect mix of relaxation and activities",
		Icon:        "calendar",
		Colors: Colors{
			Primary:   "hsl(158, 64%, 52%)",
			Secondary: "hsl(158, 64%, 42%)",
			Accent:    "hsl(158, 64%, 62%)",
		},
		SuggestedMoods: []string{"relaxed", "social", "fun"},
	},
	{
		ID:          Lazy,
		Name:        "Lazy Weekend",
		Description: "Slow-paced, cozy, and restful activities",
		Icon:        "heart",
		Colors: Colors{
			Primary:   "hsl(217, 91%, 60%)",
			Secondary: "hsl(217, 91%, 50%)",
			Accent:    "hsl(217, 91%, 70%)",
		},
		SuggestedMoods: []string{"relaxed", "cozy", "peaceful"},
	},
	{
		ID:          Adventurous,
		Name:        "Adventurous Weekend",
		Description: "High-energy, outdoor, and exciting activities",
		Icon:        "zap",
		Colors: Colors{
			Primary:   "hsl(25, 95%, 53%)",
			Secondary: "hsl(25, 95%, 43%)",
			Accent:    "hsl(25, 95%, 63%)",
		},
		SuggestedMoods: []string{"energetic", "exciting", "exploratory"},
	},
	{
		ID:          Family,
		Name:        "Family Weekend",
		Description: "Family-friendly, social, and home-based activities",
		Icon:        "home",
		Colors: Colors{
			Primary:   "hsl(262, 83%, 58%)",
			Secondary: "hsl(262, 83%, 48%)",
			Accent:    "hsl(262, 83%, 68%)",
		},
		SuggestedMoods: []string{"fun", "social", "cozy"},
	},
}

// All returns every preset in display order.
func All() []Theme {
	out := make([]Theme, len(presets))
	for i, t := range presets {
		t.SuggestedMoods = append([]string(nil), t.SuggestedMoods...)
		out[i] = t
	}
	return out
}

// IDs returns the preset ids in display order.
func IDs() []ID {
	ids := make([]ID, 0, len(presets))
	for _, t := range presets {
		ids = append(ids, t.ID)
	}
	return ids
}

// Lookup finds the preset for id.
func Lookup(id ID) (Theme, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Get returns the preset for id, falling back to the default preset.
func Get(id ID) Theme {
	if t, ok := Lookup(id); ok {
		return t
	}
	t, _ := Lookup(Default)
	return t
}

// Parse validates user input as a theme id.
func Parse(raw string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := Lookup(id); !ok {
		return Default, fmt.Errorf("theme: unknown theme %q", raw)
	}
	return id, nil
}
