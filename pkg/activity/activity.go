// Package activity defines weekend activities, the fixed catalog they are
// drawn from, and the override values that let a selected activity diverge
// from its catalog entry.
package activity

import (
	"fmt"
	"strings"
)

// Category groups activities for browsing and colour accents.
type Category string

const (
	// CategoryAll is the browse filter that matches every category.
	CategoryAll           Category = "all"
	CategoryOutdoor       Category = "outdoor"
	CategoryFood          Category = "food"
	CategoryEntertainment Category = "entertainment"
	CategoryRelaxation    Category = "relaxation"
	CategoryFitness       Category = "fitness"
	CategorySocial        Category = "social"
	// CategoryIndoor and CategoryCreative only occur on custom activities.
	CategoryIndoor   Category = "indoor"
	CategoryCreative Category = "creative"
)

// AllCategories returns the categories accepted for activities, in browse order.
func AllCategories() []Category {
	return []Category{
		CategoryOutdoor,
		CategoryFood,
		CategoryEntertainment,
		CategoryRelaxation,
		CategoryFitness,
		CategorySocial,
		CategoryIndoor,
		CategoryCreative,
	}
}

// ParseCategory converts user input to a Category. An empty string and "all"
// both yield CategoryAll.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" || c == CategoryAll {
		return CategoryAll, nil
	}
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return CategoryAll, fmt.Errorf("activity: unknown category %q", raw)
}

// Activity is a candidate weekend activity. Catalog entries are immutable;
// selected copies may carry overridden Name, Location or LinkURL values.
type Activity struct {
	ID       int      `json:"id"`
	Name     string   `json:"name,omitempty"`
	Category Category `json:"category,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Location string   `json:"location,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	Icon     string   `json:"icon,omitempty"`
	Color    string   `json:"color,omitempty"`
	LinkURL  string   `json:"externalLinkUrl,omitempty"`
}

// Merge returns a copy of a with every non-empty field of in laid over it.
// The id of a is kept.
func (a Activity) Merge(in Activity) Activity {
	out := a
	if in.Name != "" {
		out.Name = in.Name
	}
	if in.Category != "" {
		out.Category = in.Category
	}
	if in.Duration != "" {
		out.Duration = in.Duration
	}
	if in.Location != "" {
		out.Location = in.Location
	}
	if in.Mood != "" {
		out.Mood = in.Mood
	}
	if in.Icon != "" {
		out.Icon = in.Icon
	}
	if in.Color != "" {
		out.Color = in.Color
	}
	if in.LinkURL != "" {
		out.LinkURL = in.LinkURL
	}
	return out
}

// WithPlace returns the activity rebound to a real-world place, the way an
// accepted place-search result is attached.
func (a Activity) WithPlace(place, address, link string) Activity {
	out := a
	if place = strings.TrimSpace(place); place != "" {
		out.Name = fmt.Sprintf("%s @ %s", a.Name, place)
	}
	if address = strings.TrimSpace(address); address != "" {
		out.Location = address
	}
	if link = strings.TrimSpace(link); link != "" {
		out.LinkURL = link
	}
	return out
}

func (a Activity) String() string {
	if a.Name == "" {
		return fmt.Sprintf("#%d", a.ID)
	}
	return a.Name
}
