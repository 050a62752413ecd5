// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
)

// CatalogOptions filters the activity catalog.
type CatalogOptions struct {
	Search   string
	Category string
}

// AddCatalogArgs wires the catalog filter flags.
func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Only list activities whose name contains this text.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "all",
		"Only list one category: "+strings.Join(categoryNames(), ", ")+".")
}

// ParsedCategory validates the --category flag.
func (o *CatalogOptions) ParsedCategory() (activity.Category, error) {
	return activity.ParseCategory(o.Category)
}

func categoryNames() []string {
	names := []string{string(activity.CategoryAll)}
	for _, c := range activity.AllCategories() {
		names = append(names, string(c))
	}
	return names
}

// PlaceOptions attaches a venue to a food activity.
type PlaceOptions struct {
	Place   string
	Address string
	Link    string
}

// AddPlaceArgs wires the venue flags.
func AddPlaceArgs(cmd *cobra.Command, o *PlaceOptions) {
	cmd.Flags().StringVar(&o.Place, "place", "",
		`Venue for a food activity, example: --place="Cafe Luna".`)
	cmd.Flags().StringVar(&o.Address, "address", "",
		"Street address of the venue.")
	cmd.Flags().StringVar(&o.Link, "link", "",
		"Map or booking link for the venue.")
}

// CustomOptions describes a user-defined activity.
type CustomOptions struct {
	Name     string
	Category string
	Duration string
	Location string
	Mood     string
}

// AddCustomArgs wires the custom activity flags.
func AddCustomArgs(cmd *cobra.Command, o *CustomOptions) {
	cmd.Flags().StringVar(&o.Name, "custom", "",
		"Add a custom activity with this name instead of a catalog id.")
	cmd.Flags().StringVar(&o.Category, "custom-category", "",
		"Category of the custom activity.")
	cmd.Flags().StringVar(&o.Duration, "duration", "",
		"Duration of the custom activity, example: --duration=\"1-2 hours\".")
	cmd.Flags().StringVar(&o.Location, "location", "",
		"Location of the custom activity.")
	cmd.Flags().StringVar(&o.Mood, "mood", "",
		"Mood of the custom activity.")
}

// Activity returns the custom activity, or nil when --custom is not set.
func (o *CustomOptions) Activity() (*app.CustomActivity, error) {
	if strings.TrimSpace(o.Name) == "" {
		return nil, nil
	}
	var cat activity.Category
	if o.Category != "" {
		c, err := activity.ParseCategory(o.Category)
		if err != nil {
			return nil, err
		}
		if c != activity.CategoryAll {
			cat = c
		}
	}
	return &app.CustomActivity{
		Name:     o.Name,
		Category: cat,
		Duration: o.Duration,
		Location: o.Location,
		Mood:     o.Mood,
	}, nil
}
