package activity

import (
	"strings"
	"time"
)

// Catalog is an immutable table of activity definitions keyed by id.
type Catalog struct {
	items []Activity
	byID  map[int]int
}

// NewCatalog builds a catalog from items. Later duplicates of an id are ignored.
func NewCatalog(items ...Activity) *Catalog {
	c := &Catalog{
		items: make([]Activity, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	for _, a := range items {
		if _, dup := c.byID[a.ID]; dup {
			continue
		}
		c.byID[a.ID] = len(c.items)
		c.items = append(c.items, a)
	}
	return c
}

// Lookup returns the catalog entry for id.
func (c *Catalog) Lookup(id int) (Activity, bool) {
	if c == nil {
		return Activity{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Activity{}, false
	}
	return c.items[i], true
}

// Contains reports whether id is a catalog id.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.Lookup(id)
	return ok
}

// All returns a copy of every entry in catalog order.
func (c *Catalog) All() []Activity {
	if c == nil {
		return nil
	}
	return append([]Activity(nil), c.items...)
}

// Len is the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Filter returns entries whose name contains query (case-insensitive) and
// whose category matches. CategoryAll or "" matches everything.
func (c *Catalog) Filter(query string, category Category) []Activity {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Activity, 0, c.Len())
	for _, a := range c.All() {
		if q != "" && !strings.Contains(strings.ToLower(a.Name), q) {
			continue
		}
		if category != "" && category != CategoryAll && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Matching returns entries whose mood is one of moods.
func (c *Catalog) Matching(moods []string) []Activity {
	set := make(map[string]struct{}, len(moods))
	for _, m := range moods {
		set[m] = struct{}{}
	}
	out := make([]Activity, 0)
	for _, a := range c.All() {
		if _, ok := set[a.Mood]; ok {
			out = append(out, a)
		}
	}
	return out
}

var customColors = map[Category]string{
	CategoryOutdoor:  "bg-emerald-100 text-emerald-700",
	CategoryIndoor:   "bg-blue-100 text-blue-700",
	CategorySocial:   "bg-purple-600 text-white",
	CategoryFitness:  "bg-orange-100 text-orange-700",
	CategoryCreative: "bg-pink-100 text-pink-700",
	CategoryFood:     "bg-yellow-100 text-yellow-700",
}

// NewCustom mints a user-created activity. The id is derived from now in
// unix milliseconds, which never collides with the small catalog ids.
func NewCustom(now time.Time, name string, category Category, duration, location, mood string) Activity {
	color, ok := customColors[category]
	if !ok {
		color = "bg-gray-100 text-gray-700"
	}
	if duration == "" {
		duration = "1-2 hours"
	}
	if location == "" {
		location = "Local"
	}
	if mood == "" {
		mood = "relaxed"
	}
	return Activity{
		ID:       int(now.UnixMilli()),
		Name:     strings.TrimSpace(name),
		Category: category,
		Duration: duration,
		Location: location,
		Mood:     mood,
		Icon:     "sparkles",
		Color:    color,
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return NewCatalog(defaultActivities...)
}

var defaultActivities = []Activity{
	{ID: 1, Name: "Morning Hike", Category: CategoryOutdoor, Duration: "2-3 hours", Location: "Local trails", Mood: "energetic", Icon: "mountain", Color: "bg-green-100 text-green-700"},
	{ID: 2, Name: "Picnic in the Park", Category: CategoryOutdoor, Duration: "2-4 hours", Location: "City park", Mood: "relaxed", Icon: "users", Color: "bg-green-100 text-green-700"},
	{ID: 3, Name: "Beach Day", Category: CategoryOutdoor, Duration: "4-6 hours", Location: "Beach", Mood: "fun", Icon: "map-pin", Color: "bg-green-100 text-green-700"},
	{ID: 4, Name: "Cycling Adventure", Category: CategoryOutdoor, Duration: "1-3 hours", Location: "Bike trails", Mood: "energetic", Icon: "mountain", Color: "bg-green-100 text-green-700"},
	{ID: 5, Name: "Outdoor Photography", Category: CategoryOutdoor, Duration: "2-4 hours", Location: "Various", Mood: "exploratory", Icon: "camera", Color: "bg-green-100 text-green-700"},

	{ID: 6, Name: "Brunch with Friends", Category: CategoryFood, Duration: "2-3 hours", Location: "Restaurant", Mood: "social", Icon: "coffee", Color: "bg-orange-100 text-orange-700"},
	{ID: 7, Name: "Cooking Class", Category: CategoryFood, Duration: "3-4 hours", Location: "Cooking studio", Mood: "fun", Icon: "utensils", Color: "bg-orange-100 text-orange-700"},
	{ID: 8, Name: "Food Market Tour", Category: CategoryFood, Duration: "2-3 hours", Location: "Local market", Mood: "exploratory", Icon: "shopping-bag", Color: "bg-orange-100 text-orange-700"},
	{ID: 9, Name: "Wine Tasting", Category: CategoryFood, Duration: "2-3 hours", Location: "Winery", Mood: "relaxed", Icon: "utensils", Color: "bg-orange-100 text-orange-700"},

	{ID: 10, Name: "Movie Marathon", Category: CategoryEntertainment, Duration: "4-6 hours", Location: "Home/Cinema", Mood: "cozy", Icon: "film", Color: "bg-purple-100 text-purple-700"},
	{ID: 11, Name: "Live Music Concert", Category: CategoryEntertainment, Duration: "3-4 hours", Location: "Venue", Mood: "exciting", Icon: "music", Color: "bg-purple-100 text-purple-700"},
	{ID: 12, Name: "Board Game Night", Category: CategoryEntertainment, Duration: "2-4 hours", Location: "Home", Mood: "fun", Icon: "gamepad", Color: "bg-purple-100 text-purple-700"},
	{ID: 13, Name: "Art Gallery Visit", Category: CategoryEntertainment, Duration: "2-3 hours", Location: "Gallery", Mood: "peaceful", Icon: "palette", Color: "bg-purple-100 text-purple-700"},

	{ID: 14, Name: "Spa Day", Category: CategoryRelaxation, Duration: "3-5 hours", Location: "Spa/Home", Mood: "peaceful", Icon: "heart", Color: "bg-blue-100 text-blue-700"},
	{ID: 15, Name: "Reading Session", Category: CategoryRelaxation, Duration: "2-4 hours", Location: "Home/Cafe", Mood: "cozy", Icon: "book", Color: "bg-blue-100 text-blue-700"},
	{ID: 16, Name: "Meditation & Yoga", Category: CategoryRelaxation, Duration: "1-2 hours", Location: "Home/Studio", Mood: "peaceful", Icon: "heart", Color: "bg-blue-100 text-blue-700"},
	{ID: 17, Name: "Coffee Shop Visit", Category: CategoryRelaxation, Duration: "1-2 hours", Location: "Cafe", Mood: "cozy", Icon: "coffee", Color: "bg-blue-100 text-blue-700"},

	{ID: 18, Name: "Gym Workout", Category: CategoryFitness, Duration: "1-2 hours", Location: "Gym", Mood: "energetic", Icon: "dumbbell", Color: "bg-red-100 text-red-700"},
	{ID: 19, Name: "Rock Climbing", Category: CategoryFitness, Duration: "2-3 hours", Location: "Climbing gym", Mood: "exciting", Icon: "mountain", Color: "bg-red-100 text-red-700"},
	{ID: 20, Name: "Swimming", Category: CategoryFitness, Duration: "1-2 hours", Location: "Pool", Mood: "energetic", Icon: "zap", Color: "bg-red-100 text-red-700"},

	{ID: 21, Name: "Visit Family", Category: CategorySocial, Duration: "3-5 hours", Location: "Family home", Mood: "social", Icon: "home", Color: "bg-purple-600 text-white"},
	{ID: 22, Name: "Game Night with Friends", Category: CategorySocial, Duration: "3-4 hours", Location: "Home", Mood: "fun", Icon: "gamepad", Color: "bg-purple-600 text-white"},
	{ID: 23, Name: "Double Date", Category: CategorySocial, Duration: "3-4 hours", Location: "Various", Mood: "fun", Icon: "heart", Color: "bg-purple-600 text-white"},
	{ID: 24, Name: "Weekend Trip", Category: CategorySocial, Duration: "6+ hours", Location: "Nearby city", Mood: "exciting", Icon: "plane", Color: "bg-purple-600 text-white"},
}
