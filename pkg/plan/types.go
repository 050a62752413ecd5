// Package plan is the in-memory weekend planning model: the days and time
// slots of the schedule grid, the selection set, vibe annotations, saved
// plans, and the pure reducer that applies commands to them.
package plan

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownDay         = errors.New("plan: unknown day")
	ErrUnknownTimeSlot    = errors.New("plan: unknown time slot")
	ErrUnknownVibe        = errors.New("plan: unknown vibe")
	ErrUnknownLongWeekend = errors.New("plan: unknown long weekend option")
)

// Day is a column of the schedule grid.
type Day string

const (
	Friday   Day = "friday"
	Saturday Day = "saturday"
	Sunday   Day = "sunday"
	Monday   Day = "monday"
)

// AllDays returns every day the grid can show, in calendar order.
func AllDays() []Day {
	return []Day{Friday, Saturday, Sunday, Monday}
}

// ParseDay accepts a full day name or its three letter prefix.
func ParseDay(raw string) (Day, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if len(v) >= 3 {
		for _, d := range AllDays() {
			if strings.HasPrefix(string(d), v) {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDay, raw)
}

// Valid reports whether d is one of AllDays.
func (d Day) Valid() bool {
	for _, c := range AllDays() {
		if c == d {
			return true
		}
	}
	return false
}

// Title is the display name, e.g. "Saturday".
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// TimeSlot is a row of the schedule grid, one of the fixed hourly labels.
type TimeSlot string

var timeSlots = []TimeSlot{
	"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM",
	"4:00 PM", "5:00 PM", "6:00 PM", "7:00 PM",
	"8:00 PM", "9:00 PM", "10:00 PM",
}

// TimeSlots returns the hourly labels from 8:00 AM to 10:00 PM.
func TimeSlots() []TimeSlot {
	return append([]TimeSlot(nil), timeSlots...)
}

var slotLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04", "15"}

// ParseTimeSlot accepts "9:00 AM", "9am", "9 PM" or 24 hour "21:00" and
// returns the canonical label.
func ParseTimeSlot(raw string) (TimeSlot, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range slotLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		ts := TimeSlot(t.Format("3:04 PM"))
		if ts.Valid() {
			return ts, nil
		}
		break
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTimeSlot, raw)
}

// Valid reports whether ts is one of the fixed labels.
func (ts TimeSlot) Valid() bool {
	return ts.Index() >= 0
}

// Index is the row of ts in the grid, or -1.
func (ts TimeSlot) Index() int {
	for i, c := range timeSlots {
		if c == ts {
			return i
		}
	}
	return -1
}

// LongWeekend selects which extra days extend the weekend.
type LongWeekend string

const (
	LongWeekendNone   LongWeekend = "none"
	LongWeekendFriday LongWeekend = "friday"
	LongWeekendMonday LongWeekend = "monday"
	LongWeekendBoth   LongWeekend = "both"
)

// ParseLongWeekend validates a long weekend option. Empty input means none.
func ParseLongWeekend(raw string) (LongWeekend, error) {
	switch lw := LongWeekend(strings.ToLower(strings.TrimSpace(raw))); lw {
	case "":
		return LongWeekendNone, nil
	case LongWeekendNone, LongWeekendFriday, LongWeekendMonday, LongWeekendBoth:
		return lw, nil
	}
	return LongWeekendNone, fmt.Errorf("%w %q", ErrUnknownLongWeekend, raw)
}

// LongWeekendFromLegacy maps the old boolean flag onto an option.
func LongWeekendFromLegacy(on bool) LongWeekend {
	if on {
		return LongWeekendBoth
	}
	return LongWeekendNone
}

// Days returns the grid columns shown for the option.
func (lw LongWeekend) Days() []Day {
	switch lw {
	case LongWeekendFriday:
		return []Day{Friday, Saturday, Sunday}
	case LongWeekendMonday:
		return []Day{Saturday, Sunday, Monday}
	case LongWeekendBoth:
		return []Day{Friday, Saturday, Sunday, Monday}
	default:
		return []Day{Saturday, Sunday}
	}
}

// Vibe is a user-assigned mood tag.
type Vibe string

const (
	VibeNone      Vibe = ""
	VibeHappy     Vibe = "happy"
	VibeRelaxed   Vibe = "relaxed"
	VibeEnergetic Vibe = "energetic"
)

// AllVibes returns the assignable vibes.
func AllVibes() []Vibe {
	return []Vibe{VibeHappy, VibeRelaxed, VibeEnergetic}
}

// ParseVibe validates a vibe. "" and "none" clear the annotation.
func ParseVibe(raw string) (Vibe, error) {
	v := Vibe(strings.ToLower(strings.TrimSpace(raw)))
	if v == VibeNone || v == "none" {
		return VibeNone, nil
	}
	if v.Valid() {
		return v, nil
	}
	return VibeNone, fmt.Errorf("%w %q", ErrUnknownVibe, raw)
}

// Valid reports whether v is one of AllVibes.
func (v Vibe) Valid() bool {
	for _, c := range AllVibes() {
		if c == v {
			return true
		}
	}
	return false
}

// Emoji is the glyph shown next to an annotated activity.
func (v Vibe) Emoji() string {
	switch v {
	case VibeHappy:
		return "😊"
	case VibeRelaxed:
		return "😌"
	case VibeEnergetic:
		return "⚡"
	}
	return ""
}

// Slot is a cell of the schedule grid.
type Slot struct {
	Day  Day      `json:"day"`
	Time TimeSlot `json:"timeSlot"`
}

// ParseSlot parses a day and time slot from user input.
func ParseSlot(day, timeSlot string) (Slot, error) {
	d, err := ParseDay(day)
	if err != nil {
		return Slot{}, err
	}
	ts, err := ParseTimeSlot(timeSlot)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Day: d, Time: ts}, nil
}

// Valid reports whether both coordinates are known.
func (s Slot) Valid() bool {
	return s.Day.Valid() && s.Time.Valid()
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %s", s.Day.Title(), s.Time)
}
