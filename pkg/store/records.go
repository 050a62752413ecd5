package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
)

// wireRef is the stored form of an activity: a bare id when the activity is
// its catalog entry, a partial record carrying only the overridden fields,
// or the full record of a custom activity.
type wireRef struct {
	activity.Ref
}

type partialRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	LinkURL  string `json:"externalLinkUrl,omitempty"`
}

// looseRecord accepts every shape an activity object has been stored in.
type looseRecord struct {
	activity.Activity
	LegacyLink string `json:"googleMapsUrl,omitempty"`
}

func (w wireRef) MarshalJSON() ([]byte, error) {
	r := w.Ref
	switch {
	case r.Standalone != nil:
		full := r.Overrides.Apply(*r.Standalone)
		full.ID = r.ID
		return json.Marshal(full)
	case r.Overrides.IsZero():
		return json.Marshal(r.ID)
	default:
		return json.Marshal(partialRecord{
			ID:       r.ID,
			Name:     r.Overrides.Name,
			Location: r.Overrides.Location,
			LinkURL:  r.Overrides.LinkURL,
		})
	}
}

func (w *wireRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		w.Ref = activity.Ref{}
		return nil
	}
	var id int
	if err := json.Unmarshal(b, &id); err == nil {
		w.Ref = activity.Ref{ID: id}
		return nil
	}
	var rec looseRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return fmt.Errorf("store: activity reference: %w", err)
	}
	a := rec.Activity
	if a.LinkURL == "" {
		a.LinkURL = rec.LegacyLink
	}
	ref := activity.Ref{
		ID:        a.ID,
		Overrides: activity.Overrides{Name: a.Name, Location: a.Location, LinkURL: a.LinkURL},
		Record:    true,
	}
	if a.Category != "" || a.Duration != "" || a.Mood != "" || a.Icon != "" || a.Color != "" {
		full := a
		ref.Standalone = &full
	}
	w.Ref = ref
	return nil
}

type scheduledRecord struct {
	Activity wireRef `json:"activity"`
	Day      string  `json:"day"`
	TimeSlot string  `json:"timeSlot"`
}

// planRecord is the stored SavedPlan. Nested collections stay raw so a single
// broken element does not take the whole plan down.
type planRecord struct {
	ID          flexID            `json:"id"`
	Name        string            `json:"name"`
	Date        json.RawMessage   `json:"date,omitempty"`
	Theme       string            `json:"theme,omitempty"`
	LongWeekend json.RawMessage   `json:"longWeekend,omitempty"`
	Scheduled   []json.RawMessage `json:"scheduledActivities"`
	Selected    []json.RawMessage `json:"selectedActivities"`
	Vibes       json.RawMessage   `json:"activityVibes,omitempty"`
}

// flexID reads a plan id stored as either a string or a number.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("store: plan id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

func encodeRef(c *activity.Catalog, a activity.Activity) wireRef {
	return wireRef{Ref: activity.RefFor(c, a)}
}

func encodeRefs(c *activity.Catalog, in []activity.Activity) []wireRef {
	out := make([]wireRef, 0, len(in))
	for _, a := range in {
		out = append(out, encodeRef(c, a))
	}
	return out
}

func encodeScheduled(c *activity.Catalog, in []plan.ScheduledActivity) []scheduledRecord {
	out := make([]scheduledRecord, 0, len(in))
	for _, sa := range in {
		out = append(out, scheduledRecord{
			Activity: encodeRef(c, sa.Activity),
			Day:      string(sa.Day),
			TimeSlot: string(sa.TimeSlot),
		})
	}
	return out
}

func encodeVibes(in map[int]plan.Vibe) map[string]string {
	out := make(map[string]string, len(in))
	for id, v := range in {
		if v.Valid() {
			out[strconv.Itoa(id)] = string(v)
		}
	}
	return out
}

func encodePlans(c *activity.Catalog, in []plan.SavedPlan) ([]planRecord, error) {
	out := make([]planRecord, 0, len(in))
	for _, p := range in {
		rec := planRecord{
			ID:    flexID(p.ID),
			Name:  p.Name,
			Theme: string(p.Theme),
		}
		var err error
		if rec.Date, err = json.Marshal(p.Date); err != nil {
			return nil, err
		}
		if p.LongWeekend != "" {
			if rec.LongWeekend, err = json.Marshal(p.LongWeekend); err != nil {
				return nil, err
			}
		}
		if rec.Scheduled, err = rawEach(encodeScheduled(c, p.Scheduled)); err != nil {
			return nil, err
		}
		if rec.Selected, err = rawEach(encodeRefs(c, p.Selected)); err != nil {
			return nil, err
		}
		if p.Vibes != nil {
			if rec.Vibes, err = json.Marshal(encodeVibes(p.Vibes)); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func rawEach[T any](in []T) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(in))
	for _, v := range in {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// decodeLongWeekend reads the option, accepting the legacy boolean flag.
func decodeLongWeekend(raw json.RawMessage) (plan.LongWeekend, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return plan.LongWeekendNone, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		lw, err := plan.ParseLongWeekend(s)
		return lw, err == nil
	}
	var legacy bool
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return plan.LongWeekendFromLegacy(legacy), true
	}
	return plan.LongWeekendNone, false
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
