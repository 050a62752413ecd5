package plan

import (
	"encoding/json"
	"fmt"
	"time"
)

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// ParseTime accepts RFC3339 timestamps and bare dates.
func ParseTime(v string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Timestamp marshals as an RFC3339 string; an empty string is the zero time.
type Timestamp struct {
	time.Time
}

// Stamp wraps t.
func Stamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// Display is the local calendar date, e.g. "Mon, Jan 2 2006".
func (t Timestamp) Display() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Mon, Jan 2 2006")
}
