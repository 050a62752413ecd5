package plan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := map[string]Day{
		"saturday": Saturday,
		"Sat":      Saturday,
		" FRI ":    Friday,
		"monday":   Monday,
		"sun":      Sunday,
	}
	for in, want := range tests {
		got, err := ParseDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "s", "tuesday", "saturdays"} {
		_, err := ParseDay(bad)
		assert.ErrorIs(t, err, ErrUnknownDay, bad)
	}
}

func TestParseTimeSlot(t *testing.T) {
	tests := map[string]TimeSlot{
		"9:00 AM":  "9:00 AM",
		"9am":      "9:00 AM",
		"10 pm":    "10:00 PM",
		"12:00 PM": "12:00 PM",
		"21:00":    "9:00 PM",
		"8":        "8:00 AM",
	}
	for in, want := range tests {
		got, err := ParseTimeSlot(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "7:00 AM", "11:00 PM", "9:30 AM", "noon"} {
		_, err := ParseTimeSlot(bad)
		assert.ErrorIs(t, err, ErrUnknownTimeSlot, bad)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 15)
	assert.Equal(t, TimeSlot("8:00 AM"), slots[0])
	assert.Equal(t, TimeSlot("10:00 PM"), slots[14])
	assert.Equal(t, 4, TimeSlot("12:00 PM").Index())
	assert.Equal(t, -1, TimeSlot("7:00 AM").Index())
}

func TestLongWeekendDays(t *testing.T) {
	assert.Equal(t, []Day{Saturday, Sunday}, LongWeekendNone.Days())
	assert.Equal(t, []Day{Friday, Saturday, Sunday}, LongWeekendFriday.Days())
	assert.Equal(t, []Day{Saturday, Sunday, Monday}, LongWeekendMonday.Days())
	assert.Equal(t, []Day{Friday, Saturday, Sunday, Monday}, LongWeekendBoth.Days())

	assert.Equal(t, LongWeekendBoth, LongWeekendFromLegacy(true))
	assert.Equal(t, LongWeekendNone, LongWeekendFromLegacy(false))

	lw, err := ParseLongWeekend("Monday")
	require.NoError(t, err)
	assert.Equal(t, LongWeekendMonday, lw)
	_, err = ParseLongWeekend("tuesday")
	assert.ErrorIs(t, err, ErrUnknownLongWeekend)
}

func TestParseVibe(t *testing.T) {
	v, err := ParseVibe("Happy")
	require.NoError(t, err)
	assert.Equal(t, VibeHappy, v)

	v, err = ParseVibe("none")
	require.NoError(t, err)
	assert.Equal(t, VibeNone, v)

	_, err = ParseVibe("grumpy")
	assert.ErrorIs(t, err, ErrUnknownVibe)
}

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot("sun", "2pm")
	require.NoError(t, err)
	assert.Equal(t, Slot{Day: Sunday, Time: "2:00 PM"}, s)
	assert.Equal(t, "Sunday 2:00 PM", s.String())

	_, err = ParseSlot("sun", "2:30pm")
	assert.Error(t, err)
}

func TestTimestampJSON(t *testing.T) {
	when := time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)
	b, err := json.Marshal(Stamp(when))
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-14T09:30:00Z"`, string(b))

	for in, want := range map[string]time.Time{
		`"2025-06-14T09:30:00.000Z"`: when,
		`"2025-06-14"`:               time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		`""`:                         {},
	} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.True(t, want.Equal(ts.Time), in)
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"June"`), &ts))
}
