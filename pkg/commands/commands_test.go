package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/runner/show"
)

func init() {
	color.NoColor = true
}

func useTempStore(t *testing.T) {
	t.Helper()
	t.Setenv("WEEKEND_PATH", t.TempDir())
	t.Setenv("WEEKEND_CONFIG_PATH", t.TempDir())
	t.Setenv("WEEKEND_LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := New()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()), "weekend %v: %s", args, buf.String())
	return buf.String()
}

func TestCommandTree(t *testing.T) {
	want := []string{
		"add", "catalog", "clear", "completion", "info", "mcp", "plan", "plans", "recommend", "remove",
		"schedule", "settings", "show", "theme", "unschedule", "version", "vibe", "watch",
	}
	var got []string
	for _, c := range New().Commands() {
		got = append(got, c.Name())
	}
	assert.Subset(t, got, want)
}

func TestScheduleDisplacesThroughCLI(t *testing.T) {
	useTempStore(t)

	run(t, "add", "1")
	run(t, "add", "2")
	run(t, "schedule", "1", "sat", "9am")

	var placed app.Placement
	require.NoError(t, json.Unmarshal([]byte(run(t, "schedule", "2", "saturday", "9:00 AM", "--json")), &placed))
	require.NotNil(t, placed.Displaced)
	assert.Equal(t, 1, placed.Displaced.ID)
	assert.Nil(t, placed.DisplacedTo)

	var summary show.Summary
	require.NoError(t, json.Unmarshal([]byte(run(t, "show", "--json")), &summary))
	require.Len(t, summary.Scheduled, 1)
	assert.Equal(t, 2, summary.Scheduled[0].Activity.ID)
	assert.Equal(t, plan.Slot{Day: plan.Saturday, Time: "9:00 AM"}, summary.Scheduled[0].Slot())
	require.Len(t, summary.Unscheduled, 1)
	assert.Equal(t, 1, summary.Unscheduled[0].ID)
	assert.Equal(t, "2h-4h", summary.PlannedTime[plan.Saturday])
}

func TestArgumentValidation(t *testing.T) {
	useTempStore(t)

	for _, args := range [][]string{
		{"add"},
		{"add", "abc"},
		{"add", "1", "--custom", "Kites"},
		{"schedule", "1", "tuesday", "9am"},
		{"schedule", "1", "sat", "3am"},
		{"vibe", "1", "grumpy"},
		{"theme", "gothic"},
		{"remove"},
		{"plans", "save"},
	} {
		cmd := New()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.ExecuteContext(context.Background()), "weekend %v", args)
	}
}

func TestPlansRoundTripThroughCLI(t *testing.T) {
	useTempStore(t)

	run(t, "add", "--custom", "Kite flying", "--custom-category", "social")
	run(t, "plans", "save", "Windy", "day")

	var saved []plan.SavedPlan
	require.NoError(t, json.Unmarshal([]byte(run(t, "plans", "list", "--json")), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "Windy day", saved[0].Name)

	run(t, "remove", "--all")
	run(t, "plans", "load", saved[0].ID)

	var summary show.Summary
	require.NoError(t, json.Unmarshal([]byte(run(t, "show", "--json")), &summary))
	require.Len(t, summary.Unscheduled, 1)
	assert.Equal(t, "Kite flying", summary.Unscheduled[0].Name)
}
