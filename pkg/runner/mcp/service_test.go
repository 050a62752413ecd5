package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	p := app.New(store.New(store.NewDiskKV(t.TempDir())))
	if err := p.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}
	return NewService(p)
}

func TestServiceScheduleSwaps(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, id := range []int{1, 2} {
		if _, err := svc.Select(ctx, SelectOptions{ID: id}); err != nil {
			t.Fatalf("Select(%d) failed: %v", id, err)
		}
	}
	if _, err := svc.Schedule(ctx, 1, "sat", "9am"); err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if _, err := svc.Schedule(ctx, 2, "sunday", "14:00"); err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	placed, err := svc.Schedule(ctx, 2, "saturday", "9:00 AM")
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if placed.Displaced == nil || placed.Displaced.ID != 1 {
		t.Fatalf("expected activity 1 to be displaced, got %+v", placed.Displaced)
	}
	want := plan.Slot{Day: plan.Sunday, Time: "2:00 PM"}
	if placed.DisplacedTo == nil || *placed.DisplacedTo != want {
		t.Fatalf("expected activity 1 to move to %s, got %v", want, placed.DisplacedTo)
	}

	dto, err := svc.Weekend()
	if err != nil {
		t.Fatalf("Weekend failed: %v", err)
	}
	if len(dto.Grid) != 2 {
		t.Fatalf("expected 2 grid entries, got %d", len(dto.Grid))
	}
	if dto.Grid[0].Day != plan.Saturday || dto.Grid[0].ActivityID != 2 {
		t.Fatalf("expected activity 2 first on saturday, got %+v", dto.Grid[0])
	}
}

func TestServiceRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.Schedule(ctx, 1, "sat", "9am"); !errors.Is(err, app.ErrNotSelected) {
		t.Fatalf("expected ErrNotSelected, got %v", err)
	}
	if _, err := svc.Schedule(ctx, 1, "tuesday", "9am"); !errors.Is(err, plan.ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
	if _, err := svc.Schedule(ctx, 1, "sat", "3am"); !errors.Is(err, plan.ErrUnknownTimeSlot) {
		t.Fatalf("expected ErrUnknownTimeSlot, got %v", err)
	}
	if err := svc.SetVibe(ctx, 1, "grumpy"); !errors.Is(err, plan.ErrUnknownVibe) {
		t.Fatalf("expected ErrUnknownVibe, got %v", err)
	}
	if _, err := svc.SetTheme(ctx, "gothic"); err == nil {
		t.Fatalf("expected unknown theme error")
	}
	if _, err := svc.Catalog("", "underwater"); err == nil {
		t.Fatalf("expected unknown category error")
	}
}

func TestServicePlans(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.SavePlan(ctx, "Empty"); !errors.Is(err, app.ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
	if _, err := svc.AddCustom(ctx, "Kite flying", "social", "", "Beach", ""); err != nil {
		t.Fatalf("AddCustom failed: %v", err)
	}
	if err := svc.SetVibe(ctx, svc.Planner.State().Selected[0].ID, "happy"); err != nil {
		t.Fatalf("SetVibe failed: %v", err)
	}
	summary, err := svc.SavePlan(ctx, "Kites")
	if err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	if summary.Selected != 1 || summary.Scheduled != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	full, err := svc.Plan(summary.ID)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(full.Vibes) != 1 {
		t.Fatalf("expected the vibe to be saved, got %v", full.Vibes)
	}

	if err := svc.Deselect(ctx, full.Selected[0].ID); err != nil {
		t.Fatalf("Deselect failed: %v", err)
	}
	dto, err := svc.LoadPlan(ctx, summary.ID)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if len(dto.Unscheduled) != 1 || dto.Unscheduled[0].Name != "Kite flying" {
		t.Fatalf("expected the custom activity back, got %+v", dto.Unscheduled)
	}

	if err := svc.DeletePlan(ctx, summary.ID); err != nil {
		t.Fatalf("DeletePlan failed: %v", err)
	}
	plans, err := svc.ListPlans()
	if err != nil {
		t.Fatalf("ListPlans failed: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("expected no plans, got %d", len(plans))
	}
}

func TestServerSelectTool(t *testing.T) {
	svc := newTestService(t)
	srv := Runner{Planner: svc.Planner}.newServer()

	msg := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"select_activity","arguments":{"id":6,"place":"Cafe Luna"}}}`
	resp := srv.HandleMessage(context.Background(), json.RawMessage(msg))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	if !strings.Contains(string(b), "Brunch with Friends @ Cafe Luna") {
		t.Fatalf("unexpected response %s", b)
	}
	if !svc.Planner.State().IsSelected(6) {
		t.Fatalf("expected activity 6 to be selected")
	}
}

func TestTemplateArg(t *testing.T) {
	args := map[string]any{"a": "x", "b": []string{"y"}, "c": 3}
	if got := templateArg(args, "a"); got != "x" {
		t.Fatalf("got %q", got)
	}
	if got := templateArg(args, "b"); got != "y" {
		t.Fatalf("got %q", got)
	}
	if got := templateArg(args, "c"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestRunnerRejectsBadConfig(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without a planner")
	}
	svc := newTestService(t)
	err := Runner{Planner: svc.Planner, Transport: "carrier-pigeon"}.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Fatalf("expected unknown transport error, got %v", err)
	}
	err = Runner{Planner: svc.Planner, Transport: TransportHTTP, HTTPServerCert: "cert.pem"}.Do(context.Background())
	if err == nil {
		t.Fatalf("expected error for cert without key")
	}
}
