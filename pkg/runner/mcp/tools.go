package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/theme"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListCatalogTool(srv, svc)
	registerGetWeekendTool(srv, svc)
	registerSelectActivityTool(srv, svc)
	registerAddCustomActivityTool(srv, svc)
	registerRemoveActivityTool(srv, svc)
	registerAddRecommendedTool(srv, svc)
	registerScheduleActivityTool(srv, svc)
	registerUnscheduleActivityTool(srv, svc)
	registerSetVibeTool(srv, svc)
	registerSetThemeTool(srv, svc)
	registerListPlansTool(srv, svc)
	registerSavePlanTool(srv, svc)
	registerLoadPlanTool(srv, svc)
	registerDeletePlanTool(srv, svc)
}

func categoryNames() []string {
	names := []string{string(activity.CategoryAll)}
	for _, c := range activity.AllCategories() {
		names = append(names, string(c))
	}
	return names
}

func dayNames() []string {
	names := make([]string, 0, 4)
	for _, d := range plan.AllDays() {
		names = append(names, string(d))
	}
	return names
}

func themeNames() []string {
	names := make([]string, 0, 4)
	for _, id := range theme.IDs() {
		names = append(names, string(id))
	}
	return names
}

func registerListCatalogTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_catalog",
		mcp.WithDescription("Browse the activity catalog. Activities matching the current theme are flagged as recommended."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text to match against activity names."),
		),
		mcp.WithString("category",
			mcp.Description("Category filter."),
			mcp.Enum(categoryNames()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listings, err := svc.Catalog(request.GetString("query", ""), request.GetString("category", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"activities": listings,
			"count":      len(listings),
		})
	})
}

func registerGetWeekendTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_weekend",
		mcp.WithDescription("Return the current weekend plan: theme, visible days, scheduled slots, unscheduled picks and vibes."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Weekend()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSelectActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_activity",
		mcp.WithDescription("Add a catalog activity to the selection, optionally bound to a real place."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Catalog activity id."),
		),
		mcp.WithString("place",
			mcp.Description("Place name; the activity is renamed to \"<name> @ <place>\"."),
		),
		mcp.WithString("address",
			mcp.Description("Place address, stored as the activity location."),
		),
		mcp.WithString("link",
			mcp.Description("External link for the place."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID      int    `json:"id"`
			Place   string `json:"place"`
			Address string `json:"address"`
			Link    string `json:"link"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		a, err := svc.Select(ctx, SelectOptions{ID: args.ID, Place: args.Place, Address: args.Address, Link: args.Link})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(a)
	})
}

func registerAddCustomActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_custom_activity",
		mcp.WithDescription("Create an activity that is not in the catalog and select it."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Activity name."),
		),
		mcp.WithString("category",
			mcp.Description("Category; defaults to outdoor."),
			mcp.Enum(categoryNames()...),
		),
		mcp.WithString("duration",
			mcp.Description("Free-form duration such as \"2-3 hours\"."),
		),
		mcp.WithString("location",
			mcp.Description("Where it happens."),
		),
		mcp.WithString("mood",
			mcp.Description("Mood tag; defaults to relaxed."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name     string `json:"name"`
			Category string `json:"category"`
			Duration string `json:"duration"`
			Location string `json:"location"`
			Mood     string `json:"mood"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		a, err := svc.AddCustom(ctx, args.Name, args.Category, args.Duration, args.Location, args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(a)
	})
}

func registerRemoveActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_activity",
		mcp.WithDescription("Remove an activity from the selection, its slot and its vibe."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Activity id."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.Deselect(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return weekendResult(svc)
	})
}

func registerAddRecommendedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_recommended",
		mcp.WithDescription("Select every catalog activity the current theme recommends."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		added, err := svc.AddRecommended(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]int{"added": added})
	})
}

func registerScheduleActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"schedule_activity",
		mcp.WithDescription("Place a selected activity into a day and time slot. An activity already in that slot swaps into the moved activity's old slot, or becomes unscheduled."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Selected activity id."),
		),
		mcp.WithString("day",
			mcp.Required(),
			mcp.Description("Day of the weekend."),
			mcp.Enum(dayNames()...),
		),
		mcp.WithString("time",
			mcp.Required(),
			mcp.Description("Hourly slot between 8:00 AM and 10:00 PM, such as \"9:00 AM\" or \"21:00\"."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID   int    `json:"id"`
			Day  string `json:"day"`
			Time string `json:"time"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		placed, err := svc.Schedule(ctx, args.ID, args.Day, args.Time)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(placed)
	})
}

func registerUnscheduleActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"unschedule_activity",
		mcp.WithDescription("Take an activity off the grid; it stays selected."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Activity id."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.Unschedule(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return weekendResult(svc)
	})
}

func registerSetVibeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_vibe",
		mcp.WithDescription("Annotate a selected activity with a vibe."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Activity id."),
		),
		mcp.WithString("vibe",
			mcp.Required(),
			mcp.Description("Vibe to set; none clears it."),
			mcp.Enum("happy", "relaxed", "energetic", "none"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		vibe, err := request.RequireString("vibe")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.SetVibe(ctx, id, vibe); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return weekendResult(svc)
	})
}

func registerSetThemeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_theme",
		mcp.WithDescription("Switch the weekend theme, which changes the recommended moods and colours."),
		mcp.WithString("theme",
			mcp.Required(),
			mcp.Description("Theme id."),
			mcp.Enum(themeNames()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("theme")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		t, err := svc.SetTheme(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(t)
	})
}

func registerListPlansTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_plans",
		mcp.WithDescription("List saved plans, newest first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		plans, err := svc.ListPlans()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"plans": plans,
			"count": len(plans),
		})
	})
}

func registerSavePlanTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"save_plan",
		mcp.WithDescription("Save the current weekend under a name."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Plan name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		summary, err := svc.SavePlan(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func registerLoadPlanTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"load_plan",
		mcp.WithDescription("Replace the current weekend with a saved plan."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Saved plan id."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.LoadPlan(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeletePlanTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_plan",
		mcp.WithDescription("Delete a saved plan."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Saved plan id."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeletePlan(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"deleted": id})
	})
}

func weekendResult(svc *Service) (*mcp.CallToolResult, error) {
	dto, err := svc.Weekend()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(dto)
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
