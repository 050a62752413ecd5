package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/weekend/pkg/theme"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerWeekendResource(srv, svc)
	registerCatalogResource(srv, svc)
	registerThemesResource(srv)
	registerPlansResource(srv, svc)
	registerPlanTemplate(srv, svc)
}

func registerWeekendResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"weekend://plan",
		"Current Weekend",
		mcp.WithResourceDescription("The weekend being planned: grid, unscheduled picks, theme and vibes."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.Weekend()
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerCatalogResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"weekend://catalog",
		"Activity Catalog",
		mcp.WithResourceDescription("Every catalog activity with recommendation and selection flags."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		listings, err := svc.Catalog("", "")
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"activities": listings,
			"count":      len(listings),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerThemesResource(srv *server.MCPServer) {
	resource := mcp.NewResource(
		"weekend://themes",
		"Themes",
		mcp.WithResourceDescription("Theme presets with their colours and suggested moods."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{"themes": theme.All()})
	})
}

func registerPlansResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"weekend://plans",
		"Saved Plans",
		mcp.WithResourceDescription("Saved weekend plans, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		plans, err := svc.ListPlans()
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"plans": plans,
			"count": len(plans),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerPlanTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"weekend://plans/{id}",
		"Saved Plan",
		mcp.WithTemplateDescription("A saved plan with its selection, schedule and vibes."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("plan id is required")
		}

		p, err := svc.Plan(id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"plan": p})
	})
}

// templateArg reads a matched URI template variable, which arrives either as
// a string or as a single-element list.
func templateArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
