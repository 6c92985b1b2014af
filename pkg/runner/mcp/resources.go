package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerStateResource(srv, svc)
	registerSectionTemplate(srv, svc)
}

func registerStateResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"agenda://state",
		"Planner state",
		mcp.WithResourceDescription("The full planner snapshot: tasks, schedule, notes, hobbies."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, svc.State())
	})
}

func registerSectionTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"agenda://state/{section}",
		"Planner section",
		mcp.WithTemplateDescription("One collection: tasks, schedule, notes, or hobbies."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		section, _ := request.Params.Arguments["section"].(string)
		s := svc.State()

		var payload any
		switch section {
		case "tasks":
			payload = s.Tasks
		case "schedule":
			payload = s.Schedule
		case "notes":
			payload = s.Notes
		case "hobbies":
			payload = s.Hobbies
		default:
			payload = s
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
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
