package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
	"github.com/DIEGO120000/agenda-test01/pkg/command"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerBatchTools(srv, svc)
	registerSetTaskStatusTool(srv, svc)
	registerToggleHobbyTool(srv, svc)
	registerRemoveByIDTool(srv, svc)
	registerGetStateTool(srv, svc)
}

// batchTool describes one command-kind tool: the raw arguments bind straight
// into command.Decode, keeping the MCP surface and the assistant surface on
// the same vocabulary.
type batchTool struct {
	kind        command.Kind
	description string
	key         string
	itemSchema  map[string]any
}

func batchTools() []batchTool {
	taskSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"recommended": map[string]any{"type": "string", "description": "Recommended start date, YYYY-MM-DD."},
			"due":         map[string]any{"type": "string", "description": "Due date, YYYY-MM-DD."},
			"criticality": map[string]any{"type": "integer", "description": "1-10."},
			"priority":    map[string]any{"type": "string", "enum": []string{"Low", "Medium", "High"}},
		},
	}
	eventSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"day":      map[string]any{"type": "string", "description": "Full weekday name."},
			"start":    map[string]any{"type": "string", "description": "HH:MM."},
			"end":      map[string]any{"type": "string", "description": "HH:MM."},
			"activity": map[string]any{"type": "string"},
			"kind":     map[string]any{"type": "string", "enum": []string{"class", "study", "break"}},
			"modality": map[string]any{"type": "string", "enum": []string{"Virtual", "Hybrid", "In-person"}},
		},
	}
	criterionSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"day":      map[string]any{"type": "string"},
			"activity": map[string]any{"type": "string"},
		},
	}
	stringSchema := map[string]any{"type": "string"}

	return []batchTool{
		{command.AddTasks, "Add one or more tasks to the planner.", "tasks", taskSchema},
		{command.RemoveTasks, "Remove tasks whose name contains any given fragment.", "names", stringSchema},
		{command.AddSchedule, "Add weekly schedule blocks.", "events", eventSchema},
		{command.RemoveSchedule, "Remove schedule blocks by day and activity.", "events", criterionSchema},
		{command.AddNotes, "Add notes or reminders.", "notes", stringSchema},
		{command.RemoveNotes, "Remove notes whose content contains any given fragment.", "fragments", stringSchema},
		{command.AddHobbies, "Add leisure activities.", "hobbies", stringSchema},
		{command.RemoveHobbies, "Remove hobbies whose name contains any given fragment.", "names", stringSchema},
	}
}

func registerBatchTools(srv *server.MCPServer, svc *Service) {
	for _, bt := range batchTools() {
		bt := bt
		tool := mcp.NewTool(
			string(bt.kind),
			mcp.WithDescription(bt.description),
			mcp.WithArray(bt.key,
				mcp.Required(),
				mcp.Items(bt.itemSchema),
			),
		)

		srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			state, ok := svc.Call(string(bt.kind), request.GetArguments())
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("invalid arguments for %s", bt.kind)), nil
			}
			return toJSONResult(state)
		})
	}
}

func registerSetTaskStatusTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_task_status",
		mcp.WithDescription("Move a task to a new status."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("New status."),
			mcp.Enum("Pending", "In-Progress", "Done"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		raw, err := request.RequireString("status")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		status, ok := agenda.ParseStatus(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown status %q", raw)), nil
		}
		return toJSONResult(svc.SetTaskStatus(id, status))
	})
}

func registerToggleHobbyTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_hobby",
		mcp.WithDescription("Flip a hobby's done flag."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Hobby identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(svc.ToggleHobby(id))
	})
}

func registerRemoveByIDTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_by_id",
		mcp.WithDescription("Delete one entity (task, schedule block, note, or hobby) by its identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entity identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(svc.RemoveByID(id))
	})
}

func registerGetStateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_state",
		mcp.WithDescription("Read the full planner snapshot."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.State())
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
