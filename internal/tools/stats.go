package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

// TaskStatisticsTool handles the get_task_statistics MCP tool.
type TaskStatisticsTool struct {
	store *store.Store
}

// NewTaskStatisticsTool creates a TaskStatisticsTool with the given store.
func NewTaskStatisticsTool(s *store.Store) *TaskStatisticsTool {
	return &TaskStatisticsTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *TaskStatisticsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_task_statistics",
		mcp.WithDescription(
			"Workspace-wide task statistics: totals, counts by status and "+
				"priority, and how many tasks are overdue.",
		),
	)
}

// Handle processes the get_task_statistics tool call.
func (t *TaskStatisticsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.TaskStatistics()), nil
}

// ProjectStatisticsTool handles the get_project_statistics MCP tool.
type ProjectStatisticsTool struct {
	store *store.Store
}

// NewProjectStatisticsTool creates a ProjectStatisticsTool with the given
// store.
func NewProjectStatisticsTool(s *store.Store) *ProjectStatisticsTool {
	return &ProjectStatisticsTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectStatisticsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_project_statistics",
		mcp.WithDescription("Per-project task statistics: totals, completion counts, and team members."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Id of the project"),
		),
	)
}

// Handle processes the get_project_statistics tool call.
func (t *ProjectStatisticsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("project_id", "")
	if id == "" {
		return mcp.NewToolResultError("'project_id' is required"), nil
	}
	if _, ok := t.store.GetProject(id); !ok {
		return notFound("Project", id), nil
	}
	return jsonResult(t.store.ProjectStatistics(id)), nil
}
