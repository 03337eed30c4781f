package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

// tagList converts a raw JSON array argument into a []string.
func tagList(raw any) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("'tags' must be an array of tag ids")
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("'tags' must be an array of tag ids")
		}
		tags = append(tags, s)
	}
	return tags, nil
}

// CreateTaskTool handles the create_task MCP tool.
type CreateTaskTool struct {
	store *store.Store
}

// NewCreateTaskTool creates a CreateTaskTool with the given store.
func NewCreateTaskTool(s *store.Store) *CreateTaskTool {
	return &CreateTaskTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("create_task",
		mcp.WithDescription(
			"Create a new task in a project. References (project, assignee, tags) "+
				"are stored as given and not checked for existence.",
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title"),
		),
		mcp.WithString("description",
			mcp.Description("Longer description of the work"),
		),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Id of the project this task belongs to"),
		),
		mcp.WithString("assignee_id",
			mcp.Description("Id of the assigned user (omit for unassigned)"),
		),
		mcp.WithString("status",
			mcp.Description("Task status (default: todo)"),
			mcp.Enum("todo", "in-progress", "review", "done"),
		),
		mcp.WithString("priority",
			mcp.Description("Task priority (default: medium)"),
			mcp.Enum("low", "medium", "high", "urgent"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date, RFC 3339 or YYYY-MM-DD (omit for none)"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tag ids to attach"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the create_task tool call.
func (t *CreateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	projectID := req.GetString("project_id", "")
	status := store.TaskStatus(req.GetString("status", string(store.TaskTodo)))
	priority := store.TaskPriority(req.GetString("priority", string(store.PriorityMedium)))

	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}
	if projectID == "" {
		return mcp.NewToolResultError("'project_id' is required"), nil
	}
	if err := store.ValidateTaskStatus(status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := store.ValidateTaskPriority(priority); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var assigneeID *string
	if v := req.GetString("assignee_id", ""); v != "" {
		assigneeID = &v
	}

	var dueDate *time.Time
	if v := req.GetString("due_date", ""); v != "" {
		parsed, err := parseDueDate(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dueDate = &parsed
	}

	tags, err := tagList(req.GetArguments()["tags"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task := t.store.CreateTask(store.NewTask{
		Title:       title,
		Description: req.GetString("description", ""),
		ProjectID:   projectID,
		AssigneeID:  assigneeID,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		Tags:        tags,
	})
	return jsonResult(task), nil
}

// GetTaskTool handles the get_task MCP tool.
type GetTaskTool struct {
	store *store.Store
}

// NewGetTaskTool creates a GetTaskTool with the given store.
func NewGetTaskTool(s *store.Store) *GetTaskTool {
	return &GetTaskTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("get_task",
		mcp.WithDescription("Get a task by id."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Id of the task to fetch"),
		),
	)
}

// Handle processes the get_task tool call.
func (t *GetTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("task_id", "")
	if id == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}
	task, ok := t.store.GetTask(id)
	if !ok {
		return notFound("Task", id), nil
	}
	return jsonResult(task), nil
}

// ListTasksTool handles the list_tasks MCP tool.
type ListTasksTool struct {
	store *store.Store
}

// NewListTasksTool creates a ListTasksTool with the given store.
func NewListTasksTool(s *store.Store) *ListTasksTool {
	return &ListTasksTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ListTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List all tasks."),
	)
}

// Handle processes the list_tasks tool call.
func (t *ListTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.ListTasks()), nil
}

// TasksByProjectTool handles the get_tasks_by_project MCP tool.
type TasksByProjectTool struct {
	store *store.Store
}

// NewTasksByProjectTool creates a TasksByProjectTool with the given store.
func NewTasksByProjectTool(s *store.Store) *TasksByProjectTool {
	return &TasksByProjectTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *TasksByProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tasks_by_project",
		mcp.WithDescription("List the tasks in a project. Unknown project ids yield an empty list."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Id of the project"),
		),
	)
}

// Handle processes the get_tasks_by_project tool call.
func (t *TasksByProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := req.GetString("project_id", "")
	if projectID == "" {
		return mcp.NewToolResultError("'project_id' is required"), nil
	}
	return jsonResult(t.store.ListTasksByProject(projectID)), nil
}

// TasksByAssigneeTool handles the get_tasks_by_assignee MCP tool.
type TasksByAssigneeTool struct {
	store *store.Store
}

// NewTasksByAssigneeTool creates a TasksByAssigneeTool with the given store.
func NewTasksByAssigneeTool(s *store.Store) *TasksByAssigneeTool {
	return &TasksByAssigneeTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *TasksByAssigneeTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tasks_by_assignee",
		mcp.WithDescription("List the tasks assigned to a user."),
		mcp.WithString("assignee_id",
			mcp.Required(),
			mcp.Description("Id of the assigned user"),
		),
	)
}

// Handle processes the get_tasks_by_assignee tool call.
func (t *TasksByAssigneeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assigneeID := req.GetString("assignee_id", "")
	if assigneeID == "" {
		return mcp.NewToolResultError("'assignee_id' is required"), nil
	}
	return jsonResult(t.store.ListTasksByAssignee(assigneeID)), nil
}

// TasksByStatusTool handles the get_tasks_by_status MCP tool.
type TasksByStatusTool struct {
	store *store.Store
}

// NewTasksByStatusTool creates a TasksByStatusTool with the given store.
func NewTasksByStatusTool(s *store.Store) *TasksByStatusTool {
	return &TasksByStatusTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *TasksByStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tasks_by_status",
		mcp.WithDescription("List the tasks with a given status."),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("Status to filter by"),
			mcp.Enum("todo", "in-progress", "review", "done"),
		),
	)
}

// Handle processes the get_tasks_by_status tool call.
func (t *TasksByStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := store.TaskStatus(req.GetString("status", ""))
	if err := store.ValidateTaskStatus(status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(t.store.ListTasksByStatus(status)), nil
}

// TasksByTagTool handles the get_tasks_by_tag MCP tool.
type TasksByTagTool struct {
	store *store.Store
}

// NewTasksByTagTool creates a TasksByTagTool with the given store.
func NewTasksByTagTool(s *store.Store) *TasksByTagTool {
	return &TasksByTagTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *TasksByTagTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tasks_by_tag",
		mcp.WithDescription("List the tasks whose tag set contains a tag id."),
		mcp.WithString("tag_id",
			mcp.Required(),
			mcp.Description("Id of the tag"),
		),
	)
}

// Handle processes the get_tasks_by_tag tool call.
func (t *TasksByTagTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tagID := req.GetString("tag_id", "")
	if tagID == "" {
		return mcp.NewToolResultError("'tag_id' is required"), nil
	}
	return jsonResult(t.store.ListTasksByTag(tagID)), nil
}

// SearchTasksTool handles the search_tasks MCP tool.
type SearchTasksTool struct {
	store *store.Store
}

// NewSearchTasksTool creates a SearchTasksTool with the given store.
func NewSearchTasksTool(s *store.Store) *SearchTasksTool {
	return &SearchTasksTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("search_tasks",
		mcp.WithDescription("Search tasks by a case-insensitive substring of title or description."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
	)
}

// Handle processes the search_tasks tool call. The raw query is forwarded
// to the store unmodified.
func (t *SearchTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	return jsonResult(t.store.SearchTasks(query)), nil
}

// UpdateTaskTool handles the update_task MCP tool. Omitted fields are
// left untouched; passing null for assignee_id or due_date clears them.
type UpdateTaskTool struct {
	store *store.Store
}

// NewUpdateTaskTool creates an UpdateTaskTool with the given store.
func NewUpdateTaskTool(s *store.Store) *UpdateTaskTool {
	return &UpdateTaskTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("update_task",
		mcp.WithDescription(
			"Update a task. Only the provided fields change; pass null for "+
				"assignee_id or due_date to clear them.",
		),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Id of the task to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("project_id",
			mcp.Description("Move the task to another project"),
		),
		mcp.WithString("assignee_id",
			mcp.Description("New assignee id, or null to unassign"),
		),
		mcp.WithString("status",
			mcp.Description("New status"),
			mcp.Enum("todo", "in-progress", "review", "done"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority"),
			mcp.Enum("low", "medium", "high", "urgent"),
		),
		mcp.WithString("due_date",
			mcp.Description("New due date (RFC 3339 or YYYY-MM-DD), or null to clear"),
		),
		mcp.WithArray("tags",
			mcp.Description("Replacement tag id set"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the update_task tool call.
func (t *UpdateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("task_id", "")
	if id == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}

	args := req.GetArguments()
	var patch store.TaskPatch

	if v, present, err := stringField(args, "title"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Title = store.Set(v)
	}
	if v, present, err := stringField(args, "description"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Description = store.Set(v)
	}
	if v, present, err := stringField(args, "project_id"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.ProjectID = store.Set(v)
	}
	if v, present, err := stringField(args, "status"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		if err := store.ValidateTaskStatus(store.TaskStatus(v)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch.Status = store.Set(store.TaskStatus(v))
	}
	if v, present, err := stringField(args, "priority"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		if err := store.ValidateTaskPriority(store.TaskPriority(v)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch.Priority = store.Set(store.TaskPriority(v))
	}
	if v, present, err := nullableStringField(args, "assignee_id"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.AssigneeID = store.Set(v)
	}
	if v, present, err := nullableStringField(args, "due_date"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		if v == nil {
			patch.DueDate = store.Set[*time.Time](nil)
		} else {
			parsed, err := parseDueDate(*v)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			patch.DueDate = store.Set(&parsed)
		}
	}
	if raw, present := args["tags"]; present {
		tags, err := tagList(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch.Tags = store.Set(tags)
	}

	task, ok := t.store.UpdateTask(id, patch)
	if !ok {
		return notFound("Task", id), nil
	}
	return jsonResult(task), nil
}

// DeleteTaskTool handles the delete_task MCP tool. Deleting a task
// removes its comments as well.
type DeleteTaskTool struct {
	store *store.Store
}

// NewDeleteTaskTool creates a DeleteTaskTool with the given store.
func NewDeleteTaskTool(s *store.Store) *DeleteTaskTool {
	return &DeleteTaskTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *DeleteTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task and cascade: all of its comments are removed."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Id of the task to delete"),
		),
	)
}

// Handle processes the delete_task tool call.
func (t *DeleteTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("task_id", "")
	if id == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}
	if !t.store.DeleteTask(id) {
		return notFound("Task", id), nil
	}
	return jsonResult(map[string]any{"deleted": true, "id": id}), nil
}
