package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

// CreateProjectTool handles the create_project MCP tool.
type CreateProjectTool struct {
	store *store.Store
}

// NewCreateProjectTool creates a CreateProjectTool with the given store.
func NewCreateProjectTool(s *store.Store) *CreateProjectTool {
	return &CreateProjectTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("create_project",
		mcp.WithDescription("Create a new project. The owner id is stored as given and not checked for existence."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name"),
		),
		mcp.WithString("description",
			mcp.Description("What the project is about"),
		),
		mcp.WithString("owner_id",
			mcp.Required(),
			mcp.Description("Id of the owning user"),
		),
		mcp.WithString("status",
			mcp.Description("Project status (default: active)"),
			mcp.Enum("active", "archived", "completed"),
		),
	)
}

// Handle processes the create_project tool call.
func (t *CreateProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	ownerID := req.GetString("owner_id", "")
	status := store.ProjectStatus(req.GetString("status", string(store.ProjectActive)))

	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}
	if ownerID == "" {
		return mcp.NewToolResultError("'owner_id' is required"), nil
	}
	if err := store.ValidateProjectStatus(status); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project := t.store.CreateProject(store.NewProject{
		Name:        name,
		Description: req.GetString("description", ""),
		OwnerID:     ownerID,
		Status:      status,
	})
	return jsonResult(project), nil
}

// GetProjectTool handles the get_project MCP tool.
type GetProjectTool struct {
	store *store.Store
}

// NewGetProjectTool creates a GetProjectTool with the given store.
func NewGetProjectTool(s *store.Store) *GetProjectTool {
	return &GetProjectTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("get_project",
		mcp.WithDescription("Get a project by id."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Id of the project to fetch"),
		),
	)
}

// Handle processes the get_project tool call.
func (t *GetProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("project_id", "")
	if id == "" {
		return mcp.NewToolResultError("'project_id' is required"), nil
	}
	project, ok := t.store.GetProject(id)
	if !ok {
		return notFound("Project", id), nil
	}
	return jsonResult(project), nil
}

// ListProjectsTool handles the list_projects MCP tool.
type ListProjectsTool struct {
	store *store.Store
}

// NewListProjectsTool creates a ListProjectsTool with the given store.
func NewListProjectsTool(s *store.Store) *ListProjectsTool {
	return &ListProjectsTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ListProjectsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("List all projects."),
	)
}

// Handle processes the list_projects tool call.
func (t *ListProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.ListProjects()), nil
}

// ProjectsByOwnerTool handles the get_projects_by_owner MCP tool.
type ProjectsByOwnerTool struct {
	store *store.Store
}

// NewProjectsByOwnerTool creates a ProjectsByOwnerTool with the given store.
func NewProjectsByOwnerTool(s *store.Store) *ProjectsByOwnerTool {
	return &ProjectsByOwnerTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectsByOwnerTool) Definition() mcp.Tool {
	return mcp.NewTool("get_projects_by_owner",
		mcp.WithDescription("List the projects owned by a user. Unknown owner ids yield an empty list."),
		mcp.WithString("owner_id",
			mcp.Required(),
			mcp.Description("Id of the owning user"),
		),
	)
}

// Handle processes the get_projects_by_owner tool call.
func (t *ProjectsByOwnerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID := req.GetString("owner_id", "")
	if ownerID == "" {
		return mcp.NewToolResultError("'owner_id' is required"), nil
	}
	return jsonResult(t.store.ListProjectsByOwner(ownerID)), nil
}

// UpdateProjectTool handles the update_project MCP tool.
type UpdateProjectTool struct {
	store *store.Store
}

// NewUpdateProjectTool creates an UpdateProjectTool with the given store.
func NewUpdateProjectTool(s *store.Store) *UpdateProjectTool {
	return &UpdateProjectTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("update_project",
		mcp.WithDescription("Update a project. Only the provided fields change."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Id of the project to update"),
		),
		mcp.WithString("name",
			mcp.Description("New project name"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("owner_id",
			mcp.Description("New owner id"),
		),
		mcp.WithString("status",
			mcp.Description("New status"),
			mcp.Enum("active", "archived", "completed"),
		),
	)
}

// Handle processes the update_project tool call.
func (t *UpdateProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("project_id", "")
	if id == "" {
		return mcp.NewToolResultError("'project_id' is required"), nil
	}

	args := req.GetArguments()
	var patch store.ProjectPatch
	if v, present, err := stringField(args, "name"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Name = store.Set(v)
	}
	if v, present, err := stringField(args, "description"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Description = store.Set(v)
	}
	if v, present, err := stringField(args, "owner_id"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.OwnerID = store.Set(v)
	}
	if v, present, err := stringField(args, "status"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		if err := store.ValidateProjectStatus(store.ProjectStatus(v)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch.Status = store.Set(store.ProjectStatus(v))
	}

	project, ok := t.store.UpdateProject(id, patch)
	if !ok {
		return notFound("Project", id), nil
	}
	return jsonResult(project), nil
}

// DeleteProjectTool handles the delete_project MCP tool. Deleting a
// project removes its tasks, and those tasks' comments, in one step.
type DeleteProjectTool struct {
	store *store.Store
}

// NewDeleteProjectTool creates a DeleteProjectTool with the given store.
func NewDeleteProjectTool(s *store.Store) *DeleteProjectTool {
	return &DeleteProjectTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *DeleteProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_project",
		mcp.WithDescription("Delete a project and cascade: all of its tasks and their comments are removed."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("Id of the project to delete"),
		),
	)
}

// Handle processes the delete_project tool call.
func (t *DeleteProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("project_id", "")
	if id == "" {
		return mcp.NewToolResultError("'project_id' is required"), nil
	}
	if !t.store.DeleteProject(id) {
		return notFound("Project", id), nil
	}
	return jsonResult(map[string]any{"deleted": true, "id": id}), nil
}
