package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

// CreateUserTool handles the create_user MCP tool.
type CreateUserTool struct {
	store *store.Store
}

// NewCreateUserTool creates a CreateUserTool with the given store.
func NewCreateUserTool(s *store.Store) *CreateUserTool {
	return &CreateUserTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateUserTool) Definition() mcp.Tool {
	return mcp.NewTool("create_user",
		mcp.WithDescription("Create a new user. The server assigns the id and timestamps."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name of the user"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address (uniqueness is not enforced)"),
		),
		mcp.WithString("role",
			mcp.Required(),
			mcp.Description("Access level"),
			mcp.Enum("admin", "user", "viewer"),
		),
	)
}

// Handle processes the create_user tool call.
func (t *CreateUserTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	email := req.GetString("email", "")
	role := store.Role(req.GetString("role", ""))

	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}
	if email == "" {
		return mcp.NewToolResultError("'email' is required"), nil
	}
	if err := store.ValidateRole(role); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	user := t.store.CreateUser(store.NewUser{Name: name, Email: email, Role: role})
	return jsonResult(user), nil
}

// GetUserTool handles the get_user MCP tool.
type GetUserTool struct {
	store *store.Store
}

// NewGetUserTool creates a GetUserTool with the given store.
func NewGetUserTool(s *store.Store) *GetUserTool {
	return &GetUserTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *GetUserTool) Definition() mcp.Tool {
	return mcp.NewTool("get_user",
		mcp.WithDescription("Get a user by id."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Id of the user to fetch"),
		),
	)
}

// Handle processes the get_user tool call.
func (t *GetUserTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("user_id", "")
	if id == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}
	user, ok := t.store.GetUser(id)
	if !ok {
		return notFound("User", id), nil
	}
	return jsonResult(user), nil
}

// ListUsersTool handles the list_users MCP tool.
type ListUsersTool struct {
	store *store.Store
}

// NewListUsersTool creates a ListUsersTool with the given store.
func NewListUsersTool(s *store.Store) *ListUsersTool {
	return &ListUsersTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ListUsersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_users",
		mcp.WithDescription("List all users."),
	)
}

// Handle processes the list_users tool call.
func (t *ListUsersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.ListUsers()), nil
}

// UpdateUserTool handles the update_user MCP tool.
type UpdateUserTool struct {
	store *store.Store
}

// NewUpdateUserTool creates an UpdateUserTool with the given store.
func NewUpdateUserTool(s *store.Store) *UpdateUserTool {
	return &UpdateUserTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateUserTool) Definition() mcp.Tool {
	return mcp.NewTool("update_user",
		mcp.WithDescription("Update a user. Only the provided fields change."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Id of the user to update"),
		),
		mcp.WithString("name",
			mcp.Description("New display name"),
		),
		mcp.WithString("email",
			mcp.Description("New email address"),
		),
		mcp.WithString("role",
			mcp.Description("New access level"),
			mcp.Enum("admin", "user", "viewer"),
		),
	)
}

// Handle processes the update_user tool call.
func (t *UpdateUserTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("user_id", "")
	if id == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}

	args := req.GetArguments()
	var patch store.UserPatch
	if v, present, err := stringField(args, "name"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Name = store.Set(v)
	}
	if v, present, err := stringField(args, "email"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Email = store.Set(v)
	}
	if v, present, err := stringField(args, "role"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		if err := store.ValidateRole(store.Role(v)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch.Role = store.Set(store.Role(v))
	}

	user, ok := t.store.UpdateUser(id, patch)
	if !ok {
		return notFound("User", id), nil
	}
	return jsonResult(user), nil
}

// DeleteUserTool handles the delete_user MCP tool. Deleting a user does
// not cascade: records referencing the user keep the dangling id.
type DeleteUserTool struct {
	store *store.Store
}

// NewDeleteUserTool creates a DeleteUserTool with the given store.
func NewDeleteUserTool(s *store.Store) *DeleteUserTool {
	return &DeleteUserTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *DeleteUserTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_user",
		mcp.WithDescription("Delete a user. Projects, tasks, and comments referencing the user are kept."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Id of the user to delete"),
		),
	)
}

// Handle processes the delete_user tool call.
func (t *DeleteUserTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("user_id", "")
	if id == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}
	if !t.store.DeleteUser(id) {
		return notFound("User", id), nil
	}
	return jsonResult(map[string]any{"deleted": true, "id": id}), nil
}
