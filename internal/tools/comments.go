package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

// CreateCommentTool handles the create_comment MCP tool.
type CreateCommentTool struct {
	store *store.Store
}

// NewCreateCommentTool creates a CreateCommentTool with the given store.
func NewCreateCommentTool(s *store.Store) *CreateCommentTool {
	return &CreateCommentTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("create_comment",
		mcp.WithDescription("Add a comment to a task. References are stored as given and not checked for existence."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Id of the task being commented on"),
		),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Id of the commenting user"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Comment text"),
		),
	)
}

// Handle processes the create_comment tool call.
func (t *CreateCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	userID := req.GetString("user_id", "")
	content := req.GetString("content", "")

	if taskID == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}
	if userID == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	comment := t.store.CreateComment(store.NewComment{TaskID: taskID, UserID: userID, Content: content})
	return jsonResult(comment), nil
}

// GetCommentTool handles the get_comment MCP tool.
type GetCommentTool struct {
	store *store.Store
}

// NewGetCommentTool creates a GetCommentTool with the given store.
func NewGetCommentTool(s *store.Store) *GetCommentTool {
	return &GetCommentTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *GetCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("get_comment",
		mcp.WithDescription("Get a comment by id."),
		mcp.WithString("comment_id",
			mcp.Required(),
			mcp.Description("Id of the comment to fetch"),
		),
	)
}

// Handle processes the get_comment tool call.
func (t *GetCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("comment_id", "")
	if id == "" {
		return mcp.NewToolResultError("'comment_id' is required"), nil
	}
	comment, ok := t.store.GetComment(id)
	if !ok {
		return notFound("Comment", id), nil
	}
	return jsonResult(comment), nil
}

// ListCommentsTool handles the list_comments MCP tool.
type ListCommentsTool struct {
	store *store.Store
}

// NewListCommentsTool creates a ListCommentsTool with the given store.
func NewListCommentsTool(s *store.Store) *ListCommentsTool {
	return &ListCommentsTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ListCommentsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_comments",
		mcp.WithDescription("List all comments, oldest first."),
	)
}

// Handle processes the list_comments tool call.
func (t *ListCommentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.ListComments()), nil
}

// CommentsByTaskTool handles the get_comments_by_task MCP tool.
type CommentsByTaskTool struct {
	store *store.Store
}

// NewCommentsByTaskTool creates a CommentsByTaskTool with the given store.
func NewCommentsByTaskTool(s *store.Store) *CommentsByTaskTool {
	return &CommentsByTaskTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CommentsByTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("get_comments_by_task",
		mcp.WithDescription("List a task's comments, oldest first."),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Id of the task"),
		),
	)
}

// Handle processes the get_comments_by_task tool call.
func (t *CommentsByTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("'task_id' is required"), nil
	}
	return jsonResult(t.store.ListCommentsByTask(taskID)), nil
}

// CommentsByUserTool handles the get_comments_by_user MCP tool.
type CommentsByUserTool struct {
	store *store.Store
}

// NewCommentsByUserTool creates a CommentsByUserTool with the given store.
func NewCommentsByUserTool(s *store.Store) *CommentsByUserTool {
	return &CommentsByUserTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CommentsByUserTool) Definition() mcp.Tool {
	return mcp.NewTool("get_comments_by_user",
		mcp.WithDescription("List a user's comments, oldest first."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Id of the commenting user"),
		),
	)
}

// Handle processes the get_comments_by_user tool call.
func (t *CommentsByUserTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := req.GetString("user_id", "")
	if userID == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}
	return jsonResult(t.store.ListCommentsByUser(userID)), nil
}

// UpdateCommentTool handles the update_comment MCP tool.
type UpdateCommentTool struct {
	store *store.Store
}

// NewUpdateCommentTool creates an UpdateCommentTool with the given store.
func NewUpdateCommentTool(s *store.Store) *UpdateCommentTool {
	return &UpdateCommentTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("update_comment",
		mcp.WithDescription("Update a comment's content."),
		mcp.WithString("comment_id",
			mcp.Required(),
			mcp.Description("Id of the comment to update"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Replacement comment text"),
		),
	)
}

// Handle processes the update_comment tool call.
func (t *UpdateCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("comment_id", "")
	content := req.GetString("content", "")
	if id == "" {
		return mcp.NewToolResultError("'comment_id' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	comment, ok := t.store.UpdateComment(id, store.CommentPatch{Content: store.Set(content)})
	if !ok {
		return notFound("Comment", id), nil
	}
	return jsonResult(comment), nil
}

// DeleteCommentTool handles the delete_comment MCP tool.
type DeleteCommentTool struct {
	store *store.Store
}

// NewDeleteCommentTool creates a DeleteCommentTool with the given store.
func NewDeleteCommentTool(s *store.Store) *DeleteCommentTool {
	return &DeleteCommentTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *DeleteCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_comment",
		mcp.WithDescription("Delete a comment."),
		mcp.WithString("comment_id",
			mcp.Required(),
			mcp.Description("Id of the comment to delete"),
		),
	)
}

// Handle processes the delete_comment tool call.
func (t *DeleteCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("comment_id", "")
	if id == "" {
		return mcp.NewToolResultError("'comment_id' is required"), nil
	}
	if !t.store.DeleteComment(id) {
		return notFound("Comment", id), nil
	}
	return jsonResult(map[string]any{"deleted": true, "id": id}), nil
}
