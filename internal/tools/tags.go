package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

// CreateTagTool handles the create_tag MCP tool.
type CreateTagTool struct {
	store *store.Store
}

// NewCreateTagTool creates a CreateTagTool with the given store.
func NewCreateTagTool(s *store.Store) *CreateTagTool {
	return &CreateTagTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateTagTool) Definition() mcp.Tool {
	return mcp.NewTool("create_tag",
		mcp.WithDescription("Create a new tag."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Tag name"),
		),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Hex color, e.g. #3b82f6"),
		),
	)
}

// Handle processes the create_tag tool call.
func (t *CreateTagTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	color := req.GetString("color", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}
	if color == "" {
		return mcp.NewToolResultError("'color' is required"), nil
	}
	return jsonResult(t.store.CreateTag(store.NewTag{Name: name, Color: color})), nil
}

// GetTagTool handles the get_tag MCP tool.
type GetTagTool struct {
	store *store.Store
}

// NewGetTagTool creates a GetTagTool with the given store.
func NewGetTagTool(s *store.Store) *GetTagTool {
	return &GetTagTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTagTool) Definition() mcp.Tool {
	return mcp.NewTool("get_tag",
		mcp.WithDescription("Get a tag by id."),
		mcp.WithString("tag_id",
			mcp.Required(),
			mcp.Description("Id of the tag to fetch"),
		),
	)
}

// Handle processes the get_tag tool call.
func (t *GetTagTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("tag_id", "")
	if id == "" {
		return mcp.NewToolResultError("'tag_id' is required"), nil
	}
	tag, ok := t.store.GetTag(id)
	if !ok {
		return notFound("Tag", id), nil
	}
	return jsonResult(tag), nil
}

// ListTagsTool handles the list_tags MCP tool.
type ListTagsTool struct {
	store *store.Store
}

// NewListTagsTool creates a ListTagsTool with the given store.
func NewListTagsTool(s *store.Store) *ListTagsTool {
	return &ListTagsTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *ListTagsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_tags",
		mcp.WithDescription("List all tags."),
	)
}

// Handle processes the list_tags tool call.
func (t *ListTagsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.store.ListTags()), nil
}

// UpdateTagTool handles the update_tag MCP tool.
type UpdateTagTool struct {
	store *store.Store
}

// NewUpdateTagTool creates an UpdateTagTool with the given store.
func NewUpdateTagTool(s *store.Store) *UpdateTagTool {
	return &UpdateTagTool{store: s}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateTagTool) Definition() mcp.Tool {
	return mcp.NewTool("update_tag",
		mcp.WithDescription("Update a tag. Only the provided fields change."),
		mcp.WithString("tag_id",
			mcp.Required(),
			mcp.Description("Id of the tag to update"),
		),
		mcp.WithString("name",
			mcp.Description("New tag name"),
		),
		mcp.WithString("color",
			mcp.Description("New hex color"),
		),
	)
}

// Handle processes the update_tag tool call.
func (t *UpdateTagTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("tag_id", "")
	if id == "" {
		return mcp.NewToolResultError("'tag_id' is required"), nil
	}

	args := req.GetArguments()
	var patch store.TagPatch
	if v, present, err := stringField(args, "name"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Name = store.Set(v)
	}
	if v, present, err := stringField(args, "color"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	} else if present {
		patch.Color = store.Set(v)
	}

	tag, ok := t.store.UpdateTag(id, patch)
	if !ok {
		return notFound("Tag", id), nil
	}
	return jsonResult(tag), nil
}

// DeleteTagTool handles the delete_tag MCP tool. This is the one
// destructive operation gated on an interactive confirmation: the tag is
// removed only after the caller accepts with confirm=true. Until then no
// mutation happens, so a declined or cancelled answer leaves every task's
// tag set untouched.
type DeleteTagTool struct {
	store     *store.Store
	confirmer Confirmer
}

// NewDeleteTagTool creates a DeleteTagTool with the given store and
// confirmer.
func NewDeleteTagTool(s *store.Store, c Confirmer) *DeleteTagTool {
	return &DeleteTagTool{store: s, confirmer: c}
}

// Definition returns the MCP tool definition for registration.
func (t *DeleteTagTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_tag",
		mcp.WithDescription(
			"Delete a tag after interactive confirmation. The tag id is removed "+
				"from every task that references it; tasks themselves are kept.",
		),
		mcp.WithString("tag_id",
			mcp.Required(),
			mcp.Description("Id of the tag to delete"),
		),
	)
}

// Handle processes the delete_tag tool call.
func (t *DeleteTagTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("tag_id", "")
	if id == "" {
		return mcp.NewToolResultError("'tag_id' is required"), nil
	}

	tag, ok := t.store.GetTag(id)
	if !ok {
		return notFound("Tag", id), nil
	}

	referencing := len(t.store.ListTasksByTag(id))
	message := fmt.Sprintf(
		"Delete tag %q (%s)? It will be removed from %d task(s). This cannot be undone.",
		tag.Name, tag.ID, referencing,
	)

	outcome, err := t.confirmer.Confirm(ctx, message)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("confirmation failed: %v", err)), nil
	}

	// A refused confirmation is a successful call that performed no
	// mutation, not an error.
	switch outcome {
	case Confirmed:
		t.store.DeleteTag(id)
		return jsonResult(map[string]any{"success": true, "deleted": true, "id": id}), nil
	case Declined:
		return jsonResult(map[string]any{"success": false, "reason": "declined"}), nil
	default:
		return jsonResult(map[string]any{"success": false, "reason": "cancelled"}), nil
	}
}
