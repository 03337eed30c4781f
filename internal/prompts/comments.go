package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
	"github.com/taskwell/taskwell/internal/templates"
)

// CommentDetailsPrompt handles the comment-details MCP prompt: one
// comment with its author and task resolved to names.
type CommentDetailsPrompt struct {
	store    *store.Store
	renderer *templates.Renderer
}

// NewCommentDetailsPrompt creates a CommentDetailsPrompt.
func NewCommentDetailsPrompt(s *store.Store, r *templates.Renderer) *CommentDetailsPrompt {
	return &CommentDetailsPrompt{store: s, renderer: r}
}

// Definition returns the MCP prompt definition for registration.
func (p *CommentDetailsPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("comment-details",
		mcp.WithPromptDescription("Show a comment with its author name and the task it belongs to."),
		mcp.WithArgument("comment_id",
			mcp.ArgumentDescription("Id of the comment (a unique prefix works too)"),
		),
	)
}

// Handle processes the comment-details prompt request.
func (p *CommentDetailsPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	raw := argument(req, "comment_id")
	id, ok := resolveID(p.store, store.KindComment, raw)
	if !ok {
		return notFoundResult("comment", raw), nil
	}
	comment, ok := p.store.GetComment(id)
	if !ok {
		return notFoundResult("comment", raw), nil
	}

	authorName := templates.UnknownName
	if author, found := p.store.GetUser(comment.UserID); found {
		authorName = author.Name
	}
	taskTitle := templates.UnknownName
	if task, found := p.store.GetTask(comment.TaskID); found {
		taskTitle = task.Title
	}

	data := templates.CommentDetailsData{
		Comment:    comment,
		AuthorName: authorName,
		TaskTitle:  taskTitle,
	}
	text, err := p.renderer.Render(templates.CommentDetails, data)
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Comment by %s", authorName), text), nil
}
