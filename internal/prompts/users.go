package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
	"github.com/taskwell/taskwell/internal/templates"
)

// UserDetailsPrompt handles the user-details MCP prompt: a narrative
// profile of one user.
type UserDetailsPrompt struct {
	store    *store.Store
	renderer *templates.Renderer
}

// NewUserDetailsPrompt creates a UserDetailsPrompt.
func NewUserDetailsPrompt(s *store.Store, r *templates.Renderer) *UserDetailsPrompt {
	return &UserDetailsPrompt{store: s, renderer: r}
}

// Definition returns the MCP prompt definition for registration.
func (p *UserDetailsPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("user-details",
		mcp.WithPromptDescription(
			"Show a user's profile: name, email, role, and when the account was created.",
		),
		mcp.WithArgument("user_id",
			mcp.ArgumentDescription("Id of the user (a unique prefix works too)"),
		),
	)
}

// Handle processes the user-details prompt request.
func (p *UserDetailsPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	raw := argument(req, "user_id")
	id, ok := resolveID(p.store, store.KindUser, raw)
	if !ok {
		return notFoundResult("user", raw), nil
	}
	user, ok := p.store.GetUser(id)
	if !ok {
		return notFoundResult("user", raw), nil
	}

	text, err := p.renderer.Render(templates.UserDetails, templates.UserDetailsData{User: user})
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("User details: %s", user.Name), text), nil
}

// AllUsersPrompt handles the all-users MCP prompt: a narrative roster of
// every user in the workspace.
type AllUsersPrompt struct {
	store    *store.Store
	renderer *templates.Renderer
}

// NewAllUsersPrompt creates an AllUsersPrompt.
func NewAllUsersPrompt(s *store.Store, r *templates.Renderer) *AllUsersPrompt {
	return &AllUsersPrompt{store: s, renderer: r}
}

// Definition returns the MCP prompt definition for registration.
func (p *AllUsersPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("all-users",
		mcp.WithPromptDescription("List every user in the workspace with their role and email."),
	)
}

// Handle processes the all-users prompt request.
func (p *AllUsersPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	users := p.store.ListUsers()
	text, err := p.renderer.Render(templates.UserList, templates.UserListData{Users: users})
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("All users (%d)", len(users)), text), nil
}
