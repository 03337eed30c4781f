package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
	"github.com/taskwell/taskwell/internal/templates"
)

// ProjectDetailsPrompt handles the project-details MCP prompt: project
// metadata, completion statistics, and the full task list with resolved
// names.
type ProjectDetailsPrompt struct {
	store    *store.Store
	renderer *templates.Renderer
}

// NewProjectDetailsPrompt creates a ProjectDetailsPrompt.
func NewProjectDetailsPrompt(s *store.Store, r *templates.Renderer) *ProjectDetailsPrompt {
	return &ProjectDetailsPrompt{store: s, renderer: r}
}

// Definition returns the MCP prompt definition for registration.
func (p *ProjectDetailsPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("project-details",
		mcp.WithPromptDescription(
			"Show a project overview: owner, status, task statistics, and every task "+
				"with its assignee and tags.",
		),
		mcp.WithArgument("project_id",
			mcp.ArgumentDescription("Id of the project (a unique prefix works too)"),
		),
	)
}

// Handle processes the project-details prompt request.
func (p *ProjectDetailsPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	raw := argument(req, "project_id")
	id, ok := resolveID(p.store, store.KindProject, raw)
	if !ok {
		return notFoundResult("project", raw), nil
	}
	project, ok := p.store.GetProject(id)
	if !ok {
		return notFoundResult("project", raw), nil
	}

	ownerName := templates.UnknownName
	if owner, found := p.store.GetUser(project.OwnerID); found {
		ownerName = owner.Name
	}

	data := templates.ProjectDetailsData{
		Project:   project,
		OwnerName: ownerName,
		Stats:     p.store.ProjectStatistics(id),
		Tasks:     taskLines(p.store, p.store.ListTasksByProject(id)),
	}
	text, err := p.renderer.Render(templates.ProjectDetails, data)
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Project details: %s", project.Name), text), nil
}

// TasksByProjectPrompt handles the tasks-by-project MCP prompt: just the
// task list of a project, without the surrounding project metadata.
type TasksByProjectPrompt struct {
	store    *store.Store
	renderer *templates.Renderer
}

// NewTasksByProjectPrompt creates a TasksByProjectPrompt.
func NewTasksByProjectPrompt(s *store.Store, r *templates.Renderer) *TasksByProjectPrompt {
	return &TasksByProjectPrompt{store: s, renderer: r}
}

// Definition returns the MCP prompt definition for registration.
func (p *TasksByProjectPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("tasks-by-project",
		mcp.WithPromptDescription("List a project's tasks with status, priority, assignee, due date, and tags."),
		mcp.WithArgument("project_id",
			mcp.ArgumentDescription("Id of the project (a unique prefix works too)"),
		),
	)
}

// Handle processes the tasks-by-project prompt request.
func (p *TasksByProjectPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	raw := argument(req, "project_id")
	id, ok := resolveID(p.store, store.KindProject, raw)
	if !ok {
		return notFoundResult("project", raw), nil
	}
	project, ok := p.store.GetProject(id)
	if !ok {
		return notFoundResult("project", raw), nil
	}

	data := templates.TaskListData{
		ProjectName: project.Name,
		ProjectID:   project.ID,
		Tasks:       taskLines(p.store, p.store.ListTasksByProject(id)),
	}
	text, err := p.renderer.Render(templates.TaskList, data)
	if err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("Tasks in %s", project.Name), text), nil
}
