// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on them. No
// business logic lives here, only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/taskwell/taskwell/internal/config"
	"github.com/taskwell/taskwell/internal/prompts"
	"github.com/taskwell/taskwell/internal/resources"
	"github.com/taskwell/taskwell/internal/store"
	"github.com/taskwell/taskwell/internal/templates"
	"github.com/taskwell/taskwell/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. This is the single place where dependencies are
// resolved.
func New(cfg *config.Config) (*server.MCPServer, error) {
	// --- Create shared dependencies ---

	var st *store.Store
	if cfg.Seed {
		st = store.NewSeeded()
	} else {
		st = store.New()
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating template renderer: %w", err)
	}

	confirmer := tools.NewElicitConfirmer()

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		cfg.ServerName,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register user tools ---

	createUser := tools.NewCreateUserTool(st)
	s.AddTool(createUser.Definition(), createUser.Handle)

	getUser := tools.NewGetUserTool(st)
	s.AddTool(getUser.Definition(), getUser.Handle)

	listUsers := tools.NewListUsersTool(st)
	s.AddTool(listUsers.Definition(), listUsers.Handle)

	updateUser := tools.NewUpdateUserTool(st)
	s.AddTool(updateUser.Definition(), updateUser.Handle)

	deleteUser := tools.NewDeleteUserTool(st)
	s.AddTool(deleteUser.Definition(), deleteUser.Handle)

	// --- Register project tools ---

	createProject := tools.NewCreateProjectTool(st)
	s.AddTool(createProject.Definition(), createProject.Handle)

	getProject := tools.NewGetProjectTool(st)
	s.AddTool(getProject.Definition(), getProject.Handle)

	listProjects := tools.NewListProjectsTool(st)
	s.AddTool(listProjects.Definition(), listProjects.Handle)

	projectsByOwner := tools.NewProjectsByOwnerTool(st)
	s.AddTool(projectsByOwner.Definition(), projectsByOwner.Handle)

	updateProject := tools.NewUpdateProjectTool(st)
	s.AddTool(updateProject.Definition(), updateProject.Handle)

	deleteProject := tools.NewDeleteProjectTool(st)
	s.AddTool(deleteProject.Definition(), deleteProject.Handle)

	// --- Register task tools ---

	createTask := tools.NewCreateTaskTool(st)
	s.AddTool(createTask.Definition(), createTask.Handle)

	getTask := tools.NewGetTaskTool(st)
	s.AddTool(getTask.Definition(), getTask.Handle)

	listTasks := tools.NewListTasksTool(st)
	s.AddTool(listTasks.Definition(), listTasks.Handle)

	tasksByProject := tools.NewTasksByProjectTool(st)
	s.AddTool(tasksByProject.Definition(), tasksByProject.Handle)

	tasksByAssignee := tools.NewTasksByAssigneeTool(st)
	s.AddTool(tasksByAssignee.Definition(), tasksByAssignee.Handle)

	tasksByStatus := tools.NewTasksByStatusTool(st)
	s.AddTool(tasksByStatus.Definition(), tasksByStatus.Handle)

	tasksByTag := tools.NewTasksByTagTool(st)
	s.AddTool(tasksByTag.Definition(), tasksByTag.Handle)

	searchTasks := tools.NewSearchTasksTool(st)
	s.AddTool(searchTasks.Definition(), searchTasks.Handle)

	updateTask := tools.NewUpdateTaskTool(st)
	s.AddTool(updateTask.Definition(), updateTask.Handle)

	deleteTask := tools.NewDeleteTaskTool(st)
	s.AddTool(deleteTask.Definition(), deleteTask.Handle)

	// --- Register tag tools ---

	createTag := tools.NewCreateTagTool(st)
	s.AddTool(createTag.Definition(), createTag.Handle)

	getTag := tools.NewGetTagTool(st)
	s.AddTool(getTag.Definition(), getTag.Handle)

	listTags := tools.NewListTagsTool(st)
	s.AddTool(listTags.Definition(), listTags.Handle)

	updateTag := tools.NewUpdateTagTool(st)
	s.AddTool(updateTag.Definition(), updateTag.Handle)

	deleteTag := tools.NewDeleteTagTool(st, confirmer)
	s.AddTool(deleteTag.Definition(), deleteTag.Handle)

	// --- Register comment tools ---

	createComment := tools.NewCreateCommentTool(st)
	s.AddTool(createComment.Definition(), createComment.Handle)

	getComment := tools.NewGetCommentTool(st)
	s.AddTool(getComment.Definition(), getComment.Handle)

	listComments := tools.NewListCommentsTool(st)
	s.AddTool(listComments.Definition(), listComments.Handle)

	commentsByTask := tools.NewCommentsByTaskTool(st)
	s.AddTool(commentsByTask.Definition(), commentsByTask.Handle)

	commentsByUser := tools.NewCommentsByUserTool(st)
	s.AddTool(commentsByUser.Definition(), commentsByUser.Handle)

	updateComment := tools.NewUpdateCommentTool(st)
	s.AddTool(updateComment.Definition(), updateComment.Handle)

	deleteComment := tools.NewDeleteCommentTool(st)
	s.AddTool(deleteComment.Definition(), deleteComment.Handle)

	// --- Register statistics tools ---

	taskStats := tools.NewTaskStatisticsTool(st)
	s.AddTool(taskStats.Definition(), taskStats.Handle)

	projectStats := tools.NewProjectStatisticsTool(st)
	s.AddTool(projectStats.Definition(), projectStats.Handle)

	// --- Register prompts ---

	userDetails := prompts.NewUserDetailsPrompt(st, renderer)
	s.AddPrompt(userDetails.Definition(), userDetails.Handle)

	allUsers := prompts.NewAllUsersPrompt(st, renderer)
	s.AddPrompt(allUsers.Definition(), allUsers.Handle)

	projectDetails := prompts.NewProjectDetailsPrompt(st, renderer)
	s.AddPrompt(projectDetails.Definition(), projectDetails.Handle)

	tasksByProjectPrompt := prompts.NewTasksByProjectPrompt(st, renderer)
	s.AddPrompt(tasksByProjectPrompt.Definition(), tasksByProjectPrompt.Handle)

	commentDetails := prompts.NewCommentDetailsPrompt(st, renderer)
	s.AddPrompt(commentDetails.Definition(), commentDetails.Handle)

	// --- Register resources ---

	rh := resources.NewHandler(st)
	s.AddResource(rh.UsersResource(), rh.HandleUsers)
	s.AddResourceTemplate(rh.UserResource(), rh.HandleUser)
	s.AddResource(rh.ProjectsResource(), rh.HandleProjects)
	s.AddResourceTemplate(rh.ProjectResource(), rh.HandleProject)
	s.AddResource(rh.TasksResource(), rh.HandleTasks)
	s.AddResourceTemplate(rh.TaskResource(), rh.HandleTask)
	s.AddResource(rh.TagsResource(), rh.HandleTags)
	s.AddResourceTemplate(rh.TagResource(), rh.HandleTag)
	s.AddResource(rh.CommentsResource(), rh.HandleComments)
	s.AddResourceTemplate(rh.CommentResource(), rh.HandleComment)

	log.Info().
		Str("name", cfg.ServerName).
		Str("version", Version).
		Bool("seeded", cfg.Seed).
		Msg("server configured")

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use the task tracker effectively.
func serverInstructions() string {
	return `You have access to Taskwell, a task-tracking MCP server.

## Data model
The workspace holds five entity kinds: users, projects, tasks, tags, and
comments. Tasks belong to a project, may be assigned to a user, and may
carry tag ids. Comments belong to a task and a user. All data is held
in memory for the lifetime of the server process.

## Using the tools
- Create entities with create_user / create_project / create_task /
  create_tag / create_comment. References are stored as given and are
  not validated, so create referenced entities first if you want
  consistent listings.
- Update tools change only the fields you pass. For update_task, pass
  null for assignee_id or due_date to clear them.
- Deleting a project removes its tasks and their comments. Deleting a
  task removes its comments. Deleting a tag asks the user for
  confirmation first, then detaches the tag from every task.
- get_task_statistics and get_project_statistics summarize progress;
  use them before reporting status to the user.

## Resources and prompts
Collection resources (user-manager://users, project-manager://projects,
task-manager://tasks, tag-manager://tags, comment-manager://comments)
expose raw JSON snapshots; append /<id> for a single document. The
prompts (user-details, all-users, project-details, tasks-by-project,
comment-details) produce human-readable summaries and accept unique id
prefixes.`
}
