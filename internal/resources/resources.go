package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

// Handler manages the workspace resource endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// ─── Users ───────────────────────────────────────────────────────────────────

// UsersResource returns the definition of the user collection resource.
func (h *Handler) UsersResource() mcp.Resource {
	return mcp.NewResource(
		"user-manager://users",
		"All Users",
		mcp.WithResourceDescription("Every user in the workspace, with an id list for quick lookups"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleUsers serves the user collection.
func (h *Handler) HandleUsers(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	users := h.store.ListUsers()
	return jsonResource(req.Params.URI, collection{
		Count: len(users),
		Items: users,
		IDs:   h.store.CompleteIDs(store.KindUser, ""),
	})
}

// UserResource returns the definition of the per-user resource template.
func (h *Handler) UserResource() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"user-manager://users/{id}",
		"User by Id",
		mcp.WithTemplateDescription("A single user document"),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// HandleUser serves one user by id.
func (h *Handler) HandleUser(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := extractID(req.Params.URI, "user-manager://users/")
	if id == "" {
		return errorResource(req.Params.URI, "User ID is required"), nil
	}
	user, ok := h.store.GetUser(id)
	if !ok {
		return errorResource(req.Params.URI, "User not found"), nil
	}
	return jsonResource(req.Params.URI, user)
}

// ─── Projects ────────────────────────────────────────────────────────────────

// ProjectsResource returns the definition of the project collection
// resource.
func (h *Handler) ProjectsResource() mcp.Resource {
	return mcp.NewResource(
		"project-manager://projects",
		"All Projects",
		mcp.WithResourceDescription("Every project in the workspace, with an id list for quick lookups"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleProjects serves the project collection.
func (h *Handler) HandleProjects(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	projects := h.store.ListProjects()
	return jsonResource(req.Params.URI, collection{
		Count: len(projects),
		Items: projects,
		IDs:   h.store.CompleteIDs(store.KindProject, ""),
	})
}

// ProjectResource returns the definition of the per-project resource
// template.
func (h *Handler) ProjectResource() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"project-manager://projects/{id}",
		"Project by Id",
		mcp.WithTemplateDescription("A single project document"),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// HandleProject serves one project by id.
func (h *Handler) HandleProject(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := extractID(req.Params.URI, "project-manager://projects/")
	if id == "" {
		return errorResource(req.Params.URI, "Project ID is required"), nil
	}
	project, ok := h.store.GetProject(id)
	if !ok {
		return errorResource(req.Params.URI, "Project not found"), nil
	}
	return jsonResource(req.Params.URI, project)
}

// ─── Tasks ───────────────────────────────────────────────────────────────────

// TasksResource returns the definition of the task collection resource.
func (h *Handler) TasksResource() mcp.Resource {
	return mcp.NewResource(
		"task-manager://tasks",
		"All Tasks",
		mcp.WithResourceDescription("Every task in the workspace, with an id list for quick lookups"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleTasks serves the task collection.
func (h *Handler) HandleTasks(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tasks := h.store.ListTasks()
	return jsonResource(req.Params.URI, collection{
		Count: len(tasks),
		Items: tasks,
		IDs:   h.store.CompleteIDs(store.KindTask, ""),
	})
}

// TaskResource returns the definition of the per-task resource template.
func (h *Handler) TaskResource() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"task-manager://tasks/{id}",
		"Task by Id",
		mcp.WithTemplateDescription("A single task document"),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// HandleTask serves one task by id.
func (h *Handler) HandleTask(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := extractID(req.Params.URI, "task-manager://tasks/")
	if id == "" {
		return errorResource(req.Params.URI, "Task ID is required"), nil
	}
	task, ok := h.store.GetTask(id)
	if !ok {
		return errorResource(req.Params.URI, "Task not found"), nil
	}
	return jsonResource(req.Params.URI, task)
}

// ─── Tags ────────────────────────────────────────────────────────────────────

// TagsResource returns the definition of the tag collection resource.
func (h *Handler) TagsResource() mcp.Resource {
	return mcp.NewResource(
		"tag-manager://tags",
		"All Tags",
		mcp.WithResourceDescription("Every tag in the workspace, with an id list for quick lookups"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleTags serves the tag collection.
func (h *Handler) HandleTags(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tags := h.store.ListTags()
	return jsonResource(req.Params.URI, collection{
		Count: len(tags),
		Items: tags,
		IDs:   h.store.CompleteIDs(store.KindTag, ""),
	})
}

// TagResource returns the definition of the per-tag resource template.
func (h *Handler) TagResource() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"tag-manager://tags/{id}",
		"Tag by Id",
		mcp.WithTemplateDescription("A single tag document"),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// HandleTag serves one tag by id.
func (h *Handler) HandleTag(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := extractID(req.Params.URI, "tag-manager://tags/")
	if id == "" {
		return errorResource(req.Params.URI, "Tag ID is required"), nil
	}
	tag, ok := h.store.GetTag(id)
	if !ok {
		return errorResource(req.Params.URI, "Tag not found"), nil
	}
	return jsonResource(req.Params.URI, tag)
}

// ─── Comments ────────────────────────────────────────────────────────────────

// CommentsResource returns the definition of the comment collection
// resource.
func (h *Handler) CommentsResource() mcp.Resource {
	return mcp.NewResource(
		"comment-manager://comments",
		"All Comments",
		mcp.WithResourceDescription("Every comment in the workspace, oldest first, with an id list"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleComments serves the comment collection.
func (h *Handler) HandleComments(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	comments := h.store.ListComments()
	return jsonResource(req.Params.URI, collection{
		Count: len(comments),
		Items: comments,
		IDs:   h.store.CompleteIDs(store.KindComment, ""),
	})
}

// CommentResource returns the definition of the per-comment resource
// template.
func (h *Handler) CommentResource() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"comment-manager://comments/{id}",
		"Comment by Id",
		mcp.WithTemplateDescription("A single comment document"),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// HandleComment serves one comment by id.
func (h *Handler) HandleComment(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := extractID(req.Params.URI, "comment-manager://comments/")
	if id == "" {
		return errorResource(req.Params.URI, "Comment ID is required"), nil
	}
	comment, ok := h.store.GetComment(id)
	if !ok {
		return errorResource(req.Params.URI, "Comment not found"), nil
	}
	return jsonResource(req.Params.URI, comment)
}
