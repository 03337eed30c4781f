package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns all entity collections. It is safe for concurrent use: the
// mutex makes every mutation — including multi-entity cascades — appear
// atomic to readers. Deletion is immediate; there is no soft delete and
// ids are never reused.
type Store struct {
	mu sync.RWMutex

	users    map[string]User
	projects map[string]Project
	tasks    map[string]Task
	tags     map[string]Tag
	comments map[string]Comment

	// Injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:    map[string]User{},
		projects: map[string]Project{},
		tasks:    map[string]Task{},
		tags:     map[string]Tag{},
		comments: map[string]Comment{},
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// NewSeeded creates a Store preloaded with the sample dataset.
func NewSeeded() *Store {
	s := New()
	s.Seed()
	return s
}

// --- Users ---

// CreateUser assigns an id and timestamps and stores the user.
func (s *Store) CreateUser(n NewUser) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	u := User{
		ID:        s.newID(),
		Name:      n.Name,
		Email:     n.Email,
		Role:      n.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = u
	return u
}

// GetUser looks up a user by id. The boolean distinguishes "not found"
// from a found record with zero-valued fields.
func (s *Store) GetUser(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// ListUsers returns all users ordered by creation time.
func (s *Store) ListUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sortByCreation(out, func(u User) (time.Time, string) { return u.CreatedAt, u.ID })
	return out
}

// UpdateUser merges the patch over the existing record and refreshes
// updatedAt. Returns false if the id is unknown.
func (s *Store) UpdateUser(id string, p UserPatch) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, false
	}
	apply(&u.Name, p.Name)
	apply(&u.Email, p.Email)
	apply(&u.Role, p.Role)
	u.UpdatedAt = s.now()
	s.users[id] = u
	return u, true
}

// DeleteUser removes a user. No cascade: projects, tasks, and comments
// referencing the user keep the now-dangling id.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// --- Projects ---

// CreateProject assigns an id and timestamps and stores the project.
// OwnerID is not checked for existence.
func (s *Store) CreateProject(n NewProject) Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := Project{
		ID:          s.newID(),
		Name:        n.Name,
		Description: n.Description,
		OwnerID:     n.OwnerID,
		Status:      n.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.projects[p.ID] = p
	return p
}

// GetProject looks up a project by id.
func (s *Store) GetProject(id string) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	return p, ok
}

// ListProjects returns all projects ordered by creation time.
func (s *Store) ListProjects() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sortByCreation(out, func(p Project) (time.Time, string) { return p.CreatedAt, p.ID })
	return out
}

// ListProjectsByOwner returns the projects whose ownerId matches.
func (s *Store) ListProjectsByOwner(ownerID string) []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Project, 0)
	for _, p := range s.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sortByCreation(out, func(p Project) (time.Time, string) { return p.CreatedAt, p.ID })
	return out
}

// UpdateProject merges the patch over the existing record.
func (s *Store) UpdateProject(id string, p ProjectPatch) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pr, ok := s.projects[id]
	if !ok {
		return Project{}, false
	}
	apply(&pr.Name, p.Name)
	apply(&pr.Description, p.Description)
	apply(&pr.OwnerID, p.OwnerID)
	apply(&pr.Status, p.Status)
	pr.UpdatedAt = s.now()
	s.projects[id] = pr
	return pr, true
}

// DeleteProject removes a project and cascades: every task with a matching
// projectId is deleted, which in turn removes that task's comments. The
// cascade runs under one lock, so no partial state is observable.
func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false
	}
	for taskID, t := range s.tasks {
		if t.ProjectID == id {
			s.deleteTaskLocked(taskID)
		}
	}
	delete(s.projects, id)
	return true
}

// --- Tasks ---

// CreateTask assigns an id and timestamps and stores the task. ProjectID,
// AssigneeID, and tag ids are not checked for existence.
func (s *Store) CreateTask(n NewTask) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := Task{
		ID:          s.newID(),
		Title:       n.Title,
		Description: n.Description,
		ProjectID:   n.ProjectID,
		AssigneeID:  clonePtr(n.AssigneeID),
		Status:      n.Status,
		Priority:    n.Priority,
		DueDate:     clonePtr(n.DueDate),
		Tags:        slices.Clone(n.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	s.tasks[t.ID] = t
	return cloneTask(t)
}

// GetTask looks up a task by id.
func (s *Store) GetTask(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	return cloneTask(t), true
}

// ListTasks returns all tasks ordered by creation time.
func (s *Store) ListTasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasksLocked(func(Task) bool { return true })
}

// ListTasksByProject returns the tasks whose projectId matches.
func (s *Store) ListTasksByProject(projectID string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasksLocked(func(t Task) bool { return t.ProjectID == projectID })
}

// ListTasksByAssignee returns the tasks assigned to the given user.
func (s *Store) ListTasksByAssignee(assigneeID string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasksLocked(func(t Task) bool {
		return t.AssigneeID != nil && *t.AssigneeID == assigneeID
	})
}

// ListTasksByStatus returns the tasks with the given status.
func (s *Store) ListTasksByStatus(status TaskStatus) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasksLocked(func(t Task) bool { return t.Status == status })
}

// ListTasksByTag returns the tasks whose tag set contains the given tag id.
func (s *Store) ListTasksByTag(tagID string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTasksLocked(func(t Task) bool { return slices.Contains(t.Tags, tagID) })
}

// SearchTasks returns the tasks whose title or description contains the
// query, case-insensitively.
func (s *Store) SearchTasks(query string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	return s.filterTasksLocked(func(t Task) bool {
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q)
	})
}

// UpdateTask merges the patch over the existing record. Unset Opt fields
// are left untouched; a set-to-nil AssigneeID or DueDate clears the field.
func (s *Store) UpdateTask(id string, p TaskPatch) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	apply(&t.Title, p.Title)
	apply(&t.Description, p.Description)
	apply(&t.ProjectID, p.ProjectID)
	apply(&t.Status, p.Status)
	apply(&t.Priority, p.Priority)
	if p.AssigneeID.Valid {
		t.AssigneeID = clonePtr(p.AssigneeID.Value)
	}
	if p.DueDate.Valid {
		t.DueDate = clonePtr(p.DueDate.Value)
	}
	if p.Tags.Valid {
		t.Tags = slices.Clone(p.Tags.Value)
		if t.Tags == nil {
			t.Tags = []string{}
		}
	}
	t.UpdatedAt = s.now()
	s.tasks[id] = t
	return cloneTask(t), true
}

// DeleteTask removes a task and cascades to its comments.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	s.deleteTaskLocked(id)
	return true
}

// deleteTaskLocked removes the task's comments first, then the task.
// Callers must hold the write lock.
func (s *Store) deleteTaskLocked(id string) {
	for commentID, c := range s.comments {
		if c.TaskID == id {
			delete(s.comments, commentID)
		}
	}
	delete(s.tasks, id)
}

// filterTasksLocked collects tasks matching the predicate, ordered by
// creation time. Callers must hold at least the read lock.
func (s *Store) filterTasksLocked(match func(Task) bool) []Task {
	out := make([]Task, 0)
	for _, t := range s.tasks {
		if match(t) {
			out = append(out, cloneTask(t))
		}
	}
	sortByCreation(out, func(t Task) (time.Time, string) { return t.CreatedAt, t.ID })
	return out
}

// --- Tags ---

// CreateTag assigns an id and a creation timestamp and stores the tag.
func (s *Store) CreateTag(n NewTag) Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Tag{
		ID:        s.newID(),
		Name:      n.Name,
		Color:     n.Color,
		CreatedAt: s.now(),
	}
	s.tags[t.ID] = t
	return t
}

// GetTag looks up a tag by id.
func (s *Store) GetTag(id string) (Tag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tags[id]
	return t, ok
}

// ListTags returns all tags ordered by creation time.
func (s *Store) ListTags() []Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	sortByCreation(out, func(t Tag) (time.Time, string) { return t.CreatedAt, t.ID })
	return out
}

// UpdateTag merges the patch over the existing record. Tags carry no
// updatedAt, so only the provided fields change.
func (s *Store) UpdateTag(id string, p TagPatch) (Tag, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	if !ok {
		return Tag{}, false
	}
	apply(&t.Name, p.Name)
	apply(&t.Color, p.Color)
	s.tags[id] = t
	return t, true
}

// DeleteTag removes a tag and rewrites the tag set of every task that
// references it. Affected tasks are updated, not deleted, and their
// updatedAt advances.
func (s *Store) DeleteTag(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tags[id]; !ok {
		return false
	}
	now := s.now()
	for taskID, t := range s.tasks {
		if !slices.Contains(t.Tags, id) {
			continue
		}
		kept := make([]string, 0, len(t.Tags)-1)
		for _, tagID := range t.Tags {
			if tagID != id {
				kept = append(kept, tagID)
			}
		}
		t.Tags = kept
		t.UpdatedAt = now
		s.tasks[taskID] = t
	}
	delete(s.tags, id)
	return true
}

// --- Comments ---

// CreateComment assigns an id and timestamps and stores the comment.
// TaskID and UserID are not checked for existence.
func (s *Store) CreateComment(n NewComment) Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := Comment{
		ID:        s.newID(),
		TaskID:    n.TaskID,
		UserID:    n.UserID,
		Content:   n.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.comments[c.ID] = c
	return c
}

// GetComment looks up a comment by id.
func (s *Store) GetComment(id string) (Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	return c, ok
}

// ListComments returns all comments ordered by creation time.
func (s *Store) ListComments() []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterCommentsLocked(func(Comment) bool { return true })
}

// ListCommentsByTask returns the comments on a task, sorted ascending by
// createdAt. The ordering is part of the contract.
func (s *Store) ListCommentsByTask(taskID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterCommentsLocked(func(c Comment) bool { return c.TaskID == taskID })
}

// ListCommentsByUser returns a user's comments, sorted ascending by
// createdAt.
func (s *Store) ListCommentsByUser(userID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterCommentsLocked(func(c Comment) bool { return c.UserID == userID })
}

// UpdateComment merges the patch over the existing record.
func (s *Store) UpdateComment(id string, p CommentPatch) (Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return Comment{}, false
	}
	apply(&c.Content, p.Content)
	c.UpdatedAt = s.now()
	s.comments[id] = c
	return c, true
}

// DeleteComment removes a comment.
func (s *Store) DeleteComment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return false
	}
	delete(s.comments, id)
	return true
}

// filterCommentsLocked collects comments matching the predicate, sorted
// ascending by createdAt. Callers must hold at least the read lock.
func (s *Store) filterCommentsLocked(match func(Comment) bool) []Comment {
	out := make([]Comment, 0)
	for _, c := range s.comments {
		if match(c) {
			out = append(out, c)
		}
	}
	sortByCreation(out, func(c Comment) (time.Time, string) { return c.CreatedAt, c.ID })
	return out
}

// --- Shared helpers ---

// sortByCreation orders records by creation time, breaking ties by id so
// list output is deterministic.
func sortByCreation[T any](items []T, key func(T) (time.Time, string)) {
	slices.SortFunc(items, func(a, b T) int {
		at, aid := key(a)
		bt, bid := key(b)
		if c := at.Compare(bt); c != 0 {
			return c
		}
		return strings.Compare(aid, bid)
	})
}

// cloneTask deep-copies a task so callers cannot mutate stored state
// through the returned slice or pointers.
func cloneTask(t Task) Task {
	t.AssigneeID = clonePtr(t.AssigneeID)
	t.DueDate = clonePtr(t.DueDate)
	t.Tags = slices.Clone(t.Tags)
	return t
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
