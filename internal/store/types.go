// Package store implements the in-memory relational store that owns all
// task-tracking state: users, projects, tasks, tags, and comments.
//
// The store is the sole authority for identifier assignment, timestamping,
// cascade semantics, and aggregate computation. Referential fields are not
// validated at write time — dangling ids are permitted, and readers resolve
// them defensively.
//
// Design principles:
//   - SRP: types, patches, CRUD, statistics, and completion in separate files
//   - One Store instance is constructed at startup and injected everywhere;
//     there is no ambient global state
package store

import (
	"fmt"
	"time"
)

// --- User role enum ---

// Role is a user's access level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleViewer Role = "viewer"
)

// validRoles is the set of allowed user roles.
var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleUser:   true,
	RoleViewer: true,
}

// ValidateRole returns an error if the role is not recognized.
func ValidateRole(r Role) error {
	if !validRoles[r] {
		return fmt.Errorf("invalid role %q: must be one of: admin, user, viewer", r)
	}
	return nil
}

// --- Project status enum ---

// ProjectStatus tracks a project's lifecycle.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectArchived  ProjectStatus = "archived"
	ProjectCompleted ProjectStatus = "completed"
)

var validProjectStatuses = map[ProjectStatus]bool{
	ProjectActive:    true,
	ProjectArchived:  true,
	ProjectCompleted: true,
}

// ValidateProjectStatus returns an error if the status is not recognized.
func ValidateProjectStatus(s ProjectStatus) error {
	if !validProjectStatuses[s] {
		return fmt.Errorf("invalid project status %q: must be one of: active, archived, completed", s)
	}
	return nil
}

// --- Task status enum ---

// TaskStatus represents where a task sits on the board.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

var validTaskStatuses = map[TaskStatus]bool{
	TaskTodo:       true,
	TaskInProgress: true,
	TaskReview:     true,
	TaskDone:       true,
}

// ValidateTaskStatus returns an error if the status is not recognized.
func ValidateTaskStatus(s TaskStatus) error {
	if !validTaskStatuses[s] {
		return fmt.Errorf("invalid task status %q: must be one of: todo, in-progress, review, done", s)
	}
	return nil
}

// --- Task priority enum ---

// TaskPriority ranks a task's urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

var validTaskPriorities = map[TaskPriority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// ValidateTaskPriority returns an error if the priority is not recognized.
func ValidateTaskPriority(p TaskPriority) error {
	if !validTaskPriorities[p] {
		return fmt.Errorf("invalid task priority %q: must be one of: low, medium, high, urgent", p)
	}
	return nil
}

// --- Entities ---

// User is a member of the workspace. Email uniqueness is not enforced.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Project groups tasks under an owner. OwnerID is an unvalidated reference.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	OwnerID     string        `json:"ownerId"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Task is a unit of work inside a project. AssigneeID and DueDate are
// nullable; Tags holds tag ids with no significant order.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ProjectID   string       `json:"projectId"`
	AssigneeID  *string      `json:"assigneeId"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Tag is a label that tasks can reference. Tags carry no updatedAt.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a note on a task by a user. Both references are unvalidated.
type Comment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// --- Creation parameters ---
//
// Callers never supply ids or timestamps; the store assigns them.

// NewUser holds the caller-supplied fields for CreateUser.
type NewUser struct {
	Name  string
	Email string
	Role  Role
}

// NewProject holds the caller-supplied fields for CreateProject.
type NewProject struct {
	Name        string
	Description string
	OwnerID     string
	Status      ProjectStatus
}

// NewTask holds the caller-supplied fields for CreateTask.
type NewTask struct {
	Title       string
	Description string
	ProjectID   string
	AssigneeID  *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	Tags        []string
}

// NewTag holds the caller-supplied fields for CreateTag.
type NewTag struct {
	Name  string
	Color string
}

// NewComment holds the caller-supplied fields for CreateComment.
type NewComment struct {
	TaskID  string
	UserID  string
	Content string
}
