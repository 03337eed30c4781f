package store

import "time"

// Opt is an optional patch field. The zero value means "not provided":
// the store leaves the existing value untouched. A set Opt replaces the
// field, which for nullable fields (Opt[*string], Opt[*time.Time]) keeps
// "omitted" distinct from "explicitly cleared with nil".
type Opt[T any] struct {
	Valid bool
	Value T
}

// Set wraps a value as a provided patch field.
func Set[T any](v T) Opt[T] {
	return Opt[T]{Valid: true, Value: v}
}

// apply overwrites dst when the field was provided.
func apply[T any](dst *T, o Opt[T]) {
	if o.Valid {
		*dst = o.Value
	}
}

// UserPatch is a partial update for a User.
type UserPatch struct {
	Name  Opt[string]
	Email Opt[string]
	Role  Opt[Role]
}

// ProjectPatch is a partial update for a Project.
type ProjectPatch struct {
	Name        Opt[string]
	Description Opt[string]
	OwnerID     Opt[string]
	Status      Opt[ProjectStatus]
}

// TaskPatch is a partial update for a Task. AssigneeID and DueDate are
// doubly optional: leave the Opt unset to keep the current value, or set
// it to nil to clear the field.
type TaskPatch struct {
	Title       Opt[string]
	Description Opt[string]
	ProjectID   Opt[string]
	AssigneeID  Opt[*string]
	Status      Opt[TaskStatus]
	Priority    Opt[TaskPriority]
	DueDate     Opt[*time.Time]
	Tags        Opt[[]string]
}

// TagPatch is a partial update for a Tag.
type TagPatch struct {
	Name  Opt[string]
	Color Opt[string]
}

// CommentPatch is a partial update for a Comment.
type CommentPatch struct {
	Content Opt[string]
}
