// Package templates renders narrative text blocks for prompt-style output.
//
// Narrative output is fixed-template human-readable text with resolved
// cross-references (owner names, assignee names, tag names). It is not
// meant to be machine-parsed; consumers should treat it as prose.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/taskwell/taskwell/internal/store"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Kind identifies one of the embedded narrative templates.
type Kind string

const (
	UserDetails    Kind = "user_details"
	UserList       Kind = "user_list"
	ProjectDetails Kind = "project_details"
	TaskList       Kind = "task_list"
	CommentDetails Kind = "comment_details"
)

// Placeholders for dangling or null references in narrative output.
const (
	UnknownName = "Unknown"
	Unassigned  = "Unassigned"
)

// --- Template data ---

// TaskLine is a task enriched with resolved display names.
type TaskLine struct {
	Task         store.Task
	AssigneeName string
	TagNames     []string
}

// UserDetailsData feeds the user_details template.
type UserDetailsData struct {
	User store.User
}

// UserListData feeds the user_list template.
type UserListData struct {
	Users []store.User
}

// ProjectDetailsData feeds the project_details template.
type ProjectDetailsData struct {
	Project   store.Project
	OwnerName string
	Stats     store.ProjectStats
	Tasks     []TaskLine
}

// TaskListData feeds the task_list template.
type TaskListData struct {
	ProjectName string
	ProjectID   string
	Tasks       []TaskLine
}

// CommentDetailsData feeds the comment_details template.
type CommentDetailsData struct {
	Comment    store.Comment
	AuthorName string
	TaskTitle  string
}

// --- Renderer ---

// Renderer executes the embedded narrative templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses all embedded templates. Fails only if a template is
// malformed, which is a build-time defect.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"date": formatDate,
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing narrative templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// formatDate accepts both time.Time and *time.Time so templates can pass
// nullable fields like a task's due date directly.
func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("Jan 2, 2006 15:04 UTC")
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format("Jan 2, 2006 15:04 UTC")
	}
	return ""
}

// Render executes the named template with the given data.
func (r *Renderer) Render(kind Kind, data any) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, string(kind)+".tmpl", data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", kind, err)
	}
	return sb.String(), nil
}
