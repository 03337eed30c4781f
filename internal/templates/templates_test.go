package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/taskwell/taskwell/internal/store"
)

// --- NewRenderer ---

func TestNewRenderer_Succeeds(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	if r == nil {
		t.Fatal("NewRenderer() returned nil")
	}
}

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

var testTime = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

// --- Render: UserDetails ---

func TestRender_UserDetails(t *testing.T) {
	r := mustRenderer(t)

	result, err := r.Render(UserDetails, UserDetailsData{
		User: store.User{
			ID:        "u-1",
			Name:      "Alice Johnson",
			Email:     "alice@example.com",
			Role:      store.RoleAdmin,
			CreatedAt: testTime,
			UpdatedAt: testTime,
		},
	})
	if err != nil {
		t.Fatalf("Render(UserDetails) failed: %v", err)
	}

	checks := []string{
		"# User: Alice Johnson",
		"alice@example.com",
		"admin",
		"`u-1`",
		"Mar 15, 2026",
	}
	for _, c := range checks {
		if !strings.Contains(result, c) {
			t.Errorf("output missing %q:\n%s", c, result)
		}
	}
}

// --- Render: UserList ---

func TestRender_UserList(t *testing.T) {
	r := mustRenderer(t)

	result, err := r.Render(UserList, UserListData{
		Users: []store.User{
			{ID: "u-1", Name: "Alice", Email: "a@example.com", Role: store.RoleAdmin},
			{ID: "u-2", Name: "Bob", Email: "b@example.com", Role: store.RoleViewer},
		},
	})
	if err != nil {
		t.Fatalf("Render(UserList) failed: %v", err)
	}
	for _, c := range []string{"All Users (2)", "Alice", "Bob", "viewer"} {
		if !strings.Contains(result, c) {
			t.Errorf("output missing %q:\n%s", c, result)
		}
	}
}

func TestRender_UserList_Empty(t *testing.T) {
	r := mustRenderer(t)

	result, err := r.Render(UserList, UserListData{})
	if err != nil {
		t.Fatalf("Render(UserList) failed: %v", err)
	}
	if !strings.Contains(result, "No users found.") {
		t.Errorf("empty list output missing placeholder:\n%s", result)
	}
}

// --- Render: ProjectDetails ---

func TestRender_ProjectDetails(t *testing.T) {
	r := mustRenderer(t)

	result, err := r.Render(ProjectDetails, ProjectDetailsData{
		Project: store.Project{
			ID:          "p-1",
			Name:        "Website Redesign",
			Description: "Overhaul the site",
			Status:      store.ProjectActive,
			CreatedAt:   testTime,
		},
		OwnerName: "Alice",
		Stats: store.ProjectStats{
			TotalTasks:      2,
			CompletedTasks:  1,
			InProgressTasks: 1,
			TeamMembers:     []string{"u-2"},
		},
		Tasks: []TaskLine{
			{
				Task:         store.Task{Title: "Mockup", Status: store.TaskInProgress, Priority: store.PriorityHigh},
				AssigneeName: "Bob",
				TagNames:     []string{"design", "frontend"},
			},
			{
				Task:         store.Task{Title: "Orphan", Status: store.TaskTodo, Priority: store.PriorityLow},
				AssigneeName: Unassigned,
			},
		},
	})
	if err != nil {
		t.Fatalf("Render(ProjectDetails) failed: %v", err)
	}

	checks := []string{
		"# Project: Website Redesign",
		"Overhaul the site",
		"**Owner**: Alice",
		"Total tasks: 2",
		"In progress: 1",
		"**Mockup**",
		"assigned to Bob",
		"design, frontend",
		"assigned to Unassigned",
	}
	for _, c := range checks {
		if !strings.Contains(result, c) {
			t.Errorf("output missing %q:\n%s", c, result)
		}
	}
}

// --- Render: TaskList ---

func TestRender_TaskList_DueDateAndEmpty(t *testing.T) {
	r := mustRenderer(t)

	due := testTime
	result, err := r.Render(TaskList, TaskListData{
		ProjectName: "Website Redesign",
		Tasks: []TaskLine{
			{
				Task:         store.Task{Title: "Mockup", Status: store.TaskInProgress, Priority: store.PriorityHigh, DueDate: &due},
				AssigneeName: "Bob",
			},
		},
	})
	if err != nil {
		t.Fatalf("Render(TaskList) failed: %v", err)
	}
	for _, c := range []string{"Tasks in Website Redesign (1)", "due Mar 15, 2026"} {
		if !strings.Contains(result, c) {
			t.Errorf("output missing %q:\n%s", c, result)
		}
	}

	empty, err := r.Render(TaskList, TaskListData{ProjectName: "Quiet"})
	if err != nil {
		t.Fatalf("Render(TaskList, empty) failed: %v", err)
	}
	if !strings.Contains(empty, "No tasks found for this project.") {
		t.Errorf("empty output missing placeholder:\n%s", empty)
	}
}

// --- Render: CommentDetails ---

func TestRender_CommentDetails_DanglingReferences(t *testing.T) {
	r := mustRenderer(t)

	result, err := r.Render(CommentDetails, CommentDetailsData{
		Comment: store.Comment{
			ID:        "c-1",
			Content:   "Looks good to me.",
			CreatedAt: testTime,
			UpdatedAt: testTime,
		},
		AuthorName: UnknownName,
		TaskTitle:  UnknownName,
	})
	if err != nil {
		t.Fatalf("Render(CommentDetails) failed: %v", err)
	}
	for _, c := range []string{`# Comment on "Unknown"`, "Looks good to me.", "**Author**: Unknown"} {
		if !strings.Contains(result, c) {
			t.Errorf("output missing %q:\n%s", c, result)
		}
	}
}
