package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/taskwell/taskwell/internal/store"
)

func TestCreateTaskTool_DefaultsAndDueDate(t *testing.T) {
	s := store.New()
	tool := NewCreateTaskTool(s)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"title":      "Ship release",
		"project_id": "p-1",
		"due_date":   "2026-09-15",
		"tags":       []interface{}{"t-1", "t-2"},
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Handle returned error result: %s", resultText(res))
	}

	tasks := s.ListTasks()
	if len(tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(tasks))
	}
	task := tasks[0]
	if task.Status != store.TaskTodo {
		t.Errorf("status = %s, want todo", task.Status)
	}
	if task.Priority != store.PriorityMedium {
		t.Errorf("priority = %s, want medium", task.Priority)
	}
	if task.AssigneeID != nil {
		t.Errorf("assigneeID = %v, want nil", task.AssigneeID)
	}
	want := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	if task.DueDate == nil || !task.DueDate.Equal(want) {
		t.Errorf("dueDate = %v, want %v", task.DueDate, want)
	}
	if len(task.Tags) != 2 {
		t.Errorf("tags = %v, want two entries", task.Tags)
	}
}

func TestCreateTaskTool_RejectsBadDueDate(t *testing.T) {
	tool := NewCreateTaskTool(store.New())

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"title":      "Bad date",
		"project_id": "p-1",
		"due_date":   "next tuesday",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !res.IsError {
		t.Error("invalid due date accepted")
	}
}

func TestCreateTaskTool_RejectsBadStatus(t *testing.T) {
	tool := NewCreateTaskTool(store.New())

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"title":      "Bad status",
		"project_id": "p-1",
		"status":     "blocked",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !res.IsError {
		t.Error("invalid status accepted")
	}
}

func TestUpdateTaskTool_OmittedVsNull(t *testing.T) {
	s := store.New()
	assignee := "u-1"
	due := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	task := s.CreateTask(store.NewTask{
		Title:      "Keep fields straight",
		ProjectID:  "p-1",
		AssigneeID: &assignee,
		Status:     store.TaskTodo,
		Priority:   store.PriorityLow,
		DueDate:    &due,
	})
	tool := NewUpdateTaskTool(s)

	// Omitting assignee_id and due_date must leave them alone.
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"task_id": task.ID,
		"status":  "done",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Handle returned error result: %s", resultText(res))
	}
	got, _ := s.GetTask(task.ID)
	if got.Status != store.TaskDone {
		t.Errorf("status = %s, want done", got.Status)
	}
	if got.AssigneeID == nil || *got.AssigneeID != "u-1" {
		t.Error("omitted assignee_id was cleared")
	}
	if got.DueDate == nil {
		t.Error("omitted due_date was cleared")
	}

	// Explicit nulls clear both.
	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"task_id":     task.ID,
		"assignee_id": nil,
		"due_date":    nil,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Handle returned error result: %s", resultText(res))
	}
	got, _ = s.GetTask(task.ID)
	if got.AssigneeID != nil {
		t.Errorf("assigneeID = %v, want cleared", got.AssigneeID)
	}
	if got.DueDate != nil {
		t.Errorf("dueDate = %v, want cleared", got.DueDate)
	}
}

func TestUpdateTaskTool_ReplacesTagSet(t *testing.T) {
	s := store.New()
	task := s.CreateTask(store.NewTask{
		Title:     "Retag",
		ProjectID: "p-1",
		Status:    store.TaskTodo,
		Priority:  store.PriorityLow,
		Tags:      []string{"old-1", "old-2"},
	})
	tool := NewUpdateTaskTool(s)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"task_id": task.ID,
		"tags":    []interface{}{"new-1"},
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Handle returned error result: %s", resultText(res))
	}

	got, _ := s.GetTask(task.ID)
	if len(got.Tags) != 1 || got.Tags[0] != "new-1" {
		t.Errorf("tags = %v, want [new-1]", got.Tags)
	}
}

func TestSearchTasksTool_CaseInsensitive(t *testing.T) {
	s := store.New()
	s.CreateTask(store.NewTask{Title: "Fix LOGIN page", ProjectID: "p", Status: store.TaskTodo, Priority: store.PriorityLow})
	s.CreateTask(store.NewTask{Title: "Unrelated", ProjectID: "p", Status: store.TaskTodo, Priority: store.PriorityLow})

	tool := NewSearchTasksTool(s)
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"query": "login",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := resultText(res)
	if !strings.Contains(text, "Fix LOGIN page") {
		t.Errorf("result missing matching task:\n%s", text)
	}
	if strings.Contains(text, "Unrelated") {
		t.Errorf("result contains non-matching task:\n%s", text)
	}
}

func TestTasksByStatusTool_RejectsBadStatus(t *testing.T) {
	tool := NewTasksByStatusTool(store.New())

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"status": "paused",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !res.IsError {
		t.Error("invalid status accepted")
	}
}

func TestDeleteTaskTool_RemovesComments(t *testing.T) {
	s := store.New()
	task := s.CreateTask(store.NewTask{Title: "Doomed", ProjectID: "p", Status: store.TaskTodo, Priority: store.PriorityLow})
	comment := s.CreateComment(store.NewComment{TaskID: task.ID, UserID: "u", Content: "gone soon"})

	tool := NewDeleteTaskTool(s)
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"task_id": task.ID,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Handle returned error result: %s", resultText(res))
	}

	if _, ok := s.GetComment(comment.ID); ok {
		t.Error("comment survived task deletion")
	}
}

func TestProjectStatisticsTool_UnknownProject(t *testing.T) {
	tool := NewProjectStatisticsTool(store.New())

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project_id": "ghost",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !res.IsError {
		t.Error("unknown project did not produce an error result")
	}
}

func TestTaskStatisticsTool_CountsOverdue(t *testing.T) {
	s := store.New()
	past := time.Now().UTC().Add(-48 * time.Hour)
	s.CreateTask(store.NewTask{Title: "Late", ProjectID: "p", Status: store.TaskTodo, Priority: store.PriorityHigh, DueDate: &past})
	s.CreateTask(store.NewTask{Title: "Done late", ProjectID: "p", Status: store.TaskDone, Priority: store.PriorityHigh, DueDate: &past})

	tool := NewTaskStatisticsTool(s)
	res, err := tool.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := resultText(res)
	if !strings.Contains(text, `"overdue": 1`) {
		t.Errorf("result = %s, want overdue 1", text)
	}
	if !strings.Contains(text, `"total": 2`) {
		t.Errorf("result = %s, want total 2", text)
	}
}
