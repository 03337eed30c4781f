package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/taskwell/taskwell/internal/store"
)

func seedTagAndTask(t *testing.T) (*store.Store, store.Tag, store.Task) {
	t.Helper()
	s := store.New()
	tag := s.CreateTag(store.NewTag{Name: "urgent", Color: "#ef4444"})
	task := s.CreateTask(store.NewTask{
		Title:     "Tagged work",
		ProjectID: "p-1",
		Status:    store.TaskTodo,
		Priority:  store.PriorityHigh,
		Tags:      []string{tag.ID},
	})
	return s, tag, task
}

func TestDeleteTagTool_ConfirmedDeletesAndDetaches(t *testing.T) {
	s, tag, task := seedTagAndTask(t)
	confirmer := &fakeConfirmer{outcome: Confirmed}
	tool := NewDeleteTagTool(s, confirmer)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"tag_id": tag.ID,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Handle returned error result: %s", resultText(res))
	}

	if !confirmer.asked {
		t.Fatal("deletion proceeded without confirmation")
	}
	if !strings.Contains(confirmer.message, `"urgent"`) || !strings.Contains(confirmer.message, "1 task(s)") {
		t.Errorf("confirmation message = %q", confirmer.message)
	}
	if !strings.Contains(resultText(res), `"success": true`) {
		t.Errorf("result = %q, want success true", resultText(res))
	}
	if _, ok := s.GetTag(tag.ID); ok {
		t.Error("tag still present after confirmed delete")
	}
	got, _ := s.GetTask(task.ID)
	if len(got.Tags) != 0 {
		t.Errorf("task tags = %v, want empty", got.Tags)
	}
}

func TestDeleteTagTool_DeclinedKeepsTag(t *testing.T) {
	s, tag, task := seedTagAndTask(t)
	tool := NewDeleteTagTool(s, &fakeConfirmer{outcome: Declined})

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"tag_id": tag.ID,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("declined confirmation surfaced as error: %s", resultText(res))
	}
	if !strings.Contains(resultText(res), `"reason": "declined"`) {
		t.Errorf("result = %q, want declined reason", resultText(res))
	}

	if _, ok := s.GetTag(tag.ID); !ok {
		t.Error("tag removed despite declined confirmation")
	}
	got, _ := s.GetTask(task.ID)
	if len(got.Tags) != 1 {
		t.Errorf("task tags = %v, want the tag kept", got.Tags)
	}
}

// Decline then accept: the first refusal must leave the tag fully
// intact so a later confirmed attempt still works.
func TestDeleteTagTool_DeclineThenConfirm(t *testing.T) {
	s, tag, _ := seedTagAndTask(t)
	confirmer := &fakeConfirmer{outcome: Declined}
	tool := NewDeleteTagTool(s, confirmer)
	req := makeReq(map[string]interface{}{"tag_id": tag.ID})

	if _, err := tool.Handle(context.Background(), req); err != nil {
		t.Fatalf("first Handle failed: %v", err)
	}
	if _, ok := s.GetTag(tag.ID); !ok {
		t.Fatal("tag gone after decline")
	}

	confirmer.outcome = Confirmed
	res, err := tool.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("second Handle failed: %v", err)
	}
	if !strings.Contains(resultText(res), `"deleted": true`) {
		t.Errorf("result = %q, want deleted true", resultText(res))
	}
	if _, ok := s.GetTag(tag.ID); ok {
		t.Error("tag survived confirmed delete")
	}
}

func TestDeleteTagTool_CancelledReportsCancelled(t *testing.T) {
	s, tag, _ := seedTagAndTask(t)
	tool := NewDeleteTagTool(s, &fakeConfirmer{outcome: Cancelled})

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"tag_id": tag.ID,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !strings.Contains(resultText(res), `"reason": "cancelled"`) {
		t.Errorf("result = %q, want cancelled reason", resultText(res))
	}
	if _, ok := s.GetTag(tag.ID); !ok {
		t.Error("tag removed despite cancelled confirmation")
	}
}

func TestDeleteTagTool_UnknownTagSkipsConfirmation(t *testing.T) {
	confirmer := &fakeConfirmer{outcome: Confirmed}
	tool := NewDeleteTagTool(store.New(), confirmer)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"tag_id": "ghost",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !res.IsError {
		t.Error("unknown tag did not produce an error result")
	}
	if confirmer.asked {
		t.Error("confirmation requested for a tag that does not exist")
	}
}

func TestDeleteTagTool_ConfirmerError(t *testing.T) {
	s, tag, _ := seedTagAndTask(t)
	tool := NewDeleteTagTool(s, &fakeConfirmer{err: errors.New("client hung up")})

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"tag_id": tag.ID,
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !res.IsError {
		t.Error("confirmer failure did not produce an error result")
	}
	if _, ok := s.GetTag(tag.ID); !ok {
		t.Error("tag removed despite failed confirmation")
	}
}

func TestUpdateTagTool_DoesNotTouchTasks(t *testing.T) {
	s, tag, task := seedTagAndTask(t)
	before, _ := s.GetTask(task.ID)

	tool := NewUpdateTagTool(s)
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"tag_id": tag.ID,
		"color":  "#000000",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Handle returned error result: %s", resultText(res))
	}

	got, _ := s.GetTag(tag.ID)
	if got.Color != "#000000" || got.Name != "urgent" {
		t.Errorf("tag after update = %+v", got)
	}
	after, _ := s.GetTask(task.ID)
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Error("tag rename bumped task updatedAt")
	}
}
