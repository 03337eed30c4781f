package resources

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
)

func readReq(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func contentText(t *testing.T, contents []mcp.ResourceContents) string {
	t.Helper()
	if len(contents) != 1 {
		t.Fatalf("len(contents) = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}
	if tc.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q, want application/json", tc.MIMEType)
	}
	return tc.Text
}

func TestHandleUsers_CollectionShape(t *testing.T) {
	s := store.New()
	u := s.CreateUser(store.NewUser{Name: "Ada", Email: "ada@example.com", Role: store.RoleAdmin})
	h := NewHandler(s)

	contents, err := h.HandleUsers(context.Background(), readReq("user-manager://users"))
	if err != nil {
		t.Fatalf("HandleUsers failed: %v", err)
	}

	var doc struct {
		Count int          `json:"count"`
		Items []store.User `json:"items"`
		IDs   []string     `json:"ids"`
	}
	if err := json.Unmarshal([]byte(contentText(t, contents)), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Count != 1 || len(doc.Items) != 1 || len(doc.IDs) != 1 {
		t.Errorf("doc = %+v, want one user everywhere", doc)
	}
	if doc.IDs[0] != u.ID {
		t.Errorf("ids[0] = %q, want %q", doc.IDs[0], u.ID)
	}
}

func TestHandleUser_NotFoundIsJSONDocument(t *testing.T) {
	h := NewHandler(store.New())

	contents, err := h.HandleUser(context.Background(), readReq("user-manager://users/ghost"))
	if err != nil {
		t.Fatalf("HandleUser failed: %v", err)
	}

	var doc map[string]string
	if err := json.Unmarshal([]byte(contentText(t, contents)), &doc); err != nil {
		t.Fatalf("error document is not JSON: %v", err)
	}
	if doc["error"] != "User not found" {
		t.Errorf("error = %q, want User not found", doc["error"])
	}
}

func TestHandleUser_MissingID(t *testing.T) {
	h := NewHandler(store.New())

	contents, err := h.HandleUser(context.Background(), readReq("user-manager://users/"))
	if err != nil {
		t.Fatalf("HandleUser failed: %v", err)
	}
	if !strings.Contains(contentText(t, contents), "User ID is required") {
		t.Errorf("text = %q, want missing-id error", contentText(t, contents))
	}
}

func TestHandleTask_RoundTrip(t *testing.T) {
	s := store.New()
	task := s.CreateTask(store.NewTask{Title: "Readable", ProjectID: "p", Status: store.TaskTodo, Priority: store.PriorityHigh})
	h := NewHandler(s)

	contents, err := h.HandleTask(context.Background(), readReq("task-manager://tasks/"+task.ID))
	if err != nil {
		t.Fatalf("HandleTask failed: %v", err)
	}

	var got store.Task
	if err := json.Unmarshal([]byte(contentText(t, contents)), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.ID != task.ID || got.Title != "Readable" {
		t.Errorf("got = %+v", got)
	}
}

func TestCollectionsEmptyWorkspace(t *testing.T) {
	h := NewHandler(store.New())
	ctx := context.Background()

	handlers := map[string]func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error){
		"project-manager://projects": h.HandleProjects,
		"task-manager://tasks":       h.HandleTasks,
		"tag-manager://tags":         h.HandleTags,
		"comment-manager://comments": h.HandleComments,
	}
	for uri, handle := range handlers {
		contents, err := handle(ctx, readReq(uri))
		if err != nil {
			t.Fatalf("%s failed: %v", uri, err)
		}
		if !strings.Contains(contentText(t, contents), `"count": 0`) {
			t.Errorf("%s: %q, want count 0", uri, contentText(t, contents))
		}
	}
}

func TestResourceDefinitions(t *testing.T) {
	h := NewHandler(store.New())

	if uri := h.UsersResource().URI; uri != "user-manager://users" {
		t.Errorf("users URI = %q", uri)
	}
	if uri := h.TagsResource().URI; uri != "tag-manager://tags" {
		t.Errorf("tags URI = %q", uri)
	}
}
