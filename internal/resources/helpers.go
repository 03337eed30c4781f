// Package resources implements MCP resource handlers for the
// task-tracking workspace.
//
// Resources provide read-only data the host can consume for context.
// Each entity collection has a fixed URI (user-manager://users, ...) and
// a templated per-id URI (user-manager://users/{id}). Unresolved ids
// yield a well-formed JSON error document rather than a protocol error,
// so hosts can always render something.
package resources

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// collection is the JSON shape of every collection resource: the items
// plus a bare id list for quick reference resolution.
type collection struct {
	Count int      `json:"count"`
	Items any      `json:"items"`
	IDs   []string `json:"ids"`
}

// jsonResource wraps a payload as a single JSON resource document.
func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a JSON error document in place of the resource.
func errorResource(uri, message string) []mcp.ResourceContents {
	doc, _ := json.Marshal(map[string]string{"error": message})
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(doc),
		},
	}
}

// extractID pulls the trailing id out of a templated resource URI.
func extractID(uri, prefix string) string {
	return strings.TrimPrefix(uri, prefix)
}
