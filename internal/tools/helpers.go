// Package tools implements the MCP tool handlers for the task-tracking
// domain.
//
// Each tool is a struct that receives the store via its constructor and
// exposes a Definition for registration plus a Handle compatible with
// mcp-go's CallToolRequest signature.
//
// Contracts shared by every handler:
//   - success payloads are pretty-printed JSON
//   - "not found" and malformed input are soft errors
//     (mcp.NewToolResultError), never transport faults
//   - update handlers only forward fields present in the argument map, so
//     an omitted field is never confused with an explicit null
package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals a success payload as indented JSON.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// notFound is the uniform soft-error result for an unresolved id.
func notFound(entity, id string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s %q not found", entity, id))
}

// stringField reads an optional string field from the raw argument map.
// Returns present=false when the key is absent, and an error when the key
// is present but not a string.
func stringField(args map[string]any, key string) (value string, present bool, err error) {
	raw, ok := args[key]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, fmt.Errorf("'%s' must be a string", key)
	}
	return s, true, nil
}

// nullableStringField reads an optional, nullable string field. A JSON
// null yields present=true with a nil value, which update handlers
// translate into an explicit clear.
func nullableStringField(args map[string]any, key string) (value *string, present bool, err error) {
	raw, ok := args[key]
	if !ok {
		return nil, false, nil
	}
	if raw == nil {
		return nil, true, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, true, fmt.Errorf("'%s' must be a string or null", key)
	}
	return &s, true, nil
}

// parseDueDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: use RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}
