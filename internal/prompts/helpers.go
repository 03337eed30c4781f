// Package prompts implements MCP prompt handlers for the task-tracking
// workspace.
//
// MCP prompts are user-triggered workflows (like slash commands). Unlike
// tools (which the AI calls), prompts are initiated by the user, so their
// ids are typed by hand: every id argument accepts either a full id or a
// unique prefix of one.
package prompts

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskwell/taskwell/internal/store"
	"github.com/taskwell/taskwell/internal/templates"
)

// resolveID maps a typed id onto a stored one: an exact match wins,
// otherwise a unique case-insensitive prefix match. Ambiguous or unknown
// input resolves to nothing.
func resolveID(s *store.Store, kind store.Kind, raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	matches := s.CompleteIDs(kind, raw)
	for _, m := range matches {
		if m == raw {
			return m, true
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}

// notFoundResult is the prompt-side analogue of a tool's soft error: a
// normal prompt result whose message says the entity could not be
// resolved.
func notFoundResult(entity, raw string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("%s not found", entity),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"No %s matches %q. The id may be wrong, or the prefix may match more than one %s.",
					entity, raw, entity,
				)),
			},
		},
	}
}

// textResult wraps rendered narrative text in a single user message.
func textResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}
}

// argument reads a prompt argument, empty when absent.
func argument(req mcp.GetPromptRequest, key string) string {
	if req.Params.Arguments == nil {
		return ""
	}
	return req.Params.Arguments[key]
}

// taskLines resolves assignee and tag names for narrative task listings.
// Dangling references degrade to placeholders instead of failing.
func taskLines(s *store.Store, tasks []store.Task) []templates.TaskLine {
	lines := make([]templates.TaskLine, 0, len(tasks))
	for _, task := range tasks {
		line := templates.TaskLine{Task: task, AssigneeName: templates.Unassigned}
		if task.AssigneeID != nil {
			line.AssigneeName = templates.UnknownName
			if u, ok := s.GetUser(*task.AssigneeID); ok {
				line.AssigneeName = u.Name
			}
		}
		for _, tagID := range task.Tags {
			name := templates.UnknownName
			if tag, ok := s.GetTag(tagID); ok {
				name = tag.Name
			}
			line.TagNames = append(line.TagNames, name)
		}
		lines = append(lines, line)
	}
	return lines
}
