package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ConfirmOutcome is the result of asking the caller to approve a
// destructive action.
type ConfirmOutcome string

const (
	// Confirmed: the caller accepted and ticked the confirm box.
	Confirmed ConfirmOutcome = "confirmed"
	// Declined: the caller answered, refusing the action (either an
	// explicit decline or accept with confirm unchecked).
	Declined ConfirmOutcome = "declined"
	// Cancelled: the caller dismissed the question without answering,
	// or the bounded wait expired.
	Cancelled ConfirmOutcome = "cancelled"
)

// Confirmer asks the connected client a yes/no question before a
// destructive action is applied. Abstracted as an interface so tests can
// script accept/decline/cancel without a live client.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (ConfirmOutcome, error)
}

// confirmTimeout bounds the wait for the client's answer. The upstream
// protocol defines no timeout; an unanswered question is treated as
// cancelled.
const confirmTimeout = 30 * time.Second

// ElicitConfirmer implements Confirmer via the MCP elicitation
// round-trip: the server suspends the tool call, sends the question to
// the client, and resumes when the correlated answer arrives. No
// mutation happens while the call is suspended.
type ElicitConfirmer struct{}

// NewElicitConfirmer creates an ElicitConfirmer.
func NewElicitConfirmer() *ElicitConfirmer {
	return &ElicitConfirmer{}
}

// Confirm sends the elicitation request and maps the client's response
// onto a ConfirmOutcome. A timeout counts as cancelled; a client that
// does not support elicitation surfaces as an error.
func (c *ElicitConfirmer) Confirm(ctx context.Context, message string) (ConfirmOutcome, error) {
	srv := server.ServerFromContext(ctx)
	if srv == nil {
		return Cancelled, errNoServer
	}

	ctx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	result, err := srv.RequestElicitation(ctx, mcp.ElicitationRequest{
		Params: mcp.ElicitationParams{
			Message: message,
			RequestedSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"confirm": map[string]any{
						"type":        "boolean",
						"description": "Set to true to confirm the deletion",
					},
				},
				"required": []string{"confirm"},
			},
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return Cancelled, nil
		}
		return Cancelled, err
	}

	switch result.Action {
	case mcp.ElicitationResponseActionAccept:
		if confirmFlag(result.Content) {
			return Confirmed, nil
		}
		return Declined, nil
	case mcp.ElicitationResponseActionDecline:
		return Declined, nil
	default:
		return Cancelled, nil
	}
}

// confirmFlag digs the boolean confirm field out of the accepted
// elicitation content.
func confirmFlag(content any) bool {
	m, ok := content.(map[string]any)
	if !ok {
		return false
	}
	confirm, ok := m["confirm"].(bool)
	return ok && confirm
}

// errNoServer is returned when Confirm runs outside a live MCP session.
var errNoServer = errNoServerType{}

type errNoServerType struct{}

func (errNoServerType) Error() string {
	return "no MCP server in context: elicitation unavailable"
}
