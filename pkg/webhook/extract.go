package webhook

import (
	"github.com/adcontextprotocol/adcp-go/pkg/a2a"
	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
	"github.com/adcontextprotocol/adcp-go/pkg/mcp"
)

// extraction holds the transport-independent pieces pulled from a raw
// delivery before decoding.
type extraction struct {
	Result    map[string]any
	Message   string
	ContextID string
	Timestamp string
}

func extractMCP(payload *mcp.WebhookPayload) extraction {
	return extraction{
		Result:    payload.Result,
		Message:   payload.Message,
		ContextID: payload.ContextID,
		Timestamp: payload.Timestamp,
	}
}

/*
extractA2A pulls the result object and message text out of a task-protocol
delivery. Terminal states report results as artifacts; in-progress states
report them inside status.message. The two locations must not be treated
uniformly or in-progress payloads are read from the wrong place. Within the
parts, the first data part and the first text part win; absence of either is
not an error.
*/
func extractA2A(task *a2a.Task, status adcp.TaskStatus) extraction {
	var parts []a2a.Part

	if status.Terminal() {
		for _, artifact := range task.Artifacts {
			parts = append(parts, artifact.Parts...)
		}
	} else if task.Status.Message != nil {
		parts = task.Status.Message.Parts
	}

	out := extraction{
		ContextID: task.ContextID,
		Timestamp: task.Status.Timestamp,
	}

	for _, part := range parts {
		switch part.Kind {
		case a2a.PartKindData:
			if out.Result == nil {
				out.Result = part.Data
			}
		case a2a.PartKindText:
			if out.Message == "" {
				out.Message = part.Text
			}
		}
	}

	return out
}
