package webhook

import "github.com/adcontextprotocol/adcp-go/pkg/adcp"

// statusByWire covers the documented status vocabulary of both transports.
// Needs-input appears in both its hyphen and underscore spellings.
var statusByWire = map[string]adcp.TaskStatus{
	"submitted":      adcp.TaskStatusSubmitted,
	"working":        adcp.TaskStatusWorking,
	"input-required": adcp.TaskStatusNeedsInput,
	"input_required": adcp.TaskStatusNeedsInput,
	"completed":      adcp.TaskStatusCompleted,
	"failed":         adcp.TaskStatusFailed,
}

/*
MapStatus translates a transport's native task state string into the
canonical status. Unrecognized strings fail with *adcp.UnknownStatusError
rather than defaulting, since misclassifying a terminal state would corrupt
the success computation downstream.
*/
func MapStatus(transport adcp.Transport, raw string) (adcp.TaskStatus, error) {
	status, ok := statusByWire[raw]
	if !ok {
		return "", &adcp.UnknownStatusError{Transport: transport, Status: raw}
	}
	return status, nil
}
