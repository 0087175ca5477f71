package adcp

import "fmt"

// Error types for webhook normalization
type (
	// WebhookValidationError indicates the raw payload failed the
	// required-field or shape checks for both known transports.
	WebhookValidationError struct {
		Message string
	}

	// WebhookSignatureError indicates an HMAC mismatch on a signed delivery.
	WebhookSignatureError struct {
		Message string
	}

	// UnknownStatusError indicates a raw status string outside the documented
	// vocabulary of the transport that delivered it.
	UnknownStatusError struct {
		Transport Transport
		Status    string
	}

	// SchemaValidationError indicates a result object that does not match the
	// typed response model registered for its task type. The webhook pipeline
	// recovers from it by keeping the raw payload.
	SchemaValidationError struct {
		TaskType string
		Err      error
	}
)

func (e *WebhookValidationError) Error() string {
	return fmt.Sprintf("invalid webhook payload: %s", e.Message)
}

func (e *WebhookSignatureError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("webhook signature verification failed: %s", e.Message)
	}
	return "webhook signature verification failed"
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown %s task status: %q", e.Transport, e.Status)
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("result does not match response model for %s: %v", e.TaskType, e.Err)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}
