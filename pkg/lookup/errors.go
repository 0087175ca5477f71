package lookup

import "fmt"

// Error types for the lookup package
type (
	// ConnectionError represents an error that occurred while reaching the
	// registry.
	ConnectionError struct {
		Message string
		Err     error
	}

	// DecodingError represents an error that occurred while decoding a
	// registry response.
	DecodingError struct {
		Message string
		Err     error
	}

	// NotFoundError represents a domain or member missing from the registry.
	NotFoundError struct {
		Key string
	}

	// StatusError represents an unexpected HTTP status from the registry.
	StatusError struct {
		StatusCode int
		Body       string
	}
)

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to connect to registry: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("failed to connect to registry: %s", e.Message)
}

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode registry response: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("failed to decode registry response: %s", e.Message)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found in registry: %s", e.Key)
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry returned non-OK status: %d, body: %s", e.StatusCode, e.Body)
}
