package crawlsvc

import (
	"encoding/json"
	"fmt"
)

// ServiceError is returned when the crawl service responds with a non-2xx
// status. Message is what the user sees.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// newServiceError extracts the "error" field from a failure body, falling
// back to a message derived from the status code when the body is not a
// JSON object or carries no usable error string.
func newServiceError(statusCode int, body []byte) *ServiceError {
	var payload struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Error.(string); ok && msg != "" {
			return &ServiceError{StatusCode: statusCode, Message: msg}
		}
	}
	return &ServiceError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP error! Status: %d", statusCode),
	}
}

// TransportError covers every failure where no usable service answer was
// obtained: connection errors, cancellation, malformed success payloads.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
