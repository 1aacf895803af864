package sdk

import "fmt"

// APIError is the single error shape the dashboard sees for every failed
// request, whatever the transport did.
type APIError struct {
	// human readable message, safe to show inline
	Message string
	// zero when no response was received at all
	Status int
	// field level messages, when the server sent any
	Errors []string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

const noResponseMessage = "no response from server"

var statusMessages = map[int]string{
	400: "the request could not be understood by the server",
	404: "the requested resource was not found",
	422: "the submitted data failed validation",
	500: "the server encountered an internal error",
}

func normalizeError(status int, serverMessage string, serverErrors []string) *APIError {
	message, known := statusMessages[status]
	if !known {
		if serverMessage != "" {
			message = serverMessage
		} else {
			message = "an unexpected error occurred"
		}
	}
	return &APIError{
		Message: message,
		Status:  status,
		Errors:  serverErrors,
	}
}
