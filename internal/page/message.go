package page

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
)

// ErrRejected is returned when the API answered a create or mark call
// without reporting success.
var ErrRejected = errors.New("request rejected")

// failureMessage derives the text of an error notification from err,
// falling back when the server gave no explanation.
func failureMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.Display(); msg != "" {
			return msg
		}
	}
	return fallback
}

// serverMessage is like failureMessage but reads only the "error" text and
// ignores any field errors.
func serverMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func rejected(message, fallback string) (string, error) {
	if message == "" {
		message = fallback
	}
	return message, fmt.Errorf("%w: %s", ErrRejected, message)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
