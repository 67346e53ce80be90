package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is every message the server reported for one field.
type FieldError struct {
	Field    string
	Messages []string
}

// FieldErrors decodes an {"field": ["message", ...]} object keeping the
// server's key order. A bare string is accepted in place of an array.
type FieldErrors []FieldError

func (f *FieldErrors) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("errors: expected object, got %v", tok)
	}

	var result FieldErrors
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		result = append(result, FieldError{Field: field, Messages: messages(raw)})
	}

	*f = result
	return nil
}

func messages(raw json.RawMessage) []string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return []string{string(raw)}
	}

	result := make([]string, 0, len(list))
	for _, item := range list {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			result = append(result, s)
			continue
		}
		result = append(result, string(item))
	}
	return result
}

// Flatten joins every message of every field with ", ".
func (f FieldErrors) Flatten() string {
	var all []string
	for _, fe := range f {
		all = append(all, fe.Messages...)
	}
	return strings.Join(all, ", ")
}

// APIError is a 4xx/5xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string      `json:"error"`
	Errors     FieldErrors `json:"errors"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}
	// Bodies that are not the JSON envelope keep only the status code
	if err := json.Unmarshal(body, apiErr); err != nil {
		apiErr = &APIError{}
	}
	apiErr.StatusCode = statusCode
	return apiErr
}

func (e *APIError) Error() string {
	if msg := e.Display(); msg != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Display is the text shown to a user: the flattened field errors when
// there are any, otherwise the error message. It is empty when the server
// sent neither.
func (e *APIError) Display() string {
	if len(e.Errors) > 0 {
		return e.Errors.Flatten()
	}
	return e.Message
}
