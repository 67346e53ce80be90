package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    any         `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// FieldError is every message reported for one field.
type FieldError struct {
	Field    string
	Messages []string
}

// FieldErrors renders as a JSON object whose keys keep the order in which
// the fields were validated.
type FieldErrors []FieldError

func (f FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fe := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fe.Field)
		if err != nil {
			return nil, err
		}
		msgs, err := json.Marshal(fe.Messages)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(msgs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewFieldErrors groups validation errors per field, first occurrence first.
func NewFieldErrors(errs validator.ValidationErrors) FieldErrors {
	var result FieldErrors
	index := make(map[string]int)
	for _, err := range errs {
		i, ok := index[err.Field]
		if !ok {
			i = len(result)
			index[err.Field] = i
			result = append(result, FieldError{Field: err.Field})
		}
		result[i].Messages = append(result[i].Messages, err.Message)
	}
	return result
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Response{
			Success: false,
			Error:   "Failed to encode response",
		})
	}
}

// Success responses
func Success(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// List writes a collection together with its size.
func List(w http.ResponseWriter, count int, data any) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

func Created(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Error:   message,
	})
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Errors:  NewFieldErrors(errs),
	})
}

func MethodNotAllowed(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusMethodNotAllowed, Response{
		Success: false,
		Error:   message,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{
		Success: false,
		Error:   message,
	})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Error:   message,
	})
}
