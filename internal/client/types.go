package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString accepts a JSON string, number or null. Identifiers arrive as
// either depending on the storage backend.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*s = FlexString(n.String())
	}
	return nil
}

func (s FlexString) String() string { return string(s) }

type Employee struct {
	ID         FlexString `json:"id"`
	EmployeeID FlexString `json:"employee_id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	CreatedAt  string     `json:"created_at,omitempty"`
}

type AttendanceRecord struct {
	ID           FlexString `json:"id"`
	EmployeeID   FlexString `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Department   string     `json:"department"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	CreatedAt    string     `json:"created_at,omitempty"`
}

type NewEmployee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type NewAttendance struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// MutationResponse is the body of a successful create or mark call.
type MutationResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
	Error   string `json:"error"`
}

type (
	CreateEmployeeResponse = MutationResponse[Employee]
	MarkAttendanceResponse = MutationResponse[AttendanceRecord]
)

// decodeList reads either a bare JSON array or an object carrying the array
// under "data". An empty body is an empty list.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []T{}, nil
	}

	if raw[0] == '[' {
		var list []T
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return list, nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}

func decodeMutation[T any](raw json.RawMessage) (MutationResponse[T], error) {
	var resp MutationResponse[T]
	if len(bytes.TrimSpace(raw)) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resp, fmt.Errorf("decode response: %w", err)
	}
	return resp, nil
}
