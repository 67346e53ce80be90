package client

import (
	"context"
	"net/url"
)

const attendancePath = "/attendance/"

// AttendanceService maps attendance operations onto single API calls.
type AttendanceService struct {
	client *Client
}

func NewAttendanceService(client *Client) *AttendanceService {
	return &AttendanceService{client: client}
}

// List fetches attendance, scoped to one employee when employeeID is not empty.
func (s *AttendanceService) List(ctx context.Context, employeeID string) ([]AttendanceRecord, error) {
	path := attendancePath
	if employeeID != "" {
		path += "?" + url.Values{"employee_id": {employeeID}}.Encode()
	}

	raw, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[AttendanceRecord](raw)
}

func (s *AttendanceService) Get(ctx context.Context, id string) (AttendanceRecord, error) {
	raw, err := s.client.Get(ctx, attendancePath+url.PathEscape(id)+"/")
	if err != nil {
		return AttendanceRecord{}, err
	}
	resp, err := decodeMutation[AttendanceRecord](raw)
	if err != nil || resp.Data == nil {
		return AttendanceRecord{}, err
	}
	return *resp.Data, nil
}

func (s *AttendanceService) Mark(ctx context.Context, in NewAttendance) (MarkAttendanceResponse, error) {
	raw, err := s.client.Post(ctx, attendancePath, in)
	if err != nil {
		return MarkAttendanceResponse{}, err
	}
	return decodeMutation[AttendanceRecord](raw)
}

func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, attendancePath+url.PathEscape(id)+"/")
	return err
}
