package attendance

import "context"

type AttendanceService interface {
	// ListAttendance lists records, optionally scoped to one employee (server ID or code)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// MarkAttendance creates one record per employee per day
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	DeleteAttendance(ctx context.Context, id string) error
}
