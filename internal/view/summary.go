package view

import "github.com/cmlabs-hris/hrms-lite/internal/client"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type Summary struct {
	Total   int
	Present int
	Absent  int
}

func Summarize(records []client.AttendanceRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			s.Present++
		case StatusAbsent:
			s.Absent++
		}
	}
	return s
}
