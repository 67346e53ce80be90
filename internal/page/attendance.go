package page

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const (
	msgAttendanceEmployeesFailed = "Failed to fetch employees."
	msgAttendanceFetchFailed     = "Failed to fetch attendance records."
	msgAttendanceMarked          = "Attendance marked successfully!"
	msgAttendanceMarkFailed      = "Failed to mark attendance. Please try again."
	msgAttendanceDeleted         = "Attendance record deleted successfully!"
	msgAttendanceDeleteFailed    = "Failed to delete attendance record. Please try again."

	NoEmployeesMessage = "No employees found. Please add employees first before marking attendance."
)

type AttendanceAPI interface {
	List(ctx context.Context, employeeID string) ([]client.AttendanceRecord, error)
	Mark(ctx context.Context, in client.NewAttendance) (client.MarkAttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeLister interface {
	List(ctx context.Context) ([]client.Employee, error)
}

// AttendancePage owns the attendance records for the selected employee
// filter and the employee list used by the picker.
type AttendancePage struct {
	attendance AttendanceAPI
	employees  EmployeeLister
	notifier   *Notifier
	logger     *slog.Logger

	mu            sync.Mutex
	employeeList  []client.Employee
	records       []client.AttendanceRecord
	filter        string
	loading       bool
	submitLoading bool
	seq           uint64
}

func NewAttendancePage(attendance AttendanceAPI, employees EmployeeLister, notifier *Notifier, logger *slog.Logger) *AttendancePage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendancePage{
		attendance:   attendance,
		employees:    employees,
		notifier:     notifier,
		logger:       logger,
		employeeList: []client.Employee{},
		records:      []client.AttendanceRecord{},
	}
}

// Mount loads the employees and the attendance records concurrently. Each
// failure is reported on its own and neither cancels the other.
func (p *AttendancePage) Mount(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return p.loadEmployees(ctx) })
	g.Go(func() error { return p.Load(ctx) })
	return g.Wait()
}

func (p *AttendancePage) loadEmployees(ctx context.Context) error {
	list, err := p.employees.List(ctx)
	if err != nil {
		p.logger.Warn("Failed to fetch employees", "error", err)
		p.notifier.Show(KindError, msgAttendanceEmployeesFailed)
		return err
	}

	p.mu.Lock()
	p.employeeList = list
	p.mu.Unlock()
	return nil
}

// SetFilter scopes the records to one employee, or to everyone when
// employeeID is empty, and fetches them again.
func (p *AttendancePage) SetFilter(ctx context.Context, employeeID string) error {
	p.mu.Lock()
	p.filter = employeeID
	p.mu.Unlock()
	return p.Load(ctx)
}

// Load fetches the records for the current filter. Only the most recently
// started load may replace the records; on failure the previous records stay.
func (p *AttendancePage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	filter := p.filter
	p.loading = true
	p.mu.Unlock()

	list, err := p.attendance.List(ctx, filter)

	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()
		return nil
	}
	p.loading = false
	if err == nil {
		p.records = list
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn("Failed to fetch attendance", "employee_id", filter, "error", err)
		p.notifier.Show(KindError, msgAttendanceFetchFailed)
		return err
	}
	return nil
}

// Mark submits a valid attendance draft. It has the form.SubmitFunc shape.
func (p *AttendancePage) Mark(ctx context.Context, draft map[string]string, reset func()) error {
	p.setSubmitLoading(true)
	defer p.setSubmitLoading(false)

	resp, err := p.attendance.Mark(ctx, client.NewAttendance{
		EmployeeID: draft[validator.FieldEmployeeID],
		Date:       draft[validator.FieldDate],
		Status:     draft[validator.FieldStatus],
	})
	if err != nil {
		p.logger.Warn("Failed to mark attendance", "employee_id", draft[validator.FieldEmployeeID], "error", err)
		p.notifier.Show(KindError, failureMessage(err, msgAttendanceMarkFailed))
		return err
	}
	if !resp.Success {
		msg, err := rejected(resp.Error, msgAttendanceMarkFailed)
		p.notifier.Show(KindError, msg)
		return err
	}

	p.notifier.Show(KindSuccess, orDefault(resp.Message, msgAttendanceMarked))
	_ = p.Load(ctx)
	if reset != nil {
		reset()
	}
	return nil
}

// Delete removes one attendance record and reloads the current view.
func (p *AttendancePage) Delete(ctx context.Context, id string) error {
	if err := p.attendance.Delete(ctx, id); err != nil {
		p.logger.Warn("Failed to delete attendance", "id", id, "error", err)
		p.notifier.Show(KindError, failureMessage(err, msgAttendanceDeleteFailed))
		return err
	}

	p.notifier.Show(KindSuccess, msgAttendanceDeleted)
	_ = p.Load(ctx)
	return nil
}

func (p *AttendancePage) Employees() []client.Employee {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.employeeList)
}

func (p *AttendancePage) Records() []client.AttendanceRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.records)
}

func (p *AttendancePage) Filter() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

func (p *AttendancePage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *AttendancePage) SubmitLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitLoading
}

func (p *AttendancePage) Notifier() *Notifier {
	return p.notifier
}

func (p *AttendancePage) setSubmitLoading(v bool) {
	p.mu.Lock()
	p.submitLoading = v
	p.mu.Unlock()
}
