package page

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

const (
	msgEmployeesFetchFailed = "Failed to fetch employees. Please try again."
	msgEmployeeAdded        = "Employee added successfully!"
	msgEmployeeAddFailed    = "Failed to add employee. Please try again."
	msgEmployeeDeleted      = "Employee deleted successfully!"
	msgEmployeeDeleteFailed = "Failed to delete employee. Please try again."
)

type EmployeeAPI interface {
	List(ctx context.Context) ([]client.Employee, error)
	Create(ctx context.Context, in client.NewEmployee) (client.CreateEmployeeResponse, error)
	Delete(ctx context.Context, key string) error
}

// EmployeePage owns the employee list as last fetched and reports every
// outcome as a notification. Errors are returned as well, after they have
// been reported.
type EmployeePage struct {
	api      EmployeeAPI
	notifier *Notifier
	logger   *slog.Logger

	mu            sync.Mutex
	records       []client.Employee
	loading       bool
	submitLoading bool
	seq           uint64
}

func NewEmployeePage(api EmployeeAPI, notifier *Notifier, logger *slog.Logger) *EmployeePage {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeePage{
		api:      api,
		notifier: notifier,
		logger:   logger,
		records:  []client.Employee{},
	}
}

// Load fetches the employees. Only the most recently started load may
// replace the records; on failure the previous records stay.
func (p *EmployeePage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.loading = true
	p.mu.Unlock()

	list, err := p.api.List(ctx)

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
		p.logger.Warn("Failed to fetch employees", "error", err)
		p.notifier.Show(KindError, msgEmployeesFetchFailed)
		return err
	}
	return nil
}

// Create submits a valid employee draft. It has the form.SubmitFunc shape:
// reset is called only when the employee was created.
func (p *EmployeePage) Create(ctx context.Context, draft map[string]string, reset func()) error {
	p.setSubmitLoading(true)
	defer p.setSubmitLoading(false)

	resp, err := p.api.Create(ctx, client.NewEmployee{
		EmployeeID: draft[validator.FieldEmployeeID],
		FullName:   draft[validator.FieldFullName],
		Email:      draft[validator.FieldEmail],
		Department: draft[validator.FieldDepartment],
	})
	if err != nil {
		p.logger.Warn("Failed to create employee", "employee_id", draft[validator.FieldEmployeeID], "error", err)
		p.notifier.Show(KindError, failureMessage(err, msgEmployeeAddFailed))
		return err
	}
	if !resp.Success {
		msg, err := rejected(resp.Error, msgEmployeeAddFailed)
		p.notifier.Show(KindError, msg)
		return err
	}

	p.notifier.Show(KindSuccess, orDefault(resp.Message, msgEmployeeAdded))
	_ = p.Load(ctx)
	if reset != nil {
		reset()
	}
	return nil
}

// Delete removes the employee addressed by key. The row stays until the
// following reload. Failures show the server's "error" text only; a delete
// has no fields to report.
func (p *EmployeePage) Delete(ctx context.Context, key string) error {
	if err := p.api.Delete(ctx, key); err != nil {
		p.logger.Warn("Failed to delete employee", "key", key, "error", err)
		p.notifier.Show(KindError, serverMessage(err, msgEmployeeDeleteFailed))
		return err
	}

	p.notifier.Show(KindSuccess, msgEmployeeDeleted)
	_ = p.Load(ctx)
	return nil
}

func (p *EmployeePage) Records() []client.Employee {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.records)
}

func (p *EmployeePage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *EmployeePage) SubmitLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitLoading
}

func (p *EmployeePage) Notifier() *Notifier {
	return p.notifier
}

func (p *EmployeePage) setSubmitLoading(v bool) {
	p.mu.Lock()
	p.submitLoading = v
	p.mu.Unlock()
}
