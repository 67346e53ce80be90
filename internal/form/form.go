// Package form holds the draft, validation errors and submit flow of an
// entry form.
package form

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type State int

const (
	Editing State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "editing"
}

// SubmitFunc receives a valid draft and the callback that clears the form.
// It is the caller's job to invoke reset once the submission succeeded.
type SubmitFunc func(ctx context.Context, draft map[string]string, reset func()) error

type ValidateFunc func(draft map[string]string) validator.Result

type Form struct {
	mu       sync.Mutex
	defaults func() map[string]string
	validate ValidateFunc
	draft    map[string]string
	errors   map[string]string
	state    State
}

// New returns a form in the Editing state holding defaults().
func New(defaults func() map[string]string, validate ValidateFunc) *Form {
	f := &Form{
		defaults: defaults,
		validate: validate,
	}
	f.resetLocked()
	return f
}

func NewEmployeeForm() *Form {
	return New(func() map[string]string {
		return map[string]string{
			validator.FieldEmployeeID: "",
			validator.FieldFullName:   "",
			validator.FieldEmail:      "",
			validator.FieldDepartment: "",
		}
	}, validator.ValidateEmployeeForm)
}

// NewAttendanceForm defaults the date to the current day read from now and
// the status to Present.
func NewAttendanceForm(now func() time.Time) *Form {
	return New(func() map[string]string {
		return map[string]string{
			validator.FieldEmployeeID: "",
			validator.FieldDate:       validator.TodayDate(now),
			validator.FieldStatus:     "Present",
		}
	}, validator.ValidateAttendanceForm)
}

// Set updates one field and clears that field's error.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft[field] = value
	delete(f.errors, field)
}

func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft[field]
}

// Draft returns a copy of the current values.
func (f *Form) Draft() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.draft)
}

// Errors returns a copy of the errors from the last submit attempt that have
// not been cleared by editing.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates the draft. An invalid draft only records its errors; a
// valid one is handed to submit, which is called without the form's lock held.
func (f *Form) Submit(ctx context.Context, submit SubmitFunc) (validator.Result, error) {
	f.mu.Lock()
	result := f.validate(f.draft)
	f.errors = maps.Clone(result.Errors)
	if f.errors == nil {
		f.errors = make(map[string]string)
	}
	if !result.IsValid {
		f.mu.Unlock()
		return result, nil
	}
	draft := maps.Clone(f.draft)
	f.state = Submitting
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.state = Editing
		f.mu.Unlock()
	}()

	return result, submit(ctx, draft, f.Reset)
}

// Reset restores the defaults and clears every error.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Form) resetLocked() {
	f.draft = f.defaults()
	f.errors = make(map[string]string)
}
