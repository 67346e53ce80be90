package view

import (
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
)

// DeleteConfirm is the two-phase delete of an employee row: Request opens
// the prompt, Confirm or Cancel closes it.
type DeleteConfirm struct {
	mu      sync.Mutex
	pending *client.Employee
}

func (d *DeleteConfirm) Request(emp client.Employee) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = &emp
}

// Pending returns the employee awaiting confirmation.
func (d *DeleteConfirm) Pending() (client.Employee, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return client.Employee{}, false
	}
	return *d.pending, true
}

// Confirm closes the prompt and returns the key to delete. ok is false when
// nothing was pending or the employee has no usable key.
func (d *DeleteConfirm) Confirm() (key string, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return "", false
	}
	key = Key(*d.pending)
	d.pending = nil
	return key, key != ""
}

func (d *DeleteConfirm) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = nil
}
