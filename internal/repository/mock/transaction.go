package mock

import "context"

// TxManager runs fn in place and counts how often it was asked to.
type TxManager struct {
	Calls int
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}
