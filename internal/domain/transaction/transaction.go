package transaction

import "context"

// Manager runs fn so that every repository call made with the ctx it receives
// commits or rolls back together.
type Manager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
