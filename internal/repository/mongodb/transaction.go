package mongodb

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/transaction"
)

type txManager struct{}

// NewTxManager returns a manager that runs fn directly. Multi-document
// transactions need a replica set, so deletes that span both collections are
// applied in order (attendance first) without atomicity.
func NewTxManager() transaction.Manager {
	return txManager{}
}

func (txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
