package repository

import (
	"context"

	"gorm.io/gorm"
)

type ctxKey string

const txCtxKey ctxKey = "repository_tx"

// TransactionManager runs a unit of work inside a single database
// transaction. Repositories called with the returned context operate on the
// transaction instead of the root connection.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txCtxKey, tx))
	})
}

// dbFrom returns the transaction carried by ctx if present, else the root DB.
func dbFrom(ctx context.Context, root *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return root.WithContext(ctx)
}
