package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager is the atomic read-modify-write primitive the engine
// assumes from its storage collaborator. Every project mutation runs as
// one ExecTx: lock the row, mutate in memory, write back. Either the
// whole write commits or none of it does.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
