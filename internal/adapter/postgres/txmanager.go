package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// snapshotOptions gives every statement of a snapshot the same view of the
// database, so counters read across several tables agree with each other.
var snapshotOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// TxManager runs callbacks inside a transaction carried by the context.
// Nested calls open independent transactions; do not nest.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a Read Committed transaction. It commits when fn
// returns nil and rolls back on error or panic (re-panicking afterwards).
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	return finish(ctx, tx, fn)
}

// RunInSnapshot executes fn within a read-only Repeatable Read transaction.
// Writes issued by fn fail.
func (m *TxManager) RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, snapshotOptions)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	return finish(ctx, tx, fn)
}

func finish(ctx context.Context, tx pgx.Tx, fn func(ctx context.Context) error) error {
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
