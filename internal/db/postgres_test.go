package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oyasar/assist/internal/pkg/apperrors"
)

// fakeTx satisfies pgx.Tx; only Commit and Rollback carry behavior.
type fakeTx struct {
	commitErr   error
	rollbackErr error
	commits     int
	rollbacks   int
}

func (t *fakeTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(_ context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.rollbacks++
	return t.rollbackErr
}

func (t *fakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }

func (t *fakeTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row { return nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

type fakeTxStarter struct {
	tx *fakeTx
}

func (f *fakeTxStarter) Begin(_ context.Context) (pgx.Tx, error) { return f.tx, nil }

func TestWithTransactionCommits(t *testing.T) {
	tx := &fakeTx{}

	err := WithTransaction(context.Background(), &fakeTxStarter{tx: tx}, func(_ context.Context, _ pgx.Tx) error {
		return nil
	})
	if err != nil {
		t.Fatalf("WithTransaction: %v", err)
	}
	if tx.commits != 1 || tx.rollbacks != 0 {
		t.Fatalf("commits = %d, rollbacks = %d", tx.commits, tx.rollbacks)
	}
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}

	err := WithTransaction(context.Background(), &fakeTxStarter{tx: tx}, func(_ context.Context, _ pgx.Tx) error {
		return apperrors.ErrEmailAlreadyExists
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
	if tx.rollbacks != 1 || tx.commits != 0 {
		t.Fatalf("commits = %d, rollbacks = %d", tx.commits, tx.rollbacks)
	}
}

// A failing rollback must not mask the sentinel the caller matches on.
func TestWithTransactionKeepsSentinelWhenRollbackFails(t *testing.T) {
	tx := &fakeTx{rollbackErr: errors.New("connection lost")}

	err := WithTransaction(context.Background(), &fakeTxStarter{tx: tx}, func(_ context.Context, _ pgx.Tx) error {
		return apperrors.ErrEmailAlreadyExists
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}
