package testutil

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"

	"github.com/alexanderramin/skillprompt/internal/db"
)

// ErrInjectedWrite is returned by FailOnNthExecUoW when no Err is set.
var ErrInjectedWrite = errors.New("injected write failure")

// FailOnNthExecUoW runs the callback in a real transaction but fails the
// FailOn-th write (1-based). Reads pass through. Used to prove that a catalog
// import is all-or-nothing.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	writes atomic.Int32
}

// Writes reports how many ExecContext calls the last transaction attempted.
func (u *FailOnNthExecUoW) Writes() int {
	return int(u.writes.Load())
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.writes.Store(0)
	injected := u.Err
	if injected == nil {
		injected = ErrInjectedWrite
	}
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingExec{DBTX: tx, uow: u, err: injected})
	})
}

type failingExec struct {
	db.DBTX
	uow *FailOnNthExecUoW
	err error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.writes.Add(1) == f.uow.FailOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
