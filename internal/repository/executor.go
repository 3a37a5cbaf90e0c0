package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Executor is the subset of sqlx operations the repositories need. Both
// *sqlx.DB and *sqlx.Tx satisfy it, so a repository can be rebound onto a
// transaction with WithTx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// sb is the statement builder shared by all repositories. SQLite uses ?
// placeholders, which is squirrel's default.
var sb = sq.StatementBuilder
