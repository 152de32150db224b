package sqlstore

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dialect captures the differences between the supported databases.
// Queries are written once with ? placeholders and rebound per dialect.
type dialect interface {
	Name() string
	Rebind(query string) string
	TimeArg(t time.Time) any
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) Rebind(query string) string { return query }

// TimeArg stores timestamps as fixed-width UTC text so they sort lexically.
func (sqliteDialect) TimeArg(t time.Time) any { return formatTime(t) }

func (sqliteDialect) IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (sqliteDialect) IsForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

// Rebind rewrites ? placeholders to $1, $2, ...
// None of the queries in this package contain a literal question mark.
func (postgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (postgresDialect) TimeArg(t time.Time) any { return t.UTC() }

func (postgresDialect) IsUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

func (postgresDialect) IsForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
