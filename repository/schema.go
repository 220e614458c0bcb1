package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"

	"github.com/pkg/errors"
)

// Schema holds the table definitions the repositories query. The unique index on
// study_sessions.fingerprint is what turns concurrent identical generations into
// ErrDuplicateSession.
//
//go:embed schema.sql
var Schema string

// SchemaStatements splits Schema into individual statements.
func SchemaStatements() []string {
	var statements []string
	for _, stmt := range strings.Split(Schema, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range SchemaStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "error applying schema statement %q", firstLine(stmt))
		}
	}
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
