package infrastructure

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/shared/events"
)

var _ events.EventLog = (*PostgresEventLog)(nil)

const eventLogSchema = `
CREATE TABLE IF NOT EXISTS saga_event_log (
	id             UUID PRIMARY KEY,
	transaction_id TEXT NOT NULL,
	queue          TEXT NOT NULL,
	direction      TEXT NOT NULL,
	payload        JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS saga_event_log_transaction_idx
	ON saga_event_log (transaction_id, created_at);
`

// PostgresEventLog persists the saga event log in PostgreSQL.
type PostgresEventLog struct {
	db *sqlx.DB
}

// NewPostgresEventLog creates the log and ensures its schema exists.
func NewPostgresEventLog(db *sqlx.DB) (*PostgresEventLog, error) {
	if _, err := db.Exec(eventLogSchema); err != nil {
		return nil, errors.Wrap(err, "failed to ensure saga_event_log schema")
	}
	return &PostgresEventLog{db: db}, nil
}

// Append inserts one log entry.
func (l *PostgresEventLog) Append(ctx context.Context, entry *events.EventLogEntry) error {
	query := `
		INSERT INTO saga_event_log (id, transaction_id, queue, direction, payload, created_at)
		VALUES (:id, :transaction_id, :queue, :direction, :payload, :created_at)`

	if _, err := l.db.NamedExecContext(ctx, query, entry); err != nil {
		return errors.Wrap(err, "failed to insert event log entry")
	}
	return nil
}

// ByTransaction returns a transaction's entries in chronological order.
func (l *PostgresEventLog) ByTransaction(ctx context.Context, transactionID string) ([]*events.EventLogEntry, error) {
	query := `
		SELECT id, transaction_id, queue, direction, payload, created_at
		FROM saga_event_log
		WHERE transaction_id = $1
		ORDER BY created_at ASC`

	var entries []*events.EventLogEntry
	if err := l.db.SelectContext(ctx, &entries, query, transactionID); err != nil {
		return nil, errors.Wrap(err, "failed to query event log")
	}
	return entries, nil
}
