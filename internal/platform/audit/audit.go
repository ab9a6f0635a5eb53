// Package audit records an audit trail of mutating operations: who-free
// (single local actor) but what/when/which-record, one entry per mutation.
package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Entry describes one mutating operation.
type Entry struct {
	ID       uuid.UUID
	Recorded time.Time
	Action   string // create, update, delete, schedule, cancel, restock, sell
	Entity   string // patient, doctor, appointment, medicine, invoice
	RecordID int
	Detail   string
}

// Recorder persists audit entries. Implementations fill in the event id and
// timestamp when the caller leaves them zero, and report their own failures;
// recording never blocks a domain operation.
type Recorder interface {
	Record(entry Entry)
}

// RecorderFunc is a function adapter for Recorder.
type RecorderFunc func(entry Entry)

func (f RecorderFunc) Record(entry Entry) { f(entry) }

// Nop discards all entries.
type Nop struct{}

func (Nop) Record(Entry) {}

// Logger emits entries as structured log events.
type Logger struct {
	logger zerolog.Logger
}

func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger.With().Str("component", "audit").Logger()}
}

func (l *Logger) Record(entry Entry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Recorded.IsZero() {
		entry.Recorded = time.Now().UTC()
	}
	l.logger.Info().
		Str("event_id", entry.ID.String()).
		Time("recorded", entry.Recorded).
		Str("action", entry.Action).
		Str("entity", entry.Entity).
		Int("record_id", entry.RecordID).
		Str("detail", entry.Detail).
		Msg("audit")
}
