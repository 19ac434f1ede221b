package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/warmlinehq/warmline"
)

// Ensure LoggingStore implements warmline.PeopleStore.
var _ warmline.PeopleStore = (*LoggingStore)(nil)

// LoggingStore wraps a PeopleStore with per-row outcome logging.
type LoggingStore struct {
	next   warmline.PeopleStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next warmline.PeopleStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// CreatePerson logs the row outcome and delegates to the wrapped store.
func (s *LoggingStore) CreatePerson(ctx context.Context, row *warmline.PersonRow) (err error) {
	defer func(begin time.Time) {
		outcome := "inserted"
		switch warmline.ErrorCode(err) {
		case "":
		case warmline.ECONFLICT:
			outcome = "duplicate"
		default:
			outcome = "failed"
		}
		s.logger.Info("person write",
			"name", row.Name,
			"organization", row.Organization,
			"outcome", outcome,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreatePerson(ctx, row)
}
