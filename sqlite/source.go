package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/warmlinehq/warmline"
)

// Compile-time interface verification.
var _ warmline.SourceService = (*SourceService)(nil)

// DefaultCheckFrequencyHours is applied to sources created without an
// explicit check frequency.
const DefaultCheckFrequencyHours = 24

// SourceService implements warmline.SourceService using SQLite.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

// CreateSource creates a new source.
func (s *SourceService) CreateSource(ctx context.Context, source *warmline.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	source.ID = uuid.New().String()
	now := time.Now().UTC()
	source.CreatedAt = now
	source.UpdatedAt = now
	source.IsActive = true
	if source.ForTag == "" {
		source.ForTag = warmline.DefaultTag
	}
	if source.CheckFrequencyHours == 0 {
		source.CheckFrequencyHours = DefaultCheckFrequencyHours
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sources (id, url, name, for_tag, is_active, check_frequency_hours, last_people_count, last_content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, '', ?, ?)
	`, source.ID, source.URL, source.Name, source.ForTag, boolToInt(source.IsActive), source.CheckFrequencyHours,
		source.CreatedAt.Format(time.RFC3339), source.UpdatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return warmline.Errorf(warmline.ECONFLICT, "source %q already registered", source.URL)
	}
	return err
}

const sourceColumns = "id, url, name, for_tag, is_active, check_frequency_hours, last_checked_at, last_people_count, last_content_hash, created_at, updated_at"

func scanSource(scan func(dest ...any) error) (*warmline.Source, error) {
	var src warmline.Source
	var isActive int
	var lastCheckedAt sql.NullString
	var createdAt, updatedAt string

	if err := scan(&src.ID, &src.URL, &src.Name, &src.ForTag, &isActive, &src.CheckFrequencyHours,
		&lastCheckedAt, &src.LastPeopleCount, &src.LastContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	src.IsActive = isActive != 0

	if lastCheckedAt.Valid {
		t, err := parseRFC3339(lastCheckedAt.String, "last_checked_at")
		if err != nil {
			return nil, err
		}
		src.LastCheckedAt = &t
	}

	var err error
	if src.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if src.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &src, nil
}

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*warmline.Source, error) {
	r := s.db.QueryRowContext(ctx, "SELECT "+sourceColumns+" FROM sources WHERE id = ?", id)

	src, err := scanSource(r.Scan)
	if err == sql.ErrNoRows {
		return nil, warmline.Errorf(warmline.ENOTFOUND, "source not found")
	}
	if err != nil {
		return nil, err
	}

	return src, nil
}

// FindSources retrieves sources matching the filter.
func (s *SourceService) FindSources(ctx context.Context, filter warmline.SourceFilter) ([]*warmline.Source, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + sourceColumns + " FROM sources WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.IsActive != nil {
		query.WriteString(" AND is_active = ?")
		args = append(args, boolToInt(*filter.IsActive))
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*warmline.Source
	for rows.Next() {
		src, err := scanSource(rows.Scan)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, rows.Err()
}

// FindDueSources retrieves active sources that are due for checking.
// The frequency comparison happens in Go via Source.Due so the rule lives in
// one place.
func (s *SourceService) FindDueSources(ctx context.Context, now time.Time) ([]*warmline.Source, error) {
	active := true
	sources, err := s.FindSources(ctx, warmline.SourceFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	var due []*warmline.Source
	for _, src := range sources {
		if src.Due(now) {
			due = append(due, src)
		}
	}

	return due, nil
}

// UpdateSource updates an existing source.
func (s *SourceService) UpdateSource(ctx context.Context, id string, upd warmline.SourceUpdate) (*warmline.Source, error) {
	src, err := s.FindSourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		src.Name = *upd.Name
	}
	if upd.ForTag != nil {
		src.ForTag = *upd.ForTag
	}
	if upd.IsActive != nil {
		src.IsActive = *upd.IsActive
	}
	if upd.CheckFrequencyHours != nil {
		src.CheckFrequencyHours = *upd.CheckFrequencyHours
	}
	if upd.LastCheckedAt != nil {
		src.LastCheckedAt = upd.LastCheckedAt
	}
	if upd.LastPeopleCount != nil {
		src.LastPeopleCount = *upd.LastPeopleCount
	}
	if upd.LastContentHash != nil {
		src.LastContentHash = *upd.LastContentHash
	}

	if err := src.Validate(); err != nil {
		return nil, err
	}

	src.UpdatedAt = time.Now().UTC()

	var lastCheckedAt any
	if src.LastCheckedAt != nil {
		lastCheckedAt = src.LastCheckedAt.UTC().Format(time.RFC3339)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE sources
		SET name = ?, for_tag = ?, is_active = ?, check_frequency_hours = ?, last_checked_at = ?, last_people_count = ?, last_content_hash = ?, updated_at = ?
		WHERE id = ?
	`, src.Name, src.ForTag, boolToInt(src.IsActive), src.CheckFrequencyHours, lastCheckedAt,
		src.LastPeopleCount, src.LastContentHash, src.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return src, nil
}

// DeleteSource permanently removes a source.
func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return warmline.Errorf(warmline.ENOTFOUND, "source not found")
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
