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
var _ warmline.PeopleService = (*PeopleService)(nil)

// PeopleService implements warmline.PeopleService using SQLite.
type PeopleService struct {
	db *DB
}

// NewPeopleService creates a new PeopleService.
func NewPeopleService(db *DB) *PeopleService {
	return &PeopleService{db: db}
}

// CreatePerson inserts one row. Returns ECONFLICT when a row with the same
// normalized (name, organization) pair already exists.
func (s *PeopleService) CreatePerson(ctx context.Context, row *warmline.PersonRow) error {
	if err := row.Validate(); err != nil {
		return err
	}

	row.ID = uuid.New().String()
	row.CreatedAt = time.Now().UTC()
	if row.ForTag == "" {
		row.ForTag = warmline.DefaultTag
	}
	if row.Status == "" {
		row.Status = warmline.StatusDiscovered
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO people (id, name, title, organization, email, linkedin, context, source_url, for_tag, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, row.ID, row.Name, row.Title, row.Organization, row.Email, row.LinkedIn, row.Context,
		row.SourceURL, row.ForTag, row.Status, row.CreatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return warmline.Errorf(warmline.ECONFLICT, "person %q already present", row.Name)
	}
	return err
}

const personColumns = "id, name, title, organization, email, linkedin, context, source_url, for_tag, status, created_at"

func scanPerson(scan func(dest ...any) error) (*warmline.PersonRow, error) {
	var row warmline.PersonRow
	var createdAt string

	if err := scan(&row.ID, &row.Name, &row.Title, &row.Organization, &row.Email, &row.LinkedIn,
		&row.Context, &row.SourceURL, &row.ForTag, &row.Status, &createdAt); err != nil {
		return nil, err
	}

	var err error
	row.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// FindPersonByID retrieves a person by ID.
func (s *PeopleService) FindPersonByID(ctx context.Context, id string) (*warmline.PersonRow, error) {
	r := s.db.QueryRowContext(ctx, "SELECT "+personColumns+" FROM people WHERE id = ?", id)

	row, err := scanPerson(r.Scan)
	if err == sql.ErrNoRows {
		return nil, warmline.Errorf(warmline.ENOTFOUND, "person not found")
	}
	if err != nil {
		return nil, err
	}

	return row, nil
}

// FindPeople retrieves people matching the filter, newest first.
func (s *PeopleService) FindPeople(ctx context.Context, filter warmline.PersonFilter) ([]*warmline.PersonRow, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + personColumns + " FROM people WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}
	if filter.ForTag != nil {
		query.WriteString(" AND for_tag = ?")
		args = append(args, *filter.ForTag)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.MissingEmail {
		query.WriteString(" AND email = ''")
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*warmline.PersonRow
	for rows.Next() {
		row, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, err
		}
		people = append(people, row)
	}

	return people, rows.Err()
}

// UpdatePerson updates an existing person.
func (s *PeopleService) UpdatePerson(ctx context.Context, id string, upd warmline.PersonUpdate) (*warmline.PersonRow, error) {
	row, err := s.FindPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		row.Title = *upd.Title
	}
	if upd.Organization != nil {
		row.Organization = *upd.Organization
	}
	if upd.Email != nil {
		row.Email = *upd.Email
	}
	if upd.LinkedIn != nil {
		row.LinkedIn = *upd.LinkedIn
	}
	if upd.Context != nil {
		row.Context = *upd.Context
	}
	if upd.Status != nil {
		row.Status = *upd.Status
	}

	if err := row.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE people
		SET title = ?, organization = ?, email = ?, linkedin = ?, context = ?, status = ?
		WHERE id = ?
	`, row.Title, row.Organization, row.Email, row.LinkedIn, row.Context, row.Status, id)

	if isUniqueViolation(err) {
		return nil, warmline.Errorf(warmline.ECONFLICT, "person %q already present", row.Name)
	}
	if err != nil {
		return nil, err
	}

	return row, nil
}
