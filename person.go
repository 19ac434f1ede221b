package warmline

import (
	"context"
	"time"
)

// Person lifecycle statuses. Rows start as StatusDiscovered; enrichment
// advances them to StatusEnriched.
const (
	StatusDiscovered = "discovered"
	StatusEnriched   = "enriched"
)

// DefaultTag is the classification tag applied to rows when the caller
// supplies none.
const DefaultTag = "other"

// Person is one person extracted from a page. All fields except Name default
// to the empty string when the completion service omits them. Context is the
// primary value of the extraction: a verified quote or paraphrase attributed
// to the person, or failing that a description of the event or setting where
// they were found.
type Person struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	LinkedIn     string `json:"linkedin"`
	Context      string `json:"context"`
}

// Validate returns an error if the person contains invalid fields.
func (p *Person) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "person name required")
	}
	return nil
}

// PersonRow is the persisted shape of an extracted person. The store
// maintains identity on the normalized (name, organization) pair: lowercase
// plus trim. A conflicting insert means the person is already known, not an
// error.
type PersonRow struct {
	ID string `json:"id,omitzero"`
	Person
	SourceURL string    `json:"source_url"`
	ForTag    string    `json:"for_tag"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Validate returns an error if the row contains invalid fields.
func (r *PersonRow) Validate() error {
	if err := r.Person.Validate(); err != nil {
		return err
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "person source URL required")
	}
	return nil
}

// PeopleStore writes person rows to storage, one row per call.
type PeopleStore interface {
	// CreatePerson inserts one row.
	// Returns ECONFLICT if a row with the same normalized (name,
	// organization) pair already exists.
	CreatePerson(ctx context.Context, row *PersonRow) error
}

// PeopleService represents a service for managing stored people.
type PeopleService interface {
	PeopleStore

	// FindPersonByID retrieves a person by ID.
	// Returns ENOTFOUND if the person does not exist.
	FindPersonByID(ctx context.Context, id string) (*PersonRow, error)

	// FindPeople retrieves people matching the filter.
	FindPeople(ctx context.Context, filter PersonFilter) ([]*PersonRow, error)

	// UpdatePerson updates an existing person.
	// Returns ENOTFOUND if the person does not exist.
	UpdatePerson(ctx context.Context, id string, upd PersonUpdate) (*PersonRow, error)
}

// PersonFilter represents a filter for FindPeople.
type PersonFilter struct {
	ID        *string `json:"id"`
	Status    *string `json:"status"`
	ForTag    *string `json:"forTag"`
	SourceURL *string `json:"sourceUrl"`

	// MissingEmail restricts results to rows without an email address.
	MissingEmail bool `json:"missingEmail"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PersonUpdate represents fields that can be updated on a person.
type PersonUpdate struct {
	Title        *string `json:"title"`
	Organization *string `json:"organization"`
	Email        *string `json:"email"`
	LinkedIn     *string `json:"linkedin"`
	Context      *string `json:"context"`
	Status       *string `json:"status"`
}
