package warmline

import (
	"context"
	"time"
)

// Source represents a curated page that is periodically checked for new
// people.
type Source struct {
	ID                  string     `json:"id"`
	URL                 string     `json:"url"`
	Name                string     `json:"name"`
	ForTag              string     `json:"forTag"`
	IsActive            bool       `json:"isActive"`
	CheckFrequencyHours int        `json:"checkFrequencyHours"`
	LastCheckedAt       *time.Time `json:"lastCheckedAt"`
	LastPeopleCount     int        `json:"lastPeopleCount"`
	LastContentHash     string     `json:"lastContentHash"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	if s.CheckFrequencyHours < 0 {
		return Errorf(EINVALID, "source check frequency must not be negative")
	}
	return nil
}

// Due reports whether the source should be checked at the given time.
// Never-checked sources are always due.
func (s *Source) Due(now time.Time) bool {
	if !s.IsActive {
		return false
	}
	if s.LastCheckedAt == nil {
		return true
	}
	freq := time.Duration(s.CheckFrequencyHours) * time.Hour
	return now.Sub(*s.LastCheckedAt) >= freq
}

// SourceService represents a service for managing sources.
type SourceService interface {
	// CreateSource creates a new source.
	CreateSource(ctx context.Context, source *Source) error

	// FindSourceByID retrieves a source by ID.
	// Returns ENOTFOUND if the source does not exist.
	FindSourceByID(ctx context.Context, id string) (*Source, error)

	// FindSources retrieves sources matching the filter.
	FindSources(ctx context.Context, filter SourceFilter) ([]*Source, error)

	// FindDueSources retrieves active sources that are due for checking at
	// the given time.
	FindDueSources(ctx context.Context, now time.Time) ([]*Source, error)

	// UpdateSource updates an existing source.
	// Returns ENOTFOUND if the source does not exist.
	UpdateSource(ctx context.Context, id string, upd SourceUpdate) (*Source, error)

	// DeleteSource permanently removes a source.
	// Returns ENOTFOUND if the source does not exist.
	DeleteSource(ctx context.Context, id string) error
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	ID       *string `json:"id"`
	URL      *string `json:"url"`
	IsActive *bool   `json:"isActive"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SourceUpdate represents fields that can be updated on a source.
type SourceUpdate struct {
	Name                *string    `json:"name"`
	ForTag              *string    `json:"forTag"`
	IsActive            *bool      `json:"isActive"`
	CheckFrequencyHours *int       `json:"checkFrequencyHours"`
	LastCheckedAt       *time.Time `json:"lastCheckedAt"`
	LastPeopleCount     *int       `json:"lastPeopleCount"`
	LastContentHash     *string    `json:"lastContentHash"`
}
