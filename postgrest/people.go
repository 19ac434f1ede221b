// Package postgrest provides a warmline.PeopleStore backed by a
// PostgREST-style row-creation endpoint (e.g. a Supabase table). The store
// owns the schema and the uniqueness constraint; this client only speaks the
// insert/conflict contract.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/warmlinehq/warmline"
)

// DefaultTimeout is the default timeout for store requests.
const DefaultTimeout = 30 * time.Second

// peoplePath is the row-creation endpoint for the people table.
const peoplePath = "/rest/v1/people"

// Ensure PeopleStore implements warmline.PeopleStore at compile time.
var _ warmline.PeopleStore = (*PeopleStore)(nil)

// PeopleStore inserts person rows over HTTP, one JSON object per call.
// The store enforces uniqueness on the normalized (name, organization) pair;
// a 409 response means the person is already present.
type PeopleStore struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// Option configures a PeopleStore.
type Option func(*PeopleStore)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *PeopleStore) {
		s.client = client
	}
}

// NewPeopleStore creates a new PeopleStore for the given endpoint and key.
func NewPeopleStore(baseURL, apiKey string, opts ...Option) *PeopleStore {
	s := &PeopleStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultTimeout}
	}
	return s
}

// CreatePerson inserts one row. Returns ECONFIG if the endpoint or key is
// missing, ECONFLICT when the store rejects the row as a duplicate, and
// EINGEST with the upstream status and body for any other failure.
func (s *PeopleStore) CreatePerson(ctx context.Context, row *warmline.PersonRow) error {
	if s.baseURL == "" {
		return warmline.Errorf(warmline.ECONFIG, "store URL required")
	}
	if s.apiKey == "" {
		return warmline.Errorf(warmline.ECONFIG, "store key required")
	}
	if err := row.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(row)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+peoplePath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.client.Do(req)
	if err != nil {
		return warmline.Errorf(warmline.EINGEST, "store request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return warmline.Errorf(warmline.ECONFLICT, "person %q already present", row.Name)
	default:
		return warmline.Errorf(warmline.EINGEST, "store returned status %d: %s", resp.StatusCode, raw)
	}
}
