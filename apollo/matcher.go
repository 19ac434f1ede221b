// Package apollo provides an implementation of warmline.Matcher backed by
// the Apollo People Match API.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/warmlinehq/warmline"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Apollo API endpoint.
const DefaultBaseURL = "https://api.apollo.io"

// matchPath is the people-match endpoint.
const matchPath = "/api/v1/people/match"

// requestInterval spaces out match calls to stay inside Apollo's rate limit.
const requestInterval = 1200 * time.Millisecond

// Ensure Matcher implements warmline.Matcher at compile time.
var _ warmline.Matcher = (*Matcher)(nil)

// Matcher looks up contact details via the Apollo People Match API.
// Calls are rate limited to one per requestInterval.
type Matcher struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Matcher) {
		m.client = client
	}
}

// WithBaseURL overrides the API endpoint. Primarily for tests.
func WithBaseURL(u string) Option {
	return func(m *Matcher) {
		m.baseURL = strings.TrimRight(u, "/")
	}
}

// NewMatcher creates a new Matcher with the given API key.
func NewMatcher(apiKey string, opts ...Option) *Matcher {
	m := &Matcher{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.client == nil {
		m.client = &http.Client{Timeout: 30 * time.Second}
	}
	return m
}

// matchRequest carries only non-empty fields; Apollo rejects empty strings
// with a validation error.
type matchRequest struct {
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	LinkedInURL      string `json:"linkedin_url,omitempty"`
	Email            string `json:"email,omitempty"`
}

type matchResponse struct {
	Person *matchedPerson `json:"person"`
}

type matchedPerson struct {
	Email        string      `json:"email"`
	EmailStatus  string      `json:"email_status"`
	LinkedInURL  string      `json:"linkedin_url"`
	Title        string      `json:"title"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	Country      string      `json:"country"`
	Organization *matchedOrg `json:"organization"`
}

type matchedOrg struct {
	Name string `json:"name"`
}

// MatchPerson returns the best Apollo match for the request, or (nil, nil)
// when Apollo has no match or rejects the identifying fields as
// insufficient.
func (m *Matcher) MatchPerson(ctx context.Context, req warmline.MatchRequest) (*warmline.Match, error) {
	if m.apiKey == "" {
		return nil, warmline.Errorf(warmline.ECONFIG, "apollo API key required")
	}

	payload := matchRequest{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		OrganizationName: req.Organization,
		LinkedInURL:      req.LinkedIn,
		Email:            req.Email,
	}
	if payload == (matchRequest{}) {
		return nil, nil
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+matchPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", m.apiKey)

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return nil, warmline.Errorf(warmline.EUNAVAILABLE, "apollo request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		// Not enough identifying data; treat as no match.
		return nil, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, warmline.Errorf(warmline.EUNAVAILABLE, "apollo rate limited")
	case resp.StatusCode != http.StatusOK:
		return nil, warmline.Errorf(warmline.EUNAVAILABLE, "apollo returned status %d: %s", resp.StatusCode, raw)
	}

	var decoded matchResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, warmline.Errorf(warmline.EUNAVAILABLE, "failed to decode apollo response: %v", err)
	}
	if decoded.Person == nil {
		return nil, nil
	}

	match := &warmline.Match{
		Email:       decoded.Person.Email,
		EmailStatus: decoded.Person.EmailStatus,
		LinkedIn:    decoded.Person.LinkedInURL,
		Title:       decoded.Person.Title,
		City:        decoded.Person.City,
		State:       decoded.Person.State,
		Country:     decoded.Person.Country,
	}
	if decoded.Person.Organization != nil {
		match.Organization = decoded.Person.Organization.Name
	}

	return match, nil
}
