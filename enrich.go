package warmline

import "context"

// MatchRequest identifies a person to look up in an enrichment service.
// Empty fields are omitted from the upstream request.
type MatchRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Organization string `json:"organization"`
	LinkedIn     string `json:"linkedin"`
	Email        string `json:"email"`
}

// Match is a normalized enrichment result.
type Match struct {
	Email        string `json:"email"`
	EmailStatus  string `json:"emailStatus"`
	LinkedIn     string `json:"linkedin"`
	Title        string `json:"title"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Organization string `json:"organization"`
}

// Matcher looks up contact details for a person in an external enrichment
// service.
type Matcher interface {
	// MatchPerson returns the best match for the request, or (nil, nil)
	// when the service has no match.
	MatchPerson(ctx context.Context, req MatchRequest) (*Match, error)
}
