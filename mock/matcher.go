package mock

import (
	"context"

	"github.com/warmlinehq/warmline"
)

var _ warmline.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of warmline.Matcher.
type Matcher struct {
	MatchPersonFn func(ctx context.Context, req warmline.MatchRequest) (*warmline.Match, error)
}

func (m *Matcher) MatchPerson(ctx context.Context, req warmline.MatchRequest) (*warmline.Match, error) {
	return m.MatchPersonFn(ctx, req)
}
