package mock

import (
	"context"

	"github.com/warmlinehq/warmline"
)

var _ warmline.Submitter = (*Submitter)(nil)

// Submitter is a mock implementation of warmline.Submitter.
type Submitter struct {
	SubmitFn func(ctx context.Context, people []*warmline.Person, sourceURL, forTag string) (*warmline.IngestOutcome, error)
}

func (s *Submitter) Submit(ctx context.Context, people []*warmline.Person, sourceURL, forTag string) (*warmline.IngestOutcome, error) {
	return s.SubmitFn(ctx, people, sourceURL, forTag)
}
