package mock

import (
	"context"

	"github.com/warmlinehq/warmline"
)

var _ warmline.PeopleExtractor = (*PeopleExtractor)(nil)

// PeopleExtractor is a mock implementation of warmline.PeopleExtractor.
type PeopleExtractor struct {
	ExtractPeopleFn func(ctx context.Context, capture *warmline.PageCapture) ([]*warmline.Person, error)
}

func (e *PeopleExtractor) ExtractPeople(ctx context.Context, capture *warmline.PageCapture) ([]*warmline.Person, error) {
	return e.ExtractPeopleFn(ctx, capture)
}
