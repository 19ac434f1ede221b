package mock

import (
	"context"

	"github.com/warmlinehq/warmline"
)

var _ warmline.PeopleStore = (*PeopleStore)(nil)

// PeopleStore is a mock implementation of warmline.PeopleStore.
type PeopleStore struct {
	CreatePersonFn func(ctx context.Context, row *warmline.PersonRow) error
}

func (s *PeopleStore) CreatePerson(ctx context.Context, row *warmline.PersonRow) error {
	return s.CreatePersonFn(ctx, row)
}

var _ warmline.PeopleService = (*PeopleService)(nil)

// PeopleService is a mock implementation of warmline.PeopleService.
type PeopleService struct {
	CreatePersonFn   func(ctx context.Context, row *warmline.PersonRow) error
	FindPersonByIDFn func(ctx context.Context, id string) (*warmline.PersonRow, error)
	FindPeopleFn     func(ctx context.Context, filter warmline.PersonFilter) ([]*warmline.PersonRow, error)
	UpdatePersonFn   func(ctx context.Context, id string, upd warmline.PersonUpdate) (*warmline.PersonRow, error)
}

func (s *PeopleService) CreatePerson(ctx context.Context, row *warmline.PersonRow) error {
	return s.CreatePersonFn(ctx, row)
}

func (s *PeopleService) FindPersonByID(ctx context.Context, id string) (*warmline.PersonRow, error) {
	return s.FindPersonByIDFn(ctx, id)
}

func (s *PeopleService) FindPeople(ctx context.Context, filter warmline.PersonFilter) ([]*warmline.PersonRow, error) {
	return s.FindPeopleFn(ctx, filter)
}

func (s *PeopleService) UpdatePerson(ctx context.Context, id string, upd warmline.PersonUpdate) (*warmline.PersonRow, error) {
	return s.UpdatePersonFn(ctx, id, upd)
}
