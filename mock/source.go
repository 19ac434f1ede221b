package mock

import (
	"context"
	"time"

	"github.com/warmlinehq/warmline"
)

var _ warmline.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of warmline.SourceService.
type SourceService struct {
	CreateSourceFn   func(ctx context.Context, source *warmline.Source) error
	FindSourceByIDFn func(ctx context.Context, id string) (*warmline.Source, error)
	FindSourcesFn    func(ctx context.Context, filter warmline.SourceFilter) ([]*warmline.Source, error)
	FindDueSourcesFn func(ctx context.Context, now time.Time) ([]*warmline.Source, error)
	UpdateSourceFn   func(ctx context.Context, id string, upd warmline.SourceUpdate) (*warmline.Source, error)
	DeleteSourceFn   func(ctx context.Context, id string) error
}

func (s *SourceService) CreateSource(ctx context.Context, source *warmline.Source) error {
	return s.CreateSourceFn(ctx, source)
}

func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*warmline.Source, error) {
	return s.FindSourceByIDFn(ctx, id)
}

func (s *SourceService) FindSources(ctx context.Context, filter warmline.SourceFilter) ([]*warmline.Source, error) {
	return s.FindSourcesFn(ctx, filter)
}

func (s *SourceService) FindDueSources(ctx context.Context, now time.Time) ([]*warmline.Source, error) {
	return s.FindDueSourcesFn(ctx, now)
}

func (s *SourceService) UpdateSource(ctx context.Context, id string, upd warmline.SourceUpdate) (*warmline.Source, error) {
	return s.UpdateSourceFn(ctx, id, upd)
}

func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	return s.DeleteSourceFn(ctx, id)
}
