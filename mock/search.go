package mock

import (
	"context"

	"github.com/fwojciec/dealscout"
)

var _ dealscout.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of dealscout.SearchService.
type SearchService struct {
	CreateSearchFn   func(ctx context.Context, record *dealscout.SearchRecord) error
	FindSearchesFn   func(ctx context.Context, filter dealscout.SearchFilter) ([]*dealscout.SearchRecord, error)
	DeleteSearchesFn func(ctx context.Context) (int, error)
}

func (s *SearchService) CreateSearch(ctx context.Context, record *dealscout.SearchRecord) error {
	return s.CreateSearchFn(ctx, record)
}

func (s *SearchService) FindSearches(ctx context.Context, filter dealscout.SearchFilter) ([]*dealscout.SearchRecord, error) {
	return s.FindSearchesFn(ctx, filter)
}

func (s *SearchService) DeleteSearches(ctx context.Context) (int, error) {
	return s.DeleteSearchesFn(ctx)
}
