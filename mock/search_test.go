package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/dealscout"
	"github.com/fwojciec/dealscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where SearchService is expected
	var _ dealscout.SearchService = &mock.SearchService{}
}

func TestSearchService_CreateSearch(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateSearchFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *dealscout.SearchRecord
		s := &mock.SearchService{
			CreateSearchFn: func(_ context.Context, record *dealscout.SearchRecord) error {
				calledWith = record
				return nil
			},
		}

		record := &dealscout.SearchRecord{URL: "http://example.com/product"}
		err := s.CreateSearch(context.Background(), record)

		require.NoError(t, err)
		assert.Same(t, record, calledWith)
	})
}
