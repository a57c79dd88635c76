package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/dealscout"
	main "github.com/fwojciec/dealscout/cmd/dealscout"
	"github.com/fwojciec/dealscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("clears history when --force is set", func(t *testing.T) {
		t.Parallel()

		searches := &mock.SearchService{
			DeleteSearchesFn: func(_ context.Context) (int, error) {
				return 3, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Searches: searches,
		}

		require.NoError(t, (&main.ClearCmd{Force: true}).Run(deps))
		assert.Contains(t, stdout.String(), "Cleared 3 searches")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		searches := &mock.SearchService{
			DeleteSearchesFn: func(_ context.Context) (int, error) {
				t.Error("DeleteSearches should not be called without --force")
				return 0, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Searches: searches,
		}

		err := (&main.ClearCmd{}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, dealscout.EINVALID, dealscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})
}
