package analyze

import (
	"context"
	"fmt"

	"github.com/fwojciec/dealscout"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs AnalyzeAll analyzes at once
// when no limit is given.
const DefaultConcurrency = 4

// AnalyzeAll analyzes urls with at most concurrency analyses in flight.
// Results are index-aligned with urls. The first analyzer error cancels the
// remaining work and is returned.
func AnalyzeAll(ctx context.Context, analyzer dealscout.Analyzer, urls []string, concurrency int) ([]*dealscout.AnalysisResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*dealscout.AnalysisResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			result, err := analyzer.Analyze(gctx, u)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", u, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
