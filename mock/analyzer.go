package mock

import (
	"context"

	"github.com/fwojciec/dealscout"
)

var _ dealscout.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of dealscout.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*dealscout.AnalysisResult, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*dealscout.AnalysisResult, error) {
	return a.AnalyzeFn(ctx, url)
}
