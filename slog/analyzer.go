package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dealscout"
)

// Ensure LoggingAnalyzer implements dealscout.Analyzer.
var _ dealscout.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   dealscout.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next dealscout.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
// Page-level failures are logged at warn level with the result's message.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string) (result *dealscout.AnalysisResult, err error) {
	defer func(begin time.Time) {
		if err == nil && result != nil && result.Failed() {
			a.logger.Warn("analyze",
				"url", url,
				"result_error", result.Error,
				"duration", time.Since(begin),
			)
			return
		}
		var product string
		var similar int
		if result != nil {
			product, similar = result.ProductInfo.Name, len(result.SimilarProducts)
		}
		a.logger.Info("analyze",
			"url", url,
			"product", product,
			"similar", similar,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, url)
}
