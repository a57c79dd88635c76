package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dealscout"
)

// Ensure LoggingSearchService implements dealscout.SearchService.
var _ dealscout.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   dealscout.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next dealscout.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// CreateSearch delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) CreateSearch(ctx context.Context, record *dealscout.SearchRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create search",
			"url", record.URL,
			"id", record.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSearch(ctx, record)
}

// FindSearches delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) FindSearches(ctx context.Context, filter dealscout.SearchFilter) (records []*dealscout.SearchRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find searches",
			"limit", filter.Limit,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearches(ctx, filter)
}

// DeleteSearches delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) DeleteSearches(ctx context.Context) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete searches",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSearches(ctx)
}
