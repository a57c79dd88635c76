package dealscout

import (
	"context"
	"time"
)

// SearchRecord is a successful analysis kept in the search history.
type SearchRecord struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	Timestamp   time.Time   `json:"timestamp"`
	ProductInfo ProductInfo `json:"product_info"`
	Fingerprint string      `json:"fingerprint,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SearchRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "search URL required")
	}
	return nil
}

// SearchService represents the append-only search history.
type SearchService interface {
	// CreateSearch appends a record, assigning its ID and Timestamp.
	CreateSearch(ctx context.Context, record *SearchRecord) error

	// FindSearches retrieves records matching the filter, newest first.
	FindSearches(ctx context.Context, filter SearchFilter) ([]*SearchRecord, error)

	// DeleteSearches removes every record and returns how many were removed.
	DeleteSearches(ctx context.Context) (int, error)
}

// SearchFilter represents a filter for FindSearches.
// A zero Limit returns all matching records.
type SearchFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
