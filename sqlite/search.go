package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/dealscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ dealscout.SearchService = (*SearchService)(nil)

// SearchService implements dealscout.SearchService using SQLite.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// CreateSearch appends a search to the history.
func (s *SearchService) CreateSearch(ctx context.Context, record *dealscout.SearchRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.Timestamp = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, url, product_name, product_price, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.URL, record.ProductInfo.Name, record.ProductInfo.Price, record.Fingerprint,
		record.Timestamp.Format(timestampFormat))

	return err
}

// FindSearches retrieves searches matching the filter, newest first.
func (s *SearchService) FindSearches(ctx context.Context, filter dealscout.SearchFilter) ([]*dealscout.SearchRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, product_name, product_price, fingerprint, created_at FROM searches WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	// rowid breaks ties between records created within the same instant.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*dealscout.SearchRecord
	for rows.Next() {
		var record dealscout.SearchRecord
		var createdAt string

		if err := rows.Scan(&record.ID, &record.URL, &record.ProductInfo.Name, &record.ProductInfo.Price,
			&record.Fingerprint, &createdAt); err != nil {
			return nil, err
		}

		if record.Timestamp, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// DeleteSearches removes the whole history and returns the number of
// searches removed.
func (s *SearchService) DeleteSearches(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM searches")
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}
