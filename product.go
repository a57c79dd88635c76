package dealscout

import (
	"context"
	"encoding/json"
	"time"
)

// PriceNotAvailable is the price recorded for a similar product whose
// container carries no price element.
const PriceNotAvailable = "N/A"

// Fixed messages reported in AnalysisResult.Error.
const (
	MsgFetchFailed = "Failed to fetch product page"
	MsgParseFailed = "Failed to parse product information"
)

// ProductInfo holds the primary product of a page.
// An empty Name means no product could be recognized.
type ProductInfo struct {
	Name  string `json:"name,omitempty"`
	Price string `json:"price,omitempty"`
}

// SimilarProduct is a related item linked from a product page.
type SimilarProduct struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Price string `json:"price,omitempty"`
}

// UpcomingSale is reserved for sale monitoring. No analyzer produces one yet.
type UpcomingSale struct {
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	StartsAt time.Time `json:"startsAt"`
}

// AnalysisResult is the outcome of analyzing a product URL.
// When Error is set, ProductInfo and SimilarProducts are always empty.
type AnalysisResult struct {
	ProductInfo     ProductInfo      `json:"product_info"`
	SimilarProducts []SimilarProduct `json:"similar_products"`
	UpcomingSales   []UpcomingSale   `json:"upcoming_sales"`
	Error           string           `json:"error,omitempty"`
}

// NewAnalysisResult returns a successful result.
func NewAnalysisResult(info ProductInfo, similar []SimilarProduct) *AnalysisResult {
	if similar == nil {
		similar = []SimilarProduct{}
	}
	return &AnalysisResult{
		ProductInfo:     info,
		SimilarProducts: similar,
		UpcomingSales:   []UpcomingSale{},
	}
}

// NewErrorResult returns a failed result carrying the message of err.
func NewErrorResult(err error) *AnalysisResult {
	return &AnalysisResult{
		SimilarProducts: []SimilarProduct{},
		UpcomingSales:   []UpcomingSale{},
		Error:           ErrorMessage(err),
	}
}

// Failed reports whether the analysis ended in an error.
func (r *AnalysisResult) Failed() bool {
	return r.Error != ""
}

// MarshalJSON encodes nil slices as empty arrays.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type alias AnalysisResult
	a := alias(r)
	if a.SimilarProducts == nil {
		a.SimilarProducts = []SimilarProduct{}
	}
	if a.UpcomingSales == nil {
		a.UpcomingSales = []UpcomingSale{}
	}
	return json.Marshal(a)
}

// Analyzer analyzes product pages.
type Analyzer interface {
	// Analyze fetches the page at url and extracts the product and its
	// similar items. Page-level failures are reported in the result's
	// Error field; the returned error is reserved for failures of the
	// analyzer itself.
	Analyze(ctx context.Context, url string) (*AnalysisResult, error)
}
