// Package analyze implements the product page analysis pipeline: fetch,
// parse, extract the product and its similar items, and classify the
// outcome into a dealscout.AnalysisResult.
package analyze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fwojciec/dealscout"
)

// Ensure Analyzer implements dealscout.Analyzer at compile time.
var _ dealscout.Analyzer = (*Analyzer)(nil)

// Analyzer turns a product URL into an AnalysisResult.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	Fetcher     dealscout.Fetcher
	Parser      dealscout.Parser
	RateLimiter dealscout.RateLimiter // optional
}

// Analyze fetches and analyzes the page at rawURL.
//
// Every failure, including a panic anywhere in the pipeline, is reported
// through the result's Error field. The returned error is always nil.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (result *dealscout.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = dealscout.NewErrorResult(dealscout.Errorf(dealscout.EFETCH, "%s: %v", dealscout.MsgFetchFailed, r))
			err = nil
		}
	}()

	info, similar, err := a.analyze(ctx, rawURL)
	if err != nil {
		return dealscout.NewErrorResult(err), nil
	}
	return dealscout.NewAnalysisResult(info, similar), nil
}

func (a *Analyzer) analyze(ctx context.Context, rawURL string) (dealscout.ProductInfo, []dealscout.SimilarProduct, error) {
	var info dealscout.ProductInfo

	if a.RateLimiter != nil {
		if err := a.RateLimiter.Wait(ctx, domain(rawURL)); err != nil {
			return info, nil, fetchFailed(err)
		}
	}

	resp, err := a.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return info, nil, fetchFailed(err)
	}
	if resp.StatusCode != http.StatusOK {
		return info, nil, dealscout.Errorf(dealscout.EUNREACHABLE, dealscout.MsgFetchFailed)
	}

	doc, err := a.Parser.Parse(resp.Body)
	if err != nil {
		return info, nil, fetchFailed(err)
	}

	info = ExtractProduct(doc)
	similar := ExtractSimilarProducts(doc)

	// Name presence alone decides success; similar products do not rescue a
	// page without one.
	if info.Name == "" {
		return dealscout.ProductInfo{}, nil, dealscout.Errorf(dealscout.EPARSE, dealscout.MsgParseFailed)
	}

	return info, similar, nil
}

func fetchFailed(err error) error {
	return dealscout.Errorf(dealscout.EFETCH, "%s: %v", dealscout.MsgFetchFailed, err)
}

// domain returns the host of rawURL, or rawURL itself when it has none.
func domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
