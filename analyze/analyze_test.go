package analyze_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/fwojciec/dealscout"
	"github.com/fwojciec/dealscout/analyze"
	"github.com/fwojciec/dealscout/goquery"
	"github.com/fwojciec/dealscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productHTML = `
<div class="product">
	<h1 class="product-name">Test Product</h1>
	<span class="price">$99.99</span>
	<div class="description">A great product</div>
</div>`

const similarHTML = `
<div class="product">
	<h1 class="product-name">Test Product</h1>
	<span class="price">$99.99</span>
	<div class="similar-products">
		<div class="product">
			<a href="/product1">Similar Product 1</a>
			<span class="price">$89.99</span>
		</div>
		<div class="product">
			<a href="/product2">Similar Product 2</a>
			<span class="price">$79.99</span>
		</div>
	</div>
</div>`

// staticFetcher returns a fetcher that always answers with status and body.
func staticFetcher(status int, body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (*dealscout.FetchResponse, error) {
			return &dealscout.FetchResponse{StatusCode: status, Body: body}, nil
		},
	}
}

func newAnalyzer(fetcher dealscout.Fetcher) *analyze.Analyzer {
	return &analyze.Analyzer{
		Fetcher: fetcher,
		Parser:  goquery.NewParser(),
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("extracts product name and price", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*dealscout.FetchResponse, error) {
				fetchedURL = url
				return &dealscout.FetchResponse{StatusCode: http.StatusOK, Body: productHTML}, nil
			},
		}

		result, err := newAnalyzer(fetcher).Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.Equal(t, "http://example.com/product", fetchedURL)
		assert.Empty(t, result.Error)
		assert.Equal(t, "Test Product", result.ProductInfo.Name)
		assert.Equal(t, "$99.99", result.ProductInfo.Price)
		assert.NotNil(t, result.SimilarProducts)
		assert.NotNil(t, result.UpcomingSales)
		assert.Empty(t, result.UpcomingSales)
	})

	t.Run("reports unreachable page for non-200 status", func(t *testing.T) {
		t.Parallel()

		result, err := newAnalyzer(staticFetcher(http.StatusNotFound, productHTML)).Analyze(context.Background(), "http://example.com/nonexistent")

		require.NoError(t, err)
		assert.Equal(t, "Failed to fetch product page", result.Error)
		assert.Empty(t, result.ProductInfo.Name)
		assert.Empty(t, result.SimilarProducts)
	})

	t.Run("reports fetch failure with cause on transport error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*dealscout.FetchResponse, error) {
				return nil, errors.New("Network error")
			},
		}

		result, err := newAnalyzer(fetcher).Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.Contains(t, result.Error, "Failed to fetch product page")
		assert.Equal(t, "Failed to fetch product page: Network error", result.Error)
		assert.Empty(t, result.ProductInfo)
		assert.Empty(t, result.SimilarProducts)
	})

	t.Run("reports parse failure when no product name exists", func(t *testing.T) {
		t.Parallel()

		result, err := newAnalyzer(staticFetcher(http.StatusOK, "<div>Invalid product page</div>")).Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.Equal(t, "Failed to parse product information", result.Error)
		assert.Empty(t, result.ProductInfo)
	})

	t.Run("reports parse failure even when similar products exist", func(t *testing.T) {
		t.Parallel()

		html := `<div class="similar-products">
	<div class="product"><a href="/product1">Similar Product 1</a></div>
</div>
<a href="http://x.com/product/1">Shoe A</a>`

		result, err := newAnalyzer(staticFetcher(http.StatusOK, html)).Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.Equal(t, "Failed to parse product information", result.Error)
		assert.Empty(t, result.SimilarProducts)
	})

	t.Run("treats whitespace-only product name as missing", func(t *testing.T) {
		t.Parallel()

		html := `<h1 class="product-name">   </h1><span class="price">$10</span>`

		result, err := newAnalyzer(staticFetcher(http.StatusOK, html)).Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.Equal(t, "Failed to parse product information", result.Error)
		assert.Empty(t, result.ProductInfo.Price)
	})

	t.Run("extracts similar products from container", func(t *testing.T) {
		t.Parallel()

		result, err := newAnalyzer(staticFetcher(http.StatusOK, similarHTML)).Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		require.Len(t, result.SimilarProducts, 2)
		assert.Equal(t, dealscout.SimilarProduct{
			Name:  "Similar Product 1",
			URL:   "/product1",
			Price: "$89.99",
		}, result.SimilarProducts[0])
		assert.Equal(t, "Similar Product 2", result.SimilarProducts[1].Name)
		assert.Equal(t, "$79.99", result.SimilarProducts[1].Price)
	})

	t.Run("succeeds with empty similar products", func(t *testing.T) {
		t.Parallel()

		result, err := newAnalyzer(staticFetcher(http.StatusOK, productHTML)).Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.False(t, result.Failed())
		assert.Empty(t, result.SimilarProducts)

		data, err := json.Marshal(result)
		require.NoError(t, err)
		assert.NotContains(t, string(data), `"error"`)
		assert.Contains(t, string(data), `"similar_products":[]`)
	})

	t.Run("returns byte-identical results for identical pages", func(t *testing.T) {
		t.Parallel()

		html := `<h1 class="product-name">Runner</h1>
<a href="/product/a">Shoe A</a>
<a href="/product/b">Shoe B</a>
<a href="/product/a">Shoe A again</a>
<a href="/product/c">Shoe C</a>`
		a := newAnalyzer(staticFetcher(http.StatusOK, html))

		first, err := a.Analyze(context.Background(), "http://example.com/product")
		require.NoError(t, err)
		second, err := a.Analyze(context.Background(), "http://example.com/product")
		require.NoError(t, err)

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, secondJSON)
		assert.Equal(t, analyze.Fingerprint(first), analyze.Fingerprint(second))
	})

	t.Run("reports parser error as fetch failure", func(t *testing.T) {
		t.Parallel()

		a := &analyze.Analyzer{
			Fetcher: staticFetcher(http.StatusOK, productHTML),
			Parser: &mock.Parser{
				ParseFn: func(string) (dealscout.Document, error) {
					return nil, errors.New("bad markup")
				},
			},
		}

		result, err := a.Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.Equal(t, "Failed to fetch product page: bad markup", result.Error)
	})

	t.Run("recovers from panic in the pipeline", func(t *testing.T) {
		t.Parallel()

		a := &analyze.Analyzer{
			Fetcher: staticFetcher(http.StatusOK, productHTML),
			Parser: &mock.Parser{
				ParseFn: func(string) (dealscout.Document, error) {
					return &mock.Document{
						FindFn: func(tag, class string) dealscout.Element {
							panic("unexpected node")
						},
					}, nil
				},
			},
		}

		result, err := a.Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Failed to fetch product page: unexpected node", result.Error)
		assert.Empty(t, result.ProductInfo)
		assert.Empty(t, result.SimilarProducts)
	})

	t.Run("waits on rate limiter with URL host before fetching", func(t *testing.T) {
		t.Parallel()

		var waitedOn string
		fetched := false
		a := &analyze.Analyzer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (*dealscout.FetchResponse, error) {
					fetched = true
					return &dealscout.FetchResponse{StatusCode: http.StatusOK, Body: productHTML}, nil
				},
			},
			Parser: goquery.NewParser(),
			RateLimiter: &mock.RateLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					waitedOn = domain
					return nil
				},
			},
		}

		_, err := a.Analyze(context.Background(), "https://shop.example.com/product/42?color=red")

		require.NoError(t, err)
		assert.Equal(t, "shop.example.com", waitedOn)
		assert.True(t, fetched)
	})

	t.Run("reports rate limiter failure as fetch failure without fetching", func(t *testing.T) {
		t.Parallel()

		a := &analyze.Analyzer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (*dealscout.FetchResponse, error) {
					t.Fatal("fetch should not be called")
					return nil, nil
				},
			},
			Parser: goquery.NewParser(),
			RateLimiter: &mock.RateLimiter{
				WaitFn: func(_ context.Context, _ string) error {
					return context.Canceled
				},
			},
		}

		result, err := a.Analyze(context.Background(), "http://example.com/product")

		require.NoError(t, err)
		assert.Equal(t, "Failed to fetch product page: context canceled", result.Error)
	})
}
