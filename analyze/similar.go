package analyze

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/dealscout"
)

// MaxFallbackProducts caps the links collected by the whole-page fallback scan.
const MaxFallbackProducts = 5

// minLinkTextLen is the exclusive lower bound on fallback link text length.
const minLinkTextLen = 2

// excludedLinkTerms mark social, account and cart links.
var excludedLinkTerms = []string{
	"facebook",
	"twitter",
	"instagram",
	"pinterest",
	"cart",
	"login",
	"signup",
}

// ExtractSimilarProducts returns the page's related product links in
// document order.
//
// Items listed inside a similar-products container win. Only when that
// yields nothing is every anchor on the page scanned for product-looking
// links.
func ExtractSimilarProducts(doc dealscout.Document) []dealscout.SimilarProduct {
	if products := containerProducts(doc); len(products) > 0 {
		return products
	}
	return fallbackProducts(doc)
}

// containerProducts reads the .product items of the first .similar-products
// element. Items without a named link are skipped.
func containerProducts(doc dealscout.Document) []dealscout.SimilarProduct {
	container := doc.Find("", ClassSimilarProducts)
	if container == nil {
		return nil
	}

	var products []dealscout.SimilarProduct
	for _, item := range container.FindAll("", ClassProduct) {
		link := item.Find("a", "")
		if link == nil {
			continue
		}
		name := link.Text()
		if name == "" {
			continue
		}
		href, _ := link.Attr("href")

		price := dealscout.PriceNotAvailable
		if el := item.Find("", ClassPrice); el != nil && el.Text() != "" {
			price = el.Text()
		}

		products = append(products, dealscout.SimilarProduct{
			Name:  name,
			URL:   href,
			Price: price,
		})
	}
	return products
}

// fallbackProducts scans all anchors for product links, keeping the first
// MaxFallbackProducts distinct hrefs.
func fallbackProducts(doc dealscout.Document) []dealscout.SimilarProduct {
	seen := make(map[string]struct{})
	var products []dealscout.SimilarProduct

	for _, a := range doc.Anchors() {
		href, _ := a.Attr("href")
		if !IsProductLink(href) {
			continue
		}
		name := a.Text()
		if utf8.RuneCountInString(name) <= minLinkTextLen {
			continue
		}
		if _, ok := seen[href]; ok {
			continue
		}
		seen[href] = struct{}{}

		products = append(products, dealscout.SimilarProduct{Name: name, URL: href})
		if len(products) >= MaxFallbackProducts {
			break
		}
	}
	return products
}

// IsProductLink reports whether href looks like a product page link: it
// mentions "product" in any case and none of the excluded terms.
func IsProductLink(href string) bool {
	lower := strings.ToLower(href)
	if !strings.Contains(lower, "product") {
		return false
	}
	for _, term := range excludedLinkTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
