package analyze

import "github.com/fwojciec/dealscout"

// Class names recognized on product pages.
const (
	ClassProductName     = "product-name"
	ClassPrice           = "price"
	ClassSimilarProducts = "similar-products"
	ClassProduct         = "product"
)

// ExtractProduct returns the name and price of the page's primary product.
//
// Both come from the first element carrying the matching class anywhere in
// the document. The price lookup is not scoped to the product, so a page
// that lists another price first reports that one.
func ExtractProduct(doc dealscout.Document) dealscout.ProductInfo {
	var info dealscout.ProductInfo
	if el := doc.Find("", ClassProductName); el != nil {
		info.Name = el.Text()
	}
	if el := doc.Find("", ClassPrice); el != nil {
		info.Price = el.Text()
	}
	return info
}
