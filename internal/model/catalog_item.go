package model

// CatalogItem is a product entry from the external read-only feed.  Only the
// fields rendered by the shop section are decoded; the feed may carry more.
type CatalogItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}
