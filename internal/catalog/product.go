package catalog

// Product is the catalog record. The JSON shape is the persisted slot shape,
// so tags follow the stored documents (camelCase, discount optional).
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	Discount      int     `json:"discount,omitempty"`
	Description   string  `json:"description"`
}
