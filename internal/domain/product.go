package domain

type Product struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"`
	RetailPrice   float64 `json:"retail_price,omitempty"`
}
