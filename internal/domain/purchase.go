package domain

// PurchaseItem é uma linha do cheque: um produto vendido com preço e desconto
type PurchaseItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"` // Percentual de 0 a 100
}

// PurchaseRecord representa um cheque de venda atribuído a um vendedor.
// TotalAmount é informado pela origem e não é recalculado a partir dos itens.
type PurchaseRecord struct {
	ReceiptID     string         `json:"receipt_id,omitempty"`
	Date          string         `json:"date,omitempty"`
	SellerID      string         `json:"seller_id"`
	CustomerID    string         `json:"customer_id,omitempty"`
	Items         []PurchaseItem `json:"items"`
	TotalDiscount float64        `json:"total_discount,omitempty"`
	TotalAmount   float64        `json:"total_amount"`
}
