package domain

import "time"

type TopProduct struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// SellerReport é a linha final do relatório de desempenho de um vendedor
type SellerReport struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

const (
	ReportSourceRequest  = "request"
	ReportSourceDatabase = "database"
	ReportSourceFile     = "file"
)

// SellerPerformanceReport envolve o resultado de uma execução da análise
type SellerPerformanceReport struct {
	ID          string         `json:"id"`
	Source      string         `json:"source"`
	GeneratedAt time.Time      `json:"generated_at"`
	Sellers     []SellerReport `json:"sellers"`
}
