// Package analyzing implementa o pipeline de análise de desempenho dos vendedores:
// validação da entrada, acumulação por vendedor, ranking por lucro e cálculo de bônus.
//
// O pacote é puro: não faz I/O, não registra logs e não guarda estado entre chamadas.
package analyzing

import "github.com/vfg2006/sales-performance-api/internal/domain"

// DefaultTopProductsLimit é a quantidade máxima de produtos no top de cada vendedor
const DefaultTopProductsLimit = 10

// Dataset agrupa as três coleções de entrada da análise.
// Uma coleção nil é tratada como ausente; uma coleção vazia, como vazia.
type Dataset struct {
	Sellers         []domain.Seller         `json:"sellers"`
	Products        []domain.Product        `json:"products"`
	PurchaseRecords []domain.PurchaseRecord `json:"purchase_records"`
}

// RevenueCalculator calcula a receita de um item do cheque
type RevenueCalculator func(item domain.PurchaseItem, product domain.Product) float64

// BonusCalculator calcula o bônus do vendedor na posição index de total
type BonusCalculator func(index, total int, stat *SellerStat) float64

// Options permite trocar as estratégias de cálculo. Campos zerados usam o padrão.
type Options struct {
	CalculateRevenue RevenueCalculator
	CalculateBonus   BonusCalculator
	TopProductsLimit int
}

func (o *Options) withDefaults() Options {
	resolved := Options{
		CalculateRevenue: CalculateSimpleRevenue,
		CalculateBonus:   CalculateBonusByProfit,
		TopProductsLimit: DefaultTopProductsLimit,
	}

	if o == nil {
		return resolved
	}

	if o.CalculateRevenue != nil {
		resolved.CalculateRevenue = o.CalculateRevenue
	}
	if o.CalculateBonus != nil {
		resolved.CalculateBonus = o.CalculateBonus
	}
	if o.TopProductsLimit > 0 {
		resolved.TopProductsLimit = o.TopProductsLimit
	}

	return resolved
}
