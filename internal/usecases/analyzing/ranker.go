package analyzing

import (
	"sort"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// Rank ordena os vendedores por lucro decrescente, calcula o bônus de cada posição
// e monta as linhas finais do relatório com valores arredondados em duas casas.
// Empates de lucro mantêm a ordem de entrada.
func Rank(stats *SellerStats, bonus BonusCalculator, topProductsLimit int) []domain.SellerReport {
	ranked := make([]*SellerStat, stats.Len())
	copy(ranked, stats.All())

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit > ranked[j].Profit
	})

	total := len(ranked)
	reports := make([]domain.SellerReport, 0, total)
	for index, stat := range ranked {
		reports = append(reports, domain.SellerReport{
			SellerID:    stat.ID,
			Name:        stat.Name,
			Revenue:     utils.RoundWithTwoDecimalPlace(stat.Revenue),
			Profit:      utils.RoundWithTwoDecimalPlace(stat.Profit),
			SalesCount:  stat.SalesCount,
			TopProducts: TopProducts(stat, topProductsLimit),
			Bonus:       utils.RoundWithTwoDecimalPlace(bonus(index, total, stat)),
		})
	}

	return reports
}

// TopProducts retorna até limit SKUs do vendedor ordenados por quantidade decrescente.
// Empates ficam na ordem em que o SKU apareceu pela primeira vez.
func TopProducts(stat *SellerStat, limit int) []domain.TopProduct {
	products := make([]domain.TopProduct, 0, len(stat.skuOrder))
	for _, sku := range stat.skuOrder {
		products = append(products, domain.TopProduct{
			SKU:      sku,
			Quantity: stat.ProductsSold[sku],
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}

	return products
}
