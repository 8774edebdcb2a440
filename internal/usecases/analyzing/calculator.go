package analyzing

import "github.com/vfg2006/sales-performance-api/internal/domain"

const (
	bonusTopPercent    = 0.15
	bonusPodiumPercent = 0.10
	bonusLastPercent   = 0.0
	bonusBasePercent   = 0.05
)

// CalculateSimpleRevenue calcula a receita do item com desconto percentual (0 a 100).
// Descontos fora da faixa não são validados.
func CalculateSimpleRevenue(item domain.PurchaseItem, _ domain.Product) float64 {
	return item.SalePrice * float64(item.Quantity) * (1 - item.Discount/100)
}

// CalculateCost calcula o custo do item pelo preço de compra do produto
func CalculateCost(item domain.PurchaseItem, product domain.Product) float64 {
	return product.PurchasePrice * float64(item.Quantity)
}

// CalculateProfit retorna receita menos custo, sem arredondamento
func CalculateProfit(item domain.PurchaseItem, product domain.Product, revenue RevenueCalculator) float64 {
	return revenue(item, product) - CalculateCost(item, product)
}

// CalculateBonusByProfit aplica o percentual de bônus conforme a posição no ranking.
// As faixas são avaliadas em ordem, então com um único vendedor vale a do primeiro lugar.
func CalculateBonusByProfit(index, total int, stat *SellerStat) float64 {
	percent := bonusBasePercent

	switch {
	case index == 0:
		percent = bonusTopPercent
	case index == 1 || index == 2:
		percent = bonusPodiumPercent
	case index == total-1:
		percent = bonusLastPercent
	}

	return stat.Profit * percent
}
