package analyzing

import "github.com/vfg2006/sales-performance-api/internal/domain"

// Analyze executa o pipeline completo: Validate → Aggregate → Rank.
// Em caso de erro nenhum relatório parcial é retornado.
func Analyze(dataset *Dataset, opts *Options) ([]domain.SellerReport, error) {
	if err := Validate(dataset); err != nil {
		return nil, err
	}

	options := opts.withDefaults()

	stats, err := Aggregate(dataset, options.CalculateRevenue)
	if err != nil {
		return nil, err
	}

	return Rank(stats, options.CalculateBonus, options.TopProductsLimit), nil
}
