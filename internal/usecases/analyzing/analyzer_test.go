package analyzing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Sellers: []domain.Seller{
			{ID: "seller_1", FirstName: "Александр", LastName: "Смирнов"},
			{ID: "seller_2", FirstName: "Ana", LastName: "Souza"},
			{ID: "seller_3", FirstName: "Bruno", LastName: "Lima"},
			{ID: "seller_4", FirstName: "Carla", LastName: "Dias"},
		},
		Products: []domain.Product{
			{SKU: "SKU_001", PurchasePrice: 10},
			{SKU: "SKU_002", PurchasePrice: 20},
			{SKU: "SKU_003", PurchasePrice: 5},
		},
		PurchaseRecords: []domain.PurchaseRecord{
			{
				SellerID:    "seller_1",
				TotalAmount: 150,
				Items: []domain.PurchaseItem{
					{SKU: "SKU_001", Quantity: 5, SalePrice: 20, Discount: 0},  // receita 100, custo 50
					{SKU: "SKU_002", Quantity: 1, SalePrice: 50, Discount: 0},  // receita 50, custo 20
				},
			},
			{
				SellerID:    "seller_2",
				TotalAmount: 80,
				Items: []domain.PurchaseItem{
					{SKU: "SKU_003", Quantity: 10, SalePrice: 10, Discount: 20}, // receita 80, custo 50
				},
			},
			{
				SellerID:    "seller_1",
				TotalAmount: 40,
				Items: []domain.PurchaseItem{
					{SKU: "SKU_003", Quantity: 4, SalePrice: 10, Discount: 0}, // receita 40, custo 20
				},
			},
			{
				SellerID:    "seller_3",
				TotalAmount: 25,
				Items: []domain.PurchaseItem{
					{SKU: "SKU_002", Quantity: 1, SalePrice: 25, Discount: 0}, // receita 25, custo 20
				},
			},
		},
	}
}

func TestAnalyze(t *testing.T) {
	reports, err := Analyze(sampleDataset(), nil)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	// seller_1: lucro 50 + 30 + 20 = 100
	assert.Equal(t, "seller_1", reports[0].SellerID)
	assert.Equal(t, "Александр Смирнов", reports[0].Name)
	assert.Equal(t, 190.0, reports[0].Revenue)
	assert.Equal(t, 100.0, reports[0].Profit)
	assert.Equal(t, 2, reports[0].SalesCount)
	assert.Equal(t, 15.0, reports[0].Bonus)
	assert.Equal(t, []domain.TopProduct{
		{SKU: "SKU_001", Quantity: 5},
		{SKU: "SKU_003", Quantity: 4},
		{SKU: "SKU_002", Quantity: 1},
	}, reports[0].TopProducts)

	// seller_2: lucro 30
	assert.Equal(t, "seller_2", reports[1].SellerID)
	assert.Equal(t, 30.0, reports[1].Profit)
	assert.Equal(t, 3.0, reports[1].Bonus)

	// seller_3: lucro 5
	assert.Equal(t, "seller_3", reports[2].SellerID)
	assert.Equal(t, 5.0, reports[2].Profit)
	assert.Equal(t, 0.5, reports[2].Bonus)

	// seller_4 sem vendas fica em último com tudo zerado
	last := reports[3]
	assert.Equal(t, "seller_4", last.SellerID)
	assert.Equal(t, 0.0, last.Revenue)
	assert.Equal(t, 0.0, last.Profit)
	assert.Equal(t, 0, last.SalesCount)
	assert.Equal(t, 0.0, last.Bonus)
	assert.NotNil(t, last.TopProducts)
	assert.Empty(t, last.TopProducts)
}

func TestAnalyze_Completeness(t *testing.T) {
	dataset := sampleDataset()

	reports, err := Analyze(dataset, nil)
	require.NoError(t, err)

	assert.Len(t, reports, len(dataset.Sellers))

	seen := make(map[string]int)
	for _, report := range reports {
		seen[report.SellerID]++
	}
	for _, seller := range dataset.Sellers {
		assert.Equal(t, 1, seen[seller.ID], "vendedor %s deve aparecer uma única vez", seller.ID)
	}
}

func TestAnalyze_RankingMonotonicity(t *testing.T) {
	dataset := &Dataset{
		Products: []domain.Product{{SKU: "SKU_001", PurchasePrice: 1}},
	}
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("seller_%d", i)
		dataset.Sellers = append(dataset.Sellers, domain.Seller{ID: id, FirstName: "Vendedor", LastName: id})
		dataset.PurchaseRecords = append(dataset.PurchaseRecords, domain.PurchaseRecord{
			SellerID:    id,
			TotalAmount: float64(i * 7 % 5),
			Items: []domain.PurchaseItem{
				{SKU: "SKU_001", Quantity: (i*7)%5 + 1, SalePrice: 3},
			},
		})
	}

	reports, err := Analyze(dataset, nil)
	require.NoError(t, err)

	for i := 0; i < len(reports)-1; i++ {
		assert.GreaterOrEqual(t, reports[i].Profit, reports[i+1].Profit)
	}
}

func TestAnalyze_BonusTiers(t *testing.T) {
	tests := []struct {
		name     string
		profits  []float64
		expected []float64
	}{
		{
			name:     "Três vendedores - terceiro lugar fica na faixa de pódio antes da faixa do último",
			profits:  []float64{100, 300, 200},
			expected: []float64{45, 20, 10},
		},
		{
			name:     "Quatro vendedores - último recebe zero",
			profits:  []float64{100, 300, 200, 400},
			expected: []float64{60, 30, 20, 0},
		},
		{
			name:     "Um único vendedor recebe a faixa do primeiro lugar",
			profits:  []float64{500},
			expected: []float64{75},
		},
		{
			name:     "Dois vendedores - segundo recebe a faixa de pódio",
			profits:  []float64{100, 200},
			expected: []float64{30, 10},
		},
		{
			name:     "Seis vendedores - faixa base no meio",
			profits:  []float64{600, 500, 400, 300, 200, 100},
			expected: []float64{90, 50, 40, 15, 10, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := datasetWithProfits(tt.profits)

			reports, err := Analyze(dataset, nil)
			require.NoError(t, err)
			require.Len(t, reports, len(tt.expected))

			for i, report := range reports {
				assert.Equal(t, tt.expected[i], report.Bonus, "posição %d", i)
			}
		})
	}
}

func TestAnalyze_StableTieBreak(t *testing.T) {
	dataset := datasetWithProfits([]float64{100, 100, 100, 100})

	reports, err := Analyze(dataset, nil)
	require.NoError(t, err)

	ids := make([]string, 0, len(reports))
	for _, report := range reports {
		ids = append(ids, report.SellerID)
	}
	assert.Equal(t, []string{"seller_0", "seller_1", "seller_2", "seller_3"}, ids)
	assert.Equal(t, []float64{15, 10, 10, 0}, []float64{reports[0].Bonus, reports[1].Bonus, reports[2].Bonus, reports[3].Bonus})
}

func TestAnalyze_TopProductsCap(t *testing.T) {
	dataset := &Dataset{
		Sellers: []domain.Seller{{ID: "seller_1", FirstName: "Ana", LastName: "Souza"}},
	}

	items := make([]domain.PurchaseItem, 0, 15)
	for i := 1; i <= 15; i++ {
		sku := fmt.Sprintf("SKU_%03d", i)
		dataset.Products = append(dataset.Products, domain.Product{SKU: sku, PurchasePrice: 1})
		items = append(items, domain.PurchaseItem{SKU: sku, Quantity: i, SalePrice: 2})
	}
	dataset.PurchaseRecords = []domain.PurchaseRecord{{SellerID: "seller_1", TotalAmount: 240, Items: items}}

	reports, err := Analyze(dataset, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	top := reports[0].TopProducts
	require.Len(t, top, DefaultTopProductsLimit)
	for i, product := range top {
		assert.Equal(t, fmt.Sprintf("SKU_%03d", 15-i), product.SKU)
		assert.Equal(t, 15-i, product.Quantity)
	}
}

func TestAnalyze_ReferentialIntegrity(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(d *Dataset)
		expectedKey string
		kind        string
	}{
		{
			name: "Cheque com vendedor inexistente",
			mutate: func(d *Dataset) {
				d.PurchaseRecords[2].SellerID = "seller_99"
			},
			expectedKey: "seller_99",
			kind:        ReferenceSeller,
		},
		{
			name: "Item com SKU inexistente",
			mutate: func(d *Dataset) {
				d.PurchaseRecords[1].Items[0].SKU = "SKU_404"
			},
			expectedKey: "SKU_404",
			kind:        ReferenceProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset := sampleDataset()
			tt.mutate(dataset)

			reports, err := Analyze(dataset, nil)

			assert.Nil(t, reports)
			require.Error(t, err)
			assert.True(t, IsReferentialIntegrity(err))

			var refErr *ReferentialIntegrityError
			require.True(t, errors.As(err, &refErr))
			assert.Equal(t, tt.kind, refErr.Kind)
			assert.Equal(t, tt.expectedKey, refErr.Key)
		})
	}
}

func TestAnalyze_InvalidInput(t *testing.T) {
	reports, err := Analyze(&Dataset{
		Sellers:         sampleDataset().Sellers,
		Products:        sampleDataset().Products,
		PurchaseRecords: []domain.PurchaseRecord{},
	}, nil)

	assert.Nil(t, reports)
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsReferentialIntegrity(err))
}

func TestAnalyze_Rounding(t *testing.T) {
	dataset := &Dataset{
		Sellers:  []domain.Seller{{ID: "seller_1", FirstName: "Ana", LastName: "Souza"}},
		Products: []domain.Product{{SKU: "SKU_001", PurchasePrice: 0}},
		PurchaseRecords: []domain.PurchaseRecord{
			{
				SellerID:    "seller_1",
				TotalAmount: 100.0 / 3.0,
				Items: []domain.PurchaseItem{
					{SKU: "SKU_001", Quantity: 1, SalePrice: 10, Discount: 100.0 / 3.0},
				},
			},
		},
	}

	reports, err := Analyze(dataset, nil)
	require.NoError(t, err)

	assert.Equal(t, 33.33, reports[0].Revenue)
	assert.Equal(t, 6.67, reports[0].Profit)
	assert.Equal(t, 1.0, reports[0].Bonus)
}

func TestAnalyze_CustomOptions(t *testing.T) {
	opts := &Options{
		CalculateRevenue: func(item domain.PurchaseItem, _ domain.Product) float64 {
			return item.SalePrice * float64(item.Quantity)
		},
		CalculateBonus: func(index, total int, stat *SellerStat) float64 {
			return float64(total - index)
		},
		TopProductsLimit: 1,
	}

	reports, err := Analyze(sampleDataset(), opts)
	require.NoError(t, err)

	// seller_2 sem desconto: receita 100, custo 50
	assert.Equal(t, "seller_1", reports[0].SellerID)
	assert.Equal(t, 4.0, reports[0].Bonus)
	assert.Len(t, reports[0].TopProducts, 1)
	assert.Equal(t, "seller_2", reports[1].SellerID)
	assert.Equal(t, 50.0, reports[1].Profit)
	assert.Equal(t, 3.0, reports[1].Bonus)
}

// datasetWithProfits monta um vendedor por lucro informado, na mesma ordem
func datasetWithProfits(profits []float64) *Dataset {
	dataset := &Dataset{
		Products: []domain.Product{{SKU: "SKU_001", PurchasePrice: 0}},
	}

	for i, profit := range profits {
		id := fmt.Sprintf("seller_%d", i)
		dataset.Sellers = append(dataset.Sellers, domain.Seller{ID: id, FirstName: "Vendedor", LastName: fmt.Sprint(i)})
		dataset.PurchaseRecords = append(dataset.PurchaseRecords, domain.PurchaseRecord{
			SellerID:    id,
			TotalAmount: profit,
			Items: []domain.PurchaseItem{
				{SKU: "SKU_001", Quantity: 1, SalePrice: profit},
			},
		})
	}

	return dataset
}

func TestAnalyze_RoundsExactBinaryValue(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "1.005 arredonda para baixo", amount: 1.005, expected: 1.00},
		{name: "2.675 arredonda para baixo", amount: 2.675, expected: 2.67},
		{name: "1.045 arredonda para baixo", amount: 1.045, expected: 1.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, err := Analyze(datasetWithProfits([]float64{tt.amount}), nil)

			require.NoError(t, err)
			require.Len(t, reports, 1)
			assert.Equal(t, tt.expected, reports[0].Revenue)
			assert.Equal(t, tt.expected, reports[0].Profit)
		})
	}
}
