package analyzing

import "github.com/vfg2006/sales-performance-api/internal/domain"

// SellerStat acumula os totais de um vendedor durante a agregação
type SellerStat struct {
	ID           string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold map[string]int

	// ordem do primeiro registro de cada SKU, usada no desempate do top de produtos
	skuOrder []string
}

func newSellerStat(seller domain.Seller) *SellerStat {
	return &SellerStat{
		ID:           seller.ID,
		Name:         seller.FullName(),
		ProductsSold: make(map[string]int),
	}
}

func (s *SellerStat) addRecord(record domain.PurchaseRecord) {
	s.SalesCount++
	s.Revenue += record.TotalAmount
}

func (s *SellerStat) addItem(item domain.PurchaseItem, profit float64) {
	s.Profit += profit

	if _, exists := s.ProductsSold[item.SKU]; !exists {
		s.ProductsSold[item.SKU] = 0
		s.skuOrder = append(s.skuOrder, item.SKU)
	}
	s.ProductsSold[item.SKU] += item.Quantity
}

// SellerStats guarda os acumuladores indexados por ID, preservando a ordem de entrada
type SellerStats struct {
	ordered []*SellerStat
	byID    map[string]*SellerStat
}

// Get retorna o acumulador do vendedor
func (s *SellerStats) Get(sellerID string) (*SellerStat, bool) {
	stat, ok := s.byID[sellerID]
	return stat, ok
}

// All retorna os acumuladores na ordem em que os vendedores foram informados
func (s *SellerStats) All() []*SellerStat {
	return s.ordered
}

func (s *SellerStats) Len() int {
	return len(s.ordered)
}

// Aggregate percorre os cheques na ordem de entrada e acumula receita, lucro,
// quantidade de vendas e unidades por SKU de cada vendedor.
// Vendedor ou SKU desconhecido interrompe a agregação com ReferentialIntegrityError.
func Aggregate(dataset *Dataset, revenue RevenueCalculator) (*SellerStats, error) {
	stats := &SellerStats{
		ordered: make([]*SellerStat, 0, len(dataset.Sellers)),
		byID:    make(map[string]*SellerStat, len(dataset.Sellers)),
	}

	for _, seller := range dataset.Sellers {
		stat := newSellerStat(seller)
		stats.ordered = append(stats.ordered, stat)
		stats.byID[seller.ID] = stat
	}

	productIndex := make(map[string]domain.Product, len(dataset.Products))
	for _, product := range dataset.Products {
		productIndex[product.SKU] = product
	}

	for recordIndex, record := range dataset.PurchaseRecords {
		seller, exists := stats.byID[record.SellerID]
		if !exists {
			return nil, newUnknownSellerError(record.SellerID, recordIndex)
		}

		seller.addRecord(record)

		for itemIndex, item := range record.Items {
			product, exists := productIndex[item.SKU]
			if !exists {
				return nil, newUnknownProductError(item.SKU, recordIndex, itemIndex)
			}

			seller.addItem(item, CalculateProfit(item, product, revenue))
		}
	}

	return stats, nil
}
