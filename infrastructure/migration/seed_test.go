package migration

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestWithReceiptIDs(t *testing.T) {
	records := []domain.PurchaseRecord{
		{ReceiptID: "receipt_1", SellerID: "seller_1"},
		{SellerID: "seller_2"},
		{ReceiptID: "receipt_1", SellerID: "seller_3"},
	}

	out, generated, err := withReceiptIDs(records)
	require.NoError(t, err)

	assert.Equal(t, 2, generated)
	assert.Equal(t, "receipt_1", out[0].ReceiptID)
	assert.True(t, strings.HasPrefix(out[1].ReceiptID, "rcpt_"))
	assert.True(t, strings.HasPrefix(out[2].ReceiptID, "rcpt_"))
	assert.NotEqual(t, out[1].ReceiptID, out[2].ReceiptID)

	// A entrada recebida não é alterada
	assert.Equal(t, "", records[1].ReceiptID)
}

func TestSellersInsert(t *testing.T) {
	builders := sellersInsert([]domain.Seller{
		{ID: "seller_1", FirstName: "Ana", LastName: "Souza", Position: "Gerente"},
		{ID: "seller_2", FirstName: "Bruno", LastName: "Lima"},
	})
	require.Len(t, builders, 1)

	query, args, err := builders[0].ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO sellers (id,load_order,first_name,last_name,start_date,position) VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12)",
		query,
	)
	assert.Len(t, args, 12)
	assert.Equal(t, "seller_1", args[0])
	assert.Equal(t, 0, args[1])
	assert.Equal(t, "seller_2", args[6])
	assert.Equal(t, 1, args[7])
}

func TestRecordsInsert_LoadOrderAcrossBatches(t *testing.T) {
	records := make([]domain.PurchaseRecord, batchSize+2)
	for i := range records {
		records[i] = domain.PurchaseRecord{ReceiptID: fmt.Sprintf("receipt_%d", i), SellerID: "seller_1", TotalAmount: 1}
	}

	builders := recordsInsert(records)
	require.Len(t, builders, 2)

	query, args, err := builders[1].ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO purchase_records (receipt_id,load_order,date,seller_id,customer_id,total_discount,total_amount)"))
	require.Len(t, args, 14)
	assert.Equal(t, fmt.Sprintf("receipt_%d", batchSize), args[0])
	assert.Equal(t, batchSize, args[1])
	assert.Equal(t, batchSize+1, args[8])
}

func TestSchema_KeepsFloatPrecision(t *testing.T) {
	assert.NotContains(t, schema, "NUMERIC")
	assert.Contains(t, schema, "sale_price  DOUBLE PRECISION NOT NULL")
	assert.Contains(t, schema, "ADD COLUMN IF NOT EXISTS load_order")
}

func TestItemsInsert(t *testing.T) {
	builders := itemsInsert([]domain.PurchaseRecord{
		{
			ReceiptID: "receipt_1",
			Items: []domain.PurchaseItem{
				{SKU: "SKU_001", Quantity: 2, SalePrice: 10},
				{SKU: "SKU_002", Quantity: 1, SalePrice: 5, Discount: 10},
			},
		},
		{ReceiptID: "receipt_2", Items: []domain.PurchaseItem{}},
	})
	require.Len(t, builders, 1)

	query, args, err := builders[0].ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO purchase_record_items (receipt_id,line_number,sku,quantity,sale_price,discount)"))
	assert.Equal(t, []interface{}{
		"receipt_1", 0, "SKU_001", 2, 10.0, 0.0,
		"receipt_1", 1, "SKU_002", 1, 5.0, 10.0,
	}, args)
}

func TestBatched(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		wantBatch int
	}{
		{name: "Sem linhas", total: 0, wantBatch: 0},
		{name: "Um lote incompleto", total: 10, wantBatch: 1},
		{name: "Lote exato", total: batchSize, wantBatch: 1},
		{name: "Dois lotes", total: batchSize + 1, wantBatch: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := make([]domain.Product, tt.total)
			for i := range products {
				products[i] = domain.Product{SKU: "SKU", PurchasePrice: 1}
			}

			assert.Len(t, productsInsert(products), tt.wantBatch)
		})
	}
}
