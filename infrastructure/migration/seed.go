// Package migration cria o schema de vendas e carrega datasets JSON no PostgreSQL
package migration

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// Linhas por INSERT; mantém o total de parâmetros abaixo do limite do PostgreSQL
const batchSize = 500

// load_order guarda a posição no dataset carregado; o ranking desempata vendedores por ela.
// Valores monetários usam DOUBLE PRECISION para reproduzir o cálculo em memória sem truncar casas.
const schema = `
CREATE TABLE IF NOT EXISTS sellers (
	id          VARCHAR(64) PRIMARY KEY,
	load_order  INTEGER NOT NULL DEFAULT 0,
	first_name  VARCHAR(255) NOT NULL,
	last_name   VARCHAR(255) NOT NULL,
	start_date  VARCHAR(32),
	position    VARCHAR(255)
);

CREATE TABLE IF NOT EXISTS products (
	sku            VARCHAR(64) PRIMARY KEY,
	load_order     INTEGER NOT NULL DEFAULT 0,
	purchase_price DOUBLE PRECISION NOT NULL,
	name           VARCHAR(255),
	category       VARCHAR(255),
	retail_price   DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS purchase_records (
	receipt_id     VARCHAR(64) PRIMARY KEY,
	load_order     INTEGER NOT NULL DEFAULT 0,
	date           VARCHAR(32),
	seller_id      VARCHAR(64) NOT NULL,
	customer_id    VARCHAR(64),
	total_discount DOUBLE PRECISION,
	total_amount   DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS purchase_record_items (
	receipt_id  VARCHAR(64) NOT NULL REFERENCES purchase_records (receipt_id) ON DELETE CASCADE,
	line_number INTEGER NOT NULL,
	sku         VARCHAR(64) NOT NULL,
	quantity    INTEGER NOT NULL,
	sale_price  DOUBLE PRECISION NOT NULL,
	discount    DOUBLE PRECISION NOT NULL DEFAULT 0,
	PRIMARY KEY (receipt_id, line_number)
);

ALTER TABLE sellers ADD COLUMN IF NOT EXISTS load_order INTEGER NOT NULL DEFAULT 0;
ALTER TABLE products ADD COLUMN IF NOT EXISTS load_order INTEGER NOT NULL DEFAULT 0;
ALTER TABLE purchase_records ADD COLUMN IF NOT EXISTS load_order INTEGER NOT NULL DEFAULT 0;
ALTER TABLE products
	ALTER COLUMN purchase_price TYPE DOUBLE PRECISION,
	ALTER COLUMN retail_price TYPE DOUBLE PRECISION;
ALTER TABLE purchase_records
	ALTER COLUMN total_discount TYPE DOUBLE PRECISION,
	ALTER COLUMN total_amount TYPE DOUBLE PRECISION;
ALTER TABLE purchase_record_items
	ALTER COLUMN sale_price TYPE DOUBLE PRECISION,
	ALTER COLUMN discount TYPE DOUBLE PRECISION;
`

// Não há FK de seller_id e sku: referências quebradas devem chegar à análise para serem reportadas
const truncateAll = `TRUNCATE purchase_record_items, purchase_records, products, sellers`

type SeedResult struct {
	Sellers         int
	Products        int
	PurchaseRecords int
	Items           int
	GeneratedIDs    int // Cheques sem receipt_id que receberam um ID gerado
}

// CreateSchema cria as tabelas lidas pelo repositório de dataset
func CreateSchema(ctx context.Context, q postgres.Queryer) error {
	if _, err := q.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "erro ao criar schema de vendas")
	}
	return nil
}

// Seed substitui o conteúdo das tabelas de vendas pelo dataset informado em uma única transação
func Seed(ctx context.Context, conn postgres.Conn, dataset *analyzing.Dataset) (*SeedResult, error) {
	startTime := time.Now()

	if err := analyzing.Validate(dataset); err != nil {
		return nil, err
	}

	records, generated, err := withReceiptIDs(dataset.PurchaseRecords)
	if err != nil {
		return nil, err
	}

	statements := make([]squirrel.InsertBuilder, 0)
	statements = append(statements, sellersInsert(dataset.Sellers)...)
	statements = append(statements, productsInsert(dataset.Products)...)
	statements = append(statements, recordsInsert(records)...)
	statements = append(statements, itemsInsert(records)...)

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, truncateAll); err != nil {
			return errors.Wrap(err, "erro ao limpar tabelas de vendas")
		}

		for _, stmt := range statements {
			query, args, err := stmt.ToSql()
			if err != nil {
				return errors.Wrap(err, "erro ao construir insert")
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrap(err, "erro ao inserir dados de vendas")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SeedResult{
		Sellers:         len(dataset.Sellers),
		Products:        len(dataset.Products),
		PurchaseRecords: len(records),
		Items:           countItems(records),
		GeneratedIDs:    generated,
	}

	logrus.WithFields(logrus.Fields{
		"sellers":          result.Sellers,
		"products":         result.Products,
		"purchase_records": result.PurchaseRecords,
		"items":            result.Items,
		"generated_ids":    result.GeneratedIDs,
		"elapsed":          time.Since(startTime).String(),
	}).Info("Carga do dataset de vendas concluída")

	return result, nil
}

// withReceiptIDs devolve uma cópia dos cheques garantindo um receipt_id único para cada um
func withReceiptIDs(records []domain.PurchaseRecord) ([]domain.PurchaseRecord, int, error) {
	out := make([]domain.PurchaseRecord, len(records))
	seen := make(map[string]bool, len(records))
	generated := 0

	for i, record := range records {
		if record.ReceiptID == "" || seen[record.ReceiptID] {
			id, err := utils.GenerateReceiptID()
			if err != nil {
				return nil, 0, errors.Wrap(err, "erro ao gerar receipt_id")
			}
			record.ReceiptID = id
			generated++
		}
		seen[record.ReceiptID] = true
		out[i] = record
	}

	return out, generated, nil
}

func sellersInsert(sellers []domain.Seller) []squirrel.InsertBuilder {
	return batched(len(sellers), func() squirrel.InsertBuilder {
		return squirrel.Insert("sellers").Columns("id", "load_order", "first_name", "last_name", "start_date", "position")
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		s := sellers[i]
		return b.Values(s.ID, i, s.FirstName, s.LastName, nullString(s.StartDate), nullString(s.Position))
	})
}

func productsInsert(products []domain.Product) []squirrel.InsertBuilder {
	return batched(len(products), func() squirrel.InsertBuilder {
		return squirrel.Insert("products").Columns("sku", "load_order", "purchase_price", "name", "category", "retail_price")
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		p := products[i]
		return b.Values(p.SKU, i, p.PurchasePrice, nullString(p.Name), nullString(p.Category), p.RetailPrice)
	})
}

func recordsInsert(records []domain.PurchaseRecord) []squirrel.InsertBuilder {
	return batched(len(records), func() squirrel.InsertBuilder {
		return squirrel.Insert("purchase_records").
			Columns("receipt_id", "load_order", "date", "seller_id", "customer_id", "total_discount", "total_amount")
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		r := records[i]
		return b.Values(r.ReceiptID, i, nullString(r.Date), r.SellerID, nullString(r.CustomerID), r.TotalDiscount, r.TotalAmount)
	})
}

type itemRow struct {
	receiptID string
	line      int
	item      domain.PurchaseItem
}

func itemsInsert(records []domain.PurchaseRecord) []squirrel.InsertBuilder {
	rows := make([]itemRow, 0, countItems(records))
	for _, record := range records {
		for line, item := range record.Items {
			rows = append(rows, itemRow{receiptID: record.ReceiptID, line: line, item: item})
		}
	}

	return batched(len(rows), func() squirrel.InsertBuilder {
		return squirrel.Insert("purchase_record_items").
			Columns("receipt_id", "line_number", "sku", "quantity", "sale_price", "discount")
	}, func(b squirrel.InsertBuilder, i int) squirrel.InsertBuilder {
		r := rows[i]
		return b.Values(r.receiptID, r.line, r.item.SKU, r.item.Quantity, r.item.SalePrice, r.item.Discount)
	})
}

func batched(
	total int,
	newBuilder func() squirrel.InsertBuilder,
	addRow func(squirrel.InsertBuilder, int) squirrel.InsertBuilder,
) []squirrel.InsertBuilder {
	builders := make([]squirrel.InsertBuilder, 0, total/batchSize+1)

	for start := 0; start < total; start += batchSize {
		end := min(start+batchSize, total)

		b := newBuilder().PlaceholderFormat(squirrel.Dollar)
		for i := start; i < end; i++ {
			b = addRow(b, i)
		}
		builders = append(builders, b)
	}

	return builders
}

func countItems(records []domain.PurchaseRecord) int {
	total := 0
	for _, record := range records {
		total += len(record.Items)
	}
	return total
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
