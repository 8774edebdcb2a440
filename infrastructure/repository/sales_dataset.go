// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=sales_dataset.go -destination=mocks/sales_dataset.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	sellersTable             = "sellers s"
	productsTable            = "products p"
	purchaseRecordsTable     = "purchase_records pr"
	purchaseRecordItemsTable = "purchase_record_items pri"
)

// SalesDatasetRepository lê as três coleções usadas na análise de desempenho
type SalesDatasetRepository interface {
	ListSellers(ctx context.Context) ([]domain.Seller, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListPurchaseRecords(ctx context.Context) ([]domain.PurchaseRecord, error)
}

type salesDatasetRepository struct {
	conn postgres.Queryer
}

func NewSalesDatasetRepository(conn postgres.Queryer) SalesDatasetRepository {
	return &salesDatasetRepository{
		conn: conn,
	}
}

func (r *salesDatasetRepository) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	query, args, err := sellersQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendedores")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendedores")
	}
	defer rows.Close()

	sellers := make([]domain.Seller, 0)
	for rows.Next() {
		var (
			seller    domain.Seller
			startDate sql.NullString
			position  sql.NullString
		)

		if err := rows.Scan(&seller.ID, &seller.FirstName, &seller.LastName, &startDate, &position); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendedor")
		}

		seller.StartDate = startDate.String
		seller.Position = position.String
		sellers = append(sellers, seller)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendedores")
	}

	return sellers, nil
}

func (r *salesDatasetRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query, args, err := productsQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de produtos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produtos")
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var (
			product     domain.Product
			name        sql.NullString
			category    sql.NullString
			retailPrice sql.NullFloat64
		)

		if err := rows.Scan(&product.SKU, &product.PurchasePrice, &name, &category, &retailPrice); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}

		product.Name = name.String
		product.Category = category.String
		product.RetailPrice = retailPrice.Float64
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de produtos")
	}

	return products, nil
}

// ListPurchaseRecords retorna os cheques na ordem em que foram carregados, com os itens na ordem das linhas
func (r *salesDatasetRepository) ListPurchaseRecords(ctx context.Context) ([]domain.PurchaseRecord, error) {
	records, err := r.listRecords(ctx)
	if err != nil {
		return nil, err
	}

	itemsByReceipt, err := r.listItems(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		items, exists := itemsByReceipt[records[i].ReceiptID]
		if !exists {
			items = []domain.PurchaseItem{}
		}
		records[i].Items = items
	}

	return records, nil
}

func (r *salesDatasetRepository) listRecords(ctx context.Context) ([]domain.PurchaseRecord, error) {
	query, args, err := purchaseRecordsQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de cheques")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar cheques")
	}
	defer rows.Close()

	records := make([]domain.PurchaseRecord, 0)
	for rows.Next() {
		var (
			record        domain.PurchaseRecord
			date          sql.NullString
			customerID    sql.NullString
			totalDiscount sql.NullFloat64
		)

		err := rows.Scan(
			&record.ReceiptID,
			&date,
			&record.SellerID,
			&customerID,
			&totalDiscount,
			&record.TotalAmount,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear cheque")
		}

		record.Date = date.String
		record.CustomerID = customerID.String
		record.TotalDiscount = totalDiscount.Float64
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de cheques")
	}

	return records, nil
}

func (r *salesDatasetRepository) listItems(ctx context.Context) (map[string][]domain.PurchaseItem, error) {
	query, args, err := purchaseRecordItemsQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de itens")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens dos cheques")
	}
	defer rows.Close()

	itemsByReceipt := make(map[string][]domain.PurchaseItem)
	for rows.Next() {
		var (
			receiptID string
			item      domain.PurchaseItem
		)

		if err := rows.Scan(&receiptID, &item.SKU, &item.Quantity, &item.SalePrice, &item.Discount); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item do cheque")
		}

		itemsByReceipt[receiptID] = append(itemsByReceipt[receiptID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de itens")
	}

	return itemsByReceipt, nil
}

// A ordem de carga é a ordem do arquivo carregado; o ranking desempata lucros iguais por ela
func sellersQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("s.id", "s.first_name", "s.last_name", "s.start_date", "s.position").
		From(sellersTable).
		OrderBy("s.load_order ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func productsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("p.sku", "p.purchase_price", "p.name", "p.category", "p.retail_price").
		From(productsTable).
		OrderBy("p.load_order ASC", "p.sku ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func purchaseRecordsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"pr.receipt_id",
			"pr.date",
			"pr.seller_id",
			"pr.customer_id",
			"pr.total_discount",
			"pr.total_amount",
		).
		From(purchaseRecordsTable).
		OrderBy("pr.load_order ASC", "pr.receipt_id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func purchaseRecordItemsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("pri.receipt_id", "pri.sku", "pri.quantity", "pri.sale_price", "pri.discount").
		From(purchaseRecordItemsTable).
		OrderBy("pri.receipt_id ASC", "pri.line_number ASC").
		PlaceholderFormat(squirrel.Dollar)
}
