// Package exporter converte o relatório de desempenho para formatos de planilha
package exporter

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SellersSheet     = "Vendedores"
	TopProductsSheet = "Top Produtos"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var sellerHeaders = []interface{}{"Posição", "ID", "Nome", "Receita", "Lucro", "Vendas", "Bônus"}
var topProductHeaders = []interface{}{"ID do vendedor", "Posição no top", "SKU", "Quantidade"}

// WriteXLSX grava o relatório em uma planilha com uma aba de vendedores e outra de top produtos
func WriteXLSX(w io.Writer, report *domain.SellerPerformanceReport) error {
	f, err := buildWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "erro ao escrever planilha")
	}

	return nil
}

// SaveXLSX grava o relatório em disco
func SaveXLSX(path string, report *domain.SellerPerformanceReport) error {
	f, err := buildWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "erro ao salvar planilha %s", path)
	}

	return nil
}

func buildWorkbook(report *domain.SellerPerformanceReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SellersSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao renomear aba de vendedores")
	}
	if _, err := f.NewSheet(TopProductsSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao criar aba de top produtos")
	}

	if err := writeRow(f, SellersSheet, 1, sellerHeaders); err != nil {
		return nil, err
	}
	if err := writeRow(f, TopProductsSheet, 1, topProductHeaders); err != nil {
		return nil, err
	}

	productRow := 2
	for i, seller := range report.Sellers {
		row := []interface{}{i + 1, seller.SellerID, seller.Name, seller.Revenue, seller.Profit, seller.SalesCount, seller.Bonus}
		if err := writeRow(f, SellersSheet, i+2, row); err != nil {
			return nil, err
		}

		for position, product := range seller.TopProducts {
			row := []interface{}{seller.SellerID, position + 1, product.SKU, product.Quantity}
			if err := writeRow(f, TopProductsSheet, productRow, row); err != nil {
				return nil, err
			}
			productRow++
		}
	}

	// Receita, lucro e bônus sempre exibidos com duas casas
	style, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar estilo monetário")
	}
	if len(report.Sellers) > 0 {
		lastRow := len(report.Sellers) + 1
		if err := f.SetCellStyle(SellersSheet, "D2", fmt.Sprintf("E%d", lastRow), style); err != nil {
			return nil, errors.Wrap(err, "erro ao aplicar estilo monetário")
		}
		if err := f.SetCellStyle(SellersSheet, "G2", fmt.Sprintf("G%d", lastRow), style); err != nil {
			return nil, errors.Wrap(err, "erro ao aplicar estilo monetário")
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Desempenho dos vendedores",
		Identifier:  report.ID,
		Description: fmt.Sprintf("origem: %s", report.Source),
	}); err != nil {
		return nil, errors.Wrap(err, "erro ao definir propriedades da planilha")
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "erro ao calcular célula")
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "erro ao escrever linha %d da aba %s", row, sheet)
	}

	return nil
}
