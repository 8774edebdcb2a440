package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/exporter"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Limite do corpo da requisição de análise
const maxRequestBodySize = 32 << 20

type analyzeOptions struct {
	TopProductsLimit int `json:"top_products_limit"`
}

type analyzeRequest struct {
	analyzing.Dataset
	Options *analyzeOptions `json:"options,omitempty"`
}

// FormatChecker informa se um formato de exportação está habilitado
type FormatChecker func(format string) bool

// AnalyzeSellerPerformance recebe vendedores, produtos e cheques e devolve o relatório de desempenho
func AnalyzeSellerPerformance(service ranking.RankingService, isFormatAllowed FormatChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, ok := resolveFormat(w, r, isFormatAllowed)
		if !ok {
			return
		}

		var body analyzeRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logrus.WithError(err).Warn("Corpo da requisição de análise inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON inválido no corpo da requisição", nil)
			return
		}

		var opts *analyzing.Options
		if body.Options != nil {
			if body.Options.TopProductsLimit < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "top_products_limit não pode ser negativo", nil)
				return
			}
			opts = &analyzing.Options{TopProductsLimit: body.Options.TopProductsLimit}
		}

		report, err := service.AnalyzeDataset(r.Context(), &body.Dataset, opts)
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeReport(w, report, format)
	}
}

// GetLatestSellerReport retorna o último relatório gerado a partir do banco
func GetLatestSellerReport(service ranking.RankingService, isFormatAllowed FormatChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, ok := resolveFormat(w, r, isFormatAllowed)
		if !ok {
			return
		}

		report, err := service.GetLatestReport()
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeReport(w, report, format)
	}
}

func resolveFormat(w http.ResponseWriter, r *http.Request, isFormatAllowed FormatChecker) (string, bool) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = FormatJSON
	}

	if format != FormatJSON && format != FormatXLSX {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato inválido. Valores aceitos: json, xlsx", nil)
		return "", false
	}

	if !isFormatAllowed(format) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("Formato %s desabilitado", format), nil)
		return "", false
	}

	return format, true
}

func writeReport(w http.ResponseWriter, report *domain.SellerPerformanceReport, format string) {
	if format == FormatXLSX {
		w.Header().Set("Content-Type", exporter.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "desempenho-vendedores-"+report.ID+".xlsx"))
		if err := exporter.WriteXLSX(w, report); err != nil {
			logrus.WithError(err).WithField("report_id", report.ID).Error("Erro ao gerar planilha do relatório")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logrus.WithError(err).WithField("report_id", report.ID).Error("Erro ao enviar resposta do relatório")
	}
}

// writeReportError traduz os erros da análise para o formato padrão da API
func writeReportError(w http.ResponseWriter, err error) {
	var invalidInput *analyzing.InvalidInputError
	var unknownReference *analyzing.ReferentialIntegrityError

	switch {
	case errors.As(err, &invalidInput):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, invalidInput.Error(), map[string]any{
			"field": invalidInput.Field,
		})
	case errors.As(err, &unknownReference):
		details := map[string]any{
			"kind":         unknownReference.Kind,
			"key":          unknownReference.Key,
			"record_index": unknownReference.RecordIndex,
		}
		if unknownReference.ItemIndex >= 0 {
			details["item_index"] = unknownReference.ItemIndex
		}
		apiErrors.WriteError(w, apiErrors.ErrUnknownReference, unknownReference.Error(), details)
	case errors.Is(err, ranking.ErrNoReport):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório gerado até o momento", nil)
	case errors.Is(err, ranking.ErrSourceUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar dados de vendas", nil)
	default:
		logrus.WithError(err).Error("Erro inesperado ao gerar relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
	}
}
