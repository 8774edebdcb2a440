package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/dataset"
	"github.com/vfg2006/sales-performance-api/infrastructure/exporter"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	input  string
	output string
	format string
	top    int
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(os.Stderr)

	opts := options{}
	flag.StringVar(&opts.input, "input", "", "Arquivo JSON com sellers, products e purchase_records")
	flag.StringVar(&opts.output, "output", "", "Arquivo de saída (padrão: stdout para json)")
	flag.StringVar(&opts.format, "format", "json", "Formato do relatório: json ou xlsx")
	flag.IntVar(&opts.top, "top", analyzing.DefaultTopProductsLimit, "Quantidade máxima de produtos no top de cada vendedor")
	flag.Parse()

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar relatório de desempenho")
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	if opts.input == "" {
		return fmt.Errorf("informe o dataset com -input")
	}
	if opts.format != "json" && opts.format != "xlsx" {
		return fmt.Errorf("formato inválido %q: use json ou xlsx", opts.format)
	}
	if opts.format == "xlsx" && opts.output == "" {
		return fmt.Errorf("o formato xlsx exige -output")
	}

	data, err := dataset.LoadFile(opts.input)
	if err != nil {
		return err
	}

	service := ranking.NewSellerRankingService(nil, opts.top)
	report, err := service.AnalyzeDataset(ctx, data, nil)
	if err != nil {
		return err
	}
	report.Source = domain.ReportSourceFile

	if opts.format == "xlsx" {
		if err := exporter.SaveXLSX(opts.output, report); err != nil {
			return err
		}
	} else if err := writeJSON(opts.output, report, stdout); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"sellers":   len(report.Sellers),
		"format":    opts.format,
		"output":    opts.output,
	}).Info("Relatório de desempenho gerado")

	return nil
}

func writeJSON(path string, report *domain.SellerPerformanceReport, stdout io.Writer) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("erro ao criar %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
