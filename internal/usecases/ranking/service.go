package ranking

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/metrics"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type RankingService interface {
	AnalyzeDataset(ctx context.Context, dataset *analyzing.Dataset, opts *analyzing.Options) (*domain.SellerPerformanceReport, error)
	GenerateFromSource(ctx context.Context) (*domain.SellerPerformanceReport, error)
	GetLatestReport() (*domain.SellerPerformanceReport, error)
}

type SellerRankingService struct {
	DatasetRepository repository.SalesDatasetRepository
	topProductsLimit  int

	mu     sync.RWMutex
	latest *domain.SellerPerformanceReport
	now    func() time.Time
}

func NewSellerRankingService(datasetRepository repository.SalesDatasetRepository, topProductsLimit int) *SellerRankingService {
	return &SellerRankingService{
		DatasetRepository: datasetRepository,
		topProductsLimit:  topProductsLimit,
		now:               time.Now,
	}
}

// AnalyzeDataset executa a análise sobre um dataset recebido pela API ou por arquivo
func (s *SellerRankingService) AnalyzeDataset(ctx context.Context, dataset *analyzing.Dataset, opts *analyzing.Options) (*domain.SellerPerformanceReport, error) {
	return s.analyze(ctx, domain.ReportSourceRequest, dataset, opts)
}

// GenerateFromSource lê vendedores, produtos e cheques do banco e gera um novo relatório,
// que passa a ser o último disponível em GetLatestReport
func (s *SellerRankingService) GenerateFromSource(ctx context.Context) (*domain.SellerPerformanceReport, error) {
	started := s.now()

	dataset, err := s.loadDataset(ctx)
	if err != nil {
		metrics.ObserveReport(domain.ReportSourceDatabase, metrics.StatusSourceUnavailable, started)
		logrus.WithError(err).Error("SellerRankingService: Erro ao carregar dados de vendas do banco")
		return nil, NewSourceError(err)
	}

	report, err := s.analyze(ctx, domain.ReportSourceDatabase, dataset, nil)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()

	return report, nil
}

// GetLatestReport retorna o último relatório gerado a partir do banco
func (s *SellerRankingService) GetLatestReport() (*domain.SellerPerformanceReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, ErrNoReport
	}

	return s.latest, nil
}

func (s *SellerRankingService) analyze(
	_ context.Context,
	source string,
	dataset *analyzing.Dataset,
	opts *analyzing.Options,
) (*domain.SellerPerformanceReport, error) {
	started := s.now()

	reportID, err := utils.GenerateReportID()
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"report_id":     reportID,
		"report_source": source,
	})

	sellers, err := analyzing.Analyze(dataset, s.withLimit(opts))
	if err != nil {
		metrics.ObserveReport(source, statusFor(err), started)
		logger.WithError(err).Warn("SellerRankingService: Análise de vendas rejeitada")
		return nil, err
	}

	metrics.ObserveReport(source, metrics.StatusSuccess, started)
	metrics.ReportSellers.Set(float64(len(dataset.Sellers)))
	metrics.ReportPurchaseRecords.Set(float64(len(dataset.PurchaseRecords)))

	logger.WithFields(logrus.Fields{
		"sellers":          len(dataset.Sellers),
		"products":         len(dataset.Products),
		"purchase_records": len(dataset.PurchaseRecords),
	}).Info("SellerRankingService: Relatório de desempenho gerado")

	return &domain.SellerPerformanceReport{
		ID:          reportID,
		Source:      source,
		GeneratedAt: s.now(),
		Sellers:     sellers,
	}, nil
}

func (s *SellerRankingService) loadDataset(ctx context.Context) (*analyzing.Dataset, error) {
	sellers, err := s.DatasetRepository.ListSellers(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.DatasetRepository.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.DatasetRepository.ListPurchaseRecords(ctx)
	if err != nil {
		return nil, err
	}

	return &analyzing.Dataset{
		Sellers:         sellers,
		Products:        products,
		PurchaseRecords: records,
	}, nil
}

// withLimit aplica o limite configurado do top de produtos quando a chamada não define um
func (s *SellerRankingService) withLimit(opts *analyzing.Options) *analyzing.Options {
	if opts == nil {
		return &analyzing.Options{TopProductsLimit: s.topProductsLimit}
	}

	if opts.TopProductsLimit > 0 {
		return opts
	}

	resolved := *opts
	resolved.TopProductsLimit = s.topProductsLimit
	return &resolved
}

func statusFor(err error) string {
	switch {
	case analyzing.IsInvalidInput(err):
		return metrics.StatusInvalidInput
	case analyzing.IsReferentialIntegrity(err):
		return metrics.StatusUnknownReference
	default:
		return metrics.StatusSourceUnavailable
	}
}
