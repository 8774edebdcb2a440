// Package metrics expõe a instrumentação Prometheus do serviço de relatórios.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess           = "success"
	StatusInvalidInput      = "invalid_input"
	StatusUnknownReference  = "unknown_reference"
	StatusSourceUnavailable = "source_unavailable"
)

var (
	// ReportsTotal conta as execuções da análise por origem e resultado.
	ReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_performance_reports_total",
		Help: "Total de relatórios de desempenho processados",
	}, []string{"source", "status"})

	// ReportDuration mede o tempo de geração do relatório, incluindo a leitura da origem.
	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_performance_report_duration_seconds",
		Help:    "Duração da geração do relatório em segundos",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"source"})

	ReportSellers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_performance_report_sellers",
		Help: "Quantidade de vendedores no último relatório gerado",
	})

	ReportPurchaseRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_performance_report_purchase_records",
		Help: "Quantidade de cheques processados no último relatório gerado",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_performance_http_requests_total",
		Help: "Total de requisições HTTP",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_performance_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP em segundos",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// ObserveReport registra o resultado de uma execução da análise
func ObserveReport(source, status string, started time.Time) {
	ReportsTotal.WithLabelValues(source, status).Inc()
	ReportDuration.WithLabelValues(source).Observe(time.Since(started).Seconds())
}

// Handler retorna o handler HTTP do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware registra métricas de cada requisição HTTP
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := r.URL.Path
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
