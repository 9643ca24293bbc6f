// Package observability expõe as métricas Prometheus do catálogo.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry é o registro próprio do serviço, separado do registro global
var Registry = prometheus.NewRegistry()

var (
	IngestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_ingestions_total",
			Help: "Total de ciclos de ingestão por empresa e resultado",
		},
		[]string{"empresa", "status"},
	)

	IngestionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_ingestion_duration_seconds",
			Help:    "Duração de cada ciclo de ingestão",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"empresa"},
	)

	CatalogProducts = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Produtos no catálogo atual por categoria",
		},
		[]string{"empresa", "category"},
	)

	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Consultas ao catálogo por superfície (bot ou api)",
		},
		[]string{"surface"},
	)
)

// Resultados de uma ingestão
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

func init() {
	Registry.MustRegister(IngestionsTotal, IngestionDuration, CatalogProducts, QueriesTotal)
}

// ObserveIngestion registra o resultado e a duração de um ciclo
func ObserveIngestion(empresa, status string, took time.Duration) {
	IngestionsTotal.WithLabelValues(empresa, status).Inc()
	IngestionDuration.WithLabelValues(empresa).Observe(took.Seconds())
}

// SetCatalogSize publica a contagem por categoria do catálogo atual
func SetCatalogSize(empresa string, counts map[string]int) {
	CatalogProducts.DeletePartialMatch(prometheus.Labels{"empresa": empresa})
	for category, n := range counts {
		CatalogProducts.WithLabelValues(empresa, category).Set(float64(n))
	}
}

// CountQuery conta uma consulta feita por uma superfície
func CountQuery(surface string) {
	QueriesTotal.WithLabelValues(surface).Inc()
}

// Handler serve as métricas do registro do serviço
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Start sobe o servidor de métricas em segundo plano
func Start(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	go http.ListenAndServe(":"+port, mux)
}
