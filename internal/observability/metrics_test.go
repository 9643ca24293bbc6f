package observability

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveIngestion(t *testing.T) {
	before := testutil.ToFloat64(IngestionsTotal.WithLabelValues("demo", StatusSuccess))

	ObserveIngestion("demo", StatusSuccess, 120*time.Millisecond)

	after := testutil.ToFloat64(IngestionsTotal.WithLabelValues("demo", StatusSuccess))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestSetCatalogSize_ReplacesPreviousCategories(t *testing.T) {
	SetCatalogSize("loja", map[string]int{"iphone": 3, "ipad": 1})
	SetCatalogSize("loja", map[string]int{"iphone": 5})

	if got := testutil.ToFloat64(CatalogProducts.WithLabelValues("loja", "iphone")); got != 5 {
		t.Errorf("iphone gauge = %v, want 5", got)
	}

	// ipad sumiu do catálogo novo, a série some junto
	if CatalogProducts.DeleteLabelValues("loja", "ipad") {
		t.Error("stale ipad series still registered")
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	CountQuery("api")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(rec.Body.String(), `catalog_queries_total{surface="api"}`) {
		t.Errorf("metrics output missing queries counter:\n%s", rec.Body.String())
	}
}
