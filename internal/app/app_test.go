package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"catalogo-bot/config"
	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/models"
)

const stockCSV = `Modelo,Capacidad,Batería,Estado,Color,Venta USD
iPhone 13 Pro Max,256GB,88%,Usado,Sierra Blue,900
iPad Air,64GB,,Usado,Space Gray,450
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestNew_RefreshFromLocalFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "estoque.csv")
	catalogPath := filepath.Join(dir, "catalogo.yaml")

	writeFile(t, csvPath, stockCSV)
	writeFile(t, catalogPath, `
empresas:
  - slug: local
    file: "`+csvPath+`"
placeholder_image: "/devices/placeholder.png"
images:
  "iphone 13 pro max_blue": "/devices/13pm.png"
`)

	cfg := &config.Config{
		CatalogConfigPath: catalogPath,
		DatabasePath:      filepath.Join(dir, "catalogo.db"),
		FetchMaxRetries:   1,
		FetchTimeout:      time.Second,
	}

	a, err := New(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	if a.Images.Lookup("iphone 13 pro max_blue") != "/devices/13pm.png" {
		t.Error("image map not loaded")
	}

	ing, err := a.Monitor.Refresh(context.Background(), "local")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if ing.ProductCount != 2 || ing.Source != "file-csv" {
		t.Errorf("unexpected ingestion: %+v", ing)
	}

	idx := a.Catalogs.Store("local").Load()
	if idx.Len() != 2 || idx.ID() != ing.ID {
		t.Fatalf("catalog not swapped: len=%d id=%s", idx.Len(), idx.ID())
	}
	if counts := idx.CountByCategory(); counts[models.CategoryIPhone] != 1 || counts[models.CategoryIPad] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	list, err := a.DB.ListIngestions(context.Background(), "local", 10)
	if err != nil {
		t.Fatalf("ListIngestions() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != ing.ID {
		t.Errorf("audit not recorded: %+v", list)
	}
}

func TestNew_InvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogo.yaml")
	writeFile(t, path, "empresas: []\n")

	if _, err := New(&config.Config{CatalogConfigPath: path}, logger.Discard()); err == nil {
		t.Fatal("expected error for catalog without empresas")
	}
}
