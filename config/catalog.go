package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"catalogo-bot/internal/models"

	"gopkg.in/yaml.v3"
)

// Erros de validação do arquivo de catálogo
var (
	ErrNoEmpresas             = errors.New("pelo menos uma empresa é obrigatória")
	ErrEmpresaMissingSlug     = errors.New("slug é obrigatório")
	ErrEmpresaInvalidSlug     = errors.New("slug deve ter apenas letras minúsculas, números e hífen")
	ErrEmpresaDuplicated      = errors.New("slug repetido")
	ErrEmpresaMissingSource   = errors.New("sheet_url ou file é obrigatório")
	ErrInvalidDefaultCategory = errors.New("default_category desconhecida")
	ErrEmpresaNotFound        = errors.New("empresa não encontrada")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// CatalogFile é o arquivo YAML com as empresas e o mapa de imagens
type CatalogFile struct {
	Empresas         []Empresa         `yaml:"empresas"`
	PlaceholderImage string            `yaml:"placeholder_image"`
	Images           map[string]string `yaml:"images"`
}

// Empresa é um catálogo independente, com a sua própria planilha
type Empresa struct {
	Slug            string          `yaml:"slug"`
	Name            string          `yaml:"name"`
	SheetURL        string          `yaml:"sheet_url"`
	File            string          `yaml:"file"`
	DefaultCategory models.Category `yaml:"default_category"`
}

// Source devolve o arquivo local quando existe, senão a URL da planilha
func (e Empresa) Source() string {
	if e.File != "" {
		return e.File
	}
	return e.SheetURL
}

// LoadCatalog lê e valida o arquivo de catálogo
func LoadCatalog(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de catálogo: %w", err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao interpretar YAML: %w", err)
	}

	for i := range file.Empresas {
		e := &file.Empresas[i]
		e.Slug = strings.ToLower(strings.TrimSpace(e.Slug))
		if e.DefaultCategory == "" {
			e.DefaultCategory = models.CategoryIPhone
		}
	}

	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("catálogo inválido: %w", err)
	}

	return &file, nil
}

// Validate confere as empresas do arquivo
func (f *CatalogFile) Validate() error {
	if len(f.Empresas) == 0 {
		return ErrNoEmpresas
	}

	seen := make(map[string]bool, len(f.Empresas))
	for i, e := range f.Empresas {
		if e.Slug == "" {
			return fmt.Errorf("%w: empresas[%d]", ErrEmpresaMissingSlug, i)
		}

		if !slugPattern.MatchString(e.Slug) {
			return fmt.Errorf("%w: %s", ErrEmpresaInvalidSlug, e.Slug)
		}

		if seen[e.Slug] {
			return fmt.Errorf("%w: %s", ErrEmpresaDuplicated, e.Slug)
		}
		seen[e.Slug] = true

		if e.Source() == "" {
			return fmt.Errorf("%w: %s", ErrEmpresaMissingSource, e.Slug)
		}

		if e.DefaultCategory != "" && !e.DefaultCategory.Valid() {
			return fmt.Errorf("%w: %s (%s)", ErrInvalidDefaultCategory, e.DefaultCategory, e.Slug)
		}
	}

	return nil
}

// Find procura a empresa pelo slug
func (f *CatalogFile) Find(slug string) (Empresa, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, e := range f.Empresas {
		if e.Slug == slug {
			return e, nil
		}
	}
	return Empresa{}, fmt.Errorf("%w: %s", ErrEmpresaNotFound, slug)
}

// Slugs lista os slugs na ordem do arquivo
func (f *CatalogFile) Slugs() []string {
	slugs := make([]string, len(f.Empresas))
	for i, e := range f.Empresas {
		slugs[i] = e.Slug
	}
	return slugs
}
