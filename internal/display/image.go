package display

import (
	"strings"

	"catalogo-bot/internal/models"
)

// ImageKey monta a chave "modelo em minúsculas_cor". Espaços do modelo
// são mantidos e só existe um "_" antes da cor.
func ImageKey(model, color string) string {
	return strings.ToLower(strings.TrimSpace(model)) + "_" + strings.ToLower(strings.TrimSpace(color))
}

// ProductModel é o nome do produto em minúsculas com espaços simples,
// que é como as chaves do mapa de imagens são escritas.
func ProductModel(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// ProductImageKey é a chave de imagem de um produto
func ProductImageKey(p models.Product) string {
	return ImageKey(ProductModel(p.Name), p.Color)
}

// ImageMap resolve chaves de imagem por correspondência exata
type ImageMap struct {
	placeholder string
	images      map[string]string
}

// NewImageMap cria o mapa; as chaves são normalizadas para minúsculas
func NewImageMap(placeholder string, images map[string]string) *ImageMap {
	m := &ImageMap{placeholder: placeholder, images: make(map[string]string, len(images))}
	for k, v := range images {
		m.images[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return m
}

// Lookup devolve a imagem da chave ou o placeholder
func (m *ImageMap) Lookup(key string) string {
	if m == nil {
		return ""
	}
	if img, ok := m.images[key]; ok {
		return img
	}
	return m.placeholder
}

// Placeholder é a imagem usada quando a chave não existe
func (m *ImageMap) Placeholder() string {
	if m == nil {
		return ""
	}
	return m.placeholder
}

// Len é a quantidade de imagens conhecidas
func (m *ImageMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.images)
}
