// Package selection guarda as escolhas do cliente (categoria, modelo,
// submodelo, busca, filtros e ordenação) e aplica a cascata de resets.
//
// Categoria > modelo > submodelo: trocar um nível limpa os níveis abaixo dele.
// Nenhum outro campo limpa outro.
package selection

import (
	"errors"
	"strings"

	"catalogo-bot/internal/models"
)

var (
	ErrModelRequiresIPhone   = errors.New("modelo só pode ser escolhido na categoria iphone")
	ErrSubmodelRequiresModel = errors.New("submodelo exige um modelo escolhido")
	ErrUnknownCategory       = errors.New("categoria desconhecida")
	ErrInvalidSortOrder      = errors.New("ordem de preço inválida")
	ErrInvalidSortGen        = errors.New("ordem de geração inválida")
)

// SortOrder é a ordenação por preço
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortGen é a ordenação por geração
type SortGen string

const (
	GenNone SortGen = "none"
	GenNew  SortGen = "new"
	GenOld  SortGen = "old"
)

// Filters são os filtros independentes da cascata. Preços ficam em texto e
// só valem quando são numéricos.
type Filters struct {
	Capacity string `json:"capacity"`
	Color    string `json:"color"`
	MinPrice string `json:"minPrice"`
	MaxPrice string `json:"maxPrice"`
}

// Snapshot é uma cópia imutável do estado, consumida pelo motor de consultas
type Snapshot struct {
	Category  models.Category `json:"category"`
	Model     string          `json:"model"`
	Submodel  string          `json:"submodel"`
	Search    string          `json:"search"`
	Filters   Filters         `json:"filters"`
	SortOrder SortOrder       `json:"sortOrder"`
	SortGen   SortGen         `json:"sortGen"`
}

// State é a máquina de estados da seleção. Não é segura para uso concorrente.
type State struct {
	defaultCategory models.Category
	snap            Snapshot
}

// New cria um estado com a categoria padrão e nada mais selecionado.
// Categoria vazia significa todas as categorias.
func New(defaultCategory models.Category) *State {
	s := &State{defaultCategory: defaultCategory}
	s.Reset()
	return s
}

// Reset volta ao estado inicial
func (s *State) Reset() {
	s.snap = Snapshot{
		Category:  s.defaultCategory,
		SortOrder: SortNone,
		SortGen:   GenNone,
	}
}

// Snapshot retorna uma cópia do estado atual
func (s *State) Snapshot() Snapshot { return s.snap }

func (s *State) Category() models.Category { return s.snap.Category }
func (s *State) Model() string             { return s.snap.Model }
func (s *State) Submodel() string          { return s.snap.Submodel }
func (s *State) Search() string            { return s.snap.Search }
func (s *State) Filters() Filters          { return s.snap.Filters }
func (s *State) SortOrder() SortOrder      { return s.snap.SortOrder }
func (s *State) SortGen() SortGen          { return s.snap.SortGen }

// SetCategory troca a categoria. Uma categoria diferente limpa modelo e submodelo.
func (s *State) SetCategory(c models.Category) error {
	if c != "" && !c.Valid() {
		return ErrUnknownCategory
	}
	if c == s.snap.Category {
		return nil
	}

	s.snap.Category = c
	s.snap.Model = ""
	s.snap.Submodel = ""
	return nil
}

// SelectModel seleciona um modelo. Escolher o modelo já ativo desmarca.
// Qualquer mudança de modelo limpa o submodelo.
func (s *State) SelectModel(model string) error {
	model = strings.TrimSpace(model)
	if s.snap.Category != models.CategoryIPhone {
		return ErrModelRequiresIPhone
	}

	if model == "" || strings.EqualFold(model, s.snap.Model) {
		s.snap.Model = ""
	} else {
		s.snap.Model = model
	}
	s.snap.Submodel = ""
	return nil
}

// SelectSubmodel seleciona um submodelo. Escolher o submodelo já ativo desmarca.
func (s *State) SelectSubmodel(submodel string) error {
	submodel = strings.TrimSpace(submodel)
	if s.snap.Model == "" {
		return ErrSubmodelRequiresModel
	}

	if submodel == "" || strings.EqualFold(submodel, s.snap.Submodel) {
		s.snap.Submodel = ""
		return nil
	}
	s.snap.Submodel = submodel
	return nil
}

// SetSearch define o texto livre de busca
func (s *State) SetSearch(text string) {
	s.snap.Search = strings.TrimSpace(text)
}

// SetCapacity define o filtro de capacidade
func (s *State) SetCapacity(capacity string) {
	s.snap.Filters.Capacity = strings.TrimSpace(capacity)
}

// SetColor define o filtro de cor
func (s *State) SetColor(color string) {
	s.snap.Filters.Color = strings.TrimSpace(color)
}

// SetPriceRange define o intervalo de preço em USD; texto vazio desliga o limite
func (s *State) SetPriceRange(minPrice, maxPrice string) {
	s.snap.Filters.MinPrice = strings.TrimSpace(minPrice)
	s.snap.Filters.MaxPrice = strings.TrimSpace(maxPrice)
}

// SetSortOrder define a ordenação por preço
func (s *State) SetSortOrder(order SortOrder) {
	s.snap.SortOrder = order
}

// SetSortGen define a ordenação por geração
func (s *State) SetSortGen(gen SortGen) {
	s.snap.SortGen = gen
}
