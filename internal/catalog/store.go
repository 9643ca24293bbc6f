package catalog

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Store mantém o índice atual. Uma nova ingestão troca o índice inteiro de
// uma vez, então leitores nunca veem um catálogo parcial.
type Store struct {
	current atomic.Pointer[Index]
}

// NewStore cria um store começando com o catálogo vazio
func NewStore() *Store {
	s := &Store{}
	s.current.Store(Empty())
	return s
}

// Load retorna o índice atual (nunca nil)
func (s *Store) Load() *Index {
	return s.current.Load()
}

// Swap substitui o índice atual e devolve o anterior
func (s *Store) Swap(idx *Index) *Index {
	if idx == nil {
		idx = Empty()
	}
	return s.current.Swap(idx)
}

// Registry guarda um Store por empresa
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

// NewRegistry cria um registro com um store vazio para cada empresa informada
func NewRegistry(empresas ...string) *Registry {
	r := &Registry{stores: make(map[string]*Store, len(empresas))}
	for _, slug := range empresas {
		r.stores[slug] = NewStore()
	}
	return r
}

// Store retorna o store da empresa, criando um vazio se ainda não existir
func (r *Registry) Store(empresa string) *Store {
	r.mu.RLock()
	s, ok := r.stores[empresa]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok = r.stores[empresa]; ok {
		return s
	}
	s = NewStore()
	r.stores[empresa] = s
	return s
}

// Lookup retorna o store apenas se a empresa for conhecida
func (r *Registry) Lookup(empresa string) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stores[empresa]
	return s, ok
}

// Empresas lista os slugs registrados em ordem alfabética
func (r *Registry) Empresas() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := make([]string, 0, len(r.stores))
	for slug := range r.stores {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
