package catalog

import (
	"sync"
	"testing"

	"catalogo-bot/internal/models"
)

func TestBuild_OnePerRowInOrder(t *testing.T) {
	rows := []models.RawRow{
		{models.KeyModel: "iPhone 13", models.KeyBattery: "90%"},
		{models.KeyModel: "iPad Air"},
		{models.KeyModel: "iPhone 13", models.KeyBattery: "90%"},
	}

	idx := Build(rows)
	if idx.Len() != 3 {
		t.Fatalf("Len = %d, want 3", idx.Len())
	}

	snap := idx.Snapshot()
	if snap[0].Category != models.CategoryIPhone || snap[1].Category != models.CategoryIPad {
		t.Errorf("unexpected categories: %s, %s", snap[0].Category, snap[1].Category)
	}

	if idx.ID() == "" || idx.BuiltAt().IsZero() {
		t.Error("index missing id or build time")
	}
}

func TestIndex_SnapshotIsCopy(t *testing.T) {
	idx := FromProducts([]models.Product{{Name: "iPhone 12"}})

	snap := idx.Snapshot()
	snap[0].Name = "changed"

	if idx.Snapshot()[0].Name != "iPhone 12" {
		t.Error("mutating a snapshot changed the index")
	}
}

func TestIndex_EachStops(t *testing.T) {
	idx := FromProducts([]models.Product{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	var seen []string
	idx.Each(func(p models.Product) bool {
		seen = append(seen, p.Name)
		return p.Name != "b"
	})

	if len(seen) != 2 {
		t.Errorf("Each visited %v, want stop after b", seen)
	}
}

func TestIndex_CountByCategory(t *testing.T) {
	idx := FromProducts([]models.Product{
		{Category: models.CategoryIPhone},
		{Category: models.CategoryIPhone},
		{Category: models.CategoryPS5},
	})

	counts := idx.CountByCategory()
	if counts[models.CategoryIPhone] != 2 || counts[models.CategoryPS5] != 1 || counts[models.CategoryIPad] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestStore_SwapIsAtomic(t *testing.T) {
	s := NewStore()
	if s.Load() == nil || s.Load().Len() != 0 {
		t.Fatal("new store should hold an empty index")
	}

	first := FromProducts([]models.Product{{Name: "a"}})
	s.Swap(first)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if n := s.Load().Len(); n != 1 && n != 2 {
					t.Errorf("reader saw partial index of len %d", n)
					return
				}
			}
		}()
	}

	prev := s.Swap(FromProducts([]models.Product{{Name: "a"}, {Name: "b"}}))
	wg.Wait()

	if prev != first {
		t.Error("Swap did not return previous index")
	}

	s.Swap(nil)
	if s.Load() == nil {
		t.Error("Swap(nil) must leave an empty index")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry("centro", "norte")

	if _, ok := r.Lookup("centro"); !ok {
		t.Error("centro should be registered")
	}

	if _, ok := r.Lookup("sur"); ok {
		t.Error("sur should not be registered yet")
	}

	if r.Store("sur") != r.Store("sur") {
		t.Error("Store must return the same store for a slug")
	}

	got := r.Empresas()
	want := []string{"centro", "norte", "sur"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Empresas = %v, want %v", got, want)
		}
	}
}
