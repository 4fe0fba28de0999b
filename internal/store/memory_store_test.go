package store_test

import (
	"errors"
	"testing"

	"coursehub/internal/domain"
	"coursehub/internal/store"
)

func TestInsert_AssignsNextID(t *testing.T) {
	s := store.NewMemoryStore(store.DefaultSeed())

	got, err := s.Insert(domain.Course{Name: "Go for Web Developers"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got.ID != 21 {
		t.Fatalf("want id 21, got %d", got.ID)
	}
	if _, ok := s.Get(21); !ok {
		t.Fatal("inserted course not found")
	}
}

func TestInsert_EmptyStoreStartsAtEleven(t *testing.T) {
	s := store.NewMemoryStore(nil)
	got, err := s.Insert(domain.Course{Name: "First"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got.ID != 11 {
		t.Fatalf("want id 11, got %d", got.ID)
	}
}

func TestInsert_DuplicateID(t *testing.T) {
	s := store.NewMemoryStore(store.DefaultSeed())
	_, err := s.Insert(domain.Course{ID: 11, Name: "Clash"})
	if !errors.Is(err, store.ErrDuplicateID) {
		t.Fatalf("want ErrDuplicateID, got %v", err)
	}
}

func TestAll_SortedByID(t *testing.T) {
	s := store.NewMemoryStore([]domain.Course{{ID: 30, Name: "c"}, {ID: 12, Name: "a"}, {ID: 20, Name: "b"}})
	all := s.All()
	if len(all) != 3 || all[0].ID != 12 || all[1].ID != 20 || all[2].ID != 30 {
		t.Fatalf("unexpected order %v", all)
	}
}

func TestPut_UpsertsAndReportsCreation(t *testing.T) {
	s := store.NewMemoryStore(store.DefaultSeed())
	if created := s.Put(domain.Course{ID: 11, Name: "Renamed"}); created {
		t.Fatal("existing id reported as created")
	}
	if c, _ := s.Get(11); c.Name != "Renamed" {
		t.Fatalf("update not applied: %+v", c)
	}
	if created := s.Put(domain.Course{ID: 99, Name: "New"}); !created {
		t.Fatal("unknown id not reported as created")
	}
}

func TestDelete(t *testing.T) {
	s := store.NewMemoryStore(store.DefaultSeed())
	if !s.Delete(12) {
		t.Fatal("delete of existing id returned false")
	}
	if s.Delete(12) {
		t.Fatal("second delete returned true")
	}
	if len(s.All()) != 9 {
		t.Fatalf("want 9 courses, got %d", len(s.All()))
	}
}
