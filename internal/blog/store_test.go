package blog

import (
	"errors"
	"testing"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
)

func TestStore_AddKeepsOrder(t *testing.T) {
	s := NewStore()
	first := s.Add(&model.Blog{Title: "first"})
	second := s.Add(&model.Blog{Title: "second"})

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct ids, got '%s' and '%s'", first.ID, second.ID)
	}

	all := s.All()
	if len(all) != 2 || all[0].Title != "first" || all[1].Title != "second" {
		t.Errorf("unexpected order: %+v", all)
	}
}

func TestStore_AllIsSnapshot(t *testing.T) {
	s := NewStore(Fixtures()...)
	all := s.All()
	s.Add(&model.Blog{Title: "later"})

	if len(all) != len(Fixtures()) {
		t.Errorf("expected snapshot of %d blogs, got %d", len(Fixtures()), len(all))
	}
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	b := s.Add(&model.Blog{Title: "x"})

	got, err := s.Get(b.ID)
	if err != nil || got != b {
		t.Fatalf("Get() = %v, %v", got, err)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
