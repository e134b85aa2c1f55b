package app

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/nivgold/shopping-list/internal/category/domain"
)

type fakeRepo struct {
	byName  map[string]domain.Category
	inserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byName: make(map[string]domain.Category)}
}

func (r *fakeRepo) List(ctx context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) Insert(ctx context.Context, name string) (domain.Category, error) {
	if _, ok := r.byName[name]; ok {
		return domain.Category{}, ErrDuplicateName
	}
	r.inserts++
	c := domain.Category{ID: name, Name: name, CreatedAt: time.Now()}
	r.byName[name] = c
	return c, nil
}

func (r *fakeRepo) FindByNames(ctx context.Context, names []string) ([]domain.Category, error) {
	var out []domain.Category
	for _, n := range names {
		if c, ok := r.byName[n]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRegister(t *testing.T) {
	t.Run("trims and stores", func(t *testing.T) {
		svc := NewService(newFakeRepo(), discard())
		c, err := svc.Register(context.Background(), "  Dairy  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Dairy" {
			t.Fatalf("expected trimmed name, got %q", c.Name)
		}
	})

	t.Run("too short after trimming", func(t *testing.T) {
		svc := NewService(newFakeRepo(), discard())
		_, err := svc.Register(context.Background(), "  a  ")
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("too long", func(t *testing.T) {
		svc := NewService(newFakeRepo(), discard())
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		_, err := svc.Register(context.Background(), string(long))
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("duplicate is case-sensitive", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, discard())

		if _, err := svc.Register(context.Background(), "Dairy"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Register(context.Background(), "Dairy"); !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
		// Different casing is a distinct name.
		if _, err := svc.Register(context.Background(), "dairy"); err != nil {
			t.Fatalf("unexpected error for distinct casing: %v", err)
		}
	})
}

func TestSeedDefaults(t *testing.T) {
	defaults := []string{"Dairy", "Bakery", "Cleaning"}

	t.Run("seeds all on empty registry", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, discard())

		if err := svc.SeedDefaults(context.Background(), defaults); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.inserts != 3 {
			t.Fatalf("expected 3 inserts, got %d", repo.inserts)
		}
	})

	t.Run("second run inserts nothing", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, discard())

		if err := svc.SeedDefaults(context.Background(), defaults); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.SeedDefaults(context.Background(), defaults); err != nil {
			t.Fatalf("unexpected error on second run: %v", err)
		}
		if repo.inserts != 3 {
			t.Fatalf("expected 3 inserts after two runs, got %d", repo.inserts)
		}
	})

	t.Run("adds only missing names, keeps existing entries", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, discard())

		if _, err := svc.Register(context.Background(), "Dairy"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Register(context.Background(), "Custom"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.SeedDefaults(context.Background(), defaults); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		all, _ := svc.List(context.Background())
		if len(all) != 4 {
			t.Fatalf("expected 4 categories, got %d", len(all))
		}
	})

	t.Run("tolerates a concurrent seeder winning the insert", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, discard())

		// Simulate the race: the name appears after the initial listing.
		if err := svc.SeedDefaults(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Insert(context.Background(), "Dairy"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.SeedDefaults(context.Background(), []string{"Dairy"}); err != nil {
			t.Fatalf("expected duplicate to be tolerated, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, discard())

	for _, name := range []string{"Cleaning", "Bakery", "Dairy"} {
		if _, err := svc.Register(context.Background(), name); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Bakery", "Cleaning", "Dairy"}
	for i, name := range want {
		if all[i].Name != name {
			t.Fatalf("expected %q at %d, got %q", name, i, all[i].Name)
		}
	}
}
