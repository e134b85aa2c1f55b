package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nivgold/shopping-list/internal/category/domain"
)

var (
	ErrInvalidName   = errors.New("category name must be between 2 and 50 characters")
	ErrDuplicateName = errors.New("category already exists")
)

const (
	minNameLen = 2
	maxNameLen = 50
)

type Service struct {
	repo CategoryRepo
	log  *slog.Logger
}

func NewService(repo CategoryRepo, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

// Register validates and stores a new category name. Matching is
// case-sensitive: "Dairy" and "dairy" are distinct registrations.
func (s *Service) Register(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minNameLen || len([]rune(name)) > maxNameLen {
		return domain.Category{}, ErrInvalidName
	}
	return s.repo.Insert(ctx, name)
}

// FindByNames is used by the order consolidator to validate referenced
// category names against the registry.
func (s *Service) FindByNames(ctx context.Context, names []string) ([]domain.Category, error) {
	return s.repo.FindByNames(ctx, names)
}

// SeedDefaults inserts any of the given names not already present.
// Idempotent and additive: existing entries are never overwritten or
// removed, so it is safe to call on every process start. A concurrent
// seeder racing on the same name loses to the unique index, which is
// fine.
func (s *Service) SeedDefaults(ctx context.Context, names []string) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	present := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		present[c.Name] = struct{}{}
	}

	for _, name := range names {
		if _, ok := present[name]; ok {
			continue
		}
		if _, err := s.repo.Insert(ctx, name); err != nil {
			if errors.Is(err, ErrDuplicateName) {
				continue
			}
			return err
		}
		s.log.Info("seeded category", slog.String("name", name))
	}

	return nil
}
