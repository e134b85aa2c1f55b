package app

import (
	"context"

	"github.com/nivgold/shopping-list/internal/category/domain"
)

type CategoryRepo interface {
	// List returns every category sorted by name ascending.
	List(ctx context.Context) ([]domain.Category, error)
	// Insert stores a new category. Returns ErrDuplicateName if the name
	// already exists (the store's unique index is the authority).
	Insert(ctx context.Context, name string) (domain.Category, error)
	// FindByNames returns the categories whose names appear in the given
	// set. Missing names are simply absent from the result.
	FindByNames(ctx context.Context, names []string) ([]domain.Category, error)
}
