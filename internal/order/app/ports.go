package app

import (
	"context"

	"github.com/nivgold/shopping-list/internal/order/domain"
)

type OrderRepo interface {
	// Insert persists a consolidated order, assigning its identifier and
	// creation timestamp.
	Insert(ctx context.Context, order domain.Order) (domain.Order, error)
	// List returns a page of orders sorted newest-first, plus the total
	// count across all pages.
	List(ctx context.Context, skip, limit int) ([]domain.Order, int64, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// CategoryReader is the consolidator's view of the category registry.
type CategoryReader interface {
	// ExistingNames reports which of the given category names are
	// registered.
	ExistingNames(ctx context.Context, names []string) (map[string]bool, error)
}
