package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nivgold/shopping-list/internal/order/domain"
)

var (
	ErrEmptyOrder  = errors.New("order must contain at least one item")
	ErrInvalidItem = errors.New("invalid item")
	ErrNotFound    = errors.New("order not found")
	ErrInvalidID   = errors.New("invalid order id")
)

// InvalidCategoriesError reports every unknown category name referenced
// by a submission, not just the first.
type InvalidCategoriesError struct {
	Names []string
}

func (e *InvalidCategoriesError) Error() string {
	return "invalid categories: " + strings.Join(e.Names, ", ")
}

const (
	maxItemNameLen = 100
	maxQuantity    = 999

	defaultPageLimit = 10
	maxPageLimit     = 100
)

type Page struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

type Service struct {
	repo       OrderRepo
	categories CategoryReader
	log        *slog.Logger
}

func NewService(repo OrderRepo, categories CategoryReader, log *slog.Logger) *Service {
	return &Service{repo: repo, categories: categories, log: log}
}

// Create consolidates a raw item list into an immutable order: it
// validates every item, checks every referenced category against the
// registry, merges duplicate (name, category) pairs by summing their
// quantities and persists the result. All validation happens before the
// write; on any failure nothing is stored.
//
// Grouping is exact-match on both name and category. This is
// intentionally stricter than the client cart's case-insensitive
// add-merge: "bread" and "Bread" arrive as two distinct order lines.
func (s *Service) Create(ctx context.Context, rawItems []domain.Item) (domain.Order, error) {
	if len(rawItems) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	items := make([]domain.Item, 0, len(rawItems))
	for i, it := range rawItems {
		it.Name = strings.TrimSpace(it.Name)
		it.Category = strings.TrimSpace(it.Category)

		if n := len([]rune(it.Name)); n < 1 || n > maxItemNameLen {
			return domain.Order{}, fmt.Errorf("item %d: name must be between 1 and 100 characters: %w", i, ErrInvalidItem)
		}
		if it.Category == "" {
			return domain.Order{}, fmt.Errorf("item %d: category is required: %w", i, ErrInvalidItem)
		}
		if it.Quantity < 1 || it.Quantity > maxQuantity {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be between 1 and 999: %w", i, ErrInvalidItem)
		}
		items = append(items, it)
	}

	if err := s.validateCategories(ctx, items); err != nil {
		return domain.Order{}, err
	}

	consolidated, total := consolidate(items)

	order, err := s.repo.Insert(ctx, domain.Order{
		Items:      consolidated,
		TotalItems: total,
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order created",
		slog.String("id", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Int("total", order.TotalItems),
	)
	return order, nil
}

func (s *Service) validateCategories(ctx context.Context, items []domain.Item) error {
	var names []string
	seen := make(map[string]struct{})
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		names = append(names, it.Category)
	}

	existing, err := s.categories.ExistingNames(ctx, names)
	if err != nil {
		return err
	}

	var missing []string
	for _, name := range names {
		if !existing[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &InvalidCategoriesError{Names: missing}
	}
	return nil
}

// consolidate merges duplicate (name, category) pairs, summing their
// quantities. First-seen order and casing are preserved.
func consolidate(items []domain.Item) ([]domain.Item, int) {
	index := make(map[[2]string]int, len(items))
	out := make([]domain.Item, 0, len(items))

	for _, it := range items {
		key := [2]string{it.Name, it.Category}
		if at, ok := index[key]; ok {
			out[at].Quantity += it.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, it)
	}

	total := 0
	for _, it := range out {
		total += it.Quantity
	}
	return out, total
}

// List returns orders newest-first. Page defaults to 1 and limit to 10;
// limit is capped at 100 to bound response size.
func (s *Service) List(ctx context.Context, page, limit int) ([]domain.Order, Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	orders, total, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, Page{}, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return orders, Page{Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes an order permanently. There is no soft-delete: once the
// identifier resolves the record is gone, and a second delete reports
// ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("order deleted", slog.String("id", id))
	return nil
}
