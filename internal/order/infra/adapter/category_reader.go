package adapter

import (
	"context"

	categoryapp "github.com/nivgold/shopping-list/internal/category/app"
)

// CategoryServiceReader adapts the category registry service to the
// consolidator's CategoryReader port.
type CategoryServiceReader struct {
	svc *categoryapp.Service
}

func NewCategoryServiceReader(svc *categoryapp.Service) *CategoryServiceReader {
	return &CategoryServiceReader{svc: svc}
}

func (a *CategoryServiceReader) ExistingNames(ctx context.Context, names []string) (map[string]bool, error) {
	found, err := a.svc.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(found))
	for _, c := range found {
		out[c.Name] = true
	}
	return out, nil
}
