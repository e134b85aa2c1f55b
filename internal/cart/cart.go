// Package cart implements the client-side working shopping list. A cart
// is never persisted by the server: it lives in the client's memory (or
// a local session file) until its items are submitted as an order.
//
// All operations are state-in/state-out: they return a new Cart and
// never alias the input's item slice, so a loaded order snapshot cannot
// be mutated through the cart that was built from it.
package cart

import "strings"

type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type Cart struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
}

func New() Cart {
	return Cart{}
}

// Add merges the item into the cart. An existing entry matches when its
// name compares equal case-insensitively and its category matches
// exactly; the match keeps its original casing and gains the added
// quantity. Without a match the item is appended. A non-positive
// quantity defaults to 1.
//
// Category names are not checked against the registry here: the user
// may type a category before it exists server-side, and validation
// happens at save time.
func (c Cart) Add(item Item) Cart {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	items := cloneItems(c.Items)
	merged := false
	for i := range items {
		if strings.EqualFold(items[i].Name, item.Name) && items[i].Category == item.Category {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	return recompute(items)
}

// UpdateQuantity sets the quantity of the entry at index. Out-of-range
// indexes and non-positive quantities leave the cart unchanged. The
// quantity is not clamped here; the 999 ceiling is enforced at save
// time.
func (c Cart) UpdateQuantity(index, quantity int) Cart {
	if index < 0 || index >= len(c.Items) || quantity <= 0 {
		return c
	}

	items := cloneItems(c.Items)
	items[index].Quantity = quantity
	return recompute(items)
}

// Remove deletes the entry at index; out-of-range indexes leave the
// cart unchanged.
func (c Cart) Remove(index int) Cart {
	if index < 0 || index >= len(c.Items) {
		return c
	}

	items := cloneItems(c.Items)
	items = append(items[:index], items[index+1:]...)
	return recompute(items)
}

func (c Cart) Clear() Cart {
	return Cart{}
}

// Load replaces the cart's contents wholesale, typically with a past
// order's items for re-editing. The input is copied, not merged or
// deduplicated: an order snapshot already has unique (name, category)
// pairs.
func Load(items []Item) Cart {
	return recompute(cloneItems(items))
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func recompute(items []Item) Cart {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return Cart{Items: items, TotalItems: total}
}
