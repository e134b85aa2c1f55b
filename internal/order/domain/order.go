package domain

import "time"

// Item is a value type: it has no identity of its own and exists only
// inside an order (or a client-side cart).
type Item struct {
	Name     string
	Category string
	Quantity int
}

// Order is an immutable persisted snapshot of a consolidated shopping
// list. TotalItems always equals the sum of item quantities; the item
// list never contains two entries with the same (name, category) pair.
type Order struct {
	ID         string
	Items      []Item
	TotalItems int
	CreatedAt  time.Time
}
