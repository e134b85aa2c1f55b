package cart

import "testing"

func TestAdd(t *testing.T) {
	t.Run("same name different case merges into one entry", func(t *testing.T) {
		c := New().
			Add(Item{Name: "milk", Category: "Dairy", Quantity: 2}).
			Add(Item{Name: "Milk", Category: "Dairy", Quantity: 3})

		if len(c.Items) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(c.Items))
		}
		if c.Items[0].Name != "milk" {
			t.Fatalf("expected first-seen casing %q, got %q", "milk", c.Items[0].Name)
		}
		if c.Items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", c.Items[0].Quantity)
		}
		if c.TotalItems != 5 {
			t.Fatalf("expected total 5, got %d", c.TotalItems)
		}
	})

	t.Run("same name different category stays separate", func(t *testing.T) {
		c := New().
			Add(Item{Name: "soap", Category: "Bathroom", Quantity: 1}).
			Add(Item{Name: "soap", Category: "Kitchen", Quantity: 1})

		if len(c.Items) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(c.Items))
		}
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		c := New().Add(Item{Name: "bread", Category: "Bakery"})

		if c.Items[0].Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", c.Items[0].Quantity)
		}
	})

	t.Run("does not mutate the input cart", func(t *testing.T) {
		base := New().Add(Item{Name: "eggs", Category: "Dairy", Quantity: 1})
		_ = base.Add(Item{Name: "Eggs", Category: "Dairy", Quantity: 9})

		if base.Items[0].Quantity != 1 {
			t.Fatalf("base cart mutated: quantity %d", base.Items[0].Quantity)
		}
		if base.TotalItems != 1 {
			t.Fatalf("base cart total mutated: %d", base.TotalItems)
		}
	})
}

func TestUpdateQuantity(t *testing.T) {
	base := New().
		Add(Item{Name: "milk", Category: "Dairy", Quantity: 2}).
		Add(Item{Name: "bread", Category: "Bakery", Quantity: 1})

	t.Run("sets quantity and recomputes total", func(t *testing.T) {
		c := base.UpdateQuantity(0, 7)
		if c.Items[0].Quantity != 7 {
			t.Fatalf("expected quantity 7, got %d", c.Items[0].Quantity)
		}
		if c.TotalItems != 8 {
			t.Fatalf("expected total 8, got %d", c.TotalItems)
		}
	})

	t.Run("quantity above 999 is not clamped here", func(t *testing.T) {
		c := base.UpdateQuantity(0, 5000)
		if c.Items[0].Quantity != 5000 {
			t.Fatalf("expected quantity 5000, got %d", c.Items[0].Quantity)
		}
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		c := base.UpdateQuantity(5, 3)
		if c.TotalItems != base.TotalItems {
			t.Fatalf("expected unchanged total %d, got %d", base.TotalItems, c.TotalItems)
		}
	})

	t.Run("non-positive quantity is a no-op", func(t *testing.T) {
		c := base.UpdateQuantity(0, 0)
		if c.Items[0].Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", c.Items[0].Quantity)
		}
		c = base.UpdateQuantity(0, -1)
		if c.Items[0].Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", c.Items[0].Quantity)
		}
	})
}

func TestRemove(t *testing.T) {
	base := New().
		Add(Item{Name: "milk", Category: "Dairy", Quantity: 2}).
		Add(Item{Name: "bread", Category: "Bakery", Quantity: 1})

	t.Run("removes by index", func(t *testing.T) {
		c := base.Remove(0)
		if len(c.Items) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(c.Items))
		}
		if c.Items[0].Name != "bread" {
			t.Fatalf("expected remaining entry bread, got %q", c.Items[0].Name)
		}
		if c.TotalItems != 1 {
			t.Fatalf("expected total 1, got %d", c.TotalItems)
		}
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		c := base.Remove(-1)
		if len(c.Items) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(c.Items))
		}
		c = base.Remove(2)
		if len(c.Items) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(c.Items))
		}
	})
}

func TestClear(t *testing.T) {
	c := New().Add(Item{Name: "milk", Category: "Dairy", Quantity: 2}).Clear()

	if !c.Empty() {
		t.Fatalf("expected empty cart, got %d entries", len(c.Items))
	}
	if c.TotalItems != 0 {
		t.Fatalf("expected total 0, got %d", c.TotalItems)
	}
}

func TestLoad(t *testing.T) {
	t.Run("replaces contents and recomputes total", func(t *testing.T) {
		c := New().Add(Item{Name: "old", Category: "X", Quantity: 9})

		items := []Item{
			{Name: "milk", Category: "Dairy", Quantity: 2},
			{Name: "bread", Category: "Bakery", Quantity: 3},
		}
		c = Load(items)

		if len(c.Items) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(c.Items))
		}
		if c.TotalItems != 5 {
			t.Fatalf("expected total 5, got %d", c.TotalItems)
		}
	})

	t.Run("does not alias the input slice", func(t *testing.T) {
		items := []Item{{Name: "milk", Category: "Dairy", Quantity: 2}}
		c := Load(items)

		items[0].Quantity = 99
		if c.Items[0].Quantity != 2 {
			t.Fatalf("cart aliased the loaded slice: quantity %d", c.Items[0].Quantity)
		}
	})

	t.Run("does not merge duplicates", func(t *testing.T) {
		// An order snapshot never has duplicates; Load trusts its input.
		items := []Item{
			{Name: "milk", Category: "Dairy", Quantity: 1},
			{Name: "milk", Category: "Dairy", Quantity: 1},
		}
		c := Load(items)

		if len(c.Items) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(c.Items))
		}
		if c.TotalItems != 2 {
			t.Fatalf("expected total 2, got %d", c.TotalItems)
		}
	})
}

func TestTotalInvariant(t *testing.T) {
	// The total must equal the sum of quantities after any sequence of
	// operations.
	c := New().
		Add(Item{Name: "milk", Category: "Dairy", Quantity: 2}).
		Add(Item{Name: "bread", Category: "Bakery", Quantity: 1}).
		Add(Item{Name: "MILK", Category: "Dairy", Quantity: 4}).
		UpdateQuantity(1, 10).
		Remove(0).
		Add(Item{Name: "soap", Category: "Cleaning"})

	sum := 0
	for _, it := range c.Items {
		sum += it.Quantity
	}
	if c.TotalItems != sum {
		t.Fatalf("total %d does not match item sum %d", c.TotalItems, sum)
	}
}
