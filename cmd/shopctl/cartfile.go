package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nivgold/shopping-list/internal/cart"
)

// The cart lives in a local JSON file between invocations: it is the
// CLI session's working memory and is never stored server-side.

func loadCartFile() (cart.Cart, error) {
	path := viper.GetString("cart_path")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cart.New(), nil
	}
	if err != nil {
		return cart.Cart{}, err
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return cart.Cart{}, err
	}
	// Recompute in case the file was edited by hand.
	return cart.Load(c.Items), nil
}

func saveCartFile(c cart.Cart) error {
	path := viper.GetString("cart_path")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func clearCartFile() error {
	return saveCartFile(cart.New())
}
