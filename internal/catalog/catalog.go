// Package catalog holds the product list that customer messages are
// matched against, plus loaders for the file and HTTP catalog sources.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Product is a single sellable entry in the store catalog.
type Product struct {
	ID        string  `json:"id" toml:"id"`
	Name      string  `json:"name" toml:"name"`
	UnitPrice float64 `json:"unitPrice" toml:"unit_price"`
}

// File is the on-disk catalog shape shared by the JSON and TOML loaders.
type File struct {
	Products []Product `json:"products" toml:"products"`
}

// LoadFile reads a catalog from a JSON or TOML file, chosen by extension.
func LoadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (use .json or .toml)", filepath.Ext(path))
	}

	if err := Validate(file.Products); err != nil {
		return nil, err
	}
	return file.Products, nil
}

// Validate checks the structural invariants the parser relies on:
// non-empty ids and names, no duplicate ids, non-negative prices.
func Validate(products []Product) error {
	if len(products) == 0 {
		return fmt.Errorf("catalog has no products")
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("product %d: missing id", i)
		}
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("product %q: missing name", p.ID)
		}
		if p.UnitPrice < 0 {
			return fmt.Errorf("product %q: negative unit price %.2f", p.ID, p.UnitPrice)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
