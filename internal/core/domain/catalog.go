package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Catalog is the validated shop configuration plus product list, as loaded
// from the catalog collaborator. Consumed read-only by the pricing core.
type Catalog struct {
	Shop     Shop      `json:"shop"`
	Products []Product `json:"products"`
}

// Product returns the product with the given ID, if present.
func (c Catalog) Product(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Shop holds the storefront configuration block.
type Shop struct {
	Name            string            `json:"name"`
	Country         string            `json:"country"`
	DefaultCurrency string            `json:"defaultCurrency"`
	Whatsapp        string            `json:"whatsapp"`
	Social          map[string]string `json:"social,omitempty"`
	Shipping        ShippingConfig    `json:"shipping"`
}

// ShippingConfig lists the configured shipping methods. Local options are
// priced in the shop default currency; international options carry a USD
// price.
type ShippingConfig struct {
	Local         []ShippingOption `json:"local,omitempty"`
	International []ShippingOption `json:"international,omitempty"`
}

// Options flattens the config into one selectable list.
func (s ShippingConfig) Options() []ShippingOption {
	opts := make([]ShippingOption, 0, len(s.Local)+len(s.International))
	opts = append(opts, s.Local...)
	opts = append(opts, s.International...)
	return opts
}

// Option finds a shipping option by ID.
func (s ShippingConfig) Option(id string) (ShippingOption, bool) {
	for _, o := range s.Options() {
		if o.ID == id {
			return o, true
		}
	}
	return ShippingOption{}, false
}

// Product is one catalog entry.
type Product struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Desc     string     `json:"desc,omitempty"`
	Category string     `json:"category,omitempty"`
	Tag      string     `json:"tag,omitempty"`
	Price    Money      `json:"price"`
	Stock    StockState `json:"stock,omitempty"`
	Featured bool       `json:"featured,omitempty"`
	Images   []string   `json:"images,omitempty"`
	Specs    []string   `json:"specs,omitempty"`
}

// StockState normalizes the catalog's loosely-typed stock field. The source
// file uses "in_stock"/"out_of_stock" strings, booleans and raw counts
// interchangeably; unknown shapes default to in stock.
type StockState string

const (
	StockIn  StockState = "in_stock"
	StockOut StockState = "out_of_stock"
)

// InStock reports whether the product can be bought.
func (s StockState) InStock() bool {
	return s != StockOut
}

// UnmarshalJSON accepts the string, boolean and numeric encodings found in
// catalog files.
func (s *StockState) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch raw {
	case "null", `""`:
		*s = StockIn
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == string(StockOut) {
			*s = StockOut
		} else {
			*s = StockIn
		}
		return nil
	}
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		if asBool {
			*s = StockIn
		} else {
			*s = StockOut
		}
		return nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		if n > 0 {
			*s = StockIn
		} else {
			*s = StockOut
		}
		return nil
	}
	*s = StockIn
	return nil
}

// MarshalJSON writes the normalized string form.
func (s StockState) MarshalJSON() ([]byte, error) {
	if s == "" {
		return json.Marshal(string(StockIn))
	}
	return json.Marshal(string(s))
}
