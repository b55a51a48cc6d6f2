package dto

import (
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShopResponse is the shop block served to the frontend.
type ShopResponse struct {
	Name            string            `json:"name"`
	Country         string            `json:"country"`
	DefaultCurrency string            `json:"defaultCurrency"`
	Whatsapp        string            `json:"whatsapp"`
	Social          map[string]string `json:"social,omitempty"`
	Shipping        ShippingResponse  `json:"shipping"`
}

// ShippingResponse lists the configured shipping methods.
type ShippingResponse struct {
	Local         []ShippingOptionResponse `json:"local"`
	International []ShippingOptionResponse `json:"international"`
}

// ShippingOptionResponse is one selectable shipping method.
type ShippingOptionResponse struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// ProductResponse is one catalog entry served to the frontend.
type ProductResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Desc     string            `json:"desc,omitempty"`
	Category string            `json:"category,omitempty"`
	Tag      string            `json:"tag,omitempty"`
	Price    decimal.Decimal   `json:"price"`
	Currency string            `json:"currency"`
	Stock    domain.StockState `json:"stock"`
	Featured bool              `json:"featured,omitempty"`
	Images   []string          `json:"images,omitempty"`
	Specs    []string          `json:"specs,omitempty"`
}

// CatalogResponse is the full /api/catalog payload.
type CatalogResponse struct {
	Shop     ShopResponse      `json:"shop"`
	Products []ProductResponse `json:"products"`
}

// ConfigResponse is the /api/config payload.
type ConfigResponse struct {
	Shop    ShopResponse `json:"shop"`
	BaseURL string       `json:"baseUrl"`
}

// ToShippingOptionResponse converts one domain shipping option.
func ToShippingOptionResponse(o domain.ShippingOption) ShippingOptionResponse {
	return ShippingOptionResponse{
		ID:       o.ID,
		Label:    o.Label,
		Price:    o.Price.Amount,
		Currency: o.Price.Currency,
	}
}

// ToShopResponse converts a domain.Shop to its response DTO.
func ToShopResponse(shop domain.Shop) ShopResponse {
	resp := ShopResponse{
		Name:            shop.Name,
		Country:         shop.Country,
		DefaultCurrency: shop.DefaultCurrency,
		Whatsapp:        shop.Whatsapp,
		Social:          shop.Social,
		Shipping: ShippingResponse{
			Local:         make([]ShippingOptionResponse, 0, len(shop.Shipping.Local)),
			International: make([]ShippingOptionResponse, 0, len(shop.Shipping.International)),
		},
	}
	for _, o := range shop.Shipping.Local {
		resp.Shipping.Local = append(resp.Shipping.Local, ToShippingOptionResponse(o))
	}
	for _, o := range shop.Shipping.International {
		resp.Shipping.International = append(resp.Shipping.International, ToShippingOptionResponse(o))
	}
	return resp
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Title:    p.Title,
		Desc:     p.Desc,
		Category: p.Category,
		Tag:      p.Tag,
		Price:    p.Price.Amount,
		Currency: p.Price.Currency,
		Stock:    p.Stock,
		Featured: p.Featured,
		Images:   p.Images,
		Specs:    p.Specs,
	}
}

// ToCatalogResponse converts a full domain.Catalog.
func ToCatalogResponse(c domain.Catalog) CatalogResponse {
	products := make([]ProductResponse, len(c.Products))
	for i, p := range c.Products {
		products[i] = ToProductResponse(p)
	}
	return CatalogResponse{
		Shop:     ToShopResponse(c.Shop),
		Products: products,
	}
}
