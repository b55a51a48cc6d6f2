package domain

// Cart is the persisted cart state for one visitor session: a mapping from
// product ID to quantity. A quantity of zero never appears; removing the
// line is the only way to express it.
type Cart struct {
	OwnerID string           `json:"ownerID"`
	Items   map[string]int64 `json:"items"`
}

// NewCart returns an empty cart for the given owner.
func NewCart(ownerID string) Cart {
	return Cart{OwnerID: ownerID, Items: map[string]int64{}}
}

// SetQuantity sets the quantity for a product. Quantities below one remove
// the line instead.
func (c *Cart) SetQuantity(productID string, quantity int64) {
	if c.Items == nil {
		c.Items = map[string]int64{}
	}
	if quantity < 1 {
		delete(c.Items, productID)
		return
	}
	c.Items[productID] = quantity
}

// TotalQuantity sums the quantities across all lines.
func (c Cart) TotalQuantity() int64 {
	var n int64
	for _, q := range c.Items {
		n += q
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartLine is one priced line of a cart as fed to the pricing aggregator:
// a product's unit price together with how many units are being bought.
type CartLine struct {
	ProductID string `json:"productID"`
	Title     string `json:"title"`
	UnitPrice Money  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

// ShippingOption is one selectable shipping method. Local options are priced
// in the shop default currency, international ones in a fixed foreign
// currency; at most one option is selected per cart session.
type ShippingOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price Money  `json:"price"`
}
