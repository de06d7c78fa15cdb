// Package cart defines the cart snapshot types the ordering pipeline passes
// around. Subtotal, tax and total arithmetic happens upstream; this package
// only carries the numbers.
package cart

// Item is a single cart line.
type Item struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// Snapshot is a point-in-time copy of the cart.
type Snapshot struct {
	Items        []Item  `json:"items"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
	RestaurantID string  `json:"restaurantId,omitempty"`
}

// ItemCount sums line quantities, counting a quantity of zero as one line.
func (s Snapshot) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		if item.Quantity <= 0 {
			count++
			continue
		}
		count += item.Quantity
	}
	return count
}

// Empty reports whether the snapshot has no lines.
func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}
