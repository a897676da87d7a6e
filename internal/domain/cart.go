package domain

import "math"

// CartItem is a catalog product plus the quantity in the cart. The cart is
// keyed by product id; adding an existing product increments the quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartTotal sums price*quantity over all items, rounded to two decimals.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return Round2(total)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
