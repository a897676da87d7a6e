package domain

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// DefaultProductImage is used when an admin creates a product without one.
const DefaultProductImage = "https://placehold.co/600x400/888888/FFFFFF?text=Producto"

type Comment struct {
	ID   int64  `json:"id"`
	User string `json:"user"`
	Text string `json:"text"`
}
