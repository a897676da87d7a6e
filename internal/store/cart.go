package store

import (
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

// AddToCart puts one unit of the product in the cart, incrementing the
// quantity when the product is already there. Signed-out users are sent to
// the login page instead.
func (s *Store) AddToCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		s.page = "login"
		s.notifyLocked("You need to sign in to shop.", domain.SeverityWarn)
		return
	}

	var product *domain.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		s.notifyLocked("That product is no longer available.", domain.SeverityError)
		return
	}

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity++
			s.notifyLocked(product.Name+" added to cart!", domain.SeveritySuccess)
			return
		}
	}
	s.cart = append(s.cart, domain.CartItem{Product: *product, Quantity: 1})
	s.notifyLocked(product.Name+" added to cart!", domain.SeveritySuccess)
}

// RemoveFromCart drops the matching entry; absent entries are a no-op.
func (s *Store) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateCartQuantity replaces the stored quantity, clamped to a minimum of 1.
func (s *Store) UpdateCartQuantity(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}
