package store

import (
	"context"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

// CouponEligible reports whether the coupon field should be offered at all:
// the discount only applies to a purchaser with no prior orders. The backend
// re-validates regardless.
func (s *Store) CouponEligible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil && len(s.history) == 0
}

// PlaceOrder validates the payment form locally, submits the cart snapshot,
// and on success clears the cart, navigates to the profile page and
// refreshes the order history. The two backend calls never overlap: the
// history fetch is only issued after the order call returned. On failure the
// cart stays intact.
func (s *Store) PlaceOrder(ctx context.Context, payment domain.PaymentInfo, coupon string) bool {
	s.mu.RLock()
	sess := s.session
	items := make([]domain.CartItem, len(s.cart))
	copy(items, s.cart)
	firstPurchase := len(s.history) == 0
	epoch := s.epoch
	s.mu.RUnlock()

	if sess == nil {
		s.notify("You need to sign in to check out.", domain.SeverityWarn)
		return false
	}
	if len(items) == 0 {
		s.notify("Your cart is empty.", domain.SeverityError)
		return false
	}
	if err := payment.Validate(); err != nil {
		s.notify(err.Error(), domain.SeverityError)
		return false
	}

	// The coupon is only honored for first-time purchasers; don't even
	// forward it otherwise.
	if !firstPurchase {
		coupon = ""
	}

	orderItems := make([]domain.OrderItem, len(items))
	for i, it := range items {
		orderItems[i] = domain.OrderItem{
			ProductID:   it.ID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
	}

	_, err := s.backend.CreateOrder(ctx, api.OrderRequest{UserID: sess.UserID, Items: orderItems}, coupon)
	if err != nil {
		s.notify(api.ErrorMessage(err, "Could not place the order."), domain.SeverityError)
		return false
	}

	if !s.apply(epoch, func() {
		s.cart = nil
		s.page = "profile"
		s.notifyLocked("Order placed successfully!", domain.SeveritySuccess)
	}) {
		return false
	}

	s.FetchOrderHistory(ctx, sess.UserID)
	return true
}

// FetchOrderHistory repopulates the purchase history. Failures leave the
// previous history unchanged, and responses that arrive after the session
// changed are discarded.
func (s *Store) FetchOrderHistory(ctx context.Context, userID string) bool {
	epoch := s.currentEpoch()

	orders, err := s.backend.UserOrders(ctx, userID)
	if err != nil {
		s.notify(api.ErrorMessage(err, "Could not load your orders."), domain.SeverityError)
		return false
	}

	return s.apply(epoch, func() {
		s.history = orders
	})
}
