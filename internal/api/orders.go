package api

import (
	"context"
	"net/url"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

type OrderRequest struct {
	UserID string             `json:"userId"`
	Items  []domain.OrderItem `json:"items"`
}

// CreateOrder submits the cart snapshot. A non-empty coupon is forwarded as
// a query parameter; the backend decides whether it applies.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest, coupon string) (*domain.Order, error) {
	path := "/orders"
	if coupon != "" {
		path += "?coupon=" + url.QueryEscape(coupon)
	}
	body, err := c.postJSON(ctx, path, req)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := decodeInto(body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	body, err := c.get(ctx, "/orders/user/"+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := decodeInto(body, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
