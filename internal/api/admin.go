package api

import (
	"context"
	"net/url"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

func (c *Client) PendingUsers(ctx context.Context) ([]domain.PendingUser, error) {
	body, err := c.get(ctx, "/admin/pending-users")
	if err != nil {
		return nil, err
	}
	var users []domain.PendingUser
	if err := decodeInto(body, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ApproveUser(ctx context.Context, userID string) error {
	_, err := c.postJSON(ctx, "/admin/approve-user/"+url.PathEscape(userID), nil)
	return err
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreateProduct submits the multipart product form: a JSON "product" part
// plus an optional "image" file.
func (c *Client) CreateProduct(ctx context.Context, req ProductRequest, image *Upload) (*domain.Product, error) {
	body, contentType, err := multipartBody("product", req, "image", image)
	if err != nil {
		return nil, err
	}
	resp, err := c.postMultipart(ctx, "/admin/products", body, contentType)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decodeInto(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
