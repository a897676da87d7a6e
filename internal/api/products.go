package api

import (
	"context"
	"fmt"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	body, err := c.get(ctx, "/products")
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := decodeInto(body, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	body, err := c.get(ctx, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decodeInto(body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ProductComments(ctx context.Context, id int64) ([]domain.Comment, error) {
	body, err := c.get(ctx, fmt.Sprintf("/products/%d/comments", id))
	if err != nil {
		return nil, err
	}
	var comments []domain.Comment
	if err := decodeInto(body, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

type CommentRequest struct {
	Text      string `json:"text"`
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId"`
}

func (c *Client) AddComment(ctx context.Context, productID int64, req CommentRequest) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/products/%d/comments", productID), req)
	return err
}
