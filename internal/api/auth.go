package api

import (
	"context"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body, err := c.postJSON(ctx, "/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := decodeInto(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register submits the multipart registration form: a JSON "user" part plus
// an optional "photo" file. The backend answers with a plain text message.
func (c *Client) Register(ctx context.Context, req RegisterRequest, photo *Upload) (string, error) {
	body, contentType, err := multipartBody("user", req, "photo", photo)
	if err != nil {
		return "", err
	}
	resp, err := c.postMultipart(ctx, "/auth/register", body, contentType)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp)), nil
}
