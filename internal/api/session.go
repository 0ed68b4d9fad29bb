package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samcodingcoach/toko2025/domain"
)

// Login opens a cashier session. Wrong credentials come back as a
// ServerError carrying the backend's own message.
func (c *Client) Login(ctx context.Context, username, password string) (domain.UserSession, error) {
	req := domain.LoginRequest{Username: username, Password: password}
	return postJSON[domain.UserSession](ctx, c, "/api/sesi_kasir/login", req)
}

// CloseSession ends the cashier's register session server-side.
func (c *Client) CloseSession(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/sesi_kasir/off/%d", userID)
	_, err := request[struct{}](ctx, c, http.MethodGet, path, nil, "")
	return err
}

// BusinessProfile fetches the shop identity shown on receipts and the
// account page.
func (c *Client) BusinessProfile(ctx context.Context) (domain.BusinessProfile, error) {
	rows, err := request[[]domain.BusinessProfile](ctx, c, http.MethodGet, "/api/profil-usaha", nil, "")
	if err != nil {
		return domain.BusinessProfile{}, err
	}
	if len(rows) == 0 {
		return domain.BusinessProfile{}, &ServerError{Status: http.StatusNotFound, Message: "business profile not configured"}
	}
	return rows[0], nil
}
