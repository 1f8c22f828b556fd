// Package api is the HTTP client for the remote storefront service. It
// carries no client state; every call is a plain request/response exchange.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"guitarhub-storefront/internal/domain"
)

// Client talks to the remote service at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New builds a Client. Timeout bounds every request end to end.
func New(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// AuthResponse is the envelope for signup and login.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// AdminAuthResponse is the envelope for admin login.
type AdminAuthResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Admin   *domain.AdminUser `json:"admin,omitempty"`
}

// CheckoutResponse is the envelope for order placement.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ProductResponse is the envelope for admin product mutations that return
// the authoritative entity.
type ProductResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Product *domain.Product `json:"product,omitempty"`
}

// StatusResponse is the envelope for admin product deletion.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CheckoutItem is one line of the checkout request payload.
type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ProductInput carries the editable product fields for admin create/update.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Image       string  `json:"image,omitempty"`
	Year        string  `json:"year,omitempty"`
}

// ListProducts fetches the storefront catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SignUp registers a new customer account.
func (c *Client) SignUp(ctx context.Context, email, username, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "username": username, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/signup", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates a customer.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminLogin authenticates an administrator.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*AdminAuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AdminAuthResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Checkout places an order for the given user and cart lines.
func (c *Client) Checkout(ctx context.Context, userID string, items []CheckoutItem) (*CheckoutResponse, error) {
	body := map[string]interface{}{"user_id": userID, "cart_items": items}
	var resp CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/checkout", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListOrders fetches the user's order history.
func (c *Client) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+userID, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AdminStats fetches the dashboard summary.
func (c *Client) AdminStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminListProducts fetches the full product list for the admin console.
func (c *Client) AdminListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/admin/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a product and returns the server's authoritative copy.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*ProductResponse, error) {
	var resp ProductResponse
	if err := c.do(ctx, http.MethodPost, "/admin/products", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProduct replaces the product's editable fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (*ProductResponse, error) {
	var resp ProductResponse
	if err := c.do(ctx, http.MethodPut, "/admin/products/"+id, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteProduct removes the product.
func (c *Client) DeleteProduct(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/admin/products/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarkSoldOut zeroes the product's stock.
func (c *Client) MarkSoldOut(ctx context.Context, id string) (*ProductResponse, error) {
	var resp ProductResponse
	if err := c.do(ctx, http.MethodPut, "/admin/products/"+id+"/soldout", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Debug("remote call failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
