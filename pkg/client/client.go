// Package client is a typed Go client for the shopping-list REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID         string    `json:"_id"`
	Items      []Item    `json:"items"`
	TotalItems int       `json:"totalItems"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type OrdersPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// APIError carries the server's error envelope alongside the HTTP
// status it arrived with.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	hc      *http.Client
}

// New builds a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api".
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (Category, error) {
	var out Category
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/categories", body, &out); err != nil {
		return Category{}, err
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context, page, limit int) (OrdersPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out OrdersPage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return OrdersPage{}, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, items []Item) (Order, error) {
	var out Order
	body := map[string][]Item{"items": items}
	if err := c.do(ctx, http.MethodPost, "/orders", body, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeErr(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeErr(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		envelope.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
}
