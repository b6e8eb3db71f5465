package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListClientes lists all clients.
func (c *Client) ListClientes(ctx context.Context) ([]Cliente, error) {
	var items []Cliente
	if err := c.get(ctx, "/api/clientes", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchClientes searches clients by name or phone. Callers only invoke
// this once the query is at least two characters long.
func (c *Client) SearchClientes(ctx context.Context, q string) ([]Cliente, error) {
	query := url.Values{}
	query.Set("q", q)

	var items []Cliente
	if err := c.get(ctx, "/api/clientes/search", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCliente fetches a single client.
func (c *Client) GetCliente(ctx context.Context, id int) (*Cliente, error) {
	var item Cliente
	if err := c.get(ctx, fmt.Sprintf("/api/clientes/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateCliente creates a client from the flat form payload.
func (c *Client) CreateCliente(ctx context.Context, payload map[string]any) (string, error) {
	return c.mutate(ctx, http.MethodPost, "/api/clientes", payload)
}

// UpdateCliente updates a client.
func (c *Client) UpdateCliente(ctx context.Context, id int, payload map[string]any) (string, error) {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/clientes/%d", id), payload)
}

// DeleteCliente removes a client. Appointments pointing at it are not
// guaranteed to be cleaned up; renderers tolerate the dangling link.
func (c *Client) DeleteCliente(ctx context.Context, id int) (string, error) {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/clientes/%d", id), nil)
}
