package api

import (
	"context"
	"fmt"
	"net/http"
)

// ServicosAtivos lists only active services, for selection lists.
func (c *Client) ServicosAtivos(ctx context.Context) ([]Servico, error) {
	var items []Servico
	if err := c.get(ctx, "/api/servicos", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AllServicos lists every service, active or not, for the management view.
func (c *Client) AllServicos(ctx context.Context) ([]Servico, error) {
	var items []Servico
	if err := c.get(ctx, "/api/servicos/all", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetServico fetches a single service.
func (c *Client) GetServico(ctx context.Context, id int) (*Servico, error) {
	var item Servico
	if err := c.get(ctx, fmt.Sprintf("/api/servicos/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateServico creates a service from the flat form payload.
func (c *Client) CreateServico(ctx context.Context, payload map[string]any) (string, error) {
	return c.mutate(ctx, http.MethodPost, "/api/servicos", payload)
}

// UpdateServico updates a service. The toggle flow sends a payload
// carrying only the inverted ativo flag.
func (c *Client) UpdateServico(ctx context.Context, id int, payload map[string]any) (string, error) {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/servicos/%d", id), payload)
}

// DeleteServico removes a service.
func (c *Client) DeleteServico(ctx context.Context, id int) (string, error) {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/servicos/%d", id), nil)
}
