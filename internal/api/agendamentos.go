package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/navalha-dev/navalha/internal/format"
)

// AgendamentoFilter narrows ListAgendamentos. A Date (2006-01-02)
// expands to the closed interval covering that whole calendar day.
type AgendamentoFilter struct {
	Date   string
	Status string
}

// ListAgendamentos lists appointments, optionally filtered.
func (c *Client) ListAgendamentos(ctx context.Context, f AgendamentoFilter) ([]Agendamento, error) {
	query := url.Values{}
	if f.Date != "" {
		start, end := format.DayInterval(f.Date)
		query.Set("data_inicio", start)
		query.Set("data_fim", end)
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}

	var items []Agendamento
	if err := c.get(ctx, "/api/agendamentos", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AgendamentosHoje lists today's open appointments for the summary.
func (c *Client) AgendamentosHoje(ctx context.Context) ([]Agendamento, error) {
	var items []Agendamento
	if err := c.get(ctx, "/api/agendamentos/hoje", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ProximosAgendamentos lists the next week's appointments for the summary.
func (c *Client) ProximosAgendamentos(ctx context.Context) ([]Agendamento, error) {
	var items []Agendamento
	if err := c.get(ctx, "/api/agendamentos/proximos", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetAgendamento fetches a single appointment.
func (c *Client) GetAgendamento(ctx context.Context, id int) (*Agendamento, error) {
	var item Agendamento
	if err := c.get(ctx, fmt.Sprintf("/api/agendamentos/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateAgendamento creates an appointment from the flat form payload.
func (c *Client) CreateAgendamento(ctx context.Context, payload map[string]any) (string, error) {
	return c.mutate(ctx, http.MethodPost, "/api/agendamentos", payload)
}

// UpdateAgendamento updates an appointment.
func (c *Client) UpdateAgendamento(ctx context.Context, id int, payload map[string]any) (string, error) {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/agendamentos/%d", id), payload)
}

// DeleteAgendamento cancels an appointment server-side.
func (c *Client) DeleteAgendamento(ctx context.Context, id int) (string, error) {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/agendamentos/%d", id), nil)
}
