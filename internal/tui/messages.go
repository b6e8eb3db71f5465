// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/navalha-dev/navalha/internal/api"
)

// ============================================================================
// Session Messages
// ============================================================================

// AuthProbeMsg carries the result of the startup session probe.
// Any failure, including an unreachable server, lands on the login screen.
type AuthProbeMsg struct {
	User *api.User
	Err  error
}

// LoginResultMsg carries the outcome of a login attempt.
type LoginResultMsg struct {
	User    *api.User
	Message string
	Err     error
}

// RegisterResultMsg carries the outcome of an account registration.
type RegisterResultMsg struct {
	Message string
	Err     error
}

// LogoutMsg carries the outcome of the logout call. The session is
// cleared regardless of Err.
type LogoutMsg struct {
	Message string
	Err     error
}

// ============================================================================
// List Load Messages
// ============================================================================
// Every list result carries the sequence token its request was issued
// with; the router drops results older than the latest issued one.

// AgendamentosMsg delivers the appointments list.
type AgendamentosMsg struct {
	Seq   int
	Items []api.Agendamento
	Err   error
}

// ClientesMsg delivers the clients list (plain or search result).
type ClientesMsg struct {
	Seq   int
	Items []api.Cliente
	Err   error
}

// ServicosMsg delivers the full services list.
type ServicosMsg struct {
	Seq   int
	Items []api.Servico
	Err   error
}

// HojeMsg delivers today's appointments for the resumo metrics.
type HojeMsg struct {
	Seq   int
	Items []api.Agendamento
	Err   error
}

// ResumoClientesMsg delivers the client list for the resumo metrics.
type ResumoClientesMsg struct {
	Seq   int
	Items []api.Cliente
	Err   error
}

// ProximosMsg delivers the upcoming appointments for the resumo panel.
type ProximosMsg struct {
	Seq   int
	Items []api.Agendamento
	Err   error
}

// ============================================================================
// Edit Session Messages
// ============================================================================

// RecordValuesMsg delivers a fetched record flattened to form values,
// ready for the modal to populate (booleans as checkbox state, combined
// timestamps split into date and time parts).
type RecordValuesMsg struct {
	Session EditSession
	Values  FormValues
	Err     error
}

// OptionsMsg delivers the appointment modal's selection lists.
type OptionsMsg struct {
	Clientes []api.Cliente
	Servicos []api.Servico
	Err      error
}

// MutationMsg carries the outcome of a create/update/delete/toggle call.
type MutationMsg struct {
	Resource Resource
	Message  string
	Err      error
}

// ============================================================================
// Timer Messages
// ============================================================================

// NoticeExpiredMsg hides the notification of the given generation.
// A stale generation means a newer notice pre-empted it.
type NoticeExpiredMsg struct {
	Gen int
}

// SearchTimerMsg fires when a debounced search interval elapses. Only
// the latest sequence of a keystroke burst is acted on.
type SearchTimerMsg struct {
	Seq   int
	Query string
}
