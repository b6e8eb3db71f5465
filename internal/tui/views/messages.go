// Package views provides TUI view components for the Navalha application.
package views

import (
	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/tui"
)

// ============================================================================
// Request Messages
// ============================================================================
// Views never talk to the server. They emit request messages and the
// app translates them into gateway commands.

// LoginSubmitMsg is sent when the user submits the login form.
type LoginSubmitMsg struct {
	Username string
	Password string
}

// RegisterSubmitMsg is sent when the user submits the registration form.
type RegisterSubmitMsg struct {
	Username string
	Email    string
	Password string
}

// OpenEditorMsg is sent when the user opens the create or edit modal
// for a record.
type OpenEditorMsg struct {
	Session tui.EditSession
}

// ConfirmDeleteMsg is sent when the user asks to remove a record. The
// app shows the confirmation prompt before anything is sent.
type ConfirmDeleteMsg struct {
	Resource tui.Resource
	ID       int
}

// ToggleServicoMsg is sent when the user flips a service's active flag.
// Ativo carries the new value.
type ToggleServicoMsg struct {
	ID    int
	Ativo bool
}

// FilterChangedMsg is sent when the appointment filters change.
type FilterChangedMsg struct {
	Filter api.AgendamentoFilter
}

// SearchInputMsg is sent on every keystroke of the client search input.
// The app debounces before issuing a request.
type SearchInputMsg struct {
	Query string
}

// SubmitFormMsg is sent when the user submits the modal form.
type SubmitFormMsg struct {
	Payload map[string]any
}

// FormInvalidMsg is sent when the form fails local validation.
type FormInvalidMsg struct {
	Reason string
}

// CancelFormMsg is sent when the user dismisses the modal.
type CancelFormMsg struct{}
