// Package commands provides Bubble Tea commands for server operations.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/tui"
)

// ProbeCmd checks for an existing session cookie at startup.
func ProbeCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		user, err := client.Me(context.Background())
		return tui.AuthProbeMsg{User: user, Err: err}
	}
}

// LoginCmd submits the login credentials.
func LoginCmd(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		user, message, err := client.Login(context.Background(), username, password)
		return tui.LoginResultMsg{User: user, Message: message, Err: err}
	}
}

// RegisterCmd submits an account registration.
func RegisterCmd(client *api.Client, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		message, err := client.Register(context.Background(), map[string]any{
			"username": username,
			"email":    email,
			"password": password,
		})
		return tui.RegisterResultMsg{Message: message, Err: err}
	}
}

// LogoutCmd ends the server session. The local session is cleared even
// when the call fails.
func LogoutCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		message, err := client.Logout(context.Background())
		return tui.LogoutMsg{Message: message, Err: err}
	}
}
