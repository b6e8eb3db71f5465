package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/navalha-dev/navalha/internal/tui"
)

// loginMode selects between the login and registration forms.
type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

// LoginModel is the view model for the authentication screen. The same
// screen hosts both the login form and the registration form; ctrl+r
// switches between them.
type LoginModel struct {
	mode     loginMode
	username textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	width    int
	height   int
}

// NewLoginModel creates the authentication screen in login mode.
func NewLoginModel(width, height int) LoginModel {
	username := textinput.New()
	username.Placeholder = "usuário"
	username.CharLimit = 80
	username.Width = 30
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 30

	password := textinput.New()
	password.Placeholder = "senha"
	password.CharLimit = 80
	password.Width = 30
	password.EchoMode = textinput.EchoPassword

	return LoginModel{
		username: username,
		email:    email,
		password: password,
		width:    width,
		height:   height,
	}
}

// SetBusy marks an authentication request in flight, which disables
// resubmission until the result lands.
func (m *LoginModel) SetBusy(busy bool) {
	m.busy = busy
}

// Reset clears the password and returns to login mode. Called after a
// successful registration so the user can sign in.
func (m *LoginModel) Reset() {
	m.mode = modeLogin
	m.password.SetValue("")
	m.focusInput(0)
}

// inputs returns the visible inputs for the current mode.
func (m *LoginModel) inputs() []*textinput.Model {
	if m.mode == modeRegister {
		return []*textinput.Model{&m.username, &m.email, &m.password}
	}
	return []*textinput.Model{&m.username, &m.password}
}

func (m *LoginModel) focusInput(i int) {
	inputs := m.inputs()
	m.focus = i % len(inputs)
	for j, in := range inputs {
		if j == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// Init returns the initial command for the login view.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login view.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyTab, tui.KeyDown:
			m.focusInput(m.focus + 1)
			return m, nil

		case "shift+tab", tui.KeyUp:
			n := len(m.inputs())
			m.focusInput((m.focus + n - 1) % n)
			return m, nil

		case "ctrl+r":
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}
			m.focusInput(0)
			return m, nil

		case tui.KeyEnter:
			if m.busy {
				return m, nil
			}
			return m, m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	inputs := m.inputs()
	var cmd tea.Cmd
	*inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return m, cmd
}

func (m LoginModel) submit() tea.Cmd {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()
	if username == "" || password == "" {
		return nil
	}

	if m.mode == modeRegister {
		email := strings.TrimSpace(m.email.Value())
		return func() tea.Msg {
			return RegisterSubmitMsg{Username: username, Email: email, Password: password}
		}
	}
	return func() tea.Msg {
		return LoginSubmitMsg{Username: username, Password: password}
	}
}

// View renders the login view.
func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Navalha"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Gestão de barbearia"))
	b.WriteString("\n\n")

	if m.mode == modeRegister {
		b.WriteString(tui.TitleStyle.Render("Criar conta"))
	} else {
		b.WriteString(tui.TitleStyle.Render("Entrar"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.username.View())
	b.WriteString("\n")
	if m.mode == modeRegister {
		b.WriteString(m.email.View())
		b.WriteString("\n")
	}
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(tui.DimStyle.Render("Enviando..."))
	} else if m.mode == modeRegister {
		b.WriteString(tui.DimStyle.Render("enter: criar conta  ctrl+r: voltar ao login"))
	} else {
		b.WriteString(tui.DimStyle.Render("enter: entrar  ctrl+r: criar conta"))
	}

	box := tui.BoxStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
