package views

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/format"
	"github.com/navalha-dev/navalha/internal/tui"
)

// ============================================================================
// Form Fields
// ============================================================================

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
	fieldCheck
)

// selectOption is one entry of a select field. Value is what the
// payload carries; Label is what the user sees.
type selectOption struct {
	Value string
	Label string
}

// formField is a single modal input: a text input, an option selector
// or a checkbox.
type formField struct {
	name     string
	label    string
	kind     fieldKind
	input    textinput.Model
	options  []selectOption
	optIndex int
	checked  bool
}

func textField(name, label, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	return formField{name: name, label: label, kind: fieldText, input: ti}
}

func selectField(name, label string, options []selectOption) formField {
	return formField{name: name, label: label, kind: fieldSelect, options: options}
}

func checkField(name, label string) formField {
	return formField{name: name, label: label, kind: fieldCheck}
}

// value returns the field's payload value as a string.
func (f *formField) value() string {
	switch f.kind {
	case fieldSelect:
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.optIndex].Value
	case fieldCheck:
		return strconv.FormatBool(f.checked)
	default:
		return strings.TrimSpace(f.input.Value())
	}
}

// setValue syncs the field from a flattened record value.
func (f *formField) setValue(v string) {
	switch f.kind {
	case fieldSelect:
		for i, opt := range f.options {
			if opt.Value == v {
				f.optIndex = i
				return
			}
		}
	case fieldCheck:
		f.checked = v == "true"
	default:
		f.input.SetValue(v)
	}
}

// statusOptions are the appointment states the server recognises.
var statusOptions = []selectOption{
	{Value: "pendente", Label: "pendente"},
	{Value: "agendado", Label: "agendado"},
	{Value: "confirmado", Label: "confirmado"},
	{Value: "concluido", Label: "concluido"},
	{Value: "cancelado", Label: "cancelado"},
}

// ============================================================================
// ModalModel
// ============================================================================

// ModalModel is the create/edit overlay. It is built from an edit
// session, populated asynchronously with record values and selection
// options, and produces the mutation payload on submit.
type ModalModel struct {
	session tui.EditSession
	fields  []formField
	focus   int
	loading bool
	values  tui.FormValues
	width   int
}

// NewModalModel builds the field schema for the session's resource.
// Edit sessions start in a loading state until the record arrives.
func NewModalModel(session tui.EditSession, width int) ModalModel {
	var fields []formField
	switch session.Resource {
	case tui.ResourceAgendamento:
		fields = []formField{
			selectField("cliente_id", "Cliente", nil),
			selectField("servico_id", "Serviço", nil),
			textField("data", "Data", "AAAA-MM-DD"),
			textField("hora", "Hora", "HH:MM"),
			selectField("status", "Status", statusOptions),
			textField("observacoes", "Observações", ""),
		}
	case tui.ResourceCliente:
		fields = []formField{
			textField("nome", "Nome", ""),
			textField("telefone", "Telefone", ""),
			textField("email", "Email", ""),
		}
	case tui.ResourceServico:
		fields = []formField{
			textField("nome", "Nome", ""),
			textField("valor", "Valor", "0.00"),
			textField("duracao_estimada", "Duração (minutos)", "30"),
			textField("descricao", "Descrição", ""),
			checkField("ativo", "Ativo"),
		}
	}

	m := ModalModel{
		session: session,
		fields:  fields,
		loading: session.Editing() || session.Resource == tui.ResourceAgendamento,
		width:   width,
	}
	// New services default to active.
	if session.Resource == tui.ResourceServico && !session.Editing() {
		m.setFieldValue("ativo", "true")
	}
	m.focusField(0)
	return m
}

// Session returns the edit session this modal serves.
func (m ModalModel) Session() tui.EditSession {
	return m.session
}

// Populate fills the form from a flattened record.
func (m *ModalModel) Populate(values tui.FormValues) {
	m.values = values
	m.applyValues()
	m.loading = m.pendingOptions()
}

// SetOptions installs the appointment selection lists.
func (m *ModalModel) SetOptions(clientes []api.Cliente, servicos []api.Servico) {
	for i := range m.fields {
		switch m.fields[i].name {
		case "cliente_id":
			opts := make([]selectOption, len(clientes))
			for j, c := range clientes {
				opts[j] = selectOption{Value: strconv.Itoa(c.ID), Label: c.Nome}
			}
			m.fields[i].options = opts
		case "servico_id":
			opts := make([]selectOption, len(servicos))
			for j, s := range servicos {
				opts[j] = selectOption{Value: strconv.Itoa(s.ID), Label: s.Nome + " - " + format.Money(s.Valor)}
			}
			m.fields[i].options = opts
		}
	}
	m.applyValues()
	m.loading = m.session.Editing() && m.values.Fields == nil
}

// applyValues re-syncs the fields from the stored record values. It
// runs again when options arrive after the record did.
func (m *ModalModel) applyValues() {
	if m.values.Fields != nil {
		for name, v := range m.values.Fields {
			m.setFieldValue(name, v)
		}
	}
	if m.values.Checks != nil {
		for name, checked := range m.values.Checks {
			m.setFieldValue(name, strconv.FormatBool(checked))
		}
	}
}

func (m *ModalModel) setFieldValue(name, v string) {
	for i := range m.fields {
		if m.fields[i].name == name {
			m.fields[i].setValue(v)
			return
		}
	}
}

// pendingOptions reports whether a select field is still without options.
func (m *ModalModel) pendingOptions() bool {
	for i := range m.fields {
		f := &m.fields[i]
		if f.kind == fieldSelect && f.name != "status" && f.options == nil {
			return true
		}
	}
	return false
}

func (m *ModalModel) focusField(i int) {
	for j := range m.fields {
		m.fields[j].input.Blur()
	}
	m.focus = i
	if m.fields[m.focus].kind == fieldText {
		m.fields[m.focus].input.Focus()
	}
}

// Init returns the initial command for the modal.
func (m ModalModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles modal input.
func (m ModalModel) Update(msg tea.Msg) (ModalModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case tui.KeyEsc:
		return m, func() tea.Msg { return CancelFormMsg{} }

	case "ctrl+s":
		return m.submit()

	case tui.KeyTab, tui.KeyDown:
		m.focusField((m.focus + 1) % len(m.fields))
		return m, nil

	case "shift+tab", tui.KeyUp:
		m.focusField((m.focus + len(m.fields) - 1) % len(m.fields))
		return m, nil

	case tui.KeyEnter:
		if m.focus == len(m.fields)-1 {
			return m.submit()
		}
		m.focusField(m.focus + 1)
		return m, nil
	}

	field := &m.fields[m.focus]
	switch field.kind {
	case fieldSelect:
		switch keyMsg.String() {
		case tui.KeyLeft:
			if field.optIndex > 0 {
				field.optIndex--
			}
		case tui.KeyRight:
			if field.optIndex < len(field.options)-1 {
				field.optIndex++
			}
		}
		return m, nil

	case fieldCheck:
		if keyMsg.String() == " " {
			field.checked = !field.checked
		}
		return m, nil

	default:
		var cmd tea.Cmd
		field.input, cmd = field.input.Update(msg)
		return m, cmd
	}
}

func (m ModalModel) submit() (ModalModel, tea.Cmd) {
	payload, err := m.Payload()
	if err != nil {
		reason := err.Error()
		return m, func() tea.Msg { return FormInvalidMsg{Reason: reason} }
	}
	return m, func() tea.Msg { return SubmitFormMsg{Payload: payload} }
}

// Payload assembles the mutation body. Date and time inputs recombine
// into the API's single timestamp field; the parts never appear in the
// payload.
func (m ModalModel) Payload() (map[string]any, error) {
	raw := map[string]string{}
	checks := map[string]bool{}
	for i := range m.fields {
		f := &m.fields[i]
		if f.kind == fieldCheck {
			checks[f.name] = f.checked
			continue
		}
		raw[f.name] = f.value()
	}

	payload := map[string]any{}
	switch m.session.Resource {
	case tui.ResourceAgendamento:
		clienteID, err := strconv.Atoi(raw["cliente_id"])
		if err != nil {
			return nil, errors.New("selecione um cliente")
		}
		servicoID, err := strconv.Atoi(raw["servico_id"])
		if err != nil {
			return nil, errors.New("selecione um serviço")
		}
		if raw["data"] == "" || raw["hora"] == "" {
			return nil, errors.New("preencha data e hora")
		}
		payload["cliente_id"] = clienteID
		payload["servico_id"] = servicoID
		payload["data_hora"] = format.JoinDateTime(raw["data"], raw["hora"])
		payload["status"] = raw["status"]
		payload["observacoes"] = raw["observacoes"]

	case tui.ResourceCliente:
		if raw["nome"] == "" {
			return nil, errors.New("preencha o nome")
		}
		payload["nome"] = raw["nome"]
		payload["telefone"] = raw["telefone"]
		payload["email"] = raw["email"]

	case tui.ResourceServico:
		if raw["nome"] == "" {
			return nil, errors.New("preencha o nome")
		}
		valor, err := strconv.ParseFloat(raw["valor"], 64)
		if err != nil {
			return nil, errors.New("valor inválido")
		}
		duracao, err := strconv.Atoi(raw["duracao_estimada"])
		if err != nil {
			return nil, errors.New("duração inválida")
		}
		payload["nome"] = raw["nome"]
		payload["valor"] = valor
		payload["duracao_estimada"] = duracao
		payload["descricao"] = raw["descricao"]
		payload["ativo"] = checks["ativo"]
	}
	return payload, nil
}

// View renders the modal overlay.
func (m ModalModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(m.session.Title()))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(tui.DimStyle.Render("Carregando..."))
		return tui.BoxStyle.Render(b.String())
	}

	for i := range m.fields {
		f := &m.fields[i]
		label := f.label
		if i == m.focus {
			label = tui.SelectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n  ")

		switch f.kind {
		case fieldSelect:
			if len(f.options) == 0 {
				b.WriteString(tui.DimStyle.Render("(nenhuma opção)"))
			} else {
				b.WriteString("◀ " + f.options[f.optIndex].Label + " ▶")
			}
		case fieldCheck:
			if f.checked {
				b.WriteString("[x]")
			} else {
				b.WriteString("[ ]")
			}
		default:
			b.WriteString(f.input.View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("enter/tab: avançar  ctrl+s: salvar  esc: cancelar"))
	return tui.BoxStyle.Render(b.String())
}
