package tui

import (
	"strings"

	"github.com/MKhiriev/go-identity/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldUsername = "Username"
	fieldEmail    = "Email"
	fieldPassword = "Password"
)

// CredentialsForm is the Bubble Tea model of the login and registration
// form. Enter on a field moves to the next one; enter on the last field
// submits once every field is filled.
type CredentialsForm struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int

	errMsg    string
	submitted bool
	cancelled bool
}

func NewCredentialsForm(title string, withEmail bool) *CredentialsForm {
	labels := []string{fieldUsername}
	if withEmail {
		labels = append(labels, fieldEmail)
	}
	labels = append(labels, fieldPassword)

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = strings.ToLower(label)
		input.Width = 40
		input.CharLimit = 254
		if label == fieldPassword {
			input.CharLimit = 128
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}
		inputs[i] = input
	}
	inputs[0].Focus()

	return &CredentialsForm{title: title, labels: labels, inputs: inputs}
}

func (m *CredentialsForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CredentialsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.next):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			if missing := m.firstEmpty(); missing >= 0 {
				m.errMsg = m.labels[missing] + " is required"
				m.setFocus(missing)
				return m, nil
			}
			m.errMsg = ""
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CredentialsForm) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(m.labels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field │ enter: submit │ esc: cancel"))

	return appStyle.Render(b.String())
}

// Credentials returns the submitted values. The username and e-mail are
// trimmed; the password is returned as typed.
func (m *CredentialsForm) Credentials() models.Credentials {
	var creds models.Credentials
	for i, label := range m.labels {
		value := m.inputs[i].Value()
		switch label {
		case fieldUsername:
			creds.Username = strings.TrimSpace(value)
		case fieldEmail:
			creds.Email = strings.TrimSpace(value)
		case fieldPassword:
			creds.Password = value
		}
	}
	return creds
}

func (m *CredentialsForm) firstEmpty() int {
	for i, input := range m.inputs {
		if strings.TrimSpace(input.Value()) == "" {
			return i
		}
	}
	return -1
}

func (m *CredentialsForm) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
