// Package tui renders the interactive parts of the command-line client: the
// credentials form and the user tables.
package tui

import (
	"errors"
	"io"

	"github.com/MKhiriev/go-identity/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("cancelled by user")

// PromptCredentials runs the credentials form on in/out and returns what the
// user submitted. withEmail adds the e-mail field used by registration.
func PromptCredentials(title string, withEmail bool, in io.Reader, out io.Writer) (models.Credentials, error) {
	form := NewCredentialsForm(title, withEmail)

	finalModel, err := tea.NewProgram(form, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return models.Credentials{}, err
	}

	result, ok := finalModel.(*CredentialsForm)
	if !ok {
		return models.Credentials{}, tea.ErrProgramKilled
	}
	if result.cancelled {
		return models.Credentials{}, ErrUserQuit
	}

	return result.Credentials(), nil
}
