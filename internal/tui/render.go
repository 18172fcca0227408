package tui

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-identity/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderUsers draws users as a bordered table. An empty slice renders the
// header only.
func RenderUsers(users []models.User) string {
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, userRow(user))
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "USERNAME", "EMAIL", "STATUS", "CREATED").
		Rows(rows...).
		String()
}

// RenderUser draws a single account as a key/value block.
func RenderUser(user models.User) string {
	row := userRow(user)
	labels := []string{"ID", "Username", "Email", "Status", "Created"}

	lines := make([]string, len(labels))
	for i, label := range labels {
		lines[i] = labelStyle.Render(label) + row[i]
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func userRow(user models.User) []string {
	status := "enabled"
	if !user.Status {
		status = "disabled"
	}

	created := "-"
	if !user.CreatedAt.IsZero() {
		created = user.CreatedAt.UTC().Format(time.DateTime)
	}

	return []string{strconv.FormatInt(user.ID, 10), user.Username, user.Email, status, created}
}
