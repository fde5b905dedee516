package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// dialogo substitui os Alert/Dialog do app mobile: modal, fechado com enter/esc
type dialogo struct {
	titulo  string
	msg     string
	isError bool
}

func (d dialogo) view(width int) string {
	borderColor := colorSuccess
	if d.isError {
		borderColor = colorDelete
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 3).
		MarginTop(1)

	titulo := lipgloss.NewStyle().Bold(true).Foreground(colorSuccess).Render(d.titulo)
	if d.isError {
		titulo = errorStyle.Render(d.titulo)
	}

	body := fmt.Sprintf("%s\n\n%s\n\n%s",
		titulo,
		d.msg,
		infoStyle.Render("[enter] Cerrar"),
	)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box.Render(body))
}
