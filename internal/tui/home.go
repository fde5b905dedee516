package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type feature struct {
	icono  string
	titulo string
	desc   string
}

var features = []feature{
	{"📖", "Contenido Actualizado", "Cursos revisados cada semana para estar al día con las últimas tecnologías."},
	{"🎓", "Certificados Oficiales", "Al terminar cada módulo, obtendrás un certificado digital profesional."},
	{"💻", "Prácticas Reales", "Proyectos prácticos basados en desafíos reales de la industria tech."},
}

type homeModel struct {
	width int
}

func (m *homeModel) setSize(w, _ int) {
	m.width = w
}

func (m *homeModel) update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, keys.Catalogo):
		return navegar(pantallaListado)
	case key.Matches(keyMsg, keys.Alta):
		return navegar(pantallaAlta)
	case key.Matches(keyMsg, keys.Salir):
		return tea.Quit
	}
	return nil
}

func (m homeModel) view() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	heroTitle := lipgloss.NewStyle().Bold(true).Foreground(colorTextDark).
		Render("Impulsa tu carrera con") + "\n" +
		lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("EduDAM")

	subtitle := lipgloss.NewStyle().Foreground(colorTextGray).Width(min(width, 60)).Align(lipgloss.Center).
		Render("Aprende programación, bases de datos y desarrollo móvil con los mejores expertos.")

	botones := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("[l] Ver catálogo de cursos"),
		"   ",
		titleStyle.Render("[a] Alta de Cursos"),
	)

	var sb strings.Builder
	sb.WriteString("\n🚀\n\n")
	sb.WriteString(heroTitle + "\n\n")
	sb.WriteString(subtitle + "\n\n")
	sb.WriteString(botones + "\n")
	sb.WriteString(dividerStyle.Render(strings.Repeat("─", min(width, 60))) + "\n")

	for _, f := range features {
		sb.WriteString("\n" + f.icono + " " + labelStyle.Foreground(colorTextDark).Render(f.titulo) + "\n")
		sb.WriteString(infoStyle.Width(min(width, 60)).Align(lipgloss.Center).Render(f.desc) + "\n")
	}

	return center.Render(sb.String())
}

func (m homeModel) ayuda() ayuda {
	return ayuda{keys.Catalogo, keys.Alta, keys.Salir}
}
