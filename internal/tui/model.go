package tui

import (
	"context"
	"time"

	"cursos-tui/internal/domain"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// CursosAPI é o que as telas precisam do backend. *api.Client satisfaz.
type CursosAPI interface {
	GetCursos(ctx context.Context) ([]domain.Curso, error)
	CreateCurso(ctx context.Context, curso domain.NuevoCurso) error
	DeleteCurso(ctx context.Context, id int) error
	GetPlataformas(ctx context.Context) ([]domain.Plataforma, error)
}

type pantalla int

const (
	pantallaHome pantalla = iota
	pantallaListado
	pantallaAlta
)

// --- MODEL PRINCIPAL ---
type Model struct {
	actual  pantalla
	home    homeModel
	listado listadoModel
	alta    altaModel
	help    help.Model
}

// --- INITIAL MODEL ---
func InitialModel(client CursosAPI, log logrus.FieldLogger) Model {
	return Model{
		actual:  pantallaHome,
		listado: newListadoModel(client, log),
		alta:    newAltaModel(client, log, time.Now),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// --- UPDATE LOOP ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd = m.updateActual(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.home.setSize(msg.Width, msg.Height)
		m.listado.setSize(msg.Width, msg.Height-1)
		m.alta.setSize(msg.Width, msg.Height-1)

	case navegarMsg:
		m.actual = pantalla(msg)
		switch m.actual {
		case pantallaListado:
			cmd = m.listado.activar()
		case pantallaAlta:
			cmd = m.alta.activar()
		}

	// Respostas da API vão para a tela dona, mesmo que o usuário já tenha saído dela
	case cursosLoadedMsg, cursosErrMsg, cursoDeletedMsg, deleteErrMsg:
		cmd = m.listado.update(msg)

	case plataformasLoadedMsg, plataformasErrMsg, cursoCreatedMsg, createErrMsg:
		cmd = m.alta.update(msg)

	case spinner.TickMsg:
		// cada spinner ignora ticks com ID que não é o seu
		cmd = tea.Batch(m.listado.update(msg), m.alta.update(msg))

	default:
		cmd = m.updateActual(msg)
	}

	return m, cmd
}

func (m *Model) updateActual(msg tea.Msg) tea.Cmd {
	switch m.actual {
	case pantallaListado:
		return m.listado.update(msg)
	case pantallaAlta:
		return m.alta.update(msg)
	default:
		return m.home.update(msg)
	}
}

// --- VIEW (Renderização) ---

func (m Model) View() string {
	var body string
	var atalhos ayuda

	switch m.actual {
	case pantallaListado:
		body, atalhos = m.listado.view(), m.listado.ayuda()
	case pantallaAlta:
		body, atalhos = m.alta.view(), m.alta.ayuda()
	default:
		body, atalhos = m.home.view(), m.home.ayuda()
	}

	return body + "\n" + m.help.View(atalhos)
}
