package tui

import (
	"fmt"
	"strings"

	"cursos-tui/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// altura do cabeçalho (título + barra de busca com borda)
const listadoHeaderHeight = 5

type listadoModel struct {
	api CursosAPI
	log logrus.FieldLogger

	estado   domain.Listado
	list     list.Model
	busqueda textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	loading     bool
	eliminando  bool
	detalle     *domain.Curso
	confirmando *domain.Curso // curso aguardando confirmação de exclusão
	alerta      *dialogo
	sesion      int // incrementado a cada activar
	width       int
}

func newListadoModel(client CursosAPI, log logrus.FieldLogger) listadoModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// o filtro é nosso (substring), não o fuzzy embutido
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("curso", "cursos")

	ti := textinput.New()
	ti.Placeholder = "Buscar curso..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Focus()

	return listadoModel{
		api:      client,
		log:      log,
		list:     l,
		busqueda: ti,
		spinner:  s,
		viewport: viewport.New(0, 0),
	}
}

func (m *listadoModel) setSize(w, h int) {
	m.width = w
	m.list.SetSize(w, max(h-listadoHeaderHeight, 1))
	m.busqueda.Width = max(w-10, 10)
	m.viewport.Width = w
	m.viewport.Height = max(h-2, 1)
}

// activar roda toda vez que a tela fica ativa: a lista é recarregada do servidor
func (m *listadoModel) activar() tea.Cmd {
	m.sesion++
	m.loading = true
	m.detalle = nil
	m.confirmando = nil
	m.alerta = nil
	return tea.Batch(m.spinner.Tick, fetchCursosCmd(m.api, m.sesion))
}

func (m *listadoModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case cursosLoadedMsg:
		if msg.sesion != m.sesion {
			m.log.WithField("sesion", msg.sesion).Debug("resposta antiga descartada")
			return nil
		}
		m.loading = false
		m.estado.Reemplazar(msg.cursos)
		m.refrescarItems()
		m.log.WithField("total", m.estado.Len()).Info("cursos cargados")
		return nil

	case cursosErrMsg:
		if msg.sesion != m.sesion {
			return nil
		}
		// a lista anterior (ou vazia) continua na tela
		m.loading = false
		m.log.WithError(msg.err).Error("no se pudieron cargar los cursos")
		m.alerta = &dialogo{titulo: "Error", msg: "No se pudieron cargar los cursos", isError: true}
		return nil

	case cursoDeletedMsg:
		m.eliminando = false
		log := m.log.WithField("id_curso", msg.id)
		if c, ok := m.estado.Buscar(msg.id); ok {
			log = log.WithField("titulo", c.Titulo)
		}
		m.estado.Eliminar(msg.id)
		m.refrescarItems()
		if m.detalle != nil && m.detalle.ID == msg.id {
			m.detalle = nil
		}
		log.Info("curso eliminado")
		m.alerta = &dialogo{titulo: "Borrado", msg: "Curso eliminado"}
		return nil

	case deleteErrMsg:
		m.eliminando = false
		m.log.WithError(msg.err).WithField("id_curso", msg.id).Error("no se pudo eliminar")
		m.alerta = &dialogo{titulo: "Error", msg: "No se pudo eliminar", isError: true}
		return nil

	case spinner.TickMsg:
		if !m.loading && !m.eliminando {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor piscando etc.
	var cmd tea.Cmd
	m.busqueda, cmd = m.busqueda.Update(msg)
	return cmd
}

func (m *listadoModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// 1. Alerta aberto: só fecha
	if m.alerta != nil {
		if key.Matches(msg, keys.Cerrar) {
			m.alerta = nil
		}
		return nil
	}

	// 2. Confirmação de exclusão
	if m.confirmando != nil {
		switch {
		case key.Matches(msg, keys.Confirmar):
			id := m.confirmando.ID
			m.confirmando = nil
			m.eliminando = true
			return tea.Batch(m.spinner.Tick, deleteCursoCmd(m.api, id))
		case key.Matches(msg, keys.Cancelar):
			m.confirmando = nil
		}
		return nil
	}

	if m.eliminando {
		return nil
	}

	// 3. Detalhes de um curso
	if m.detalle != nil {
		switch {
		case key.Matches(msg, keys.Volver):
			m.detalle = nil
			return nil
		case key.Matches(msg, keys.Eliminar):
			c := *m.detalle
			m.confirmando = &c
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	// 4. Lista + busca
	switch {
	case key.Matches(msg, keys.Volver):
		return navegar(pantallaHome)
	case key.Matches(msg, keys.Nuevo):
		return navegar(pantallaAlta)
	case key.Matches(msg, keys.Recargar):
		if m.loading {
			return nil
		}
		return m.activar()
	}

	if m.loading {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Detalle):
		if c, ok := m.list.SelectedItem().(domain.Curso); ok {
			m.detalle = &c
			m.renderDetalle()
		}
		return nil
	case key.Matches(msg, keys.Eliminar):
		if c, ok := m.list.SelectedItem().(domain.Curso); ok {
			m.confirmando = &c
		}
		return nil
	case key.Matches(msg, keys.Navegar):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}

	// Qualquer outra tecla vai para a barra de busca; o filtro é refeito a cada tecla
	var cmd tea.Cmd
	antes := m.busqueda.Value()
	m.busqueda, cmd = m.busqueda.Update(msg)
	if m.busqueda.Value() != antes {
		m.estado.SetBusqueda(m.busqueda.Value())
		m.refrescarItems()
	}
	return cmd
}

func (m *listadoModel) refrescarItems() {
	filtrados := m.estado.Filtrados()

	items := make([]list.Item, len(filtrados))
	for i, c := range filtrados {
		items[i] = c
	}
	m.list.SetItems(items)

	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// Helper para renderizar o detalhe no viewport
func (m *listadoModel) renderDetalle() {
	if m.detalle == nil {
		return
	}
	c := m.detalle

	imagen := c.ImagenURL
	if imagen == "" {
		imagen = "—"
	}
	descripcion := c.Descripcion
	if descripcion == "" {
		descripcion = "Curso de especialización técnica."
	}

	content := fmt.Sprintf("%s\n%s\n\n%s %s €\n%s %s horas\n%s %s\n%s %d\n%s %s\n\n%s",
		titleStyle.Render(fmt.Sprintf("#%d %s", c.ID, c.Titulo)),
		dividerStyle.Render(strings.Repeat("─", max(m.viewport.Width, 20))),
		labelStyle.Render("💶 Precio:"), c.Precio,
		labelStyle.Render("⏱  Duración:"), c.Horas,
		labelStyle.Render("📅 Publicado:"), c.GetFormattedDate(),
		labelStyle.Render("🏫 Plataforma:"), c.PlataformaID,
		labelStyle.Render("🖼  Imagen:"), imagen,
		infoStyle.Render(descripcion),
	)

	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m listadoModel) view() string {
	if m.alerta != nil {
		return m.alerta.view(m.width)
	}

	if m.confirmando != nil {
		return dialogo{
			titulo:  "Eliminar Curso",
			msg:     fmt.Sprintf("¿Estás seguro?\n\n%s", focusStyle.Render(m.confirmando.Titulo)),
			isError: true,
		}.view(m.width) + "\n" + infoStyle.Render("[s] Eliminar • [n] Cancelar")
	}

	if m.eliminando {
		return fmt.Sprintf("\n %s Eliminando curso...\n", m.spinner.View())
	}

	if m.detalle != nil {
		return m.viewport.View()
	}

	header := titleStyle.Render("Catálogo EduDAM") + "\n" + searchStyle.Render(m.busqueda.View())

	if m.loading {
		return fmt.Sprintf("%s\n\n %s Cargando cursos...\n", header, m.spinner.View())
	}

	if !m.estado.Carregado() {
		return header + "\n\n" + infoStyle.Render("  Catálogo no disponible. [ctrl+r] Reintentar")
	}

	if m.estado.Len() == 0 {
		return header + "\n\n" + infoStyle.Render("  No hay cursos en el catálogo.")
	}

	return header + "\n" + m.list.View()
}

func (m listadoModel) ayuda() ayuda {
	switch {
	case m.alerta != nil:
		return ayuda{keys.Cerrar}
	case m.confirmando != nil:
		return ayuda{keys.Confirmar, keys.Cancelar}
	case m.detalle != nil:
		return ayuda{keys.Volver, keys.Eliminar}
	}
	return ayuda{keys.Navegar, keys.Detalle, keys.Eliminar, keys.Recargar, keys.Nuevo, keys.Volver}
}
