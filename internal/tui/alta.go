package tui

import (
	"fmt"
	"strings"
	"time"

	"cursos-tui/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

type campoInput struct {
	campo domain.Campo
	label string
	input textinput.Model
}

type altaModel struct {
	api CursosAPI
	log logrus.FieldLogger
	now func() time.Time

	form        domain.CursoForm
	campos      []campoInput
	foco        int // len(campos) = seletor de plataforma
	plataformas []domain.Plataforma

	cargandoPlataformas bool
	loading             bool
	spinner             spinner.Model
	dialogo             *dialogo
	sesion              int // uma por visita ao formulário
	width               int
}

func newAltaModel(client CursosAPI, log logrus.FieldLogger, now func() time.Time) altaModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	nuevo := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Prompt = "│ "
		ti.Width = 50
		return ti
	}

	return altaModel{
		api:     client,
		log:     log,
		now:     now,
		spinner: s,
		campos: []campoInput{
			{campo: domain.CampoTitulo, label: "Título del curso", input: nuevo("Introducción a Go", 120)},
			{campo: domain.CampoPrecio, label: "Precio (€)", input: nuevo("0", 10)},
			{campo: domain.CampoHoras, label: "Horas", input: nuevo("0", 6)},
			{campo: domain.CampoFecha, label: "Fecha (YYYY-MM-DD)", input: nuevo("2006-01-02", 10)},
			{campo: domain.CampoImagen, label: "URL Imagen (Opcional)", input: nuevo("https://", 500)},
		},
	}
}

func (m *altaModel) setSize(w, _ int) {
	m.width = w
	for i := range m.campos {
		m.campos[i].input.Width = max(min(w-8, 60), 10)
	}
}

// activar começa uma sessão nova de formulário e busca as plataformas
func (m *altaModel) activar() tea.Cmd {
	m.sesion++
	m.form = domain.NuevoCursoForm(m.now())
	for i := range m.campos {
		m.campos[i].input.SetValue(m.form.Valor(m.campos[i].campo))
		m.campos[i].input.Blur()
	}
	m.plataformas = nil
	m.cargandoPlataformas = true
	m.loading = false
	m.dialogo = nil
	m.foco = 0

	return tea.Batch(m.campos[0].input.Focus(), fetchPlataformasCmd(m.api, m.sesion))
}

func (m *altaModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case plataformasLoadedMsg:
		if msg.sesion != m.sesion {
			return nil
		}
		m.cargandoPlataformas = false
		m.plataformas = msg.plataformas
		return nil

	case plataformasErrMsg:
		if msg.sesion != m.sesion {
			m.log.WithField("sesion", msg.sesion).Debug("erro de uma sessão antiga descartado")
			return nil
		}
		m.cargandoPlataformas = false
		m.plataformas = nil
		m.log.WithError(msg.err).Error("error cargando plataformas")
		m.dialogo = &dialogo{titulo: "Error", msg: "No se pudieron cargar las plataformas", isError: true}
		return nil

	case cursoCreatedMsg:
		m.loading = false
		m.log.WithField("titulo", strings.TrimSpace(m.form.Titulo)).Info("curso creado")
		m.dialogo = &dialogo{titulo: "¡Éxito!", msg: "Curso creado correctamente"}
		return nil

	case createErrMsg:
		m.loading = false
		m.log.WithError(msg.err).Error("no se pudo crear el curso")
		m.dialogo = &dialogo{titulo: "Error", msg: "No se pudo crear el curso. Revisa el log.", isError: true}
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.foco < len(m.campos) {
		var cmd tea.Cmd
		m.campos[m.foco].input, cmd = m.campos[m.foco].input.Update(msg)
		return cmd
	}
	return nil
}

func (m *altaModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.dialogo != nil {
		if key.Matches(msg, keys.Cerrar) {
			return m.cerrarDialogo()
		}
		return nil
	}

	if m.loading {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Volver):
		return navegar(pantallaHome)
	case key.Matches(msg, keys.Guardar):
		return m.submit()
	case key.Matches(msg, keys.Siguiente):
		return m.moverFoco(1)
	case key.Matches(msg, keys.Anterior):
		return m.moverFoco(-1)
	case msg.Type == tea.KeyEnter:
		if m.foco == len(m.campos) {
			return m.submit()
		}
		return m.moverFoco(1)
	}

	// Seletor de plataforma
	if m.foco == len(m.campos) {
		if key.Matches(msg, keys.Plataforma) {
			m.ciclarPlataforma(msg.String() == "right")
		}
		return nil
	}

	// Campo de texto: se o form recusar (número negativo), desfaz a tecla
	c := &m.campos[m.foco]
	antes := c.input.Value()

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)

	if !m.form.Set(c.campo, c.input.Value()) {
		c.input.SetValue(antes)
	}
	return cmd
}

func (m *altaModel) moverFoco(delta int) tea.Cmd {
	total := len(m.campos) + 1
	if m.foco < len(m.campos) {
		m.campos[m.foco].input.Blur()
	}

	m.foco = (m.foco + delta + total) % total

	if m.foco < len(m.campos) {
		return m.campos[m.foco].input.Focus()
	}
	return nil
}

func (m *altaModel) ciclarPlataforma(adelante bool) {
	if len(m.plataformas) == 0 {
		return
	}

	idx := -1
	for i, p := range m.plataformas {
		if p.ID == m.form.PlataformaID {
			idx = i
			break
		}
	}

	switch {
	case idx == -1 && adelante:
		idx = 0
	case idx == -1:
		idx = len(m.plataformas) - 1
	case adelante:
		idx = (idx + 1) % len(m.plataformas)
	default:
		idx = (idx - 1 + len(m.plataformas)) % len(m.plataformas)
	}

	m.form.SeleccionarPlataforma(m.plataformas[idx].ID)
}

// submit valida localmente; só chama a API se passar
func (m *altaModel) submit() tea.Cmd {
	m.log.WithFields(logrus.Fields{
		"titulo":        m.form.Titulo,
		"precio":        m.form.Precio,
		"horas":         m.form.Horas,
		"id_plataforma": m.form.PlataformaID,
	}).Debug("enviando formulario")

	payload, err := m.form.Payload()
	if err != nil {
		m.dialogo = &dialogo{titulo: "Atención", msg: err.Error(), isError: true}
		return nil
	}

	m.loading = true
	return tea.Batch(m.spinner.Tick, createCursoCmd(m.api, payload))
}

// cerrarDialogo: depois de um sucesso volta para a listagem
func (m *altaModel) cerrarDialogo() tea.Cmd {
	exito := !m.dialogo.isError
	m.dialogo = nil
	if exito {
		return navegar(pantallaListado)
	}
	return nil
}

func (m altaModel) view() string {
	if m.dialogo != nil {
		return m.dialogo.view(m.width)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Alta de Curso") + "\n\n")

	for i, c := range m.campos {
		label := labelStyle.Render(c.label)
		if i == m.foco {
			label = focusStyle.Render("› " + c.label)
		}
		sb.WriteString(label + "\n" + c.input.View() + "\n\n")
	}

	// Seletor
	label := labelStyle.Render("Selecciona Plataforma")
	if m.foco == len(m.campos) {
		label = focusStyle.Render("› Selecciona Plataforma")
	}
	sb.WriteString(label + "\n")

	switch {
	case m.cargandoPlataformas || len(m.plataformas) == 0:
		sb.WriteString(infoStyle.Render("│ Cargando plataformas...") + "\n")
	default:
		nombre := domain.NombrePlataforma(m.plataformas, m.form.PlataformaID)
		if nombre == "" {
			nombre = infoStyle.Render("(ninguna)")
		}
		sb.WriteString(fmt.Sprintf("│ ◀ %s ▶\n", nombre))
	}
	if m.form.PlataformaID == 0 {
		sb.WriteString(infoStyle.Render("Debes elegir una plataforma de la lista") + "\n")
	}
	sb.WriteString("\n")

	if m.loading {
		sb.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), loadingStyle.Render("Guardando...")))
	} else {
		sb.WriteString(titleStyle.Render("[ctrl+s] Crear Curso"))
	}

	return cardStyle.Render(sb.String())
}

func (m altaModel) ayuda() ayuda {
	if m.dialogo != nil {
		return ayuda{keys.Cerrar}
	}
	return ayuda{keys.Siguiente, keys.Anterior, keys.Plataforma, keys.Guardar, keys.Volver}
}
