package tui

import (
	"context"

	"cursos-tui/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

// --- MENSAGENS DO SISTEMA ---

// cursosLoadedMsg traz a lista de cursos do backend.
// sesion identifica a ativação da tela que pediu; respostas de ativações antigas são descartadas.
type cursosLoadedMsg struct {
	sesion int
	cursos []domain.Curso
}

type cursosErrMsg struct {
	sesion int
	err    error
}

type cursoDeletedMsg struct{ id int }

type deleteErrMsg struct {
	id  int
	err error
}

// plataformasLoadedMsg alimenta o seletor do formulário
type plataformasLoadedMsg struct {
	sesion      int
	plataformas []domain.Plataforma
}

type plataformasErrMsg struct {
	sesion int
	err    error
}

type cursoCreatedMsg struct{}

type createErrMsg struct{ err error }

// navegarMsg troca a tela ativa; a tela de destino recarrega seus dados
type navegarMsg pantalla

// --- COMANDOS ASSÍNCRONOS (API) ---

func navegar(p pantalla) tea.Cmd {
	return func() tea.Msg { return navegarMsg(p) }
}

func fetchCursosCmd(c CursosAPI, sesion int) tea.Cmd {
	return func() tea.Msg {
		cursos, err := c.GetCursos(context.Background())
		if err != nil {
			return cursosErrMsg{sesion: sesion, err: err}
		}
		return cursosLoadedMsg{sesion: sesion, cursos: cursos}
	}
}

func deleteCursoCmd(c CursosAPI, id int) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteCurso(context.Background(), id); err != nil {
			return deleteErrMsg{id: id, err: err}
		}
		return cursoDeletedMsg{id: id}
	}
}

func fetchPlataformasCmd(c CursosAPI, sesion int) tea.Cmd {
	return func() tea.Msg {
		plataformas, err := c.GetPlataformas(context.Background())
		if err != nil {
			return plataformasErrMsg{sesion: sesion, err: err}
		}
		return plataformasLoadedMsg{sesion: sesion, plataformas: plataformas}
	}
}

func createCursoCmd(c CursosAPI, curso domain.NuevoCurso) tea.Cmd {
	return func() tea.Msg {
		if err := c.CreateCurso(context.Background(), curso); err != nil {
			return createErrMsg{err: err}
		}
		return cursoCreatedMsg{}
	}
}
