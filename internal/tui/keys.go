package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Salir      key.Binding
	Catalogo   key.Binding
	Alta       key.Binding
	Volver     key.Binding
	Recargar   key.Binding
	Nuevo      key.Binding
	Detalle    key.Binding
	Eliminar   key.Binding
	Navegar    key.Binding
	Confirmar  key.Binding
	Cancelar   key.Binding
	Cerrar     key.Binding
	Siguiente  key.Binding
	Anterior   key.Binding
	Plataforma key.Binding
	Guardar    key.Binding
}

var keys = keyMap{
	Salir:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "salir")),
	Catalogo:   key.NewBinding(key.WithKeys("l", "1"), key.WithHelp("l", "ver catálogo")),
	Alta:       key.NewBinding(key.WithKeys("a", "2"), key.WithHelp("a", "alta de cursos")),
	Volver:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "volver")),
	Recargar:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "recargar")),
	Nuevo:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "nuevo curso")),
	Detalle:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ver detalle")),
	Eliminar:   key.NewBinding(key.WithKeys("ctrl+d", "delete"), key.WithHelp("ctrl+d/supr", "eliminar")),
	Navegar:    key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown", "home", "end"), key.WithHelp("↑/↓", "mover")),
	Confirmar:  key.NewBinding(key.WithKeys("y", "s", "enter"), key.WithHelp("s", "eliminar")),
	Cancelar:   key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancelar")),
	Cerrar:     key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "cerrar")),
	Siguiente:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "siguiente")),
	Anterior:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "anterior")),
	Plataforma: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "plataforma")),
	Guardar:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "crear curso")),
}

// ayuda adapta uma lista de atalhos ao help.KeyMap
type ayuda []key.Binding

func (a ayuda) ShortHelp() []key.Binding { return a }

func (a ayuda) FullHelp() [][]key.Binding { return [][]key.Binding{a} }
