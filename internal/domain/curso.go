package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Numero aceita tanto número quanto string numérica no JSON.
// Colunas DECIMAL do MySQL costumam chegar como "49.90".
type Numero float64

func (n *Numero) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("número inválido %s: %w", string(b), err)
	}
	*n = Numero(f)
	return nil
}

func (n Numero) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Plataforma é o dado de referência que todo curso aponta.
// Endpoint: GET /plataformas
type Plataforma struct {
	ID     int    `json:"id_plataforma"`
	Nombre string `json:"nombre"`
}

// Curso reflete o registro retornado por GET /cursos
type Curso struct {
	ID               int    `json:"id_curso"`
	Titulo           string `json:"titulo"`
	Precio           Numero `json:"precio"`
	Horas            Numero `json:"horas"`
	FechaPublicacion string `json:"fecha_publicacion"`
	ImagenURL        string `json:"imagen_url"`
	PlataformaID     int    `json:"id_plataforma"`
	Descripcion      string `json:"descripcion,omitempty"`
}

// NuevoCurso é o payload de POST /cursos, já com os números convertidos.
type NuevoCurso struct {
	Titulo           string  `json:"titulo"`
	Precio           float64 `json:"precio"`
	Horas            float64 `json:"horas"`
	FechaPublicacion string  `json:"fecha_publicacion"`
	ImagenURL        string  `json:"imagen_url"`
	PlataformaID     int     `json:"id_plataforma"`
}

var precioStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)

func (c Curso) Title() string { return c.Titulo }

func (c Curso) Description() string {
	precio := precioStyle.Render(fmt.Sprintf("%s €", c.Precio))
	return fmt.Sprintf("%s | %s horas | ID: %d", precio, c.Horas, c.ID)
}

func (c Curso) FilterValue() string { return c.Titulo }

func (c Curso) GetFormattedDate() string {
	// A API pode devolver só a data ou o DATE serializado como ISO (2024-01-30T00:00:00.000Z)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02 15:04:05",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, c.FechaPublicacion); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return c.FechaPublicacion
}

// NombrePlataforma devolve o nome da plataforma para exibir no seletor ("" se não achar)
func NombrePlataforma(plataformas []Plataforma, id int) string {
	for _, p := range plataformas {
		if p.ID == id {
			return p.Nombre
		}
	}
	return ""
}
