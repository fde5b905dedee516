package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// Campo identifica um campo de texto do formulário de alta
type Campo int

const (
	CampoTitulo Campo = iota
	CampoPrecio
	CampoHoras
	CampoFecha
	CampoImagen
)

const (
	MsgTituloCorto        = "El título es muy corto"
	MsgSinPlataforma      = "Debes seleccionar una plataforma"
	MsgPrecioInvalido     = "El precio debe ser un número válido"
	MsgHorasInvalidas     = "Las horas deben ser un número válido"
	tagNoNegativo         = "nonegativo"
	layoutFechaFormulario = "2006-01-02"
)

var validate *validator.Validate

var translator ut.Translator

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation(tagNoNegativo, numeroNoNegativo)

	translator, _ = ut.New(es.New(), es.New()).GetTranslator("es")
	_ = es_translations.RegisterDefaultTranslations(validate, translator)
}

// reglasCurso define a ordem das validações: a primeira que falhar é a reportada.
type reglasCurso struct {
	Titulo       string `validate:"required,min=3"`
	PlataformaID int    `validate:"required"`
	Precio       string `validate:"omitempty,nonegativo"`
	Horas        string `validate:"omitempty,nonegativo"`
}

var mensajes = map[string]string{
	"Titulo":       MsgTituloCorto,
	"PlataformaID": MsgSinPlataforma,
	"Precio":       MsgPrecioInvalido,
	"Horas":        MsgHorasInvalidas,
}

// ValidationError bloqueia o envio; nenhuma chamada de rede é feita.
type ValidationError struct {
	Campo   string
	Mensaje string
}

func (e *ValidationError) Error() string { return e.Mensaje }

// CursoForm é o estado do formulário de alta.
// Preço e horas ficam como texto enquanto o usuário digita.
type CursoForm struct {
	Titulo           string
	Precio           string
	Horas            string
	FechaPublicacion string
	ImagenURL        string
	PlataformaID     int // 0 = nenhuma selecionada
}

func NuevoCursoForm(now time.Time) CursoForm {
	return CursoForm{FechaPublicacion: now.Format(layoutFechaFormulario)}
}

// Set atualiza um campo. Valores negativos em preço/horas são recusados e o estado fica como estava.
func (f *CursoForm) Set(campo Campo, valor string) bool {
	switch campo {
	case CampoTitulo:
		f.Titulo = valor
	case CampoPrecio:
		if esNegativo(valor) {
			return false
		}
		f.Precio = valor
	case CampoHoras:
		if esNegativo(valor) {
			return false
		}
		f.Horas = valor
	case CampoFecha:
		f.FechaPublicacion = valor
	case CampoImagen:
		f.ImagenURL = valor
	default:
		return false
	}
	return true
}

func (f CursoForm) Valor(campo Campo) string {
	switch campo {
	case CampoTitulo:
		return f.Titulo
	case CampoPrecio:
		return f.Precio
	case CampoHoras:
		return f.Horas
	case CampoFecha:
		return f.FechaPublicacion
	case CampoImagen:
		return f.ImagenURL
	}
	return ""
}

func (f *CursoForm) SeleccionarPlataforma(id int) { f.PlataformaID = id }

// Validar aplica as regras na ordem título, plataforma, números.
func (f CursoForm) Validar() error {
	reglas := reglasCurso{
		Titulo:       strings.TrimSpace(f.Titulo),
		PlataformaID: f.PlataformaID,
		Precio:       strings.TrimSpace(f.Precio),
		Horas:        strings.TrimSpace(f.Horas),
	}

	err := validate.Struct(reglas)
	if err == nil {
		return nil
	}

	var verrors validator.ValidationErrors
	if !errors.As(err, &verrors) {
		return err
	}
	if len(verrors) < 1 {
		return nil
	}

	fe := verrors[0]
	msg, ok := mensajes[fe.Field()]
	if !ok {
		msg = fe.Translate(translator)
	}
	return &ValidationError{Campo: fe.Field(), Mensaje: msg}
}

// Payload valida e monta o corpo do POST com os números convertidos.
func (f CursoForm) Payload() (NuevoCurso, error) {
	if err := f.Validar(); err != nil {
		return NuevoCurso{}, err
	}

	precio, _ := parseNumero(f.Precio)
	horas, _ := parseNumero(f.Horas)

	return NuevoCurso{
		Titulo:           strings.TrimSpace(f.Titulo),
		Precio:           precio,
		Horas:            horas,
		FechaPublicacion: strings.TrimSpace(f.FechaPublicacion),
		ImagenURL:        strings.TrimSpace(f.ImagenURL),
		PlataformaID:     f.PlataformaID,
	}, nil
}

// campo vazio vale 0
func parseNumero(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

func numeroNoNegativo(fl validator.FieldLevel) bool {
	n, err := parseNumero(fl.Field().String())
	return err == nil && n >= 0
}

// qualquer "-" inicial é recusado, inclusive o "-" sozinho de quem começou a digitar um negativo
func esNegativo(valor string) bool {
	return strings.HasPrefix(strings.TrimSpace(valor), "-")
}
