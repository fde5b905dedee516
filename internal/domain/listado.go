package domain

import "strings"

// Filtrar devolve os cursos cujo título contém a busca, sem diferenciar maiúsculas.
// A ordem de chegada é preservada e a busca vazia devolve tudo.
func Filtrar(cursos []Curso, busqueda string) []Curso {
	termo := strings.ToLower(busqueda)

	filtrados := make([]Curso, 0, len(cursos))
	for _, c := range cursos {
		if strings.Contains(strings.ToLower(c.Titulo), termo) {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados
}

// Listado é o cache da tela de listagem. É descartável: recarregado a cada vez que a tela fica ativa.
type Listado struct {
	cursos    []Curso
	busqueda  string
	carregado bool
}

// Reemplazar troca a lista inteira após um GET /cursos bem sucedido
func (l *Listado) Reemplazar(cursos []Curso) {
	l.cursos = append([]Curso(nil), cursos...)
	l.carregado = true
}

func (l *Listado) SetBusqueda(s string) { l.busqueda = s }

func (l *Listado) Busqueda() string { return l.busqueda }

// Filtrados é recalculado sobre a lista completa a cada chamada
func (l *Listado) Filtrados() []Curso { return Filtrar(l.cursos, l.busqueda) }

func (l *Listado) Todos() []Curso { return l.cursos }

func (l *Listado) Len() int { return len(l.cursos) }

// Carregado indica se já houve ao menos um carregamento com sucesso
func (l *Listado) Carregado() bool { return l.carregado }

// Eliminar remove localmente o curso apagado no servidor, sem recarregar a lista.
func (l *Listado) Eliminar(id int) bool {
	restantes := l.cursos[:0:0]
	for _, c := range l.cursos {
		if c.ID != id {
			restantes = append(restantes, c)
		}
	}
	removeu := len(restantes) != len(l.cursos)
	l.cursos = restantes
	return removeu
}

// Buscar localiza um curso pelo ID na lista completa
func (l *Listado) Buscar(id int) (Curso, bool) {
	for _, c := range l.cursos {
		if c.ID == id {
			return c, true
		}
	}
	return Curso{}, false
}
