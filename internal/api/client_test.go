package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cursos-tui/internal/config"
	"cursos-tui/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *test.Hook) {
	t.Helper()
	return newTestClientRPS(t, 100, h)
}

func newTestClientRPS(t *testing.T, rps float64, h http.HandlerFunc) (*Client, *test.Hook) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	cfg := &config.Config{
		BaseURL:   srv.URL + "/api",
		Timeout:   2 * time.Second,
		RateLimit: rps,
	}
	return NewClient(cfg, log), hook
}

func TestGetCursos(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bare array", body: `[{"id_curso":1,"titulo":"Go Basics","precio":10,"horas":5,"id_plataforma":1},{"id_curso":2,"titulo":"Rust 101","precio":"20.5","horas":8,"id_plataforma":2}]`},
		{name: "datos envelope", body: `{"ok":true,"datos":[{"id_curso":1,"titulo":"Go Basics","precio":10,"horas":5,"id_plataforma":1},{"id_curso":2,"titulo":"Rust 101","precio":"20.5","horas":8,"id_plataforma":2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/cursos", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, tt.body)
			})

			cursos, err := c.GetCursos(context.Background())
			require.NoError(t, err)
			require.Len(t, cursos, 2)

			assert.Equal(t, "Go Basics", cursos[0].Titulo)
			assert.Equal(t, domain.Numero(20.5), cursos[1].Precio)
			assert.Equal(t, 2, cursos[1].PlataformaID)
		})
	}
}

func TestGetCursosEmptyDatos(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true,"datos":null}`)
	})

	cursos, err := c.GetCursos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cursos)
}

func TestGetCursosUnexpected(t *testing.T) {
	for _, body := range []string{`{"ok":false,"msg":"boom"}`, `{"datos":{"id_curso":1}}`, `oops`, ``} {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		})

		_, err := c.GetCursos(context.Background())
		assert.ErrorIs(t, err, ErrRespuestaInesperada, "body %q", body)
	}
}

func TestGetCursosHTTPError(t *testing.T) {
	c, hook := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db caída", http.StatusInternalServerError)
	})

	_, err := c.GetCursos(context.Background())
	require.Error(t, err)

	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusInternalServerError, herr.StatusCode)
	assert.Equal(t, http.MethodGet, herr.Method)
	assert.Equal(t, "/api/cursos", herr.Path)
	assert.Equal(t, "db caída", herr.Body)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 500, entry.Data["statuscode"])
}

func TestGetPlataformas(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/plataformas", r.URL.Path)
		_, _ = io.WriteString(w, `{"ok":true,"datos":[{"id_plataforma":1,"nombre":"Udemy"},{"id_plataforma":2,"nombre":"Coursera"}]}`)
	})

	plataformas, err := c.GetPlataformas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Plataforma{{ID: 1, Nombre: "Udemy"}, {ID: 2, Nombre: "Coursera"}}, plataformas)
}

func TestCreateCurso(t *testing.T) {
	var got map[string]any
	var reqID string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cursos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		reqID = r.Header.Get("X-Request-ID")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"ok":true,"id":9}`)
	})

	err := c.CreateCurso(context.Background(), domain.NuevoCurso{
		Titulo:           "Go Basics",
		Precio:           49.9,
		Horas:            20,
		FechaPublicacion: "2025-03-14",
		ImagenURL:        "",
		PlataformaID:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"titulo":            "Go Basics",
		"precio":            49.9,
		"horas":             float64(20),
		"fecha_publicacion": "2025-03-14",
		"imagen_url":        "",
		"id_plataforma":     float64(2),
	}, got)

	_, err = uuid.Parse(reqID)
	assert.NoError(t, err)
}

func TestCreateCursoRejected(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"msg":"plataforma inexistente"}`, http.StatusBadRequest)
	})

	err := c.CreateCurso(context.Background(), domain.NuevoCurso{Titulo: "Go Basics", PlataformaID: 99})

	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusBadRequest, herr.StatusCode)
	assert.Contains(t, herr.Body, "plataforma inexistente")
}

func TestCreateCursoAcceptsAny2xx(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})

			err := c.CreateCurso(context.Background(), domain.NuevoCurso{Titulo: "Go Basics", PlataformaID: 1})
			assert.NoError(t, err)
		})
	}
}

func TestDeleteCurso(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/cursos/7", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, c.DeleteCurso(context.Background(), 7))
	})

	t.Run("ok with body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"ok":true}`)
		})

		assert.NoError(t, c.DeleteCurso(context.Background(), 7))
	})

	t.Run("not found", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := c.DeleteCurso(context.Background(), 7)

		var herr *HTTPError
		require.True(t, errors.As(err, &herr))
		assert.Equal(t, http.StatusNotFound, herr.StatusCode)
	})
}

func TestConnectionError(t *testing.T) {
	log, hook := test.NewNullLogger()
	c := NewClient(&config.Config{
		BaseURL:   "http://127.0.0.1:1/api",
		Timeout:   time.Second,
		RateLimit: 10,
	}, log)

	_, err := c.GetPlataformas(context.Background())
	assert.ErrorContains(t, err, "erro de conexão")
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestCanceledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetCursos(ctx)
	assert.Error(t, err)
}

func TestRateLimit(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClientRPS(t, 1, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := c.GetCursos(context.Background())
	require.NoError(t, err)

	t.Run("deadline shorter than the wait", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err := c.GetCursos(ctx)
		assert.ErrorContains(t, err, "limite de requisições")
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("second call waits for a token", func(t *testing.T) {
		start := time.Now()
		_, err := c.GetCursos(context.Background())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, time.Since(start), 500*time.Millisecond)
		assert.Equal(t, int32(2), hits.Load())
	})
}
