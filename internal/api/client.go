package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"cursos-tui/internal/config"
	"cursos-tui/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrRespuestaInesperada é devolvido quando o corpo não é nem um array nem um objeto com "datos".
var ErrRespuestaInesperada = errors.New("respuesta inesperada de la API")

// HTTPError representa uma resposta fora da faixa de sucesso
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("erro na API %s %s (HTTP %d): %s", e.Method, e.Path, e.StatusCode, e.Body)
}

type Client struct {
	cfg        *config.Config
	HTTPClient *http.Client
	limiter    *rate.Limiter
	log        logrus.FieldLogger
}

func NewClient(cfg *config.Config, log logrus.FieldLogger) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), int(math.Ceil(cfg.RateLimit))),
		log:     log,
	}
}

// GetCursos busca a coleção completa de cursos.
// Endpoint: GET /cursos
func (c *Client) GetCursos(ctx context.Context) ([]domain.Curso, error) {
	var cursos []domain.Curso
	if err := c.getColeccion(ctx, "/cursos", &cursos); err != nil {
		return nil, fmt.Errorf("erro ao buscar cursos: %w", err)
	}
	return cursos, nil
}

// GetPlataformas busca as plataformas para o seletor do formulário.
// Endpoint: GET /plataformas
func (c *Client) GetPlataformas(ctx context.Context) ([]domain.Plataforma, error) {
	var plataformas []domain.Plataforma
	if err := c.getColeccion(ctx, "/plataformas", &plataformas); err != nil {
		return nil, fmt.Errorf("erro ao buscar plataformas: %w", err)
	}
	return plataformas, nil
}

// CreateCurso envia um novo curso.
// Endpoint: POST /cursos
func (c *Client) CreateCurso(ctx context.Context, curso domain.NuevoCurso) error {
	jsonPayload, err := json.Marshal(curso)
	if err != nil {
		return fmt.Errorf("erro ao criar payload: %w", err)
	}

	c.log.WithField("payload", string(jsonPayload)).Debug("enviando curso")

	resp, err := c.do(ctx, http.MethodPost, "/cursos", jsonPayload)
	if err != nil {
		return fmt.Errorf("erro ao criar curso: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("erro ao criar curso: %w", err)
	}

	return nil
}

// DeleteCurso apaga um curso pelo ID.
// Endpoint: DELETE /cursos/{id}
func (c *Client) DeleteCurso(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/cursos/%d", id), nil)
	if err != nil {
		return fmt.Errorf("erro ao eliminar curso %d: %w", id, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("erro ao eliminar curso %d: %w", id, err)
	}

	return nil
}

func (c *Client) getColeccion(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	return decodeColeccion(body, target)
}

// decodeColeccion normaliza as duas formas de resposta da API:
// um array direto ou um envelope {"ok": true, "datos": [...]}
func decodeColeccion(body []byte, target any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ErrRespuestaInesperada
	}

	if body[0] == '[' {
		if err := json.Unmarshal(body, target); err != nil {
			return fmt.Errorf("erro de decode do JSON: %w", err)
		}
		return nil
	}

	var envelope struct {
		Datos json.RawMessage `json:"datos"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrRespuestaInesperada, err)
	}

	datos := bytes.TrimSpace(envelope.Datos)
	switch {
	case len(datos) == 0:
		return ErrRespuestaInesperada
	case bytes.Equal(datos, []byte("null")):
		// "datos": null vira lista vazia
		datos = []byte("[]")
	case datos[0] != '[':
		return ErrRespuestaInesperada
	}

	if err := json.Unmarshal(datos, target); err != nil {
		return fmt.Errorf("erro de decode do JSON: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("limite de requisições: %w", err)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.WithFields(logrus.Fields{
		"req_id": reqID,
		"method": method,
		"path":   path,
	})

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.WithError(err).Error("falha de conexão")
		return nil, fmt.Errorf("erro de conexão: %w", err)
	}

	log.WithFields(logrus.Fields{
		"statuscode": resp.StatusCode,
		"since":      time.Since(start).String(),
	}).Info("completed")

	return resp, nil
}

// checkStatus aceita qualquer 2xx
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &HTTPError{
		Method:     resp.Request.Method,
		Path:       resp.Request.URL.Path,
		StatusCode: resp.StatusCode,
		Body:       string(bytes.TrimSpace(body)),
	}
}
