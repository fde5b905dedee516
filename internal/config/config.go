package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config segura todas as variáveis de ambiente da aplicação
type Config struct {
	BaseURL   string        `env:"CURSOS_API_URL" env-required:"true" env-description:"URL base da API (ex: http://192.168.1.173:3000/api)"`
	Timeout   time.Duration `env:"CURSOS_API_TIMEOUT" env-default:"10s" env-description:"timeout fixo das chamadas HTTP"`
	RateLimit float64       `env:"CURSOS_API_RPS" env-default:"5" env-description:"máximo de requisições por segundo"`
	LogFile   string        `env:"CURSOS_LOG_FILE" env-default:"cursos-tui.log" env-description:"arquivo de log (a TUI ocupa o stdout)"`
	LogLevel  string        `env:"CURSOS_LOG_LEVEL" env-default:"info" env-description:"nível do logrus"`
}

// Load carrega as variáveis do .env e retorna um erro se algo faltar
func Load() (*Config, error) {
	// Carrega o .env, mas não falha se o arquivo não existir (pode estar rodando com envs reais)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler variáveis de ambiente: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("CURSOS_API_URL inválida: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("CURSOS_API_URL deve ser uma URL http(s) absoluta, recebido %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("CURSOS_API_TIMEOUT deve ser positivo")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("CURSOS_API_RPS deve ser positivo")
	}

	return nil
}

// Usage descreve as variáveis aceitas, para a mensagem de erro do main.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
