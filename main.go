package main

import (
	"fmt"
	"os"

	"cursos-tui/internal/api"
	"cursos-tui/internal/config"
	"cursos-tui/internal/logging"
	"cursos-tui/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// 1. Carrega Configurações (valida .env e variáveis obrigatórias)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Erro de Configuração: %v\n\n%s", err, config.Usage())
		os.Exit(1)
	}

	// 2. Logger em arquivo: a TUI ocupa o terminal
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Erro ao iniciar log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	log.WithField("base_url", cfg.BaseURL).Info("iniciando cursos-tui")

	// 3. Cria o Cliente API (já com timeout e base URL configurados)
	client := api.NewClient(cfg, log)

	// 4. Inicia o Modelo TUI (Injetando o cliente)
	m := tui.InitialModel(client, log)

	// 5. Roda o Programa
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("erro fatal na TUI")
		closer.Close()
		fmt.Printf("Erro fatal na TUI: %v\n", err)
		os.Exit(1)
	}

	log.Info("encerrado")
}
