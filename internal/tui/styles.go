package tui

import "github.com/charmbracelet/lipgloss"

// Paleta herdada do app mobile
var (
	colorPrimary   = lipgloss.Color("#2563EB")
	colorTextDark  = lipgloss.Color("#1F2937")
	colorTextGray  = lipgloss.Color("#4B5563")
	colorTextLight = lipgloss.Color("#64748B")
	colorBorder    = lipgloss.Color("#E5E7EB")
	colorDelete    = lipgloss.Color("#B00020")
	colorSuccess   = lipgloss.Color("#04B575")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(colorPrimary).
			Padding(0, 1)

	infoStyle    = lipgloss.NewStyle().Foreground(colorTextLight)
	dividerStyle = lipgloss.NewStyle().Foreground(colorBorder)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorTextGray)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorDelete)
	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)

	searchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
