package initializer

import (
	"log/slog"
	"os"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// setupLogger builds the process-wide slog.Logger on top of charmbracelet
// log with per-level styling.
func setupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	levelColors := map[log.Level]lipgloss.AdaptiveColor{
		log.DebugLevel: {Light: "#7E57C2", Dark: "#7E57C2"},
		log.InfoLevel:  {Light: "#04B575", Dark: "#04B575"},
		log.WarnLevel:  {Light: "#EE6FF8", Dark: "#EE6FF8"},
		log.ErrorLevel: {Light: "#FF6B6B", Dark: "#FF6B6B"},
	}
	for level, color := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(level.String()).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
		styles.Keys[level.String()] = lipgloss.NewStyle().Foreground(color)
		styles.Values[level.String()] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
