package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"questcal/internal/config"
	appLog "questcal/internal/log"
)

const version = "0.1.0"

// globals holds persistent flag values and the loaded configuration.
type globals struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		appLog.Error("questcal failed", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "questcal",
		Short: "questcal turns a copied class schedule into an iCalendar file",
		Long: `questcal reads the class schedule text copied from the course
registration portal and writes weekly recurring calendar events (.ics).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config file (default $QUESTCAL_CONFIG or ./questcal.yaml)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newExportCmd(g),
		newPreviewCmd(g),
		newServeCmd(g),
		newWatchCmd(g),
	)

	return root
}

func (g *globals) load(cmd *cobra.Command) error {
	// A missing .env file is normal.
	_ = godotenv.Load()

	path := g.configPath
	if path == "" {
		path = os.Getenv("QUESTCAL_CONFIG")
	}
	if path == "" {
		path = "questcal.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		if cfg == nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		appLog.Warn("could not write default config; continuing with defaults", "config_path", path, "err", err)
	}

	level := cfg.LogLevel
	if g.logLevel != "" {
		level = g.logLevel
	}
	appLog.SetLevel(appLog.ParseLevel(level))

	appLog.Debug("effective config",
		"command", cmd.Name(),
		"config_path", path,
		"date_format", cfg.DateFormat,
		"max_courses", cfg.Limits.MaxCourses,
		"max_sections", cfg.Limits.MaxSections,
		"filename", cfg.Limits.Filename,
	)
	g.cfg = cfg
	return nil
}

// signalContext is canceled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			appLog.Info("signal received, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
