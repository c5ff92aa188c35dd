package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/richtext/internal/config"
)

// app holds state shared by all commands
type app struct {
	configPath  string
	envFile     string
	inputFormat string
	logLevel    string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "richtext",
		Short:         "Normalize and render rich text descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to the config file (default "+config.DefaultPath+" if present)")
	flags.StringVar(&a.envFile, "env-file", "", "Path to a dotenv file (default "+config.DefaultEnvFile+" if present)")
	flags.StringVarP(&a.inputFormat, "input", "i", "auto", "Input format: auto, text, portabletext or html")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newSummaryCmd(a))
	root.AddCommand(newInspectCmd(a))
	return root
}

// init loads configuration and sets up logging
func (a *app) init(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err == nil {
			path = config.DefaultPath
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}

	cfg, err := config.Load(path, envFiles...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded", "path", path, "format", cfg.Render.Format)
	return nil
}
