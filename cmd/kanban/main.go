package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ReplacedSpace17/Example-Dragg/internal/config"
	"github.com/ReplacedSpace17/Example-Dragg/internal/logging"
	"github.com/ReplacedSpace17/Example-Dragg/internal/model"
	"github.com/ReplacedSpace17/Example-Dragg/internal/parser"
	"github.com/ReplacedSpace17/Example-Dragg/internal/ui"
)

var Version = "dev"

type rootOptions struct {
	configPath string
	seedPath   string
	logFile    string
	logLevel   string
	noMouse    bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "kanban",
		Short:         "A three column kanban board for the terminal",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default is the user config directory)")
	cmd.Flags().StringVarP(&opts.seedPath, "seed", "s", "", "Initial board (.toml, .yaml or .org)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Log file (default is the user cache directory)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse drag and drop")

	cmd.AddCommand(configCmd(opts))

	return cmd
}

func runBoard(opts *rootOptions) error {
	cfg := loadConfigOrDefaults(opts.configPath)

	logger, closer := openLogger(opts, cfg)
	defer closer.Close()

	board, err := loadBoard(opts.seedPath)
	if err != nil {
		return err
	}
	logger.Info("starting", "tasks", board.Len(), "config", cfg.Path())

	final, err := ui.RunUI(board, cfg, logger, ui.Options{
		Mouse: cfg.MouseEnabled() && !opts.noMouse,
	})
	if err != nil {
		logger.Error("ui exited", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("stopped", "tasks", final.Len())
	return nil
}

// loadConfig returns a usable config even when loading fails: the defaults,
// still bound to the requested path. The error is returned so callers that
// write the file can refuse to.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadConfigFrom(path)
	} else {
		cfg, err = config.LoadConfig()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg, err
}

// loadConfigOrDefaults is loadConfig for read-only callers; errors become a warning
func loadConfigOrDefaults(path string) *config.Config {
	cfg, err := loadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config, using defaults: %v\n", err)
	}
	return cfg
}

func openLogger(opts *rootOptions, cfg *config.Config) (*log.Logger, io.Closer) {
	path := opts.logFile
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			return logging.Discard(), io.NopCloser(nil)
		}
		path = p
	}

	level := opts.logLevel
	if level == "" {
		level = cfg.Log.Level
	}

	logger, closer, err := logging.Open(path, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

func loadBoard(seedPath string) (model.Board, error) {
	if seedPath == "" {
		return parser.DefaultSeed(), nil
	}
	board, err := parser.LoadSeed(seedPath)
	if err != nil {
		return model.Board{}, fmt.Errorf("error loading seed: %w", err)
	}
	return board, nil
}
