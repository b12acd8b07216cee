package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/whole/internal/config"
	"github.com/mmcdole/whole/internal/domain"
	"github.com/mmcdole/whole/internal/log"
	"github.com/mmcdole/whole/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// options holds command line overrides for the loaded config
type options struct {
	configPath string
	skipIntro  bool
	noMouse    bool
	inline     bool
	seed       uint64
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.configPath, "config", "c", "", "config file (default ~/.config/whole/config.yaml)")
	fs.BoolVar(&o.skipIntro, "skip-intro", false, "skip the loading screen")
	fs.BoolVar(&o.noMouse, "no-mouse", false, "disable mouse input")
	fs.BoolVar(&o.inline, "inline", false, "render without the alternate screen")
	fs.Uint64Var(&o.seed, "seed", 0, "starfield seed (0 picks one at random)")
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "whole",
		Short:         "WHOLE, a life-affirming path, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	addFlags(root.Flags(), &opts)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("whole %s\n", Version)
		},
	})
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Load configuration
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.skipIntro {
		cfg.UI.SkipLoader = true
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
	if opts.inline {
		cfg.UI.AltScreen = false
	}

	// Setup logger
	logger, closer, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting whole", "version", Version)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	model, err := tui.NewModel(tui.Options{
		Page:        domain.DefaultPage(),
		Motion:      cfg.Motion,
		RowHeightPx: cfg.UI.RowHeightPx,
		SkipLoader:  cfg.UI.SkipLoader,
		Logger:      logger,
		Seed:        seed,
	})
	if err != nil {
		return fmt.Errorf("failed to build page: %w", err)
	}

	var programOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	// Run the TUI
	p := tea.NewProgram(model, programOpts...)

	logger.Info("starting TUI", "altScreen", cfg.UI.AltScreen, "mouse", cfg.UI.Mouse)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
