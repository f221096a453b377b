package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/logging"
)

var (
	configFile string
	preset     string
	array      []float64
	size       int
	seed       uint64
	target     float64
	start      string
	end        string
	speed      time.Duration
	theme      string
	verbose    bool
	logFile    string
)

// main registers the commands and opens the interactive menu when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "algoviz",
		Short:         "step-by-step algorithm playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
		RunE: runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&preset, "preset", "", "use preset input for the algorithm")
	pf.Float64SliceVar(&array, "array", nil, "input values, comma separated")
	pf.IntVar(&size, "size", config.DefaultSize, "random array size when --array is not given")
	pf.Uint64Var(&seed, "seed", 1, "random array seed")
	pf.Float64Var(&target, "target", config.DefaultTarget, "binary search target")
	pf.StringVar(&start, "start", "A", "start node label or id")
	pf.StringVar(&end, "end", "F", "end node label or id")
	pf.DurationVar(&speed, "speed", config.DefaultSpeed, "playback step interval")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.AddCommand(
		newRunCmd(),
		newPlayCmd(),
		newListCmd(),
		newPseudocodeCmd(),
		newPresetsCmd(),
		newExportCmd(),
		newPlotCmd(),
		newServeCmd(),
		newLessonCmd(),
		newSweepCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// setupLogger attaches the logger to the command context. Interactive
// commands own the terminal, so they only log when --log-file is set.
func setupLogger(cmd *cobra.Command) error {
	var w io.Writer = os.Stderr
	if interactive(cmd) {
		w = io.Discard
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = f
	}
	logger := logging.New(w, logging.Level(verbose))
	log.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

func interactive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "play"
}

// loadConfig layers preset, config file and explicitly set flags, in
// that order. algorithm, when not empty, overrides all three.
func loadConfig(cmd *cobra.Command, algorithm string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		name, p, ok := strings.Cut(preset, "/")
		if !ok {
			name, p = algorithm, preset
		}
		if cfg = config.GetPreset(name, p); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("array") {
		cfg.Array = array
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("target") {
		t := target
		cfg.Target = &t
	}
	if flags.Changed("start") {
		cfg.Start = start
	}
	if flags.Changed("end") {
		cfg.End = end
	}
	if flags.Changed("speed") {
		cfg.Speed = config.Duration(speed)
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if algorithm != "" {
		cfg.Algorithm = algorithm
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func algorithmArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
