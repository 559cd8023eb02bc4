package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/driver"
	"github.com/san-kum/typist/internal/logging"
	"github.com/san-kum/typist/internal/trace"
	"github.com/san-kum/typist/internal/tui"
	"github.com/san-kum/typist/internal/typing"
	"github.com/san-kum/typist/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	phrases    []string
	headline   string
	theme      string
	// timing overrides in milliseconds
	typingMs        int
	deletingMs      int
	pauseCompleteMs int
	pauseEmptyMs    int
	// logging
	logFile  string
	logLevel string
	// hero view
	watch bool
	// plain output
	cycles int
	// trace
	ticks      int
	plot       bool
	plotWidth  int
	plotHeight int
	// init
	force bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "typist",
		Short:        "typewriter hero banner for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runHero,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringArrayVar(&phrases, "phrase", nil, "phrase to type (repeatable, replaces configured phrases)")
	pf.StringVar(&headline, "headline", config.DefaultHeadline, "headline above the animation")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.IntVar(&typingMs, "typing", config.DefaultTypingMs, "delay before each typed character (ms)")
	pf.IntVar(&deletingMs, "deleting", config.DefaultDeletingMs, "delay before each deleted character (ms)")
	pf.IntVar(&pauseCompleteMs, "pause-complete", config.DefaultPauseCompleteMs, "pause once a phrase is fully typed (ms)")
	pf.IntVar(&pauseEmptyMs, "pause-empty", config.DefaultPauseEmptyMs, "pause once a phrase is fully deleted (ms)")
	pf.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&logLevel, "log-level", logging.LevelInfo, "log level (debug, info, warn, error)")

	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload --config when it changes on disk")

	plainCmd := &cobra.Command{
		Use:   "plain",
		Short: "print the animation to stdout without the full-screen view",
		Args:  cobra.NoArgs,
		RunE:  runPlain,
	}
	plainCmd.Flags().IntVar(&cycles, "cycles", 1, "full passes over the phrase list (0 runs until interrupted)")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print the tick sequence without waiting",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&ticks, "ticks", 0, "number of transitions (default: one full cycle)")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot visible characters over time")
	traceCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	traceCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(plainCmd, traceCmd, presetsCmd, themesCmd, initCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("phrase") {
		cfg.Phrases = append([]string(nil), phrases...)
	}
	if flags.Changed("headline") {
		cfg.Headline = headline
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("typing") {
		cfg.Timing.TypingMs = typingMs
	}
	if flags.Changed("deleting") {
		cfg.Timing.DeletingMs = deletingMs
	}
	if flags.Changed("pause-complete") {
		cfg.Timing.PauseCompleteMs = pauseCompleteMs
	}
	if flags.Changed("pause-empty") {
		cfg.Timing.PauseEmptyMs = pauseEmptyMs
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

func openLogger() (*slog.Logger, io.Closer, error) {
	logger, closer, err := logging.New(logFile, logLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger.With("pid", os.Getpid()), closer, nil
}

func runHero(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var reloads chan viz.ReloadMsg
	if watch {
		if configFile == "" {
			return errors.New("--watch requires --config")
		}
		reloads = make(chan viz.ReloadMsg)
		w, err := config.NewWatcher(configFile, func(c *config.Config, err error) {
			select {
			case reloads <- viz.ReloadMsg{Config: c, Err: err}:
			case <-ctx.Done():
			}
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		w.Start()
		defer func() {
			cancel()
			w.Stop()
		}()
	}

	logger.Info("hero view starting", "phrases", len(cfg.Phrases), "theme", cfg.Theme)
	err = viz.Run(ctx, cfg, reloads, driver.WithLogger(logger))
	if cmd.Context().Err() != nil {
		return nil
	}
	return err
}

func runPlain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	out := cmd.OutOrStdout()
	ansi := false
	if f, ok := out.(*os.File); ok {
		ansi = isatty.IsTerminal(f.Fd())
	}
	renderer := tui.NewLiveRenderer(out, viz.Caret, ansi)

	target := cycles * len(cfg.Phrases)
	advances := 0

	renderer.Start()
	defer renderer.Stop()
	drv, err := driver.Start(ctx, cfg.Phrases, cfg.Timing.Durations(),
		driver.WithLogger(logger),
		driver.WithOnTick(func(s typing.State) {
			renderer.OnTick(s)
			// only the advance to the next phrase lands on an empty typing state
			if s.Mode == typing.Typing && s.CharCount == 0 {
				advances++
				if target > 0 && advances >= target {
					cancel()
				}
			}
		}))
	if err != nil {
		return err
	}
	defer drv.Stop()

	<-drv.Done()
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := typing.NewPhrases(cfg.Phrases)
	if err != nil {
		return err
	}

	n := ticks
	if n <= 0 {
		n = typing.CycleLength(p)
	}
	rows := trace.Build(p, cfg.Timing.Durations(), n)

	out := cmd.OutOrStdout()
	if err := trace.WriteTable(out, rows); err != nil {
		return err
	}
	if plot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, trace.Plot(rows, plotWidth, plotHeight))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTHEME\tPHRASES\tTYPING\tDELETING\tPAUSE")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%dms\t%dms\t%dms/%dms\n",
			name,
			p.Theme,
			len(p.Phrases),
			p.Timing.TypingMs,
			p.Timing.DeletingMs,
			p.Timing.PauseCompleteMs,
			p.Timing.PauseEmptyMs,
		)
	}

	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "typist.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
