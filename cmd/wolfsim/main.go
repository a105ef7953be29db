// Command wolfsim runs werewolf simulations: a single logged game, or a
// batch of independent games reported as win rates.
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jason-s-yu/werewolf/internal/config"
	"github.com/jason-s-yu/werewolf/internal/sim"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitf("wolfsim: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// flags holds command-line overrides. Only flags the user set are applied.
type flags struct {
	configFile  string
	seed        uint64
	logLevel    string
	logFormat   string
	noElection  bool
	winRule     string
	maxDays     int
	runs        int
	workers     int
	metricsFile string
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "wolfsim",
		Short:         "Simulate hidden-role werewolf games between belief-driven agents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.configFile, "config", "c", "", "YAML config file")
	pf.Uint64Var(&f.seed, "seed", 0, "base random seed (0 = random)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "", "log format (text, json)")
	pf.BoolVar(&f.noElection, "no-election", false, "skip the first-day leader election")
	pf.StringVar(&f.winRule, "win-rule", "", "win rule (dominance, slaughter)")
	pf.IntVar(&f.maxDays, "max-days", 0, "end undecided games after this many days (0 = never)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Play one game and log every phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}
			return runSingle(cmd, cfg)
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Play many independent games and report win rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}
			return runBatch(cmd, cfg)
		},
	}
	bf := batchCmd.Flags()
	bf.IntVarP(&f.runs, "runs", "n", 0, "number of games (default from config)")
	bf.IntVarP(&f.workers, "workers", "w", 0, "parallel games (0 = GOMAXPROCS)")
	bf.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	root.AddCommand(runCmd, batchCmd)
	return root
}

// loadConfig layers the flags the user set over the loaded configuration.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return cfg, err
	}
	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if changed("no-election") {
		cfg.LeaderElection = !f.noElection
	}
	if changed("win-rule") {
		cfg.WinRule = f.winRule
	}
	if changed("max-days") {
		cfg.MaxDays = f.maxDays
	}
	if changed("runs") {
		cfg.Runs = f.runs
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	return cfg, cfg.Validate()
}

func runSingle(cmd *cobra.Command, cfg config.Config) error {
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	logger, err := sim.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	r := sim.NewRunner(rules)
	r.Logger = logger

	o, err := r.RunOne(cmd.Context(), cfg.Seed)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), sim.RenderOutcome(o, styled(cmd.OutOrStdout())))
	return err
}

func runBatch(cmd *cobra.Command, cfg config.Config) error {
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	logger, err := sim.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"runs":      cfg.Runs,
		"workers":   cfg.Workers,
		"base_seed": cfg.Seed,
	}).Info("batch starting")
	// Per-phase events stay quiet in batch mode.
	if logger.GetLevel() > logrus.WarnLevel {
		logger.SetLevel(logrus.WarnLevel)
	}

	r := sim.NewRunner(rules)
	r.Logger = logger

	reg := prometheus.NewRegistry()
	if cfg.MetricsFile != "" {
		m, err := sim.NewMetrics(reg)
		if err != nil {
			return err
		}
		r.Metrics = m
	}

	s, err := sim.Batch(cmd.Context(), r, sim.BatchOptions{
		Runs:     cfg.Runs,
		Workers:  cfg.Workers,
		BaseSeed: cfg.Seed,
	})
	if err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		if err := sim.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
	}
	_, err = io.WriteString(cmd.OutOrStdout(), sim.RenderSummary(s, styled(cmd.OutOrStdout())))
	return err
}

// styled reports whether w is a terminal that can take colored output.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
