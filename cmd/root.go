package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ethanolivertroy/bundle-checker/internal/config"
	"github.com/ethanolivertroy/bundle-checker/internal/metrics"
	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
	"github.com/ethanolivertroy/bundle-checker/internal/reporter"
	"github.com/ethanolivertroy/bundle-checker/internal/scanner"
	"github.com/spf13/cobra"
)

type flags struct {
	stats       string
	mandatory   []string
	disallowed  []string
	fail        bool
	configFile  string
	format      string
	output      string
	metricsFile string
	cacheTTL    time.Duration
	cacheDir    string
	clearCache  bool
	timeout     int
	verbose     bool
}

const longHelp = `bundle-checker reads the module list of a bundler's compilation report
(the JSON written by "webpack --json") and checks it against two sets of
npm dependencies: the ones that must be bundled and the ones that must not.

A dependency counts as bundled when some module lives under its package
root, i.e. under node_modules/<name>/.

Settings can also come from .bundle-checker.yml, .bundle-checker.yaml,
.bundle-checker.toml or bundle-checker.json in the working directory, with
the keys mandatoryDependencies, disallowedDependencies, failOnInvalid and
stats. Flags override the file.

Examples:
  # Require react, forbid moment, warn only
  bundle-checker -s=dist/stats.json -m=react -d=moment

  # Fail the build on any violation
  bundle-checker --stats=dist/stats.json --mandatory=react,react-dom --disallowed=moment --fail

  # Check a report published by an earlier CI job, emit SARIF
  bundle-checker -s https://ci.example.com/artifacts/stats.json --format sarif -o bundle.sarif`

// Execute runs the CLI with args and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "bundle-checker",
	})

	logger.Info("Bundle Content Validator CLI started", "args", args)

	code := 0
	rootCmd := newRootCmd(stdout, logger, &code)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		outcome := reporter.Fail(logger, err)
		var cfgErr *models.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprint(stderr, rootCmd.UsageString())
		}
		return outcome.ExitCode()
	}
	return code
}

func newRootCmd(stdout io.Writer, logger *log.Logger, code *int) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "bundle-checker",
		Short:         "Check that a bundle includes mandatory and excludes disallowed dependencies",
		Long:          longHelp,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			c, err := runCheck(cmd, f, stdout, logger)
			*code = c
			return err
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &models.ConfigError{Msg: "Unrecognized argument", Err: err}
	})

	fl := rootCmd.Flags()
	fl.StringVarP(&f.stats, "stats", "s", "stats.json", "Compilation stats file or http(s) URL")
	fl.StringSliceVarP(&f.mandatory, "mandatory", "m", nil, "Comma-separated dependencies that must be bundled")
	fl.StringSliceVarP(&f.disallowed, "disallowed", "d", nil, "Comma-separated dependencies that must not be bundled")
	fl.BoolVarP(&f.fail, "fail", "f", false, "Exit with code 1 if the bundle content is invalid")
	fl.StringVarP(&f.configFile, "config", "c", "", "Config file (default: .bundle-checker.{yml,yaml,toml} or bundle-checker.json)")
	fl.StringVar(&f.format, "format", "terminal", "Report format: terminal, json, sarif")
	fl.StringVarP(&f.output, "output", "o", "", "Report file path (default: stdout)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	fl.DurationVar(&f.cacheTTL, "cache-ttl", 0, "Reuse a downloaded remote stats file for this long (0 fetches every run)")
	fl.StringVar(&f.cacheDir, "cache-dir", "", "Directory for cached remote stats (default: user cache dir)")
	fl.BoolVar(&f.clearCache, "clear-cache", false, "Remove cached remote stats before running")
	fl.IntVar(&f.timeout, "timeout", 60, "HTTP request timeout in seconds for remote stats")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log every module path")

	return rootCmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return models.NewConfigError("Unrecognized argument: %s", args[0])
	}
	return nil
}

func runCheck(cmd *cobra.Command, f *flags, stdout io.Writer, logger *log.Logger) (int, error) {
	cfg, err := buildConfig(cmd, f)
	if err != nil {
		return reporter.Fail(logger, err).ExitCode(), nil
	}

	// Create scanner
	s, err := scanner.New(cfg, logger)
	if err != nil {
		return 1, fmt.Errorf("failed to initialize scanner: %w", err)
	}

	// Run validation
	summary, outcome := s.Run(context.Background())
	if summary == nil {
		return outcome.ExitCode(), nil
	}

	// The verdict is already logged; output errors only change the exit code
	if err := writeOutputs(cfg, *summary, stdout, logger); err != nil {
		return reporter.OutputFailed(logger, err).ExitCode(), nil
	}

	return outcome.ExitCode(), nil
}

func writeOutputs(cfg *models.Config, summary reporter.Summary, stdout io.Writer, logger *log.Logger) error {
	rep := reporter.Get(cfg.OutputFormat)
	output, err := rep.Report(summary)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, output, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("Report written", "path", cfg.OutputFile)
	} else if _, err := fmt.Fprint(stdout, string(output)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.MetricsFile != "" {
		m := metrics.New()
		m.Observe(summary)
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
	}
	return nil
}

// buildConfig layers defaults, the config file and changed flags
func buildConfig(cmd *cobra.Command, f *flags) (*models.Config, error) {
	cfg := models.DefaultConfig()

	wd, err := os.Getwd()
	if err != nil {
		return nil, &models.ConfigError{Msg: "Could not determine working directory", Err: err}
	}
	loaded, err := config.Load(wd, f.configFile)
	if err != nil {
		return nil, &models.ConfigError{Msg: "Invalid configuration", Err: err}
	}
	if loaded.Found {
		cfg.ConfigFile = loaded.Path
		cfg.Validation = loaded.Options.Validation
		if loaded.Options.Stats != "" {
			cfg.StatsPath = loaded.Options.Stats
		}
	}

	fl := cmd.Flags()
	if fl.Changed("stats") {
		cfg.StatsPath = f.stats
	}
	if fl.Changed("mandatory") {
		cfg.Validation.Mandatory = normalize.Names(f.mandatory)
	}
	if fl.Changed("disallowed") {
		cfg.Validation.Disallowed = normalize.Names(f.disallowed)
	}
	if fl.Changed("fail") {
		cfg.Validation.FailOnInvalid = f.fail
	}

	if !reporter.IsKnownFormat(f.format) {
		return nil, models.NewConfigError("Unknown report format: %s", f.format)
	}
	cfg.OutputFormat = f.format
	cfg.OutputFile = f.output
	cfg.MetricsFile = f.metricsFile
	cfg.CacheTTL = f.cacheTTL
	cfg.CacheDir = f.cacheDir
	cfg.ClearCache = f.clearCache
	cfg.Timeout = time.Duration(f.timeout) * time.Second

	return cfg, nil
}
