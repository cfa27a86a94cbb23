package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethanolivertroy/bundle-checker/internal/cache"
	"github.com/ethanolivertroy/bundle-checker/internal/clients"
	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
	"github.com/ethanolivertroy/bundle-checker/internal/parsers"
	"github.com/ethanolivertroy/bundle-checker/internal/reporter"
	"github.com/ethanolivertroy/bundle-checker/internal/validator"
)

// Scanner orchestrates one CLI validation run
type Scanner struct {
	config      *models.Config
	logger      reporter.Logger
	statsClient *clients.StatsClient
}

// New creates a new Scanner with the given configuration
func New(config *models.Config, logger reporter.Logger) (*Scanner, error) {
	if config.ClearCache {
		if err := clearCache(config); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
		logger.Info("Stats cache cleared")
	}

	var c *cache.Cache
	if config.CacheTTL > 0 && clients.IsRemote(config.StatsPath) {
		var err error
		c, err = openCache(config)
		if err != nil {
			// Non-fatal: continue without cache
			logger.Debug("stats cache disabled", "err", err)
			c = nil
		}
	}

	return &Scanner{
		config:      config,
		logger:      logger,
		statsClient: clients.NewStatsClient(c, config.Timeout),
	}, nil
}

func openCache(config *models.Config) (*cache.Cache, error) {
	if config.CacheDir != "" {
		return cache.NewInDir(config.CacheDir, config.CacheTTL)
	}
	return cache.New("bundle-checker", config.CacheTTL)
}

func clearCache(config *models.Config) error {
	c, err := openCache(config)
	if err != nil {
		return err
	}
	return c.Clear()
}

// Run loads the module list and validates it. The summary is nil when the
// run stopped on a configuration error.
func (s *Scanner) Run(ctx context.Context) (*reporter.Summary, models.Outcome) {
	// Step 1: Reject contradictory configuration before touching the stats
	if err := validator.CheckConfig(s.config.Validation); err != nil {
		return nil, reporter.Fail(s.logger, err)
	}

	// Step 2: Load and normalize module paths
	raw, err := s.LoadModules(ctx)
	if err != nil {
		return nil, reporter.Fail(s.logger, err)
	}
	paths := normalize.Paths(raw)

	// Step 3: Validate and apply the outcome policy
	result, outcome := reporter.Evaluate(s.logger, paths, s.config.Validation)
	return &reporter.Summary{
		Source:         s.config.StatsPath,
		ModulesScanned: len(paths),
		Config:         s.config.Validation,
		Result:         result,
	}, outcome
}

// LoadModules reads the configured stats source and returns its raw module
// paths. Every failure is a ConfigError.
func (s *Scanner) LoadModules(ctx context.Context) ([]string, error) {
	source := s.config.StatsPath

	var content []byte
	var err error
	if clients.IsRemote(source) {
		content, err = s.statsClient.Fetch(ctx, source)
		if err != nil {
			return nil, &models.ConfigError{Msg: "Could not fetch " + source, Err: err}
		}
	} else {
		content, err = os.ReadFile(source)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, models.NewConfigError("File does not exist: %s", absPath(source))
			}
			return nil, &models.ConfigError{Msg: "Could not read " + source, Err: err}
		}
	}

	modules, err := parsers.ForFile(filepath.Base(source)).Parse(source, content)
	if err != nil {
		var cfgErr *models.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &models.ConfigError{Msg: fmt.Sprintf("Could not parse %s", source), Err: err}
	}

	s.logger.Debug("loaded stats", "source", source, "modules", len(modules))
	return modules, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
