/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for MechID commands. Configuration loading, logger
setup and construction of the knowledge base, pipeline engine and catalog from
viper settings.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/mechid/pkg/catalog"
	"github.com/kleascm/mechid/pkg/citations"
	"github.com/kleascm/mechid/pkg/core"
	"github.com/kleascm/mechid/pkg/inference"
	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/kleascm/mechid/pkg/logging"
	"github.com/spf13/viper"
)

// defaultCatalogPaths are tried when no catalog file is configured
var defaultCatalogPaths = []string{"microbiology_cultures_cohort.csv", "microbiology_cultures_cohort.xlsx"}

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// MECHID_LOG_LEVEL, MECHID_SERVER_ADDR, ...
	viper.SetEnvPrefix("MECHID")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger from viper settings
func SetupLogging() (*logging.Logger, error) {
	cfg := logging.DefaultConfig()
	if v := viper.GetString("log_level"); v != "" {
		cfg.Level = logging.LogLevel(strings.ToLower(v))
	}
	if v := viper.GetString("log_format"); v != "" {
		cfg.Format = logging.LogFormat(strings.ToLower(v))
	}
	cfg.OutputDir = viper.GetString("log_dir")
	if n := viper.GetInt("log_max_files"); n > 0 {
		cfg.MaxFiles = n
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}
	return logger, nil
}

// LoadBase returns the built-in knowledge base with the configured rule pack applied
func LoadBase(logger *logging.Logger) (*knowledge.Base, error) {
	base := knowledge.Default()

	path := viper.GetString("rule_pack")
	if path == "" {
		return base, nil
	}

	pack, err := knowledge.LoadRulePack(path)
	if err != nil {
		return nil, err
	}
	extended, err := base.Apply(pack)
	if err != nil {
		return nil, fmt.Errorf("apply rule pack %s: %w", path, err)
	}
	logger.LogRulePack(path, len(pack.Organisms), len(pack.Aliases), nil)
	return extended, nil
}

// BuildEngine wires the pipeline from configuration. Extra reporters are appended
// after the logging reporter.
func BuildEngine(logger *logging.Logger, reporters ...core.Reporter) (*core.Engine, error) {
	base, err := LoadBase(logger)
	if err != nil {
		return nil, err
	}

	inferer, err := inference.NewEngine(viper.GetString("inference_mode"))
	if err != nil {
		return nil, err
	}

	all := append([]core.Reporter{core.NewLoggerReporter(logger.GetLogger())}, reporters...)
	return core.NewEngine(base, inferer, citations.DefaultResolver(),
		core.WithLogger(logger.GetLogger()),
		core.WithReporters(all...),
	), nil
}

// LoadCatalog loads the configured catalog. A configured file that fails to load is
// an error; without configuration the default cohort files are tried quietly.
func LoadCatalog(logger *logging.Logger, canon catalog.Canonicalizer) (*catalog.Catalog, error) {
	var c *catalog.Catalog
	if path := viper.GetString("catalog_file"); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	} else {
		c = catalog.LoadOrEmpty(logger.GetLogger(), defaultCatalogPaths...)
	}

	if c.Len() > 0 {
		logger.LogCatalog(c.Source, c.Len(), len(c.Organisms(canon)), nil)
	}
	return c, nil
}
