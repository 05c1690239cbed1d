package cli

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/owbrules/internal/config"
	"github.com/jokarl/owbrules/internal/rules"
	"github.com/jokarl/owbrules/internal/rulesdata"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag  string
	verboseFlag bool
)

// Set by the root command before any subcommand runs
var (
	environment *config.Env
	logger      hclog.Logger = hclog.NewNullLogger()
)

// ErrUnresolved is returned when a command's policy treats unresolved labels as a failure
var ErrUnresolved = errors.New("unresolved labels found")

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "owbrules",
	Short: "Rules reference resolver for army list data",
	Long: `owbrules maps unit, weapon and special-rule names used in army list data
to the pages of the online rules reference.

Names are matched after applying a table of synonyms (plurals and variant
spellings) and looked up in a generated index merged with a curated overlay.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		e, err := config.ParseEnv(nil)
		if err != nil {
			return err
		}
		environment = e

		level := hclog.LevelFromString(e.LogLevel)
		if level == hclog.NoLevel {
			return fmt.Errorf("invalid OWBRULES_LOG_LEVEL %q", e.LogLevel)
		}
		if verboseFlag {
			level = hclog.Debug
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "owbrules",
			Output: cmd.ErrOrStderr(),
			Level:  level,
		})
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to "+config.FileName+" (default: search cwd, then the target directory)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

// loadConfig loads the configuration for dir and applies environment overrides
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(configFlag, dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(environment); err != nil {
		return nil, err
	}
	if path := cfg.ConfigPath(); path != "" {
		logger.Debug("loaded configuration", "path", path)
	}
	return cfg, nil
}

// newEngine builds the resolution engine described by cfg
func newEngine(cfg *config.Config, suggest bool) (*rules.Engine, error) {
	resolver, err := rulesdata.New(rulesdata.Options{
		BasePath: cfg.BasePath(),
		Rules:    cfg.RuleMap(),
		Synonyms: cfg.SynonymMap(),
		MaxHops:  cfg.MaxHops(),
		Logger:   logger.Named("rulesdata"),
	})
	if err != nil {
		return nil, err
	}

	return rules.NewEngine(resolver, rules.EngineConfig{
		BaseURL:   cfg.BaseURL(),
		Suggest:   suggest && cfg.SuggestEnabled(),
		Threshold: cfg.SuggestThreshold(),
	}), nil
}
