// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/extrato-classifier/internal/config"
	"fjacquet/extrato-classifier/internal/container"
	"fjacquet/extrato-classifier/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommonFlags represents the flags that are common to every command
type CommonFlags struct {
	LogLevel  string
	LogFormat string
	RulesFile string
	MaxLength int
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// AppContainer holds the wired dependencies once PersistentPreRunE ran.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "extrato",
		Short: "Classify bank and card statement lines into spending categories.",
		Long: `extrato classifies raw bank or card statement descriptions into a
spending category and a clean, human-readable merchant label.

It runs as a one-shot classifier, a CSV batch processor or an HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer != nil {
				return nil
			}
			c, err := NewContainer(cmd)
			if err != nil {
				return err
			}
			SetContainer(c)
			return nil
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	RegisterFlags(Cmd.PersistentFlags(), &SharedFlags)
}

// RegisterFlags adds the common flags to fs, storing their values in f.
func RegisterFlags(fs *pflag.FlagSet, f *CommonFlags) {
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&f.LogFormat, "log-format", "", "Log format (text or json)")
	fs.StringVarP(&f.RulesFile, "rules", "r", "", "YAML rule table replacing the built-in one")
	fs.IntVar(&f.MaxLength, "max-length", 0, "Maximum description length in characters (negative disables the bound)")
}

// NewContainer loads the configuration, applies the flags set on cmd and wires
// the application.
func NewContainer(cmd *cobra.Command) (*container.Container, error) {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return c, nil
}

// applyFlags overrides cfg with the common flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("rules") {
		cfg.Rules.File, _ = flags.GetString("rules")
	}
	if flags.Changed("max-length") {
		cfg.Classifier.MaxInputLength, _ = flags.GetInt("max-length")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SetContainer installs c as the application container and its logger as
// the shared logger.
func SetContainer(c *container.Container) {
	AppContainer = c
	if c == nil {
		return
	}
	Log = c.GetLogger()
	logging.SetLogger(Log)
}
