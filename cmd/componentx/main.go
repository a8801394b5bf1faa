// Command componentx compiles, serves and publishes scoped component
// stylesheets.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/componentx/internal/config"
	"github.com/vango-dev/componentx/internal/errors"
	"github.com/vango-dev/componentx/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent root flags.
type globalOptions struct {
	configPath string
	logLevel   string
	noColor    bool
}

func main() {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "componentx",
		Short: "Scoped stylesheets for reusable components",
		Long: `componentx compiles nested style descriptions into CSS scoped to one
component type, serves them with live reload during development and
publishes them to S3 for production.

Style files are named <Component>.style.json or <Component>.style.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				errors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: ./componentx.json if present)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		compileCmd(opts),
		serveCmd(opts),
		publishCmd(opts),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

// load returns the configuration and a logger for it. Without --config the
// working directory's config file is used when present, defaults otherwise.
func (o *globalOptions) load() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case o.configPath != "":
		cfg, err = config.LoadFile(o.configPath)
	case config.Exists("."):
		cfg, err = config.Load(".")
	default:
		cfg = config.New()
	}
	if err != nil {
		return nil, nil, err
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.New("E122").WithDetail(err.Error())
	}
	return cfg, logging.New(level), nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// usageError marks errors caused by bad flags or arguments.
func usageError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
