// Package main is the extkit command line tool. It exposes the zipper and
// the text, number, hash and date helpers of the extkit packages.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/extkit/config"
	"github.com/kbukum/extkit/dates"
	"github.com/kbukum/extkit/errors"
	"github.com/kbukum/extkit/logger"
	"github.com/kbukum/extkit/observability"
	"github.com/kbukum/extkit/version"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries the state shared by every command of one invocation.
type app struct {
	configFile string
	envFile    string
	logLevel   string

	cfg       *config.Config
	log       *logger.Logger
	telemetry *observability.Telemetry
	clock     dates.Clock
}

// run executes one invocation and returns the process exit code:
// 0 on success, 2 for bad arguments and 1 for everything else.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{clock: dates.SystemClock}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	a.shutdown()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "extkit: %v\n", err)
	if appErr, ok := errors.AsAppError(err); ok && appErr.Code.Kind() == "argument" {
		return 2
	}
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "extkit",
		Short: "Sequence zipping and text, number, hash and date helpers",
		Long: `extkit zips line-oriented files with a configurable imbalance policy
and exposes the string truncation, number-to-words, FNV hashing and age
helpers of the extkit library.

Configuration is read from extkit.yml, .env and EXTKIT_* variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./extkit.yml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", ".env file (default: ./.env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level")

	root.AddCommand(
		a.zipCmd(),
		a.truncateCmd(),
		a.ageCmd(),
		a.hashCmd(),
		a.wordsCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads configuration and wires logging and telemetry before any
// command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logOut := cmd.ErrOrStderr()
	if cfg.Logging.Output == "stdout" {
		logOut = cmd.OutOrStdout()
	}
	a.log = logger.NewWithWriter(&cfg.Logging, config.AppName, logOut)
	logger.SetGlobalLogger(a.log)
	logger.RegisterDefaults("cli", "config")

	telemetry, err := observability.Init(cmd.Context(), observability.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Base.Name,
		ServiceVersion: version.GetShortVersion(),
		Environment:    cfg.Base.Environment,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
		Interval:       cfg.Telemetry.Interval,
	})
	if err != nil {
		return errors.Unavailable("telemetry", err)
	}
	a.telemetry = telemetry
	return nil
}

func (a *app) shutdown() {
	if a.telemetry == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.telemetry.Shutdown(ctx); err != nil {
		a.log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
	}
}

func (a *app) metrics() *observability.PipelineMetrics {
	if a.telemetry == nil {
		return nil
	}
	return a.telemetry.Metrics
}

// do runs fn inside a command span and logs its outcome.
func (a *app) do(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx := logger.ContextWithCommand(cmd.Context(), cmd.Name())
	ctx, c := observability.StartCommand(ctx, cmd.Name(), a.metrics())
	log := logger.Get("cli").WithContext(ctx)

	log.Debug("command started")
	err := fn(ctx)
	status := c.End(ctx, err)

	fields := logger.DurationFields(cmd.Name(), c.Duration())
	fields[logger.FieldStatus] = status
	if err != nil {
		log.Error("command failed", logger.MergeWithError(fields, err))
		return err
	}
	log.Debug("command finished", fields)
	return nil
}
