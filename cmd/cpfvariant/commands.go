package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpfvariant/cpf"
	"github.com/katalvlaran/cpfvariant/report"
	"github.com/katalvlaran/cpfvariant/variant"
)

// searchFlags holds the raw flag values of the search command.
type searchFlags struct {
	configPath string
	maxLevel   int
	output     string
	noColor    bool
	logLevel   string
	trace      bool
	metrics    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cpfvariant",
		Short:         "Find valid CPF numbers a few digits away from a given one",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSearchCmd(), newValidateCmd(), newFormatCmd())

	return root
}

func newSearchCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search <cpf>",
		Short: "List valid CPFs differing from the input in the fewest digits",
		Long: `Search changes 1, then 2, then 3 digits of a valid CPF and lists every
resulting valid CPF. Escalation stops at the first level with a result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args[0])
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.IntVar(&f.maxLevel, "max-level", variant.MaxLevel, "highest number of digits changed (1-3)")
	fs.StringVarP(&f.output, "output", "o", "text", "output format: text, json or yaml")
	fs.BoolVar(&f.noColor, "no-color", false, "disable styled text output; --no-color=false restores auto detection")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&f.trace, "trace", false, "print spans to stderr")
	fs.BoolVar(&f.metrics, "metrics", false, "print metrics to stderr after the search")

	return cmd
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, f searchFlags) (Config, error) {
	cfg, err := LoadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}

	fs := cmd.Flags()
	if fs.Changed("max-level") {
		cfg.MaxLevel = f.maxLevel
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("no-color") {
		cfg.Color = ColorAuto
		if f.noColor {
			cfg.Color = ColorNever
		}
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("trace") {
		cfg.Trace = f.trace
	}
	if fs.Changed("metrics") {
		cfg.Metrics = f.metrics
	}

	return cfg, cfg.Validate()
}

func runSearch(ctx context.Context, stdout, stderr io.Writer, cfg Config, raw string) (err error) {
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []variant.Option{
		variant.WithContext(ctx),
		variant.WithMaxLevel(cfg.MaxLevel),
		variant.WithLogger(logger),
		variant.WithMetrics(variant.NewMetrics(reg)),
	}
	if format == report.Text {
		opts = append(opts, variant.WithOnLevel(func(k int) {
			fmt.Fprintln(stderr, variant.ProgressMessage(k))
		}))
	}
	if cfg.Trace {
		tp, terr := newTracerProvider(stderr)
		if terr != nil {
			return terr
		}
		defer func() {
			if serr := tp.Shutdown(context.WithoutCancel(ctx)); serr != nil && err == nil {
				err = serr
			}
		}()
		opts = append(opts, variant.WithTracer(tp.Tracer(serviceName)))
	}

	out, err := variant.NewSearcher(opts...).Submit(raw)
	if err != nil {
		return err
	}
	if err := report.Write(stdout, out, format, useColor(cfg.Color, stdout)); err != nil {
		return err
	}
	if cfg.Metrics {
		return writeMetrics(stderr, reg)
	}

	return nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <cpf>",
		Short: "Check a CPF; exits with status 1 when it is invalid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cpf.ParseValid(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %s\n", id)

			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <digits>",
		Short: "Print 11 digits as DDD.DDD.DDD-DD without checking them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cpf.Parse(cpf.Strip(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)

			return nil
		},
	}
}
