package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"school-transform/internal/config"
	"school-transform/internal/format"
	"school-transform/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	sheet      string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "school-transform [flags] <source> <destination>",
		Short: "Convert school enrollment files between flat and tree formats",
		Long: "Convert school enrollment files between flat rows (.csv, .xlsx) and a\n" +
			"school tree (.xml, .yaml, .yml). Flat sources are rolled up into a tree;\n" +
			"tree sources are denormalized into rows.",
		Args: func(_ *cobra.Command, args []string) error {
			return validateArgs(args).Error()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args[0], args[1], stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (overrides config)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX worksheet to read or write (overrides config)")

	return cmd
}

// apply copies the flags that were set over the loaded configuration.
func (o rootOptions) apply(cfg *config.Config) {
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}

	if o.sheet != "" {
		cfg.Flat.Sheet = o.sheet
	}
}

func run(opts rootOptions, src, dst string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.configPath, opts.apply)
	if err != nil {
		return err
	}

	logger := logging.WithRun(logging.New(cfg.Logging, stderr))
	logger.Debug("starting conversion", slog.String("source", src), slog.String("destination", dst))

	res, err := format.NewConverter(*cfg, logger).Convert(src, dst)
	if err != nil {
		logger.Error("conversion failed", slog.Any("error", err))
		return err
	}

	fmt.Fprintf(stdout, "File transformation complete (from %s to %s).\n", res.From, res.To)

	return nil
}
