package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/branch-locator/app/config"
	"github.com/branch-locator/internal/loader"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type convertOptions struct {
	input  string
	output string
	bom    bool
	config string
}

func main() {
	if err := newConvertCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newConvertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a branch spreadsheet (xlsx or csv) into the canonical cities.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Source spreadsheet, .xlsx or .csv (required)")
	cmd.Flags().StringVar(&opts.output, "output", "public/cities.csv", "Destination CSV")
	cmd.Flags().BoolVar(&opts.bom, "bom", true, "Start the output with a UTF-8 byte order mark")
	cmd.Flags().StringVar(&opts.config, "config", "", "Config file with data.fields header aliases")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runConvert(ctx context.Context, opts convertOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	loaderOpts, err := cfg.LoaderOptions()
	if err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	rows, err := loader.New(loader.FileSource{Path: opts.input}, loaderOpts, logger).ReadRows(ctx)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.input, err)
	}
	records := loader.Records(rows, loaderOpts.Fields)

	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if err := loader.WriteCSV(f, records, opts.bom); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.output, err)
	}

	logger.Info("Converted branch sheet",
		zap.String("input", opts.input),
		zap.String("output", opts.output),
		zap.Int("rows", len(rows)),
		zap.Int("branches", len(records)),
		zap.Int("dropped", len(rows)-len(records)))
	return nil
}
