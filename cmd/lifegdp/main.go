// Command lifegdp draws the GDP and life expectancy charts from all_data.csv
// and prints the observations that go with them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/config"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/logging"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/pipeline"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/report"
)

// Version is set at build time.
var Version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "lifegdp",
		Short: "Chart GDP against life expectancy for six countries, 2000-2015",
		Long: `lifegdp loads all_data.csv, renames the life expectancy column to LEABY
and writes eight PNG charts to the output directory, printing observations
about the data between them.

Settings are read from lifegdp.yaml in the working directory when present.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(fs, ".")
			if err != nil {
				return err
			}
			return run(cmd.Context(), fs, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func run(ctx context.Context, fs afero.Fs, cfg *config.Config, stdout, stderr io.Writer) error {
	log, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.File() != "" {
		log.Debug("using config file", zap.String("path", cfg.File()))
	}

	_, err = report.Run(ctx, report.Options{
		Fs:          fs,
		Input:       cfg.Input,
		OutputDir:   cfg.OutputDir,
		DPI:         cfg.DPI,
		PreviewRows: cfg.PreviewRows,
		Stdout:      stdout,
		Viewer:      pipeline.LogViewer{Logger: log},
		Logger:      log,
	})
	return err
}
