package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gpxplan/internal/app"
	"gpxplan/internal/config"
)

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "gpxplan",
		Short: "Convert GPX tracks into QGroundControl rover mission plans",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			zcfg := zap.NewProductionConfig()
			if verbose || fileCfg.Verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}

			appCtx, err = app.NewWire(app.Config{File: fileCfg, Logger: logger})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default gpxplan.yaml in the working directory)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(convertCmd(), inspectCmd(), validateCmd(), fingerprintCmd())
	return root.Execute()
}
