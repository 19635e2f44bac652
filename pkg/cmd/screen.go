package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tidesurf/screener/pkg/datasource/csvsource"
	"github.com/tidesurf/screener/pkg/screener"
)

func init() {
	ScreenCmd.Flags().String("input-dir", "", "directory of per-symbol csv files, overrides the config file")
	ScreenCmd.Flags().String("output", "", "signal log csv file, overrides the config file")
	ScreenCmd.Flags().Int("workers", 0, "number of concurrent symbol scans, overrides the config file")
	RootCmd.AddCommand(ScreenCmd)
}

var ScreenCmd = &cobra.Command{
	Use:   "screen",
	Short: "screen the symbol universe and append detected signals to the log",

	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := viper.GetString("config")
		config, err := screener.LoadConfig(configFile)
		if err != nil {
			return err
		}

		if v, err := cmd.Flags().GetString("input-dir"); err == nil && v != "" {
			config.InputDir = v
		}
		if v, err := cmd.Flags().GetString("output"); err == nil && v != "" {
			config.OutputFile = v
		}
		if v, err := cmd.Flags().GetInt("workers"); err == nil && v > 0 {
			config.Workers = v
		}

		if err := config.Validate(); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		s := screener.New(config)
		records, err := s.Run(ctx)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			log.Info("no signals detected")
			return nil
		}

		// A partially appended batch stays in the log; there is no rollback.
		if err := csvsource.WriteSignals(config.OutputFile, records); err != nil {
			return err
		}

		screener.RenderSummary(os.Stdout, records)
		log.Infof("%d signals appended to %s", len(records), config.OutputFile)
		return nil
	},
}
