package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyops/farecast/app"
	"github.com/skyops/farecast/config"
	"github.com/skyops/farecast/core/optimize"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Print the route optimization report for the catalog",
	RunE:  optimizeOnce,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func optimizeOnce(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.MQTT.Enabled = false
	cfg.Metrics.PrometheusEnabled = false
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	report := optimize.BuildReport(svc.Store.Flights(), svc.Store.Routes())
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
