package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyops/farecast/app"
	"github.com/skyops/farecast/config"
	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/core/pricing"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price the whole catalog once and print the updates",
	RunE:  priceOnce,
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

func priceOnce(cmd *cobra.Command, args []string) error {
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

	updates := svc.Engine.BatchPrice(svc.Store.Flights())
	out := struct {
		PriceUpdates []model.PriceUpdate `json:"price_updates"`
		BestDeals    []model.PriceUpdate `json:"best_deals"`
	}{
		PriceUpdates: updates,
		BestDeals:    pricing.BestCurrentDeals(updates),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
