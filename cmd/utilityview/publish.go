package main

import (
	"fmt"
	"time"

	"github.com/jgoulah/utilityview/internal/dataset"
	"github.com/jgoulah/utilityview/internal/publisher"
	"github.com/spf13/cobra"
)

var (
	publishFrom int
	publishTo   int
)

var publishCmd = &cobra.Command{
	Use:   "publish [view...]",
	Short: "Publish annual series to MQTT",
	Long: `Loads the workbook and publishes each view as retained JSON messages to the MQTT broker
configured under mqtt in config.yaml. Publishes all views when none are given.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().IntVar(&publishFrom, "from", 0, "first year to include")
	publishCmd.Flags().IntVar(&publishTo, "to", 0, "last year to include")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	views := dataset.Views()
	if len(args) > 0 {
		views = views[:0:0]
		for _, arg := range args {
			view, err := dataset.ParseView(arg)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.MQTT.Enabled {
		return fmt.Errorf("MQTT is not enabled in config")
	}

	// Load before connecting so a bad workbook never reaches the broker
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	pub, err := publisher.New(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	total := 0
	for _, view := range views {
		series, err := ds.Series(view, publishFrom, publishTo)
		if err != nil {
			return fmt.Errorf("computing %s: %w", view, err)
		}

		fmt.Fprintf(out, "Publishing %s (%d years)... ", view, len(series.Rows))
		sent, err := pub.PublishSeries(series)
		total += sent
		if err != nil {
			fmt.Fprintf(out, "FAILED: %v\n", err)
			return fmt.Errorf("publishing %s: %w", view, err)
		}
		fmt.Fprintf(out, "✓ %d messages\n", sent)
	}

	fmt.Fprintf(out, "\nTotal messages published: %d\n", total)
	return nil
}
