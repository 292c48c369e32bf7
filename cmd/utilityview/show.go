package main

import (
	"fmt"

	"github.com/jgoulah/utilityview/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	showFrom int
	showTo   int
)

var showCmd = &cobra.Command{
	Use:   "show [view]",
	Short: "Show annual totals for a view",
	Long: `Loads the workbook and prints annual totals for one view, or all views when none is given.

Available views: consumption, generation, timeband, water
The generation view totals the amount sold back to the grid.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"consumption", "generation", "timeband", "water"},
	RunE:      runShow,
}

func init() {
	showCmd.Flags().IntVar(&showFrom, "from", 0, "first year to include (default: earliest)")
	showCmd.Flags().IntVar(&showTo, "to", 0, "last year to include (default: latest)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	views := dataset.Views()
	if len(args) == 1 {
		view, err := dataset.ParseView(args[0])
		if err != nil {
			return err
		}
		views = []dataset.View{view}
	}

	if showFrom != 0 && showTo != 0 && showFrom > showTo {
		return fmt.Errorf("--from %d is after --to %d", showFrom, showTo)
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}

	for _, view := range views {
		series, err := ds.Series(view, showFrom, showTo)
		if err != nil {
			return fmt.Errorf("computing %s: %w", view, err)
		}
		printSeries(cmd.OutOrStdout(), series)
	}

	return nil
}
