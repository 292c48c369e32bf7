package main

import (
	"fmt"
	"time"

	"github.com/jgoulah/utilityview/internal/config"
	"github.com/jgoulah/utilityview/internal/database"
	"github.com/jgoulah/utilityview/pkg/models"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded workbook loads",
	Long: `Displays the import log: when each workbook was loaded and how many rows were read or skipped.
With --last, shows only the most recent load of the configured workbook.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Limit number of entries (0 = no limit)")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Show only the latest load of the configured workbook")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	imports, err := listImports(cfg, db)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(imports) == 0 {
		fmt.Fprintln(out, "No imports recorded")
		return nil
	}

	fmt.Fprintln(out, "------------------------------------------------------------------------")
	fmt.Fprintf(out, "%-20s  %12s  %12s  %8s  %s\n", "Loaded", "Electricity", "Water", "Skipped", "File")
	fmt.Fprintln(out, "------------------------------------------------------------------------")
	for _, rec := range imports {
		fmt.Fprintf(out, "%-20s  %12d  %12d  %8d  %s\n",
			rec.LoadedAt.Local().Format("2006-01-02 15:04:05"),
			rec.ElectricityRows,
			rec.WaterRows,
			rec.ElectricitySkipped+rec.WaterSkipped,
			rec.File)
	}
	fmt.Fprintln(out, "------------------------------------------------------------------------")
	fmt.Fprintf(out, "%d entries (newest first, as of %s)\n", len(imports), time.Now().Format("2006-01-02"))

	return nil
}

func listImports(cfg *config.Config, db *database.DB) ([]models.ImportRecord, error) {
	if !historyLast {
		imports, err := db.ListImports(historyLimit)
		if err != nil {
			return nil, fmt.Errorf("listing imports: %w", err)
		}
		return imports, nil
	}

	path, err := getWorkbookPath(cfg)
	if err != nil {
		return nil, err
	}
	rec, err := db.LastImport(path)
	if err != nil {
		return nil, fmt.Errorf("reading last import: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return []models.ImportRecord{*rec}, nil
}
