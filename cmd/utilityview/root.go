package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jgoulah/utilityview/internal/config"
	"github.com/jgoulah/utilityview/internal/database"
	"github.com/jgoulah/utilityview/internal/dataset"
	"github.com/jgoulah/utilityview/pkg/models"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	dbPath    string
	filePath  string
	logLevel  string
	noHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "utilityview",
	Short: "Summarize household electricity and water costs from a spreadsheet",
	Long: `UtilityView reads the electricity and water sheets of a utility-cost workbook
and prints yearly totals: consumption, energy sold back, usage per time band and water usage.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "import log database (default is ./data.db)")
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "workbook to read (overrides reader.file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record the load in the import log")
}

// setupLogging installs the default slog logger on stderr
func setupLogging(cmd *cobra.Command, args []string) error {
	level := config.ParseLogLevel(logLevel)
	if logLevel == "" {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		level = cfg.GetLogLevel()
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// getDBPath returns the database file path
func getDBPath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.GetDatabasePath()
}

// openDB opens the import log database
func openDB(cfg *config.Config) (*database.DB, error) {
	path := getDBPath(cfg)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return database.New(path)
}

// getWorkbookPath resolves the workbook from the flag or the config
func getWorkbookPath(cfg *config.Config) (string, error) {
	if filePath != "" {
		return filePath, nil
	}
	return cfg.GetFile()
}

// loadDataset reads the configured workbook and records the load in the
// import log. Any load error aborts before a dataset is returned.
func loadDataset() (*dataset.Dataset, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	path, err := getWorkbookPath(cfg)
	if err != nil {
		return nil, err
	}

	regions := dataset.Regions{
		Electricity: cfg.GetElectricityRegion(),
		Water:       cfg.GetWaterRegion(),
	}
	ds, err := dataset.Load(path, regions, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("loading workbook: %w", err)
	}

	if !noHistory {
		if err := recordImport(cfg, ds); err != nil {
			slog.Warn("could not record import", slog.String("error", err.Error()))
		}
	}

	return ds, nil
}

// recordImport writes the load stats of ds to the import log
func recordImport(cfg *config.Config, ds *dataset.Dataset) error {
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	stats := ds.Stats()
	return db.RecordImport(&models.ImportRecord{
		File:               ds.Path(),
		ElectricityRows:    stats.Electricity.Rows,
		ElectricitySkipped: stats.Electricity.Skipped,
		WaterRows:          stats.Water.Rows,
		WaterSkipped:       stats.Water.Skipped,
	})
}
