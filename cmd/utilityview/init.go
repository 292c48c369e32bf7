package main

import (
	"fmt"
	"os"

	"github.com/jgoulah/utilityview/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config.yaml",
	Long: `Writes a config file with the default database, log level and MQTT topic prefix.
The workbook path is taken from --file (default utility.xlsx). An existing config is kept unless --force is given.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	file := filePath
	if file == "" {
		file = "utility.xlsx"
	}

	cfg := &config.Config{
		Reader:   config.ReaderConfig{File: file},
		Database: getDBPath(&config.Config{}),
		LogLevel: "info",
		MQTT: config.MQTTConfig{
			TopicPrefix: config.MQTTConfig{}.GetTopicPrefix(),
			ClientID:    config.MQTTConfig{}.GetClientID(),
		},
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
