package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "project-hub.com/project-hub/internal/configs"
	"project-hub.com/project-hub/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "project-hub",
	Short:         "Project collaboration data service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Logger.Error(err)
		os.Exit(1)
	}
}

// loadConfig reads .env when present, then the environment, and applies the
// log settings before anything else logs.
func loadConfig() config.Config {
	if err := godotenv.Load(); err != nil {
		logging.Logger.Info(".env file not found, using environment variables")
	}

	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFile)
	return cfg
}
