package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/extrato-classifier/cmd/batch"
	"fjacquet/extrato-classifier/cmd/classify"
	"fjacquet/extrato-classifier/cmd/root"
	"fjacquet/extrato-classifier/cmd/rules"
	"fjacquet/extrato-classifier/cmd/serve"
	"fjacquet/extrato-classifier/internal/config"
	"fjacquet/extrato-classifier/internal/logging"
)

func init() {
	// 1. Load .env before anything reads the environment; later calls are no-ops
	config.LoadEnv()

	// 2. Configure the shared logger before any command logs
	logging.SetLogger(logging.NewLogrusAdapter(logLevelFromEnv(), config.GetEnv(config.EnvPrefix+"_LOG_FORMAT", "text")))

	// 3. Now that logging is configured, initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

// logLevelFromEnv returns the level to use until the configuration is loaded
func logLevelFromEnv() string {
	return strings.ToLower(config.GetEnv(config.EnvPrefix+"_LOG_LEVEL", "info"))
}

func main() {
	err := root.Cmd.Execute()
	if root.AppContainer != nil {
		if closeErr := root.AppContainer.Close(); closeErr != nil {
			root.Log.WithError(closeErr).Warn("Failed to close application container")
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
