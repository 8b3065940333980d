package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ageis",
	Short: "Ageis answers natural-language questions about pension accounts",
	Long: `Ageis routes each question through a supervised pipeline of specialists
(risk, fraud, projections, documents) and always returns a single summarized answer.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the ageis YAML config file")
}
