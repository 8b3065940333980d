package main

import (
	"fmt"
	"strings"

	ageis "github.com/shlokkku/Ageis-AI"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ageis",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ageis version %s\n", strings.TrimSpace(ageis.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
