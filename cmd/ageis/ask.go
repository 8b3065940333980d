package main

import (
	"fmt"
	"os"
	"strings"

	ageis "github.com/shlokkku/Ageis-AI"
	"github.com/shlokkku/Ageis-AI/internal/cli"
	"github.com/shlokkku/Ageis-AI/internal/presentation"
	"github.com/shlokkku/Ageis-AI/internal/presentation/graph"
	"github.com/shlokkku/Ageis-AI/internal/presentation/tui"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a pension account",
	Long: `Runs one question through the pipeline and renders the answer.
With no question argument, starts an interactive loop.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		identity, _ := cmd.Flags().GetString("identity")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		rt, err := cli.BuildRuntime(cmd.Context(), cfg)
		if err != nil {
			fmt.Printf("Error initializing ageis: %v\n", err)
			os.Exit(1)
		}
		defer rt.Close()

		render := tui.NewRenderer()

		if len(args) > 0 {
			question := strings.Join(args, " ")
			ans, err := rt.Pipeline.Ask(cmd.Context(), domain.Query{Text: question, Identity: identity})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			printRendered(render, presentation.FormatAnswer(ans))
			if showGraph, _ := cmd.Flags().GetBool("graph"); showGraph {
				fmt.Println(graph.GenerateMermaid(ans.Trace))
			}
			return
		}

		tui.PrintBanner()
		runner := ageis.NewRunner(identity)
		runner.Input = os.Stdin
		runner.Output = os.Stdout
		runner.Renderer = ageis.ContentRenderer(render)
		if err := runner.Run(cmd.Context(), rt.Pipeline); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func printRendered(render func(string) (string, error), markdown string) {
	out, err := render(markdown)
	if err != nil {
		out = markdown
	}
	fmt.Println(out)
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringP("identity", "i", "", "Identity whose records to consult (required)")
	askCmd.Flags().Bool("graph", false, "Print the routing trace as a Mermaid flowchart")
	askCmd.MarkFlagRequired("identity")
}
