package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roadmapio/internal/adapters/claudecli"
	"roadmapio/internal/adapters/httpgen"
	"roadmapio/internal/application/commands"
	"roadmapio/internal/config"
	"roadmapio/internal/ports"
)

var (
	generateLanguage string
	generateModel    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <title>",
	Short: "Generate a roadmap outline with AI",
	Long: `Generate a roadmap outline and import it. Uses the HTTP generation
endpoint when ROADMAPIO_GENERATOR_URL is set, otherwise the local
claude CLI. A roadmap with the same title makes this a no-op.

Examples:
  roadmapio-cli generate "Rust Roadmap" --language Rust
  roadmapio-cli generate "Linear Algebra"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		genCmd := commands.NewGenerateCommand(GetStore(), pickGenerator(), args[0], generateLanguage)
		result, err := genCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if result.Skipped {
			fmt.Println(result.Message)
			return nil
		}
		fmt.Printf("%s (ID: %s)\n", result.Message, result.RoadmapID)
		return nil
	},
}

func pickGenerator() ports.RoadmapGenerator {
	if endpoint := config.GeneratorEndpoint(); endpoint != "" {
		return httpgen.NewGenerator(endpoint)
	}
	return claudecli.NewGenerator(claudecli.WithModel(generateModel))
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "", "language or subject name")
	generateCmd.Flags().StringVarP(&generateModel, "model", "m", "haiku", "claude model for the CLI generator")
}
