package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"roadmapio/internal/application/commands"
)

var (
	importRoadmapTarget string
	importSectionTarget string
	exportOutput        string
	exportCopy          bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a roadmap JSON document",
	Long: `Import a roadmap JSON document. Roadmaps whose titles already exist
are skipped, so re-importing the same file is safe.

With --roadmap, bare sections in the document are appended to that
roadmap; with --section, bare topics are appended to that section.

Examples:
  roadmapio-cli import roadmaps.json
  roadmapio-cli import sections.json --roadmap <roadmap-id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		ctx := context.Background()
		importCmd := commands.NewImportCommand(GetStore(), data)
		importCmd.TargetRoadmapID = importRoadmapTarget
		importCmd.TargetSectionID = importSectionTarget

		result, err := importCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		for _, skipped := range result.Report.Skipped {
			fmt.Printf("  skipped %q: %s\n", skipped.Title, skipped.Reason)
		}
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Install the builtin roadmap templates",
	Long: `Install the builtin roadmap templates. Templates whose titles already
exist are skipped, so the command is safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewInstallTemplatesCommand(GetStore()).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <roadmap-id>",
	Short: "Export a roadmap as a portable JSON document",
	Long: `Export a roadmap as a portable JSON document. The document can be
re-imported; an unchanged re-import is a no-op.

Examples:
  roadmapio-cli export <roadmap-id>
  roadmapio-cli export <roadmap-id> -o go.json
  roadmapio-cli export <roadmap-id> -o -
  roadmapio-cli export <roadmap-id> --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		exportCmd := commands.NewExportCommand(GetStore(), args[0])
		result, err := exportCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if exportCopy {
			if err := clipboard.WriteAll(string(result.JSON)); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Printf("Copied %s to clipboard\n", result.Document.Title)
			return nil
		}

		if exportOutput == "-" {
			fmt.Println(string(result.JSON))
			return nil
		}

		filename := exportOutput
		if filename == "" {
			filename = result.Filename
		}
		if err := os.WriteFile(filename, result.JSON, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", filename, err)
		}
		fmt.Printf("Exported %s to %s\n", result.Document.Title, filename)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(exportCmd)

	importCmd.Flags().StringVar(&importRoadmapTarget, "roadmap", "", "roadmap ID to append bare sections to")
	importCmd.Flags().StringVar(&importSectionTarget, "section", "", "section ID to append bare topics to")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, or - for stdout (defaults to a name derived from the title)")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "copy the JSON to the clipboard instead of writing a file")
}
