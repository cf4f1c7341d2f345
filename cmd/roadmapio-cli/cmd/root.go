package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roadmapio/internal/adapters/memory"
	"roadmapio/internal/adapters/sqlite"
	"roadmapio/internal/config"
	"roadmapio/internal/ports"
)

var (
	dataPath  string
	snapshots *sqlite.SnapshotStore
	store     ports.RoadmapStore
)

var rootCmd = &cobra.Command{
	Use:   "roadmapio-cli",
	Short: "CLI for tracking learning roadmaps",
	Long: `roadmapio-cli is a command-line interface for managing learning
roadmaps: ordered sections of checkable topics, grouped per language
or subject.

It provides commands to list, add, toggle, move, delete, import,
export, and generate roadmaps.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		snapshots, err = sqlite.Open(dataPath)
		if err != nil {
			return err
		}
		store = memory.NewStore(memory.WithSnapshotStore(snapshots))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if snapshots == nil {
			return nil
		}
		return snapshots.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", config.DataPath(), "path to the roadmap database")
}

// GetStore returns the initialized roadmap store
func GetStore() ports.RoadmapStore {
	return store
}
