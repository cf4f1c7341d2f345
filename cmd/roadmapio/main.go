package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"roadmapio/internal/adapters/memory"
	"roadmapio/internal/adapters/sqlite"
	"roadmapio/internal/adapters/tui"
	"roadmapio/internal/config"
)

func main() {
	snapshots, err := sqlite.Open(config.DataPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer snapshots.Close()

	store := memory.NewStore(memory.WithSnapshotStore(snapshots))

	app := tui.NewApp(store)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
