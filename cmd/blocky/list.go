package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available goals",
	Long:  `Shows every registered Blocky variant. Each one scores the board against a different goal kind.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		writeGameList(cmd.OutOrStdout(), registry.List())
	},
}

func writeGameList(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games registered.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "TITLE")
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, "\nStart one with 'blocky play <id>'.")
}
