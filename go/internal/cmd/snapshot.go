package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/devprix/go/internal/results"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch the results once and print both tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadValidConfig(cmd)
			if err != nil {
				return err
			}

			app := newResultsApp(cfg, clockwork.NewRealClock())
			board, err := app.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			title := cfg.Display.Title
			if title == "" {
				title = "Dev Prix"
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSnapshot(title, board, cfg))
			return nil
		},
	}
}

func renderSnapshot(title string, board results.Board, cfg *Config) string {
	tables := board.Tables()
	rendered := make([]string, 0, len(tables)*2)
	for i, rows := range tables {
		if i > 0 {
			rendered = append(rendered, "  ")
		}
		rendered = append(rendered, renderTable(rows))
	}

	updated := board.UpdatedAt.In(cfg.location()).Format("2006-01-02 15:04:05 MST")
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		footerStyle.Render("Last updated: "+updated),
	)
}

func renderTable(rows []results.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Pos", "Player", "Points").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range rows {
		t.Row(fmt.Sprint(row.Position), row.Name(), row.Points())
	}
	return t.String()
}
