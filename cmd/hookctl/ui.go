package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/ui"
	"github.com/wabridge/hookctl/pkg/ui/common"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the terminal UI",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func runUI(c *cobra.Command, _ []string) error {
	ctx := c.Context()
	cfg := config.FromContext(ctx)

	// Bubble Tea writes to the command output, so the renderer has to
	// detect colors on the same writer.
	r := lipgloss.NewRenderer(c.OutOrStdout())
	if cfg.UI.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	m := ui.New(common.NewCommon(ctx, r, 0, 0))
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(c.InOrStdin()),
		tea.WithOutput(c.OutOrStdout()),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
