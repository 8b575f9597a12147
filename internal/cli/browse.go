package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pcarver/galleria/internal/artic"
	"github.com/pcarver/galleria/internal/browse"
	"github.com/pcarver/galleria/internal/config"
	"github.com/pcarver/galleria/internal/tui"
)

// ErrNotATerminal is returned when the interactive browser is started
// without a terminal attached.
var ErrNotATerminal = errors.New("browse requires an interactive terminal (use 'galleria list' for scripted output)")

// newBrowseCmd creates the interactive browse command.
func newBrowseCmd(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse artworks in an interactive table",
		Long: "Open an interactive table over the museum collection with page " +
			"navigation, sortable columns, per-row selection, and a cross-page " +
			"auto-selection target.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotATerminal
			}

			cfg := getConfig()
			client := artic.NewClient(cfg.API.BaseURL, logger, artic.WithPageSize(cfg.API.PageSize))
			browser := browse.NewBrowser(client, logger)

			model := tui.NewBrowseModel(cmd.Context(), browser)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}

			// Leave a trace of what the session selected.
			logger.Info().
				Int("selected", browser.Selection().Len()).
				Int("target", browser.Target()).
				Msg("browse session ended")

			return nil
		},
	}
}
