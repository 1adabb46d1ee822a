package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/wellbeing-cli/internal/adapters/render/report"
	"github.com/bnema/wellbeing-cli/internal/application"
	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/spf13/cobra"
)

type historyOutput struct {
	UserID   string                      `json:"user_id"`
	Entries  []domain.HistoryEntry       `json:"entries"`
	Timeline []application.TimelinePoint `json:"timeline"`
}

func newHistoryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analysis sessions for the user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := application.NewHistoryClient(app.service, app.log)

			entries, err := client.Load(cmd.Context(), app.cfg.UserName)
			if err != nil {
				return err
			}
			if entries == nil {
				entries = []domain.HistoryEntry{}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(historyOutput{
					UserID:   app.cfg.UserName,
					Entries:  entries,
					Timeline: application.TimelineSeries(entries, app.location),
				})
			}

			rendered, err := app.historyRenderer(entries, report.RenderOptions{Location: app.location})
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print history as JSON")

	return cmd
}
