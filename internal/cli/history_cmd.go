package cli

import (
	"context"
	"fmt"

	"github.com/Prokope45/Praestara/internal/cli/formatter"
	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var checkinType string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Checkins.History(context.Background(), app.Owner, domain.CheckinType(checkinType), limit)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatHistory(domain.CheckinType(checkinType), records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&checkinType, "type", "t", "evening", "Check-in type: morning or evening")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of check-ins to show")

	return cmd
}
