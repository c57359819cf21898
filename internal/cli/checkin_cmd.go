package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Prokope45/Praestara/internal/cli/formatter"
	"github.com/Prokope45/Praestara/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newCheckinCmd(app *App) *cobra.Command {
	var checkinType string

	cmd := &cobra.Command{
		Use:   "checkin [text...]",
		Short: "Record a morning or evening check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))

			if text == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("check-in text is required")
				}
				var err error
				text, err = promptCheckinText(domain.CheckinType(checkinType))
				if err != nil {
					return err
				}
			}

			stop := formatter.StartSpinner("Reflecting on your check-in...")
			result, err := app.Checkins.Create(context.Background(), app.Owner, domain.Checkin{
				Type: domain.CheckinType(checkinType),
				Text: text,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCheckinResult(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&checkinType, "type", "t", "morning", "Check-in type: morning or evening")

	return cmd
}

// promptCheckinText collects the check-in text through a single-field form.
func promptCheckinText(checkinType domain.CheckinType) (string, error) {
	title := "What is your plan for today?"
	if checkinType == domain.CheckinEvening {
		title = "How did today actually go?"
	}

	var text string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Value(&text).
				Validate(validateNonEmpty("check-in text")),
		),
	).WithTheme(praestaraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
