package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Prokope45/Praestara/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var domainFlags []string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Record the life domains that matter to you",
		Long: "Record an onboarding snapshot of your life domains and how much each " +
			"one matters on a 1-10 scale. Evening check-ins are scored against the " +
			"most recent snapshot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []map[string]any
			var err error

			if len(domainFlags) > 0 {
				entries, err = parseDomainFlags(domainFlags)
			} else {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("no terminal detected; pass domains with --domain \"Name:importance\"")
				}
				entries, err = promptDomains()
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("at least one domain is required")
			}

			payload := map[string]any{
				"sectionB": map[string]any{"domains": toAnySlice(entries)},
			}

			rec, err := app.Onboarding.Record(context.Background(), app.Owner, payload)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatOnboarding(rec, len(entries)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&domainFlags, "domain", nil, "Domain as \"Name:importance\" (repeatable)")

	return cmd
}

// parseDomainFlags converts "Name:importance" flag values into domain entries.
func parseDomainFlags(flags []string) ([]map[string]any, error) {
	entries := make([]map[string]any, 0, len(flags))
	for _, f := range flags {
		name, importanceStr, found := strings.Cut(f, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid domain %q: name is required", f)
		}

		entry := map[string]any{"name": name}
		if found {
			importance, err := strconv.ParseFloat(strings.TrimSpace(importanceStr), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid domain %q: importance must be a number", f)
			}
			entry["importance"] = importance
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// promptDomains runs the interactive onboarding loop, one domain per pass.
func promptDomains() ([]map[string]any, error) {
	var entries []map[string]any

	for {
		var name, importanceStr string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Life domain").
					Placeholder("Family").
					Value(&name).
					Validate(validateNonEmpty("domain name")),
				huh.NewInput().
					Title("Importance (1-10)").
					Placeholder("8").
					Value(&importanceStr).
					Validate(validateImportance),
			),
		).WithTheme(praestaraHuhTheme()).WithShowHelp(false)

		if err := form.Run(); err != nil {
			return nil, err
		}

		entry := map[string]any{"name": strings.TrimSpace(name)}
		if v := strings.TrimSpace(importanceStr); v != "" {
			importance, _ := strconv.ParseFloat(v, 64)
			entry["importance"] = importance
		}
		entries = append(entries, entry)

		var more bool
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add another domain?").
					Value(&more),
			),
		).WithTheme(praestaraHuhTheme()).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return nil, err
		}
		if !more {
			return entries, nil
		}
	}
}

func toAnySlice(entries []map[string]any) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	return out
}
