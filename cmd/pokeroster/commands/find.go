package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokeroster/internal/display"
	"pokeroster/internal/domain"
)

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Look a Pokémon up in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := appCtx.Pokedex.FindSpecies(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Species(sp))
			return nil
		},
	}
}

// capture <name>: look the species up, then add it to the team.
func captureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture <name>",
		Short: "Add a Pokémon to your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := appCtx.Pokedex.CaptureSpecies(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Message(display.Success,
				fmt.Sprintf("%s has been added to your team!", domain.Capitalize(entry.SpeciesName))))
			return nil
		},
	}
}
