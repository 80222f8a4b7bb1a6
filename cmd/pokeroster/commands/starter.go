package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokeroster/internal/display"
	"pokeroster/internal/services/starter"
)

func startersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "starters",
		Short: "List the starter Pokémon by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), view.Starters(appCtx.Starters.ByType(), starter.Types))
			return nil
		},
	}
}

// choose <name>: pick the starter, optionally nicknaming it.
func chooseCmd() *cobra.Command {
	var nickname string
	cmd := &cobra.Command{
		Use:   "choose <starter>",
		Short: "Choose your starter Pokémon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := appCtx.Starters.ChooseStarter(args[0], nickname)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Message(display.Success,
				fmt.Sprintf("You selected %s with the nickname %q.", entry.SpeciesName, entry.Nickname)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&nickname, "nickname", "n", "", "nickname for your starter (default: species name)")
	return cmd
}
