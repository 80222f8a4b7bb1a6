package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pokeroster/internal/display"
	"pokeroster/internal/domain"
)

func teamCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Show your team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := appCtx.Roster.Roster()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(display.TeamCards(r))
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Team(r))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the six slots as JSON")
	return cmd
}

// rename <slot> <nickname>: slot is "starter" or an index shown by `team`.
func renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <slot> <nickname>",
		Short: "Nickname a Pokémon on your team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := domain.ParseSlotRef(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Roster.Rename(slot, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Message(display.Success, "Nickname updated."))
			return nil
		},
	}
}

// release <slot>: asks for confirmation unless --yes is given.
func releaseCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "release <slot>",
		Short: "Release a Pokémon from your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := domain.ParseSlotRef(args[0])
			if err != nil {
				return err
			}
			entry, err := lookupSlot(slot)
			if err != nil {
				return err
			}
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to release %s? [y/N] ", entry.DisplayName())
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := appCtx.Roster.Release(slot); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Message(display.Success,
				fmt.Sprintf("%s was released.", entry.DisplayName())))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "release without asking")
	return cmd
}

func lookupSlot(slot domain.SlotRef) (domain.PokemonEntry, error) {
	r, err := appCtx.Roster.Roster()
	if err != nil {
		return domain.PokemonEntry{}, err
	}
	if slot.IsStarter() {
		if r.Starter == nil {
			return domain.PokemonEntry{}, fmt.Errorf("slot %s: %w", slot, domain.ErrNotFound)
		}
		return *r.Starter, nil
	}
	if slot.Index() >= len(r.Additional) {
		return domain.PokemonEntry{}, fmt.Errorf("slot %s: %w", slot, domain.ErrNotFound)
	}
	return r.Additional[slot.Index()], nil
}
