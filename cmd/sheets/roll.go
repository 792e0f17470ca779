package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-sheets/internal/dice"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// newRollCmd rolls dice expressions, or a set of ability scores when none are given
func newRollCmd(roller dice.Roller) *cobra.Command {
	return &cobra.Command{
		Use:   "roll [expression...]",
		Short: "Roll dice, or 4d6 drop lowest for every ability",
		Example: `  sheets roll 2d6+3 d20
  sheets roll > scores.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				scores, err := dice.RollAbilityScores(roller)
				if err != nil {
					return err
				}
				// printed as description attributes so the output can seed a sheet
				desc := make(map[string]int, len(scores))
				for _, ability := range rulebook.Abilities {
					desc[string(ability)] = scores[ability].Score
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v drop %d\n", ability.Short(), scores[ability].Rolls, scores[ability].Dropped)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(desc)
			}

			for _, arg := range args {
				expr, err := dice.Parse(arg)
				if err != nil {
					return err
				}
				result, err := expr.Roll(roller)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d %v\n", expr, result.Total, result.Rolls)
			}
			return nil
		},
	}
}
