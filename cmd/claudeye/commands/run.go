package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claudeye/claudeye/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <project> <session>",
		Short: "Run registered items against one transcript and print the results",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindFlag, _ := cmd.Flags().GetString("kind")
			agent, _ := cmd.Flags().GetString("agent")
			item, _ := cmd.Flags().GetString("item")
			force, _ := cmd.Flags().GetBool("force")

			kind := domain.ItemKind(kindFlag)
			if !kind.Valid() {
				return domain.ErrUnknownKind
			}

			sessionKey := domain.SessionKey(args[1], agent)
			result, err := c.app.RunOnce(cmd.Context(), kind, args[0], sessionKey, item, force)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringP("kind", "k", string(domain.KindEvals), "Item kind: evals, enrichments, actions or filters")
	cmd.Flags().StringP("agent", "a", "", "Subagent ID to target instead of the top-level session")
	cmd.Flags().StringP("item", "i", "", "Run a single item instead of the whole batch")
	cmd.Flags().BoolP("force", "f", false, "Bypass the result cache and recompute")
	return cmd
}
