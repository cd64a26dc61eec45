package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// problems flattens an aggregated load error into its parts.
func problems(err error) []error {
	var group interface{ Errors() []error }
	if errors.As(err, &group) {
		return group.Errors()
	}
	return []error{err}
}

func validateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configured catalog and report every problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			c, err := rt.catalog()
			if err != nil {
				list := problems(err)
				fmt.Fprintf(out, "catalog is invalid (%d problem(s)):\n", len(list))
				for _, p := range list {
					fmt.Fprintf(out, "  - %v\n", p)
				}
				return errors.New("validation failed")
			}

			fmt.Fprintf(out, "ok: %d posts, %d categories from %s\n",
				c.Len(), len(c.Categories())-1, c.Source())
			return nil
		},
	}
}
