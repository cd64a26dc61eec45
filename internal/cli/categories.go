package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func categoriesCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories, \"All\" first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rt.catalog()
			if err != nil {
				return err
			}
			for _, name := range c.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
