package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/insights/internal/catalog"
)

func showCommand(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rt.catalog()
			if err != nil {
				return err
			}

			p, err := c.Get(args[0])
			if errors.Is(err, catalog.ErrPostNotFound) {
				return fmt.Errorf("post not found: %s", args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			fmt.Fprintln(out, p.Title)
			fmt.Fprintf(out, "%s · %s · %s\n", p.Category, p.Date, p.ReadTime)
			fmt.Fprintf(out, "By %s, %s\n", p.Author.Name, p.Author.Role)
			if len(p.Tags) > 0 {
				fmt.Fprintf(out, "#%s\n", strings.Join(p.Tags, " #"))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, catalog.PlainText(p.Content))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}
