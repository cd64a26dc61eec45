package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/insights/internal/domain"
)

func listCommand(rt *runtime) *cobra.Command {
	var (
		category string
		search   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally filtered by category and search text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rt.catalog()
			if err != nil {
				return err
			}

			state := domain.FilterState{Category: category, Search: search}.Normalize()
			l := c.Listing(state, domain.ListingOptions{ExcludeFeatured: rt.cfg.ExcludeFeatured})
			out := cmd.OutOrStdout()

			if asJSON {
				summaries := make([]domain.Post, 0, len(l.Posts))
				for _, p := range l.Posts {
					summaries = append(summaries, p.Summary())
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			if l.Empty() {
				fmt.Fprintln(out, "No posts found matching your criteria.")
				return nil
			}

			if l.Featured != nil {
				fmt.Fprintf(out, "Featured: %s (%s)\n\n", l.Featured.Title, l.Featured.ID)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCATEGORY\tDATE\tREAD TIME\tTITLE")
			for _, p := range l.Posts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Category, p.Date, p.ReadTime, p.Title)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", domain.AllCategories, "exact category to keep")
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive text to find in title or excerpt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
