package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/insights/internal/app"
)

func serveCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(rt.cfg, rt.logger)
			if err != nil {
				return err
			}
			return a.Run()
		},
	}
}
