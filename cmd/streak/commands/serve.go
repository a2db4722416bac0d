package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve streak cards over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.server.Serve(cmd.Context())
		},
	}
}
