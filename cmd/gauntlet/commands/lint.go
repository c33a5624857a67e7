package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Run static analysis across every buildable unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Lint(cmd.Context())
		},
	}
}
