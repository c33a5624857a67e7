package commands

import (
	"github.com/spf13/cobra"
	"go.gauntlet.dev/gauntlet/internal/adapters/detector"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
)

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test [-- args...]",
		Short: "Run the project's test suite",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Test(cmd.Context(), domain.TestOptions{
				Verbose: detector.Verbose(),
				Args:    args,
			})
		},
	}
}
