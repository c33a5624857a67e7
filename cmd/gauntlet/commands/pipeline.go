package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/ui/style"
)

func (c *CLI) newPipelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run the full verification pipeline across the toolchain matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eventFlag, _ := cmd.Flags().GetString("event")
			ref, _ := cmd.Flags().GetString("ref")

			event, err := domain.ParseTriggerEvent(eventFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = c.app.RunPipeline(cmd.Context(), domain.Trigger{Event: event, Ref: ref})
			if err != nil {
				_, _ = fmt.Fprintln(out, style.Fail.Render(style.Cross+" pipeline failed"))
				return err
			}
			_, _ = fmt.Fprintln(out, style.Pass.Render(style.Check+" pipeline passed"))
			return nil
		},
	}
	cmd.Flags().StringP("event", "e", "push", "Trigger event: push or pull_request")
	cmd.Flags().StringP("ref", "r", "", "Ref the run was triggered for")
	return cmd
}
