package cmd

import (
	"github.com/spf13/cobra"
)

func newAccumulateCmd(a *app) *cobra.Command {
	var flags paramFlags
	cmd := &cobra.Command{
		Use:   "accumulate",
		Short: "Project the contribution phase only",
		Long: `Project contributions, balances and the tax saved by traditional
contributions year by year until retirement.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			p, err := a.engine.ProjectAccumulation(cmd.Context(), a.cfg.Contribution)
			if err != nil {
				return err
			}
			return a.render(cmd, p)
		},
	}
	flags.registerAccumulation(cmd)
	return cmd
}
