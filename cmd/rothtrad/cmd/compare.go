package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var flags paramFlags
	cmd := &cobra.Command{
		Use:     "compare",
		Aliases: []string{"project", "distribute"},
		Short:   "Project both phases and compare tax saved with tax paid",
		Long: `Run the contribution phase, continue it into the distribution phase and
compare the tax saved by traditional contributions (with growth) against the
tax paid on traditional withdrawals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			p, err := a.engine.Project(cmd.Context(), a.cfg.DistributionParams())
			if err != nil {
				return err
			}
			a.logger.Debug("projection ready",
				slog.String("net_advantage", p.Comparison.NetAdvantage.StringFixed(2)))
			return a.render(cmd, p)
		},
	}
	flags.registerAccumulation(cmd)
	flags.registerDistribution(cmd)
	return cmd
}
