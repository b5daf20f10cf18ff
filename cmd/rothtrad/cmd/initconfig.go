package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/rothtrad/internal/config"
)

func newInitConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "init-config <path>",
		Short:       "Write an example configuration file",
		Long:        "Write an example configuration. The extension (.yaml, .yml, .toml or .json) selects the format.",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfig": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example configuration written to %s\n", args[0])
			return nil
		},
	}
}
