package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print or write an example plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.parser.CreateExampleConfiguration()
			if a.opts.Out != "" {
				if err := a.parser.SaveConfiguration(cfg, a.opts.Out); err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "Example configuration written to %s\n", a.opts.Out)
				return nil
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal example configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
