package cli

import (
	"fmt"

	"tftgauge/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write an example config with the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "tftgauge.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteExample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load the effective config and report problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := o.cfg.App(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s mode, %s source, %g..%g, %d Hz, scale %d\n",
				o.cfg.Mode, o.cfg.Source, o.cfg.Min, o.cfg.Max, o.cfg.Hz, o.cfg.Scale)
			return nil
		},
	})
	return cmd
}
