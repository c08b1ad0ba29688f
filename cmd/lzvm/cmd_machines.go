package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMachinesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "machines",
		Short: "List the configured machines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			for _, name := range cfg.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", name, cfg.Machines[name])
			}

			return nil
		},
	}
}
