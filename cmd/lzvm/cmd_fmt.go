package main

import (
	"github.com/spf13/cobra"
)

func newFmtCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Print a program in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			prog, tape, err := parseInput(cmd, args, opts, cfg)
			if err != nil {
				return err
			}

			for line := range prog.Lines() {
				err = tape.Send(line)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
