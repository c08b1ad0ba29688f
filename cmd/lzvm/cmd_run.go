package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/lzvm/config"
	lzio "github.com/ezrec/lzvm/io"
	"github.com/ezrec/lzvm/machine"
	"github.com/ezrec/lzvm/program"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program and print its output",
		Long:  "Run a program and print its output.\n\nThe program is read from standard input if no file, or '-', is given.",
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

			m := machine.NewMachine(prog)
			m.Verbose = cfg.Verbose
			m.Capacity = cfg.MaxLines

			_, err = m.Run()
			if err != nil {
				return err
			}

			return m.Output.Drain(tape)
		},
	}
}

// parseInput parses the program named by args. The returned tape writes
// to the command output.
func parseInput(cmd *cobra.Command, args []string, opts *options, cfg *config.Config) (prog *program.Program, tape *lzio.Tape, err error) {
	parser, err := opts.parser(cfg)
	if err != nil {
		return
	}

	input, name, err := open(cmd, args)
	if err != nil {
		return
	}
	defer input.Close()

	tape = &lzio.Tape{Input: input, Output: cmd.OutOrStdout()}

	prog, err = parser.ParseLines(tape.Receive())
	if err == nil {
		err = tape.Err()
	}
	if err != nil {
		prog = nil
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	return
}
