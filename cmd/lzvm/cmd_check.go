package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/lzvm/suite"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check suite.yaml...",
		Short: "Run golden case suites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failures := 0

			for _, path := range args {
				s, err := suite.LoadFile(path)
				if err != nil {
					return err
				}

				results := s.Run(cfg)
				failed := suite.Failed(results)
				for _, result := range failed {
					fmt.Fprintf(out, "FAIL %v/%v\n", s.Name, result.Case.Name)
					switch {
					case result.Err != nil:
						fmt.Fprintf(out, "\terror: %v\n", result.Err)
					case result.Case.Error:
						fmt.Fprintf(out, "\texpected a parse error\n")
					default:
						fmt.Fprintf(out, "\texpected: %q\n\tactual:   %q\n", result.Case.Output, result.Output)
					}
				}

				status := "ok"
				if len(failed) > 0 {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%v\t%v\t%d/%d\n", status, s.Name, len(results)-len(failed), len(results))

				failures += len(failed)
			}

			if failures > 0 {
				return errCheckFailed
			}

			return nil
		},
	}
}
