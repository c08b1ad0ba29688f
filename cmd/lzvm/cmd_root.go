package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/lzvm/config"
	"github.com/ezrec/lzvm/program"
	"github.com/ezrec/lzvm/translate"
)

const appName = "lzvm"

var errCheckFailed = translate.Error("check failed")

// options are the persistent flags shared by every command.
type options struct {
	config  string
	machine string
	verbose bool
	lang    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Run line programs of print, repeat and reverse instructions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if len(opts.lang) != 0 {
				translate.Use(opts.lang)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "configuration file (.yaml, .yml or .star)")
	flags.StringVarP(&opts.machine, "machine", "m", config.DEFAULT_MACHINE, "machine (instruction set) to use")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
	flags.StringVar(&opts.lang, "lang", "", "message language, such as en-US")

	cmd.AddCommand(
		newRunCmd(opts),
		newFmtCmd(opts),
		newCheckCmd(opts),
		newMachinesCmd(opts),
	)

	return cmd
}

// load returns the configuration selected by the flags.
func (opts *options) load() (cfg *config.Config, err error) {
	if len(opts.config) == 0 {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(opts.config)
		if err != nil {
			return
		}
	}

	if opts.verbose {
		cfg.Verbose = true
	}

	return
}

// parser returns a parser for the selected machine.
func (opts *options) parser(cfg *config.Config) (parser *program.Parser, err error) {
	isa, err := cfg.Machine(opts.machine)
	if err != nil {
		return
	}

	parser = &program.Parser{Verbose: cfg.Verbose, Set: isa}

	return
}

// open returns the named input, or standard input for "-" or no name.
func open(cmd *cobra.Command, args []string) (input io.ReadCloser, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "-", nil
	}

	name = args[0]
	input, err = os.Open(name)

	return
}
