// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads machine definitions and limits for lzvm.
//
// A configuration names instruction sets ("machines") and bounds the
// output of a run. It can be written as YAML:
//
//	max_lines: 4096
//	machines:
//	  rle: [print, repeat]
//
// or as Starlark:
//
//	max_lines = 4096
//	machines = {"rle": ["print", "repeat"]}
//
// Loaded machines are added to, or replace, the default machines.
package config

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ezrec/lzvm/program"
)

const (
	DEFAULT_MACHINE   = "reversi+lz77" // Machine used when none is named.
	DEFAULT_MAX_LINES = 1 << 20        // Output limit of a run.
)

// Config holds the machine definitions and run limits.
type Config struct {
	Machines map[string]program.InstructionSet // Named instruction sets.
	MaxLines int                               // Output limit. Zero is unlimited.
	Verbose  bool                              // If set, logs parsing and execution.
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Machines: map[string]program.InstructionSet{
			"lz77":         program.ISA_LZ77,
			"reversi":      program.ISA_REVERSI,
			"reversi+lz77": program.ISA_REVERSI_LZ77,
		},
		MaxLines: DEFAULT_MAX_LINES,
	}
}

// Load reads a configuration file, selecting the format by extension.
func Load(path string) (cfg *Config, err error) {
	switch {
	case strings.HasSuffix(path, ".star"), strings.HasSuffix(path, ".star.py"):
		cfg, err = LoadStarlark(path, nil)
	case filepath.Ext(path) == ".yaml", filepath.Ext(path) == ".yml":
		cfg, err = LoadYAMLFile(path)
	default:
		err = ErrConfigFormat
	}

	return
}

// Machine returns the instruction set of the named machine.
func (cfg *Config) Machine(name string) (isa program.InstructionSet, err error) {
	isa, ok := cfg.Machines[name]
	if !ok {
		err = ErrMachineUnknown(name)
		return
	}

	return
}

// Names returns the sorted machine names.
func (cfg *Config) Names() []string {
	return slices.Sorted(maps.Keys(cfg.Machines))
}

// setMachine validates and stores a machine definition.
func (cfg *Config) setMachine(name string, names []string) (err error) {
	isa, err := program.ParseInstructionSet(strings.Join(names, ","))
	if err != nil {
		return &ErrConfigValue{Key: "machines." + name, Err: err}
	}
	if len(isa) == 0 || len(name) == 0 {
		return &ErrConfigValue{Key: "machines." + name, Err: program.ErrInstructionSetEmpty}
	}

	cfg.Machines[name] = isa

	return
}

// setMaxLines validates and stores the output limit.
func (cfg *Config) setMaxLines(lines int) (err error) {
	if lines < 0 {
		return &ErrConfigValue{Key: "max_lines"}
	}

	cfg.MaxLines = lines

	return
}
