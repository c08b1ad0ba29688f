// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package suite runs golden cases: programs with their expected output.
//
// A suite file is YAML:
//
//	name: reversi
//	cases:
//	  - name: flip
//	    machine: reversi
//	    program: |
//	      print 2
//	      print 1
//	      print 2
//	      reverse
//	    output: |
//	      print 2
//	      print 1
//	  - name: no repeat
//	    machine: reversi
//	    program: repeat 1 1
//	    error: true
package suite

import (
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/lzvm/config"
	lzio "github.com/ezrec/lzvm/io"
	"github.com/ezrec/lzvm/machine"
	"github.com/ezrec/lzvm/program"
)

// Case is a single golden case.
type Case struct {
	Name    string `yaml:"name"`
	Machine string `yaml:"machine,omitempty"` // Defaults to config.DEFAULT_MACHINE.
	Program string `yaml:"program"`
	Output  string `yaml:"output,omitempty"`
	Error   bool   `yaml:"error,omitempty"` // If set, the program must not parse.
}

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name,omitempty"`
	Cases []Case `yaml:"cases"`
}

// Result is the outcome of one case.
type Result struct {
	Case   *Case
	Output string // Output of the run, if the program parsed.
	Err    error  // Parse or run error.
	Pass   bool
}

// Load decodes a suite. Unknown keys are rejected.
func Load(input io.Reader) (s *Suite, err error) {
	s = &Suite{}

	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)
	err = decoder.Decode(s)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		s = nil
		return
	}

	return
}

// LoadFile reads a suite file.
func LoadFile(path string) (s *Suite, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	s, err = Load(inf)
	if err != nil {
		return
	}

	if len(s.Name) == 0 {
		s.Name = path
	}

	return
}

// Run runs every case with the machines and limits of cfg.
func (s *Suite) Run(cfg *config.Config) (results []Result) {
	for n := range s.Cases {
		results = append(results, RunCase(cfg, &s.Cases[n]))
	}

	return
}

// Failed returns the results that did not pass.
func Failed(results []Result) (failed []Result) {
	for _, result := range results {
		if !result.Pass {
			failed = append(failed, result)
		}
	}

	return
}

// RunCase runs a single case.
func RunCase(cfg *config.Config, c *Case) (result Result) {
	result.Case = c

	name := c.Machine
	if len(name) == 0 {
		name = config.DEFAULT_MACHINE
	}

	isa, err := cfg.Machine(name)
	if err != nil {
		result.Err = err
		return
	}

	parser := &program.Parser{Verbose: cfg.Verbose, Set: isa}
	prog, err := parser.Parse(strings.NewReader(c.Program))
	if err != nil {
		result.Err = err
		result.Pass = c.Error
		return
	}

	m := machine.NewMachine(prog)
	m.Verbose = cfg.Verbose
	m.Capacity = cfg.MaxLines

	_, err = m.Run()
	if err != nil {
		result.Err = err
		return
	}

	temp := &lzio.Temporary{Capacity: cfg.MaxLines}
	err = m.Output.Drain(temp)
	if err != nil {
		result.Err = err
		return
	}

	result.Output = strings.Join(temp.Lines(), "\n")
	result.Pass = !c.Error && result.Output == strings.TrimRight(c.Output, "\n")

	return
}
