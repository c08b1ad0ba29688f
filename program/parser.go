// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"io"
	"iter"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Parser converts program text into a Program, accepting only the
// opcodes of its instruction set.
type Parser struct {
	Verbose bool           // If set, logs each line as it is parsed.
	Set     InstructionSet // Opcodes accepted by the parser.
}

// MaxLineSize is the longest line accepted from a reader.
const MaxLineSize = math.MaxInt32

// Parse parses text with the given instruction set.
func Parse(text string, isa InstructionSet) (prog *Program, err error) {
	parser := &Parser{Set: isa}
	return parser.ParseLines(strings.SplitSeq(text, "\n"))
}

// Parse parses an input stream into a Program. A read failure is reported
// as a syntax error on the line that could not be read.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MaxLineSize)

	var lineno int
	prog, err = p.ParseLines(func(yield func(string) bool) {
		for scanner.Scan() {
			lineno++
			if !yield(scanner.Text()) {
				return
			}
		}
	})
	if err != nil {
		return
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
		prog = nil
	}

	return
}

// ParseLines parses a sequence of lines into a Program. Empty lines are
// skipped but still counted for line numbers.
func (p *Parser) ParseLines(lines iter.Seq[string]) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	if len(p.Set) == 0 {
		err = ErrInstructionSetEmpty
		return
	}

	prog = &Program{}

	for text := range lines {
		lineno += 1
		line = strings.TrimSuffix(text, "\r")

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(line) == 0 {
			continue
		}

		var ins Instruction
		ins, err = p.parseLine(line)
		if err != nil {
			return
		}

		ins.LineNo = lineno
		prog.Instructions = append(prog.Instructions, ins)
	}

	return
}

// parseFunc parses the argument words of one opcode.
type parseFunc func(args []string) (Instruction, error)

// parsers maps each opcode to its argument parser.
var parsers = [...]parseFunc{
	OP_PRINT:   parsePrint,
	OP_REPEAT:  parseRepeat,
	OP_REVERSE: parseReverse,
}

// parseLine parses a single non-empty line as an instruction.
func (p *Parser) parseLine(line string) (ins Instruction, err error) {
	words := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		err = ErrInstructionInvalid
		return
	}

	op, err := ParseOpcode(words[0])
	if err != nil {
		err = ErrInstructionInvalid
		return
	}

	if !p.Set.Has(op) {
		err = ErrOpcodeDisabled
		return
	}

	return parsers[op](words[1:])
}

// arity checks that exactly count arguments are present.
func arity(args []string, count int) error {
	switch {
	case len(args) < count:
		return ErrOpcodeValueMissing
	case len(args) > count:
		return ErrOpcodeExtraArgs
	}
	return nil
}

// wholeOf returns the value of a string of decimal digits.
func wholeOf(word string) (value int, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	for _, c := range []byte(word) {
		if c < '0' || c > '9' {
			err = ErrParseNumber(word)
			return
		}
	}

	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrNumberRange(word)
		return
	}

	return
}

// print COUNT
func parsePrint(args []string) (ins Instruction, err error) {
	err = arity(args, 1)
	if err != nil {
		return
	}

	count, err := wholeOf(args[0])
	if err != nil {
		return
	}

	ins = MakePrint(count)
	return
}

// repeat COUNT OFFSET
func parseRepeat(args []string) (ins Instruction, err error) {
	err = arity(args, 2)
	if err != nil {
		return
	}

	count, err := wholeOf(args[0])
	if err != nil {
		return
	}

	offset, err := wholeOf(args[1])
	if err != nil {
		return
	}

	if offset == 0 {
		err = ErrOffsetZero
		return
	}

	ins = MakeRepeat(count, offset)
	return
}

// reverse
func parseReverse(args []string) (ins Instruction, err error) {
	err = arity(args, 0)
	if err != nil {
		return
	}

	ins = MakeReverse()
	return
}
