// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"NOUN_ADDRESS": fmt.Sprintf("%d", NOUN_ADDRESS),
	"VERB_ADDRESS": fmt.Sprintf("%d", VERB_ADDRESS),
	"SEED_LIMIT":   fmt.Sprintf("%d", SEED_LIMIT),
}

// Assembler is a two pass assembler for Intcode memory.
//
// Source lines hold an optional run of 'label:' prefixes followed by
// one of:
//
//	add SRC1 SRC2 DST   ; DST = SRC1 + SRC2
//	mul SRC1 SRC2 DST   ; DST = SRC1 * SRC2
//	halt
//	.data VALUE...      ; raw cells
//	.equ NAME VALUE     ; textual equate
//
// Operands are addresses, written as numbers, labels, equates, or $(...)
// expressions evaluated at link time.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Statements []Statement // List of generated statements.

	predefine map[string]string
	Label     map[string]uint64 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate before
// parsing starts.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Parse assembles the source text into a program.
func (asm *Assembler) Parse(r io.Reader) (prog *Program, err error) {
	asm.Statements = nil
	asm.Label = make(map[string]uint64, 16)
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, asm.predefine)

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		err = asm.parseLine(line, lineno)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	for n := range asm.Statements {
		st := &asm.Statements[n]
		err = asm.link(st)
		if err != nil {
			err = ErrSyntax{LineNo: st.LineNo, Line: st.String(), Err: err}
			return
		}
		if asm.Verbose {
			log.Printf("asm: %04d: %v ; line %d", st.Ip, st.Cells, st.LineNo)
		}
	}

	prog = &Program{Statements: asm.Statements}
	return
}

// currentIp returns the address of the next generated cell.
func (asm *Assembler) currentIp() (ip uint64) {
	if len(asm.Statements) == 0 {
		return
	}
	st := &asm.Statements[len(asm.Statements)-1]
	return st.Ip + uint64(len(st.Cells))
}

// parseLine parses a single line into a statement.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	if index := strings.IndexByte(line, ';'); index >= 0 {
		line = line[:index]
	}

	words := splitWords(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
	}
	if len(words) == 0 {
		return
	}

	operands := slices.Clone(words[1:])
	for n, word := range operands {
		equate, ok := asm.Equate[word]
		if ok {
			operands[n] = equate
		}
	}

	st := Statement{
		LineNo:   lineno,
		Ip:       asm.currentIp(),
		Words:    words,
		operands: operands,
	}

	switch words[0] {
	case ".data":
		if len(operands) == 0 {
			err = ErrDataMissing
			return
		}
		st.Cells = make([]uint64, len(operands))
	default:
		op, ok := opNames[words[0]]
		if !ok {
			err = ErrOpcodeInvalid
			return
		}
		if len(operands) != op.Operands() {
			err = ErrOperandCount
			return
		}
		st.Cells = make([]uint64, op.Width())
		st.Cells[0] = uint64(op)
	}

	asm.Statements = append(asm.Statements, st)

	return
}

// link resolves the operands of a statement into its cells.
func (asm *Assembler) link(st *Statement) (err error) {
	base := len(st.Cells) - len(st.operands)
	for n, word := range st.operands {
		var value uint64
		value, err = asm.valueOf(word)
		if err != nil {
			return
		}
		st.Cells[base+n] = value
	}
	st.operands = nil

	return
}

// valueOf returns the value of a single operand word.
func (asm *Assembler) valueOf(word string) (value uint64, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return asm.parenEval(word[2 : len(word)-1])
	}

	value, err = strconv.ParseUint(word, 0, 64)
	if err == nil {
		return
	}
	err = nil

	value, ok := asm.Label[word]
	if ok {
		return
	}

	if isIdentifier(word) {
		err = ErrLabelMissing(word)
	} else {
		err = ErrParseNumber(word)
	}

	return
}

// parenEval does link-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeUint64(addr)
	}
	for key, str := range asm.Equate {
		value64, _err := strconv.ParseUint(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeUint64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// splitWords splits a line on whitespace, keeping $(...) expressions whole.
func splitWords(line string) (words []string) {
	depth := 0
	start := -1
	for n := 0; n < len(line); n++ {
		c := line[n]
		switch {
		case depth > 0:
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}
		case c == '$' && n+1 < len(line) && line[n+1] == '(':
			if start < 0 {
				start = n
			}
			depth = 1
			n++
		case c == ' ' || c == '\t':
			if start >= 0 {
				words = append(words, line[start:n])
				start = -1
			}
		default:
			if start < 0 {
				start = n
			}
		}
	}
	if start >= 0 {
		words = append(words, line[start:])
	}

	return
}

// isIdentifier returns true if word could name a label.
func isIdentifier(word string) bool {
	for n, c := range word {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case n > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return len(word) > 0
}
