package intcode

import (
	"iter"
	"strings"
)

// Statement is a line of assembled source with the memory it generated.
type Statement struct {
	LineNo int      // Source line number.
	Ip     uint64   // Address of the first generated cell.
	Words  []string // Source words, after label removal.
	Cells  []uint64 // Generated memory cells.

	operands []string // Operand words awaiting link.
}

// String returns the statement source words.
func (st *Statement) String() string {
	return strings.Join(st.Words, " ")
}

// Program is an assembled listing.
type Program struct {
	Statements []Statement
}

// Debug locates the statement which generated an address.
type Debug struct {
	*Statement
	Index int // Offset of the address within Statement.Cells.
}

// Debug returns the statement that generated the cell at ip.
// The embedded Statement is nil if no statement covers ip.
func (prog *Program) Debug(ip uint64) (dbg Debug) {
	for n, st := range prog.Statements {
		if ip >= st.Ip && ip < st.Ip+uint64(len(st.Cells)) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(ip - st.Ip),
			}
			break
		}
	}

	return
}

// Cells iterates over every generated cell and its address.
func (prog *Program) Cells() iter.Seq2[uint64, uint64] {
	return func(yield func(ip uint64, cell uint64) bool) {
		for _, st := range prog.Statements {
			for n, cell := range st.Cells {
				if !yield(st.Ip+uint64(n), cell) {
					return
				}
			}
		}
	}
}

// Memory returns a new memory image of the program.
func (prog *Program) Memory() (mem Memory) {
	for _, cell := range prog.Cells() {
		mem = append(mem, cell)
	}

	return
}
