package intcode

import (
	"fmt"
	"slices"
)

// Opcode is the first word of an instruction.
type Opcode uint64

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_HALT = Opcode(99) // halt
)

// opInfo describes the encoding of an opcode.
type opInfo struct {
	Operands int // Number of address operands following the opcode.
}

// opTable is the supported instruction set.
var opTable = map[Opcode]opInfo{
	OP_ADD:  {Operands: 3},
	OP_MUL:  {Operands: 3},
	OP_HALT: {Operands: 0},
}

// opNames maps assembler mnemonics to opcodes.
var opNames = map[string]Opcode{
	OP_ADD.String():  OP_ADD,
	OP_MUL.String():  OP_MUL,
	OP_HALT.String(): OP_HALT,
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opTable[op]
	return ok
}

// Operands returns the number of operand words following the opcode.
func (op Opcode) Operands() int {
	return opTable[op].Operands
}

// Width returns the number of memory words the instruction occupies,
// or 0 if the opcode is not valid.
func (op Opcode) Width() uint64 {
	info, ok := opTable[op]
	if !ok {
		return 0
	}
	return uint64(1 + info.Operands)
}

// Instruction is a decoded instruction.
type Instruction struct {
	Ip     uint64   // Address of the opcode.
	Opcode Opcode   // Operation.
	Args   []uint64 // Operand addresses, in encoding order.
}

// Decode reads the instruction at ip.
func Decode(mem Memory, ip uint64) (ins Instruction, err error) {
	if ip >= uint64(len(mem)) {
		err = ErrAddress{Address: ip, Ip: ip}
		return
	}

	ins.Ip = ip
	ins.Opcode = Opcode(mem[ip])
	if !ins.Opcode.Valid() {
		err = ErrOpcode{Opcode: ins.Opcode, Ip: ip}
		return
	}

	width := ins.Opcode.Width()
	if ip+width > uint64(len(mem)) {
		err = ErrAddress{Address: ip + width - 1, Ip: ip}
		return
	}
	ins.Args = slices.Clone(mem[ip+1 : ip+width])

	return
}

// String returns the instruction in assembler syntax.
func (ins Instruction) String() (text string) {
	text = ins.Opcode.String()
	for _, arg := range ins.Args {
		text += fmt.Sprintf(" %d", arg)
	}
	return
}
