package intcode

import (
	"errors"

	"github.com/ezrec/aoc2019/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrHalted          = errors.New(f("machine halted"))
	ErrProgramEmpty    = errors.New(f("program empty"))
	ErrSearchExhausted = errors.New(f("search exhausted"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrDataMissing     = errors.New(f(".data without values"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandCount    = errors.New(f("operand count"))
)

// ErrOpcode is the fault raised by an opcode outside the instruction set.
type ErrOpcode struct {
	Opcode Opcode // Offending value.
	Ip     uint64 // Address it was fetched from.
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v at ip %v", uint64(eo.Opcode), eo.Ip)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is the fault raised by an access outside of memory.
type ErrAddress struct {
	Address uint64 // Address that was out of range.
	Ip      uint64 // Instruction pointer at the time of the access.
}

func (ea ErrAddress) Error() string {
	return f("address %v out of range at ip %v", ea.Address, ea.Ip)
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
