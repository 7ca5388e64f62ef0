package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       Opcode
		name     string
		valid    bool
		width    uint64
		operands int
	}){
		{OP_ADD, "add", true, 4, 3},
		{OP_MUL, "mul", true, 4, 3},
		{OP_HALT, "halt", true, 1, 0},
		{Opcode(0), "Opcode(0)", false, 0, 0},
		{Opcode(3), "Opcode(3)", false, 0, 0},
		{Opcode(98), "Opcode(98)", false, 0, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.op.String())
		assert.Equal(entry.valid, entry.op.Valid(), entry.name)
		assert.Equal(entry.width, entry.op.Width(), entry.name)
		assert.Equal(entry.operands, entry.op.Operands(), entry.name)
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}

	ins, err := Decode(mem, 0)
	assert.NoError(err)
	assert.Equal(Instruction{Ip: 0, Opcode: OP_ADD, Args: []uint64{9, 10, 3}}, ins)
	assert.Equal("add 9 10 3", ins.String())

	ins, err = Decode(mem, 4)
	assert.NoError(err)
	assert.Equal("mul 3 11 0", ins.String())

	ins, err = Decode(mem, 8)
	assert.NoError(err)
	assert.Equal("halt", ins.String())
	assert.Empty(ins.Args)

	_, err = Decode(mem, 9)
	assert.Equal(ErrOpcode{Opcode: 30, Ip: 9}, err)

	_, err = Decode(mem, 12)
	assert.Equal(ErrAddress{Address: 12, Ip: 12}, err)

	_, err = Decode(Memory{2, 0}, 0)
	assert.Equal(ErrAddress{Address: 3, Ip: 0}, err)
}

func TestState(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("running", STATE_RUNNING.String())
	assert.Equal("halted", STATE_HALTED.String())
	assert.Equal("faulted", STATE_FAULTED.String())
	assert.Equal("State(9)", State(9).String())
}
