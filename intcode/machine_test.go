package intcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(Memory{99})

	assert.False(m.Verbose)
	assert.Equal(uint64(0), m.Ip)
	assert.Equal(STATE_RUNNING, m.State)
	assert.Nil(m.Fault())
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		memory Memory
		final  Memory
	}){
		{"example", Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, Memory{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"add", Memory{1, 0, 0, 0, 99}, Memory{2, 0, 0, 0, 99}},
		{"mul", Memory{2, 3, 0, 3, 99}, Memory{2, 3, 0, 6, 99}},
		{"mul_past_halt", Memory{2, 4, 4, 5, 99, 0}, Memory{2, 4, 4, 5, 99, 9801}},
		{"self_modify", Memory{1, 1, 1, 4, 99, 5, 6, 0, 99}, Memory{30, 1, 1, 4, 2, 5, 6, 0, 99}},
		{"halt_only", Memory{99, 1, 2, 3}, Memory{99, 1, 2, 3}},
	}

	for _, entry := range table {
		mem := entry.memory.Clone()
		err := Run(mem)
		assert.NoError(err, entry.name)
		assert.Equal(entry.final, mem, entry.name)
	}
}

func TestTick(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50})

	err := m.Tick()
	assert.NoError(err)
	assert.Equal(uint64(4), m.Ip)
	assert.Equal(Memory{1, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}, m.Memory)

	err = m.Tick()
	assert.NoError(err)
	assert.Equal(uint64(8), m.Ip)
	assert.Equal(uint64(3500), m.Memory[0])

	err = m.Tick()
	assert.NoError(err)
	assert.Equal(uint64(8), m.Ip)
	assert.Equal(STATE_HALTED, m.State)
	assert.Equal(3, m.Ticks)

	err = m.Tick()
	assert.ErrorIs(err, ErrHalted)

	// Running a halted machine is a no-op.
	err = m.Run()
	assert.NoError(err)
}

func TestTick_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Opcode{OP_ADD, OP_MUL} {
		for a := uint64(4); a < 8; a++ {
			for b := uint64(4); b < 8; b++ {
				for c := uint64(4); c < 8; c++ {
					mem := Memory{uint64(op), a, b, c, 11, 13, 17, 19}
					before := mem.Clone()
					m := NewMachine(mem)
					err := m.Tick()
					assert.NoError(err)

					want := before[a] + before[b]
					if op == OP_MUL {
						want = before[a] * before[b]
					}
					assert.Equal(want, mem[c], "%v %d %d %d", op, a, b, c)
					for n := range mem {
						if uint64(n) != c {
							assert.Equal(before[n], mem[n], "%v %d %d %d", op, a, b, c)
						}
					}
				}
			}
		}
	}
}

func TestTick_Wrap(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{1, 5, 6, 0, 99, 0xffffffffffffffff, 2}
	err := Run(mem)
	assert.NoError(err)
	assert.Equal(uint64(1), mem[0])
}

func TestRun_Faults(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		memory Memory
		fault  error
		ip     uint64
	}){
		{"bad_opcode", Memory{3, 0, 0, 0, 99}, ErrOpcode{Opcode: 3, Ip: 0}, 0},
		{"bad_opcode_later", Memory{1, 0, 0, 0, 42}, ErrOpcode{Opcode: 42, Ip: 4}, 4},
		{"src1_range", Memory{1, 50, 0, 0, 99}, ErrAddress{Address: 50, Ip: 0}, 0},
		{"src2_range", Memory{2, 0, 50, 0, 99}, ErrAddress{Address: 50, Ip: 0}, 0},
		{"dst_range", Memory{1, 0, 0, 5, 99}, ErrAddress{Address: 5, Ip: 0}, 0},
		{"truncated", Memory{1, 0, 0}, ErrAddress{Address: 3, Ip: 0}, 0},
		{"ip_range", Memory{1, 0, 0, 0}, ErrAddress{Address: 4, Ip: 4}, 4},
		{"empty", Memory{}, ErrAddress{Address: 0, Ip: 0}, 0},
	}

	for _, entry := range table {
		m := NewMachine(entry.memory.Clone())
		err := m.Run()
		assert.Error(err, entry.name)
		assert.Equal(entry.fault, err, entry.name)
		assert.Equal(entry.ip, m.Ip, entry.name)
		assert.Equal(STATE_FAULTED, m.State, entry.name)
		assert.Equal(entry.fault, m.Fault(), entry.name)

		// A faulted machine stays faulted.
		assert.Equal(entry.fault, m.Tick(), entry.name)
	}
}

func TestRun_FaultIs(t *testing.T) {
	assert := assert.New(t)

	err := Run(Memory{7, 0, 0, 0})
	assert.True(errors.Is(err, ErrOpcode{}))
	assert.False(errors.Is(err, ErrAddress{}))

	var eo ErrOpcode
	assert.True(errors.As(err, &eo))
	assert.Equal(Opcode(7), eo.Opcode)
	assert.Equal(uint64(0), eo.Ip)
}

func TestMachine_String(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(Memory{99})
	assert.NoError(m.Run())
	assert.Equal("   ip: 0\nstate: halted\nticks: 1\n", m.String())
}
