package intcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		input  string
		memory Memory
		err    error
	}){
		{"simple", "1,0,0,0,99", Memory{1, 0, 0, 0, 99}, nil},
		{"newline", "1,9,10,3,2,3,11,0,99,30,40,50\n", Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, nil},
		{"crlf", "2,3,0,3,99\r\n", Memory{2, 3, 0, 3, 99}, nil},
		{"spaces", " 1, 2 ,3 ", Memory{1, 2, 3}, nil},
		{"first_line", "99\n1,2,3\n", Memory{99}, nil},
		{"big", "18446744073709551615", Memory{0xffffffffffffffff}, nil},
		{"empty", "", nil, ErrProgramEmpty},
		{"blank", "\n", nil, ErrProgramEmpty},
		{"negative", "1,-1,99", nil, ErrParseNumber("-1")},
		{"missing", "1,,99", nil, ErrParseNumber("")},
		{"trailing", "1,2,", nil, ErrParseNumber("")},
		{"word", "1,two,99", nil, ErrParseNumber("two")},
	}

	for _, entry := range table {
		mem, err := Parse(strings.NewReader(entry.input))
		assert.Equal(entry.err, err, entry.name)
		assert.Equal(entry.memory, mem, entry.name)
	}
}

func TestMemory_Clone(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{1, 2, 3}
	dup := mem.Clone()
	assert.Equal(mem, dup)

	dup[0] = 99
	assert.Equal(uint64(1), mem[0])

	assert.Nil(Memory(nil).Clone())
}

func TestMemory_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", Memory{}.String())
	assert.Equal("3500,9,10,70,2,3,11,0,99,30,40,50", Memory{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}.String())

	mem, err := Parse(strings.NewReader(Memory{30, 1, 1, 4, 2}.String()))
	assert.NoError(err)
	assert.Equal(Memory{30, 1, 1, 4, 2}, mem)
}
