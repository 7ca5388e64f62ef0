package intcode

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Memory is the flat address space shared by code and data.
type Memory []uint64

// Parse reads a single line of comma separated decimal words.
func Parse(r io.Reader) (mem Memory, err error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return
	}
	err = nil

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		err = ErrProgramEmpty
		return
	}

	for word := range strings.SplitSeq(line, ",") {
		word = strings.TrimSpace(word)
		var value uint64
		value, err = strconv.ParseUint(word, 10, 64)
		if err != nil {
			err = ErrParseNumber(word)
			mem = nil
			return
		}
		mem = append(mem, value)
	}

	return
}

// Clone returns an independent copy of the memory.
func (mem Memory) Clone() Memory {
	if mem == nil {
		return nil
	}
	return append(Memory(make([]uint64, 0, len(mem))), mem...)
}

// String returns the memory in the comma separated input format.
func (mem Memory) String() string {
	var sb strings.Builder
	for n, word := range mem {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(word, 10))
	}
	return sb.String()
}

// load returns the word at addr.
func (mem Memory) load(addr uint64, ip uint64) (value uint64, err error) {
	if addr >= uint64(len(mem)) {
		err = ErrAddress{Address: addr, Ip: ip}
		return
	}
	value = mem[addr]
	return
}

// store writes value at addr.
func (mem Memory) store(addr uint64, value uint64, ip uint64) (err error) {
	if addr >= uint64(len(mem)) {
		err = ErrAddress{Address: addr, Ip: ip}
		return
	}
	mem[addr] = value
	return
}
