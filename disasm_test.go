package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	mem := Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}
	want := `0000: add [9] [10] -> [3]
0004: mul [3] [11] -> [0]
0008: stop
0009: .data 30
0010: .data 40
0011: .data 50
`
	assert.Equal(t, want, Disassemble(mem))
}

func TestDisassembleTruncatedInstruction(t *testing.T) {
	assert.Equal(t, "0000: stop\n0001: .data 2\n0002: .data 0\n", Disassemble(Memory{99, 2, 0}))
	assert.Empty(t, Disassemble(nil))
}
