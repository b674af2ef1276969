package intcode

import (
	"slices"
	"strconv"
	"strings"
)

// Memory is the cell array of an IntCode program; it holds both instructions
// and data.
type Memory []int32

// Parse builds Memory from one line of comma separated base-10 integers.
func Parse(line string) (Memory, error) {
	prog, err := parseProgram(line)
	if err != nil {
		return nil, err
	}
	return prog.memory()
}

// Clone returns a deep copy; writes to the copy are never visible in m.
func (m Memory) Clone() Memory {
	return slices.Clone(m)
}

func (m Memory) Load(addr int) (int32, bool) {
	if addr < 0 || addr >= len(m) {
		return 0, false
	}
	return m[addr], true
}

func (m Memory) inBounds(addr int) bool {
	return addr >= 0 && addr < len(m)
}

func (m Memory) String() string {
	res := &strings.Builder{}
	for i, v := range m {
		if i > 0 {
			res.WriteString(",")
		}
		res.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return res.String()
}
