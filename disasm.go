package intcode

import (
	"fmt"
	"strings"
)

// Disassemble lists mem one instruction per line. Cells that do not decode
// are printed as data.
func Disassemble(mem Memory) string {
	res := &strings.Builder{}
	for pc := 0; pc < len(mem); {
		op, err := Decode(mem, pc)
		if err != nil {
			fmt.Fprintf(res, "%04d: .data %d\n", pc, mem[pc])
			pc++
			continue
		}
		fmt.Fprintf(res, "%04d: %s\n", pc, op)
		pc += max(op.Width(), 1)
	}
	return res.String()
}
