package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Patch maps addresses to the values written there before a run.
type Patch map[int]int32

// NounVerb is the patch that sets addresses 1 and 2.
func NounVerb(noun, verb int32) Patch {
	return Patch{1: noun, 2: verb}
}

// Patch writes every edit in p. All addresses are checked first; on error
// memory is left untouched.
func (m Memory) Patch(p Patch) error {
	for addr := range p {
		if !m.inBounds(addr) {
			return &PatchOutOfBoundsError{Address: addr, Len: len(m)}
		}
	}
	for addr, v := range p {
		m[addr] = v
	}
	return nil
}

// ParsePatch reads "addr=value" edits.
func ParsePatch(edits []string) (Patch, error) {
	p := make(Patch, len(edits))
	for _, edit := range edits {
		k, v, ok := strings.Cut(edit, "=")
		if !ok {
			return nil, fmt.Errorf("patch %q: expected addr=value", edit)
		}
		addr, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("patch %q: address: %w", edit, err)
		}
		val, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("patch %q: value: %w", edit, err)
		}
		p[addr] = int32(val)
	}
	return p, nil
}
