package intcode

import (
	"context"
)

type State struct {
	Mem Memory
	PC  int
}

// TraceFunc observes every operation before it is applied.
type TraceFunc func(pc int, op Operation)

type VM struct {
	state State
	trace TraceFunc
}

// New returns a VM that owns mem. Callers that need the original contents
// afterwards pass a Clone.
func New(mem Memory) *VM {
	return &VM{state: State{Mem: mem}}
}

func (vm *VM) WithTrace(fn TraceFunc) *VM {
	vm.trace = fn
	return vm
}

func (vm *VM) State() State {
	return vm.state
}

// Result is the value at address 0.
func (vm *VM) Result() int32 {
	v, _ := vm.state.Mem.Load(0)
	return v
}

// Finished reports whether the cell under the instruction pointer is the stop
// opcode. It does not decode.
func Finished(mem Memory, pc int) bool {
	v, ok := mem.Load(pc)
	return ok && Opcode(v) == OpStop
}

func (vm *VM) Finished() bool {
	return Finished(vm.state.Mem, vm.state.PC)
}

// Decode reads the instruction at pc.
func Decode(mem Memory, pc int) (Operation, error) {
	v, ok := mem.Load(pc)
	if !ok {
		return nil, &EndOfInstructionsError{CurrentInstruction: pc, Needed: 1}
	}
	def, ok := opcodes[Opcode(v)]
	if !ok {
		return nil, &InvalidInstructionError{SeenValue: v}
	}
	if pc+def.arity >= len(mem) {
		return nil, &EndOfInstructionsError{CurrentInstruction: pc, Needed: def.arity}
	}
	args := make([]Arg, 0, def.arity)
	for i := 1; i <= def.arity; i++ {
		args = append(args, Reg(int(mem[pc+i])))
	}
	return def.build(args), nil
}

// Step decodes and applies one operation. After a non-halting operation the
// instruction pointer moves past it; a halting one leaves it in place.
func (vm *VM) Step(ctx context.Context) (bool, error) {
	op, err := Decode(vm.state.Mem, vm.state.PC)
	if err != nil {
		return false, &DecodeError{Cause: err}
	}
	if vm.trace != nil {
		vm.trace(vm.state.PC, op)
	}
	halted, err := op.Apply(vm.state.Mem)
	if err != nil {
		return false, err
	}
	if !halted {
		vm.state.PC += op.Width()
	}
	return halted, nil
}

// Run steps until the stop opcode is under the instruction pointer.
func (vm *VM) Run(ctx context.Context) error {
	for !vm.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := vm.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs a patched copy of base to completion and returns address 0.
// base is not modified.
func Execute(ctx context.Context, base Memory, patch Patch) (int32, error) {
	mem := base.Clone()
	if err := mem.Patch(patch); err != nil {
		return 0, err
	}
	vm := New(mem)
	if err := vm.Run(ctx); err != nil {
		return 0, err
	}
	return vm.Result(), nil
}
