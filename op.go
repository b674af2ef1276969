package intcode

import "fmt"

type ArgKind uint8

const (
	Register ArgKind = iota
	// Constant is an immediate operand. No current opcode decodes one.
	Constant
)

// Arg is an operand: either an address into Memory or a literal.
type Arg struct {
	Kind  ArgKind
	Value int
}

func Reg(addr int) Arg { return Arg{Kind: Register, Value: addr} }

func Const(v int32) Arg { return Arg{Kind: Constant, Value: int(v)} }

func (a Arg) String() string {
	if a.Kind == Constant {
		return fmt.Sprintf("#%d", a.Value)
	}
	return fmt.Sprintf("[%d]", a.Value)
}

func (a Arg) resolve(mem Memory) (int32, error) {
	switch a.Kind {
	case Register:
		v, ok := mem.Load(a.Value)
		if !ok {
			return 0, &InvalidRegisterError{Address: a.Value}
		}
		return v, nil
	case Constant:
		return int32(a.Value), nil
	default:
		panic(fmt.Errorf("unknown arg kind %d", a.Kind))
	}
}

// store writes v through an output operand, which must be an in-bounds
// register.
func (a Arg) store(mem Memory, v int32) error {
	if a.Kind != Register || !mem.inBounds(a.Value) {
		return &InvalidOutputError{Arg: a}
	}
	mem[a.Value] = v
	return nil
}

type Opcode int32

const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpStop Opcode = 99
)

// Operation is one decoded instruction. Operations are decoded fresh from
// memory on every step.
type Operation interface {
	Opcode() Opcode
	// Width is the number of cells the instruction pointer advances by.
	Width() int
	Apply(mem Memory) (halted bool, err error)
	String() string
}

func (o Opcode) String() string {
	if def, ok := opcodes[o]; ok {
		return def.name
	}
	return fmt.Sprintf("op(%d)", int32(o))
}

type opcodeDef struct {
	name  string
	arity int
	build func(args []Arg) Operation
}

var opcodes = map[Opcode]opcodeDef{
	OpAdd: {"add", 3, func(args []Arg) Operation {
		return Add{binary{args[0], args[1], args[2]}}
	}},
	OpMul: {"mul", 3, func(args []Arg) Operation {
		return Mul{binary{args[0], args[1], args[2]}}
	}},
	OpStop: {"stop", 0, func([]Arg) Operation {
		return Stop{}
	}},
}

type binary struct {
	Left, Right, Out Arg
}

func (b binary) apply(mem Memory, fn func(l, r int32) int32) (bool, error) {
	l, err := b.Left.resolve(mem)
	if err != nil {
		return false, err
	}
	r, err := b.Right.resolve(mem)
	if err != nil {
		return false, err
	}
	return false, b.Out.store(mem, fn(l, r))
}

func (b binary) format(name string) string {
	return fmt.Sprintf("%s %s %s -> %s", name, b.Left, b.Right, b.Out)
}

type Add struct{ binary }

func (Add) Opcode() Opcode { return OpAdd }
func (Add) Width() int     { return 4 }

func (op Add) Apply(mem Memory) (bool, error) {
	return op.apply(mem, func(l, r int32) int32 { return l + r })
}

func (op Add) String() string { return op.format("add") }

type Mul struct{ binary }

func (Mul) Opcode() Opcode { return OpMul }
func (Mul) Width() int     { return 4 }

func (op Mul) Apply(mem Memory) (bool, error) {
	return op.apply(mem, func(l, r int32) int32 { return l * r })
}

func (op Mul) String() string { return op.format("mul") }

type Stop struct{}

func (Stop) Opcode() Opcode             { return OpStop }
func (Stop) Width() int                 { return 0 }
func (Stop) Apply(Memory) (bool, error) { return true, nil }
func (Stop) String() string             { return "stop" }
