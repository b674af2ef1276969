package intcode

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("could not find noun-verb pair")
)

// InputError reports a program text that could not be turned into Memory.
type InputError struct {
	Pos   lexer.Position
	Token string
	Err   error
}

func (e *InputError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q at %s: %v", ErrInvalidInput, e.Token, e.Pos, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrInvalidInput, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidInstructionError is a decode failure on an unknown opcode.
type InvalidInstructionError struct {
	SeenValue int32
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction %d", e.SeenValue)
}

// EndOfInstructionsError is a decode failure when the instruction pointer, or
// the operands it needs, run past the end of memory.
type EndOfInstructionsError struct {
	CurrentInstruction int
	Needed             int
}

func (e *EndOfInstructionsError) Error() string {
	return fmt.Sprintf("end of instructions at %d: needed %d cells", e.CurrentInstruction, e.Needed)
}

// DecodeError wraps a decode failure raised while executing.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string { return "decode: " + e.Cause.Error() }

func (e *DecodeError) Unwrap() error { return e.Cause }

type InvalidRegisterError struct {
	Address int
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("invalid register %d", e.Address)
}

type InvalidOutputError struct {
	Arg Arg
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("invalid output %s", e.Arg)
}

type PatchOutOfBoundsError struct {
	Address int
	Len     int
}

func (e *PatchOutOfBoundsError) Error() string {
	return fmt.Sprintf("patch address %d out of bounds for memory of %d cells", e.Address, e.Len)
}

// NotFoundError is returned once the whole search space was tried without a
// match.
type NotFoundError struct {
	Target   int32
	Attempts int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s for %d after %d attempts", ErrNotFound, e.Target, e.Attempts)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
