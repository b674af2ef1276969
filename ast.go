package intcode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var programLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Comma", Pattern: `,`},
})

var programParser = participle.MustBuild[Program](
	participle.Lexer(programLexer),
)

var errEmptyProgram = errors.New("empty program")

// Program is the parsed text form of an IntCode program.
type Program struct {
	Cells []*Cell `parser:"@@ ( \",\" @@ )*"`
}

type Cell struct {
	Pos   lexer.Position
	Token string `parser:"@Int"`
}

func (c *Cell) value() (int32, error) {
	v, err := strconv.ParseInt(c.Token, 10, 32)
	if err != nil {
		return 0, &InputError{Pos: c.Pos, Token: c.Token, Err: err}
	}
	return int32(v), nil
}

func parseProgram(line string) (*Program, error) {
	prog, err := programParser.ParseString("", line)
	if err != nil {
		ie := &InputError{Err: err}
		var perr participle.Error
		if errors.As(err, &perr) {
			ie.Pos = perr.Position()
		}
		return nil, ie
	}
	if len(prog.Cells) == 0 {
		return nil, &InputError{Err: errEmptyProgram}
	}
	return prog, nil
}

func (p *Program) memory() (Memory, error) {
	mem := make(Memory, 0, len(p.Cells))
	for _, cell := range p.Cells {
		v, err := cell.value()
		if err != nil {
			return nil, err
		}
		mem = append(mem, v)
	}
	return mem, nil
}

func (p *Program) String() string {
	res := &strings.Builder{}
	for i, cell := range p.Cells {
		if i > 0 {
			res.WriteString(",")
		}
		res.WriteString(cell.Token)
	}
	return res.String()
}
