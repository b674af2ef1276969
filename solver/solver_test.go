package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"intcode"
	"intcode/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// linearInput is a program that leaves 100*noun+verb at address 0.
func linearInput() string {
	cells := make([]string, 100)
	for i := range cells {
		cells[i] = "0"
	}
	copy(cells, strings.Split("1,0,0,99,2,1,20,0,1,0,2,0,99", ","))
	cells[20] = "100"
	return strings.Join(cells, ",")
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("1,2,3\r\n4\n\n5"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1,2,3", "4", "", "5"}, lines)

	lines, err = ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestNewUnknownDay(t *testing.T) {
	_, err := New(1, []string{"12"}, config.Default())
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestDay02(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity.Target = 4112

	s, err := New(2, []string{linearInput()}, cfg)
	require.NoError(t, err)

	first, err := s.FirstResult()
	require.NoError(t, err)
	assert.Equal(t, "1202", first)

	second, err := s.SecondResult()
	require.NoError(t, err)
	assert.Equal(t, "4112", second)
}

func TestDay02ParallelSearch(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity.Target = 4112
	cfg.Search.Workers = 4

	s, err := New(2, []string{linearInput()}, cfg)
	require.NoError(t, err)

	second, err := s.SecondResult()
	require.NoError(t, err)
	assert.Equal(t, "4112", second)
}

func TestDay02NotFound(t *testing.T) {
	s, err := New(2, []string{linearInput()}, config.Default())
	require.NoError(t, err)

	_, err = s.SecondResult()
	assert.ErrorIs(t, err, intcode.ErrNotFound)
}

func TestDay02FirstResultIsRepeatable(t *testing.T) {
	s, err := New(2, []string{linearInput()}, config.Default())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		first, err := s.FirstResult()
		require.NoError(t, err)
		assert.Equal(t, "1202", first)
	}
}

func TestDay02InvalidInput(t *testing.T) {
	for _, lines := range [][]string{nil, {""}, {"1,x,3"}} {
		_, err := New(2, lines, config.Default())
		assert.ErrorIs(t, err, intcode.ErrInvalidInput)
	}
}

func TestDay02ExecutionError(t *testing.T) {
	s, err := New(2, []string{"1,0,0,0,99"}, config.Default())
	require.NoError(t, err)

	_, err = s.FirstResult()
	var reg *intcode.InvalidRegisterError
	require.ErrorAs(t, err, &reg)
	assert.Equal(t, 12, reg.Address)

	s, err = New(2, []string{"1,0"}, config.Default())
	require.NoError(t, err)

	_, err = s.FirstResult()
	var oob *intcode.PatchOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 2, oob.Address)
}
