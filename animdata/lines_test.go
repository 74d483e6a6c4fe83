package animdata

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formatFloatTests = []struct {
	in  float32
	out string
}{
	{0, "0"},
	{1, "1"},
	{-12.5, "-12.5"},
	{0.2, "0.2"},
	{0.333333, "0.333333"},
	{0.0436194, "0.0436194"},
	{0.0001, "0.0001"},
	{0.00005, "5e-05"},
	{2.5e-06, "2.5e-06"},
	{100000, "100000"},
	{1000000, "1000000"},
	{1e+07, "1e+07"},
}

func TestFormatFloat(t *testing.T) {
	for _, test := range formatFloatTests {
		result := FormatFloat(test.in)
		if result != test.out {
			t.Errorf("FormatFloat(%v)=%q; expected %q", test.in, result, test.out)
		}
		back, err := ParseFloat(result)
		if err != nil || back != test.in {
			t.Errorf("ParseFloat(%q)=%v,%v; expected %v", result, back, err, test.in)
		}
	}
}

func TestLineReaderSplitsLikeReadLine(t *testing.T) {
	assert.False(t, NewLineReaderString("").More())

	lr := NewLineReaderString("a\r\n\nb")
	lines, err := lr.Strings(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "b"}, lines)
	assert.False(t, lr.More())

	lr = NewLineReaderString("a\n")
	_, err = lr.Line()
	require.NoError(t, err)
	assert.False(t, lr.More())
}

func TestLineReaderErrors(t *testing.T) {
	lr := NewLineReaderString("12\nnope\n")
	v, err := lr.Int()
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = lr.Int()
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = lr.Line()
	assert.True(t, errors.Is(err, ErrStream), "got %v", err)

	_, err = NewLineReaderString("-1\n").Count()
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestLineReaderSub(t *testing.T) {
	lr := NewLineReaderString("x\na\nb\nc\n")
	lr.Line()

	sub, err := lr.Sub(2)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.LineNo())

	lines, err := sub.Strings(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
	assert.False(t, sub.More())

	l, err := lr.Line()
	require.NoError(t, err)
	assert.Equal(t, "c", l)

	_, err = lr.Sub(1)
	assert.True(t, errors.Is(err, ErrStream))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf)
	lw.Newline = "\r\n"
	lw.Flag(true)
	lw.Int(-3)
	lw.Floats(1.5, 0, 2.5e-06)
	lw.Blank()
	require.NoError(t, lw.Err())
	assert.Equal(t, "1\r\n-3\r\n1.5 0 2.5e-06\r\n\r\n", buf.String())

	lw = NewLineWriter(failingWriter{})
	lw.Line("a")
	lw.Line("b")
	assert.True(t, errors.Is(lw.Err(), ErrIO))
}

func TestLineReaderCountBoundedByInput(t *testing.T) {
	lr := NewLineReaderString("3\na\nb\n")
	_, err := lr.Count()
	assert.True(t, errors.Is(err, ErrStream), "got %v", err)
	assert.Equal(t, 2, lr.Remaining())

	n, err := NewLineReaderString("2\na\nb\n").Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = NewLineReaderString("a\n").Strings(1 << 40)
	assert.True(t, errors.Is(err, ErrStream), "got %v", err)
}
