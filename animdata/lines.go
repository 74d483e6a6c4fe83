package animdata

import (
	"io"
	"io/ioutil"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Newline used by every LineWriter created after it is set.
// The game tools accept both "\n" and "\r\n".
var DefaultNewline = "\n"

// LineReader hands out the lines of a text stream one by one.
// Line terminators are stripped, a trailing "\r" included.
type LineReader struct {
	lines []string
	pos   int
	first int // line number of lines[0], for error messages
}

func NewLineReader(r io.Reader) (*LineReader, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read stream")
	}
	return NewLineReaderString(string(data)), nil
}

func NewLineReaderString(s string) *LineReader {
	lr := &LineReader{first: 1}
	if s == "" {
		return lr
	}
	lr.lines = strings.Split(s, "\n")
	// "a\n" is one line, same as TextReader.ReadLine sees it
	if last := len(lr.lines) - 1; lr.lines[last] == "" {
		lr.lines = lr.lines[:last]
	}
	for i, l := range lr.lines {
		lr.lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lr
}

// More reports whether another line is available.
func (lr *LineReader) More() bool {
	return lr.pos < len(lr.lines)
}

// Remaining returns the number of lines left to read.
func (lr *LineReader) Remaining() int {
	return len(lr.lines) - lr.pos
}

// LineNo returns the number of the line the next read will return.
func (lr *LineReader) LineNo() int {
	return lr.first + lr.pos
}

func (lr *LineReader) Line() (string, error) {
	if !lr.More() {
		return "", errors.Wrapf(ErrStream, "line %d", lr.LineNo())
	}
	l := lr.lines[lr.pos]
	lr.pos++
	return l, nil
}

func (lr *LineReader) Int() (int, error) {
	l, err := lr.Line()
	if err != nil {
		return 0, err
	}
	v, err := ParseInt(l)
	if err != nil {
		return 0, errors.Wrapf(err, "line %d", lr.LineNo()-1)
	}
	return v, nil
}

// Count reads a count of following items. Every item takes at least one line,
// so a count larger than the rest of the stream is reported as ErrStream.
func (lr *LineReader) Count() (int, error) {
	v, err := lr.Int()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrFormat, "line %d: negative count %d", lr.LineNo()-1, v)
	}
	if v > lr.Remaining() {
		return 0, errors.Wrapf(ErrStream, "line %d: count %d, %d lines left", lr.LineNo()-1, v, lr.Remaining())
	}
	return v, nil
}

func (lr *LineReader) Float() (float32, error) {
	l, err := lr.Line()
	if err != nil {
		return 0, err
	}
	v, err := ParseFloat(l)
	if err != nil {
		return 0, errors.Wrapf(err, "line %d", lr.LineNo()-1)
	}
	return v, nil
}

// Flag reads a "1"/"0" line. Anything but "1" is false.
func (lr *LineReader) Flag() (bool, error) {
	l, err := lr.Line()
	if err != nil {
		return false, err
	}
	return l == "1", nil
}

// Strings reads n raw lines.
func (lr *LineReader) Strings(n int) ([]string, error) {
	if n < 0 || n > lr.Remaining() {
		return nil, errors.Wrapf(ErrStream, "line %d: %d lines requested, %d left", lr.LineNo(), n, lr.Remaining())
	}
	res := make([]string, 0, n)
	for i := 0; i < n; i++ {
		l, err := lr.Line()
		if err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, nil
}

// Sub consumes the next n lines and returns them as an independent reader.
// Blocks that read "until end of input" rely on this to stay inside their section.
func (lr *LineReader) Sub(n int) (*LineReader, error) {
	if n < 0 || n > lr.Remaining() {
		return nil, errors.Wrapf(ErrStream, "line %d: section of %d lines, %d left",
			lr.LineNo(), n, lr.Remaining())
	}
	sub := &LineReader{
		lines: lr.lines[lr.pos : lr.pos+n],
		first: lr.LineNo(),
	}
	lr.pos += n
	return sub, nil
}

// LineWriter emits lines terminated by Newline.
// The first write error is kept and reported by Err; later writes are skipped.
type LineWriter struct {
	w       io.Writer
	Newline string
	err     error
}

func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w, Newline: DefaultNewline}
}

func (lw *LineWriter) Line(s string) {
	if lw.err != nil {
		return
	}
	if _, err := io.WriteString(lw.w, s+lw.Newline); err != nil {
		lw.err = errors.Wrapf(ErrIO, "%v", err)
	}
}

func (lw *LineWriter) Blank()          { lw.Line("") }
func (lw *LineWriter) Int(v int)       { lw.Line(strconv.Itoa(v)) }
func (lw *LineWriter) Float(v float32) { lw.Line(FormatFloat(v)) }

func (lw *LineWriter) Flag(b bool) {
	if b {
		lw.Line("1")
	} else {
		lw.Line("0")
	}
}

func (lw *LineWriter) Strings(ss []string) {
	for _, s := range ss {
		lw.Line(s)
	}
}

// Floats writes one line of space separated values.
func (lw *LineWriter) Floats(vs ...float32) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = FormatFloat(v)
	}
	lw.Line(strings.Join(parts, " "))
}

func (lw *LineWriter) Err() error { return lw.err }

func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "%q is not an integer", s)
	}
	return v, nil
}

func ParseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "%q is not a number", s)
	}
	return float32(v), nil
}

// FormatFloat produces the shortest text that parses back to v, switching to
// lowercase exponent notation below 1e-4 and from 1e7 on ("1e+07", "2.5e-06").
// This is the notation the engine's own tooling writes.
func FormatFloat(v float32) string {
	f := float64(v)
	if a := math.Abs(f); a >= 1e6 && a < 1e7 {
		return strconv.FormatFloat(f, 'f', -1, 32)
	}
	return strconv.FormatFloat(f, 'g', -1, 32)
}

// cloneSlice copies s keeping the nil/empty distinction.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
