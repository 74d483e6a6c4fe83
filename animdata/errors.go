package animdata

import (
	"github.com/pkg/errors"
)

var (
	// A numeric or structured line could not be parsed.
	ErrFormat = errors.New("format error")
	// An expected line is missing.
	ErrStream = errors.New("unexpected end of data")
	// Block contents violate an invariant of the format.
	ErrMalformedData = errors.New("malformed data")
	// A merged file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// Writing to disk failed.
	ErrIO = errors.New("io error")
)
