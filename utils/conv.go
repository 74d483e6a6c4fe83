package utils

import (
	"github.com/mogaika/creature_retargeter/config"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// StringToBytes converts s to the single byte encoding selected in config.
// Characters the encoding lacks are replaced, never dropped.
func StringToBytes(s string) []byte {
	enc := encoding.ReplaceUnsupported(config.GetEncoding().NewEncoder())
	bs, _, err := transform.Bytes(enc, []byte(s))
	if err != nil {
		panic(err)
	}
	return bs
}

// FileBaseName strips the directory part (either separator) and the extension.
func FileBaseName(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' || p[i] == '\\' {
			p = p[i+1:]
			break
		}
	}
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '.' {
			return p[:i]
		}
	}
	return p
}
