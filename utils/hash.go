package utils

import (
	"fmt"
)

var havokCrcTable [256]uint32

func init() {
	const poly = 0xEDB88320
	for i := range havokCrcTable {
		entry := uint32(i)
		for j := 0; j < 8; j++ {
			if entry&1 != 0 {
				entry = entry>>1 ^ poly
			} else {
				entry >>= 1
			}
		}
		havokCrcTable[i] = entry
	}
}

// HavokCRC32 is the reflected crc32 the animation tools use for file and
// directory names. Unlike the zip crc it starts from zero and has no final xor.
func HavokCRC32(str string) uint32 {
	var hash uint32
	for _, b := range StringToBytes(str) {
		hash = havokCrcTable[(hash^uint32(b))&0xff] ^ hash>>8
	}
	return hash
}

func HavokCRCString(str string) string {
	return fmt.Sprintf("%X", HavokCRC32(str))
}
