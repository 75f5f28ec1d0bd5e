package hash

import "hash/crc32"

// StringHash - Returns a hash value over the bytes of s using crc32.ChecksumIEEE.
// The result is always in the range 0 to 1<<32 - 1.
func StringHash(s string) int64 {
	return int64(crc32.ChecksumIEEE([]byte(s)))
}
