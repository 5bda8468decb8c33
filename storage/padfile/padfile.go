// Package padfile implements the on-disk pad-file layout: id(16) ||
// used:u64-LE || backing-bytes.
package padfile

import (
	"encoding/binary"
	"errors"
)

const headerSize = 16 + 8

// ErrTruncated is returned when a buffer is too short to contain even the
// pad-file header.
var ErrTruncated = errors.New("padfile: truncated")

// ErrUsedExceedsBacking is returned on load when the stored used count
// exceeds the length of the backing bytes that follow it.
var ErrUsedExceedsBacking = errors.New("padfile: used exceeds backing length")

// File is a decoded pad file: a stable 16-byte identifier, a count of
// bytes already consumed from Backing, and the backing bytes themselves.
type File struct {
	ID      [16]byte
	Used    uint64
	Backing []byte
}

// Encode serializes f as id(16) || used:u64-LE || backing-bytes.
func Encode(f File) []byte {
	out := make([]byte, headerSize+len(f.Backing))
	copy(out[:16], f.ID[:])
	binary.LittleEndian.PutUint64(out[16:24], f.Used)
	copy(out[24:], f.Backing)
	return out
}

// Decode parses a pad file, enforcing Used <= len(Backing).
func Decode(data []byte) (File, error) {
	if len(data) < headerSize {
		return File{}, ErrTruncated
	}
	var f File
	copy(f.ID[:], data[:16])
	f.Used = binary.LittleEndian.Uint64(data[16:24])
	f.Backing = append([]byte(nil), data[24:]...)
	if f.Used > uint64(len(f.Backing)) {
		return File{}, ErrUsedExceedsBacking
	}
	return f, nil
}
