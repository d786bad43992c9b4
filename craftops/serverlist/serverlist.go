// Package serverlist encodes the multiplayer server list the game
// client persists as servers.dat. The file is a big-endian NBT
// compound holding a "servers" list of {name, ip} string pairs.
package serverlist

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// Entry is a single row of the client's multiplayer server list.
type Entry struct {
	// Name is the display name shown in the client. Arbitrary UTF-8.
	Name string
	// Address is a host or host:port string. Opaque to the encoder.
	Address string
}

// List is an ordered collection of entries. Order determines display
// order in the client and is preserved exactly; duplicates are kept.
type List []Entry

// NBT tag types used by the servers.dat layout.
const (
	tagEnd      byte = 0x00
	tagString   byte = 0x08
	tagList     byte = 0x09
	tagCompound byte = 0x0A
)

// maxFieldLen is the largest value a 2-byte NBT string length prefix
// can hold.
const maxFieldLen = 0xFFFF

// ErrFieldTooLong is returned when a name or address exceeds 65535
// UTF-8 bytes and no longer fits the string length prefix.
var ErrFieldTooLong = errors.New("field exceeds 65535 UTF-8 bytes")

// EncodingError wraps a failure to produce or persist a server list.
type EncodingError struct {
	Op  string
	Err error
}

// Error ...
func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode server list: %s: %v", e.Op, e.Err)
}

// Unwrap ...
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Encode serializes entries into the exact servers.dat byte layout:
// an anonymous root TAG_Compound containing a TAG_List "servers" of
// TAG_Compound elements, each holding TAG_String "name" then
// TAG_String "ip". All integers are big-endian and all string lengths
// are UTF-8 byte counts. An empty list is valid and still declares
// TAG_Compound as the list element type.
func Encode(entries List) ([]byte, error) {
	buf := &bytes.Buffer{}

	buf.WriteByte(tagCompound)
	writeLen(buf, 0) // anonymous root

	buf.WriteByte(tagList)
	writeLen(buf, len("servers"))
	buf.WriteString("servers")

	buf.WriteByte(tagCompound)
	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(entries)))
	buf.Write(count[:])

	for i, entry := range entries {
		if err := writeStringTag(buf, "name", entry.Name, i); err != nil {
			return nil, err
		}
		if err := writeStringTag(buf, "ip", entry.Address, i); err != nil {
			return nil, err
		}
		buf.WriteByte(tagEnd)
	}
	buf.WriteByte(tagEnd)

	return buf.Bytes(), nil
}

// Write encodes entries fully in memory, then writes the result to
// path in a single call, replacing any existing content. Nothing is
// written when encoding fails, so a partial or corrupt file is never
// produced.
func Write(path string, entries List) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return &EncodingError{Op: fmt.Sprintf("write %s", path), Err: err}
	}
	return nil
}

// writeStringTag emits a full TAG_String: type byte, name length,
// name bytes, value length, value bytes. The tag names used here
// ("name", "ip") are fixed and short; only the value can overflow the
// 2-byte length prefix.
func writeStringTag(buf *bytes.Buffer, name, value string, index int) error {
	if len(value) > maxFieldLen {
		return &EncodingError{
			Op:  fmt.Sprintf("entry %d field %q", index, name),
			Err: ErrFieldTooLong,
		}
	}
	buf.WriteByte(tagString)
	writeLen(buf, len(name))
	buf.WriteString(name)
	writeLen(buf, len(value))
	buf.WriteString(value)
	return nil
}

// writeLen emits a 2-byte big-endian length prefix.
func writeLen(buf *bytes.Buffer, n int) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(n))
	buf.Write(b[:])
}
