// Package rlp implements the recursive-length encoding used to
// canonically serialize trie nodes: a value is either a byte string
// or a list of such values, and every value has exactly one valid
// encoding.
package rlp

import "fmt"

// Value is the algebraic domain RLP encodes: a byte string or a list
// of values. String and List are the only implementations.
type Value interface {
	isValue()
}

// String is an RLP byte string.
type String []byte

func (String) isValue() {}

// List is an ordered sequence of RLP values.
type List []Value

func (List) isValue() {}

const (
	// shortStringOffset is the first prefix byte of a string whose
	// length fits in the 0..55 "short" range.
	shortStringOffset = 0x80
	// longStringOffset is the base prefix byte for strings of
	// length >= 56; the low bits hold the length-of-length.
	longStringOffset = 0xb7
	// shortListOffset is the first prefix byte of a list whose
	// payload fits in the 0..55 "short" range.
	shortListOffset = 0xc0
	// longListOffset is the base prefix byte for lists whose
	// payload is >= 56 bytes.
	longListOffset = 0xf7

	maxShortLen = 55
)

// Encode canonically encodes v.
func Encode(v Value) []byte {
	switch val := v.(type) {
	case String:
		return encodeString(val)
	case List:
		return encodeList(val)
	default:
		panic(fmt.Sprintf("rlp: unknown Value type %T", v))
	}
}

func encodeString(s String) []byte {
	if len(s) == 1 && s[0] < shortStringOffset {
		return []byte{s[0]}
	}

	return append(lengthPrefix(shortStringOffset, longStringOffset, len(s)), s...)
}

func encodeList(items List) []byte {
	payload := make([]byte, 0)
	for _, item := range items {
		payload = append(payload, Encode(item)...)
	}

	return append(lengthPrefix(shortListOffset, longListOffset, len(payload)), payload...)
}

// lengthPrefix builds the prefix bytes for a string or list payload
// of the given length, given the short-form base offset and the
// long-form base offset (one less than the first long-form prefix
// byte, since the long form's low byte is the length-of-length).
func lengthPrefix(shortOffset, longBase int, length int) []byte {
	if length <= maxShortLen {
		return []byte{byte(shortOffset + length)}
	}

	lenBytes := minimalBigEndian(length)
	prefix := make([]byte, 0, 1+len(lenBytes))
	prefix = append(prefix, byte(longBase+len(lenBytes)))
	prefix = append(prefix, lenBytes...)
	return prefix
}

// minimalBigEndian encodes n as the shortest big-endian byte
// sequence with no leading zero byte.
func minimalBigEndian(n int) []byte {
	if n == 0 {
		return []byte{0}
	}

	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n)
		n >>= 8
	}
	return buf[i:]
}
