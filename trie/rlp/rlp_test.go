package rlp

import (
	"bytes"
	"testing"
)

func TestEncodeStringVectors(t *testing.T) {
	tests := []struct {
		name string
		in   String
		want []byte
	}{
		{"empty", String{}, []byte{0x80}},
		{"single byte below 0x80", String{0x7f}, []byte{0x7f}},
		{"single byte at 0x80", String{0x80}, []byte{0x81, 0x80}},
		{"cat", String("cat"), []byte{0x83, 'c', 'a', 't'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestEncodeLongString(t *testing.T) {
	s55 := bytes.Repeat([]byte{0x01}, 55)
	got := Encode(String(s55))
	want := append([]byte{0xb7}, s55...)
	if !bytes.Equal(got, want) {
		t.Fatalf("55-byte string: got % x, want % x", got, want)
	}

	s56 := bytes.Repeat([]byte{0x01}, 56)
	got = Encode(String(s56))
	want = append([]byte{0xb8, 56}, s56...)
	if !bytes.Equal(got, want) {
		t.Fatalf("56-byte string: got % x, want % x", got, want)
	}
}

func TestEncodeList(t *testing.T) {
	got := Encode(List{})
	if !bytes.Equal(got, []byte{0xc0}) {
		t.Fatalf("empty list: got % x", got)
	}

	got = Encode(List{String("cat"), String("dog")})
	want := []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEncodeLongList(t *testing.T) {
	items := make(List, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, String(bytes.Repeat([]byte{0x01}, 4)))
	}
	encoded := Encode(items)
	if encoded[0] < 0xf8 {
		t.Fatalf("expected long-form list prefix, got %#x", encoded[0])
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !valueEqual(decoded, items) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestRoundTrip(t *testing.T) {
	values := []Value{
		String{},
		String("cat"),
		String(bytes.Repeat([]byte{0xab}, 60)),
		List{},
		List{String("a"), List{String("b"), String("c")}},
	}
	for _, v := range values {
		encoded := Encode(v)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("decode(encode(%v)): %v", v, err)
		}
		if !valueEqual(decoded, v) {
			t.Fatalf("round-trip mismatch: got %v, want %v", decoded, v)
		}
		reencoded := Encode(decoded)
		if !bytes.Equal(reencoded, encoded) {
			t.Fatalf("encode(decode(b)) != b: got % x, want % x", reencoded, encoded)
		}
	}
}

func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		return ok && bytes.Equal(av, bv)
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
