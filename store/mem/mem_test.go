package mem

import (
	"errors"
	"testing"

	"github.com/example/triekv/store"
)

func key(b byte) [32]byte {
	var k [32]byte
	k[0] = b
	return k
}

func TestGetMiss(t *testing.T) {
	s := New()
	if _, err := s.Get(key(1)); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPutGet(t *testing.T) {
	s := New()
	if err := s.Put(key(1), []byte("hello")); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(key(1))
	if err != nil || string(got) != "hello" {
		t.Fatalf("got (%q, %v)", got, err)
	}
}

func TestPutOverwrite(t *testing.T) {
	s := New()
	s.Put(key(1), []byte("v1"))
	s.Put(key(1), []byte("v2"))
	got, _ := s.Get(key(1))
	if string(got) != "v2" {
		t.Fatalf("got %q, want v2", got)
	}
}

func TestPutBatch(t *testing.T) {
	s := New()
	entries := map[[32]byte][]byte{
		key(1): []byte("a"),
		key(2): []byte("b"),
	}
	if err := s.PutBatch(entries); err != nil {
		t.Fatalf("put batch: %v", err)
	}
	if got, _ := s.Get(key(1)); string(got) != "a" {
		t.Fatalf("key(1) = %q, want a", got)
	}
	if got, _ := s.Get(key(2)); string(got) != "b" {
		t.Fatalf("key(2) = %q, want b", got)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestClosedStoreRejectsAccess(t *testing.T) {
	s := New()
	s.Put(key(1), []byte("v"))
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := s.Get(key(1)); !errors.Is(err, store.ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}
	if err := s.Put(key(1), []byte("v")); !errors.Is(err, store.ErrClosed) {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestGetReturnsCopyNotAlias(t *testing.T) {
	s := New()
	original := []byte("hello")
	s.Put(key(1), original)
	got, _ := s.Get(key(1))
	got[0] = 'X'
	refetched, _ := s.Get(key(1))
	if string(refetched) != "hello" {
		t.Fatalf("mutating a Get result corrupted the store: %q", refetched)
	}
}
