package badger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/example/triekv/store"
)

func key(b byte) [32]byte {
	var k [32]byte
	k[0] = b
	return k
}

func TestNew(t *testing.T) {
	t.Run("should create non-nil store", func(t *testing.T) {
		s, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if s == nil {
			t.Fatalf("expected non-nil store, got nil")
		}
		defer s.Close()
	})
}

func TestGet(t *testing.T) {
	t.Run("should report not found for absent key", func(t *testing.T) {
		s, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		if _, err := s.Get(key(1)); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("should return previously stored value", func(t *testing.T) {
		s, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		if err := s.Put(key(1), []byte("val")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := s.Get(key(1))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !bytes.Equal(got, []byte("val")) {
			t.Errorf("got %q, want val", got)
		}
	})
}

func TestPut(t *testing.T) {
	t.Run("should overwrite existing value", func(t *testing.T) {
		s, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		s.Put(key(1), []byte("first"))
		s.Put(key(1), []byte("second"))

		got, err := s.Get(key(1))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !bytes.Equal(got, []byte("second")) {
			t.Errorf("got %q, want second", got)
		}
	})
}

func TestPutBatch(t *testing.T) {
	t.Run("should write every entry", func(t *testing.T) {
		s, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		entries := map[[32]byte][]byte{
			key(1): []byte("a"),
			key(2): []byte("b"),
		}
		if err := s.PutBatch(entries); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for k, want := range entries {
			got, err := s.Get(k)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("key %x: got %q, want %q", k, got, want)
			}
		}
	})
}

func TestFlush(t *testing.T) {
	t.Run("should not error on an open store", func(t *testing.T) {
		s, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		if err := s.Flush(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
