package store

import (
	"bytes"
	"errors"
	"testing"
)

func TestCreateDuplicateFails(t *testing.T) {
	s := New()
	if err := s.Create("f_0", []byte("abcd"), 4); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := s.Create("f_0", []byte("abcd"), 4)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("second Create() error = %v, want ErrExists", err)
	}
}

func TestReadMissing(t *testing.T) {
	s := New()
	if _, err := s.Read("absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read() error = %v, want ErrNotFound", err)
	}
}

func TestSizeTruncatesPayload(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size int64
		want []byte
	}{
		{"size below data", []byte("abcdef"), 4, []byte("abcd")},
		{"size equals data", []byte("abcd"), 4, []byte("abcd")},
		{"size above data", []byte("ab"), 4, []byte("ab")},
		{"negative size", []byte("ab"), -1, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if err := s.Create("b", tt.data, tt.size); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			got, err := s.Read("b")
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("Read() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateCreatesWhenAbsent(t *testing.T) {
	s := New()
	if err := s.Update("b", []byte("hi"), 2); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, err := s.Read("b")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != "hi" {
		t.Fatalf("Read() = %q, want hi", got)
	}
}

func TestUpdateOverwrites(t *testing.T) {
	s := New()
	if err := s.Create("b", []byte("abcd"), 4); err != nil {
		t.Fatal(err)
	}
	if err := s.Update("b", []byte("xyz"), 3); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, _ := s.Read("b")
	if string(got) != "xyz" {
		t.Fatalf("Read() = %q, want xyz", got)
	}
}

func TestUpdateSizeZeroDeletes(t *testing.T) {
	s := New()
	if err := s.Create("b", []byte("abcd"), 4); err != nil {
		t.Fatal(err)
	}
	if err := s.Update("b", nil, 0); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, err := s.Read("b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read() after size-0 update error = %v, want ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := New()
	if err := s.Create("b", []byte("abcd"), 4); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("b"); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	if err := s.Delete("b"); err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
}

func TestReadReturnsCopy(t *testing.T) {
	s := New()
	if err := s.Create("b", []byte("abcd"), 4); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Read("b")
	got[0] = 'z'
	again, _ := s.Read("b")
	if string(again) != "abcd" {
		t.Fatalf("stored block mutated through a read: %q", again)
	}
}
