package block

import "testing"

func TestName(t *testing.T) {
	if got := Name("hello.txt", 0); got != "hello.txt_0" {
		t.Fatalf("Name() = %q, want hello.txt_0", got)
	}
	if got := Name("a/b c", 12); got != "a/b c_12" {
		t.Fatalf("Name() = %q, want a/b c_12", got)
	}
}

func TestIDStable(t *testing.T) {
	a := ID("hello.txt_0")
	b := ID("hello.txt_0")
	if a != b {
		t.Fatalf("ID not stable: %d != %d", a, b)
	}
	if ID("hello.txt_0") == ID("hello.txt_1") {
		t.Fatal("distinct names hashed to the same id")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name      string
		fileSize  int64
		blockSize int64
		want      int
	}{
		{"zero size", 0, 4, 0},
		{"negative size", -1, 4, 0},
		{"below one block", 3, 4, 1},
		{"exactly one block", 4, 4, 1},
		{"one byte over", 5, 4, 2},
		{"exactly two blocks", 8, 4, 2},
		{"large block size", 5, 4096, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.fileSize, tt.blockSize); got != tt.want {
				t.Fatalf("Count(%d, %d) = %d, want %d", tt.fileSize, tt.blockSize, got, tt.want)
			}
		})
	}
}
