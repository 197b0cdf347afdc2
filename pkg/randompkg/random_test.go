package randompkg

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	for _, n := range []int{1, 9, 32} {
		got := String(n)

		if len(got) != n {
			t.Fatalf("String(%d) returned %q of length %d", n, got, len(got))
		}

		for _, c := range got {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("String(%d) returned %q containing %q outside the alphabet", n, got, c)
			}
		}
	}
}

func TestIntnStaysInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := Intn(36); got < 0 || got >= 36 {
			t.Fatalf("Intn(36) = %d, out of range", got)
		}
	}
}
