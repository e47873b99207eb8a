package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		s    string
		size int
		want []string
	}{
		{"even split", "004009012030007010", 3, []string{"004", "009", "012", "030", "007", "010"}},
		{"remainder dropped", "abcdefg", 3, []string{"abc", "def"}},
		{"size too large", "abc", 5, []string{"abc"}},
		{"size zero", "abc", 0, []string{"abc"}},
		{"size negative", "abc", -1, []string{"abc"}},
		{"runes", "äöüß", 2, []string{"äö", "üß"}},
		{"empty", "", 2, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Chunk(tc.s, tc.size)); diff != "" {
				t.Errorf("Chunk(%q, %d) mismatch (-want +got):\n%s", tc.s, tc.size, diff)
			}
		})
	}
}
