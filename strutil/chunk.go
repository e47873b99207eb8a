package strutil

// Chunk splits s into consecutive pieces of size runes. A trailing piece
// shorter than size is dropped. A size below 1 or above the rune count of
// s yields s as the only piece. An empty s yields nil.
func Chunk(s string, size int) []string {
	r := []rune(s)
	if len(r) == 0 {
		return nil
	}
	if size <= 0 || size > len(r) {
		size = len(r)
	}
	out := make([]string, 0, len(r)/size)
	for i := 0; i+size <= len(r); i += size {
		out = append(out, string(r[i:i+size]))
	}
	return out
}
