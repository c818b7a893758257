package peg

import "testing"

func TestDecodeRune(t *testing.T) {
	data := []struct {
		input string
		pos   int
		want  rune
		size  int
	}{
		{"a", 0, 'a', 1},
		{"日本語", 0, '日', 3},
		{"日本語", 3, '本', 3},
		{"Ω", 0, 'Ω', 2},
		{"\xff", 0, 0, 0},
		{"\xe6\x97", 0, 0, 0}, // truncated 3-byte sequence
		{"\xe6\x97\x20", 0, 0, 0}, // bad continuation byte
	}

	for _, d := range data {
		r, n := decodeRune(d.input, d.pos)
		if n != d.size || (n != 0 && r != d.want) {
			t.Errorf("decodeRune(%q, %d) = (%q, %d), want (%q, %d)", d.input, d.pos, r, n, d.want, d.size)
		}
	}
}

func TestUtf8ByteSizeTable(t *testing.T) {
	checks := []struct {
		b    byte
		size byte
	}{
		{0x00, 1}, {0x7f, 1},
		{0x80, 0}, {0xbf, 0},
		{0xc0, 2}, {0xdf, 2},
		{0xe0, 3}, {0xef, 3},
		{0xf0, 4}, {0xf7, 4},
		{0xf8, 0}, {0xff, 0},
	}
	for _, c := range checks {
		if utf8ByteSize[c.b] != c.size {
			t.Errorf("utf8ByteSize[%#x] = %d, want %d", c.b, utf8ByteSize[c.b], c.size)
		}
	}
}
