package encoding

import (
	"bytes"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		enc  byte
		b    []byte
		want string
	}{
		{
			name: "latin1 ascii",
			enc:  Latin1,
			b:    []byte("Hello"),
			want: "Hello",
		},
		{
			name: "latin1 high bytes",
			enc:  Latin1,
			b:    []byte{0xE9, 0xE8}, // é è
			want: "éè",
		},
		{
			name: "utf16 little-endian BOM",
			enc:  UTF16,
			b:    []byte{0xFF, 0xFE, 0x41, 0x00, 0x42, 0x00},
			want: "AB",
		},
		{
			name: "utf16 big-endian BOM",
			enc:  UTF16,
			b:    []byte{0xFE, 0xFF, 0x00, 0x41, 0x00, 0x42},
			want: "AB",
		},
		{
			name: "utf16 no BOM assumes big-endian",
			enc:  UTF16,
			b:    []byte{0x00, 0x41, 0x00, 0x42},
			want: "AB",
		},
		{
			name: "utf16 surrogate pair",
			enc:  UTF16,
			b:    []byte{0xFE, 0xFF, 0xD8, 0x3D, 0xDE, 0x00}, // U+1F600
			want: "\U0001F600",
		},
		{
			name: "utf16 single byte is empty",
			enc:  UTF16,
			b:    []byte{0x41},
			want: "",
		},
		{
			name: "utf16 odd length truncates",
			enc:  UTF16,
			b:    []byte{0xFE, 0xFF, 0x00, 0x41, 0x00},
			want: "A",
		},
		{
			name: "utf16be",
			enc:  UTF16BE,
			b:    []byte{0x00, 0x41, 0x00, 0x42},
			want: "AB",
		},
		{
			name: "utf8 passthrough",
			enc:  UTF8,
			b:    []byte("Hello, 世界"),
			want: "Hello, 世界",
		},
		{
			name: "empty input",
			enc:  UTF8,
			b:    nil,
			want: "",
		},
		{
			name: "unknown encoding falls back to latin1",
			enc:  0x09,
			b:    []byte("abc"),
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.enc, tt.b)
			if got != tt.want {
				t.Errorf("Decode(%#x, %v) = %q, want %q", tt.enc, tt.b, got, tt.want)
			}
		})
	}
}

func TestEncodeLatin1(t *testing.T) {
	got := EncodeLatin1("café")
	want := []byte{'c', 'a', 'f', 0xE9}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeLatin1 = %v, want %v", got, want)
	}
}

func TestIsASCII(t *testing.T) {
	if !IsASCII("plain text 123") {
		t.Error("expected ASCII")
	}
	if IsASCII("café") {
		t.Error("expected non-ASCII")
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		name      string
		b         []byte
		enc       byte
		wantField []byte
		wantRest  []byte
	}{
		{
			name:      "single byte terminator",
			b:         []byte{'a', 'b', 0, 'c'},
			enc:       Latin1,
			wantField: []byte("ab"),
			wantRest:  []byte("c"),
		},
		{
			name:      "no terminator",
			b:         []byte("abc"),
			enc:       UTF8,
			wantField: []byte("abc"),
			wantRest:  nil,
		},
		{
			name: "utf16 aligned terminator",
			b:    []byte{0x00, 0x41, 0x00, 0x00, 0x00, 0x42},
			enc:  UTF16,
			// "A" then NUL-NUL, remainder "B" big-endian
			wantField: []byte{0x00, 0x41},
			wantRest:  []byte{0x00, 0x42},
		},
		{
			name: "utf16 lone NUL inside code unit does not terminate",
			// "AĀ" big-endian: 0x0041 0x0100 - bytes 0x00 0x41 0x01 0x00.
			// The 0x00 at index 3 must not be treated as a terminator.
			b:         []byte{0x00, 0x41, 0x01, 0x00, 0x00, 0x00, 0x00, 0x42},
			enc:       UTF16,
			wantField: []byte{0x00, 0x41, 0x01, 0x00},
			wantRest:  []byte{0x00, 0x42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, rest := Cut(tt.b, tt.enc)
			if !bytes.Equal(field, tt.wantField) {
				t.Errorf("field = %v, want %v", field, tt.wantField)
			}
			if !bytes.Equal(rest, tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			}
		})
	}
}
