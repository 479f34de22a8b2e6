package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestByteInt(t *testing.T) {
	tests := []struct {
		name      string
		b         []byte
		synchsafe bool
		want      uint64
	}{
		{
			name: "plain single byte",
			b:    []byte{0x7F},
			want: 0x7F,
		},
		{
			name: "plain four bytes",
			b:    []byte{0x01, 0x02, 0x03, 0x04},
			want: 0x01020304,
		},
		{
			name:      "synchsafe four bytes",
			b:         []byte{0x00, 0x00, 0x02, 0x01},
			synchsafe: true,
			want:      257,
		},
		{
			name:      "synchsafe max",
			b:         []byte{0x7F, 0x7F, 0x7F, 0x7F},
			synchsafe: true,
			want:      1<<28 - 1,
		},
		{
			name: "empty slice",
			b:    nil,
			want: 0,
		},
		{
			name:      "synchsafe ignores high bits",
			b:         []byte{0xFF, 0xFF},
			synchsafe: true,
			want:      1<<14 - 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByteInt(tt.b, tt.synchsafe)
			if got != tt.want {
				t.Errorf("ByteInt(%v, %v) = %d, want %d", tt.b, tt.synchsafe, got, tt.want)
			}
		})
	}
}

func TestIntBytes(t *testing.T) {
	tests := []struct {
		name      string
		val       uint64
		n         int
		synchsafe bool
		want      []byte
	}{
		{
			name: "plain four bytes",
			val:  0x01020304,
			n:    4,
			want: []byte{0x01, 0x02, 0x03, 0x04},
		},
		{
			name:      "synchsafe four bytes",
			val:       257,
			n:         4,
			synchsafe: true,
			want:      []byte{0x00, 0x00, 0x02, 0x01},
		},
		{
			name: "plain clamp to width",
			val:  0x1FFFF,
			n:    2,
			want: []byte{0xFF, 0xFF},
		},
		{
			name:      "synchsafe clamp to width",
			val:       1 << 28,
			n:         4,
			synchsafe: true,
			want:      []byte{0x7F, 0x7F, 0x7F, 0x7F},
		},
		{
			name: "zero width",
			val:  1,
			n:    0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntBytes(tt.val, tt.n, tt.synchsafe)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("IntBytes(%d, %d, %v) = %v, want %v", tt.val, tt.n, tt.synchsafe, got, tt.want)
			}
		})
	}
}

// Round-trip law: decoding then re-encoding any byte sequence whose high
// bits respect the synchsafe flag reproduces the original bytes.
func TestIntBytesRoundTrip(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for _, synchsafe := range []bool{false, true} {
			b := make([]byte, n)
			for i := range b {
				b[i] = byte(0x11 * (i + 1))
				if synchsafe {
					b[i] &= 0x7F
				}
			}

			got := IntBytes(ByteInt(b, synchsafe), n, synchsafe)
			if !bytes.Equal(got, b) {
				t.Errorf("round trip n=%d synchsafe=%v: got %v, want %v", n, synchsafe, got, b)
			}
		}
	}
}

func TestSafeReaderBounds(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.mp3")

	got, err := sr.Read(2, 4, "middle")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, []byte{3, 4, 5, 6}) {
		t.Errorf("Read = %v, want [3 4 5 6]", got)
	}

	for _, tt := range []struct {
		name string
		off  int64
		n    int
	}{
		{"past end", 6, 4},
		{"negative offset", -1, 4},
		{"at end", 8, 4},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sr.Read(tt.off, tt.n, tt.name)
			if err == nil {
				t.Fatal("expected error")
			}
			var oob *OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Errorf("error = %T, want *OutOfBoundsError", err)
			}
		})
	}
}

func TestSafeWriter(t *testing.T) {
	var buf bytes.Buffer
	sw := NewSafeWriter(&buf)

	sw.WriteString("ID3")
	sw.WriteBytes([]byte{4, 0, 0})
	sw.WriteInt(257, 4, true)

	if err := sw.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []byte{'I', 'D', '3', 4, 0, 0, 0x00, 0x00, 0x02, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("written = %v, want %v", buf.Bytes(), want)
	}
	if sw.Offset() != 10 {
		t.Errorf("Offset() = %d, want 10", sw.Offset())
	}
}
