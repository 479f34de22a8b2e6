package id3

import "testing"

func TestV1Genre(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "Blues"},
		{17, "Rock"},
		{24, "Soundtrack"},
		{191, "Psybient"},
		{-1, ""},
		{192, ""},
	}

	for _, tt := range tests {
		if got := V1Genre(tt.index); got != tt.want {
			t.Errorf("V1Genre(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestProcessGenre(t *testing.T) {
	tests := []struct {
		name  string
		genre string
		want  string
	}{
		{"empty", "", ""},
		{"numeric string", "17", "Rock"},
		{"numeric prefix only", "(17)", "Rock"},
		{"prefix with refinement", "(17)Hard Rock", "Hard Rock"},
		{"plain text", "Jazz", "Jazz"},
		{"out of range index", "400", ""},
		{"malformed prefix", "(x)Rock", "(x)Rock"},
		{"unclosed prefix", "(17", "(17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := processGenre(tt.genre); got != tt.want {
				t.Errorf("processGenre(%q) = %q, want %q", tt.genre, got, tt.want)
			}
		})
	}
}
