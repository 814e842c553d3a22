package detect

import "testing"

func TestLexicon_IsDialogue(t *testing.T) {
	lx := DefaultLexicon()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"ascii double quoted", `"안녕하세요"`, true},
		{"ascii single quoted", `'안녕하세요'`, true},
		{"curly double quoted", "“안녕하세요”", true},
		{"curly single quoted", "‘안녕하세요’", true},
		{"name colon quote", `철수: "지금 가자"`, true},
		{"reporting verb subject", "영희이 말했다", true},
		{"reporting verb suffix", `그는 "안녕"이라고 말했다`, true},
		{"two quote glyphs", `그 말, "진심"이었을까`, true},
		{"plain title", "제1장 시작하기", false},
		{"single quote glyph", "그녀의 '비밀", false},
		{"empty", "", false},
		{"narration", "그날 밤 비가 내렸다", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lx.IsDialogue(tt.line); got != tt.want {
				t.Errorf("IsDialogue(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
