package token

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "opcodes",
			input: "add mstore return",
			want: []Token{
				{"add", Ident, 1},
				{"mstore", Ident, 1},
				{"return", Ident, 1},
			},
		},
		{
			name:  "numbers",
			input: "1 255 0xdead 0xDE_AD 1_000",
			want: []Token{
				{"1", Number, 1},
				{"255", Number, 1},
				{"0xdead", Number, 1},
				{"0xDE_AD", Number, 1},
				{"1_000", Number, 1},
			},
		},
		{
			name:  "parens and dollar names",
			input: "(block $loop)",
			want: []Token{
				{"(", LParen, 1},
				{"block", Ident, 1},
				{"$loop", Ident, 1},
				{")", RParen, 1},
			},
		},
		{
			name:  "line comment",
			input: "add ;; ignored\nmul",
			want: []Token{
				{"add", Ident, 1},
				{"mul", Ident, 2},
			},
		},
		{
			name:  "block comment",
			input: "add (; skip (; nested ;) this ;) mul",
			want: []Token{
				{"add", Ident, 1},
				{"mul", Ident, 1},
			},
		},
		{
			name:  "line numbers",
			input: "add\n\nmul",
			want: []Token{
				{"add", Ident, 1},
				{"mul", Ident, 3},
			},
		},
		{
			name:  "empty",
			input: "  \n\t ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("token count = %d, want %d: %v", len(got), len(tt.want), got)
			}
			for i, tok := range got {
				if tok != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, tok, tt.want[i])
				}
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{LParen, "'('"},
		{RParen, "')'"},
		{Ident, "identifier"},
		{Number, "number"},
		{Type(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
