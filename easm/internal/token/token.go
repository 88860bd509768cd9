package token

import "unicode"

type Type int

const (
	LParen Type = iota
	RParen
	Ident
	Number
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == ';' && i+1 < len(runes) && runes[i+1] == ';' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		// Block comment or left paren
		if r == '(' {
			if i+1 < len(runes) && runes[i+1] == ';' {
				depth := 1
				i += 2
				for i < len(runes) && depth > 0 {
					if runes[i] == '(' && i+1 < len(runes) && runes[i+1] == ';' {
						depth++
						i++
					} else if runes[i] == ';' && i+1 < len(runes) && runes[i+1] == ')' {
						depth--
						i++
					} else if runes[i] == '\n' {
						line++
					}
					i++
				}
				i--
				continue
			}
			tokens = append(tokens, Token{"(", LParen, line})
			continue
		}

		if r == ')' {
			tokens = append(tokens, Token{")", RParen, line})
			continue
		}

		// Number: decimal or 0x hex, underscores allowed
		if unicode.IsDigit(r) {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsDigit(c) || c == 'x' || c == 'X' || c == '_' ||
					(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Number, line})
			i--
			continue
		}

		// Identifier (including $names)
		if r == '$' || unicode.IsLetter(r) || r == '_' {
			start := i
			for i < len(runes) {
				c := runes[i]
				if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '$' || c == '.' || c == '-' {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, line})
			i--
			continue
		}
	}

	return tokens
}
