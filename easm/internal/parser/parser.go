package parser

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/wippyai/emasm/asm"
	"github.com/wippyai/emasm/easm/internal/token"
	"github.com/wippyai/emasm/errors"
)

type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream and produces the element sequence.
func (p *Parser) Parse() ([]asm.Element, error) {
	elements, err := p.parseElements()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Detail("line %d: unexpected %q", t.Line, t.Value).
			Build()
	}
	return elements, nil
}

// parseElements reads elements until a closing paren or end of input. The
// closing paren, when present, is left for the caller.
func (p *Parser) parseElements() ([]asm.Element, error) {
	var elements []asm.Element
	for {
		t := p.peek()
		if t == nil || t.Type == token.RParen {
			return elements, nil
		}
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
}

func (p *Parser) parseElement() (asm.Element, error) {
	t := p.next()
	switch t.Type {
	case token.Ident:
		if strings.HasPrefix(t.Value, "$") {
			return asm.LabelRef{Name: t.Value[1:]}, nil
		}
		return asm.Op{Name: t.Value}, nil

	case token.Number:
		return p.literal(t)

	case token.LParen:
		return p.parseForm()
	}

	return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Detail("line %d: unexpected %q", t.Line, t.Value).
		Build()
}

// parseForm handles the parenthesized forms: block, data, ptr, len, param.
func (p *Parser) parseForm() (asm.Element, error) {
	head, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	switch head.Value {
	case "block":
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		body, err := p.parseElements()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return asm.Block{Name: name, Body: body}, nil

	case "data":
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		blob, err := p.dataBytes(name)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return asm.RawData{Name: name, Data: blob}, nil

	case "ptr":
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return asm.DataPtr{Name: name}, nil

	case "len":
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return asm.DataSize{Name: name}, nil

	case "param":
		t, err := p.expect(token.Number)
		if err != nil {
			return nil, err
		}
		idx, convErr := strconv.Atoi(strings.ReplaceAll(t.Value, "_", ""))
		if convErr != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Detail("line %d: bad placeholder index %q", t.Line, t.Value).
				Build()
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return asm.Placeholder{Index: idx}, nil
	}

	return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Detail("line %d: unknown form %q", head.Line, head.Value).
		Build()
}

// literal converts a decimal or 0x-hex number token, up to 256 bits, into a
// minimal big-endian literal. Zero becomes an empty payload; the encoder
// turns that into push1 0x00.
func (p *Parser) literal(t *token.Token) (asm.Element, error) {
	s := strings.ReplaceAll(t.Value, "_", "")

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		data, err := decodeHex(s[2:])
		if err != nil {
			return nil, errors.InvalidHex(errors.PhaseParse, t.Value)
		}
		return asm.Lit{Data: data}, nil
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, errors.InvalidHex(errors.PhaseParse, t.Value)
	}
	return asm.Lit{Data: v.Bytes()}, nil
}

// dataBytes reads the hex payload of a data form.
func (p *Parser) dataBytes(name string) ([]byte, error) {
	t, err := p.expect(token.Number)
	if err != nil {
		return nil, err
	}
	s := strings.ReplaceAll(t.Value, "_", "")
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, errors.InvalidBytes(errors.PhaseParse, name, "data payload must be a hex literal")
	}
	blob, decErr := decodeHex(s[2:])
	if decErr != nil {
		return nil, errors.InvalidBytes(errors.PhaseParse, name, decErr.Error())
	}
	return blob, nil
}

// decodeHex decodes hex digits, left-padding an odd nibble count.
func decodeHex(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, hex.ErrLength
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

func (p *Parser) name() (string, error) {
	t, err := p.expect(token.Ident)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(t.Value, "$") || len(t.Value) < 2 {
		return "", errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Detail("line %d: expected $name, got %q", t.Line, t.Value).
			Build()
	}
	return t.Value[1:], nil
}

func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *Parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Detail("unexpected end of input").
			Build()
	}
	if t.Type != typ {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Detail("line %d: expected %v, got %q", t.Line, typ, t.Value).
			Build()
	}
	return t, nil
}
