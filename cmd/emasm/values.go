package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/emasm/asm"
)

// valuesFile is the on-disk shape of a -values file:
//
//	[[value]]
//	type  = "u64"
//	value = "1000000"
//
//	[[value]]
//	type  = "address"
//	value = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
//
// Entries bind to (param N) placeholders in order: the first entry is
// index 0, the second index 1, and so on.
type valuesFile struct {
	Value []valueEntry `toml:"value"`
}

type valueEntry struct {
	Type  string `toml:"type"`
	Value string `toml:"value"`
}

func loadValues(path string) ([]asm.Encodable, error) {
	var file valuesFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, err
	}

	values := make([]asm.Encodable, len(file.Value))
	for i, entry := range file.Value {
		v, err := decodeValue(entry)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func decodeValue(entry valueEntry) (asm.Encodable, error) {
	switch entry.Type {
	case "u8":
		v, err := strconv.ParseUint(entry.Value, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("u8 %q: %w", entry.Value, err)
		}
		return asm.Uint8(v), nil

	case "u16":
		v, err := strconv.ParseUint(entry.Value, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("u16 %q: %w", entry.Value, err)
		}
		return asm.Uint16(v), nil

	case "u32":
		v, err := strconv.ParseUint(entry.Value, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("u32 %q: %w", entry.Value, err)
		}
		return asm.Uint32(v), nil

	case "u64":
		v, err := strconv.ParseUint(entry.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("u64 %q: %w", entry.Value, err)
		}
		return asm.Uint64(v), nil

	case "u256":
		x, ok := new(big.Int).SetString(entry.Value, 0)
		if !ok || x.Sign() < 0 {
			return nil, fmt.Errorf("u256 %q: not a non-negative integer", entry.Value)
		}
		return asm.BigInt{X: x}, nil

	case "address":
		raw, err := decodeHexValue(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("address %q: %w", entry.Value, err)
		}
		if len(raw) != 20 {
			return nil, fmt.Errorf("address %q: %d bytes, want 20", entry.Value, len(raw))
		}
		var addr asm.Address
		copy(addr[:], raw)
		return addr, nil

	case "word":
		raw, err := decodeHexValue(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("word %q: %w", entry.Value, err)
		}
		if len(raw) != 32 {
			return nil, fmt.Errorf("word %q: %d bytes, want 32", entry.Value, len(raw))
		}
		var word asm.Word
		copy(word[:], raw)
		return word, nil

	case "bytes":
		raw, err := decodeHexValue(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("bytes %q: %w", entry.Value, err)
		}
		return asm.Raw(raw), nil

	default:
		return nil, fmt.Errorf("unknown type %q (want u8, u16, u32, u64, u256, address, word, or bytes)", entry.Type)
	}
}

func decodeHexValue(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
