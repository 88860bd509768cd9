package asm

import "math/big"

// Encodable renders a value as the bytes a push instruction should carry.
// Numeric kinds render minimal big-endian with zero as a single 0x00 byte;
// fixed-width kinds render their full width untrimmed, since their width is
// semantically fixed.
type Encodable interface {
	EVMBytes() []byte
}

// Uint8 is an 8-bit unsigned value.
type Uint8 uint8

func (v Uint8) EVMBytes() []byte {
	return []byte{byte(v)}
}

// Uint16 is a 16-bit unsigned value.
type Uint16 uint16

func (v Uint16) EVMBytes() []byte {
	return minimalBytes(uint64(v))
}

// Uint32 is a 32-bit unsigned value.
type Uint32 uint32

func (v Uint32) EVMBytes() []byte {
	return minimalBytes(uint64(v))
}

// Uint64 is a 64-bit unsigned value.
type Uint64 uint64

func (v Uint64) EVMBytes() []byte {
	return minimalBytes(uint64(v))
}

// BigInt is an arbitrary-precision unsigned value, up to 256 bits.
// Wider values are caught as integer overflow at resolution time.
type BigInt struct {
	X *big.Int
}

func (v BigInt) EVMBytes() []byte {
	if v.X == nil || v.X.Sign() == 0 {
		return []byte{0x00}
	}
	return v.X.Bytes()
}

// Address is a 20-byte account address, rendered at full width.
type Address [20]byte

func (v Address) EVMBytes() []byte {
	out := make([]byte, len(v))
	copy(out, v[:])
	return out
}

// Word is a 32-byte machine word, rendered at full width.
type Word [32]byte

func (v Word) EVMBytes() []byte {
	out := make([]byte, len(v))
	copy(out, v[:])
	return out
}

// Raw is an arbitrary byte string, rendered as-is.
type Raw []byte

func (v Raw) EVMBytes() []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

func minimalBytes(v uint64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	out := make([]byte, 0, 8)
	for shift := 56; shift >= 0; shift -= 8 {
		b := byte(v >> shift)
		if len(out) == 0 && b == 0 {
			continue
		}
		out = append(out, b)
	}
	return out
}
