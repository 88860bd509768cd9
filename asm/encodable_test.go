package asm

import (
	"bytes"
	"math/big"
	"testing"
)

func TestNumericEncodables(t *testing.T) {
	tests := []struct {
		name string
		v    Encodable
		want []byte
	}{
		{"u8 zero", Uint8(0), []byte{0x00}},
		{"u8", Uint8(0xAB), []byte{0xAB}},
		{"u16 zero", Uint16(0), []byte{0x00}},
		{"u16 small", Uint16(0x7F), []byte{0x7F}},
		{"u16 full", Uint16(0xBEEF), []byte{0xBE, 0xEF}},
		{"u32 zero", Uint32(0), []byte{0x00}},
		{"u32 trimmed", Uint32(0x0001_0000), []byte{0x01, 0x00, 0x00}},
		{"u64 zero", Uint64(0), []byte{0x00}},
		{"u64 full", Uint64(0x1122334455667788), []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}},
		{"u64 trimmed", Uint64(0x0102), []byte{0x01, 0x02}},
		{"big zero", BigInt{X: big.NewInt(0)}, []byte{0x00}},
		{"big nil", BigInt{}, []byte{0x00}},
		{"big small", BigInt{X: big.NewInt(300)}, []byte{0x01, 0x2C}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.EVMBytes(); !bytes.Equal(got, tt.want) {
				t.Errorf("EVMBytes() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestBigEncodable256Bit(t *testing.T) {
	x := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	got := BigInt{X: x}.EVMBytes()
	if len(got) != 32 {
		t.Fatalf("len = %d, want 32", len(got))
	}
	for i, b := range got {
		if b != 0xFF {
			t.Errorf("byte %d = 0x%02X, want 0xFF", i, b)
		}
	}
}

func TestFixedWidthEncodables(t *testing.T) {
	t.Run("address keeps leading zeros", func(t *testing.T) {
		var a Address
		a[19] = 0x01
		got := a.EVMBytes()
		if len(got) != 20 {
			t.Fatalf("len = %d, want 20", len(got))
		}
		if got[0] != 0 || got[19] != 0x01 {
			t.Errorf("bytes = %x", got)
		}
	})

	t.Run("word keeps leading zeros", func(t *testing.T) {
		var w Word
		w[31] = 0x01
		got := w.EVMBytes()
		if len(got) != 32 {
			t.Fatalf("len = %d, want 32", len(got))
		}
	})

	t.Run("raw passes through", func(t *testing.T) {
		r := Raw{0x00, 0x01, 0x02}
		got := r.EVMBytes()
		if !bytes.Equal(got, []byte{0x00, 0x01, 0x02}) {
			t.Errorf("bytes = %x", got)
		}
	})

	t.Run("raw copies", func(t *testing.T) {
		r := Raw{1, 2, 3}
		got := r.EVMBytes()
		got[0] = 9
		if r[0] != 1 {
			t.Error("EVMBytes shares backing array with Raw")
		}
	})
}
