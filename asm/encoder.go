package asm

import (
	"encoding/binary"

	"github.com/wippyai/emasm/errors"
	"github.com/wippyai/emasm/opcodes"
)

// Buffer accumulates emitted bytecode.
type Buffer struct {
	Bytes []byte
}

func (b *Buffer) AppendByte(v byte) {
	b.Bytes = append(b.Bytes, v)
}

func (b *Buffer) WriteBytes(v []byte) {
	b.Bytes = append(b.Bytes, v...)
}

// WritePushData writes a minimal-width push of a literal. Leading zero bytes
// are trimmed; the all-zero case emits push1 0x00 rather than a zero-length
// push.
func (b *Buffer) WritePushData(data []byte) error {
	trimmed := trimZeros(data)
	if len(trimmed) == 0 {
		b.AppendByte(opcodes.Push(1))
		b.AppendByte(0x00)
		return nil
	}
	if len(trimmed) > opcodes.MaxPushBytes {
		return errors.IntegerOverflow(errors.PhaseEncode, len(trimmed))
	}
	b.AppendByte(opcodes.Push(len(trimmed)))
	b.WriteBytes(trimmed)
	return nil
}

// WritePushValue writes a minimal-width push of an unsigned value.
func (b *Buffer) WritePushValue(v uint64) {
	var be [8]byte
	binary.BigEndian.PutUint64(be[:], v)
	// Cannot overflow: eight bytes always fit a push.
	_ = b.WritePushData(be[:])
}

// Encode emits the final byte sequence for a placeholder-free tree using a
// converged Layout. The walk mirrors Layout.walk exactly; any divergence
// between the two is a correctness bug. No partial output is returned on
// failure.
func Encode(elements []Element, layout *Layout) ([]byte, error) {
	buf := &Buffer{}
	if err := encode(buf, elements, layout); err != nil {
		return nil, err
	}
	return buf.Bytes, nil
}

func encode(buf *Buffer, elements []Element, layout *Layout) error {
	for _, el := range elements {
		switch e := el.(type) {
		case Op:
			code, ok := opcodes.Lookup(e.Name)
			if !ok {
				return errors.UnknownOpcode(errors.PhaseEncode, e.Name)
			}
			buf.AppendByte(code)

		case Lit:
			if err := buf.WritePushData(e.Data); err != nil {
				return err
			}

		case Block:
			buf.AppendByte(opcodes.JumpDest)
			if err := encode(buf, e.Body, layout); err != nil {
				return err
			}

		case RawData:
			buf.WriteBytes(e.Data)

		case LabelRef:
			info, ok := layout.Labels[e.Name]
			if !ok {
				return errors.LabelNotFound(errors.PhaseEncode, e.Name)
			}
			buf.WritePushValue(uint64(info.Offset))

		case DataPtr:
			info, ok := layout.Data[e.Name]
			if !ok {
				return errors.LabelNotFound(errors.PhaseEncode, e.Name)
			}
			buf.WritePushValue(uint64(info.Offset))

		case DataSize:
			info, ok := layout.Data[e.Name]
			if !ok {
				return errors.LabelNotFound(errors.PhaseEncode, e.Name)
			}
			buf.WritePushValue(uint64(info.Size))

		case Placeholder:
			return errors.InvalidPlaceholder(errors.PhaseEncode, e.Index)
		}
	}
	return nil
}
