package asm

import (
	"math/bits"

	"go.uber.org/zap"

	"github.com/wippyai/emasm/errors"
	"github.com/wippyai/emasm/opcodes"
)

// maxRounds bounds the fixed-point loop. A tree whose offsets still move
// after this many full re-derivations is oscillating, not converging.
// Variable so tests can exercise the non-convergence path.
var maxRounds = 100

// maxDepth bounds block nesting so that the recursive walks cannot blow the
// goroutine stack on adversarial input.
const maxDepth = 1024

// unresolvedRefWidth is the payload-byte estimate for a reference whose
// target has not been seen yet in the current walk. Two bytes covers any
// program up to 64 KiB, so a forward reference rarely has to grow later.
const unresolvedRefWidth = 2

// LabelInfo is the resolved position of a named block and the payload width
// of the push instruction used to reference it.
type LabelInfo struct {
	Offset   int
	RefWidth int
}

// BytesInfo is the resolved position and length of a named raw-data region.
type BytesInfo struct {
	Offset int
	Size   int
}

// Layout is a converged offset assignment for a whole tree. Re-deriving a
// Layout from itself reproduces it unchanged.
type Layout struct {
	Labels map[string]LabelInfo
	Data   map[string]BytesInfo
}

// Resolve computes a stable Layout for the tree. It fails if the tree still
// contains placeholders, defines a name twice, nests too deeply, or does
// not converge within the round cap.
func Resolve(elements []Element) (*Layout, error) {
	if err := checkTree(elements); err != nil {
		return nil, err
	}

	layout := &Layout{
		Labels: make(map[string]LabelInfo),
		Data:   make(map[string]BytesInfo),
	}

	// Initial sizing pass populates provisional offsets.
	layout.walk(elements, 0)

	for round := 0; round < maxRounds; round++ {
		prevLabels := snapshotLabels(layout.Labels)
		prevData := snapshotData(layout.Data)

		end := layout.walk(elements, 0)

		if labelsEqual(prevLabels, layout.Labels) && dataEqual(prevData, layout.Data) {
			Logger().Debug("offsets converged",
				zap.Int("rounds", round+1),
				zap.Int("labels", len(layout.Labels)),
				zap.Int("size", end))
			return layout, nil
		}
	}

	return nil, errors.CircularDependency(maxRounds)
}

// checkTree validates the tree before resolution: no live placeholders, no
// duplicate names across the flat namespace, bounded nesting, and no literal
// wider than the largest push.
func checkTree(elements []Element) error {
	return walkNames(elements, 0, make(map[string]struct{}))
}

func walkNames(elements []Element, depth int, seen map[string]struct{}) error {
	if depth > maxDepth {
		return errors.NestingTooDeep(errors.PhaseResolve, maxDepth)
	}
	for _, el := range elements {
		switch e := el.(type) {
		case Block:
			if _, dup := seen[e.Name]; dup {
				return errors.DuplicateLabel(errors.PhaseResolve, e.Name)
			}
			seen[e.Name] = struct{}{}
			if err := walkNames(e.Body, depth+1, seen); err != nil {
				return err
			}
		case RawData:
			if _, dup := seen[e.Name]; dup {
				return errors.DuplicateLabel(errors.PhaseResolve, e.Name)
			}
			seen[e.Name] = struct{}{}
		case Lit:
			if len(trimZeros(e.Data)) > opcodes.MaxPushBytes {
				return errors.IntegerOverflow(errors.PhaseResolve, len(trimZeros(e.Data)))
			}
		case Placeholder:
			return errors.InvalidPlaceholder(errors.PhaseResolve, e.Index)
		}
	}
	return nil
}

// walk is the single canonical sizing pass. It re-derives every block and
// data offset from the current Layout, reading the maps for reference widths
// as it goes, and returns the total size. The encoder walk must mirror it
// exactly.
func (l *Layout) walk(elements []Element, offset int) int {
	for _, el := range elements {
		switch e := el.(type) {
		case Block:
			l.Labels[e.Name] = LabelInfo{
				Offset:   offset,
				RefWidth: pushWidth(uint64(offset)),
			}
			offset = l.walk(e.Body, offset+1) // +1 for the jumpdest marker
		case RawData:
			l.Data[e.Name] = BytesInfo{Offset: offset, Size: len(e.Data)}
			offset += len(e.Data)
		default:
			offset += l.elementSize(el)
		}
	}
	return offset
}

// elementSize is the size of a leaf element given current knowledge. Blocks
// and raw data are handled inline by walk because they update the maps.
func (l *Layout) elementSize(el Element) int {
	switch e := el.(type) {
	case Op:
		return 1
	case Lit:
		return 1 + litWidth(e.Data)
	case LabelRef:
		if info, ok := l.Labels[e.Name]; ok {
			return 1 + info.RefWidth
		}
		return 1 + unresolvedRefWidth
	case DataPtr:
		if info, ok := l.Data[e.Name]; ok {
			return 1 + pushWidth(uint64(info.Offset))
		}
		return 1 + unresolvedRefWidth
	case DataSize:
		if info, ok := l.Data[e.Name]; ok {
			return 1 + pushWidth(uint64(info.Size))
		}
		return 1 + unresolvedRefWidth
	case Placeholder:
		return 1 + unresolvedRefWidth
	}
	return 0
}

// pushWidth is the payload byte count of a minimal push of v. Zero needs one
// byte: the push instruction always carries at least one payload byte.
func pushWidth(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 7) / 8
}

// litWidth is the payload byte count of a minimal push of a literal.
func litWidth(data []byte) int {
	trimmed := trimZeros(data)
	if len(trimmed) == 0 {
		return 1
	}
	return len(trimmed)
}

func snapshotLabels(m map[string]LabelInfo) map[string]LabelInfo {
	out := make(map[string]LabelInfo, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func snapshotData(m map[string]BytesInfo) map[string]BytesInfo {
	out := make(map[string]BytesInfo, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func labelsEqual(a, b map[string]LabelInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func dataEqual(a, b map[string]BytesInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
