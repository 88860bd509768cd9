package asm

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/emasm/errors"
)

func TestResolveSimpleBlock(t *testing.T) {
	// push <t> jump (block $t stop)
	tree := []Element{
		LabelRef{Name: "t"},
		Op{Name: "jump"},
		Block{Name: "t", Body: []Element{Op{Name: "stop"}}},
	}

	layout, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	info, ok := layout.Labels["t"]
	if !ok {
		t.Fatal("label t not resolved")
	}
	// push1 XX (2 bytes) + jump (1 byte) puts the jumpdest at offset 3.
	if info.Offset != 3 {
		t.Errorf("offset = %d, want 3", info.Offset)
	}
	if info.RefWidth != 1 {
		t.Errorf("refWidth = %d, want 1", info.RefWidth)
	}
}

func TestResolveSelfReference(t *testing.T) {
	// (block $loop push <loop> jump)
	tree := []Element{
		Block{Name: "loop", Body: []Element{
			LabelRef{Name: "loop"},
			Op{Name: "jump"},
		}},
	}

	layout, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if layout.Labels["loop"].Offset != 0 {
		t.Errorf("offset = %d, want 0", layout.Labels["loop"].Offset)
	}
	if layout.Labels["loop"].RefWidth != 1 {
		t.Errorf("refWidth = %d, want 1", layout.Labels["loop"].RefWidth)
	}
}

func TestResolveRawData(t *testing.T) {
	tree := []Element{
		DataPtr{Name: "table"},
		DataSize{Name: "table"},
		Op{Name: "codecopy"},
		RawData{Name: "table", Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
	}

	layout, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	info, ok := layout.Data["table"]
	if !ok {
		t.Fatal("data region not resolved")
	}
	// push1 ptr (2) + push1 size (2) + codecopy (1) = 5
	if info.Offset != 5 {
		t.Errorf("offset = %d, want 5", info.Offset)
	}
	if info.Size != 4 {
		t.Errorf("size = %d, want 4", info.Size)
	}
}

func TestResolveWidthGrowth(t *testing.T) {
	// Pad the program past 255 bytes so the label reference needs a
	// two-byte push payload.
	var tree []Element
	tree = append(tree, LabelRef{Name: "far"}, Op{Name: "jump"})
	for i := 0; i < 300; i++ {
		tree = append(tree, Op{Name: "stop"})
	}
	tree = append(tree, Block{Name: "far", Body: []Element{Op{Name: "stop"}}})

	layout, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	info := layout.Labels["far"]
	// push2 (3 bytes) + jump (1) + 300 stops
	if info.Offset != 304 {
		t.Errorf("offset = %d, want 304", info.Offset)
	}
	if info.RefWidth != 2 {
		t.Errorf("refWidth = %d, want 2", info.RefWidth)
	}
}

func TestResolveDuplicateName(t *testing.T) {
	tests := []struct {
		name string
		tree []Element
	}{
		{"two blocks", []Element{
			Block{Name: "a"},
			Block{Name: "a"},
		}},
		{"block and data", []Element{
			Block{Name: "a"},
			RawData{Name: "a", Data: []byte{1}},
		}},
		{"nested block", []Element{
			Block{Name: "a", Body: []Element{
				Block{Name: "a"},
			}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.tree)
			target := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindDuplicateLabel}
			if !stderrors.Is(err, target) {
				t.Errorf("err = %v, want duplicate_label", err)
			}
		})
	}
}

func TestResolveLivePlaceholder(t *testing.T) {
	_, err := Resolve([]Element{Placeholder{Index: 0}})
	target := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindInvalidPlaceholder}
	if !stderrors.Is(err, target) {
		t.Errorf("err = %v, want invalid_placeholder", err)
	}
}

func TestResolveNestingTooDeep(t *testing.T) {
	tree := []Element{Op{Name: "stop"}}
	for i := 0; i <= maxDepth; i++ {
		tree = []Element{Block{Name: blockName(i), Body: tree}}
	}

	_, err := Resolve(tree)
	target := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindNestingTooDeep}
	if !stderrors.Is(err, target) {
		t.Errorf("err = %v, want nesting_too_deep", err)
	}
}

func TestResolveOverwideLiteral(t *testing.T) {
	_, err := Resolve([]Element{Lit{Data: make33()}})
	target := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindIntegerOverflow}
	if !stderrors.Is(err, target) {
		t.Errorf("err = %v, want integer_overflow", err)
	}
}

func TestResolveRoundCap(t *testing.T) {
	// Force the cap below what a forward reference needs so the bounded
	// loop reports non-convergence instead of running on.
	saved := maxRounds
	maxRounds = 0
	defer func() { maxRounds = saved }()

	tree := []Element{
		LabelRef{Name: "t"},
		Block{Name: "t"},
	}
	_, err := Resolve(tree)
	target := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindCircularDependency}
	if !stderrors.Is(err, target) {
		t.Errorf("err = %v, want circular_dependency", err)
	}
}

func TestResolveAdversarialBoundary(t *testing.T) {
	// A reference whose own width straddles the 256-byte threshold: 253
	// bytes of padding mean the block lands at 255 with a one-byte payload
	// and at 256 with a two-byte payload. Both are self-consistent; the
	// resolver must settle on one within the cap rather than flip-flop.
	var tree []Element
	tree = append(tree, LabelRef{Name: "x"}, Op{Name: "jump"})
	for i := 0; i < 252; i++ {
		tree = append(tree, Op{Name: "stop"})
	}
	tree = append(tree, Block{Name: "x"})

	layout, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	info := layout.Labels["x"]
	if info.RefWidth != pushWidth(uint64(info.Offset)) {
		t.Errorf("width %d inconsistent with offset %d", info.RefWidth, info.Offset)
	}
}

func TestPushWidth(t *testing.T) {
	tests := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
		{1 << 24, 4},
		{1<<64 - 1, 8},
	}
	for _, tt := range tests {
		if got := pushWidth(tt.v); got != tt.want {
			t.Errorf("pushWidth(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	tree := []Element{
		LabelRef{Name: "a"},
		Block{Name: "a", Body: []Element{
			LabelRef{Name: "b"},
			Op{Name: "jump"},
		}},
		Block{Name: "b", Body: []Element{Op{Name: "stop"}}},
		RawData{Name: "d", Data: []byte{1, 2, 3}},
		DataPtr{Name: "d"},
	}

	first, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := Resolve(tree)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !labelsEqual(first.Labels, second.Labels) || !dataEqual(first.Data, second.Data) {
		t.Error("two resolutions of the same tree differ")
	}
}

func blockName(i int) string {
	const digits = "0123456789"
	if i == 0 {
		return "b0"
	}
	var buf []byte
	for i > 0 {
		buf = append([]byte{digits[i%10]}, buf...)
		i /= 10
	}
	return "b" + string(buf)
}

func make33() []byte {
	out := make([]byte, 33)
	for i := range out {
		out[i] = 0xFF
	}
	return out
}
