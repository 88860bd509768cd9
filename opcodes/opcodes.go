package opcodes

// JumpDest is the block-entry marker byte. Every named block starts with it
// so that resolved label offsets always land on a valid jump target.
const JumpDest byte = 0x5B

// Push1 is the first opcode of the contiguous push family. pushN = Push1 + N - 1.
const Push1 byte = 0x60

// MaxPushBytes is the widest immediate a push instruction can carry.
const MaxPushBytes = 32

// Lookup returns the byte for a mnemonic. Mnemonics are lowercase.
func Lookup(name string) (byte, bool) {
	b, ok := table[name]
	return b, ok
}

// Push returns the opcode that carries n immediate bytes, 1 <= n <= 32.
func Push(n int) byte {
	return Push1 + byte(n) - 1
}

// IsPush reports whether b is a member of the push family and, if so,
// how many immediate bytes follow it.
func IsPush(b byte) (int, bool) {
	if b >= Push1 && b < Push1+MaxPushBytes {
		return int(b-Push1) + 1, true
	}
	return 0, false
}

var table = map[string]byte{
	// Stop and arithmetic
	"stop":       0x00,
	"add":        0x01,
	"mul":        0x02,
	"sub":        0x03,
	"div":        0x04,
	"sdiv":       0x05,
	"mod":        0x06,
	"smod":       0x07,
	"addmod":     0x08,
	"mulmod":     0x09,
	"exp":        0x0A,
	"signextend": 0x0B,

	// Comparison and bitwise
	"lt":     0x10,
	"gt":     0x11,
	"slt":    0x12,
	"sgt":    0x13,
	"eq":     0x14,
	"iszero": 0x15,
	"and":    0x16,
	"or":     0x17,
	"xor":    0x18,
	"not":    0x19,
	"byte":   0x1A,
	"shl":    0x1B,
	"shr":    0x1C,
	"sar":    0x1D,

	// Hashing
	"keccak256": 0x20,
	"sha3":      0x20, // legacy alias

	// Environment
	"address":        0x30,
	"balance":        0x31,
	"origin":         0x32,
	"caller":         0x33,
	"callvalue":      0x34,
	"calldataload":   0x35,
	"calldatasize":   0x36,
	"calldatacopy":   0x37,
	"codesize":       0x38,
	"codecopy":       0x39,
	"gasprice":       0x3A,
	"extcodesize":    0x3B,
	"extcodecopy":    0x3C,
	"returndatasize": 0x3D,
	"returndatacopy": 0x3E,
	"extcodehash":    0x3F,

	// Block information
	"blockhash":   0x40,
	"coinbase":    0x41,
	"timestamp":   0x42,
	"number":      0x43,
	"prevrandao":  0x44,
	"difficulty":  0x44, // pre-merge alias
	"gaslimit":    0x45,
	"chainid":     0x46,
	"selfbalance": 0x47,
	"basefee":     0x48,
	"blobhash":    0x49,
	"blobbasefee": 0x4A,

	// Stack, memory, storage, flow
	"pop":      0x50,
	"mload":    0x51,
	"mstore":   0x52,
	"mstore8":  0x53,
	"sload":    0x54,
	"sstore":   0x55,
	"jump":     0x56,
	"jumpi":    0x57,
	"pc":       0x58,
	"msize":    0x59,
	"gas":      0x5A,
	"jumpdest": 0x5B,
	"tload":    0x5C,
	"tstore":   0x5D,
	"mcopy":    0x5E,
	"push0":    0x5F,

	// Pushes
	"push1":  0x60,
	"push2":  0x61,
	"push3":  0x62,
	"push4":  0x63,
	"push5":  0x64,
	"push6":  0x65,
	"push7":  0x66,
	"push8":  0x67,
	"push9":  0x68,
	"push10": 0x69,
	"push11": 0x6A,
	"push12": 0x6B,
	"push13": 0x6C,
	"push14": 0x6D,
	"push15": 0x6E,
	"push16": 0x6F,
	"push17": 0x70,
	"push18": 0x71,
	"push19": 0x72,
	"push20": 0x73,
	"push21": 0x74,
	"push22": 0x75,
	"push23": 0x76,
	"push24": 0x77,
	"push25": 0x78,
	"push26": 0x79,
	"push27": 0x7A,
	"push28": 0x7B,
	"push29": 0x7C,
	"push30": 0x7D,
	"push31": 0x7E,
	"push32": 0x7F,

	// Duplication
	"dup1":  0x80,
	"dup2":  0x81,
	"dup3":  0x82,
	"dup4":  0x83,
	"dup5":  0x84,
	"dup6":  0x85,
	"dup7":  0x86,
	"dup8":  0x87,
	"dup9":  0x88,
	"dup10": 0x89,
	"dup11": 0x8A,
	"dup12": 0x8B,
	"dup13": 0x8C,
	"dup14": 0x8D,
	"dup15": 0x8E,
	"dup16": 0x8F,

	// Exchange
	"swap1":  0x90,
	"swap2":  0x91,
	"swap3":  0x92,
	"swap4":  0x93,
	"swap5":  0x94,
	"swap6":  0x95,
	"swap7":  0x96,
	"swap8":  0x97,
	"swap9":  0x98,
	"swap10": 0x99,
	"swap11": 0x9A,
	"swap12": 0x9B,
	"swap13": 0x9C,
	"swap14": 0x9D,
	"swap15": 0x9E,
	"swap16": 0x9F,

	// Logging
	"log0": 0xA0,
	"log1": 0xA1,
	"log2": 0xA2,
	"log3": 0xA3,
	"log4": 0xA4,

	// System
	"create":       0xF0,
	"call":         0xF1,
	"callcode":     0xF2,
	"return":       0xF3,
	"delegatecall": 0xF4,
	"create2":      0xF5,
	"staticcall":   0xFA,
	"revert":       0xFD,
	"invalid":      0xFE,
	"selfdestruct": 0xFF,
}
