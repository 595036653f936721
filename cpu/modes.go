package cpu

// Mode is the syntactic shape of an operand.
type Mode uint8

// Addressing modes
const (
	// ModeImplicit has no operand: NOP
	ModeImplicit Mode = iota

	// ModeAccumulator operates on the accumulator: ASL A
	ModeAccumulator

	// ModeImmediate carries a literal value: LDA #expr
	ModeImmediate

	// ModeDirect addresses memory (zero page, absolute or branch target): LDA expr
	ModeDirect

	// ModeIndexedX adds X to the address: LDA expr,X
	ModeIndexedX

	// ModeIndexedY adds Y to the address: LDA expr,Y
	ModeIndexedY

	// ModeIndirectX is pre-indexed indirect: LDA (expr,X)
	ModeIndirectX

	// ModeIndirectY is post-indexed indirect: LDA (expr),Y
	ModeIndirectY

	// ModeIndirect dereferences the address: JMP (expr)
	ModeIndirect

	modeCount
)

var modeNames = [modeCount]string{
	ModeImplicit:    "Implicit",
	ModeAccumulator: "Accumulator",
	ModeImmediate:   "Immediate",
	ModeDirect:      "Direct",
	ModeIndexedX:    "IndexedByX",
	ModeIndexedY:    "IndexedByY",
	ModeIndirectX:   "IndirectByX",
	ModeIndirectY:   "IndirectByY",
	ModeIndirect:    "Indirect",
}

// Modes returns every addressing mode in declaration order.
func Modes() []Mode {
	list := make([]Mode, modeCount)
	for i := range list {
		list[i] = Mode(i)
	}
	return list
}

func (m Mode) String() string {
	if m >= modeCount {
		return "Unknown"
	}
	return modeNames[m]
}

// HasOperand reports whether the mode carries an address expression.
func (m Mode) HasOperand() bool {
	return m != ModeImplicit && m != ModeAccumulator && m < modeCount
}
