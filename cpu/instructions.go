package cpu

import "strings"

// Mnemonic identifies one of the documented NMOS 6502 operations.
type Mnemonic uint8

// The 56 documented operations, in alphabetical order.
const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	mnemonicCount
)

type mnemonicInfo struct {
	name string
	desc string
}

var mnemonics = [mnemonicCount]mnemonicInfo{
	ADC: {"ADC", "add with carry"},
	AND: {"AND", "and with accumulator"},
	ASL: {"ASL", "arithmetic shift left"},
	BCC: {"BCC", "branch on carry clear"},
	BCS: {"BCS", "branch on carry set"},
	BEQ: {"BEQ", "branch on equal"},
	BIT: {"BIT", "bit test"},
	BMI: {"BMI", "branch on minus"},
	BNE: {"BNE", "branch on not equal"},
	BPL: {"BPL", "branch on plus"},
	BRK: {"BRK", "break"},
	BVC: {"BVC", "branch on overflow clear"},
	BVS: {"BVS", "branch on overflow set"},
	CLC: {"CLC", "clear carry"},
	CLD: {"CLD", "clear decimal"},
	CLI: {"CLI", "clear interrupt disable"},
	CLV: {"CLV", "clear overflow"},
	CMP: {"CMP", "compare with accumulator"},
	CPX: {"CPX", "compare with X"},
	CPY: {"CPY", "compare with Y"},
	DEC: {"DEC", "decrement"},
	DEX: {"DEX", "decrement X"},
	DEY: {"DEY", "decrement Y"},
	EOR: {"EOR", "exclusive or with accumulator"},
	INC: {"INC", "increment"},
	INX: {"INX", "increment X"},
	INY: {"INY", "increment Y"},
	JMP: {"JMP", "jump"},
	JSR: {"JSR", "jump to subroutine"},
	LDA: {"LDA", "load accumulator"},
	LDX: {"LDX", "load X"},
	LDY: {"LDY", "load Y"},
	LSR: {"LSR", "logical shift right"},
	NOP: {"NOP", "no operation"},
	ORA: {"ORA", "or with accumulator"},
	PHA: {"PHA", "push accumulator"},
	PHP: {"PHP", "push processor status"},
	PLA: {"PLA", "pull accumulator"},
	PLP: {"PLP", "pull processor status"},
	ROL: {"ROL", "rotate left"},
	ROR: {"ROR", "rotate right"},
	RTI: {"RTI", "return from interrupt"},
	RTS: {"RTS", "return from subroutine"},
	SBC: {"SBC", "subtract with carry"},
	SEC: {"SEC", "set carry"},
	SED: {"SED", "set decimal"},
	SEI: {"SEI", "set interrupt disable"},
	STA: {"STA", "store accumulator"},
	STX: {"STX", "store X"},
	STY: {"STY", "store Y"},
	TAX: {"TAX", "transfer accumulator to X"},
	TAY: {"TAY", "transfer accumulator to Y"},
	TSX: {"TSX", "transfer stack pointer to X"},
	TXA: {"TXA", "transfer X to accumulator"},
	TXS: {"TXS", "transfer X to stack pointer"},
	TYA: {"TYA", "transfer Y to accumulator"},
}

// byName is keyed by the upper-case name.
var byName = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, mnemonicCount)
	for i := range mnemonics {
		m[mnemonics[i].name] = Mnemonic(i)
	}
	return m
}()

// LookupMnemonic finds the operation named by s, ignoring case.
// Only exact three-letter names match.
func LookupMnemonic(s string) (Mnemonic, bool) {
	if len(s) != 3 {
		return 0, false
	}
	m, ok := byName[strings.ToUpper(s)]
	return m, ok
}

// Mnemonics returns every operation in table order.
func Mnemonics() []Mnemonic {
	list := make([]Mnemonic, mnemonicCount)
	for i := range list {
		list[i] = Mnemonic(i)
	}
	return list
}

// Valid reports whether m is one of the 56 operations.
func (m Mnemonic) Valid() bool {
	return m < mnemonicCount
}

// String returns the canonical upper-case name.
func (m Mnemonic) String() string {
	if !m.Valid() {
		return "???"
	}
	return mnemonics[m].name
}

// Description is a short English summary of what the operation does.
func (m Mnemonic) Description() string {
	if !m.Valid() {
		return ""
	}
	return mnemonics[m].desc
}
