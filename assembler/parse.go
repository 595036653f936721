package assembler

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Urethramancer/asm65/cpu"
)

// ErrUnknownMnemonic is returned when instruction text does not start with a known operation.
var ErrUnknownMnemonic = errors.New("unknown mnemonic")

// Operand is an addressing mode and its address expression.
// Expr is left unevaluated and is empty for ModeImplicit and ModeAccumulator.
type Operand struct {
	Mode cpu.Mode
	Expr string
}

// String renders the operand in canonical syntax.
func (o Operand) String() string {
	switch o.Mode {
	case cpu.ModeImplicit:
		return ""
	case cpu.ModeAccumulator:
		return "A"
	case cpu.ModeImmediate:
		return "#" + o.Expr
	case cpu.ModeIndexedX:
		return o.Expr + ",X"
	case cpu.ModeIndexedY:
		return o.Expr + ",Y"
	case cpu.ModeIndirectX:
		return "(" + o.Expr + ",X)"
	case cpu.ModeIndirectY:
		return "(" + o.Expr + "),Y"
	case cpu.ModeIndirect:
		return "(" + o.Expr + ")"
	default:
		return o.Expr
	}
}

// Instruction is a decoded operation with its operand.
type Instruction struct {
	Mnemonic cpu.Mnemonic
	Operand  Operand
}

// String renders the instruction as "LDA ($24),Y".
func (i Instruction) String() string {
	op := i.Operand.String()
	if op == "" {
		return i.Mnemonic.String()
	}
	return i.Mnemonic.String() + " " + op
}

// Decode splits instruction text into its operation and operand.
// Only the mnemonic can fail to decode; any operand text is accepted,
// with unrecognised shapes falling through to ModeDirect.
func Decode(text string) (Instruction, error) {
	text = strings.TrimSpace(text)
	if len(text) < 3 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownMnemonic, text)
	}

	mn, ok := cpu.LookupMnemonic(text[:3])
	if !ok {
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownMnemonic, text[:3])
	}

	// The operand starts after the mnemonic and one separator character.
	var operand string
	if len(text) > 3 {
		_, size := utf8.DecodeRuneInString(text[3:])
		operand = text[3+size:]
	}

	return Instruction{Mnemonic: mn, Operand: ParseOperand(operand)}, nil
}

// ParseOperand classifies operand text into an addressing mode. It never fails.
func ParseOperand(s string) Operand {
	for _, sh := range shapes {
		if expr, ok := sh.match(s); ok {
			return Operand{Mode: sh.mode, Expr: expr}
		}
	}
	return Operand{Mode: cpu.ModeDirect, Expr: s}
}

// shape pairs an addressing mode with the predicate recognising it.
// The predicate returns the address expression when it matches.
type shape struct {
	mode  cpu.Mode
	match func(s string) (string, bool)
}

// shapes is tried in order and the first match wins. Parenthesised forms come
// before the bare indexed forms so "(a),y" is never read as "(a)" indexed by Y.
var shapes = []shape{
	{cpu.ModeImplicit, tryImplicit},
	{cpu.ModeAccumulator, tryAccumulator},
	{cpu.ModeImmediate, tryImmediate},
	{cpu.ModeIndirectX, tryIndirectX},
	{cpu.ModeIndirectY, tryIndirectY},
	{cpu.ModeIndirect, tryIndirect},
	{cpu.ModeIndexedX, tryIndexedX},
	{cpu.ModeIndexedY, tryIndexedY},
	{cpu.ModeDirect, tryDirect},
}

func tryImplicit(s string) (string, bool) {
	return "", s == ""
}

func tryAccumulator(s string) (string, bool) {
	return "", s == "A"
}

// tryImmediate handles #expr.
func tryImmediate(s string) (string, bool) {
	if strings.HasPrefix(s, "#") {
		return s[1:], true
	}
	return "", false
}

// tryIndirectX handles (expr,x).
func tryIndirectX(s string) (string, bool) {
	if !strings.HasPrefix(s, "(") {
		return "", false
	}
	if inner, ok := cutIndex(s, ",x)", ",X)"); ok {
		return inner[1:], true
	}
	return "", false
}

// tryIndirectY handles (expr),y.
func tryIndirectY(s string) (string, bool) {
	if !strings.HasPrefix(s, "(") {
		return "", false
	}
	if inner, ok := cutIndex(s, "),y", "),Y"); ok {
		return inner[1:], true
	}
	return "", false
}

// tryIndirect handles (expr).
func tryIndirect(s string) (string, bool) {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return s[1 : len(s)-1], true
	}
	return "", false
}

// tryIndexedX handles expr,x.
func tryIndexedX(s string) (string, bool) {
	return cutIndex(s, ",x", ",X")
}

// tryIndexedY handles expr,y.
func tryIndexedY(s string) (string, bool) {
	return cutIndex(s, ",y", ",Y")
}

func tryDirect(s string) (string, bool) {
	return s, true
}

// cutIndex removes whichever of the two suffixes s ends with.
func cutIndex(s, lower, upper string) (string, bool) {
	if rest, ok := strings.CutSuffix(s, lower); ok {
		return rest, true
	}
	return strings.CutSuffix(s, upper)
}
