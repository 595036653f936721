package listing

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Urethramancer/asm65/assembler"
)

// kindWidth is the visible width of the record kind column.
const kindWidth = len("instruction")

// Colours for each kind of record.
var (
	colourLabel      = text.Colors{text.FgGreen}
	colourInstr      = text.Colors{text.FgCyan}
	colourDirective  = text.Colors{text.FgYellow}
	colourDefinition = text.Colors{text.FgMagenta}
	colourUnknown    = text.Colors{text.FgRed, text.Bold}
	colourComment    = text.Colors{text.FgHiBlack}
)

// Printer writes one record per line part, optionally coloured.
// It implements Sink; each callback writes one record.
type Printer struct {
	w      io.Writer
	colour bool
	err    error

	// Verbose adds the addressing mode, payload and a description to instructions.
	Verbose bool
}

// NewPrinter creates a Printer writing to w.
// Colour is decided by the caller alone; NO_COLOR is not consulted here.
func NewPrinter(w io.Writer, colour bool) *Printer {
	return &Printer{w: w, colour: colour}
}

// Err returns the first write error, if any. Later records are dropped after a failure.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) record(lineNo int, kind string, colours text.Colors, s string) {
	if p.err != nil {
		return
	}
	if p.colour {
		kind = text.Escape(kind, colours.EscapeSeq())
	}
	// Pad skips escape sequences when measuring.
	kind = text.Pad(kind, kindWidth, ' ')
	_, p.err = fmt.Fprintf(p.w, "%5d  %s %s\n", lineNo, kind, s)
}

// Label records a label definition.
func (p *Printer) Label(lineNo int, name string) {
	p.record(lineNo, "label", colourLabel, strconv.Quote(name))
}

// Instruction records a decoded instruction in canonical form.
func (p *Printer) Instruction(lineNo int, ins assembler.Instruction) {
	s := ins.String()
	if p.Verbose {
		s = fmt.Sprintf("%-20s %s %q  (%s)", s, ins.Operand.Mode, ins.Operand.Expr, ins.Mnemonic.Description())
	}
	p.record(lineNo, "instruction", colourInstr, s)
}

// Directive records a directive with its raw arguments.
func (p *Printer) Directive(lineNo int, d assembler.Directive) {
	p.record(lineNo, "directive", colourDirective, d.String())
}

// Definition records a name = expression line.
func (p *Printer) Definition(lineNo int, d assembler.Definition) {
	p.record(lineNo, "definition", colourDefinition, d.String())
}

// Unknown records instruction text that did not decode, with the error.
func (p *Printer) Unknown(lineNo int, s string, err error) {
	p.record(lineNo, "unknown", colourUnknown, fmt.Sprintf("%s (%v)", s, err))
}

// Comment records comment text verbatim, quoted.
func (p *Printer) Comment(lineNo int, s string) {
	p.record(lineNo, "comment", colourComment, strconv.Quote(s))
}

// Summary prints the totals from Report.
func (p *Printer) Summary(st Stats) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%d lines: %d labels, %d instructions, %d directives, %d definitions, %d unknown, %d comments\n",
		st.Lines, st.Labels, st.Instructions, st.Directives, st.Definitions, st.Unknown, st.Comments)
}
