// Package listing turns parsed source back into text and walks parsed nodes
// for anything that wants to display or collect them.
package listing

import (
	"strings"

	"github.com/Urethramancer/asm65/assembler"
)

// LabelWidth is the column where instruction text starts in formatted output.
const LabelWidth = 8

// Sink receives the parts of each line in source order: the label first,
// then whatever the instruction text decoded to, then the comment.
type Sink interface {
	Label(lineNo int, name string)
	Instruction(lineNo int, ins assembler.Instruction)
	Directive(lineNo int, d assembler.Directive)
	Definition(lineNo int, d assembler.Definition)
	Unknown(lineNo int, text string, err error)
	Comment(lineNo int, text string)
}

// Stats counts what Report passed to its sink.
type Stats struct {
	Lines        int
	Labels       int
	Instructions int
	Directives   int
	Definitions  int
	Unknown      int
	Comments     int
}

// Report walks nodes and hands every part of every line to sink.
func Report(nodes []*assembler.Node, sink Sink) Stats {
	var st Stats
	for _, n := range nodes {
		st.Lines++
		if n.Line.HasLabel {
			st.Labels++
			sink.Label(n.LineNo, n.Line.Label)
		}

		switch n.Type {
		case assembler.NodeInstruction:
			st.Instructions++
			sink.Instruction(n.LineNo, n.Instruction)
		case assembler.NodeDirective:
			st.Directives++
			sink.Directive(n.LineNo, n.Directive)
		case assembler.NodeDefinition:
			st.Definitions++
			sink.Definition(n.LineNo, n.Definition)
		case assembler.NodeUnknown:
			st.Unknown++
			sink.Unknown(n.LineNo, n.Line.Instruction, n.Err)
		}

		if n.Line.HasComment {
			st.Comments++
			sink.Comment(n.LineNo, n.Line.Comment)
		}
	}
	return st
}

// Body returns the canonical text of whatever the line's instruction part decoded to.
// Unknown text is returned as written.
func Body(n *assembler.Node) string {
	switch n.Type {
	case assembler.NodeInstruction:
		return n.Instruction.String()
	case assembler.NodeDirective:
		return n.Directive.String()
	case assembler.NodeDefinition:
		return n.Definition.String()
	case assembler.NodeUnknown:
		return n.Line.Instruction
	default:
		return ""
	}
}

// Format renders a node as a tidy source line: label, body aligned at
// LabelWidth, then the comment exactly as it was written.
func Format(n *assembler.Node) string {
	var sb strings.Builder
	if n.Line.HasLabel {
		sb.WriteString(n.Line.Label)
		sb.WriteByte(':')
	}

	if body := Body(n); body != "" {
		sb.WriteString(strings.Repeat(" ", max(LabelWidth-sb.Len(), 1)))
		sb.WriteString(body)
	}

	if n.Line.HasComment {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(';')
		sb.WriteString(n.Line.Comment)
	}
	return sb.String()
}
