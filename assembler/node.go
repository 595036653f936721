package assembler

// NodeType says what the instruction part of a line turned out to be.
type NodeType int

const (
	// NodeEmpty has no instruction text. It may still carry a label or comment.
	NodeEmpty NodeType = iota
	// NodeInstruction type.
	NodeInstruction
	// NodeDirective type.
	NodeDirective
	// NodeDefinition type.
	NodeDefinition
	// NodeUnknown is instruction text that nothing recognised.
	NodeUnknown
)

var nodeTypeNames = map[NodeType]string{
	NodeEmpty:       "empty",
	NodeInstruction: "instruction",
	NodeDirective:   "directive",
	NodeDefinition:  "definition",
	NodeUnknown:     "unknown",
}

func (t NodeType) String() string {
	if s, ok := nodeTypeNames[t]; ok {
		return s
	}
	return "invalid"
}

// Node represents one parsed line of assembly source.
type Node struct {
	// LineNo counts from 1.
	LineNo int
	Source string
	Line   Line
	Type   NodeType

	// Only the field matching Type is set.
	Instruction Instruction
	Directive   Directive
	Definition  Definition

	// Err is the decode error for NodeUnknown.
	Err error
}

// Classify splits one source line and decides what its instruction text is.
// Instructions win over directives, directives over definitions.
func Classify(lineNo int, source string) *Node {
	n := &Node{
		LineNo: lineNo,
		Source: source,
		Line:   Split(source),
	}
	if !n.Line.HasInstruction() {
		return n
	}

	text := n.Line.Instruction
	ins, err := Decode(text)
	if err == nil {
		n.Type = NodeInstruction
		n.Instruction = ins
		return n
	}

	if d, ok := ParseDirective(text); ok {
		n.Type = NodeDirective
		n.Directive = d
		return n
	}

	if d, ok := ParseDefinition(text); ok {
		n.Type = NodeDefinition
		n.Definition = d
		return n
	}

	n.Type = NodeUnknown
	n.Err = err
	return n
}
