package assembler

import "strings"

// Line holds the three optional parts of one source line.
// Each part is a slice of the original text.
type Line struct {
	// Label is the text before the label colon, trimmed. Only meaningful when HasLabel is set;
	// an empty Label with HasLabel set means the line started with a bare colon.
	Label string
	// Instruction is the text between the label and the comment, trimmed. Empty means none.
	Instruction string
	// Comment is everything after the first semicolon, untouched.
	Comment string

	HasLabel   bool
	HasComment bool
}

// HasInstruction reports whether there is anything between the label and the comment.
func (l Line) HasInstruction() bool {
	return l.Instruction != ""
}

// String rebuilds the meaningful content of the line.
func (l Line) String() string {
	var sb strings.Builder
	if l.HasLabel {
		sb.WriteString(l.Label)
		sb.WriteByte(':')
	}
	if l.HasInstruction() {
		if l.HasLabel {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.Instruction)
	}
	if l.HasComment {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(';')
		sb.WriteString(l.Comment)
	}
	return sb.String()
}

// Split breaks a source line into label, instruction and comment. It never fails.
//
// The comment starts after the first ';' and is kept verbatim, leading and
// trailing blanks included. The label is whatever precedes the first ':' found
// before that semicolon. Colons inside the comment are plain text.
//
// Operands containing a colon, such as the anonymous-label reference in
// "beq :+", are not supported: the text before the colon is taken as a label.
// Callers that need such syntax must rewrite it before splitting.
func Split(line string) Line {
	var l Line
	head := line
	if i := strings.IndexByte(line, ';'); i != -1 {
		l.Comment = line[i+1:]
		l.HasComment = true
		head = line[:i]
	}

	if i := strings.IndexByte(head, ':'); i != -1 {
		l.Label = strings.TrimSpace(head[:i])
		l.HasLabel = true
		head = head[i+1:]
	}

	l.Instruction = strings.TrimSpace(head)
	return l
}
