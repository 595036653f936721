package assembler

import (
	"strings"
	"unicode"
)

// Directive is an assembler pseudo-operation such as ".byte $24, $25".
// Its arguments are kept as written; nothing is evaluated here.
type Directive struct {
	// Name without the leading dot, as written.
	Name string
	// Args is everything after the name and its separating blanks.
	Args string
}

func (d Directive) String() string {
	if d.Args == "" {
		return "." + d.Name
	}
	return "." + d.Name + " " + d.Args
}

// ParseDirective recognises ".name args". The name runs up to the first blank.
func ParseDirective(text string) (Directive, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, ".") {
		return Directive{}, false
	}

	text = text[1:]
	end := strings.IndexFunc(text, unicode.IsSpace)
	if end == -1 {
		end = len(text)
	}
	if end == 0 {
		return Directive{}, false
	}

	return Directive{
		Name: text[:end],
		Args: strings.TrimLeftFunc(text[end:], unicode.IsSpace),
	}, true
}

// Definition binds a symbol to an expression: "name = expr".
type Definition struct {
	Name string
	Expr string
}

func (d Definition) String() string {
	return d.Name + " = " + d.Expr
}

// ParseDefinition splits at the first '='. Both sides are trimmed and must be non-empty.
func ParseDefinition(text string) (Definition, bool) {
	name, expr, ok := strings.Cut(text, "=")
	if !ok {
		return Definition{}, false
	}

	name = strings.TrimSpace(name)
	expr = strings.TrimSpace(expr)
	if name == "" || expr == "" {
		return Definition{}, false
	}
	return Definition{Name: name, Expr: expr}, true
}
