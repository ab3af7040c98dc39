package tsexpr

import (
	"strconv"
	"strings"
)

// position is where an expression is being printed; it decides whether a
// composite needs parentheses.
type position int

const (
	posTop position = iota
	posUnion
	posIntersection
	posArray
)

// Print renders e as TypeScript source.
func Print(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e, posTop)
	return sb.String()
}

// PrintInterface renders an export interface declaration followed by a
// newline.
func PrintInterface(decl Interface) string {
	var sb strings.Builder
	sb.WriteString("export interface ")
	sb.WriteString(decl.Name)
	sb.WriteString(" ")
	body := decl.Body
	body.Multiline = true
	writeObject(&sb, body)
	sb.WriteString("\n")
	return sb.String()
}

// Comment renders text as a doc comment block. Single-line text stays on one
// line; the result ends with a newline.
func Comment(text string) string {
	text = strings.ReplaceAll(strings.TrimSpace(text), "*/", `*\/`)
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return "/** " + lines[0] + " */\n"
	}
	var sb strings.Builder
	sb.WriteString("/**\n")
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(" */\n")
	return sb.String()
}

// QuoteSingle returns s as a single-quoted TypeScript string literal.
func QuoteSingle(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

func writeExpr(sb *strings.Builder, e Expr, pos position) {
	switch v := e.(type) {
	case nil:
		sb.WriteString(string(Any))
	case Keyword:
		sb.WriteString(string(v))
	case Literal:
		sb.WriteString(QuoteSingle(string(v)))
	case Lookup:
		sb.WriteString(v.Root)
		for _, seg := range v.Path {
			sb.WriteString("[")
			sb.WriteString(strconv.Quote(seg))
			sb.WriteString("]")
		}
	case Array:
		writeExpr(sb, v.Elem, posArray)
		sb.WriteString("[]")
	case Union:
		writeComposite(sb, []Expr(v), " | ", Never, pos, pos >= posIntersection)
	case Intersection:
		writeComposite(sb, []Expr(v), " & ", Keyword("{}"), pos, pos == posUnion || pos == posArray)
	case Generic:
		sb.WriteString(v.Name)
		sb.WriteString("<")
		for i, arg := range v.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, arg, posTop)
		}
		sb.WriteString(">")
	case Object:
		writeObject(sb, v)
	}
}

func writeComposite(sb *strings.Builder, parts []Expr, sep string, empty Keyword, pos position, wrap bool) {
	switch len(parts) {
	case 0:
		sb.WriteString(string(empty))
		return
	case 1:
		writeExpr(sb, parts[0], pos)
		return
	}

	inner := posUnion
	if sep == " & " {
		inner = posIntersection
	}
	if wrap {
		sb.WriteString("(")
	}
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeExpr(sb, p, inner)
	}
	if wrap {
		sb.WriteString(")")
	}
}

func writeObject(sb *strings.Builder, obj Object) {
	if len(obj.Members) == 0 {
		sb.WriteString("{}")
		return
	}

	multiline := obj.Multiline
	for _, m := range obj.Members {
		if m.Doc != "" {
			multiline = true
			break
		}
	}

	if !multiline {
		sb.WriteString("{ ")
		for _, m := range obj.Members {
			writeMember(sb, m)
			sb.WriteString(" ")
		}
		sb.WriteString("}")
		return
	}

	sb.WriteString("{\n")
	for _, m := range obj.Members {
		if m.Doc != "" {
			sb.WriteString(Comment(m.Doc))
		}
		writeMember(sb, m)
		sb.WriteString("\n")
	}
	sb.WriteString("}")
}

func writeMember(sb *strings.Builder, m Member) {
	if m.Index {
		sb.WriteString("[key: string]")
	} else {
		switch m.Style {
		case Bare:
			sb.WriteString(m.Key)
		case SingleQuoted:
			sb.WriteString(QuoteSingle(m.Key))
		default:
			sb.WriteString(strconv.Quote(m.Key))
		}
		if m.Optional {
			sb.WriteString("?")
		}
	}
	sb.WriteString(": ")
	writeExpr(sb, m.Type, posTop)
	sb.WriteString(";")
}
