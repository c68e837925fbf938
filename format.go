package gf2

import (
	"bytes"
	"fmt"
)

// String returns the string representation of the node. Symbols render as
// #index.
func (n Node) String() string {
	return Format(n, nil)
}

// Format returns the string representation of e. Symbols are named by namer
// when it knows them and render as #index otherwise. Argument symbols render
// as _n.
func Format(e Node, namer SymbolNamer) string {
	var buf bytes.Buffer
	formatNode(&buf, e, namer)
	return buf.String()
}

func formatNode(buf *bytes.Buffer, e Node, namer SymbolNamer) {
	switch e.kind {
	case KindImm:
		if e.value {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	case KindSym:
		buf.WriteString(symbolName(e.index, namer))
	case KindESF:
		fmt.Fprintf(buf, "ESF(%d, ", e.degree)
		if len(e.args) == 0 {
			buf.WriteString("(empty))")
			return
		}
		for i, a := range e.args {
			if i > 0 {
				buf.WriteString(", ")
			}
			formatNode(buf, a, namer)
		}
		buf.WriteByte(')')
	default:
		if len(e.args) == 0 {
			buf.WriteString("(empty)")
			return
		}
		buf.WriteByte('(')
		for i, a := range e.args {
			if i > 0 {
				buf.WriteString(infixOps[e.kind])
			}
			formatNode(buf, a, namer)
		}
		buf.WriteByte(')')
	}
}

var infixOps = [...]string{
	KindAdd: " + ",
	KindMul: " * ",
	KindOr:  " | ",
}

func symbolName(index uint32, namer SymbolNamer) string {
	if index&argSymbolFlag == argSymbolFlag {
		return fmt.Sprintf("_%d", index&^argSymbolFlag)
	}
	if namer != nil {
		if name, ok := namer.Name(index); ok {
			return name
		}
	}
	return fmt.Sprintf("#%d", index)
}

// FormatVector returns the string representation of v, one entry per line.
func FormatVector(v Vector, namer SymbolNamer) string {
	var buf bytes.Buffer
	formatVector(&buf, v, namer)
	return buf.String()
}

func formatVector(buf *bytes.Buffer, v Vector, namer SymbolNamer) {
	buf.WriteString("Vec([\n")
	for i, e := range v {
		formatNode(buf, e, namer)
		if i < len(v)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("])")
}

// FormatMatrix returns the string representation of m, one row per line.
func FormatMatrix(m *Matrix, namer SymbolNamer) string {
	var buf bytes.Buffer
	formatMatrix(&buf, m, namer)
	return buf.String()
}

func formatMatrix(buf *bytes.Buffer, m *Matrix, namer SymbolNamer) {
	if m.IsEmpty() {
		buf.WriteString("Mat(empty)")
		return
	}

	buf.WriteString("Mat([\n")
	for i := 0; i < m.NRows(); i++ {
		buf.WriteByte('[')
		for j := 0; j < m.NCols(); j++ {
			if j > 0 {
				buf.WriteString(", ")
			}
			formatNode(buf, m.At(i, j), namer)
		}
		buf.WriteString("]\n")
	}
	buf.WriteString("])")
}

// FormatApp returns the string representation of the nonlinear and affine
// parts of a.
func FormatApp(a *App, namer SymbolNamer) string {
	var buf bytes.Buffer
	buf.WriteString("App NL = ")
	formatVector(&buf, a.NL.Vector(), namer)
	buf.WriteString("\n\nAffApp matrix = ")
	formatMatrix(&buf, a.Aff.Matrix(), namer)
	buf.WriteString("\n\nAffApp cst = ")
	formatVector(&buf, a.Aff.Constant(), namer)
	return buf.String()
}
