package toml

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// =========================
// Encoder
// =========================

// Encode serializes a document back to TOML text. Scalars and plain arrays
// of a table are emitted under its header before any sub-table opens a new
// one, so the emitted text reparses to an equivalent structure; relative
// order is otherwise the table's own. Encoding is best-effort: byte-exact
// round trips are not a contract.
func Encode(root *Table) []byte {
	e := &encoder{}
	e.encodeTable(root, nil)
	return e.buf.Bytes()
}

func EncodeString(root *Table) string {
	return string(Encode(root))
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) encodeTable(t *Table, path []string) {
	for _, entry := range t.Entries() {
		switch n := entry.Node.(type) {
		case *Value:
			fmt.Fprintf(&e.buf, "%s = %s\n", encodeKey(entry.Key), encodeScalar(n))
		case *Array:
			if IsArrayOfTables(n) {
				continue
			}
			e.buf.WriteString(encodeKey(entry.Key))
			e.buf.WriteString(" = ")
			e.writeArray(n)
			e.buf.WriteByte('\n')
		}
	}

	for _, entry := range t.Entries() {
		child := make([]string, 0, len(path)+1)
		child = append(append(child, path...), entry.Key)
		switch n := entry.Node.(type) {
		case *Table:
			e.writeHeader(child, false)
			e.encodeTable(n, child)
		case *Array:
			if !IsArrayOfTables(n) {
				continue
			}
			for _, elem := range n.Elems {
				e.writeHeader(child, true)
				e.encodeTable(elem.(*Table), child)
			}
		}
	}
}

func (e *encoder) writeHeader(path []string, array bool) {
	if e.buf.Len() > 0 {
		e.buf.WriteByte('\n')
	}
	keys := make([]string, len(path))
	for i := range path {
		keys[i] = encodeKey(path[i])
	}
	if array {
		fmt.Fprintf(&e.buf, "[[%s]]\n", strings.Join(keys, "."))
	} else {
		fmt.Fprintf(&e.buf, "[%s]\n", strings.Join(keys, "."))
	}
}

// writeArray emits a plain array as a bracketed, newline-separated list.
// Trailing commas are valid input, so every element takes one.
func (e *encoder) writeArray(a *Array) {
	if len(a.Elems) == 0 {
		e.buf.WriteString("[]")
		return
	}
	e.buf.WriteString("[\n")
	for _, elem := range a.Elems {
		e.buf.WriteByte('\t')
		e.buf.WriteString(encodeInline(elem))
		e.buf.WriteString(",\n")
	}
	e.buf.WriteByte(']')
}

// encodeInline renders a node as a single-line literal, used inside arrays.
// Tables nested in plain arrays fall back to inline-table syntax.
func encodeInline(n Node) string {
	switch v := n.(type) {
	case *Value:
		return encodeScalar(v)
	case *Array:
		parts := make([]string, len(v.Elems))
		for i := range v.Elems {
			parts[i] = encodeInline(v.Elems[i])
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Table:
		if v.Len() == 0 {
			return "{}"
		}
		parts := make([]string, 0, v.Len())
		for _, entry := range v.Entries() {
			parts = append(parts, encodeKey(entry.Key)+" = "+encodeInline(entry.Node))
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}
	return ""
}

func encodeScalar(v *Value) string {
	switch v.Type {
	case ValueString:
		return encodeTomlString(v.V.(string))
	case ValueInt:
		return strconv.FormatInt(v.V.(int64), 10)
	case ValueFloat:
		s := strconv.FormatFloat(v.V.(float64), 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case ValueBool:
		return strconv.FormatBool(v.V.(bool))
	case ValueDate:
		return v.V.(string)
	}
	return ""
}

// encodeTomlString quotes and escapes a string value, switching to triple
// quoting when the value contains a line break. The '/' substitution is kept
// for parity with the original writer.
func encodeTomlString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '/':
			b.WriteString(`\/`)
		default:
			b.WriteByte(c)
		}
	}
	if strings.Contains(s, "\n") {
		return `"""` + b.String() + `"""`
	}
	return `"` + b.String() + `"`
}

// encodeKey emits bare keys where the subset grammar allows and quotes
// everything else.
func encodeKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-' {
			continue
		}
		quoted := strings.ReplaceAll(k, `\`, `\\`)
		quoted = strings.ReplaceAll(quoted, `"`, `\"`)
		return `"` + quoted + `"`
	}
	return k
}
