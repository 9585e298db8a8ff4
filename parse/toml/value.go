package toml

// =========================
// AST Definitions
// =========================

type Kind uint8

const (
	KindTable Kind = iota
	KindArray
	KindValue
)

type Node interface {
	Kind() Kind
}

// -------- Table --------

// Entry is one (key, value) pair of a table. A key appears in more than one
// entry only after a non-strict ordered parse retained repeated assignments.
type Entry struct {
	Key  string
	Node Node
}

// Table is an ordered sequence of entries with an auxiliary index for
// lookups. Both inline tables and [section] bodies use this representation;
// the index always points at the newest entry for a key.
type Table struct {
	entries []Entry
	index   map[string]int
}

func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

func (*Table) Kind() Kind { return KindTable }

func (t *Table) Len() int { return len(t.entries) }

// Entries returns the table's (key, value) pairs in insertion order.
func (t *Table) Entries() []Entry { return t.entries }

// Keys returns the table's keys in first-encounter order, without repeats.
func (t *Table) Keys() []string {
	seen := make(map[string]struct{}, len(t.entries))
	keys := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if _, ok := seen[e.Key]; ok {
			continue
		}
		seen[e.Key] = struct{}{}
		keys = append(keys, e.Key)
	}
	return keys
}

// Get returns the newest node bound to key.
func (t *Table) Get(key string) (Node, bool) {
	i, ok := t.index[key]
	if !ok {
		return nil, false
	}
	return t.entries[i].Node, true
}

// GetAll returns every node bound to key, oldest first. Repeated sections
// such as multiple [requires.X] blocks surface here as multiple entries.
func (t *Table) GetAll(key string) []Node {
	var nodes []Node
	for _, e := range t.entries {
		if e.Key == key {
			nodes = append(nodes, e.Node)
		}
	}
	return nodes
}

func (t *Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Set binds key to n, overwriting the newest existing entry in place.
func (t *Table) Set(key string, n Node) {
	if i, ok := t.index[key]; ok {
		t.entries[i].Node = n
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Node: n})
}

// Append adds a new entry even when key is already bound; the index moves to
// the newest entry.
func (t *Table) Append(key string, n Node) {
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Node: n})
}

// -------- Array --------

type Array struct {
	Elems []Node
}

func (*Array) Kind() Kind { return KindArray }

// -------- Value --------

type ValueKind uint8

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueDate
)

// Value is a scalar. Strings carry their escapes already resolved, ints are
// int64, floats are float64, and dates are the raw source text with no
// calendar semantics attached.
type Value struct {
	Type ValueKind
	V    any
}

func (*Value) Kind() Kind { return KindValue }

// sameElemKind reports whether two array elements have the same shape, the
// criterion MixedTypes gates on. Two scalars must share the same ValueKind;
// composites compare by Kind only.
func sameElemKind(a, b Node) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	av, aOK := a.(*Value)
	bv, bOK := b.(*Value)
	if aOK && bOK {
		return av.Type == bv.Type
	}
	return true
}

// =========================
// Safe Access Helpers
// =========================

func Get(root *Table, path ...string) (Node, bool) {
	var cur Node = root
	for _, p := range path {
		if len(p) == 0 {
			continue
		}
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		cur, ok = t.Get(p)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func GetUntyped(root *Table, path ...string) (any, bool) {
	n, ok := Get(root, path...)
	if !ok {
		return nil, false
	}
	return ToUntyped(n), true
}

// ToUntyped converts a node to plain Go values: map[string]any for tables
// (repeated keys collapse to the newest entry), []any for arrays, and the
// payload for scalars.
func ToUntyped(n Node) any {
	switch v := n.(type) {
	case *Value:
		return v.V
	case *Array:
		out := make([]any, len(v.Elems))
		for i := range v.Elems {
			out[i] = ToUntyped(v.Elems[i])
		}
		return out
	case *Table:
		m := make(map[string]any, len(v.entries))
		for _, e := range v.entries {
			m[e.Key] = ToUntyped(e.Node)
		}
		return m
	default:
		return nil
	}
}

// IsArrayOfTables reports whether n is a non-empty array whose every element
// is a table, the shape produced by repeated [[name]] headers. Consumers
// branch on this to tell table-arrays apart from plain arrays.
func IsArrayOfTables(n Node) bool {
	arr, ok := n.(*Array)
	if !ok || len(arr.Elems) == 0 {
		return false
	}
	for _, e := range arr.Elems {
		if _, ok := e.(*Table); !ok {
			return false
		}
	}
	return true
}

func MustString(n Node) string {
	v := n.(*Value)
	return v.V.(string)
}

func MustInt(n Node) int64 {
	v := n.(*Value)
	return v.V.(int64)
}
