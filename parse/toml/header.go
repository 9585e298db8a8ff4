package toml

// =========================
// Table Headers
// =========================

// parseTableHeader consumes a [a.b] or [[a.b]] line with the cursor at the
// first '[' and switches the active write target. Every segment but the last
// descends into (creating if absent) a nested table; the last segment either
// reuses a plain table or appends a fresh one to a table-array.
func (p *parser) parseTableHeader() error {
	isArray := p.cur.peek(1) == '['
	if isArray {
		p.cur.advance(2)
	} else {
		p.cur.advance(1)
	}

	var parts []string
	for {
		p.skipInline()
		seg, quoted, err := p.scanKeySegment()
		if err != nil {
			return err
		}
		if seg == "" && !quoted {
			return p.errf(ErrEmptyKeyName, "empty segment in table header")
		}
		parts = append(parts, seg)

		p.skipInline()
		c := p.cur.peek(0)
		if c == '.' {
			p.cur.advance(1)
			continue
		}
		if c == ']' {
			break
		}
		return p.errf(ErrMismatchedBrackets, "table header missing closing bracket")
	}

	p.cur.advance(1)
	if isArray {
		if p.cur.peek(0) != ']' {
			return p.errf(ErrMismatchedBrackets, "array-of-tables header missing second ']'")
		}
		p.cur.advance(1)
	} else if p.cur.peek(0) == ']' {
		return p.errf(ErrMismatchedBrackets, "unexpected ']]' closing a plain table header")
	}
	if err := p.expectLineEnd(); err != nil {
		return err
	}

	target := p.root
	for _, part := range parts[:len(parts)-1] {
		sub, err := p.descendTable(target, part)
		if err != nil {
			return err
		}
		target = sub
	}

	last := parts[len(parts)-1]
	if isArray {
		return p.openTableArray(target, last)
	}
	return p.openTable(target, last)
}

// openTable makes the table at key the active write target, creating it on
// first use. Revisiting an existing table only accepts further key=value
// lines; a name already holding a non-table is a redefinition.
func (p *parser) openTable(target *Table, key string) error {
	n, ok := target.Get(key)
	if !ok {
		sub := NewTable()
		target.Set(key, sub)
		p.tbl = sub
		return nil
	}
	if sub, isTable := n.(*Table); isTable {
		p.tbl = sub
		return nil
	}
	if p.opts.Strict {
		return p.errf(ErrTableRedefinition, "key %q already defined and is not a table", key)
	}
	sub := NewTable()
	target.Set(key, sub)
	p.tbl = sub
	return nil
}

// openTableArray appends a fresh table to the array bound to key, creating
// the array on first use, and makes the new table the active write target.
func (p *parser) openTableArray(target *Table, key string) error {
	var arr *Array
	if n, ok := target.Get(key); ok {
		if a, isArr := n.(*Array); isArr {
			arr = a
		} else if p.opts.Strict {
			return p.errf(ErrTableRedefinition, "key %q already defined and is not an array", key)
		}
	}
	if arr == nil {
		arr = &Array{}
		target.Set(key, arr)
	}
	sub := NewTable()
	arr.Elems = append(arr.Elems, sub)
	p.tbl = sub
	return nil
}

// descendTable resolves one intermediate segment of a dotted path, creating
// the nested table when absent. A segment bound to a table-array descends
// into its newest element.
func (p *parser) descendTable(target *Table, key string) (*Table, error) {
	n, ok := target.Get(key)
	if !ok {
		sub := NewTable()
		target.Set(key, sub)
		return sub, nil
	}
	if sub, isTable := n.(*Table); isTable {
		return sub, nil
	}
	if arr, isArr := n.(*Array); isArr && len(arr.Elems) > 0 {
		if sub, isTable := arr.Elems[len(arr.Elems)-1].(*Table); isTable {
			return sub, nil
		}
	}
	if p.opts.Strict {
		return nil, p.errf(ErrTableRedefinition, "key %q already defined and is not a table", key)
	}
	sub := NewTable()
	target.Set(key, sub)
	return sub, nil
}
