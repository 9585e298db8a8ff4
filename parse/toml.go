// Package parse bridges file input to the toml document parser for the CLI.
package parse

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/dzjyyds666/tq/parse/toml"
	"github.com/dzjyyds666/tq/pkg"
)

// TomlFile reads and parses the TOML document at path.
func TomlFile(path string, opts toml.Options) (*toml.Table, error) {
	data, err := pkg.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := toml.ParseString(string(data), opts)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse %s", path)
	}
	return doc, nil
}

// FindPath resolves a dotted query like "server.ports" against a document
// and returns the untyped value. Quoted segments keep their dots: `"a.b".c`
// is two segments.
func FindPath(root *toml.Table, expr string) (any, bool) {
	n, ok := toml.Get(root, splitQuery(expr)...)
	if !ok {
		return nil, false
	}
	return toml.ToUntyped(n), true
}

func splitQuery(expr string) []string {
	var parts []string
	var cur strings.Builder
	quote := byte(0)
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '.':
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}
