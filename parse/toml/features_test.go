package toml

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestSingleAssignment(t *testing.T) {
	convey.Convey("single key=value line", t, func() {
		root, err := Parse(strings.NewReader(`name = "x"`), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Len(), convey.ShouldEqual, 1)
		entries := root.Entries()
		convey.So(entries[0].Key, convey.ShouldEqual, "name")
		convey.So(MustString(entries[0].Node), convey.ShouldEqual, "x")
	})
}

func TestArrayOfTables(t *testing.T) {
	convey.Convey("array of tables", t, func() {
		src := `
[[requires]]
name = "Hammer"
sku = 738594937

[[requires]]
name = "Nails"
sku = 284758393
count = 100
`
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, ok := Get(root, "requires")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(IsArrayOfTables(n), convey.ShouldBeTrue)
		arr := n.(*Array)
		convey.So(len(arr.Elems), convey.ShouldEqual, 2)
		first := arr.Elems[0].(*Table)
		name, _ := first.Get("name")
		convey.So(MustString(name), convey.ShouldEqual, "Hammer")
		second := arr.Elems[1].(*Table)
		count, _ := second.Get("count")
		convey.So(MustInt(count), convey.ShouldEqual, 100)
	})
}

func TestNestedTableChain(t *testing.T) {
	convey.Convey("dotted table header creates nested tables", t, func() {
		src := "[a.b.c]\nk = 1"
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, ok := Get(root, "a", "b", "c", "k")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustInt(n), convey.ShouldEqual, 1)
	})
}

func TestInlineTable(t *testing.T) {
	convey.Convey("inline table", t, func() {
		src := `owner = { name = "Tom", dob = 1979-05-27T07:32:00Z }`
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, ok := Get(root, "owner")
		convey.So(ok, convey.ShouldBeTrue)
		tbl := n.(*Table)
		name, _ := tbl.Get("name")
		convey.So(MustString(name), convey.ShouldEqual, "Tom")
		dob, _ := tbl.Get("dob")
		convey.So(dob.(*Value).Type, convey.ShouldEqual, ValueDate)
		convey.So(dob.(*Value).V, convey.ShouldEqual, "1979-05-27T07:32:00Z")
	})
}

func TestMultilineBasicString(t *testing.T) {
	convey.Convey("multiline basic string", t, func() {
		src := `desc = """first
second
third"""`
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, ok := Get(root, "desc")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustString(n), convey.ShouldEqual, "first\nsecond\nthird")
	})

	convey.Convey("leading newline after opening triple quote is discarded", t, func() {
		src := "s = \"\"\"\nhello\"\"\""
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, _ := Get(root, "s")
		convey.So(MustString(n), convey.ShouldEqual, "hello")
	})

	convey.Convey("backslash line continuation swallows whitespace", t, func() {
		src := "s = \"\"\"one \\\n\t  two\"\"\""
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, _ := Get(root, "s")
		convey.So(MustString(n), convey.ShouldEqual, "one two")
	})
}

func TestQuotedKeys(t *testing.T) {
	convey.Convey("quoted keys keep their dots", t, func() {
		src := `"a.b" = 1
a.c = 2`
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, ok := Get(root, "a.b")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustInt(n), convey.ShouldEqual, 1)
		n2, ok2 := Get(root, "a", "c")
		convey.So(ok2, convey.ShouldBeTrue)
		convey.So(MustInt(n2), convey.ShouldEqual, 2)
	})
}

func TestMixedTypeArray(t *testing.T) {
	convey.Convey("mixed array rejected by default", t, func() {
		_, err := Parse(strings.NewReader(`a = [1, "x"]`), DefaultOptions())
		convey.So(err, convey.ShouldNotBeNil)
		perr := err.(*ParseError)
		convey.So(perr.Kind, convey.ShouldEqual, ErrMixedTypesInArray)
	})

	convey.Convey("mixed array accepted when enabled", t, func() {
		opts := DefaultOptions()
		opts.MixedTypes = true
		root, err := Parse(strings.NewReader(`a = [1, "x"]`), opts)
		convey.So(err, convey.ShouldBeNil)
		n, _ := Get(root, "a")
		arr := n.(*Array)
		convey.So(len(arr.Elems), convey.ShouldEqual, 2)
		convey.So(MustInt(arr.Elems[0]), convey.ShouldEqual, 1)
		convey.So(MustString(arr.Elems[1]), convey.ShouldEqual, "x")
	})
}

func TestMultilineArrayAndTrailingComma(t *testing.T) {
	convey.Convey("multiline array with comments and trailing comma", t, func() {
		src := `
ports = [
  8001, # main
  8002,
]
`
		root, err := Parse(strings.NewReader(src), DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		n, ok := GetUntyped(root, "ports")
		convey.So(ok, convey.ShouldBeTrue)
		arr := n.([]any)
		convey.So(len(arr), convey.ShouldEqual, 2)
		convey.So(arr[0], convey.ShouldEqual, int64(8001))
		convey.So(arr[1], convey.ShouldEqual, int64(8002))
	})
}

func TestDuplicateKeyModes(t *testing.T) {
	src := "a = 1\na = 2"

	convey.Convey("strict ordered parse fails on the second assignment", t, func() {
		_, err := ParseString(src, DefaultOptions())
		convey.So(err, convey.ShouldNotBeNil)
		perr := err.(*ParseError)
		convey.So(perr.Kind, convey.ShouldEqual, ErrDuplicateKey)
		convey.So(perr.Line, convey.ShouldEqual, 2)
	})

	convey.Convey("non-strict ordered parse retains both entries", t, func() {
		opts := Options{PreserveOrder: true}
		root, err := ParseString(src, opts)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Len(), convey.ShouldEqual, 2)
		all := root.GetAll("a")
		convey.So(len(all), convey.ShouldEqual, 2)
		convey.So(MustInt(all[0]), convey.ShouldEqual, 1)
		convey.So(MustInt(all[1]), convey.ShouldEqual, 2)
		newest, _ := root.Get("a")
		convey.So(MustInt(newest), convey.ShouldEqual, 2)
	})

	convey.Convey("unordered parse is last write wins", t, func() {
		root, err := ParseString(src, Options{})
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Len(), convey.ShouldEqual, 1)
		n, _ := root.Get("a")
		convey.So(MustInt(n), convey.ShouldEqual, 2)
	})
}

func TestSectionOrderAndRepeats(t *testing.T) {
	convey.Convey("section names come back in first-encounter order", t, func() {
		src := `
[zeta]
a = 1

[alpha]
b = 2

[[requires]]
c = 3

[[requires]]
d = 4
`
		root, err := ParseString(src, DefaultOptions())
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Keys(), convey.ShouldResemble, []string{"zeta", "alpha", "requires"})

		n, _ := root.Get("requires")
		convey.So(IsArrayOfTables(n), convey.ShouldBeTrue)
		zeta, _ := root.Get("zeta")
		convey.So(IsArrayOfTables(zeta), convey.ShouldBeFalse)
	})
}

func TestTableReuseAndRedefinition(t *testing.T) {
	convey.Convey("revisiting a table header accepts more keys", t, func() {
		src := `
[server]
host = "localhost"

[client]
retry = true

[server]
port = 8080
`
		opts := DefaultOptions()
		opts.Strict = false
		root, err := ParseString(src, opts)
		convey.So(err, convey.ShouldBeNil)
		host, ok := Get(root, "server", "host")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustString(host), convey.ShouldEqual, "localhost")
		port, ok := Get(root, "server", "port")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustInt(port), convey.ShouldEqual, 8080)
	})

	convey.Convey("redefining a scalar as a table is fatal in strict mode", t, func() {
		src := "a = 1\n[a]\nb = 2"
		_, err := ParseString(src, DefaultOptions())
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*ParseError).Kind, convey.ShouldEqual, ErrTableRedefinition)
	})

	convey.Convey("reopening a table-array with a plain header is fatal in strict mode", t, func() {
		src := "[[a]]\nx = 1\n[a]\ny = 2"
		_, err := ParseString(src, DefaultOptions())
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*ParseError).Kind, convey.ShouldEqual, ErrTableRedefinition)
	})
}
