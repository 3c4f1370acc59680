// Command generate writes the arity variants of component sets and queries:
// set_generated.go (Set2..Set14, Bundle2..Bundle14, Spawn2..Spawn14) and
// query_generated.go (Row2..Row8, Query2..Query8, QueryMut2..QueryMut8).
//
// Run it through go generate from the module root.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
)

const (
	maxSetArity   = 14
	maxQueryArity = 8
)

type arity struct {
	N int
}

// Is returns 1..N, for ranging in templates.
func (a arity) Is() []int {
	is := make([]int, a.N)
	for i := range is {
		is[i] = i + 1
	}
	return is
}

// TypeParams is "T1 any, T2 any, ...".
func (a arity) TypeParams() string {
	return a.join(func(i int) string { return fmt.Sprintf("T%d any", i) })
}

// Types is "T1, T2, ...".
func (a arity) Types() string {
	return a.join(func(i int) string { return fmt.Sprintf("T%d", i) })
}

// Params is "c1 T1, c2 T2, ...".
func (a arity) Params() string {
	return a.join(func(i int) string { return fmt.Sprintf("c%d T%d", i, i) })
}

// Fields is "C1: c1, C2: c2, ...".
func (a arity) Fields() string {
	return a.join(func(i int) string { return fmt.Sprintf("C%d: c%d", i, i) })
}

// Pointers is "*T1, *T2, ...".
func (a arity) Pointers() string {
	return a.join(func(i int) string { return fmt.Sprintf("*T%d", i) })
}

// Returns is "r.C1, r.C2, ...".
func (a arity) Returns() string {
	return a.join(func(i int) string { return fmt.Sprintf("r.C%d", i) })
}

// IDs is "infoFor[T1]().id, infoFor[T2]().id, ...".
func (a arity) IDs() string {
	return a.join(func(i int) string { return fmt.Sprintf("infoFor[T%d]().id", i) })
}

func (a arity) join(f func(i int) string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = f(i + 1)
	}
	return strings.Join(parts, ", ")
}

var funcs = template.FuncMap{
	"sub": func(a, b int) int { return a - b },
}

const setTemplate = `// Code generated by cmd/generate. DO NOT EDIT.

package kura
{{range .}}
// Set{{.N}} is a component set of {{.N}} components: {{.Types}}.
type Set{{.N}}[{{.TypeParams}}] struct {
{{- range .Is}}
	C{{.}} T{{.}}
{{- end}}
}

// Bundle{{.N}} groups {{.N}} component values into a Set{{.N}}. The order of
// the values does not affect which archetype the set is stored in.
func Bundle{{.N}}[{{.TypeParams}}]({{.Params}}) Set{{.N}}[{{.Types}}] {
	return Set{{.N}}[{{.Types}}]{ {{- .Fields -}} }
}

func (s Set{{.N}}[{{.Types}}]) appendInfos(dst []*typeInfo) []*typeInfo {
	return append(dst,
{{- range .Is}}
		infoFor[T{{.}}](),
{{- end}}
	)
}

func (s Set{{.N}}[{{.Types}}]) writeTo(a *archetype, infos []*typeInfo) {
	a.reserve(1)
{{- range .Is}}
	writeColumn(a, infos[{{sub . 1}}], s.C{{.}})
{{- end}}
}

// Spawn{{.N}} creates an entity holding the {{.N}} given components.
func Spawn{{.N}}[{{.TypeParams}}](w *World, {{.Params}}) Entity {
	return w.spawn(Set{{.N}}[{{.Types}}]{ {{- .Fields -}} })
}
{{end -}}
`

const queryTemplate = `// Code generated by cmd/generate. DO NOT EDIT.

package kura

import "iter"
{{range .}}
// Row{{.N}} holds pointers to the {{.N}} components of one query row.
type Row{{.N}}[{{.TypeParams}}] struct {
{{- range .Is}}
	C{{.}} *T{{.}}
{{- end}}
}

// Get returns the row's component pointers in query order.
func (r Row{{.N}}[{{.Types}}]) Get() ({{.Pointers}}) {
	return {{.Returns}}
}

// Query{{.N}} returns a lazy sequence over every entity holding all of
// {{.Types}}. See Query for ordering and borrowing rules.
func Query{{.N}}[{{.TypeParams}}](w *World) iter.Seq2[Entity, Row{{.N}}[{{.Types}}]] {
	ids := [{{.N}}]ComponentID{ {{- .IDs -}} }
	return func(yield func(Entity, Row{{.N}}[{{.Types}}]) bool) {
		w.borrowShared("Query{{.N}}")
		defer w.releaseShared()
		for _, a := range w.matching(ids[:]...) {
{{- range .Is}}
			col{{.}} := a.column(ids[{{sub . 1}}])
{{- end}}
			for row, e := range a.entities {
				r := Row{{.N}}[{{.Types}}]{
{{- range .Is}}
					C{{.}}: (*T{{.}})(col{{.}}.at(row)),
{{- end}}
				}
				if !yield(e, r) {
					return
				}
			}
		}
	}
}

// QueryMut{{.N}} is Query{{.N}} with write access to every component. It
// panics if the same component type is requested twice.
func QueryMut{{.N}}[{{.TypeParams}}](w *World) iter.Seq2[Entity, Row{{.N}}[{{.Types}}]] {
	ids := [{{.N}}]ComponentID{ {{- .IDs -}} }
	mustBeDistinct("QueryMut{{.N}}", ids[:])
	return func(yield func(Entity, Row{{.N}}[{{.Types}}]) bool) {
		w.borrowExclusive("QueryMut{{.N}}")
		defer w.releaseExclusive()
		for _, a := range w.matching(ids[:]...) {
{{- range .Is}}
			col{{.}} := a.column(ids[{{sub . 1}}])
{{- end}}
			for row, e := range a.entities {
				r := Row{{.N}}[{{.Types}}]{
{{- range .Is}}
					C{{.}}: (*T{{.}})(col{{.}}.at(row)),
{{- end}}
				}
				if !yield(e, r) {
					return
				}
			}
		}
	}
}
{{end -}}
`

func arities(from, to int) []arity {
	out := make([]arity, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, arity{N: n})
	}
	return out
}

func render(path, text string, data []arity) error {
	tmpl, err := template.New(path).Funcs(funcs).Parse(text)
	if err != nil {
		return eris.Wrapf(err, "parse %s", path)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return eris.Wrapf(err, "execute %s", path)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return eris.Wrapf(err, "format %s", path)
	}
	return os.WriteFile(path, src, 0o644)
}

func main() {
	if err := render("set_generated.go", setTemplate, arities(2, maxSetArity)); err != nil {
		log.Fatal(err)
	}
	if err := render("query_generated.go", queryTemplate, arities(2, maxQueryArity)); err != nil {
		log.Fatal(err)
	}
}
