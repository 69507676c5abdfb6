// Command ecs-gen writes the fixed-arity combination code of package ecs:
// And2..AndN, SetAnd2..SetAndN and Tuple2..TupleN into access_generated.go, and
// Group2..GroupN into group_generated.go.
//
//	go run ./cmd/ecs-gen -out ./ecs -max 8
package main

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"golang.org/x/tools/imports"
)

const minArity = 2

func main() {
	out := flag.String("out", ".", "Directory the generated files are written to.")
	maxArity := flag.Int("max", 8, "Largest arity to generate.")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := generate(*out, *maxArity); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
	logger.Info("generated", "dir", *out, "max", *maxArity)
}

func generate(dir string, maxArity int) error {
	files := []struct {
		name string
		tmpl *template.Template
	}{
		{"access_generated.go", accessTemplate},
		{"group_generated.go", groupTemplate},
	}

	for _, f := range files {
		src, err := render(f.tmpl, maxArity)
		if err != nil {
			return eris.Wrapf(err, "render %s", f.name)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", path)
		}
	}
	return nil
}

// arity is the template data for one generated size.
type arity struct {
	N int
}

// Idx returns 1..N.
func (a arity) Idx() []int {
	out := make([]int, a.N)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// List joins "<prefix><i>" for i in 1..N with ", ".
func (a arity) List(prefix string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = prefix + strconv.Itoa(i+1)
	}
	return strings.Join(parts, ", ")
}

// Params joins "<name><i> <kind>[T<i>]" for i in 1..N with ", ".
func (a arity) Params(name, kind string) string {
	parts := make([]string, a.N)
	for i := range parts {
		n := strconv.Itoa(i + 1)
		parts[i] = name + n + " " + kind + "[T" + n + "]"
	}
	return strings.Join(parts, ", ")
}

// Constraints joins "T<i> System[C, M, S]" for i in 1..N with ", ".
func (a arity) Constraints() string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = "T" + strconv.Itoa(i+1) + " System[C, M, S]"
	}
	return strings.Join(parts, ", ")
}

func render(tmpl *template.Template, maxArity int) ([]byte, error) {
	if maxArity < minArity {
		return nil, eris.Errorf("max arity %d is below %d", maxArity, minArity)
	}

	arities := make([]arity, 0, maxArity-minArity+1)
	for n := minArity; n <= maxArity; n++ {
		arities = append(arities, arity{N: n})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return nil, eris.Wrap(err, "execute template")
	}

	src, err := imports.Process("generated.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, eris.Wrap(err, "format source")
	}
	return src, nil
}

var accessTemplate = template.Must(template.New("access").Parse(`// Code generated by ecs-gen. DO NOT EDIT.

package ecs
{{range .}}
// Tuple{{.N}} is the view produced by And{{.N}} and the value written by SetAnd{{.N}}.
type Tuple{{.N}}[{{.List "T"}} any] struct {
{{- range .Idx}}
	V{{.}} T{{.}}
{{- end}}
}

type and{{.N}}[{{.List "T"}} any] struct {
{{- range .Idx}}
	a{{.}} Access[T{{.}}]
{{- end}}
}

// And{{.N}} matches entities for which every member matches. Members are
// evaluated left to right and evaluation stops at the first failure.
func And{{.N}}[{{.List "T"}} any]({{.Params "a" "Access"}}) Access[Tuple{{.N}}[{{.List "T"}}]] {
	return and{{.N}}[{{.List "T"}}]{ {{- range $i, $n := .Idx}}{{if $i}}, {{end}}a{{$n}}: a{{$n}}{{end -}} }
}

func (a and{{.N}}[{{.List "T"}}]) fetch(bag *Bag) (Tuple{{.N}}[{{.List "T"}}], bool) {
	var t Tuple{{.N}}[{{.List "T"}}]
	var ok bool
{{- $size := .N}}{{$types := .List "T"}}
{{- range .Idx}}
	if t.V{{.}}, ok = a.a{{.}}.fetch(bag); !ok {
		return Tuple{{$size}}[{{$types}}]{}, false
	}
{{- end}}
	return t, true
}

type setAnd{{.N}}[{{.List "T"}} any] struct {
{{- range .Idx}}
	w{{.}} Write[T{{.}}]
{{- end}}
}

// SetAnd{{.N}} writes each member of a Tuple{{.N}} through its own shape.
func SetAnd{{.N}}[{{.List "T"}} any]({{.Params "w" "Write"}}) Write[Tuple{{.N}}[{{.List "T"}}]] {
	return setAnd{{.N}}[{{.List "T"}}]{ {{- range $i, $n := .Idx}}{{if $i}}, {{end}}w{{$n}}: w{{$n}}{{end -}} }
}

func (w setAnd{{.N}}[{{.List "T"}}]) apply(bag *Bag, value Tuple{{.N}}[{{.List "T"}}]) {
{{- range .Idx}}
	w.w{{.}}.apply(bag, value.V{{.}})
{{- end}}
}

func (w setAnd{{.N}}[{{.List "T"}}]) mutates() bool {
	return {{range $i, $n := .Idx}}{{if $i}} || {{end}}w.w{{$n}}.mutates(){{end}}
}
{{end}}`))

var groupTemplate = template.Must(template.New("group").Parse(`// Code generated by ecs-gen. DO NOT EDIT.

package ecs
{{range .}}
// Group{{.N}} runs {{.N}} systems of independent concrete types in declared order.
// Members stay reachable through their typed fields.
type Group{{.N}}[C, M, S any, {{.Constraints}}] struct {
{{- range .Idx}}
	S{{.}} T{{.}}
{{- end}}
}

func NewGroup{{.N}}[C, M, S any, {{.Constraints}}]({{range $i, $n := .Idx}}{{if $i}}, {{end}}s{{$n}} T{{$n}}{{end}}) *Group{{.N}}[C, M, S, {{.List "T"}}] {
	return &Group{{.N}}[C, M, S, {{.List "T"}}]{ {{- range $i, $n := .Idx}}{{if $i}}, {{end}}S{{$n}}: s{{$n}}{{end -}} }
}

func (g *Group{{.N}}[C, M, S, {{.List "T"}}]) Name() string {
	return groupName(g.Systems())
}

func (g *Group{{.N}}[C, M, S, {{.List "T"}}]) Mode() Mode {
	return groupMode(g.Systems())
}

func (g *Group{{.N}}[C, M, S, {{.List "T"}}]) Systems() []System[C, M, S] {
	return []System[C, M, S]{ {{- range $i, $n := .Idx}}{{if $i}}, {{end}}g.S{{$n}}{{end -}} }
}

func (g *Group{{.N}}[C, M, S, {{.List "T"}}]) Run(storage *Storage, queue *Queue[M], ctx C) (S, bool) {
	var sig signal[S]
{{- range .Idx}}
	sig.observe(g.S{{.}}.Run(storage, queue, ctx))
{{- end}}
	return sig.value, sig.ok
}
{{end}}`))
