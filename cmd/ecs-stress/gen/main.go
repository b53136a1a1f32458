// Command gen writes the component and system types exercised by ecs-stress.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

type componentSpec struct {
	Index int
	Type  int
}

type systemSpec struct {
	Index      int
	Watches    []int
	Concurrent bool
}

type fileSpec struct {
	Components []componentSpec
	Systems    []systemSpec
}

const source = `// Code generated by ecs-stress/gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/ecsman/ecs"
)

const (
	componentCount = {{len .Components}}
	systemCount    = {{len .Systems}}
)

const (
{{- range .Components}}
	StressComponent{{.Index}}Type ecs.ComponentType = {{.Type}}
{{- end}}
)
{{range .Components}}
type StressComponent{{.Index}} struct {
	ecs.BaseComponent
	Value float32
	Ticks int
}

func (*StressComponent{{.Index}}) Type() ecs.ComponentType { return StressComponent{{.Index}}Type }
{{end}}
func newStressComponent(kind int, rng *rand.Rand) ecs.Component {
	switch kind {
{{- range .Components}}
	case {{.Index}}:
		return &StressComponent{{.Index}}{Value: rng.Float32()}
{{- end}}
	}
	return nil
}
{{range $s := .Systems}}
type StressSystem{{.Index}} struct {
	ecs.BaseSystem
{{- range .Watches}}
	c{{.}} map[ecs.ComponentId]*StressComponent{{.}}
{{- end}}
}

func NewStressSystem{{.Index}}() *StressSystem{{.Index}} {
	return &StressSystem{{.Index}}{
		BaseSystem: ecs.NewBaseSystem({{.Concurrent}}),
{{- range .Watches}}
		c{{.}}: make(map[ecs.ComponentId]*StressComponent{{.}}),
{{- end}}
	}
}

func (s *StressSystem{{.Index}}) ComponentAdded(c ecs.Component) {
	switch c := c.(type) {
{{- range .Watches}}
	case *StressComponent{{.}}:
		s.c{{.}}[c.Id()] = c
{{- end}}
	}
}

func (s *StressSystem{{.Index}}) ComponentRemoved(c ecs.Component) {
	switch c := c.(type) {
{{- range .Watches}}
	case *StressComponent{{.}}:
		delete(s.c{{.}}, c.Id())
{{- end}}
	}
}

func (s *StressSystem{{.Index}}) Update(delta float32) {
{{- range .Watches}}
	for _, c := range s.c{{.}} {
		c.Value += delta
		c.Ticks++
	}
{{- end}}
}

func (s *StressSystem{{.Index}}) Tracked() int {
	return {{range $i, $w := .Watches}}{{if $i}} + {{end}}len(s.c{{$w}}){{end}}
}
{{end}}
func newStressSystem(kind int) ecs.System {
	switch kind {
{{- range .Systems}}
	case {{.Index}}:
		return NewStressSystem{{.Index}}()
{{- end}}
	}
	return nil
}
`

func main() {
	components := flag.Int("components", 8, "number of component types to generate")
	systems := flag.Int("systems", 4, "number of system types to generate")
	watches := flag.Int("watches", 2, "number of component types each system tracks")
	out := flag.String("out", "generated.go", "output file")
	flag.Parse()

	if *components < 1 || *systems < 1 || *watches < 1 || *watches > *components {
		log.Fatalf("invalid sizes: components=%d systems=%d watches=%d", *components, *systems, *watches)
	}

	spec := fileSpec{}
	for i := 0; i < *components; i++ {
		spec.Components = append(spec.Components, componentSpec{Index: i, Type: i + 1})
	}
	for i := 0; i < *systems; i++ {
		s := systemSpec{Index: i, Concurrent: i%2 == 1}
		for w := 0; w < *watches; w++ {
			s.Watches = append(s.Watches, (i+w)%*components)
		}
		spec.Systems = append(spec.Systems, s)
	}

	tmpl := template.Must(template.New("generated").Parse(source))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		log.Fatalf("format generated code: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
