// Package html serializes a module-dependency graph as a standalone HTML
// report.
//
// Unlike the DOT serializer, the HTML report takes no formatter callbacks:
// it renders a fixed document with a summary, the graph roots, and one
// section per node listing its dependencies.
package html

import (
	"html/template"
	"io"

	"github.com/modreport/modreport/pkg/graph"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Module dependency report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
th { background: #eee; }
.root { font-weight: bold; }
.missing { color: #b00; }
.optional { color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>Module dependency report</h1>
<p>{{len .Nodes}} nodes, {{len .Edges}} edges.</p>

<h2>Roots</h2>
<ul>
{{- range .Roots}}
<li class="root">{{.Node.Identifier}}</li>
{{- end}}
</ul>

<h2>Nodes</h2>
<table>
<tr><th>Identifier</th><th>Kind</th><th>Distribution</th><th>Depends on</th></tr>
{{- range .Nodes}}
<tr>
<td{{if .Missing}} class="missing"{{end}}>{{.Node.Identifier}}</td>
<td>{{.Node.Kind}}</td>
<td>{{.Node.Distribution}}</td>
<td>
{{- range $i, $d := .Deps}}{{if $i}}, {{end}}<span{{if $d.Optional}} class="optional"{{end}}>{{$d.Identifier}}</span>{{- end}}
</td>
</tr>
{{- end}}
</table>
</body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

type depView struct {
	Identifier string
	Optional   bool
}

type nodeView struct {
	Node    *graph.Node
	Missing bool
	Deps    []depView
}

type reportView struct {
	Nodes []nodeView
	Edges []graph.Edge
	Roots []nodeView
}

// Write serializes g as a complete HTML document.
func Write(w io.Writer, g *graph.Graph) error {
	view := reportView{Edges: g.Edges()}

	deps := make(map[string][]depView)
	for _, e := range view.Edges {
		optional := true
		for _, f := range e.Facts {
			if !f.Optional {
				optional = false
				break
			}
		}
		deps[e.From.Identifier] = append(deps[e.From.Identifier], depView{
			Identifier: e.To.Identifier,
			Optional:   optional,
		})
	}

	for _, n := range g.Nodes() {
		view.Nodes = append(view.Nodes, nodeView{
			Node:    n,
			Missing: n.Kind == graph.KindMissingModule,
			Deps:    deps[n.Identifier],
		})
	}
	for _, n := range g.Roots() {
		view.Roots = append(view.Roots, nodeView{Node: n})
	}

	return tmpl.Execute(w, view)
}
