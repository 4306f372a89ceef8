package microwave

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language representation of the controller for
// visualization: every registered state, the current state highlighted,
// and one edge per transition observed in the history, labeled with its
// traversal count. States own their routing, so edges reflect what the
// machine actually did rather than a static table.
func (m *Machine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Microwave {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	if m.history.NotEmpty() {
		b.WriteString("  __start [shape=point, style=invis];\n")
		b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", m.history[0]))
	}

	counts := g.NewMap[g.Pair[g.String, g.String], int]()

	for i := 1; i < m.history.Len().Std(); i++ {
		key := g.Pair[g.String, g.String]{Key: m.history[i-1], Value: m.history[i]}
		counts.Set(key, counts.Get(key).UnwrapOrDefault()+1)
	}

	states := m.states.Keys()
	states.SortBy(cmp.Cmp)

	current := m.Current().UnwrapOrDefault()

	for state := range states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		if state == current {
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	edges := counts.Keys()
	edges.SortBy(func(a, b g.Pair[g.String, g.String]) cmp.Ordering {
		return cmp.Cmp(a.Key, b.Key).Then(cmp.Cmp(a.Value, b.Value))
	})

	for pair := range edges.Iter() {
		b.WriteString(g.Format(
			"  \"{}\" -> \"{}\" [label=\" x{} \"];\n",
			pair.Key, pair.Value, counts.Get(pair).UnwrapOrDefault(),
		))
	}

	b.WriteString("}\n")

	return b.String()
}
