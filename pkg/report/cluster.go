package report

import (
	"github.com/modreport/modreport/pkg/graph"
	"github.com/modreport/modreport/pkg/report/dot"
)

// clusterStyle is the fixed style tag applied to every distribution cluster.
const clusterStyle = "tab"

// Clusters groups graph nodes by their owning distribution. Nodes without a
// distribution are never clustered. The grouping is a single pass over the
// graph's node sequence: the first occurrence of a distribution name creates
// its group, later occurrences append. Groups are returned in
// first-occurrence order, which keeps output reproducible across runs with
// the same input.
func Clusters(g *graph.Graph) []dot.Cluster {
	var clusters []dot.Cluster
	index := make(map[string]int)

	for _, n := range g.Nodes() {
		if n.Distribution == "" {
			continue
		}
		i, ok := index[n.Distribution]
		if !ok {
			i = len(clusters)
			index[n.Distribution] = i
			clusters = append(clusters, dot.Cluster{
				Name:  n.Distribution,
				Style: clusterStyle,
			})
		}
		clusters[i].Nodes = append(clusters[i].Nodes, n)
	}

	return clusters
}
