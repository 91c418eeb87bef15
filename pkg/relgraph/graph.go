package relgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	apperrors "github.com/mrcieu/epigraphdb-go/pkg/errors"
)

// Graph is an undirected graph whose vertex set is exactly the entity list it
// was built from, in input order. Vertices with no edges are retained so that
// unconnected entities surface as singleton groups.
type Graph struct {
	entities []string
	index    map[string]int64
	g        *simple.UndirectedGraph
}

// Group is a maximal set of entities mutually reachable via relation edges.
// Members are sorted lexicographically.
type Group struct {
	Members []string `json:"members"`
	Size    int      `json:"size"`
}

// BuildGraph constructs the undirected graph for the given entities and
// relations. Relations are filtered to connected ones and deduplicated by
// canonical key, so (a,b) and (b,a) yield a single edge. Self-loops are
// never created. Relations referencing entities outside the vertex set are
// rejected.
func BuildGraph(entities []string, relations []PairRelation) (*Graph, error) {
	if err := validateEntities(entities); err != nil {
		return nil, err
	}

	g := &Graph{
		entities: append([]string(nil), entities...),
		index:    make(map[string]int64, len(entities)),
		g:        simple.NewUndirectedGraph(),
	}
	for i, e := range entities {
		id := int64(i)
		g.index[e] = id
		g.g.AddNode(simple.Node(id))
	}

	seen := make(map[string]struct{}, len(relations))
	for _, rel := range relations {
		if !rel.Connected {
			continue
		}
		if rel.A == rel.B {
			continue
		}
		idA, okA := g.index[rel.A]
		idB, okB := g.index[rel.B]
		if !okA || !okB {
			return nil, apperrors.NewInvalidInput("relations", fmt.Sprintf("pair (%s, %s) references an entity outside the vertex set", rel.A, rel.B))
		}
		key := rel.Key
		if key == "" {
			key = CanonicalKey(rel.A, rel.B)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.g.SetEdge(simple.Edge{F: simple.Node(idA), T: simple.Node(idB)})
	}

	return g, nil
}

// Order returns the number of vertices
func (g *Graph) Order() int {
	return len(g.entities)
}

// Size returns the number of edges
func (g *Graph) Size() int {
	return g.g.Edges().Len()
}

// Entities returns the vertex set in input order
func (g *Graph) Entities() []string {
	return append([]string(nil), g.entities...)
}

// HasEdge reports whether an edge exists between two entities
func (g *Graph) HasEdge(a, b string) bool {
	idA, okA := g.index[a]
	idB, okB := g.index[b]
	if !okA || !okB {
		return false
	}
	return g.g.HasEdgeBetween(idA, idB)
}

// ConnectedGroups partitions the graph's vertex set into connected components,
// ordered by descending group size with ties broken by the lexicographically
// smallest member. Every vertex appears in exactly one group; a group of size
// one is an isolated entity.
func ConnectedGroups(g *Graph) []Group {
	components := topo.ConnectedComponents(g.g)

	groups := make([]Group, 0, len(components))
	for _, comp := range components {
		members := make([]string, 0, len(comp))
		for _, node := range comp {
			members = append(members, g.entities[node.ID()])
		}
		sort.Strings(members)
		groups = append(groups, Group{Members: members, Size: len(members)})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Size != groups[j].Size {
			return groups[i].Size > groups[j].Size
		}
		return groups[i].Members[0] < groups[j].Members[0]
	})

	return groups
}
