package relgraph

import (
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/mrcieu/epigraphdb-go/pkg/errors"
)

func mustGroups(t *testing.T, entities []string, fn RelationFunc) []Group {
	t.Helper()
	relations, err := ComputePairwiseRelations(entities, fn)
	if err != nil {
		t.Fatalf("ComputePairwiseRelations failed: %v", err)
	}
	graph, err := BuildGraph(entities, relations)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	return ConnectedGroups(graph)
}

func TestBuildGraph_VertexSetPreserved(t *testing.T) {
	entities := []string{"P1", "P0", "P3", "P2"}
	relations, err := ComputePairwiseRelations(entities, connects([2]string{"P0", "P1"}))
	if err != nil {
		t.Fatalf("ComputePairwiseRelations failed: %v", err)
	}

	graph, err := BuildGraph(entities, relations)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	if !reflect.DeepEqual(graph.Entities(), entities) {
		t.Errorf("Expected vertex set %v in input order, got %v", entities, graph.Entities())
	}
	if graph.Order() != 4 {
		t.Errorf("Expected 4 vertices, got %d", graph.Order())
	}
}

func TestBuildGraph_DeduplicatesReversedPairs(t *testing.T) {
	// Duplicate relation entries submitted in both directions
	relations := []PairRelation{
		{A: "X", B: "Y", Key: CanonicalKey("X", "Y"), Count: 1, Connected: true},
		{A: "Y", B: "X", Key: CanonicalKey("Y", "X"), Count: 1, Connected: true},
	}

	graph, err := BuildGraph([]string{"X", "Y"}, relations)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	if graph.Size() != 1 {
		t.Errorf("Expected exactly one edge, got %d", graph.Size())
	}
	if !graph.HasEdge("X", "Y") || !graph.HasEdge("Y", "X") {
		t.Error("Expected undirected edge between X and Y")
	}
}

func TestBuildGraph_NoSelfLoops(t *testing.T) {
	relations := []PairRelation{
		{A: "X", B: "X", Count: 1, Connected: true},
	}

	graph, err := BuildGraph([]string{"X"}, relations)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	if graph.Size() != 0 {
		t.Errorf("Expected no edges, got %d", graph.Size())
	}
}

func TestBuildGraph_UnknownEntity(t *testing.T) {
	relations := []PairRelation{
		{A: "X", B: "Z", Count: 1, Connected: true},
	}

	_, err := BuildGraph([]string{"X", "Y"}, relations)
	if err == nil {
		t.Fatal("Expected error for relation referencing an unknown entity")
	}
	var invalid *apperrors.ErrInvalidInput
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected ErrInvalidInput, got %T", err)
	}
}

func TestConnectedGroups_ConcreteScenario(t *testing.T) {
	// A-B connected, B-C connected, D isolated
	groups := mustGroups(t, []string{"A", "B", "C", "D"},
		connects([2]string{"A", "B"}, [2]string{"B", "C"}))

	expected := []Group{
		{Members: []string{"A", "B", "C"}, Size: 3},
		{Members: []string{"D"}, Size: 1},
	}
	if !reflect.DeepEqual(groups, expected) {
		t.Errorf("Expected groups %v, got %v", expected, groups)
	}
}

func TestConnectedGroups_EmptyEntitySet(t *testing.T) {
	graph, err := BuildGraph([]string{}, nil)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	if graph.Order() != 0 || graph.Size() != 0 {
		t.Errorf("Expected empty graph, got %d vertices and %d edges", graph.Order(), graph.Size())
	}
	if groups := ConnectedGroups(graph); len(groups) != 0 {
		t.Errorf("Expected no groups, got %v", groups)
	}
}

func TestConnectedGroups_PartitionLaw(t *testing.T) {
	entities := []string{"A", "B", "C", "D", "E", "F"}
	groups := mustGroups(t, entities,
		connects([2]string{"A", "B"}, [2]string{"C", "D"}, [2]string{"D", "E"}))

	seen := make(map[string]int)
	for _, g := range groups {
		if g.Size != len(g.Members) {
			t.Errorf("Group size %d does not match member count %d", g.Size, len(g.Members))
		}
		for _, m := range g.Members {
			seen[m]++
		}
	}
	for _, e := range entities {
		if seen[e] != 1 {
			t.Errorf("Entity %s appears in %d groups, expected exactly 1", e, seen[e])
		}
	}
	if len(seen) != len(entities) {
		t.Errorf("Groups cover %d entities, expected %d", len(seen), len(entities))
	}
}

func TestConnectedGroups_OrderingAndTies(t *testing.T) {
	// Two groups of size 2; ties broken by smallest member
	groups := mustGroups(t, []string{"D", "C", "B", "A"},
		connects([2]string{"C", "D"}, [2]string{"A", "B"}))

	expected := []Group{
		{Members: []string{"A", "B"}, Size: 2},
		{Members: []string{"C", "D"}, Size: 2},
	}
	if !reflect.DeepEqual(groups, expected) {
		t.Errorf("Expected groups %v, got %v", expected, groups)
	}
}

func TestConnectedGroups_IsolatedVertexIsSingleton(t *testing.T) {
	groups := mustGroups(t, []string{"lonely"}, connects())
	if len(groups) != 1 || groups[0].Size != 1 || groups[0].Members[0] != "lonely" {
		t.Errorf("Expected a single singleton group, got %v", groups)
	}
}

func TestConnectedGroups_Deterministic(t *testing.T) {
	entities := []string{"E", "D", "C", "B", "A"}
	fn := connects([2]string{"A", "E"}, [2]string{"B", "D"})

	first := mustGroups(t, entities, fn)
	for i := 0; i < 10; i++ {
		if got := mustGroups(t, entities, fn); !reflect.DeepEqual(got, first) {
			t.Fatalf("Non-deterministic grouping: %v vs %v", got, first)
		}
	}
}
