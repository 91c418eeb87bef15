package relgraph

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/mrcieu/epigraphdb-go/pkg/errors"
)

// connects builds a relation function from an explicit set of connected pairs
func connects(pairs ...[2]string) RelationFunc {
	set := make(map[string]struct{})
	for _, p := range pairs {
		set[CanonicalKey(p[0], p[1])] = struct{}{}
	}
	return func(a, b string) (int, error) {
		if _, ok := set[CanonicalKey(a, b)]; ok {
			return 1, nil
		}
		return 0, nil
	}
}

func TestCanonicalKey_Symmetric(t *testing.T) {
	if CanonicalKey("A", "B") != CanonicalKey("B", "A") {
		t.Errorf("Expected identical keys for (A,B) and (B,A)")
	}
	if CanonicalKey("A", "B") != "A|B" {
		t.Errorf("Expected key A|B, got %s", CanonicalKey("A", "B"))
	}
}

func TestComputePairwiseRelations_EmptyAndSingle(t *testing.T) {
	for _, entities := range [][]string{{}, {"A"}} {
		relations, err := ComputePairwiseRelations(entities, connects())
		if err != nil {
			t.Fatalf("ComputePairwiseRelations failed: %v", err)
		}
		if len(relations) != 0 {
			t.Errorf("Expected empty result for %d entities, got %d relations", len(entities), len(relations))
		}
	}
}

func TestComputePairwiseRelations_AllOrderedPairs(t *testing.T) {
	entities := []string{"A", "B", "C", "D"}
	relations, err := ComputePairwiseRelations(entities, connects([2]string{"A", "B"}))
	if err != nil {
		t.Fatalf("ComputePairwiseRelations failed: %v", err)
	}

	// n*(n-1) ordered pairs, none of them self-pairs
	if len(relations) != 12 {
		t.Fatalf("Expected 12 ordered pairs, got %d", len(relations))
	}
	connected := 0
	for _, rel := range relations {
		if rel.A == rel.B {
			t.Errorf("Unexpected self-pair (%s, %s)", rel.A, rel.B)
		}
		if rel.Connected {
			connected++
			if rel.Count < 1 {
				t.Errorf("Connected relation with count %d", rel.Count)
			}
			if rel.Key != CanonicalKey("A", "B") {
				t.Errorf("Unexpected connected pair key %s", rel.Key)
			}
		}
	}
	// (A,B) and (B,A) both report the relation
	if connected != 2 {
		t.Errorf("Expected 2 connected ordered pairs, got %d", connected)
	}
}

func TestComputePairwiseRelations_DuplicateEntities(t *testing.T) {
	_, err := ComputePairwiseRelations([]string{"A", "B", "A"}, connects())
	if err == nil {
		t.Fatal("Expected error for duplicate entities")
	}
	var invalid *apperrors.ErrInvalidInput
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected ErrInvalidInput, got %T", err)
	}
}

func TestComputePairwiseRelations_RelationError(t *testing.T) {
	boom := fmt.Errorf("attribute fetch failed")
	fn := func(a, b string) (int, error) {
		if a == "B" && b == "C" {
			return 0, boom
		}
		return 0, nil
	}

	_, err := ComputePairwiseRelations([]string{"A", "B", "C"}, fn)
	if err == nil {
		t.Fatal("Expected error from failing relation function")
	}
	var relErr *apperrors.ErrRelationComputationFailed
	if !errors.As(err, &relErr) {
		t.Fatalf("Expected ErrRelationComputationFailed, got %T", err)
	}
	if relErr.EntityA != "B" || relErr.EntityB != "C" {
		t.Errorf("Expected offending pair (B, C), got (%s, %s)", relErr.EntityA, relErr.EntityB)
	}
	if !errors.Is(err, boom) {
		t.Error("Expected wrapped relation function error")
	}
}
