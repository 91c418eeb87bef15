// Package relgraph turns pairwise "shares-X" relations over a set of entity
// identifiers into an undirected graph and partitions it into connected
// groups ranked by size. It is a pure transform pipeline: relations are
// computed for every ordered pair, deduplicated through a canonical unordered
// key, and component membership is derived fresh on each call.
package relgraph

import (
	"fmt"

	apperrors "github.com/mrcieu/epigraphdb-go/pkg/errors"
)

// KeySeparator joins the two sorted identifiers of a canonical pair key.
const KeySeparator = "|"

// PairRelation records the relation computed for one ordered pair of entities
type PairRelation struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Key       string `json:"key"`
	Count     int    `json:"count"`
	Connected bool   `json:"connected"`
}

// RelationFunc reports how strongly two entities are related. A count of zero
// means not connected; any positive count marks the pair as connected.
type RelationFunc func(a, b string) (int, error)

// CanonicalKey returns the unordered key for a pair: the two identifiers
// sorted lexicographically and joined with KeySeparator, so (a,b) and (b,a)
// collapse to the same key.
func CanonicalKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + KeySeparator + b
}

// ComputePairwiseRelations evaluates fn for every ordered pair (i, j) with
// i != j over the given entity identifiers. Identifiers must be unique since
// identity is the graph's vertex key. Fewer than two entities yields an empty
// result. A failing relation function aborts the computation with the
// offending pair attached; a silently skipped pair would change connectivity.
func ComputePairwiseRelations(entities []string, fn RelationFunc) ([]PairRelation, error) {
	if err := validateEntities(entities); err != nil {
		return nil, err
	}

	relations := []PairRelation{}
	if len(entities) < 2 {
		return relations, nil
	}

	for i, a := range entities {
		for j, b := range entities {
			if i == j {
				continue
			}
			count, err := fn(a, b)
			if err != nil {
				return nil, apperrors.NewRelationComputationFailed(a, b, err)
			}
			relations = append(relations, PairRelation{
				A:         a,
				B:         b,
				Key:       CanonicalKey(a, b),
				Count:     count,
				Connected: count > 0,
			})
		}
	}

	return relations, nil
}

func validateEntities(entities []string) error {
	seen := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		if _, ok := seen[e]; ok {
			return apperrors.NewInvalidInput("entities", fmt.Sprintf("duplicate identifier %q", e))
		}
		seen[e] = struct{}{}
	}
	return nil
}
