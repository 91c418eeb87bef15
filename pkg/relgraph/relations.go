package relgraph

// SharedAttributes returns a RelationFunc that counts shared attribute
// identifiers between two entities, e.g. Reactome pathway memberships. An
// entity absent from the map contributes no attributes and therefore no
// connections; callers that need to distinguish "no data" from "no overlap"
// should track missing entities separately before building relations.
func SharedAttributes(attrs map[string][]string) RelationFunc {
	sets := make(map[string]map[string]struct{}, len(attrs))
	for entity, values := range attrs {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		sets[entity] = set
	}

	return func(a, b string) (int, error) {
		setA := sets[a]
		setB := sets[b]
		if len(setA) > len(setB) {
			setA, setB = setB, setA
		}
		shared := 0
		for v := range setA {
			if _, ok := setB[v]; ok {
				shared++
			}
		}
		return shared, nil
	}
}

// DirectInteractions returns a RelationFunc over an explicit list of
// interacting pairs, e.g. protein-protein interaction records. The relation
// is symmetric regardless of the order pairs were reported in.
func DirectInteractions(pairs [][2]string) RelationFunc {
	adjacency := make(map[string]map[string]struct{})
	add := func(from, to string) {
		if adjacency[from] == nil {
			adjacency[from] = make(map[string]struct{})
		}
		adjacency[from][to] = struct{}{}
	}
	for _, p := range pairs {
		if p[0] == p[1] {
			continue
		}
		add(p[0], p[1])
		add(p[1], p[0])
	}

	return func(a, b string) (int, error) {
		if _, ok := adjacency[a][b]; ok {
			return 1, nil
		}
		return 0, nil
	}
}
