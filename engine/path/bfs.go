package path

// NeighborSource yields the precomputed neighbors of a node.
type NeighborSource[T any] interface {
	GetNeighbors(node T) []T
}

// BreadthFirst searches from start until destination is discovered.
// It returns the path from start to destination (both inclusive) with the fewest steps,
// or nil when destination cannot be reached. Each node records only its parent,
// the path is rebuilt once at the end.
func BreadthFirst[T comparable](start, destination T, source NeighborSource[T]) []T {
	if start == destination {
		return []T{start}
	}
	parent := map[T]T{}
	visited := map[T]bool{start: true}
	frontier := []T{start}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, neighbor := range source.GetNeighbors(current) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = current
			if neighbor == destination {
				return PathFromPredecessors(parent, start, destination)
			}
			frontier = append(frontier, neighbor)
		}
	}
	return nil
}
