package path

import (
	"math"
)

/*
function Dijkstra(Graph, source):
2      dist[source] ← 0                           // Initialization
3
4      create vertex priority queue Q
5
6      for each vertex v in Graph.Vertices:
7          if v ≠ source
8              dist[v] ← INFINITY                 // Unknown distance from source to v
9              prev[v] ← UNDEFINED                // Predecessor of v
10
11         Q.add_with_priority(v, dist[v])
12
13
14     while Q is not empty:                      // The main loop
15         u ← Q.extract_min()                    // Remove and return best vertex
16         for each neighbor v of u:              // Go through all v neighbors of u
17             alt ← dist[u] + Graph.Edges(u, v)
18             if alt < dist[v]:
19                 dist[v] ← alt
20                 prev[v] ← u
21                 Q.decrease_priority(v, alt)
22
23     return dist, prev
*/

type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) float64
}

// Dijkstra explores every node reachable from source with a total cost of at most maxCost.
// dist holds the cheapest known cost per node, prev the predecessor on that cheapest path.
func Dijkstra[T comparable](source T, maxCost float64, dataSource DijkstraSource[T]) (dist map[T]float64, prev map[T]T) {
	dist = make(map[T]float64)
	prev = make(map[T]T)
	queued := make(map[T]PathNode[T])
	dist[source] = 0
	getDist := func(n T) float64 {
		if d, ok := dist[n]; ok {
			return d
		}
		return math.MaxFloat64
	}
	Q := NewPriorityQueue([]PathNode[T]{NewNode(source)})
	for Q.Len() > 0 {
		currentNode := popNode(&Q)
		current := currentNode.GetValue()
		delete(queued, current)
		for _, neighbor := range dataSource.GetNeighbors(current) {
			neighborDist := getDist(current) + dataSource.GetCost(current, neighbor)
			if neighborDist > maxCost || neighborDist >= getDist(neighbor) {
				continue
			}
			dist[neighbor] = neighborDist
			prev[neighbor] = current
			if existingNode, ok := queued[neighbor]; ok {
				Q.update(existingNode, neighborDist)
			} else {
				neighborNode := NewNode(neighbor)
				neighborNode.SetPriority(neighborDist)
				queued[neighbor] = neighborNode
				pushNode[T](&Q, neighborNode)
			}
		}
	}
	return
}

// PathFromPredecessors walks prev backwards from target to the node without predecessor.
// The result starts at the source and ends at target.
func PathFromPredecessors[T comparable](prev map[T]T, source, target T) []T {
	if target != source {
		if _, ok := prev[target]; !ok {
			return nil
		}
	}
	reversed := []T{target}
	current := target
	for current != source {
		current = prev[current]
		reversed = append(reversed, current)
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}
