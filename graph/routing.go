package graph

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

// Path is an ordered sequence of location names; consecutive names are
// connected in the graph.
type Path []string

// Legs returns the number of connections the path traverses.
func (p Path) Legs() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// ShortestPath returns a minimum-weight path from origin to destination.
// Ties are broken deterministically: neighbours are expanded in ascending
// name order and a predecessor only changes on a strict improvement. An
// infinite edge weight marks the edge impassable.
func ShortestPath(g *RouteGraph, origin, destination string, s WeightStrategy) (Path, error) {
	if !g.HasNode(origin) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, origin)
	}
	if !g.HasNode(destination) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, destination)
	}
	if origin == destination {
		return Path{origin}, nil
	}
	if isUnweighted(s) {
		return g.breadthFirst(origin, destination)
	}
	return g.dijkstra(origin, destination, s)
}

func (g *RouteGraph) breadthFirst(origin, destination string) (Path, error) {
	cameFrom := make(map[string]string)
	visited := map[string]bool{origin: true}
	queue := []string{origin}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == destination {
			return reconstructPath(cameFrom, current), nil
		}
		for _, next := range g.neighbors[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}

	return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, origin, destination)
}

func (g *RouteGraph) dijkstra(origin, destination string, s WeightStrategy) (Path, error) {
	dist := map[string]float64{origin: 0}
	cameFrom := make(map[string]string)
	closed := make(map[string]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: origin, priority: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.node
		if closed[current] || item.priority > dist[current] {
			continue
		}
		closed[current] = true
		if current == destination {
			return reconstructPath(cameFrom, current), nil
		}

		for _, next := range g.neighbors[current] {
			if closed[next] {
				continue
			}
			w := s.Weight(current, next, g.adj[current][next])
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: strategy %q gave %v for %q - %q", ErrInvalidWeight, s.ID(), w, current, next)
			}
			if math.IsInf(w, 1) {
				continue
			}
			tentative := dist[current] + w
			if old, ok := dist[next]; !ok || tentative < old {
				dist[next] = tentative
				cameFrom[next] = current
				heap.Push(pq, &pqItem{node: next, priority: tentative})
			}
		}
	}

	return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, origin, destination)
}

func reconstructPath(cameFrom map[string]string, current string) Path {
	path := Path{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	slices.Reverse(path)
	return path
}

// PathWeight sums the strategy's weight over every leg of p.
func PathWeight(g *RouteGraph, p Path, s WeightStrategy) (float64, error) {
	total := 0.0
	for i := 0; i+1 < len(p); i++ {
		attrs, err := g.EdgeAttributes(p[i], p[i+1])
		if err != nil {
			return 0, err
		}
		total += s.Weight(p[i], p[i+1], attrs)
	}
	return total, nil
}

type pqItem struct {
	node     string
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

// Equal priorities pop in name order so expansion order is reproducible.
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].node < pq[j].node
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
