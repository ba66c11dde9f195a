package graph

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mohamedthameursassi/flightroutes/models"
)

// DuplicatePolicy decides what Build does with a second connection between
// the same unordered pair of locations.
type DuplicatePolicy int

const (
	// DuplicateReject fails the build with ErrDuplicateEdge.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateLastWins replaces the earlier connection's attributes.
	DuplicateLastWins
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReject:
		return "reject"
	case DuplicateLastWins:
		return "last_wins"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject", "strict":
		return DuplicateReject, nil
	case "last_wins", "last-wins", "overwrite":
		return DuplicateLastWins, nil
	default:
		return DuplicateReject, fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// RouteGraph is an undirected, simple graph of locations. It is read-only
// after Build, so concurrent queries need no locking.
type RouteGraph struct {
	nodes     map[string]struct{}
	order     []string
	adj       map[string]map[string]models.Attributes
	neighbors map[string][]string // sorted ascending
	edgeCount int
}

func newRouteGraph() *RouteGraph {
	return &RouteGraph{
		nodes: make(map[string]struct{}),
		adj:   make(map[string]map[string]models.Attributes),
	}
}

// Build adds every catalogued location as a node, isolated or not, and every
// connection as an undirected edge.
func Build(cat *Catalogue, conns []models.Connection, policy DuplicatePolicy) (*RouteGraph, error) {
	g := newRouteGraph()
	for _, name := range cat.All() {
		g.addNode(name)
	}
	for i, c := range conns {
		if err := g.addEdge(c, policy); err != nil {
			return nil, fmt.Errorf("connection %d (%s - %s): %w", i, c.Origin, c.Destination, err)
		}
	}
	g.index()
	return g, nil
}

func (g *RouteGraph) addNode(name string) {
	if _, ok := g.nodes[name]; ok {
		return
	}
	g.nodes[name] = struct{}{}
	g.order = append(g.order, name)
	g.adj[name] = make(map[string]models.Attributes)
}

func (g *RouteGraph) addEdge(c models.Connection, policy DuplicatePolicy) error {
	if _, ok := g.nodes[c.Origin]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, c.Origin)
	}
	if _, ok := g.nodes[c.Destination]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, c.Destination)
	}
	if c.Origin == c.Destination {
		return fmt.Errorf("%w: %q", ErrSelfLoop, c.Origin)
	}
	if err := validateAttributes(c.Attributes); err != nil {
		return err
	}

	_, exists := g.adj[c.Origin][c.Destination]
	if exists && policy != DuplicateLastWins {
		return ErrDuplicateEdge
	}
	if !exists {
		g.edgeCount++
	}
	g.adj[c.Origin][c.Destination] = c.Attributes
	g.adj[c.Destination][c.Origin] = c.Attributes
	return nil
}

func validateAttributes(a models.Attributes) error {
	if a.Cost < 0 || math.IsNaN(a.Cost) || math.IsInf(a.Cost, 0) {
		return fmt.Errorf("%w: cost %v", ErrInvalidAttribute, a.Cost)
	}
	if a.DistanceKm < 0 || math.IsNaN(a.DistanceKm) || math.IsInf(a.DistanceKm, 0) {
		return fmt.Errorf("%w: distance %v", ErrInvalidAttribute, a.DistanceKm)
	}
	if a.DurationMin < 0 {
		return fmt.Errorf("%w: duration %d", ErrInvalidAttribute, a.DurationMin)
	}
	return nil
}

func (g *RouteGraph) index() {
	g.neighbors = make(map[string][]string, len(g.adj))
	for node, next := range g.adj {
		list := make([]string, 0, len(next))
		for n := range next {
			list = append(list, n)
		}
		sort.Strings(list)
		g.neighbors[node] = list
	}
}

func (g *RouteGraph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Nodes returns node names in the catalogue order used at build time.
func (g *RouteGraph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

func (g *RouteGraph) NodeCount() int { return len(g.order) }

func (g *RouteGraph) EdgeCount() int { return g.edgeCount }

// Neighbors returns the nodes adjacent to node in ascending order.
func (g *RouteGraph) Neighbors(node string) ([]string, error) {
	if !g.HasNode(node) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, node)
	}
	list := g.neighbors[node]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

func (g *RouteGraph) EdgeAttributes(u, v string) (models.Attributes, error) {
	attrs, ok := g.adj[u][v]
	if !ok {
		return models.Attributes{}, fmt.Errorf("%w: %q - %q", ErrNoSuchEdge, u, v)
	}
	return attrs, nil
}

// Connections lists every edge once, with endpoints ordered so that
// Origin < Destination, sorted by origin then destination.
func (g *RouteGraph) Connections() []models.Connection {
	out := make([]models.Connection, 0, g.edgeCount)
	for u, next := range g.adj {
		for v, attrs := range next {
			if u < v {
				out = append(out, models.Connection{Origin: u, Destination: v, Attributes: attrs})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Origin != out[j].Origin {
			return out[i].Origin < out[j].Origin
		}
		return out[i].Destination < out[j].Destination
	})
	return out
}

// Without returns a copy of the graph in which node keeps its place but has
// no incident edges.
func (g *RouteGraph) Without(node string) (*RouteGraph, error) {
	if !g.HasNode(node) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, node)
	}
	out := newRouteGraph()
	for _, name := range g.order {
		out.addNode(name)
	}
	for _, c := range g.Connections() {
		if c.Origin == node || c.Destination == node {
			continue
		}
		if err := out.addEdge(c, DuplicateReject); err != nil {
			return nil, err
		}
	}
	out.index()
	return out, nil
}

func (g *RouteGraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Nodes: %d | Edges: %d\n", g.NodeCount(), g.EdgeCount())
	for _, name := range g.order {
		fmt.Fprintf(&sb, "[%s]\n", name)
		if len(g.neighbors[name]) == 0 {
			sb.WriteString("    (no connections)\n")
			continue
		}
		for _, n := range g.neighbors[name] {
			a := g.adj[name][n]
			fmt.Fprintf(&sb, "    --> %s | cost %.2f | %.0f km | %d min\n", n, a.Cost, a.DistanceKm, a.DurationMin)
		}
	}
	return sb.String()
}
