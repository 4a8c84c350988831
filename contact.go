package motornet

// contact.go analyzes how the tubes of a network touch one another.  The
// pairwise segment crossings are converted into an undirected graph whose
// nodes are tubes and whose edges are contacts, and the graph package's
// built-in algorithms answer the structural questions: which tubes form
// connected islands, and whether cargo bound on one tube can in principle
// reach another by walking and re-binding at contacts.

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// A ContactGraph is the tube-level contact structure of one generated
// network.  It is derived data: regenerate the network and the graph is
// stale
type ContactGraph struct {
	numTubes  int
	crossings []Crossing
	connGraph *simple.WeightedUndirectedGraph
}

// BuildContactGraph runs the O(n^2) overlap enumeration over the network's
// segments and folds the crossings into a tube contact graph.  Crossings
// between segments of the same tube (including the shared end points of
// consecutive segments) do not create edges
func BuildContactGraph(tn *TubeNetwork) *ContactGraph {
	cg := new(ContactGraph)
	if spt := tn.Config().SegmentsPerTube; spt > 0 {
		cg.numTubes = len(tn.Segments) / spt
	}
	cg.crossings = AllOverlaps(tn.Segments)
	cg.connGraph = simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	// every tube is a node, contacts or not, so isolated tubes show up
	// as singleton components
	for tube := 0; tube < cg.numTubes; tube++ {
		cg.connGraph.AddNode(simple.Node(tube))
	}

	for _, crossing := range cg.crossings {
		tubeA := tn.TubeIndex(crossing.SegA)
		tubeB := tn.TubeIndex(crossing.SegB)
		if tubeA == tubeB {
			continue
		}
		weightedEdge := simple.WeightedEdge{F: simple.Node(tubeA), T: simple.Node(tubeB), W: 1.0}
		cg.connGraph.SetWeightedEdge(weightedEdge)
	}
	return cg
}

// Crossings returns the raw segment-level crossing list the graph was
// built from
func (cg *ContactGraph) Crossings() []Crossing {
	return cg.crossings
}

// NumTubes returns the number of tube nodes
func (cg *ContactGraph) NumTubes() int {
	return cg.numTubes
}

// ContactDegree returns the number of distinct tubes the given tube touches
func (cg *ContactGraph) ContactDegree(tube int) int {
	return cg.connGraph.From(int64(tube)).Len()
}

// Components returns the connected components of the contact graph, each a
// list of tube indices.  Tubes in one component are mutually reachable by
// walking and re-binding at contacts
func (cg *ContactGraph) Components() [][]int {
	var components [][]int
	for _, nodes := range topo.ConnectedComponents(cg.connGraph) {
		tubes := make([]int, 0, len(nodes))
		for _, nd := range nodes {
			tubes = append(tubes, int(nd.ID()))
		}
		components = append(components, tubes)
	}
	return components
}

// Reachable reports whether a contact path exists between two tubes, and
// if so how many tube-to-tube hops the shortest one takes
func (cg *ContactGraph) Reachable(fromTube, toTube int) (int, bool) {
	if fromTube == toTube {
		return 0, true
	}
	spTree := path.DijkstraFrom(simple.Node(fromTube), graph.Graph(cg.connGraph))
	dist := spTree.WeightTo(int64(toTube))
	if math.IsInf(dist, 1) {
		return 0, false
	}
	return int(dist), true
}
