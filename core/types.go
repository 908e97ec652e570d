// All APIs are guarded by a single sync.RWMutex. The trust computation
// itself is single-threaded by design (no operation suspends, no
// cross-goroutine sharing during a run); the lock exists so a Graph can
// still be built, queried, and handed off across goroutines safely as
// a thread-safe container.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertex indicates a zero-value vertex key was supplied.
	ErrEmptyVertex = errors.New("core: empty vertex key")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCapacity indicates a negative capacity was supplied to AddEdge.
	ErrNegativeCapacity = errors.New("core: negative capacity")
)

// Edge is a directed arc to Target, carrying the flow-network
// attributes: a non-negative Capacity, a Flow bounded by it, and an
// optional VertexID tag identifying it as a capacity edge for the named
// original peer. HasVertexID plus VertexID is a tagged-sum in place of
// the ad-hoc vertex_id string-tagging that original_source/advogato/
// tb.py does in Python, since Go has no sum types.
//
// Plain certification-graph edges (no capacity semantics) simply leave
// Capacity/Flow at zero and HasVertexID false; callers that only care
// about graph topology (bfs) ignore them.
//
// AI-HINT: check HasVertexID before reading VertexID; its zero value is
// a valid-looking key (e.g. ""), not a sentinel for "absent".
type Edge[K comparable] struct {
	Target      K
	Capacity    int64
	Flow        int64
	HasVertexID bool
	VertexID    K
}

// adjacency holds a vertex's outedges, preserving insertion order for
// deterministic iteration: order is not semantically required but must
// be deterministic for reproducibility.
type adjacency[K comparable] struct {
	order []K
	edges map[K]*Edge[K]
}

func newAdjacency[K comparable]() *adjacency[K] {
	return &adjacency[K]{edges: make(map[K]*Edge[K])}
}

func (a *adjacency[K]) upsert(e *Edge[K]) {
	if _, exists := a.edges[e.Target]; !exists {
		a.order = append(a.order, e.Target)
	}
	a.edges[e.Target] = e
}

func (a *adjacency[K]) remove(target K) {
	if _, exists := a.edges[target]; !exists {
		return
	}
	delete(a.edges, target)
	for i, k := range a.order {
		if k == target {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}
