package flow

import (
	"errors"
	"fmt"
)

// InfiniteCapacity is the sentinel used for conceptually-infinite edges
// (transposed original edges, antiparallel-fix auxiliary capacities).
// 2^62 is large enough that no sum of finite capacities in a trust graph
// at any realistic scale reaches it, and capacity-1 / capacity-flow
// arithmetic on it stays representable in int64.
const InfiniteCapacity int64 = 1 << 62

// Sentinel errors for the transformer and driver.
var (
	// ErrSourceNotFound is returned when the source vertex is absent from G.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkCollision is returned when the requested supersink key already exists in G.
	ErrSinkCollision = errors.New("flow: supersink key collides with an existing vertex")

	// ErrNegativeCapacity is returned when a vcaps entry is negative.
	ErrNegativeCapacity = errors.New("flow: negative vertex capacity")
)

// VertexKind discriminates the roles a flow-network vertex can play.
// Together with VertexID this models vertex identity as a tagged sum
// rather than a mangled string key, so the transformer is a total
// function over a well-typed domain — in place of the
// "v_in"/"v_out"/"ANTIPARALLEL_u->v" string concatenation that
// original_source/advogato/tb.py uses to the same end.
type VertexKind uint8

const (
	// KindIn is the negative-side split vertex v_in for an original peer.
	KindIn VertexKind = iota
	// KindOut is the positive-side split vertex v_out for an original peer.
	KindOut
	// KindAntiparallel identifies an auxiliary vertex for an antiparallel
	// pair. Transform does not produce it: its auxiliary vertices are
	// string-named vertices of the certification graph, split into
	// KindIn/KindOut like any other vertex.
	KindAntiparallel
	// KindSupersink is the synthetic sink vertex.
	KindSupersink
)

// VertexID is a flow-network vertex key. Peer is the peer this
// vertex derives from (for KindIn/KindOut); for KindAntiparallel, From
// and To name the antiparallel pair (u,v) the auxiliary vertex
// substitutes for the edge u→v; KindSupersink carries no payload.
type VertexID struct {
	Kind VertexKind
	Peer string // valid for KindIn / KindOut
	From string // valid for KindAntiparallel
	To   string // valid for KindAntiparallel
}

// In returns the v_in VertexID for peer.
func In(peer string) VertexID { return VertexID{Kind: KindIn, Peer: peer} }

// Out returns the v_out VertexID for peer.
func Out(peer string) VertexID { return VertexID{Kind: KindOut, Peer: peer} }

// Antiparallel returns the auxiliary VertexID substituting for edge u→v.
func Antiparallel(u, v string) VertexID { return VertexID{Kind: KindAntiparallel, From: u, To: v} }

// Supersink returns the canonical supersink VertexID.
func Supersink() VertexID { return VertexID{Kind: KindSupersink} }

func (v VertexID) String() string {
	switch v.Kind {
	case KindIn:
		return fmt.Sprintf("%s--", v.Peer)
	case KindOut:
		return fmt.Sprintf("%s++", v.Peer)
	case KindAntiparallel:
		return fmt.Sprintf("AP(%s->%s)", v.From, v.To)
	case KindSupersink:
		return "supersink"
	default:
		return "?"
	}
}
