// Package idx defines the opaque integer handle types shared by every table
// and graph in axiomgraph. Each type tags which dense table it indexes into
// (terms, e-nodes, quantifiers, transitive equalities, matches, instantiations,
// raw graph nodes); they are deliberately distinct Go types so that passing a
// TermIdx where an ENodeIdx is expected is a compile error, not a runtime bug.
//
// None of these types expose arithmetic. Offsetting, incrementing, or
// comparing across kinds is only ever done by the table that owns the kind
// (terms.Table owns TermIdx, rawgraph.Graph owns RawNodeIndex, etc).
// Treat every value here as an opaque key.
package idx

import "fmt"

// TermIdx indexes into the term table.
type TermIdx int32

// ENodeIdx indexes into the e-node table.
type ENodeIdx int32

// QuantIdx indexes into the quantifier table.
type QuantIdx int32

// EqTransIdx indexes into the transitive-equality table.
type EqTransIdx int32

// MatchIdx indexes into the match table.
type MatchIdx int32

// InstIdx indexes into the instantiation table.
type InstIdx int32

// RawNodeIndex indexes a node in the raw dependency graph (rawgraph.Graph).
type RawNodeIndex int32

// None is the sentinel value shared by every index kind, meaning "absent".
// Valid indices are always >= 0.
const None = -1

// Valid reports whether the index refers to a real row (i.e. is not None).
func (t TermIdx) Valid() bool { return t >= 0 }

// Valid reports whether the index refers to a real row (i.e. is not None).
func (e ENodeIdx) Valid() bool { return e >= 0 }

// Valid reports whether the index refers to a real row (i.e. is not None).
func (q QuantIdx) Valid() bool { return q >= 0 }

// Valid reports whether the index refers to a real row (i.e. is not None).
func (e EqTransIdx) Valid() bool { return e >= 0 }

// Valid reports whether the index refers to a real row (i.e. is not None).
func (m MatchIdx) Valid() bool { return m >= 0 }

// Valid reports whether the index refers to a real row (i.e. is not None).
func (i InstIdx) Valid() bool { return i >= 0 }

// Valid reports whether the index refers to a real row (i.e. is not None).
func (r RawNodeIndex) Valid() bool { return r >= 0 }

func (t TermIdx) String() string { return fmt.Sprintf("t%d", int32(t)) }
func (e ENodeIdx) String() string { return fmt.Sprintf("e%d", int32(e)) }
func (q QuantIdx) String() string { return fmt.Sprintf("q%d", int32(q)) }
func (e EqTransIdx) String() string { return fmt.Sprintf("eq%d", int32(e)) }
func (m MatchIdx) String() string { return fmt.Sprintf("m%d", int32(m)) }
func (i InstIdx) String() string { return fmt.Sprintf("inst%d", int32(i)) }
func (r RawNodeIndex) String() string { return fmt.Sprintf("n%d", int32(r)) }

// NodeKindTag distinguishes which parser-event table a RawNodeIndex's
// payload came from. RawNodeIndex is an arena index into rawgraph.Graph's
// node slice; NodeKindTag plus the kind-specific idx (carried alongside,
// not here) reconstruct the original typed reference.
type NodeKindTag uint8

const (
	// KindInstantiation tags a raw node produced by a quantifier instantiation event.
	KindInstantiation NodeKindTag = iota
	// KindENode tags a raw node produced by an e-node creation event.
	KindENode
	// KindGivenEquality tags a raw node produced by an explicit solver equality.
	KindGivenEquality
	// KindTransEquality tags a raw node produced by a derived transitive equality.
	KindTransEquality
)

func (k NodeKindTag) String() string {
	switch k {
	case KindInstantiation:
		return "Instantiation"
	case KindENode:
		return "ENode"
	case KindGivenEquality:
		return "GivenEquality"
	case KindTransEquality:
		return "TransEquality"
	default:
		return "Unknown"
	}
}
