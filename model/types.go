package model

import (
	"errors"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/terms"
)

// Sentinel errors surfaced by model lookups. Parser-surface errors
// (InvalidFingerprint, UnknownId, UnknownQuantifierIdx) are non-fatal for a
// load: the loader logs them and continues (see logparser.Result.Errors).
var (
	ErrUnknownQuantifier  = errors.New("model: unknown quantifier index")
	ErrUnknownMatch       = errors.New("model: unknown match index")
	ErrUnknownInst        = errors.New("model: unknown instantiation index")
	ErrUnknownENode       = errors.New("model: unknown e-node index")
	ErrUnknownEquality    = errors.New("model: unknown equality index")
	ErrNoQuantifier       = errors.New("model: match has no associated quantifier")
	ErrNoPattern          = errors.New("model: match has no associated pattern")
	ErrInvalidFingerprint = errors.New("model: invalid fingerprint")
)

// Quant is a quantified formula the solver may instantiate.
type Quant struct {
	Name terms.StringIdx
}

// EqKind distinguishes an atomic (literal/congruence) equality step from a
// derived transitive equality composed from a chain of such steps.
type EqKind uint8

const (
	// EqLiteral is an equality explicitly asserted by the solver.
	EqLiteral EqKind = iota
	// EqCongruence is an equality derived by congruence closure.
	EqCongruence
	// EqTransitive is composed from a Chain of prior equality steps.
	EqTransitive
)

// Equality is one row of the equality table. Literal/Congruence rows are
// atomic; Transitive rows record the Chain of constituent steps that were
// composed to derive From = To.
type Equality struct {
	Kind EqKind
	From idx.ENodeIdx
	To   idx.ENodeIdx
	// CreatedBy is the instantiation during whose processing this atomic
	// equality step was introduced, if any. Valid only for Literal/Congruence.
	CreatedBy *idx.InstIdx
	// Chain holds the constituent equality steps for a Transitive equality.
	Chain []idx.EqTransIdx
	// Source names the asserting context (e.g. an axiom or theory name) for
	// a Literal/Congruence equality; the raw node variant GivenEquality(eq,
	// source) carries it.
	Source string
}

// ENode is the creation of an e-graph node: an equivalence-class
// representative for the term Owner, optionally produced as a side effect
// of instantiation CreatedBy.
type ENode struct {
	Owner     idx.TermIdx
	CreatedBy *idx.InstIdx
}

// MatchKindTag distinguishes the four ways Z3 can discover a match. Only
// Axiom and Quantifier carry a pattern; only MBQI, Axiom and Quantifier carry
// a quantifier.
type MatchKindTag uint8

const (
	MatchMBQI MatchKindTag = iota
	MatchTheorySolving
	MatchAxiom
	MatchQuantifier
)

// MatchKind records how a Match was discovered.
type MatchKind struct {
	Tag MatchKindTag

	// Quant is set for MBQI, Axiom and Quantifier.
	Quant idx.QuantIdx // idx.None if absent
	// Pattern is set for Axiom and Quantifier only.
	Pattern idx.TermIdx // idx.None if absent

	BoundEnodes []idx.ENodeIdx // MBQI, Quantifier
	BoundTerms  []idx.TermIdx  // TheorySolving, Axiom

	AxiomID   terms.StringIdx // TheorySolving
	RewriteOf idx.TermIdx     // TheorySolving; idx.None if absent
}

// QuantIdxOf returns the quantifier this match kind carries, if any.
func (k MatchKind) QuantIdxOf() (idx.QuantIdx, bool) {
	switch k.Tag {
	case MatchMBQI, MatchAxiom, MatchQuantifier:
		if k.Quant.Valid() {
			return k.Quant, true
		}
	}
	return idx.QuantIdx(idx.None), false
}

// PatternOf returns the pattern this match kind carries, if any.
func (k MatchKind) PatternOf() (idx.TermIdx, bool) {
	switch k.Tag {
	case MatchAxiom, MatchQuantifier:
		if k.Pattern.Valid() {
			return k.Pattern, true
		}
	}
	return idx.TermIdx(idx.None), false
}

// IsTheorySolving reports whether this match was discovered by theory
// solving rather than pattern matching — used by the IgnoreTheorySolving
// filter.
func (k MatchKind) IsTheorySolving() bool { return k.Tag == MatchTheorySolving }

// BlameKind is one element of a Match's blame trail: either a term (an
// e-node the pattern matched against) or an equality used to rewrite one.
type BlameKind struct {
	IsEquality bool
	Term       idx.ENodeIdx  // valid iff !IsEquality
	Eq         idx.EqTransIdx // valid iff IsEquality
}

// Match records the blame trail that justifies an Instantiation: which
// pattern (via Kind) fired, and the flat sequence of e-node/equality blames
// used to satisfy it.
type Match struct {
	Kind   MatchKind
	Blamed []BlameKind
}

// Instantiation is a single application of a universally-quantified formula.
type Instantiation struct {
	Match       idx.MatchIdx
	Fingerprint uint64
	// ZGeneration is the solver's internal generation counter, when reported.
	ZGeneration *uint32
	// ProofTerm is the resulting proof term, when the log records one. Never
	// interpreted by this repository (no proof checking, Non-goals).
	ProofTerm   *idx.TermIdx
	YieldsTerms []idx.ENodeIdx
}
