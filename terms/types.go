package terms

import (
	"errors"
	"sync"

	"github.com/arborly/axiomgraph/idx"
)

// Sentinel errors for the terms package.
var (
	// ErrUnknownTerm indicates a TermIdx outside the table's current bounds.
	ErrUnknownTerm = errors.New("terms: unknown term index")
	// ErrUnknownString indicates a string-table id outside current bounds.
	ErrUnknownString = errors.New("terms: unknown string index")
)

// StringIdx indexes into the String table (symbol names, quantifier names).
type StringIdx int32

// StringTable interns strings so that symbol names are stored once.
type StringTable struct {
	mu      sync.RWMutex
	strs    []string
	byValue map[string]StringIdx
}

// NewStringTable returns an empty, ready-to-use StringTable.
func NewStringTable() *StringTable {
	return &StringTable{byValue: make(map[string]StringIdx)}
}

// Intern returns the StringIdx for s, inserting it if not already present.
// Complexity: O(1) amortized.
func (s *StringTable) Intern(str string) StringIdx {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byValue[str]; ok {
		return id
	}
	id := StringIdx(len(s.strs))
	s.strs = append(s.strs, str)
	s.byValue[str] = id

	return id
}

// Get returns the string stored at id, or ErrUnknownString.
func (s *StringTable) Get(id StringIdx) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if int(id) < 0 || int(id) >= len(s.strs) {
		return "", ErrUnknownString
	}

	return s.strs[id], nil
}

// genVarMarker is a reserved name for generalisation variables. Term does
// not store it: a generalisation variable is flagged by Term.isGenVar and
// numbered by Term.GenVar.
const genVarMarker = "\x00gen"

// Term is a node in the term DAG: a head symbol (interned in a StringTable)
// applied to zero or more ordered children. Terms are hash-consed: two
// structurally identical terms always share the same TermIdx.
type Term struct {
	// Head is the interned head symbol; it is unused for a generalisation
	// variable, whose unique number GenVar holds instead.
	Head     StringIdx
	Children []idx.TermIdx
	GenVar   int // valid iff this term is a generalisation variable
	isGenVar bool
}

// IsGenVar reports whether t is a generalisation variable introduced by
// anti-unification rather than a concrete term from the log.
func (t Term) IsGenVar() bool { return t.isGenVar }

// pairKey is an unordered pair of term indices, used to cache generalisation
// results so that re-generalising the same two terms is idempotent and
// order-independent.
type pairKey struct{ a, b idx.TermIdx }

func makePairKey(a, b idx.TermIdx) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// sig is the structural signature used for hash-consing: identical terms
// (same head, same children, same gen-var identity) share one TermIdx.
type sig struct {
	head     StringIdx
	isGenVar bool
	genVar   int
	children string // children encoded as comma-separated decimal ids
}

// Table is the append-only, hash-consed term table.
type Table struct {
	mu         sync.RWMutex
	strings    *StringTable
	terms      []Term
	byStruct   map[sig]idx.TermIdx
	genCache   map[pairKey]idx.TermIdx
	nextGenVar int
}

// NewTable returns an empty term table backed by the given string table.
func NewTable(strings *StringTable) *Table {
	return &Table{
		strings:  strings,
		byStruct: make(map[sig]idx.TermIdx),
		genCache: make(map[pairKey]idx.TermIdx),
	}
}

// Strings returns the string table backing this term table's head symbols.
func (t *Table) Strings() *StringTable { return t.strings }
