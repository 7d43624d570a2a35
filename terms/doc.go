// Package terms implements the term table and string table model treats as
// an external collaborator: a dense, hash-consed store of terms (head
// symbol + ordered children) plus the anti-unification routines
// (Generalise, GeneralisePattern) that matchloop folds matching-loop blame
// into abstract instantiations with.
//
// The table is append-only and thread-safe: Table and StringTable each guard
// their own state with their own RWMutex.
//
// Anti-unification (see Generalise) computes the least general
// generalisation of two terms: where head symbols and arities agree it
// recurses into children; where they disagree it mints a fresh
// generalisation variable. Pairs already generalised are cached so that
// re-generalising the same two terms returns the same variable — this is
// what makes the fold in matchloop's merge functions order-independent up
// to variable renaming.
package terms
