// Package model holds the typed, append-only tables the parser (the
// line-oriented tokeniser in package logparser) fills in as it reads an SMT
// solver's event log: terms, e-nodes, quantifiers, matches, instantiations
// and equality explanations.
//
// Tables are dense slices indexed by the opaque handles in package idx.
// Nothing here is safe for concurrent writers: a Model expects a single
// owner (the parser) during load, and read-only access afterwards, so no
// table takes a lock.
package model
