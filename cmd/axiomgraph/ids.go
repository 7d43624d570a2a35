package main

import "github.com/arborly/axiomgraph/idx"

func idxQuant(n int) idx.QuantIdx       { return idx.QuantIdx(n) }
func idxNode(n int) idx.RawNodeIndex    { return idx.RawNodeIndex(n) }
