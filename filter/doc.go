// Package filter implements C7: a stack of declarative filters that flip
// visibility bits and/or drive analyses. The engine never tracks which bits
// a given filter flipped; Apply always resets the mask to "all enabled, all
// visible" and replays the whole stack bottom-up, which is what makes
// re-ordering and re-applying the stack safe.
package filter
