package terms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arborly/axiomgraph/idx"
)

// signatureOf computes the hash-consing signature for a candidate term.
func signatureOf(head StringIdx, children []idx.TermIdx) sig {
	var b strings.Builder
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	return sig{head: head, children: b.String()}
}

// Mk interns a concrete term (head symbol, ordered children) and returns its
// TermIdx, reusing an existing row if an identical term already exists.
// Complexity: O(1 + len(children)) amortized.
func (t *Table) Mk(head string, children ...idx.TermIdx) idx.TermIdx {
	h := t.strings.Intern(head)

	t.mu.Lock()
	defer t.mu.Unlock()

	s := signatureOf(h, children)
	if existing, ok := t.byStruct[s]; ok {
		return existing
	}
	id := idx.TermIdx(len(t.terms))
	t.terms = append(t.terms, Term{Head: h, Children: append([]idx.TermIdx(nil), children...)})
	t.byStruct[s] = id

	return id
}

// At returns the term stored at id, or ErrUnknownTerm.
func (t *Table) At(id idx.TermIdx) (Term, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(id) < 0 || int(id) >= len(t.terms) {
		return Term{}, ErrUnknownTerm
	}

	return t.terms[id], nil
}

// freshGenVarLocked allocates a new generalisation variable term. Callers must
// already hold t.mu.
func (t *Table) freshGenVarLocked() idx.TermIdx {
	v := t.nextGenVar
	t.nextGenVar++
	id := idx.TermIdx(len(t.terms))
	term := Term{GenVar: v, isGenVar: true}
	s := sig{isGenVar: true, genVar: v}
	t.terms = append(t.terms, term)
	t.byStruct[s] = id

	return id
}

// Generalise computes the least general generalisation (anti-unifier) of a
// and b: where both terms share the same head symbol and arity it recurses
// into corresponding children and rebuilds the term; everywhere else it
// substitutes a single fresh generalisation variable, reused from cache if
// this exact unordered pair (or an equivalent one already collapsed to the
// same two sub-ids) was generalised before.
//
// Generalise(a, a) == a. Generalise(a, b) == Generalise(b, a) (same
// resulting TermIdx): this is required for matching-loop detection to be
// independent of the order in which blame terms are folded together.
//
// Complexity: O(size of the smaller term) thanks to hash-consing memoisation.
func (t *Table) Generalise(a, b idx.TermIdx) (idx.TermIdx, error) {
	if a == b {
		return a, nil
	}

	key := makePairKey(a, b)
	t.mu.RLock()
	if cached, ok := t.genCache[key]; ok {
		t.mu.RUnlock()
		return cached, nil
	}
	t.mu.RUnlock()

	ta, err := t.At(a)
	if err != nil {
		return idx.TermIdx(idx.None), err
	}
	tb, err := t.At(b)
	if err != nil {
		return idx.TermIdx(idx.None), err
	}

	var result idx.TermIdx
	switch {
	case ta.isGenVar || tb.isGenVar:
		result = t.mintGenVar()
	case ta.Head != tb.Head || len(ta.Children) != len(tb.Children):
		result = t.mintGenVar()
	default:
		children := make([]idx.TermIdx, len(ta.Children))
		for i := range ta.Children {
			gc, gerr := t.Generalise(ta.Children[i], tb.Children[i])
			if gerr != nil {
				return idx.TermIdx(idx.None), gerr
			}
			children[i] = gc
		}
		result = t.mkGeneralised(ta.Head, children)
	}

	t.mu.Lock()
	t.genCache[key] = result
	t.mu.Unlock()

	return result, nil
}

// mintGenVar is the exported-package-internal wrapper acquiring the lock
// around freshGenVarLocked.
func (t *Table) mintGenVar() idx.TermIdx {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.freshGenVarLocked()
}

// mkGeneralised hash-conses a rebuilt (possibly partially-generalised) term
// without re-interning its head symbol (already a StringIdx).
func (t *Table) mkGeneralised(head StringIdx, children []idx.TermIdx) idx.TermIdx {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := signatureOf(head, children)
	if existing, ok := t.byStruct[s]; ok {
		return existing
	}
	id := idx.TermIdx(len(t.terms))
	t.terms = append(t.terms, Term{Head: head, Children: children})
	t.byStruct[s] = id

	return id
}

// GeneraliseAll folds Generalise over a non-empty slice of terms. Because
// Generalise is commutative and associative up to variable renaming (it
// computes the meet of a specificity lattice), the result is independent of
// fold order — required so that merging matching-loop blame terms in
// event-emission order never biases which positions become generalisation
// variables.
func (t *Table) GeneraliseAll(ids []idx.TermIdx) (idx.TermIdx, error) {
	if len(ids) == 0 {
		return idx.TermIdx(idx.None), fmt.Errorf("terms: GeneraliseAll called with no terms")
	}
	acc := ids[0]
	for _, id := range ids[1:] {
		var err error
		acc, err = t.Generalise(acc, id)
		if err != nil {
			return idx.TermIdx(idx.None), err
		}
	}

	return acc, nil
}

// GeneralisePattern returns a display-stable canonicalisation of a pattern
// term. Patterns are used verbatim as abstract-instantiation map keys
// (together with a QuantIdx) so generalisation must never change their
// identity; this only affects how the pattern is rendered (see String).
func (t *Table) GeneralisePattern(p idx.TermIdx) (idx.TermIdx, error) {
	if _, err := t.At(p); err != nil {
		return idx.TermIdx(idx.None), err
	}

	return p, nil
}

// String renders a term (and any generalisation variables within it) as a
// human-readable s-expression, e.g. "(f ?g0 x)".
func (t *Table) String(id idx.TermIdx) string {
	term, err := t.At(id)
	if err != nil {
		return "<?>"
	}
	if term.isGenVar {
		return fmt.Sprintf("?g%d", term.GenVar)
	}
	head, _ := t.strings.Get(term.Head)
	if len(term.Children) == 0 {
		return head
	}
	parts := make([]string, len(term.Children))
	for i, c := range term.Children {
		parts[i] = t.String(c)
	}

	return fmt.Sprintf("(%s %s)", head, strings.Join(parts, " "))
}
