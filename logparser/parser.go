package logparser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
)

// Loader turns a stream of trace records into a model.Model. It keeps just
// enough state to resolve the textual ids a record references to the table
// indices the model actually stores, plus the "currently open" instantiation
// block so attach-enode/eq-expl records that occur between an instance and
// its end-of-instance are attributed to the right instantiation.
type Loader struct {
	m *model.Model

	idToTerm  map[string]idx.TermIdx
	idToENode map[string]idx.ENodeIdx
	quantByID map[string]idx.QuantIdx

	pending map[string]pendingMatch
	current *idx.InstIdx

	line    int
	errs    []RecordError
}

type pendingMatch struct {
	quant   idx.QuantIdx
	pattern idx.TermIdx
	blamed  []model.BlameKind
}

// NewLoader returns a Loader that will build into a fresh Model.
func NewLoader() *Loader {
	m := model.NewModel()
	return &Loader{
		m:         m,
		idToTerm:  make(map[string]idx.TermIdx),
		idToENode: make(map[string]idx.ENodeIdx),
		quantByID: make(map[string]idx.QuantIdx),
		pending:   make(map[string]pendingMatch),
	}
}

// Model returns the model built so far.
func (l *Loader) Model() *model.Model { return l.m }

// Load reads r line by line and feeds each whitespace-split record to the
// loader. It never returns an error for a bad record: those are collected
// into the returned Result and the load continues. Load only returns an
// error for an I/O failure on r itself.
func Load(r io.Reader) (*model.Model, Result, error) {
	l := NewLoader()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		l.line++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		l.dispatch(strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return l.m, Result{Errors: l.errs}, err
	}
	return l.m, Result{Errors: l.errs}, nil
}

func (l *Loader) fail(err error) {
	l.errs = append(l.errs, RecordError{Line: l.line, Err: err})
}

func (l *Loader) dispatch(fields []string) {
	switch fields[0] {
	case "mk-quant":
		l.handleMkQuant(fields)
	case "mk-var":
		l.handleMkVar(fields)
	case "mk-app":
		l.handleMkApp(fields)
	case "attach-enode":
		l.handleAttachENode(fields)
	case "eq-expl":
		l.handleEqExpl(fields)
	case "new-match":
		l.handleNewMatch(fields)
	case "instance", "inst-discovered":
		l.handleInstance(fields)
	case "end-of-instance":
		l.current = nil
	case "push", "pop", "begin-check", "query-done", "assign", "decide",
		"decide-and-or", "resolve-process", "resolve-lit", "conflict",
		"eof", "tool-version":
		// Recognised but outside analytical scope: no-ops.
	default:
		l.fail(ErrUnknownHeader)
	}
}

func (l *Loader) handleMkQuant(fields []string) {
	if len(fields) < 3 {
		l.fail(ErrMalformedRecord)
		return
	}
	id, name := fields[1], fields[2]
	l.quantByID[id] = l.m.AddQuant(name)
}

func (l *Loader) handleMkVar(fields []string) {
	if len(fields) < 3 {
		l.fail(ErrMalformedRecord)
		return
	}
	id, name := fields[1], fields[2]
	l.idToTerm[id] = l.m.Terms.Mk(name)
}

func (l *Loader) handleMkApp(fields []string) {
	if len(fields) < 3 {
		l.fail(ErrMalformedRecord)
		return
	}
	id, name := fields[1], fields[2]
	children := make([]idx.TermIdx, 0, len(fields)-3)
	ok := true
	for _, ref := range fields[3:] {
		t, found := l.idToTerm[ref]
		if !found {
			ok = false
			break
		}
		children = append(children, t)
	}
	if !ok {
		l.fail(ErrUnknownReference)
		return
	}
	l.idToTerm[id] = l.m.Terms.Mk(name, children...)
}

func (l *Loader) handleAttachENode(fields []string) {
	if len(fields) < 3 {
		l.fail(ErrMalformedRecord)
		return
	}
	enodeID, termRef := fields[1], fields[2]
	term, ok := l.idToTerm[termRef]
	if !ok {
		l.fail(ErrUnknownReference)
		return
	}
	l.idToENode[enodeID] = l.m.AddENode(term, l.current)
}

func (l *Loader) handleEqExpl(fields []string) {
	if len(fields) < 4 {
		l.fail(ErrMalformedRecord)
		return
	}
	toRef, kindTok, fromRef := fields[1], fields[2], fields[3]
	to, ok1 := l.idToENode[toRef]
	from, ok2 := l.idToENode[fromRef]
	if !ok1 || !ok2 {
		l.fail(ErrUnknownReference)
		return
	}
	kind := model.EqLiteral
	if kindTok == "cg" {
		kind = model.EqCongruence
	}
	source := ""
	if len(fields) >= 5 {
		source = fields[4]
	}
	l.m.AddEquality(model.Equality{
		Kind:      kind,
		From:      from,
		To:        to,
		CreatedBy: l.current,
		Source:    source,
	})
}

func (l *Loader) handleNewMatch(fields []string) {
	if len(fields) < 4 {
		l.fail(ErrMalformedRecord)
		return
	}
	fp, quantID, patternRef := fields[1], fields[2], fields[3]
	quant, ok := l.quantByID[quantID]
	if !ok {
		l.fail(ErrUnknownReference)
		return
	}
	pattern, ok := l.idToTerm[patternRef]
	if !ok {
		l.fail(ErrUnknownReference)
		return
	}

	var blamed []model.BlameKind
	for _, ref := range fields[4:] {
		enode, found := l.idToENode[ref]
		if !found {
			l.fail(ErrUnknownReference)
			return
		}
		blamed = append(blamed, model.BlameKind{Term: enode})
	}
	l.pending[fp] = pendingMatch{quant: quant, pattern: pattern, blamed: blamed}
}

func (l *Loader) handleInstance(fields []string) {
	if len(fields) < 2 {
		l.fail(ErrMalformedRecord)
		return
	}
	fp := fields[1]
	pm, ok := l.pending[fp]
	if !ok {
		l.fail(ErrUnknownReference)
		return
	}
	delete(l.pending, fp)

	matchID := l.m.AddMatch(model.Match{
		Kind: model.MatchKind{
			Tag:     model.MatchQuantifier,
			Quant:   pm.quant,
			Pattern: pm.pattern,
		},
		Blamed: pm.blamed,
	})

	inst := model.Instantiation{Match: matchID, Fingerprint: parseFingerprint(fp)}
	if len(fields) >= 3 {
		if gen, err := strconv.ParseUint(fields[2], 10, 32); err == nil {
			g := uint32(gen)
			inst.ZGeneration = &g
		}
	}
	instID := l.m.AddInstantiation(inst)
	l.current = &instID
}

func parseFingerprint(s string) uint64 {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		v, _ = strconv.ParseUint(s, 10, 64)
	}
	return v
}
