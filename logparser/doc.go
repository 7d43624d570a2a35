// Package logparser is a line-oriented tokeniser for solver trace logs: it
// turns a stream of whitespace-split records into calls against a
// model.Model. Unknown headers are logged and skipped; a malformed
// recognised record is reported through Result.Errors but never aborts the
// load — the partially-built model is always usable.
package logparser
