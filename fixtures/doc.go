// Package fixtures builds synthetic model.Model instances for tests by
// composing deterministic topology constructors: a single orchestrator
// (BuildModel) applies a sequence of Constructor closures in order over a
// shared Builder, so a test can stack "one linear chain" with "one
// self-loop" with "two interleaved chains sharing a root" without
// hand-writing the event sequence each time.
package fixtures
