// Package report implements the crowd-sourced status aggregator: an owned
// in-memory tally of per-shop open/closed votes with a derived status and
// confidence computed on every read. Tallies are deliberately ephemeral -
// a process restart resets the crowd signal, which is not an audit log.
package report
