// Package watch keeps a processor chain in sync with a changing
// configuration source.
//
// A Source emits raw configuration bytes: once immediately and again on
// every change. A Reloader turns each payload into a new chain and swaps it
// in atomically. A payload that fails to parse or build is reported and
// dropped; the previous chain keeps serving. Lifecycle events are emitted
// as capitan signals.
package watch
