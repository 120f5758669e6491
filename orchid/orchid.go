// Package orchid is the session core of the game: the peer directory, the per-node state machine,
// the entity synchronizer and the simulation tick.
//
// A Session is owned by exactly one goroutine, everything it touches is driven from Session.Tick.
package orchid
