// Package msggame contains game message definitions and parsing methods, exchanged directly between nodes
// as one message per UDP datagram.
//
// Game message interface definitions are sealed within this package.
package msggame

type Message interface {
	// MarshalGameMessage returns the version, type and payload, without any magic.
	MarshalGameMessage() []byte

	Debug() string

	Type() MessageType

	sealed()
}
