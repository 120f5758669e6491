package msggame

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Connect is sent by a joining peer to the host.
type Connect struct{}

func (c *Connect) MarshalGameMessage() []byte {
	return []byte{byte(v1), byte(ConnectMessage)}
}

func (c *Connect) Debug() string { return "connect" }

func (c *Connect) Type() MessageType { return ConnectMessage }

func (c *Connect) sealed() {}

// Start tells every node to leave the loading phase.
type Start struct{}

func (s *Start) MarshalGameMessage() []byte {
	return []byte{byte(v1), byte(StartMessage)}
}

func (s *Start) Debug() string { return "start" }

func (s *Start) Type() MessageType { return StartMessage }

func (s *Start) sealed() {}

type Restart struct{}

func (r *Restart) MarshalGameMessage() []byte {
	return []byte{byte(v1), byte(RestartMessage)}
}

func (r *Restart) Debug() string { return "restart" }

func (r *Restart) Type() MessageType { return RestartMessage }

func (r *Restart) sealed() {}

// Win is broadcast by the node that saw the boss die.
type Win struct{}

func (w *Win) MarshalGameMessage() []byte {
	return []byte{byte(v1), byte(WinMessage)}
}

func (w *Win) Debug() string { return "win" }

func (w *Win) Type() MessageType { return WinMessage }

func (w *Win) sealed() {}

// Death is broadcast by a node whose own player died.
type Death struct {
	ID uuid.UUID
}

func (d *Death) MarshalGameMessage() []byte {
	return slices.Concat([]byte{byte(v1), byte(DeathMessage)}, d.ID[:])
}

func (d *Death) Debug() string { return fmt.Sprintf("death id=%s", d.ID) }

func (d *Death) Type() MessageType { return DeathMessage }

func (d *Death) sealed() {}
