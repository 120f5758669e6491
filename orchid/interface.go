package orchid

//go:generate mockgen -destination=mocks/orchid.go -package=mocks . Renderer,InputSource

import (
	"net/netip"

	"github.com/edup2p/orchid/types/entity"
)

// Transport is the datagram socket a session speaks through.
type Transport interface {
	// WriteTo sends one datagram, it must not block on a slow peer.
	WriteTo(pkt []byte, to netip.AddrPort) error

	// TryRecv returns one pending datagram, truncated to limit bytes,
	// or ErrNoDataAvailable when nothing is pending. It never blocks.
	TryRecv(limit int) (pkt []byte, src netip.AddrPort, err error)

	LocalAddrPort() netip.AddrPort
}

// Renderer is the drawing collaborator, it gets a copy of the state after every tick.
type Renderer interface {
	Bounds() (width, height float32)

	Render(snap Snapshot)
}

// InputSource reports the intents held by the local player at the start of a tick.
type InputSource interface {
	Input() InputState
}

type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Fire    bool
	Special bool
	Shield  bool

	Restart bool
}

// Any reports whether any gameplay intent is held, which is what starts a match.
func (in InputState) Any() bool {
	return in.Up || in.Down || in.Left || in.Right || in.Fire || in.Special || in.Shield
}

func (in InputState) Intents() entity.Intents {
	return entity.Intents{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}
}
