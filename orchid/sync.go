package orchid

import (
	"github.com/edup2p/orchid/types/msggame"
)

func (s *Session) playerUpdate() *msggame.ShipUpdate {
	return &msggame.ShipUpdate{
		ID:     s.player.ID,
		X:      s.player.Pos.X,
		Y:      s.player.Pos.Y,
		Shield: s.player.Shield,
	}
}

// syncPosition broadcasts the local ship after it moved, at most once per BroadcastTick.
func (s *Session) syncPosition(moved bool) {
	if !moved || s.broadcastTimer >= 0 {
		return
	}

	s.broadcast(s.playerUpdate())
	s.broadcastTimer = BroadcastTick
}

// syncShield broadcasts a shield toggle right away, it is not throttled.
func (s *Session) syncShield() {
	s.broadcast(s.playerUpdate())
}
