package orchid

import (
	"github.com/edup2p/orchid/types/entity"
)

type ShipView struct {
	Kind entity.ShipKind
	Ship entity.Ship
}

// Snapshot is a copy of everything a renderer draws, it shares no memory with the session.
type Snapshot struct {
	Role  Role
	Phase Phase

	Ships   []ShipView
	Bullets []entity.Bullet

	SpecialReady bool
	ShieldReady  bool

	Peers int
	// Converged holds once there is a replica for every peer.
	Converged bool
}

// LocalPlayer returns the view of the local ship, it is always the first ship.
func (s Snapshot) LocalPlayer() ShipView {
	return s.Ships[0]
}

func (s *Session) Snapshot() Snapshot {
	ships := make([]ShipView, 0, 2+s.dir.ReplicaCount())

	ships = append(ships,
		ShipView{Kind: entity.LocalPlayer, Ship: s.player},
		ShipView{Kind: entity.Boss, Ship: s.enemy},
	)

	for _, r := range s.dir.Replicas() {
		ships = append(ships, ShipView{Kind: entity.RemotePlayer, Ship: *r})
	}

	return Snapshot{
		Role:         s.role,
		Phase:        s.phase,
		Ships:        ships,
		Bullets:      s.Bullets(),
		SpecialReady: s.SpecialReady(),
		ShieldReady:  s.ShieldReady(),
		Peers:        s.dir.PeerCount(),
		Converged:    s.dir.Converged(),
	}
}
