package orchid

import (
	"context"
	"net/netip"

	"github.com/edup2p/orchid/types"
	"github.com/edup2p/orchid/types/entity"
	"github.com/edup2p/orchid/types/msggame"
)

// receive takes at most one datagram off the transport and decodes it.
func (s *Session) receive(limit int) (msggame.Message, netip.AddrPort, bool) {
	pkt, src, err := s.dir.transport.TryRecv(limit)
	if err != nil {
		if !isNoData(err) {
			bestEffort(s.L(), err, "receive")
		}
		return nil, src, false
	}

	m, err := s.dir.codec.Decode(pkt)
	if err != nil {
		s.L().Log(context.Background(), types.LevelTrace, "dropping datagram", "from", src, "err", err)
		return nil, src, false
	}

	return m, src, true
}

// drainUpdates is the network step outside the loading phase, it handles at most one datagram.
func (s *Session) drainUpdates() {
	m, src, ok := s.receive(PlayingRecvBuffer)
	if !ok {
		return
	}

	switch m := m.(type) {
	case *msggame.ShipUpdate:
		s.applyShipUpdate(m)
	case *msggame.Bullet:
		s.bullets = append(s.bullets, m.Bullet)
	case *msggame.Restart:
		if s.phase.Over() {
			s.Reset()
		}
	case *msggame.Win:
		if s.phase == Playing || s.phase == Lost {
			s.setPhase(Won)
		}
	case *msggame.Death:
		if r := s.dir.FindReplica(m.ID); r != nil {
			r.Health -= entity.EnemyBulletDamage
			s.L().Info("remote player died", "id", m.ID)
		}
	default:
		s.L().Log(context.Background(), types.LevelTrace, "ignoring message", "msg", m.Debug(), "from", src)
	}
}

func (s *Session) applyShipUpdate(m *msggame.ShipUpdate) {
	if m.ID == entity.BossID {
		if s.role == Peer {
			s.enemy.MoveTo(entity.Point{X: m.X, Y: m.Y})
		}
		return
	}

	r := s.dir.FindReplica(m.ID)
	if r == nil {
		return
	}

	r.MoveTo(entity.Point{X: m.X, Y: m.Y})
	r.Shield = m.Shield
	r.Health = entity.PlayerHealth
}
