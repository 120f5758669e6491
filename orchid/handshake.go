package orchid

import (
	"context"
	"net/netip"

	"github.com/edup2p/orchid/types"
	"github.com/edup2p/orchid/types/entity"
	"github.com/edup2p/orchid/types/msggame"
)

// handshake is the network step of the loading phase.
//
// Every tick re-announces the local ship and handles at most one datagram.
func (s *Session) handshake() {
	s.dir.PinReplicas(entity.PlayerSpawn)

	s.broadcast(&msggame.ShipSnapshot{Ship: s.player})

	m, src, ok := s.receive(LoadingRecvBuffer)
	if !ok {
		return
	}

	switch m := m.(type) {
	case *msggame.ShipSnapshot:
		if m.Ship.Possession != entity.Player || m.Ship.ID == s.player.ID {
			return
		}
		if s.dir.RegisterRemoteShip(m.Ship) {
			s.L().Info("registered remote ship", "id", m.Ship.ID, "from", src)
		}
	case *msggame.Connect:
		if s.role == Host {
			s.acceptConnect(src)
		}
	case *msggame.Address:
		if s.role == Peer {
			ap := m.ResolveFrom(src)
			if s.dir.RegisterPeer(ap) {
				s.L().Info("registered peer", "peer", ap, "via", src)
			}
		}
	case *msggame.Start:
		s.setPhase(Playing)
	default:
		s.L().Log(context.Background(), types.LevelTrace, "ignoring message while loading", "msg", m.Debug(), "from", src)
	}
}

// acceptConnect relays the directory to a joining peer, and the peer to the directory.
//
// A connect from a known peer is answered again without notifying anyone else,
// so that a peer whose first reply got lost can simply ask again.
func (s *Session) acceptConnect(src netip.AddrPort) {
	src = types.NormaliseAddrPort(src)

	if !s.dir.Allowed(src) {
		s.L().Warn("rejected connect request, not in allowed peers", "from", src)
		return
	}

	if !s.limiter.allow(src.Addr()) {
		s.L().Debug("rate limited connect request", "from", src)
		return
	}

	isNew := !s.dir.HasPeer(src)

	for _, p := range s.dir.Peers() {
		if p == src {
			continue
		}

		bestEffort(s.L(), s.dir.SendTo(&msggame.Address{AddrPort: p}, src), "address")

		if isNew {
			bestEffort(s.L(), s.dir.SendTo(&msggame.Address{AddrPort: src}, p), "address")
		}
	}

	// The host's own address, an unspecified IP makes the peer use the source of this datagram.
	self := s.dir.transport.LocalAddrPort()
	bestEffort(s.L(), s.dir.SendTo(&msggame.Address{AddrPort: self}, src), "address")

	if isNew {
		s.dir.RegisterPeer(src)
		s.L().Info("accepted peer", "peer", src, "peers", s.dir.PeerCount())
	} else {
		s.L().Debug("repeated directory for known peer", "peer", src)
	}
}
