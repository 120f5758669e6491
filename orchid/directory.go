package orchid

import (
	"errors"
	"fmt"
	"net/netip"
	"slices"

	"github.com/edup2p/orchid/types"
	"github.com/edup2p/orchid/types/entity"
	"github.com/edup2p/orchid/types/msggame"
	"github.com/google/uuid"
	"go4.org/netipx"
	"golang.org/x/exp/maps"
)

// Directory is the peer and replica table of one node.
//
// Peers only grow during a session, replicas only grow during the loading phase.
type Directory struct {
	transport Transport
	codec     msggame.Codec

	// allowed restricts which sources may join, nil allows everyone.
	allowed *netipx.IPSet

	peers    map[netip.AddrPort]struct{}
	replicas map[uuid.UUID]*entity.Ship
}

func NewDirectory(tr Transport, codec msggame.Codec, allowed *netipx.IPSet) *Directory {
	return &Directory{
		transport: tr,
		codec:     codec,
		allowed:   allowed,
		peers:     make(map[netip.AddrPort]struct{}),
		replicas:  make(map[uuid.UUID]*entity.Ship),
	}
}

// RegisterPeer adds a peer address, it reports whether the address is new.
func (d *Directory) RegisterPeer(ap netip.AddrPort) bool {
	ap = types.NormaliseAddrPort(ap)

	if _, ok := d.peers[ap]; ok {
		return false
	}

	d.peers[ap] = struct{}{}
	return true
}

func (d *Directory) HasPeer(ap netip.AddrPort) bool {
	_, ok := d.peers[types.NormaliseAddrPort(ap)]
	return ok
}

// Allowed reports whether a source may join this session.
func (d *Directory) Allowed(ap netip.AddrPort) bool {
	if d.allowed == nil {
		return true
	}
	return d.allowed.Contains(types.NormaliseAddr(ap.Addr()))
}

// RegisterRemoteShip adds a replica for a ship snapshot, it reports whether the id is new.
//
// Known ids are left untouched.
func (d *Directory) RegisterRemoteShip(s entity.Ship) bool {
	if _, ok := d.replicas[s.ID]; ok {
		return false
	}

	d.replicas[s.ID] = &s
	return true
}

// FindReplica returns the replica for id, or nil.
func (d *Directory) FindReplica(id uuid.UUID) *entity.Ship {
	return d.replicas[id]
}

// Peers returns the peer addresses in a stable order.
func (d *Directory) Peers() []netip.AddrPort {
	peers := maps.Keys(d.peers)
	slices.SortFunc(peers, func(a, b netip.AddrPort) int {
		return a.Compare(b)
	})
	return peers
}

// Replicas returns the replicas ordered by id, the pointers are live.
func (d *Directory) Replicas() []*entity.Ship {
	reps := maps.Values(d.replicas)
	slices.SortFunc(reps, func(a, b *entity.Ship) int {
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return reps
}

func (d *Directory) PeerCount() int {
	return len(d.peers)
}

func (d *Directory) ReplicaCount() int {
	return len(d.replicas)
}

// Converged reports whether there is a replica for every known peer.
func (d *Directory) Converged() bool {
	return len(d.replicas) == len(d.peers)
}

// ResetReplicas returns every replica to its spawn state.
func (d *Directory) ResetReplicas() {
	for _, r := range d.replicas {
		r.Reset()
	}
}

// PinReplicas holds every replica at p.
func (d *Directory) PinReplicas(p entity.Point) {
	for _, r := range d.replicas {
		r.MoveTo(p)
	}
}

// SendTo sends one message to one address, whether or not it is a registered peer.
func (d *Directory) SendTo(m msggame.Message, to netip.AddrPort) error {
	if err := d.transport.WriteTo(d.codec.Encode(m), to); err != nil {
		return fmt.Errorf("%w: %s to %s: %w", ErrSendFailure, m.Type(), to, err)
	}
	return nil
}

// Broadcast sends one message to every peer, one datagram each.
//
// A failure for one peer doesn't stop delivery to the others, every failure is joined into the result.
func (d *Directory) Broadcast(m msggame.Message) error {
	pkt := d.codec.Encode(m)

	var errs []error
	for _, ap := range d.Peers() {
		if err := d.transport.WriteTo(pkt, ap); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s to %s: %w", ErrSendFailure, m.Type(), ap, err))
		}
	}

	return errors.Join(errs...)
}
