package orchid

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/netip"
	"slices"

	"github.com/edup2p/orchid/types/entity"
	"github.com/edup2p/orchid/types/msggame"
)

type Role byte

const (
	Host Role = iota
	Peer
)

func (r Role) String() string {
	switch r {
	case Host:
		return "host"
	case Peer:
		return "peer"
	default:
		return fmt.Sprintf("role(%d)", byte(r))
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type Phase byte

const (
	Loading Phase = iota
	Playing
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", byte(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Over reports whether the match has an outcome.
func (p Phase) Over() bool {
	return p == Won || p == Lost
}

// Session is the whole state of one node.
type Session struct {
	role  Role
	phase Phase

	dir     *Directory
	limiter *connectLimiter
	rng     *rand.Rand

	bossPatrol bool

	player  entity.Ship
	enemy   entity.Ship
	bullets []entity.Bullet

	fireDelay      float32
	bossFireDelay  float32
	specialTimer   float32
	shieldTimer    float32
	shieldLeft     float32
	broadcastTimer float32
	bossSyncTimer  float32
}

func NewSession(role Role, tr Transport, opts SessionOptions) (*Session, error) {
	if tr == nil {
		return nil, errors.New("session needs a transport")
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Session{
		role:       role,
		dir:        NewDirectory(tr, opts.Codec, opts.Allowed),
		limiter:    newConnectLimiter(),
		rng:        rng,
		bossPatrol: opts.BossPatrol,
		player:     entity.NewShip(entity.Player),
		enemy:      entity.NewShip(entity.Enemy),
	}

	s.Reset()

	return s, nil
}

func (s *Session) L() *slog.Logger {
	return slog.With("session", s.role.String(), "player", s.player.ID.String()[:8])
}

// Join sends the connect request of a peer to the host.
//
// Nothing is retried, a lost request can be repeated by calling Join again.
func (s *Session) Join(host netip.AddrPort) error {
	if s.role != Peer {
		return fmt.Errorf("only a peer can join, this session is %s", s.role)
	}

	if err := s.dir.SendTo(&msggame.Connect{}, host); err != nil {
		return fmt.Errorf("could not send connect request: %w", err)
	}

	s.L().Info("sent connect request", "host", host)

	return nil
}

// Reset returns to the loading phase with spawn state everywhere, peers and replicas are kept.
func (s *Session) Reset() {
	s.player.Reset()
	s.enemy.Reset()
	s.dir.ResetReplicas()

	s.bullets = nil

	s.fireDelay = 0
	s.bossFireDelay = 0
	s.specialTimer = 0
	s.shieldTimer = 0
	s.shieldLeft = 0
	s.broadcastTimer = BroadcastTick
	s.bossSyncTimer = BroadcastTick

	s.setPhase(Loading)
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}

	s.L().Info("phase change", "from", s.phase, "to", p)
	s.phase = p
}

func (s *Session) broadcast(m msggame.Message) {
	bestEffort(s.L(), s.dir.Broadcast(m), m.Type().String())
}

func (s *Session) Role() Role { return s.role }

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Directory() *Directory { return s.dir }

func (s *Session) Player() entity.Ship { return s.player }

func (s *Session) Enemy() entity.Ship { return s.enemy }

func (s *Session) Bullets() []entity.Bullet { return slices.Clone(s.bullets) }

// SpecialReady and ShieldReady report whether the cooldowns have elapsed.
func (s *Session) SpecialReady() bool { return s.specialTimer < 0 }

func (s *Session) ShieldReady() bool { return s.shieldTimer < 0 }
