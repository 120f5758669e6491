package orchid

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/netip"
	"os"

	"github.com/LukaGiorgadze/gonull"
	"github.com/edup2p/orchid/types/key"
	"github.com/edup2p/orchid/types/msggame"
	"go4.org/netipx"
)

// Config is the on-disk configuration of a node, every field is optional.
type Config struct {
	BindIP   netip.Addr
	HostPort uint16
	PeerPort uint16

	TicksPerSecond int

	// RoomKey seals all traffic, it takes precedence over Passphrase.
	RoomKey    gonull.Nullable[key.RoomKey]
	Passphrase gonull.Nullable[string]

	// AllowedPeers restricts which source networks the host accepts connect requests from.
	AllowedPeers []netip.Prefix

	// BossPatrol lets the host oscillate the boss and broadcast its position.
	BossPatrol bool

	// SpectateAddr serves the read-only spectator websocket on this address.
	SpectateAddr gonull.Nullable[string]
}

func DefaultConfig() Config {
	return Config{
		BindIP:         netip.AddrFrom4([4]byte{127, 0, 0, 1}),
		HostPort:       DefaultHostPort,
		PeerPort:       DefaultPeerPort,
		TicksPerSecond: 60,
		BossPatrol:     true,
	}
}

// LoadConfig reads a JSON config on top of the defaults, a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	if cfg.TicksPerSecond <= 0 {
		return cfg, fmt.Errorf("config %s: ticks per second must be positive, got %d", path, cfg.TicksPerSecond)
	}

	if cfg.RoomKey.Valid && cfg.RoomKey.Val.IsZero() {
		return cfg, fmt.Errorf("config %s: %w", path, ErrZeroRoomKey)
	}

	return cfg, nil
}

// WriteConfig stores cfg as indented JSON.
func WriteConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

func (c Config) Codec() msggame.Codec {
	switch {
	case c.RoomKey.Valid:
		return msggame.SealedCodec(c.RoomKey.Val)
	case c.Passphrase.Valid && c.Passphrase.Val != "":
		return msggame.SealedCodec(key.RoomFromPassphrase(c.Passphrase.Val))
	default:
		return msggame.PlainCodec()
	}
}

// AllowedSet builds the allow-list, nil when every source is allowed.
func (c Config) AllowedSet() (*netipx.IPSet, error) {
	if len(c.AllowedPeers) == 0 {
		return nil, nil
	}

	var b netipx.IPSetBuilder
	for _, p := range c.AllowedPeers {
		b.AddPrefix(p.Masked())
	}

	return b.IPSet()
}

// BindAddrPort is the local address a node of role r listens on.
func (c Config) BindAddrPort(r Role) netip.AddrPort {
	port := c.PeerPort
	if r == Host {
		port = c.HostPort
	}
	return netip.AddrPortFrom(c.BindIP, port)
}

// SessionOptions derives the session tunables from the config.
func (c Config) SessionOptions() (SessionOptions, error) {
	allowed, err := c.AllowedSet()
	if err != nil {
		return SessionOptions{}, fmt.Errorf("invalid allowed peers: %w", err)
	}

	return SessionOptions{
		Codec:      c.Codec(),
		Allowed:    allowed,
		BossPatrol: c.BossPatrol,
	}, nil
}

// ParseHostAddr parses the host address given to a joining peer, a bare IP gets the default host port.
func ParseHostAddr(s string) (netip.AddrPort, error) {
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap, nil
	}

	if ip, err := netip.ParseAddr(s); err == nil {
		return netip.AddrPortFrom(ip, DefaultHostPort), nil
	}

	return netip.AddrPort{}, fmt.Errorf("%w: %q", ErrInvalidPeerAddress, s)
}

// SessionOptions are the optional collaborators of a session, the zero value is a plain open session.
type SessionOptions struct {
	Codec   msggame.Codec
	Allowed *netipx.IPSet

	BossPatrol bool

	// Rand drives the host's random boss shots, nil seeds a fresh source.
	Rand *rand.Rand
}
