package types

// Contains miscellaneous functions and types

import (
	"context"
	"log/slog"
	"net/netip"
)

// Incomparable is a zero-width incomparable type. If added as the
// first field in a struct, it marks that struct as not comparable
// (can't do == or be a map key) and usually doesn't add any width to
// the struct (unless the struct has only small fields).
//
// (Taken from the tailscale types library)
type Incomparable [0]func()

// IsContextDone does a quick check on a context to see if its dead.
func IsContextDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// LevelTrace is below debug, for per-datagram logging.
const LevelTrace slog.Level = -8

// NormaliseAddrPort unmaps v4-mapped v6 addresses, so that one peer never appears under two addresses.
func NormaliseAddrPort(ap netip.AddrPort) netip.AddrPort {
	return netip.AddrPortFrom(NormaliseAddr(ap.Addr()), ap.Port())
}

func NormaliseAddr(addr netip.Addr) netip.Addr {
	if addr.Is4In6() {
		addr = netip.AddrFrom4(addr.As4())
	}

	return addr
}
