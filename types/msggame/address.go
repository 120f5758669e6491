package msggame

import (
	"fmt"
	"net/netip"
	"slices"

	"github.com/edup2p/orchid/types/bin"
)

// Address advertises one peer address during discovery.
//
// An unspecified IP stands for the sender of the datagram itself, see ResolveFrom.
type Address struct {
	AddrPort netip.AddrPort // 18 bytes (16+2) on the wire; v4-mapped ipv6 for IPv4
}

func (a *Address) MarshalGameMessage() []byte {
	return slices.Concat([]byte{byte(v1), byte(AddressMessage)}, bin.PutAddrPort(a.AddrPort))
}

func (a *Address) Debug() string {
	return fmt.Sprintf("address %s", a.AddrPort)
}

func (a *Address) Type() MessageType { return AddressMessage }

func (a *Address) sealed() {}

// ResolveFrom returns the advertised address, substituting src when the advertised IP is unspecified.
func (a *Address) ResolveFrom(src netip.AddrPort) netip.AddrPort {
	if !a.AddrPort.Addr().IsValid() || a.AddrPort.Addr().IsUnspecified() {
		return netip.AddrPortFrom(src.Addr(), a.AddrPort.Port())
	}
	return a.AddrPort
}
