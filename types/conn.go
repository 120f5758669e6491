package types

import (
	"net"
	"net/netip"
	"time"
)

// UDPConn interface for netio.Socket to more easily deal with.
//
// *net.UDPConn satisfies it.
type UDPConn interface {
	SetReadDeadline(t time.Time) error

	ReadFromUDPAddrPort(b []byte) (n int, addr netip.AddrPort, err error)

	WriteToUDPAddrPort(b []byte, addr netip.AddrPort) (int, error)

	LocalAddr() net.Addr

	Close() error
}
