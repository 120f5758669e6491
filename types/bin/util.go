// Package bin holds the fixed-width big-endian primitives used by the wire protocol.
package bin

import (
	"encoding/binary"
	"errors"
	"math"
	"net/netip"
	"slices"
)

const (
	AddrPortLen = 18
	Float32Len  = 4
)

var ErrBadBool = errors.New("bool byte is neither 0 nor 1")

// ParseAddrPort reads a 16-byte (v4-mapped for IPv4) address followed by a 2-byte port.
func ParseAddrPort(b [AddrPortLen]byte) netip.AddrPort {
	addr := netip.AddrFrom16([16]byte(b[:16])).Unmap()

	port := binary.BigEndian.Uint16(b[16:])

	return netip.AddrPortFrom(addr, port)
}

func PutAddrPort(ap netip.AddrPort) []byte {
	port := make([]byte, 2)

	as16 := ap.Addr().As16()
	binary.BigEndian.PutUint16(port, ap.Port())

	return slices.Concat(as16[:], port[:])
}

func ParseFloat32(b [Float32Len]byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b[:]))
}

// AppendFloat32s appends every float to b, in order.
func AppendFloat32s(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = binary.BigEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

func PutBool(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// ParseBool is strict, anything but 0 or 1 is rejected.
func ParseBool(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrBadBool
	}
}
