// Package netio provides the UDP transport of a session.
package netio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/edup2p/orchid/orchid"
	"github.com/edup2p/orchid/types"
)

const (
	// FrameBuffer is how many received datagrams wait for the session, newer ones are dropped when full.
	FrameBuffer = 256

	ReadTimeout = time.Second

	maxDatagram = 1 << 16
)

var _ orchid.Transport = (*Socket)(nil)

type frame struct {
	pkt []byte
	src netip.AddrPort
}

// Socket is a non-blocking orchid.Transport over a UDP connection.
//
// A receiver goroutine reads the connection and queues datagrams, TryRecv only ever takes from that queue.
type Socket struct {
	ctx    context.Context
	cancel context.CancelFunc

	conn   types.UDPConn
	frames chan frame

	closeOnce sync.Once
}

// Listen binds a UDP socket on ap.
func Listen(ctx context.Context, ap netip.AddrPort) (*Socket, error) {
	conn, err := net.ListenUDP("udp", net.UDPAddrFromAddrPort(ap))
	if err != nil {
		return nil, fmt.Errorf("could not bind %s: %w", ap, err)
	}

	return NewSocket(ctx, conn), nil
}

// NewSocket takes ownership of conn and starts receiving on it.
func NewSocket(ctx context.Context, conn types.UDPConn) *Socket {
	ctx, cancel := context.WithCancel(ctx)

	s := &Socket{
		ctx:    ctx,
		cancel: cancel,
		conn:   conn,
		frames: make(chan frame, FrameBuffer),
	}

	go s.run()

	return s
}

func (s *Socket) L() *slog.Logger {
	return slog.With("socket", s.conn.LocalAddr().String())
}

func (s *Socket) run() {
	defer func() {
		if v := recover(); v != nil {
			s.L().Error("receiver panicked", "err", v)
		}
		s.Close()
		close(s.frames)
	}()

	buf := make([]byte, maxDatagram)

	for {
		if types.IsContextDone(s.ctx) {
			return
		}

		if err := s.conn.SetReadDeadline(time.Now().Add(ReadTimeout)); err != nil {
			s.L().Error("could not set read deadline", "err", err)
			return
		}

		n, ap, err := s.conn.ReadFromUDPAddrPort(buf)

		var e net.Error
		if err != nil {
			if errors.As(err, &e) && e.Timeout() {
				continue
			}
			if peerGone(err) {
				// An earlier send hit a peer that is no longer there, the socket itself is fine.
				s.L().Debug("peer unreachable", "err", err)
				continue
			}
			if !errors.Is(err, net.ErrClosed) {
				s.L().Error("receive failed", "err", err)
			}
			return
		}

		if n == 0 {
			continue
		}

		select {
		case s.frames <- frame{pkt: slices.Clone(buf[:n]), src: types.NormaliseAddrPort(ap)}:
		default:
			s.L().Log(context.Background(), types.LevelTrace, "receive queue full, dropping datagram", "from", ap)
		}
	}
}

// peerGone reports whether err is an ICMP unreachable report surfacing on the read side.
func peerGone(err error) bool {
	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED)
}

func (s *Socket) WriteTo(pkt []byte, to netip.AddrPort) error {
	_, err := s.conn.WriteToUDPAddrPort(pkt, to)
	return err
}

// TryRecv returns net.ErrClosed once the receiver stopped and the queue is drained.
func (s *Socket) TryRecv(limit int) ([]byte, netip.AddrPort, error) {
	select {
	case f, ok := <-s.frames:
		if !ok {
			return nil, netip.AddrPort{}, net.ErrClosed
		}
		if len(f.pkt) > limit {
			f.pkt = f.pkt[:limit]
		}
		return f.pkt, f.src, nil
	default:
		return nil, netip.AddrPort{}, orchid.ErrNoDataAvailable
	}
}

func (s *Socket) LocalAddrPort() netip.AddrPort {
	if ua, ok := s.conn.LocalAddr().(*net.UDPAddr); ok {
		return types.NormaliseAddrPort(ua.AddrPort())
	}
	return netip.AddrPort{}
}

func (s *Socket) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.cancel()
		err = s.conn.Close()
	})
	return err
}
