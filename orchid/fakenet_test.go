package orchid

import (
	"errors"
	"net/netip"
	"slices"
	"testing"

	"github.com/edup2p/orchid/types/msggame"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  float32 = 800
	testHeight float32 = 600
	testDt     float32 = 1.0 / 60
)

var (
	hostAddr = netip.MustParseAddrPort("127.0.0.1:34254")
	peerAddr = netip.MustParseAddrPort("127.0.0.2:34255")
	sinkAddr = netip.MustParseAddrPort("127.0.0.9:34255")

	errFakeSend = errors.New("fake send failure")
)

type frame struct {
	pkt  []byte
	addr netip.AddrPort
}

// fakeNet is a lossless in-memory datagram switch, datagrams to unknown addresses vanish.
type fakeNet struct {
	nodes map[netip.AddrPort]*fakeTransport
}

func newFakeNet() *fakeNet {
	return &fakeNet{nodes: make(map[netip.AddrPort]*fakeTransport)}
}

// attach creates a transport at addr, advertising advertise as its local address.
func (n *fakeNet) attach(addr, advertise netip.AddrPort) *fakeTransport {
	t := &fakeTransport{net: n, addr: addr, advertise: advertise, failTo: make(map[netip.AddrPort]bool)}
	n.nodes[addr] = t
	return t
}

type fakeTransport struct {
	net *fakeNet

	addr      netip.AddrPort
	advertise netip.AddrPort

	inbox []frame
	sent  []frame

	failTo map[netip.AddrPort]bool
}

func (t *fakeTransport) WriteTo(pkt []byte, to netip.AddrPort) error {
	if t.failTo[to] {
		return errFakeSend
	}

	t.sent = append(t.sent, frame{pkt: slices.Clone(pkt), addr: to})

	if dst, ok := t.net.nodes[to]; ok {
		dst.inbox = append(dst.inbox, frame{pkt: slices.Clone(pkt), addr: t.addr})
	}

	return nil
}

func (t *fakeTransport) TryRecv(limit int) ([]byte, netip.AddrPort, error) {
	if len(t.inbox) == 0 {
		return nil, netip.AddrPort{}, ErrNoDataAvailable
	}

	f := t.inbox[0]
	t.inbox = t.inbox[1:]

	if len(f.pkt) > limit {
		f.pkt = f.pkt[:limit]
	}

	return f.pkt, f.addr, nil
}

func (t *fakeTransport) LocalAddrPort() netip.AddrPort {
	return t.advertise
}

// push queues a message as if it arrived from src.
func (t *fakeTransport) push(codec msggame.Codec, src netip.AddrPort, m msggame.Message) {
	t.inbox = append(t.inbox, frame{pkt: codec.Encode(m), addr: src})
}

// sentMessages decodes everything sent so far, optionally only to one address.
func (t *fakeTransport) sentMessages(tb testing.TB, codec msggame.Codec, to netip.AddrPort) []msggame.Message {
	tb.Helper()

	var out []msggame.Message
	for _, f := range t.sent {
		if to.IsValid() && f.addr != to {
			continue
		}

		m, err := codec.Decode(f.pkt)
		require.NoError(tb, err)
		out = append(out, m)
	}
	return out
}

func (t *fakeTransport) clearSent() {
	t.sent = nil
}

func countType(ms []msggame.Message, typ msggame.MessageType) int {
	n := 0
	for _, m := range ms {
		if m.Type() == typ {
			n++
		}
	}
	return n
}

func newTestSession(tb testing.TB, role Role, tr Transport, opts SessionOptions) *Session {
	tb.Helper()

	s, err := NewSession(role, tr, opts)
	require.NoError(tb, err)
	return s
}

// tickAll ticks every session once with no input, in order.
func tickAll(sessions ...*Session) {
	for _, s := range sessions {
		s.Tick(testDt, InputState{}, testWidth, testHeight)
	}
}

// tickUntil ticks all sessions until cond holds, failing after limit rounds.
func tickUntil(tb testing.TB, limit int, cond func() bool, sessions ...*Session) {
	tb.Helper()

	for range limit {
		if cond() {
			return
		}
		tickAll(sessions...)
	}

	require.True(tb, cond(), "condition not reached after %d rounds", limit)
}
