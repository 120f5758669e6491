package types

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormaliseAddrPort(t *testing.T) {
	mapped := netip.MustParseAddrPort("[::ffff:10.0.0.1]:34254")
	assert.Equal(t, netip.MustParseAddrPort("10.0.0.1:34254"), NormaliseAddrPort(mapped))

	v6 := netip.MustParseAddrPort("[fd00::1]:34254")
	assert.Equal(t, v6, NormaliseAddrPort(v6))
}

func TestIsContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, IsContextDone(ctx))

	cancel()
	assert.True(t, IsContextDone(ctx))
}
