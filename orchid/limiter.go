package orchid

import (
	"net/netip"

	"golang.org/x/time/rate"
)

// connectLimiter throttles connect requests per source IP.
type connectLimiter struct {
	limit rate.Limit
	burst int

	perIP map[netip.Addr]*rate.Limiter
}

func newConnectLimiter() *connectLimiter {
	return &connectLimiter{
		limit: rate.Limit(ConnectRatePerSecond),
		burst: ConnectBurst,
		perIP: make(map[netip.Addr]*rate.Limiter),
	}
}

func (c *connectLimiter) allow(ip netip.Addr) bool {
	l, ok := c.perIP[ip]
	if !ok {
		if len(c.perIP) >= connectLimiterMax {
			clear(c.perIP)
		}

		l = rate.NewLimiter(c.limit, c.burst)
		c.perIP[ip] = l
	}

	return l.Allow()
}
