package orchid

import "time"

const (
	// Cooldowns, in seconds of simulated time.
	PlayerFireRate  float32 = 0.2
	BossFireRate    float32 = 0.25
	SpecialCooldown float32 = 5.0
	ShieldCooldown  float32 = 15.0
	ShieldDuration  float32 = 2.0

	// BroadcastTick is the minimum interval between two periodic position broadcasts.
	BroadcastTick float32 = 1.0 / 30.0

	// cooldownFloor keeps elapsed timers from drifting towards float32 precision limits.
	cooldownFloor float32 = -1

	// Receive buffers; the handshake carries full ship snapshots, play only carries increments.
	LoadingRecvBuffer = 512
	PlayingRecvBuffer = 128

	// Host acceptance of connect requests, per source IP.
	ConnectRatePerSecond = 1
	ConnectBurst         = 3
	connectLimiterMax    = 1024

	DefaultHostPort uint16 = 34254
	DefaultPeerPort uint16 = 34255

	DefaultTickRate = time.Second / 60

	// MaxTickDelta caps dt, so a stalled process doesn't teleport bullets through ships.
	MaxTickDelta = 250 * time.Millisecond
)
