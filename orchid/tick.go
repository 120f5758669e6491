package orchid

import (
	"math"
	"slices"

	"github.com/LukaGiorgadze/gonull"
	"github.com/edup2p/orchid/types/entity"
	"github.com/edup2p/orchid/types/msggame"
)

// bossVolley is the fixed spread every node fires for the boss on its own.
var bossVolley = []gonull.Nullable[float32]{
	gonull.NewNullable[float32](math.Pi / 4),
	gonull.NewNullable[float32](-math.Pi / 4),
	{},
}

// Tick advances the session by dt seconds within a width by height viewport.
//
// Local intents apply first, the network step runs last so that whatever it broadcasts
// reflects the outcome of this tick.
func (s *Session) Tick(dt float32, in InputState, width, height float32) {
	if s.phase == Lost {
		in = InputState{Restart: in.Restart}
	}

	s.applyIntents(in)

	s.broadcastTimer = countdown(s.broadcastTimer, dt)
	s.syncPosition(s.player.Move(dt, in.Intents(), width, height))

	s.patrolBoss(dt, width)

	for i := range s.bullets {
		s.bullets[i].Advance(dt)
	}
	s.pruneBullets(height)

	s.fire(dt, in)
	s.fireBoss(dt)

	s.resolveCollisions()
	s.evaluateOutcome()

	if s.phase == Loading {
		s.handshake()
	} else {
		s.drainUpdates()
	}
}

// applyIntents handles the intents that change the phase: starting and restarting a match.
//
// A match is only started locally once every known peer has a replica, snapshots arriving after Loading are dropped.
func (s *Session) applyIntents(in InputState) {
	switch {
	case s.phase == Loading && in.Any() && s.player.Alive() && s.dir.Converged():
		s.broadcast(&msggame.Start{})
		s.setPhase(Playing)
	case s.phase.Over() && in.Restart:
		s.broadcast(&msggame.Restart{})
		s.Reset()
	}
}

func (s *Session) patrolBoss(dt, width float32) {
	if s.role != Host || !s.bossPatrol || (s.phase != Playing && s.phase != Lost) {
		return
	}

	s.enemy.Oscillate(dt, width)

	s.bossSyncTimer = countdown(s.bossSyncTimer, dt)
	if s.bossSyncTimer < 0 {
		s.broadcast(&msggame.ShipUpdate{ID: entity.BossID, X: s.enemy.Pos.X, Y: s.enemy.Pos.Y})
		s.bossSyncTimer = BroadcastTick
	}
}

// pruneBullets drops bullets that hit something or left the viewport, a bullet on the edge stays.
func (s *Session) pruneBullets(height float32) {
	s.bullets = slices.DeleteFunc(s.bullets, func(b entity.Bullet) bool {
		return b.Hit || !b.InView(height)
	})
}

func (s *Session) canShoot() bool {
	return s.phase == Playing || s.phase == Won
}

func (s *Session) fire(dt float32, in InputState) {
	s.fireDelay = countdown(s.fireDelay, dt)
	s.specialTimer = countdown(s.specialTimer, dt)
	s.shieldTimer = countdown(s.shieldTimer, dt)

	if in.Fire && s.fireDelay <= 0 && s.canShoot() {
		s.shoot(entity.Normal)
		s.fireDelay = PlayerFireRate
	}

	if in.Special && s.specialTimer < 0 && s.canShoot() {
		s.shoot(entity.Special)
		s.specialTimer = SpecialCooldown
	}

	if in.Shield && s.shieldTimer < 0 && s.canShoot() {
		s.player.Shield = true
		s.shieldTimer = ShieldCooldown
		s.shieldLeft = ShieldDuration
		s.syncShield()
	}

	if s.shieldLeft > 0 {
		s.shieldLeft -= dt
	} else if s.player.Shield {
		s.player.Shield = false
		s.syncShield()
	}
}

func (s *Session) shoot(kind entity.BulletKind) {
	b := s.player.Shoot(gonull.Nullable[float32]{}, kind)
	s.bullets = append(s.bullets, b)
	s.broadcast(&msggame.Bullet{Bullet: b})
}

// fireBoss fires the boss volley locally, the host adds random shots that it shares.
func (s *Session) fireBoss(dt float32) {
	s.bossFireDelay = countdown(s.bossFireDelay, dt)

	if s.bossFireDelay > 0 || (s.phase != Playing && s.phase != Lost) {
		return
	}
	s.bossFireDelay = BossFireRate

	for _, curve := range bossVolley {
		s.bullets = append(s.bullets, s.enemy.Shoot(curve, entity.Normal))
	}

	if s.role != Host {
		return
	}

	s.randomBossShot()
	if s.enemy.Health < entity.BossHealth/2 {
		s.randomBossShot()
	}
}

func (s *Session) randomBossShot() {
	curve := (s.rng.Float32()*2 - 1) * math.Pi / 4

	b := s.enemy.Shoot(gonull.NewNullable(curve), entity.Normal)
	s.bullets = append(s.bullets, b)
	s.broadcast(&msggame.Bullet{Bullet: b})
}
