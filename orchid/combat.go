package orchid

import (
	"github.com/edup2p/orchid/types/entity"
	"github.com/edup2p/orchid/types/msggame"
)

// resolveCollisions marks bullets that hit a ship.
//
// Enemy bullets are absorbed by the first living player ship they touch, replicas first,
// but only the local player takes damage. Player bullets damage the boss.
func (s *Session) resolveCollisions() {
	replicas := s.dir.Replicas()

	for i := range s.bullets {
		b := &s.bullets[i]
		if b.Hit {
			continue
		}

		switch b.Possession {
		case entity.Enemy:
			if s.enemy.Health <= 0 {
				continue
			}

			for _, r := range replicas {
				if r.Health > 0 && entity.Distance(b.Pos, r.Pos) < entity.PlayerHitRadius {
					b.Hit = true
					break
				}
			}

			if !b.Hit && s.player.Health > 0 && entity.Distance(b.Pos, s.player.Pos) < entity.PlayerHitRadius {
				b.Hit = true
				if !s.player.Shield {
					s.player.Health -= entity.EnemyBulletDamage
				}
			}
		case entity.Player:
			if entity.Distance(b.Pos, s.enemy.Pos) < entity.BossHitRadius {
				b.Hit = true
				s.enemy.Health -= b.Kind.BossDamage()
			}
		}
	}
}

// evaluateOutcome ends a match that is being played, a dead player loses before a dead boss wins.
func (s *Session) evaluateOutcome() {
	if s.phase != Playing {
		return
	}

	switch {
	case !s.player.Alive():
		s.setPhase(Lost)
		s.broadcast(&msggame.Death{ID: s.player.ID})
	case s.enemy.Health < entity.BossDeadBelow:
		s.setPhase(Won)
		s.broadcast(&msggame.Win{})
	}
}
