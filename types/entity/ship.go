package entity

import (
	"fmt"
	"math"

	"github.com/LukaGiorgadze/gonull"
	"github.com/google/uuid"
)

// BossID is shared by every node, so that position updates for the boss address the same ship everywhere.
var BossID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("orchid/boss"))

type Ship struct {
	ID uuid.UUID

	Possession Possession

	Pos   Point
	Angle float32

	// Direction is the patrol direction of the boss, +1 or -1, never set for players.
	Direction gonull.Nullable[float32]

	Health float32
	Shield bool
}

// NewShip creates a ship at the spawn point of its possession.
//
// Players get a fresh random id, the boss always gets BossID.
func NewShip(p Possession) Ship {
	s := Ship{Possession: p}

	if p == Enemy {
		s.ID = BossID
		s.Angle = math.Pi
	} else {
		s.ID = uuid.New()
	}

	s.Reset()

	return s
}

// Reset restores the spawn state, identity is kept.
func (s *Ship) Reset() {
	s.Shield = false

	switch s.Possession {
	case Enemy:
		s.Health = BossHealth
		s.Pos = BossSpawn
		s.Direction = gonull.NewNullable[float32](1)
	default:
		s.Health = PlayerHealth
		s.Pos = PlayerSpawn
	}
}

func (s *Ship) Alive() bool {
	return s.Health >= 0
}

func (s *Ship) MoveTo(p Point) {
	s.Pos = p
}

// Shoot fires a bullet from this ship.
//
// With a curve, it is always a Normal bullet angled by curve, which is how the boss fires diagonals.
func (s *Ship) Shoot(curve gonull.Nullable[float32], kind BulletKind) Bullet {
	if curve.Valid {
		return NewBullet(s.Possession, s.Angle+curve.Val, s.Pos, Normal)
	}
	return NewBullet(s.Possession, s.Angle, s.Pos, kind)
}

// Move advances the ship from the intents, staying inside the screen border.
//
// Returns whether the ship moved at all.
func (s *Ship) Move(dt float32, in Intents, width, height float32) bool {
	if !s.Alive() {
		return false
	}

	old := s.Pos

	if in.Up && s.Pos.Y >= ScreenBorder {
		s.Pos.Y -= dt * ShipSpeed
	}
	if in.Down && s.Pos.Y <= height-ScreenBorder {
		s.Pos.Y += dt * ShipSpeed
	}
	if in.Right && s.Pos.X <= width-ScreenBorder {
		s.Pos.X += dt * ShipSpeed
	}
	if in.Left && s.Pos.X >= ScreenBorder {
		s.Pos.X -= dt * ShipSpeed
	}

	return s.Pos != old
}

// Oscillate patrols the boss horizontally between the screen borders.
func (s *Ship) Oscillate(dt float32, width float32) {
	if s.Pos.X <= ScreenBorder {
		s.Direction = gonull.NewNullable[float32](1)
	} else if s.Pos.X >= width-ScreenBorder {
		s.Direction = gonull.NewNullable[float32](-1)
	}

	dir := float32(1)
	if s.Direction.Valid {
		dir = s.Direction.Val
	}

	s.Pos.X += dt * BossSpeed * dir
}

func (s *Ship) Debug() string {
	return fmt.Sprintf("ship id=%s %s pos=(%.1f,%.1f) hp=%.1f shield=%t", s.ID, s.Possession, s.Pos.X, s.Pos.Y, s.Health, s.Shield)
}
