package entity

import (
	"fmt"
	"math"
)

// Bullet has no identity, it is disseminated once at creation and then simulated by every node on its own.
type Bullet struct {
	Possession Possession
	Kind       BulletKind

	Angle float32
	Pos   Point

	// Hit marks the bullet for removal at the next prune.
	Hit bool
}

// NewBullet creates a bullet at pos, shifted once so that it appears in front of the ship instead of on it.
func NewBullet(p Possession, angle float32, pos Point, kind BulletKind) Bullet {
	return Bullet{
		Possession: p,
		Kind:       kind,
		Angle:      angle,
		Pos: Point{
			X: pos.X,
			Y: pos.Y - float32(math.Sin(float64(halfPi-angle)))*BulletSpawnOffset,
		},
	}
}

func (b *Bullet) Advance(dt float32) {
	heading := float64(halfPi - b.Angle)
	speed := b.Kind.Speed()

	b.Pos.X += float32(math.Cos(heading)) * dt * speed
	b.Pos.Y -= float32(math.Sin(heading)) * dt * speed
}

// InView reports whether the bullet is within the vertical viewport, edges included.
func (b *Bullet) InView(height float32) bool {
	return b.Pos.Y >= 0 && b.Pos.Y <= height
}

func (b *Bullet) Debug() string {
	return fmt.Sprintf("bullet %s/%s angle=%.2f pos=(%.1f,%.1f) hit=%t", b.Possession, b.Kind, b.Angle, b.Pos.X, b.Pos.Y, b.Hit)
}
