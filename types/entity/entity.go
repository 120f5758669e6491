// Package entity holds the replicated game objects (ships and bullets) and their kinematics.
//
// Nothing in here knows about the network, entities are plain values that the session mutates.
package entity

import (
	"fmt"
	"math"
)

type Point struct {
	X float32
	Y float32
}

func Distance(a, b Point) float32 {
	return float32(math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y)))
}

// Possession is the faction an entity belongs to.
type Possession byte

const (
	Player Possession = iota
	Enemy
)

func (p Possession) Valid() bool {
	return p == Player || p == Enemy
}

func (p Possession) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p Possession) String() string {
	switch p {
	case Player:
		return "player"
	case Enemy:
		return "enemy"
	default:
		return fmt.Sprintf("possession(%d)", byte(p))
	}
}

type BulletKind byte

const (
	Normal BulletKind = iota
	Special
)

func (k BulletKind) Valid() bool {
	return k == Normal || k == Special
}

func (k BulletKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k BulletKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Special:
		return "special"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

func (k BulletKind) Speed() float32 {
	if k == Special {
		return SpecialBulletSpeed
	}
	return BulletSpeed
}

// BossDamage is what a player bullet of this kind takes from the boss.
func (k BulletKind) BossDamage() float32 {
	if k == Special {
		return SpecialBulletDamage
	}
	return NormalBulletDamage
}

// ShipKind tells a renderer which of the three ship roles a ship plays on this node.
type ShipKind byte

const (
	LocalPlayer ShipKind = iota
	Boss
	RemotePlayer
)

func (k ShipKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k ShipKind) String() string {
	switch k {
	case LocalPlayer:
		return "local"
	case Boss:
		return "boss"
	case RemotePlayer:
		return "remote"
	default:
		return fmt.Sprintf("shipkind(%d)", byte(k))
	}
}

// Intents is the subset of the input that drives ship movement.
type Intents struct {
	Up, Down, Left, Right bool
}
