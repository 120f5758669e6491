package entity

import (
	"math"
	"testing"

	"github.com/LukaGiorgadze/gonull"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-3

func TestNewShip(t *testing.T) {
	p := NewShip(Player)
	assert.Equal(t, PlayerSpawn, p.Pos)
	assert.Equal(t, PlayerHealth, p.Health)
	assert.False(t, p.Direction.Valid)
	assert.NotEqual(t, BossID, p.ID)

	other := NewShip(Player)
	assert.NotEqual(t, p.ID, other.ID, "player ids must be unique")

	e := NewShip(Enemy)
	assert.Equal(t, BossID, e.ID)
	assert.Equal(t, BossSpawn, e.Pos)
	assert.Equal(t, BossHealth, e.Health)
	assert.True(t, e.Direction.Valid)
	assert.Equal(t, float32(1), e.Direction.Val)
	assert.InDelta(t, math.Pi, e.Angle, eps)
}

func TestShip_ResetKeepsIdentity(t *testing.T) {
	s := NewShip(Player)
	id := s.ID

	s.Health = -1
	s.Shield = true
	s.MoveTo(Point{X: 1, Y: 2})

	s.Reset()

	assert.Equal(t, id, s.ID)
	assert.Equal(t, PlayerSpawn, s.Pos)
	assert.Equal(t, PlayerHealth, s.Health)
	assert.False(t, s.Shield)
}

func TestShip_Move(t *testing.T) {
	s := NewShip(Player)

	assert.False(t, s.Move(0.1, Intents{}, 800, 600), "no intents, no movement")

	assert.True(t, s.Move(0.1, Intents{Left: true}, 800, 600))
	assert.InDelta(t, 400-35, s.Pos.X, eps)

	// Stuck against the top border
	s.MoveTo(Point{X: 400, Y: ScreenBorder - 1})
	assert.False(t, s.Move(0.1, Intents{Up: true}, 800, 600))

	s.Health = -1
	assert.False(t, s.Move(0.1, Intents{Right: true}, 800, 600), "dead ships do not move")
}

func TestShip_Oscillate(t *testing.T) {
	e := NewShip(Enemy)

	e.Oscillate(1, 800)
	assert.InDelta(t, 400+BossSpeed, e.Pos.X, eps)

	e.MoveTo(Point{X: 800 - ScreenBorder, Y: BossSpawn.Y})
	e.Oscillate(0.1, 800)
	assert.Equal(t, float32(-1), e.Direction.Val)
	assert.Less(t, e.Pos.X, 800-ScreenBorder)

	e.MoveTo(Point{X: ScreenBorder, Y: BossSpawn.Y})
	e.Oscillate(0.1, 800)
	assert.Equal(t, float32(1), e.Direction.Val)
}

func TestShip_Shoot(t *testing.T) {
	p := NewShip(Player)

	b := p.Shoot(gonull.Nullable[float32]{}, Special)
	assert.Equal(t, Special, b.Kind)
	assert.Equal(t, Player, b.Possession)
	// Player faces up, spawn offset moves the bullet up by 20
	assert.InDelta(t, PlayerSpawn.Y-BulletSpawnOffset, b.Pos.Y, eps)
	assert.InDelta(t, PlayerSpawn.X, b.Pos.X, eps)

	e := NewShip(Enemy)
	curved := e.Shoot(gonull.NewNullable[float32](math.Pi/4), Special)
	assert.Equal(t, Normal, curved.Kind, "curved shots are always normal")
	assert.InDelta(t, math.Pi+math.Pi/4, curved.Angle, eps)

	// Boss faces down, its bullets spawn below it
	straight := e.Shoot(gonull.Nullable[float32]{}, Normal)
	assert.InDelta(t, BossSpawn.Y+BulletSpawnOffset, straight.Pos.Y, eps)
}

func TestBullet_Advance(t *testing.T) {
	b := NewBullet(Player, 0, Point{X: 100, Y: 300}, Normal)
	b.Advance(0.1)
	assert.InDelta(t, 100, b.Pos.X, eps)
	assert.InDelta(t, 300-BulletSpawnOffset-BulletSpeed*0.1, b.Pos.Y, eps)

	s := NewBullet(Player, 0, Point{X: 100, Y: 300}, Special)
	s.Advance(0.1)
	assert.InDelta(t, 300-BulletSpawnOffset-SpecialBulletSpeed*0.1, s.Pos.Y, eps)

	down := NewBullet(Enemy, math.Pi, Point{X: 100, Y: 100}, Normal)
	down.Advance(0.1)
	assert.Greater(t, down.Pos.Y, float32(100))
}

func TestBullet_InViewEdges(t *testing.T) {
	for _, tc := range []struct {
		y    float32
		want bool
	}{
		{0, true},
		{600, true},
		{-0.01, false},
		{600.01, false},
		{300, true},
	} {
		b := Bullet{Pos: Point{Y: tc.y}}
		assert.Equal(t, tc.want, b.InView(600), "y=%v", tc.y)
	}
}

func TestBulletKind_Damage(t *testing.T) {
	assert.Equal(t, float32(1), Normal.BossDamage())
	assert.Equal(t, float32(5), Special.BossDamage())
	assert.False(t, BulletKind(2).Valid())
	assert.False(t, Possession(9).Valid())
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(Point{0, 0}, Point{3, 4}), eps)
}
