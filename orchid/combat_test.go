package orchid

import (
	"testing"

	"github.com/edup2p/orchid/types/entity"
	"github.com/stretchr/testify/assert"
)

func enemyBulletAt(p entity.Point) entity.Bullet {
	return entity.Bullet{Possession: entity.Enemy, Kind: entity.Normal, Pos: p}
}

func TestCombat_EnemyBulletDamagesLocalPlayer(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	s.bullets = []entity.Bullet{enemyBulletAt(s.player.Pos)}

	s.resolveCollisions()

	assert.True(t, s.bullets[0].Hit)
	assert.Equal(t, entity.PlayerHealth-entity.EnemyBulletDamage, s.player.Health)
}

func TestCombat_ShieldAbsorbs(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	s.player.Shield = true
	s.bullets = []entity.Bullet{enemyBulletAt(s.player.Pos)}

	s.resolveCollisions()

	assert.True(t, s.bullets[0].Hit, "shielded ships still absorb the bullet")
	assert.Equal(t, entity.PlayerHealth, s.player.Health)
}

func TestCombat_ReplicaAbsorbsWithoutDamage(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	remote := entity.NewShip(entity.Player)
	remote.MoveTo(entity.Point{X: 100, Y: 300})
	s.dir.RegisterRemoteShip(remote)

	s.bullets = []entity.Bullet{enemyBulletAt(entity.Point{X: 110, Y: 300})}
	s.resolveCollisions()

	assert.True(t, s.bullets[0].Hit)
	assert.Equal(t, entity.PlayerHealth, s.dir.FindReplica(remote.ID).Health)
	assert.Equal(t, entity.PlayerHealth, s.player.Health)
}

func TestCombat_OneHitPerBullet(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	remote := entity.NewShip(entity.Player)
	s.dir.RegisterRemoteShip(remote)

	// replica and local player overlap at spawn, the replica is checked first
	s.bullets = []entity.Bullet{enemyBulletAt(entity.PlayerSpawn)}
	s.resolveCollisions()

	assert.True(t, s.bullets[0].Hit)
	assert.Equal(t, entity.PlayerHealth, s.player.Health)

	s.resolveCollisions()
	assert.Equal(t, entity.PlayerHealth, s.player.Health, "hit bullets are inert")
}

func TestCombat_DeadShipsArePassedThrough(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	s.player.Health = -1
	s.bullets = []entity.Bullet{enemyBulletAt(s.player.Pos)}

	s.resolveCollisions()
	assert.False(t, s.bullets[0].Hit)

	s.player.Health = entity.PlayerHealth
	s.enemy.Health = 0
	s.resolveCollisions()
	assert.False(t, s.bullets[0].Hit, "a dead boss's bullets are harmless")
}

func TestCombat_HitRadius(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	s.bullets = []entity.Bullet{
		enemyBulletAt(entity.Point{X: s.player.Pos.X + entity.PlayerHitRadius, Y: s.player.Pos.Y}),
	}

	s.resolveCollisions()
	assert.False(t, s.bullets[0].Hit, "the radius is exclusive")
}

func TestCombat_BossDamage(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	near := entity.Point{X: s.enemy.Pos.X + 30, Y: s.enemy.Pos.Y}

	s.bullets = []entity.Bullet{
		{Possession: entity.Player, Kind: entity.Normal, Pos: near},
		{Possession: entity.Player, Kind: entity.Special, Pos: near},
		{Possession: entity.Player, Kind: entity.Normal, Pos: entity.Point{X: s.enemy.Pos.X + entity.BossHitRadius + 1, Y: s.enemy.Pos.Y}},
	}
	s.resolveCollisions()

	assert.Equal(t, entity.BossHealth-entity.NormalBulletDamage-entity.SpecialBulletDamage, s.enemy.Health)
	assert.True(t, s.bullets[0].Hit)
	assert.True(t, s.bullets[1].Hit)
	assert.False(t, s.bullets[2].Hit)
}

func TestCombat_PruneKeepsEdges(t *testing.T) {
	s, _ := newLoneSession(t, Peer, SessionOptions{})
	s.bullets = []entity.Bullet{
		{Pos: entity.Point{Y: 0}},
		{Pos: entity.Point{Y: testHeight}},
		{Pos: entity.Point{Y: -1}},
		{Pos: entity.Point{Y: testHeight + 1}},
		{Pos: entity.Point{Y: 300}, Hit: true},
		{Pos: entity.Point{Y: 300}},
	}

	s.pruneBullets(testHeight)

	assert.Len(t, s.bullets, 3)
	for _, b := range s.bullets {
		assert.False(t, b.Hit)
		assert.True(t, b.InView(testHeight))
	}
}
