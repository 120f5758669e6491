package entity

import "math"

const (
	ShipSpeed          float32 = 350.0
	BossSpeed          float32 = 125.0
	BulletSpeed        float32 = 500.0
	SpecialBulletSpeed float32 = 250.0

	NormalBulletDamage  float32 = 1.0
	SpecialBulletDamage float32 = 5.0
	EnemyBulletDamage   float32 = 2.0

	// ScreenBorder is the margin ships keep from every edge.
	ScreenBorder float32 = 20.0

	// BulletSpawnOffset moves bullets in front of the ship that fires them.
	BulletSpawnOffset float32 = 20.0

	PlayerHealth float32 = 1.0
	BossHealth   float32 = 50.0

	// PlayerHitRadius and BossHitRadius are the collision distances for bullets.
	PlayerHitRadius float32 = 24.0
	BossHitRadius   float32 = 40.0

	// BossDeadBelow is the health under which the boss counts as defeated.
	BossDeadBelow float32 = 0.1

	halfPi = math.Pi / 2
)

var (
	PlayerSpawn = Point{X: 400, Y: 500}
	BossSpawn   = Point{X: 400, Y: 50}
)
