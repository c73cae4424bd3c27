package game

// World bounds.
const (
	WorldWidth  = 3000.0
	WorldHeight = 2000.0
)

// Spawn director.
const (
	SpawnChance       = 0.02
	SpawnMinDistance  = 600.0
	ShooterChance     = 0.2
	EnemyBaseSpeed    = 0.4
	EnemySpeedJitter  = 0.25
	EnemySpeedPerLvl  = 0.06
	ShooterTimerRange = 200.0
	BossMinDistance   = 800.0
	BossEveryLevels   = 5
	BossBaseSpeed     = 0.3
	BossSpeedPerLvl   = 0.025
	BossShootTimer    = 100.0
	spawnMaxAttempts  = 10000
)

// Movement resolver.
const (
	SeparationPadding  = 15.0
	SeparationStrength = 1.5
	ContactDrain       = 0.15 // hp per step while overlapping an enemy
)

// Combat resolver.
const (
	HitPadding        = 10.0 // added to enemy size for the hit radius
	ChainRange        = 400.0
	BlastBaseRadius   = 120.0
	BlastRadiusPerLvl = 20.0
	BlastBaseCut      = 2
	BlastCutEvery     = 3 // one extra character per this many levels
	ClusterRadius     = 60.0
	ClusterLifetime   = 30
	ClusterJitter     = 100.0
	FireBaseRadius    = 80.0
	FireRadiusPerLvl  = 10.0
	FireBaseLifetime  = 250
	FireLifePerLvl    = 40
	BurnInterval      = 60
	BurnIntervalHot   = 30
)

// Progression manager.
const (
	XPPerEnemy      = 20
	XPPerBossLife   = 200
	XPGrowth        = 1.2
	StageClearLevel = 10
	UpgradeChoices  = 3
	HealAmount      = 50.0
)
