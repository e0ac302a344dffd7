package config

import "image/color"

// 布局配置常量
// 本文件定义了不随配置文件变化的布局参数：敌人种类、精灵名称、颜色和 HUD 位置

// FixedDeltaTime 每个 tick 的固定时间步长（秒），与 Ebitengine 默认 60 TPS 对齐
const FixedDeltaTime = 1.0 / 60.0

// 敌人种类（对应 FormationConfig.RowLayout 中的索引）
const (
	EnemyKindDuck = iota
	EnemyKindBunny
	EnemyKindPig

	// EnemyKindCount 敌人种类总数
	EnemyKindCount
)

// 精灵资源名称（AssetsConfig.Sprites 的键）
const (
	SpritePlayer          = "player"
	SpriteProjectile      = "projectile"
	SpriteEnemyProjectile = "enemyProjectile"
	SpriteBigEnemy        = "bigEnemy"
	SpriteBackground      = "background"
)

// EnemySpriteNames 每种敌人对应的精灵名称
var EnemySpriteNames = [EnemyKindCount]string{
	EnemyKindDuck:  "duck",
	EnemyKindBunny: "bunny",
	EnemyKindPig:   "angryPig",
}

// 没有图片资源时使用的纯色
var (
	BackgroundColor      = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	PlayerColor          = color.RGBA{R: 60, G: 120, B: 220, A: 255}
	ProjectileColor      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	EnemyProjectileColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	BigEnemyColor        = color.RGBA{R: 230, G: 140, B: 20, A: 255}
	PanelColor           = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	TextColor            = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	HUDTextColor         = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	EnemyColors = [EnemyKindCount]color.RGBA{
		EnemyKindDuck:  {R: 240, G: 220, B: 60, A: 255},
		EnemyKindBunny: {R: 240, G: 240, B: 240, A: 255},
		EnemyKindPig:   {R: 240, G: 130, B: 160, A: 255},
	}
)

// HUD 与结算面板布局
const (
	HUDMarginX = 10.0
	HUDMarginY = 8.0

	// GameOverTitleYRatio 结算面板标题所在高度比例，下面各行依次间隔 GameOverLineSpacing
	GameOverTitleYRatio = 0.25
	GameOverLineSpacing = 50.0
	// GameOverHintGap 提示文字与分数行之间的额外间距
	GameOverHintGap = 150.0
)
