package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏可调参数
//
// 配置文件位置: data/game.yaml（可选，缺失时使用 DefaultGameConfig）
// 所有时间单位均为秒，坐标单位均为像素。
type GameConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Formation  FormationConfig  `yaml:"formation"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	BigEnemy   BigEnemyConfig   `yaml:"bigEnemy"`
	Score      ScoreConfig      `yaml:"score"`
	EnemyFire  EnemyFireConfig  `yaml:"enemyFire"`
	Audio      AudioConfig      `yaml:"audio"`
	Assets     AssetsConfig     `yaml:"assets"`
	Storage    StorageConfig    `yaml:"storage"`
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FormationConfig 敌人阵列配置
type FormationConfig struct {
	Rows     int     `yaml:"rows"`
	Columns  int     `yaml:"columns"`
	PaddingX float64 `yaml:"paddingX"` // 水平步长，同时也是列间距
	PaddingY float64 `yaml:"paddingY"` // 垂直步长，同时也是行间距

	// StepInterval 阵列每次移动的间隔（秒）
	StepInterval float64 `yaml:"stepInterval"`

	// SpeedFactor 每清空一波后 StepInterval 的乘数
	SpeedFactor float64 `yaml:"speedFactor"`

	// BoundMargin 边界检测时附加的 padding 倍数
	BoundMargin float64 `yaml:"boundMargin"`

	// RowLayout 每一行使用的敌人种类索引，长度必须等于 Rows
	RowLayout []int `yaml:"rowLayout"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	YRatio       float64 `yaml:"yRatio"` // 玩家Y坐标占屏幕高度的比例
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	AnimationFPS float64 `yaml:"animationFPS"`
}

// EnemyConfig 阵列敌人配置
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	AnimationFPS float64 `yaml:"animationFPS"`
}

// ProjectileConfig 子弹配置
type ProjectileConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Scale          float64 `yaml:"scale"`
	FlightDuration float64 `yaml:"flightDuration"`
}

// BigEnemyConfig 奖励敌人配置
type BigEnemyConfig struct {
	Y                float64 `yaml:"y"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	TraverseDuration float64 `yaml:"traverseDuration"`
	RespawnDelay     float64 `yaml:"respawnDelay"`
	Score            int     `yaml:"score"`
}

// ScoreConfig 计分配置
type ScoreConfig struct {
	BaseIncrement   int `yaml:"baseIncrement"`
	LevelMultiplier int `yaml:"levelMultiplier"`
}

// EnemyFireConfig 敌人开火节奏
type EnemyFireConfig struct {
	InitialDelay float64 `yaml:"initialDelay"`
	RetryDelay   float64 `yaml:"retryDelay"`
}

// AudioConfig 音效配置
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sampleRate"`
}

// AssetsConfig 精灵图资源配置
//
// Dir 为空时不加载任何图片，所有实体以纯色矩形绘制。
// 每个精灵是一组帧图片路径（相对 Dir）。
// Sounds 把音效ID映射到音频文件（.ogg/.mp3/.wav，相对 Dir），未声明的音效使用合成音。
type AssetsConfig struct {
	Dir     string              `yaml:"dir"`
	Sprites map[string][]string `yaml:"sprites"`
	Sounds  map[string]string   `yaml:"sounds"`
}

// StorageConfig 持久化配置
type StorageConfig struct {
	AppName string `yaml:"appName"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{Width: 800, Height: 600},
		Formation: FormationConfig{
			Rows:         5,
			Columns:      11,
			PaddingX:     40,
			PaddingY:     30,
			StepInterval: 1.0,
			SpeedFactor:  0.9,
			BoundMargin:  2.5,
			RowLayout:    []int{0, 1, 1, 2, 2},
		},
		Player: PlayerConfig{
			YRatio:       0.8,
			Width:        48,
			Height:       48,
			AnimationFPS: 24,
		},
		Enemy: EnemyConfig{
			Width:        32,
			Height:       32,
			AnimationFPS: 24,
		},
		Projectile: ProjectileConfig{
			Width:          8,
			Height:         16,
			Scale:          0.5,
			FlightDuration: 1.0,
		},
		BigEnemy: BigEnemyConfig{
			Y:                24,
			Width:            64,
			Height:           28,
			TraverseDuration: 6.0,
			RespawnDelay:     10.0,
			Score:            500,
		},
		Score: ScoreConfig{
			BaseIncrement:   100,
			LevelMultiplier: 2,
		},
		EnemyFire: EnemyFireConfig{
			InitialDelay: 1.5,
			RetryDelay:   0.5,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 48000,
		},
		Assets: AssetsConfig{
			Sprites: map[string][]string{},
			Sounds:  map[string]string{},
		},
		Storage: StorageConfig{AppName: "space_invaders"},
	}
}

// LoadGameConfig 加载游戏配置
//
// 文件内容覆盖在默认配置之上，未出现的字段保持默认值。
// 文件不存在时直接返回默认配置。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"），为空时返回默认配置
//
// 返回:
//   - *GameConfig: 合并并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	if path == "" {
		return DefaultGameConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGameConfig(), nil
		}
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	return ParseGameConfig(data)
}

// ParseGameConfig 把 YAML 内容覆盖在默认配置之上并验证
// 用于读取嵌入的配置文件
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}

	f := c.Formation
	if f.Rows <= 0 || f.Columns <= 0 {
		return fmt.Errorf("formation must have at least one row and column, got %dx%d", f.Rows, f.Columns)
	}
	if f.PaddingX <= 0 || f.PaddingY <= 0 {
		return fmt.Errorf("formation padding must be positive, got (%.1f, %.1f)", f.PaddingX, f.PaddingY)
	}
	if f.StepInterval <= 0 {
		return fmt.Errorf("formation stepInterval must be positive, got %.3f", f.StepInterval)
	}
	if f.SpeedFactor <= 0 || f.SpeedFactor > 1 {
		return fmt.Errorf("formation speedFactor must be in (0, 1], got %.3f", f.SpeedFactor)
	}
	if f.BoundMargin < 2 {
		return fmt.Errorf("formation boundMargin must be >= 2, got %.2f", f.BoundMargin)
	}
	if len(f.RowLayout) != f.Rows {
		return fmt.Errorf("formation rowLayout has %d entries, want %d", len(f.RowLayout), f.Rows)
	}
	for i, kind := range f.RowLayout {
		if kind < 0 || kind >= EnemyKindCount {
			return fmt.Errorf("formation rowLayout[%d] = %d is not a valid enemy kind", i, kind)
		}
	}

	if c.Projectile.FlightDuration <= 0 {
		return fmt.Errorf("projectile flightDuration must be positive, got %.3f", c.Projectile.FlightDuration)
	}
	if c.BigEnemy.TraverseDuration <= 0 || c.BigEnemy.RespawnDelay <= 0 {
		return fmt.Errorf("bigEnemy durations must be positive")
	}
	if c.Score.BaseIncrement <= 0 || c.Score.LevelMultiplier < 1 {
		return fmt.Errorf("score baseIncrement must be positive and levelMultiplier >= 1")
	}
	if c.EnemyFire.InitialDelay < 0 || c.EnemyFire.RetryDelay <= 0 {
		return fmt.Errorf("enemyFire delays invalid: initial=%.2f retry=%.2f", c.EnemyFire.InitialDelay, c.EnemyFire.RetryDelay)
	}
	if c.Player.YRatio <= 0 || c.Player.YRatio >= 1 {
		return fmt.Errorf("player yRatio must be in (0, 1), got %.2f", c.Player.YRatio)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}
	if c.Storage.AppName == "" {
		return fmt.Errorf("storage appName must not be empty")
	}

	return nil
}

// PlayerY 玩家所在行的Y坐标
func (c *GameConfig) PlayerY() float64 {
	return c.Screen.Height * c.Player.YRatio
}
