// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/embedded"
	"github.com/brendino500/space-invaders/pkg/game"
	"github.com/brendino500/space-invaders/pkg/scenes"
	"github.com/brendino500/space-invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultConfigPath 默认配置文件路径
const DefaultConfigPath = "data/game.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 在屏幕左下角显示 TPS 和实体数量
	Debug bool
	// ConfigPath 游戏配置文件路径，为空时使用 DefaultConfigPath
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	sceneManager *game.SceneManager
	gameScene    *scenes.GameScene
	verbose      bool
	debug        bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 移动端调用此函数前，必须先调用 embedded.Init() 初始化嵌入的配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	gameConfig, err := loadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded game config (%s)", configPath)

	// 存储不可用不是致命错误，最高分只保存在内存中
	if err := utils.PrepareStorage(gameConfig.Storage.AppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: gameConfig.Storage.AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (high score will not persist)", err)
		gdataManager = nil
	}
	highScores, err := game.NewHighScoreManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("最高分存储初始化失败: %w", err)
	}

	resourceManager := game.NewResourceManager(gameConfig.Assets)
	if err := resourceManager.PreloadAll(); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	var audioContext *audio.Context
	if gameConfig.Audio.Enabled {
		audioContext = audio.NewContext(gameConfig.Audio.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, gameConfig.Audio)
	if err := audioManager.LoadSounds(gameConfig.Assets); err != nil {
		return nil, fmt.Errorf("音效加载失败: %w", err)
	}
	log.Printf("[App] AudioManager initialized")

	gameScene, err := scenes.NewGameScene(gameConfig, resourceManager, highScores, audioManager,
		utils.NewKeyboardInput(), rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	return &App{
		cfg:          gameConfig,
		sceneManager: sceneManager,
		gameScene:    gameScene,
		verbose:      cfg.Verbose,
		debug:        cfg.Debug,
	}, nil
}

// loadGameConfig 优先读取磁盘上的配置文件，不存在时使用嵌入的副本
func loadGameConfig(path string) (*config.GameConfig, error) {
	if _, err := os.Stat(path); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return config.LoadGameConfig(path)
	}

	if embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] %s not found on disk, using embedded copy", path)
		return config.ParseGameConfig(data)
	}

	log.Printf("[Config] %s not found, using defaults", path)
	return config.DefaultGameConfig(), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 关闭窗口前保存进行中这一局的分数
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.debug {
		msg := fmt.Sprintf("TPS %.1f  FPS %.1f  entities %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), a.gameScene.EntityCount())
		ebitenutil.DebugPrintAt(screen, msg, int(config.HUDMarginX), int(a.cfg.Screen.Height)-20)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.Screen.Width), int(a.cfg.Screen.Height)
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.cfg
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
