package main

import (
	"flag"
	"log"

	"github.com/brendino500/space-invaders/pkg/app"
	"github.com/brendino500/space-invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	debug      = flag.Bool("debug", false, "显示 TPS 和实体数量")
	configPath = flag.String("config", app.DefaultConfigPath, "游戏配置文件路径")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（磁盘上没有配置文件时使用）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Debug:      *debug,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 由 App.Update 处理关闭：先保存分数再退出
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
