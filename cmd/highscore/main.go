// highscore 打印或清零保存的最高分
//
// 用法:
//
//	go run ./cmd/highscore [-config data/game.yaml]          # 打印
//	go run ./cmd/highscore [-config data/game.yaml] -reset   # 清零
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/game"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	reset      = flag.Bool("reset", false, "把最高分清零")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	manager, err := gdata.Open(gdata.Config{AppName: cfg.Storage.AppName})
	if err != nil {
		fmt.Fprintf(os.Stderr, "打开存储失败: %v\n", err)
		os.Exit(1)
	}

	hm, err := game.NewHighScoreManager(manager)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取最高分失败: %v\n", err)
		os.Exit(1)
	}

	if *reset {
		before := hm.Get()
		if err := hm.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "清零失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("最高分已清零（之前为 %d）\n", before)
		return
	}

	fmt.Printf("最高分: %d\n", hm.Get())
}
