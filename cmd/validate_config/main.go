// validate_config 检查游戏配置文件：YAML 格式、字段取值、以及声明的图片和音效是否存在
//
// 用法:
//
//	go run ./cmd/validate_config [-config data/game.yaml]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/brendino500/space-invaders/pkg/config"
)

var configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")

func main() {
	flag.Parse()

	if _, err := os.Stat(*configPath); err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确，配置有效\n")
	fmt.Printf("✅ 阵列 %dx%d，敌人总数 %d\n", cfg.Formation.Columns, cfg.Formation.Rows,
		cfg.Formation.Columns*cfg.Formation.Rows)

	if cfg.Assets.Dir == "" {
		fmt.Printf("ℹ️ 未配置资源目录，所有实体使用纯色矩形，音效使用合成音\n")
		return
	}

	names := make([]string, 0, len(cfg.Assets.Sprites))
	for name := range cfg.Assets.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	missing := 0
	for _, name := range names {
		for _, file := range cfg.Assets.Sprites[name] {
			path := filepath.Join(cfg.Assets.Dir, file)
			if _, err := os.Stat(path); err != nil {
				fmt.Printf("❌ 精灵 %s 缺少文件 %s\n", name, path)
				missing++
			}
		}
	}

	for id, file := range cfg.Assets.Sounds {
		path := filepath.Join(cfg.Assets.Dir, file)
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("❌ 音效 %s 缺少文件 %s\n", id, path)
			missing++
		}
	}

	if missing > 0 {
		fmt.Printf("❌ 有 %d 个资源文件缺失\n", missing)
		os.Exit(1)
	}
	fmt.Printf("✅ %d 个精灵和 %d 个音效的文件都存在\n", len(names), len(cfg.Assets.Sounds))
}
