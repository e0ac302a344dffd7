// verify_formation 无界面地运行阵列移动，打印每一步的位置和边界，
// 并报告阵列在第几步到达玩家所在行。
//
// 用法:
//
//	go run ./cmd/verify_formation [-config data/game.yaml] [-steps 500] [-player-y 480] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/brendino500/space-invaders/pkg/entities"
	"github.com/brendino500/space-invaders/pkg/event"
	"github.com/brendino500/space-invaders/pkg/game"
	"github.com/brendino500/space-invaders/pkg/systems"
)

var (
	configPath = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	maxSteps   = flag.Int("steps", 500, "最多执行的步数")
	playerY    = flag.Float64("player-y", 0, "玩家Y坐标（0 表示使用配置计算的位置）")
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

	em := ecs.NewEntityManager()
	scheduler := game.NewScheduler()
	tweens := game.NewTweenManager()
	events := event.NewQueue()

	formation := systems.NewFormationSystem(em, cfg, nil, scheduler, tweens, events)
	if _, err := formation.Build(); err != nil {
		fmt.Fprintf(os.Stderr, "创建阵列失败: %v\n", err)
		os.Exit(1)
	}

	playerID, err := entities.NewPlayer(em, cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建玩家失败: %v\n", err)
		os.Exit(1)
	}
	formation.SetPlayer(playerID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if *playerY > 0 {
		pos.Y = *playerY
	}

	fmt.Println("=== 阵列移动验证 ===")
	fmt.Printf("屏幕 %.0fx%.0f，阵列 %dx%d，步长 (%.0f, %.0f)，玩家Y=%.0f\n\n",
		cfg.Screen.Width, cfg.Screen.Height, cfg.Formation.Columns, cfg.Formation.Rows,
		cfg.Formation.PaddingX, cfg.Formation.PaddingY, pos.Y)

	// 每步之后推进半个间隔，让补间落到逻辑位置
	settleTicks := int(cfg.Formation.StepInterval/2/config.FixedDeltaTime) + 2
	violations := 0

	for step := 1; step <= *maxSteps; step++ {
		formation.Step()
		for i := 0; i < settleTicks; i++ {
			tweens.Update(config.FixedDeltaTime)
		}

		caught := false
		events.Drain(func(e event.Event) {
			if e.Type == event.PlayerCaught {
				caught = true
			}
		})
		if caught {
			fmt.Printf("\n阵列在第 %d 步到达玩家所在行\n", step)
			break
		}

		f := formation.Formation()
		left, right, _ := formation.Edges()
		direction := "→"
		if !f.MovingRight {
			direction = "←"
		}
		status := ""
		if left < 0 || right > cfg.Screen.Width {
			status = "  ❌ 超出屏幕"
			violations++
		}
		if f.X != f.TargetX || f.Y != f.TargetY {
			status += "  ⚠️ 补间未完成"
		}
		fmt.Printf("步 %3d %s 位置=(%6.1f, %6.1f) 左边界=%6.1f 右边界=%6.1f 待下移=%v%s\n",
			step, direction, f.TargetX, f.TargetY, left, right, f.MoveDownPending, status)
	}

	fmt.Println()
	if violations > 0 {
		fmt.Printf("❌ %d 步超出屏幕\n", violations)
		os.Exit(1)
	}
	fmt.Println("✅ 所有步都在屏幕内")
}
