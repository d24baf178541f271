// Package main provides a headless trace of the cursor trail springs.
//
// The tool jumps the pointer target from one point to another, steps the
// three followers at 60 FPS and reports when each one settles.
//
// Usage:
//
//	go run ./cmd/verify_trail [flags]
//
// Flags:
//
//	--motion <file>   Motion YAML to read spring parameters from (default: built-in)
//	--from x,y        Start position (default: 0,0)
//	--to x,y          Target position after the jump (default: 400,300)
//	--seconds <n>     Simulated duration (default: 3)
//	--json            Print the full per-frame trace as JSON
//	--plot            Draw distance-to-pointer curves in braille
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"

	"github.com/decker502/portfolio/pkg/config"
)

func main() {
	motionFile := flag.String("motion", "", "motion YAML file")
	from := flag.String("from", "0,0", "start position x,y")
	to := flag.String("to", "400,300", "target position x,y")
	seconds := flag.Float64("seconds", 3, "simulated seconds")
	asJSON := flag.Bool("json", false, "print per-frame trace as JSON")
	plot := flag.Bool("plot", false, "plot distance curves")
	flag.Parse()

	cfg := config.DefaultMotionConfig()
	if *motionFile != "" {
		var err error
		cfg, err = config.LoadMotionConfigFile(*motionFile)
		if err != nil {
			log.Fatalf("加载动画配置失败: %v", err)
		}
	}

	start, err := parsePoint(*from)
	if err != nil {
		log.Fatalf("--from: %v", err)
	}
	target, err := parsePoint(*to)
	if err != nil {
		log.Fatalf("--to: %v", err)
	}

	report := Simulate(cfg.Cursor.Fast, cfg.Cursor.Slow, start, target, *seconds)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("JSON 输出失败: %v", err)
		}
		return
	}

	fmt.Printf("跳变: (%.0f, %.0f) -> (%.0f, %.0f), 模拟 %.1fs (%d 帧)\n",
		start.X, start.Y, target.X, target.Y, *seconds, len(report.Frames))
	for i, f := range report.Followers {
		settled := "未静止"
		if f.SettledFrame >= 0 {
			settled = fmt.Sprintf("第 %d 帧 (%.2fs)", f.SettledFrame, float64(f.SettledFrame)*frameDt)
		}
		fmt.Printf("  层 %d: 静止于 %s, 最大越界 %.2fpx, 最终误差 %.3fpx\n", i, settled, f.Overshoot, f.FinalError)
	}

	if *plot {
		fmt.Println()
		fmt.Print(Plot(report, 120, 40))
	}
}
