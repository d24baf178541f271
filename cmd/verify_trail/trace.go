package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/exrook/drawille-go"

	"github.com/decker502/portfolio/pkg/motion"
)

const frameDt = 1.0 / 60.0

// Point 平面坐标
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame 一帧内三层的位置
type Frame struct {
	Index     int                         `json:"frame"`
	Followers [motion.FollowerCount]Point `json:"followers"`
}

// FollowerSummary 单层的收敛情况
type FollowerSummary struct {
	// SettledFrame 首次静止且之后一直静止的帧，-1 表示未静止
	SettledFrame int     `json:"settledFrame"`
	Overshoot    float64 `json:"overshoot"`
	FinalError   float64 `json:"finalError"`
}

// Report 一次模拟的结果
type Report struct {
	From      Point                                 `json:"from"`
	To        Point                                 `json:"to"`
	Followers [motion.FollowerCount]FollowerSummary `json:"summary"`
	Frames    []Frame                               `json:"frames"`
}

// Simulate 让三层先静止在 from，再把指针跳到 to，逐帧推进 seconds 秒
func Simulate(fast, slow motion.SpringConfig, from, to Point, seconds float64) Report {
	trail := motion.NewTrail(fast, slow)

	// 先在起点收敛
	trail.SetTarget(from.X, from.Y)
	for range 600 {
		trail.Step(frameDt)
	}

	trail.SetTarget(to.X, to.Y)

	report := Report{From: from, To: to}
	for i := range report.Followers {
		report.Followers[i].SettledFrame = -1
	}

	jump := math.Hypot(to.X-from.X, to.Y-from.Y)
	n := int(math.Round(seconds / frameDt))
	for frame := 1; frame <= n; frame++ {
		trail.Step(frameDt)

		var fr Frame
		fr.Index = frame
		for i := range fr.Followers {
			f := trail.Follower(i)
			fr.Followers[i] = Point{X: f.X, Y: f.Y}

			sum := &report.Followers[i]
			// 越过目标的距离：沿跳变方向投影超出终点的部分
			if jump > 0 {
				along := ((f.X-from.X)*(to.X-from.X) + (f.Y-from.Y)*(to.Y-from.Y)) / jump
				sum.Overshoot = math.Max(sum.Overshoot, along-jump)
			}
			if trail.FollowerSettled(i) {
				if sum.SettledFrame < 0 {
					sum.SettledFrame = frame
				}
			} else {
				sum.SettledFrame = -1
			}
		}
		report.Frames = append(report.Frames, fr)
	}

	for i := range report.Followers {
		f := trail.Follower(i)
		report.Followers[i].FinalError = math.Hypot(f.X-to.X, f.Y-to.Y)
	}
	return report
}

// Plot 用盲文点阵画出每层到指针目标的距离随时间的变化
// width/height 为点阵尺寸（每个字符 2x4 点）
func Plot(r Report, width, height int) string {
	if len(r.Frames) == 0 {
		return ""
	}
	jump := math.Hypot(r.To.X-r.From.X, r.To.Y-r.From.Y)
	if jump == 0 {
		jump = 1
	}

	var b strings.Builder
	for layer := range motion.FollowerCount {
		canvas := drawille.NewCanvas()
		for col := range width {
			idx := col * (len(r.Frames) - 1) / max(width-1, 1)
			p := r.Frames[idx].Followers[layer]
			d := math.Hypot(p.X-r.To.X, p.Y-r.To.Y) / jump
			row := height - 1 - int(math.Round(math.Min(d, 1)*float64(height-1)))
			canvas.Set(col, row)
		}
		fmt.Fprintf(&b, "层 %d 距离/跳变幅度\n", layer)
		for _, line := range canvas.Rows(0, 0, width, height) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func parsePoint(s string) (Point, error) {
	var p Point
	if _, err := fmt.Sscanf(s, "%g,%g", &p.X, &p.Y); err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return p, nil
}
