package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/decker502/portfolio/pkg/embedded"
)

// TestLoadMotionConfig_Embedded 仓库中的 data/motion.yaml 与默认值一致
func TestLoadMotionConfig_Embedded(t *testing.T) {
	embedded.Init(os.DirFS("../.."))

	cfg, err := LoadMotionConfig("data/motion.yaml")
	if err != nil {
		t.Fatalf("LoadMotionConfig() error = %v", err)
	}
	if diff := cmp.Diff(DefaultMotionConfig(), cfg); diff != "" {
		t.Errorf("data/motion.yaml 与 DefaultMotionConfig 不一致 (-want +got):\n%s", diff)
	}
}

func TestParseMotionConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseMotionConfig([]byte("splash:\n  variant: timer\n  minDisplayMs: 1500\n"))
	if err != nil {
		t.Fatalf("ParseMotionConfig() error = %v", err)
	}
	if cfg.Splash.Variant != "timer" {
		t.Errorf("Splash.Variant = %q, 期望 timer", cfg.Splash.Variant)
	}
	if got := cfg.Splash.MinDisplay(); got != 1500*time.Millisecond {
		t.Errorf("MinDisplay() = %v, 期望 1.5s", got)
	}
	// 未写出的字段保留默认值
	if got := cfg.Splash.Exit(); got != 500*time.Millisecond {
		t.Errorf("Exit() = %v, 期望 500ms", got)
	}
	if cfg.Cursor.Fast.Tension != 1800 {
		t.Errorf("Cursor.Fast.Tension = %v, 期望 1800", cfg.Cursor.Fast.Tension)
	}
}

func TestParseMotionConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"语法错误", "cursor: [\n"},
		{"弹簧张力为零", "cursor:\n  fast:\n    tension: 0\n"},
		{"半径不足三层", "cursor:\n  radii: [10, 20]\n"},
		{"颜色不足三层", "cursor:\n  colors:\n    - { r: 1, g: 2, b: 3, a: 1 }\n"},
		{"负的最短显示", "splash:\n  minDisplayMs: -1\n"},
		{"默认错峰为零", "reveal:\n  defaultStaggerMs: 0\n"},
		{"默认错峰为负", "reveal:\n  defaultStaggerMs: -100\n"},
		{"缩放超出范围", "reveal:\n  startScale: 1.5\n"},
		{"首屏延迟非递增", "hero:\n  delaysMs: [200, 200]\n"},
		{"负的轮播间隔", "testimonials:\n  autoplayMs: -5\n"},
		{"负的悬停时长", "hover:\n  durationMs: -1\n"},
		{"导航按下缩放为零", "hover:\n  navPressScale: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMotionConfig([]byte(tt.yaml)); err == nil {
				t.Errorf("ParseMotionConfig(%q) 期望返回错误", tt.yaml)
			}
		})
	}
}

func TestLoadMotionConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motion.yaml")
	if err := os.WriteFile(path, []byte("scroll:\n  wheelStep: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMotionConfigFile(path)
	if err != nil {
		t.Fatalf("LoadMotionConfigFile() error = %v", err)
	}
	if cfg.Scroll.WheelStep != 90 {
		t.Errorf("Scroll.WheelStep = %v, 期望 90", cfg.Scroll.WheelStep)
	}

	if _, err := LoadMotionConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("期望文件不存在时返回错误")
	}
}

func TestRGBAColor(t *testing.T) {
	tests := []struct {
		name  string
		in    RGBA
		wantA uint8
		wantR uint8
	}{
		{"不透明", RGBA{R: 200, A: 1}, 255, 200},
		{"半透明预乘", RGBA{R: 200, A: 0.5}, 127, 100},
		{"超出上限截断", RGBA{R: 10, A: 3}, 255, 10},
		{"负值视为透明", RGBA{R: 10, A: -1}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in.Color()
			if c.A != tt.wantA || c.R != tt.wantR {
				t.Errorf("Color() = %+v, 期望 R=%d A=%d", c, tt.wantR, tt.wantA)
			}
		})
	}
}
