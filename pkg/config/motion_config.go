package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/motion"
)

// MotionConfig 动画参数配置
//
// 包含光标拖尾弹簧、开场遮罩时序、入场动画和滚动参数。
// 配置文件位置: data/motion.yaml
type MotionConfig struct {
	Cursor       CursorConfig       `yaml:"cursor"`
	Splash       SplashConfig       `yaml:"splash"`
	Content      ContentFadeConfig  `yaml:"content"`
	Reveal       RevealConfig       `yaml:"reveal"`
	Hero         HeroConfig         `yaml:"hero"`
	Scroll       ScrollConfig       `yaml:"scroll"`
	Testimonials TestimonialsConfig `yaml:"testimonials"`
	Hover        HoverConfig        `yaml:"hover"`
}

// CursorConfig 团块光标配置
type CursorConfig struct {
	Enabled bool                `yaml:"enabled"`
	Fast    motion.SpringConfig `yaml:"fast"`
	Slow    motion.SpringConfig `yaml:"slow"`
	// Radii 每层半径（像素），索引与跟随层一致
	Radii []float64 `yaml:"radii"`
	// Colors 每层颜色
	Colors []RGBA `yaml:"colors"`
}

// RGBA 颜色（A 取 0~1）
type RGBA struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// Color 转换为预乘 alpha 的 color.RGBA
func (c RGBA) Color() color.RGBA {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

// SplashConfig 开场遮罩配置
type SplashConfig struct {
	// Variant "timer" 或 "timer+ready"
	Variant      string `yaml:"variant"`
	MinDisplayMs int    `yaml:"minDisplayMs"`
	ExitMs       int    `yaml:"exitMs"`
	// GlowPeriodMs 文字光晕脉冲周期
	GlowPeriodMs int `yaml:"glowPeriodMs"`
}

// MinDisplay 最短显示时间
func (c SplashConfig) MinDisplay() time.Duration {
	return time.Duration(c.MinDisplayMs) * time.Millisecond
}

// Exit 退出过渡时长
func (c SplashConfig) Exit() time.Duration {
	return time.Duration(c.ExitMs) * time.Millisecond
}

// ContentFadeConfig 主内容淡入
type ContentFadeConfig struct {
	FadeInMs int `yaml:"fadeInMs"`
}

// RevealConfig 入场动画配置
type RevealConfig struct {
	RootMargin       float64 `yaml:"rootMargin"`
	DurationMs       int     `yaml:"durationMs"`
	SlideDistance    float64 `yaml:"slideDistance"`
	StartScale       float64 `yaml:"startScale"`
	DefaultStaggerMs int     `yaml:"defaultStaggerMs"`
}

// HeroConfig 首屏入场配置
type HeroConfig struct {
	SlideDistance float64 `yaml:"slideDistance"`
	DelaysMs      []int   `yaml:"delaysMs"`
	DurationMs    int     `yaml:"durationMs"`
}

// ScrollConfig 滚动配置
type ScrollConfig struct {
	WheelStep     float64 `yaml:"wheelStep"`
	NavDurationMs int     `yaml:"navDurationMs"`
}

// TestimonialsConfig 推荐语轮播
type TestimonialsConfig struct {
	AutoplayMs int `yaml:"autoplayMs"`
}

// HoverConfig 悬停与按下反馈
// 卡片和图块的位移/缩放在 content.yaml 中按区块配置
type HoverConfig struct {
	// DurationMs 悬停进度从 0 到 1 的时长
	DurationMs int `yaml:"durationMs"`
	// NavScale 导航条目悬停时的放大倍数
	NavScale float64 `yaml:"navScale"`
	// NavPressScale 导航条目按下时的缩放倍数
	NavPressScale float64 `yaml:"navPressScale"`
}

// Duration 悬停过渡时长（秒）
func (c HoverConfig) Duration() float64 {
	return float64(c.DurationMs) / 1000
}

// DefaultMotionConfig 与 data/motion.yaml 一致的默认值
func DefaultMotionConfig() *MotionConfig {
	return &MotionConfig{
		Cursor: CursorConfig{
			Enabled: true,
			Fast:    motion.DefaultFastSpring,
			Slow:    motion.DefaultSlowSpring,
			Radii:   []float64{22, 30, 38},
			Colors: []RGBA{
				{R: 194, G: 91, B: 0, A: 0.9},
				{R: 239, G: 126, B: 12, A: 0.7},
				{R: 253, G: 186, B: 116, A: 0.5},
			},
		},
		Splash:       SplashConfig{Variant: "timer+ready", MinDisplayMs: 3000, ExitMs: 500, GlowPeriodMs: 2000},
		Content:      ContentFadeConfig{FadeInMs: 500},
		Reveal:       RevealConfig{RootMargin: 50, DurationMs: 500, SlideDistance: 20, StartScale: 0.8, DefaultStaggerMs: 100},
		Hero:         HeroConfig{SlideDistance: 100, DelaysMs: []int{200, 400, 600}, DurationMs: 600},
		Scroll:       ScrollConfig{WheelStep: 60, NavDurationMs: 800},
		Testimonials: TestimonialsConfig{AutoplayMs: 5000},
		Hover:        HoverConfig{DurationMs: 200, NavScale: 1.1, NavPressScale: 0.95},
	}
}

// LoadMotionConfig 从嵌入资源加载动画配置
//
// 参数:
//   - path: 配置文件路径（如 "data/motion.yaml"）
func LoadMotionConfig(path string) (*MotionConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read motion config: %w", err)
	}
	return ParseMotionConfig(data)
}

// LoadMotionConfigFile 从磁盘加载动画配置（用于覆盖嵌入版本）
func LoadMotionConfigFile(path string) (*MotionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read motion config file: %w", err)
	}
	return ParseMotionConfig(data)
}

// ParseMotionConfig 解析并验证 YAML
// 未出现在 YAML 中的字段保留默认值
func ParseMotionConfig(data []byte) (*MotionConfig, error) {
	cfg := DefaultMotionConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse motion config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid motion config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 弹簧参数可用于积分
//   - 光标半径和颜色覆盖全部跟随层
//   - 时长不为负
//   - 默认错峰和悬停缩放为正
func (c *MotionConfig) Validate() error {
	if err := c.Cursor.Fast.Validate(); err != nil {
		return fmt.Errorf("cursor.fast: %w", err)
	}
	if err := c.Cursor.Slow.Validate(); err != nil {
		return fmt.Errorf("cursor.slow: %w", err)
	}
	if len(c.Cursor.Radii) < motion.FollowerCount {
		return fmt.Errorf("cursor.radii needs %d entries, got %d", motion.FollowerCount, len(c.Cursor.Radii))
	}
	if len(c.Cursor.Colors) < motion.FollowerCount {
		return fmt.Errorf("cursor.colors needs %d entries, got %d", motion.FollowerCount, len(c.Cursor.Colors))
	}
	if c.Splash.MinDisplayMs < 0 || c.Splash.ExitMs < 0 {
		return fmt.Errorf("splash durations must not be negative (min=%d exit=%d)", c.Splash.MinDisplayMs, c.Splash.ExitMs)
	}
	if c.Reveal.DurationMs < 0 {
		return fmt.Errorf("reveal.durationMs must not be negative, got %d", c.Reveal.DurationMs)
	}
	// 未设置 staggerMs 的区块使用默认错峰，子项延迟必须严格递增
	if c.Reveal.DefaultStaggerMs <= 0 {
		return fmt.Errorf("reveal.defaultStaggerMs must be positive, got %d", c.Reveal.DefaultStaggerMs)
	}
	if c.Reveal.StartScale <= 0 || c.Reveal.StartScale > 1 {
		return fmt.Errorf("reveal.startScale must be in (0, 1], got %.2f", c.Reveal.StartScale)
	}
	for i := 1; i < len(c.Hero.DelaysMs); i++ {
		if c.Hero.DelaysMs[i] <= c.Hero.DelaysMs[i-1] {
			return fmt.Errorf("hero.delaysMs must be strictly increasing: %v", c.Hero.DelaysMs)
		}
	}
	if c.Testimonials.AutoplayMs < 0 {
		return fmt.Errorf("testimonials.autoplayMs must not be negative, got %d", c.Testimonials.AutoplayMs)
	}
	if c.Hover.DurationMs < 0 {
		return fmt.Errorf("hover.durationMs must not be negative, got %d", c.Hover.DurationMs)
	}
	if c.Hover.NavScale <= 0 || c.Hover.NavPressScale <= 0 {
		return fmt.Errorf("hover scales must be positive (nav=%.2f press=%.2f)", c.Hover.NavScale, c.Hover.NavPressScale)
	}
	return nil
}
