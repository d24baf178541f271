// Package motion 提供指针跟随光标的弹簧动画
//
// 弹簧参数沿用 tension/friction/mass 的写法，内部换算为
// 阻尼谐振子的角频率与阻尼比，由 harmonica 做逐帧解析积分。
package motion

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig 弹簧参数（构造后不可变）
type SpringConfig struct {
	Tension   float64 `yaml:"tension"`   // 张力（刚度）
	Friction  float64 `yaml:"friction"`  // 摩擦（阻尼系数）
	Mass      float64 `yaml:"mass"`      // 质量，0 视为 1
	Precision float64 `yaml:"precision"` // 静止判定精度（像素）
}

// DefaultFastSpring 紧跟指针的第一层
var DefaultFastSpring = SpringConfig{Tension: 1800, Friction: 35, Mass: 1, Precision: 0.1}

// DefaultSlowSpring 拖尾层（更重、更软）
var DefaultSlowSpring = SpringConfig{Tension: 300, Friction: 40, Mass: 5, Precision: 0.1}

// normalized 返回补全默认值后的副本
func (c SpringConfig) normalized() SpringConfig {
	if c.Mass <= 0 {
		c.Mass = 1
	}
	if c.Precision <= 0 {
		c.Precision = 0.01
	}
	return c
}

// Validate 检查参数是否可用于积分
func (c SpringConfig) Validate() error {
	if c.Tension <= 0 {
		return fmt.Errorf("spring tension must be positive, got %.2f", c.Tension)
	}
	if c.Friction < 0 {
		return fmt.Errorf("spring friction must not be negative, got %.2f", c.Friction)
	}
	if c.Mass < 0 {
		return fmt.Errorf("spring mass must not be negative, got %.2f", c.Mass)
	}
	return nil
}

// AngularFrequency ω = sqrt(k/m)
func (c SpringConfig) AngularFrequency() float64 {
	c = c.normalized()
	return math.Sqrt(c.Tension / c.Mass)
}

// DampingRatio ζ = c / (2·sqrt(k·m))
func (c SpringConfig) DampingRatio() float64 {
	c = c.normalized()
	return c.Friction / (2 * math.Sqrt(c.Tension*c.Mass))
}

// axisSpring 针对固定帧间隔预计算的一维弹簧
type axisSpring struct {
	dt     float64
	spring harmonica.Spring
}

func newAxisSpring(cfg SpringConfig, dt float64) axisSpring {
	return axisSpring{
		dt:     dt,
		spring: harmonica.NewSpring(dt, cfg.AngularFrequency(), cfg.DampingRatio()),
	}
}

// step 推进一帧，返回新的位置和速度
func (s axisSpring) step(pos, vel, target float64) (float64, float64) {
	return s.spring.Update(pos, vel, target)
}
