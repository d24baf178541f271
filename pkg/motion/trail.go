package motion

import "math"

// FollowerCount 跟随层数量，页面生命周期内固定
const FollowerCount = 3

// Follower 单个跟随点的状态
type Follower struct {
	X, Y   float64 // 当前位置
	VX, VY float64 // 当前速度
	Config SpringConfig

	spring axisSpring
}

// Trail 三层拖尾动画
//
// 第 0 层直接追踪指针位置，第 i 层（i>0）追踪第 i-1 层本帧更新后的位置，
// 形成逐层滞后的“团块”光标。
type Trail struct {
	followers [FollowerCount]Follower
	targetX   float64
	targetY   float64
}

// NewTrail 创建拖尾动画
// fast 用于第 0 层，slow 用于其余两层；参数在此复制，之后不再改变
func NewTrail(fast, slow SpringConfig) *Trail {
	t := &Trail{}
	for i := range t.followers {
		cfg := slow
		if i == 0 {
			cfg = fast
		}
		t.followers[i].Config = cfg.normalized()
	}
	return t
}

// SetTarget 更新指针目标位置（容器相对坐标）
func (t *Trail) SetTarget(x, y float64) {
	t.targetX = x
	t.targetY = y
}

// Target 返回当前指针目标
func (t *Trail) Target() (float64, float64) {
	return t.targetX, t.targetY
}

// Step 推进一帧
//
// 目标不变时仍继续积分，跟随点平滑收敛到静止位置而不是突然停下。
func (t *Trail) Step(dt float64) {
	if dt <= 0 {
		return
	}
	tx, ty := t.targetX, t.targetY
	for i := range t.followers {
		f := &t.followers[i]
		if f.spring.dt != dt {
			f.spring = newAxisSpring(f.Config, dt)
		}
		f.X, f.VX = f.spring.step(f.X, f.VX, tx)
		f.Y, f.VY = f.spring.step(f.Y, f.VY, ty)
		tx, ty = f.X, f.Y
	}
}

// FollowerTarget 返回第 i 层当前追踪的位置
func (t *Trail) FollowerTarget(i int) (float64, float64) {
	if i <= 0 {
		return t.targetX, t.targetY
	}
	prev := t.followers[i-1]
	return prev.X, prev.Y
}

// Follower 返回第 i 层状态的副本
func (t *Trail) Follower(i int) Follower {
	return t.followers[i]
}

// Len 跟随层数量
func (t *Trail) Len() int {
	return FollowerCount
}

// FollowerSettled 第 i 层是否已经在精度范围内静止
func (t *Trail) FollowerSettled(i int) bool {
	f := t.followers[i]
	tx, ty := t.FollowerTarget(i)
	p := f.Config.Precision
	return math.Abs(f.X-tx) < p && math.Abs(f.Y-ty) < p &&
		math.Abs(f.VX) < p && math.Abs(f.VY) < p
}

// Settled 所有层是否都已静止
func (t *Trail) Settled() bool {
	for i := range t.followers {
		if !t.FollowerSettled(i) {
			return false
		}
	}
	return true
}

// Transform 返回第 i 层的渲染变换
func (t *Trail) Transform(i int) Transform {
	f := t.followers[i]
	return NewTransform(f.X, f.Y)
}
