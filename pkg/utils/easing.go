package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 入场、淡入和滚动动画都先用 Progress 求出线性进度再套用缓动。
//
// 参考：https://easings.net/

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseOutCubic 三次方缓出
// 开始快，结束慢；入场动画的默认曲线
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出（导航平滑滚动）
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出（遮罩淡出）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutSine 正弦缓入缓出
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress 计算延迟启动的动画在 elapsed 时刻的线性进度
//
// 参数:
//   - elapsed: 动画触发后经过的时间（秒）
//   - delay: 启动延迟（秒）
//   - duration: 持续时间（秒），<= 0 时延迟结束即完成
func Progress(elapsed, delay, duration float64) float64 {
	if elapsed < delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return Clamp01((elapsed - delay) / duration)
}

// Pulse 周期为 period 秒的 0→1→0 脉冲，用于文字光晕
func Pulse(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(elapsed, period) / period
	if phase < 0.5 {
		return EaseInOutSine(phase * 2)
	}
	return EaseInOutSine((1 - phase) * 2)
}
