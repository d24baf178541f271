package scenes

import (
	"github.com/decker502/portfolio/pkg/utils"
)

// 不属于任何区块的可悬停元素
const (
	hoverGroupNav  = "#nav"
	hoverGroupCTA  = "#cta"
	hoverGroupMenu = "#menu"
)

// HoverKey 可悬停元素：区块 ID（或上面的固定分组）加子元素下标
type HoverKey struct {
	Group string
	Index int
}

// Hover 悬停进度
//
// 同一时刻最多一个元素处于悬停；该元素的进度向 1 推进，
// 其他元素回落到 0，回到 0 的条目会被移除。
type Hover struct {
	duration float64
	progress map[HoverKey]float64

	target    HoverKey
	hasTarget bool
}

// NewHover 创建悬停状态，duration 为 0→1 的时长（秒）
func NewHover(duration float64) *Hover {
	return &Hover{duration: duration, progress: make(map[HoverKey]float64)}
}

// Set 设置本帧指针下的元素
func (h *Hover) Set(key HoverKey) {
	h.target = key
	h.hasTarget = true
}

// Clear 指针下没有可悬停元素
func (h *Hover) Clear() {
	h.hasTarget = false
}

// Target 当前悬停的元素
func (h *Hover) Target() (HoverKey, bool) {
	return h.target, h.hasTarget
}

// Step 推进所有元素的进度
func (h *Hover) Step(deltaTime float64) {
	if h.hasTarget {
		if _, ok := h.progress[h.target]; !ok {
			h.progress[h.target] = 0
		}
	}
	step := 1.0
	if h.duration > 0 {
		step = deltaTime / h.duration
	}
	for key, p := range h.progress {
		if h.hasTarget && key == h.target {
			h.progress[key] = utils.Clamp01(p + step)
			continue
		}
		p -= step
		if p <= 0 {
			delete(h.progress, key)
			continue
		}
		h.progress[key] = p
	}
}

// Progress 元素的悬停进度 [0,1]（已缓动）
func (h *Hover) Progress(key HoverKey) float64 {
	return utils.EaseOutQuad(h.progress[key])
}

// Reset 清空全部进度（重新排版后下标可能失效）
func (h *Hover) Reset() {
	clear(h.progress)
	h.hasTarget = false
}
