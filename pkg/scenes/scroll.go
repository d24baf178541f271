package scenes

import (
	"github.com/decker502/portfolio/pkg/utils"
)

// Scroller 页面纵向滚动
//
// 滚轮和拖动立即生效；导航点击启动一段缓动滚动，
// 期间任何手动滚动都会取消缓动。
type Scroller struct {
	offset float64
	max    float64

	animating bool
	from, to  float64
	elapsed   float64
	duration  float64
}

// NewScroller 创建滚动器，duration 为导航平滑滚动时长（秒）
func NewScroller(duration float64) *Scroller {
	return &Scroller{duration: duration}
}

// SetLimit 设置可滚动范围 [0, max]
func (s *Scroller) SetLimit(contentHeight, viewHeight float64) {
	s.max = contentHeight - viewHeight
	if s.max < 0 {
		s.max = 0
	}
	s.offset = s.clamp(s.offset)
	s.to = s.clamp(s.to)
}

// Offset 当前滚动距离
func (s *Scroller) Offset() float64 {
	return s.offset
}

// Max 最大滚动距离
func (s *Scroller) Max() float64 {
	return s.max
}

// Animating 是否正在平滑滚动
func (s *Scroller) Animating() bool {
	return s.animating
}

// By 立即滚动 delta 像素（正值向下）
func (s *Scroller) By(delta float64) {
	if delta == 0 {
		return
	}
	s.animating = false
	s.offset = s.clamp(s.offset + delta)
}

// ScrollTo 平滑滚动到 y
func (s *Scroller) ScrollTo(y float64) {
	target := s.clamp(y)
	if s.duration <= 0 {
		s.animating = false
		s.offset = target
		return
	}
	s.from = s.offset
	s.to = target
	s.elapsed = 0
	s.animating = true
}

// Update 推进平滑滚动
func (s *Scroller) Update(deltaTime float64) {
	if !s.animating {
		return
	}
	s.elapsed += deltaTime
	p := utils.Progress(s.elapsed, 0, s.duration)
	s.offset = utils.Lerp(s.from, s.to, utils.EaseInOutCubic(p))
	if p >= 1 {
		s.offset = s.to
		s.animating = false
	}
}

func (s *Scroller) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > s.max {
		return s.max
	}
	return y
}
