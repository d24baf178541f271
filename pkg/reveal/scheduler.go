// Package reveal 按区块调度入场动画
//
// 每个区块注册一个视口相交观察者；第一次相交时锁存“已进入视口”，
// 之后该观察者失效，入场动画在一次页面加载中最多播放一次。
package reveal

import (
	"log"
	"sort"
	"time"

	"github.com/decker502/portfolio/pkg/utils"
)

// Rect 页面坐标下的矩形（Y 向下）
type Rect struct {
	X, Y, W, H float64
}

// Bottom 下边界
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Intersects 两个矩形是否有重叠区域
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Options 调度参数
type Options struct {
	// IntersectionSupported 为 false 时退化为“始终可见”，不播放入场动画
	IntersectionSupported bool
	// RootMargin 视口下方扩展的距离（像素），使区块在完全进入前触发
	RootMargin float64
	// Duration 单个元素的入场时长
	Duration time.Duration
	// SlideDistance 入场时的纵向位移（像素）
	SlideDistance float64
	// StartScale 缩放入场的初始比例
	StartScale float64
}

// DefaultOptions 默认参数
func DefaultOptions() Options {
	return Options{
		IntersectionSupported: true,
		RootMargin:            50,
		Duration:              500 * time.Millisecond,
		SlideDistance:         20,
		StartScale:            0.8,
	}
}

type section struct {
	id          string
	bounds      Rect
	children    int
	stagger     time.Duration
	visible     bool
	triggeredAt float64
	active      bool
}

// Scheduler 入场动画调度器
type Scheduler struct {
	opts     Options
	sections map[string]*section
	order    []string
	clock    float64
}

// NewScheduler 创建调度器
func NewScheduler(opts Options) *Scheduler {
	if !opts.IntersectionSupported {
		log.Printf("[Reveal] Viewport intersection unavailable, sections render without entrance animation")
	}
	return &Scheduler{
		opts:     opts,
		sections: make(map[string]*section),
	}
}

// Register 注册区块观察者
// children 为参与错峰入场的子元素数量，stagger 为相邻子元素的延迟增量
func (s *Scheduler) Register(id string, bounds Rect, children int, stagger time.Duration) {
	sec, exists := s.sections[id]
	if !exists {
		sec = &section{id: id, active: true}
		s.sections[id] = sec
		s.order = append(s.order, id)
	}
	sec.bounds = bounds
	sec.children = children
	sec.stagger = stagger
	if !s.opts.IntersectionSupported {
		sec.visible = true
		sec.active = false
	}
}

// UpdateBounds 布局变化后更新区块位置，不影响已锁存的状态
func (s *Scheduler) UpdateBounds(id string, bounds Rect) {
	if sec, ok := s.sections[id]; ok {
		sec.bounds = bounds
	}
}

// Advance 推进调度时钟
func (s *Scheduler) Advance(deltaTime float64) {
	s.clock += deltaTime
}

// Observe 用当前视口检查所有仍然有效的观察者
// 返回本次新触发的区块 ID（按注册顺序）
func (s *Scheduler) Observe(viewport Rect) []string {
	if !s.opts.IntersectionSupported {
		return nil
	}
	root := viewport
	root.H += s.opts.RootMargin

	var triggered []string
	for _, id := range s.order {
		sec := s.sections[id]
		if !sec.active || !sec.bounds.Intersects(root) {
			continue
		}
		sec.visible = true
		sec.active = false
		sec.triggeredAt = s.clock
		triggered = append(triggered, id)
		log.Printf("[Reveal] Section %q entered viewport at %.3fs", id, s.clock)
	}
	return triggered
}

// Visible 区块是否已进入过视口
func (s *Scheduler) Visible(id string) bool {
	sec, ok := s.sections[id]
	return ok && sec.visible
}

// VisibleSections 已进入视口的区块 ID（排序后）
func (s *Scheduler) VisibleSections() []string {
	var ids []string
	for id, sec := range s.sections {
		if sec.visible {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ActiveObservers 仍在等待第一次相交的观察者数
func (s *Scheduler) ActiveObservers() int {
	n := 0
	for _, sec := range s.sections {
		if sec.active {
			n++
		}
	}
	return n
}

// ChildDelay 第 i 个子元素的入场延迟（i × stagger）
func (s *Scheduler) ChildDelay(id string, i int) time.Duration {
	sec, ok := s.sections[id]
	if !ok || i <= 0 {
		return 0
	}
	return time.Duration(i) * sec.stagger
}

// Progress 区块标题等无延迟元素的入场进度
func (s *Scheduler) Progress(id string) float64 {
	return s.ChildProgress(id, 0)
}

// ChildProgress 第 i 个子元素的入场进度 [0,1]（已缓动）
func (s *Scheduler) ChildProgress(id string, i int) float64 {
	sec, ok := s.sections[id]
	if !ok {
		// 未注册的元素直接显示
		return 1
	}
	if !s.opts.IntersectionSupported {
		return 1
	}
	if !sec.visible {
		return 0
	}
	dur := s.opts.Duration.Seconds()
	local := s.clock - sec.triggeredAt - s.ChildDelay(id, i).Seconds()
	if local <= 0 {
		return 0
	}
	if dur <= 0 || local >= dur {
		return 1
	}
	return utils.EaseOutCubic(local / dur)
}

// Entrance 入场效果参数
type Entrance struct {
	OffsetY float64
	Alpha   float64
	Scale   float64
}

// Slide 位移 + 淡入
func (s *Scheduler) Slide(progress float64) Entrance {
	return Entrance{
		OffsetY: (1 - progress) * s.opts.SlideDistance,
		Alpha:   progress,
		Scale:   1,
	}
}

// Zoom 缩放 + 淡入（技能图标）
func (s *Scheduler) Zoom(progress float64) Entrance {
	return Entrance{
		Alpha: progress,
		Scale: utils.Lerp(s.opts.StartScale, 1, progress),
	}
}
