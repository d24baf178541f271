// Package pointer 采样指针/触摸位置，并以每帧至多一次的频率
// 把相对参考容器的坐标交给光标拖尾动画。
package pointer

import (
	"image"
	"log"

	"github.com/decker502/portfolio/pkg/game"
)

// Sample 视口坐标下的指针位置
type Sample struct {
	X, Y float64
}

// BoundsProvider 提供参考容器的包围盒
// 容器尚未挂载时 ok 返回 false
type BoundsProvider interface {
	Bounds() (rect image.Rectangle, ok bool)
}

// BoundsFunc 函数适配器
type BoundsFunc func() (image.Rectangle, bool)

// Bounds 实现 BoundsProvider
func (f BoundsFunc) Bounds() (image.Rectangle, bool) {
	return f()
}

// Sink 接收相对坐标（通常是 motion.Trail）
type Sink interface {
	SetTarget(x, y float64)
}

// Listener 事件订阅方（通常是 game.Lifecycle）
type Listener interface {
	Listen(kind game.EventKind, h game.Handler) game.Subscription
}

// Tracker 指针跟踪器
type Tracker struct {
	container BoundsProvider
	sink      Sink
	subs      []game.Subscription

	pending    Sample
	hasPending bool

	bounds      image.Rectangle
	boundsValid bool

	lastX, lastY float64
	emitted      bool

	emitCount int
}

// NewTracker 创建跟踪器并订阅 pointermove/touchmove/resize
func NewTracker(l Listener, container BoundsProvider, sink Sink) *Tracker {
	t := &Tracker{
		container: container,
		sink:      sink,
	}
	t.subs = append(t.subs,
		l.Listen(game.EventPointerMove, t.onMove),
		l.Listen(game.EventTouchMove, t.onMove),
		l.Listen(game.EventResize, t.onResize),
	)
	return t
}

func (t *Tracker) onMove(e game.Event) {
	t.Push(Sample{X: e.X, Y: e.Y})
}

func (t *Tracker) onResize(game.Event) {
	// 布局可能变化，下次使用时重新读取
	t.boundsValid = false
}

// Push 记录最新的原始采样；同一帧内的多次采样只保留最后一次
func (t *Tracker) Push(s Sample) {
	t.pending = s
	t.hasPending = true
}

// Frame 每帧调用一次，把待处理的采样换算为容器相对坐标并交给 Sink
func (t *Tracker) Frame() {
	if !t.hasPending {
		return
	}
	t.hasPending = false

	rect, ok := t.containerBounds()
	if !ok {
		return
	}

	x := t.pending.X - float64(rect.Min.X)
	y := t.pending.Y - float64(rect.Min.Y)
	if t.emitted && x == t.lastX && y == t.lastY {
		return
	}
	t.lastX, t.lastY = x, y
	t.emitted = true
	t.emitCount++
	t.sink.SetTarget(x, y)
}

func (t *Tracker) containerBounds() (image.Rectangle, bool) {
	if t.boundsValid {
		return t.bounds, true
	}
	if t.container == nil {
		return image.Rectangle{}, false
	}
	rect, ok := t.container.Bounds()
	if !ok {
		return image.Rectangle{}, false
	}
	t.bounds = rect
	t.boundsValid = true
	return rect, true
}

// EmitCount 已交给 Sink 的更新次数
func (t *Tracker) EmitCount() int {
	return t.emitCount
}

// Close 取消全部订阅
func (t *Tracker) Close() {
	for _, s := range t.subs {
		s.Cancel()
	}
	if len(t.subs) > 0 {
		log.Printf("[Pointer] Tracker closed, %d listeners removed", len(t.subs))
	}
	t.subs = nil
}
