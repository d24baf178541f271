package game

import "sort"

// EventKind 页面输入事件类型
type EventKind string

const (
	// EventPointerMove 鼠标移动
	EventPointerMove EventKind = "pointermove"
	// EventTouchMove 触摸移动
	EventTouchMove EventKind = "touchmove"
	// EventResize 窗口（逻辑屏幕）尺寸变化
	EventResize EventKind = "resize"
	// EventWheel 滚轮滚动
	EventWheel EventKind = "wheel"
)

// Event 输入事件
// 指针类事件使用 X/Y（视口坐标），resize 使用 Width/Height，wheel 使用 DeltaY
type Event struct {
	Kind          EventKind
	X, Y          float64
	Width, Height int
	DeltaY        float64
}

// Handler 事件回调
type Handler func(Event)

// EventBus 同步事件分发器
//
// 所有回调都在帧循环中同步执行，回调之间不会重叠。
type EventBus struct {
	handlers map[EventKind]map[int]Handler
	nextID   int
}

// NewEventBus 创建事件分发器
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventKind]map[int]Handler),
	}
}

// Subscription 订阅句柄，Cancel 可重复调用
type Subscription struct {
	bus  *EventBus
	kind EventKind
	id   int
}

// Subscribe 注册回调
func (b *EventBus) Subscribe(kind EventKind, h Handler) Subscription {
	b.nextID++
	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[int]Handler)
	}
	b.handlers[kind][b.nextID] = h
	return Subscription{bus: b, kind: kind, id: b.nextID}
}

// Cancel 取消订阅
func (s Subscription) Cancel() {
	if s.bus == nil {
		return
	}
	delete(s.bus.handlers[s.kind], s.id)
}

// Active 订阅是否仍然有效
func (s Subscription) Active() bool {
	if s.bus == nil {
		return false
	}
	_, ok := s.bus.handlers[s.kind][s.id]
	return ok
}

// Publish 按订阅顺序分发事件
func (b *EventBus) Publish(e Event) {
	hs := b.handlers[e.Kind]
	if len(hs) == 0 {
		return
	}
	ids := make([]int, 0, len(hs))
	for id := range hs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		// 回调中可能取消其它订阅
		if h, ok := hs[id]; ok {
			h(e)
		}
	}
}

// ListenerCount 当前有效订阅总数
func (b *EventBus) ListenerCount() int {
	n := 0
	for _, hs := range b.handlers {
		n += len(hs)
	}
	return n
}
