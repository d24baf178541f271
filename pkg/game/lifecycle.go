package game

import (
	"log"
	"sort"
	"time"
)

// Lifecycle 场景挂载期间的资源登记
//
// 场景创建的每个事件订阅和计时器都经由 Lifecycle 登记，
// Unmount 时统一清理，保证卸载后没有残留的回调。
type Lifecycle struct {
	bus     *EventBus
	subs    []Subscription
	timers  map[int]*frameTimer
	nextID  int
	clock   float64 // 挂载后经过的时间（秒）
	mounted bool
}

type frameTimer struct {
	id  int
	due float64
	fn  func()
}

// TimerID 计时器句柄
type TimerID int

// NewLifecycle 创建并挂载
func NewLifecycle(bus *EventBus) *Lifecycle {
	return &Lifecycle{
		bus:     bus,
		timers:  make(map[int]*frameTimer),
		mounted: true,
	}
}

// Bus 返回事件分发器
func (l *Lifecycle) Bus() *EventBus {
	return l.bus
}

// Listen 订阅事件并登记
func (l *Lifecycle) Listen(kind EventKind, h Handler) Subscription {
	if !l.mounted {
		log.Printf("[Lifecycle] Listen(%s) after unmount ignored", kind)
		return Subscription{}
	}
	sub := l.bus.Subscribe(kind, h)
	l.subs = append(l.subs, sub)
	return sub
}

// After 登记单次计时器，delay 后在帧循环中调用 fn
func (l *Lifecycle) After(delay time.Duration, fn func()) TimerID {
	if !l.mounted {
		log.Printf("[Lifecycle] After(%v) after unmount ignored", delay)
		return 0
	}
	l.nextID++
	l.timers[l.nextID] = &frameTimer{
		id:  l.nextID,
		due: l.clock + delay.Seconds(),
		fn:  fn,
	}
	return TimerID(l.nextID)
}

// ClearTimer 取消计时器
func (l *Lifecycle) ClearTimer(id TimerID) {
	delete(l.timers, int(id))
}

// Tick 推进时钟并按到期顺序触发计时器
func (l *Lifecycle) Tick(deltaTime float64) {
	if !l.mounted {
		return
	}
	l.clock += deltaTime

	var due []*frameTimer
	for _, t := range l.timers {
		if t.due <= l.clock {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	for _, t := range due {
		// 前一个回调可能已经清理了它
		if _, ok := l.timers[t.id]; !ok {
			continue
		}
		delete(l.timers, t.id)
		t.fn()
	}
}

// Clock 挂载后经过的时间（秒）
func (l *Lifecycle) Clock() float64 {
	return l.clock
}

// Mounted 是否仍处于挂载状态
func (l *Lifecycle) Mounted() bool {
	return l.mounted
}

// Unmount 取消所有订阅和计时器
func (l *Lifecycle) Unmount() {
	if !l.mounted {
		return
	}
	for _, s := range l.subs {
		s.Cancel()
	}
	n, m := len(l.subs), len(l.timers)
	l.subs = nil
	l.timers = make(map[int]*frameTimer)
	l.mounted = false
	log.Printf("[Lifecycle] Unmounted: released %d listeners, %d timers", n, m)
}

// ListenerCount 仍然有效的已登记订阅数
func (l *Lifecycle) ListenerCount() int {
	n := 0
	for _, s := range l.subs {
		if s.Active() {
			n++
		}
	}
	return n
}

// PendingTimers 尚未触发的计时器数
func (l *Lifecycle) PendingTimers() int {
	return len(l.timers)
}
