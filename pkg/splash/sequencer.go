package splash

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/utils"
)

// State 遮罩状态
type State int

const (
	// Visible 遮罩显示中
	Visible State = iota
	// Hidden 遮罩已隐藏（不可逆）
	Hidden
)

func (s State) String() string {
	switch s {
	case Visible:
		return "Visible"
	case Hidden:
		return "Hidden"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Variant 隐藏条件
type Variant int

const (
	// VariantTimer 仅由固定计时器决定
	VariantTimer Variant = iota
	// VariantTimerAndReady 计时器与内容就绪同时满足
	VariantTimerAndReady
)

func (v Variant) String() string {
	switch v {
	case VariantTimer:
		return "timer"
	case VariantTimerAndReady:
		return "timer+ready"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant 解析配置中的变体名
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "timer+ready", "timer_and_ready", "enhanced":
		return VariantTimerAndReady, nil
	case "timer", "simple":
		return VariantTimer, nil
	default:
		return 0, fmt.Errorf("unknown splash variant %q", s)
	}
}

// Options 时序参数
type Options struct {
	Variant    Variant
	MinDisplay time.Duration // 最短显示时间
	Exit       time.Duration // 退出过渡时长（仅视觉）
}

// Sequencer 开场遮罩时序
//
// 挂载时在 Lifecycle 上启动一个单次计时器；闸门打开的那一刻立即切换到 Hidden，
// 退出过渡只影响绘制，不阻塞其它时序。时间推进由 Lifecycle.Tick 驱动。
type Sequencer struct {
	opts  Options
	gate  Gate
	state State
	timer game.TimerID
	life  *game.Lifecycle

	hiddenAt float64
	onHidden []func()
}

// NewSequencer 创建并挂载遮罩时序
func NewSequencer(life *game.Lifecycle, opts Options) *Sequencer {
	s := &Sequencer{
		opts:  opts,
		state: Visible,
		life:  life,
	}
	if opts.Variant == VariantTimer {
		s.gate.SetContentReady()
	}
	s.timer = life.After(opts.MinDisplay, s.onTimer)
	log.Printf("[Splash] Mounted: variant=%s min=%v exit=%v", opts.Variant, opts.MinDisplay, opts.Exit)
	return s
}

func (s *Sequencer) onTimer() {
	s.timer = 0
	s.gate.SetTimerElapsed()
	s.evaluate()
}

// MarkContentReady 内容就绪信号
func (s *Sequencer) MarkContentReady() {
	if s.gate.ContentReady() {
		return
	}
	s.gate.SetContentReady()
	log.Printf("[Splash] Content ready at %.3fs", s.Elapsed())
	s.evaluate()
}

// PreloadFailed 预加载失败：记录日志并视为就绪，不阻塞遮罩隐藏
func (s *Sequencer) PreloadFailed(err error) {
	log.Printf("[Splash] Preload failed, continuing without it: %v", err)
	s.MarkContentReady()
}

// OnHidden 注册隐藏回调（只会被调用一次）
func (s *Sequencer) OnHidden(fn func()) {
	if s.state == Hidden {
		fn()
		return
	}
	s.onHidden = append(s.onHidden, fn)
}

func (s *Sequencer) evaluate() {
	if s.state == Hidden || !s.gate.Open() {
		return
	}
	s.state = Hidden
	s.hiddenAt = s.Elapsed()
	log.Printf("[Splash] Hidden at %.3fs", s.hiddenAt)
	callbacks := s.onHidden
	s.onHidden = nil
	for _, fn := range callbacks {
		fn()
	}
}

// State 当前状态
func (s *Sequencer) State() State {
	return s.state
}

// Gate 返回闸门状态副本
func (s *Sequencer) Gate() Gate {
	return s.gate
}

// HiddenAt 切换到 Hidden 的时间（秒）；仍可见时返回 -1
func (s *Sequencer) HiddenAt() float64 {
	if s.state != Hidden {
		return -1
	}
	return s.hiddenAt
}

// Elapsed 挂载后经过的时间（秒），与 Lifecycle 时钟一致
func (s *Sequencer) Elapsed() float64 {
	return s.life.Clock()
}

// ExitProgress 退出过渡进度 [0,1]
func (s *Sequencer) ExitProgress() float64 {
	if s.state != Hidden {
		return 0
	}
	exit := s.opts.Exit.Seconds()
	if exit <= 0 {
		return 1
	}
	p := (s.Elapsed() - s.hiddenAt) / exit
	if p > 1 {
		return 1
	}
	return p
}

// OverlayPresent 遮罩是否仍需绘制（包括退出过渡期间）
func (s *Sequencer) OverlayPresent() bool {
	return s.state == Visible || s.ExitProgress() < 1
}

// OverlayAlpha 遮罩整体透明度
func (s *Sequencer) OverlayAlpha() float64 {
	return 1 - utils.EaseOutQuad(s.ExitProgress())
}

// MessageOffsetY 文字上滑退出的偏移（像素）
func (s *Sequencer) MessageOffsetY(distance float64) float64 {
	return -distance * utils.EaseOutCubic(s.ExitProgress())
}

// Close 取消尚未触发的计时器
func (s *Sequencer) Close() {
	if s.timer != 0 {
		s.life.ClearTimer(s.timer)
		s.timer = 0
	}
}
