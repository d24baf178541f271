package scenes

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/motion"
	"github.com/decker502/portfolio/pkg/pointer"
	"github.com/decker502/portfolio/pkg/reveal"
	"github.com/decker502/portfolio/pkg/splash"
	"github.com/decker502/portfolio/pkg/utils"
)

// heroMeshSubdivisions 首屏线框球的细分次数
const heroMeshSubdivisions = 2

// Options 页面场景参数
type Options struct {
	Motion        *config.MotionConfig
	Content       *config.ContentConfig
	SplashVariant splash.Variant
	// DisableReveal 模拟不支持视口相交的环境：内容直接显示
	DisableReveal bool
	// DisableCursor 不创建团块光标
	DisableCursor bool
}

// PortfolioScene 单页作品集
//
// 场景持有一个 Lifecycle，所有事件订阅和计时器都登记在上面，
// Unmount 之后监听器和计时器数量都为 0。
// 每帧顺序：输入 → 计时器 → 预加载结果 → 指针/拖尾 → 滚动 → 悬停 → 入场调度。
type PortfolioScene struct {
	opts Options
	rm   *game.ResourceManager

	bus  *game.EventBus
	life *game.Lifecycle
	poll func() utils.FrameInput

	tracker  *pointer.Tracker
	trail    *motion.Trail
	splash   *splash.Sequencer
	reveal   *reveal.Scheduler
	scroll   *Scroller
	carousel *Carousel
	hover    *Hover

	fonts    *fontSet
	composer *Composer
	page     *PageLayout
	quotesID string

	viewW, viewH int
	layer        *ebiten.Image

	// 最近一帧的指针（屏幕坐标）
	pointerX, pointerY float64
	hasPointer         bool
	pressed            bool
	// menuOpen 收起模式下的导航菜单是否展开
	menuOpen bool

	mesh          *HeroMesh
	meshCh        chan *HeroMesh
	preload       <-chan error
	cancelPreload context.CancelFunc

	// contentAt 遮罩隐藏时的 Lifecycle 时钟，之前为 -1
	contentAt float64
	unmounted bool
}

// NewPortfolioScene 创建并挂载页面场景
func NewPortfolioScene(rm *game.ResourceManager, opts Options) *PortfolioScene {
	if opts.Motion == nil {
		opts.Motion = config.DefaultMotionConfig()
	}
	if opts.Content == nil {
		opts.Content = &config.ContentConfig{}
	}
	mc := opts.Motion

	s := &PortfolioScene{
		opts:      opts,
		rm:        rm,
		bus:       game.NewEventBus(),
		contentAt: -1,
		meshCh:    make(chan *HeroMesh, 1),
	}
	s.life = game.NewLifecycle(s.bus)
	s.poll = utils.NewInputPoller().Poll

	if mc.Cursor.Enabled && !opts.DisableCursor {
		s.trail = motion.NewTrail(mc.Cursor.Fast, mc.Cursor.Slow)
		s.tracker = pointer.NewTracker(s.life, pointer.BoundsFunc(s.containerBounds), s.trail)
	}

	s.life.Listen(game.EventResize, s.onResize)
	s.life.Listen(game.EventWheel, s.onWheel)

	s.splash = splash.NewSequencer(s.life, splash.Options{
		Variant:    opts.SplashVariant,
		MinDisplay: mc.Splash.MinDisplay(),
		Exit:       mc.Splash.Exit(),
	})
	s.splash.OnHidden(func() {
		s.contentAt = s.life.Clock()
	})

	s.reveal = reveal.NewScheduler(reveal.Options{
		IntersectionSupported: !opts.DisableReveal,
		RootMargin:            mc.Reveal.RootMargin,
		Duration:              time.Duration(mc.Reveal.DurationMs) * time.Millisecond,
		SlideDistance:         mc.Reveal.SlideDistance,
		StartScale:            mc.Reveal.StartScale,
	})
	s.scroll = NewScroller(float64(mc.Scroll.NavDurationMs) / 1000)
	s.hover = NewHover(mc.Hover.Duration())

	quotes := 0
	for _, sec := range opts.Content.Sections {
		if sec.Kind == config.KindQuotes {
			s.quotesID = sec.ID
			quotes = len(sec.Entries)
			break
		}
	}
	s.carousel = NewCarousel(s.life, quotes, time.Duration(mc.Testimonials.AutoplayMs)*time.Millisecond)

	s.fonts = newFontSet(rm)
	s.composer = NewComposer(opts.Content, s.fonts, time.Duration(mc.Reveal.DefaultStaggerMs)*time.Millisecond)

	s.startPreload()
	return s
}

// startPreload 在后台生成首屏网格，完成后作为内容就绪信号
func (s *PortfolioScene) startPreload() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelPreload = cancel
	meshCh := s.meshCh
	s.preload = s.rm.PreloadAsync(ctx, game.PreloadJob{
		Name: "hero-mesh",
		Run: func(ctx context.Context) error {
			mesh, err := BuildIcosphere(ctx, heroMeshSubdivisions)
			if err != nil {
				return err
			}
			meshCh <- mesh
			return nil
		},
	})
}

// drainPreload 非阻塞地读取预加载结果
func (s *PortfolioScene) drainPreload() {
	if s.preload == nil {
		return
	}
	select {
	case err := <-s.preload:
		s.preload = nil
		s.handlePreload(err)
	default:
	}
}

func (s *PortfolioScene) handlePreload(err error) {
	if err != nil {
		// 失败不阻塞遮罩隐藏，首屏保留占位文字
		s.splash.PreloadFailed(err)
		return
	}
	select {
	case m := <-s.meshCh:
		s.mesh = m
	default:
	}
	s.splash.MarkContentReady()
}

// containerBounds 页面容器（整个视口）；首次 Layout 之前视为未挂载
func (s *PortfolioScene) containerBounds() (image.Rectangle, bool) {
	if s.viewW <= 0 || s.viewH <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(0, 0, s.viewW, s.viewH), true
}

// SetViewport 由 App.Layout 调用；尺寸变化时派发 resize 事件
func (s *PortfolioScene) SetViewport(width, height int) {
	if s.unmounted || (width == s.viewW && height == s.viewH) {
		return
	}
	s.bus.Publish(game.Event{Kind: game.EventResize, Width: width, Height: height})
}

func (s *PortfolioScene) onResize(e game.Event) {
	s.viewW, s.viewH = e.Width, e.Height
	s.relayout()
}

func (s *PortfolioScene) relayout() {
	s.page = s.composer.Compose(float64(s.viewW), float64(s.viewH))
	s.scroll.SetLimit(s.page.Height, float64(s.viewH))
	s.hover.Reset()
	if !s.page.NavCollapsed {
		s.menuOpen = false
	}
	for _, sec := range s.page.Sections {
		s.reveal.Register(sec.ID, sec.Bounds, sec.Children(), sec.Stagger)
	}
	if s.layer != nil {
		s.layer.Deallocate()
		s.layer = nil
	}
	log.Printf("[Portfolio] Layout %dx%d, page height %.0f", s.viewW, s.viewH, s.page.Height)
}

func (s *PortfolioScene) onWheel(e game.Event) {
	if !s.interactive() {
		return
	}
	s.scroll.By(-e.DeltaY * s.opts.Motion.Scroll.WheelStep)
}

// interactive 遮罩隐藏后页面才响应滚动和点击
func (s *PortfolioScene) interactive() bool {
	return s.splash.State() == splash.Hidden && s.page != nil
}

// Update 推进一帧
func (s *PortfolioScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}

	s.dispatch(s.poll())
	s.life.Tick(deltaTime)
	s.drainPreload()

	if s.tracker != nil {
		s.tracker.Frame()
		s.trail.Step(deltaTime)
	}

	s.scroll.Update(deltaTime)
	s.updateHover(deltaTime)
	s.reveal.Advance(deltaTime)
	if s.interactive() {
		s.reveal.Observe(s.viewport())
	}
}

// dispatch 把轮询得到的输入转成页面事件
func (s *PortfolioScene) dispatch(in utils.FrameInput) {
	s.pressed = in.Pressed
	if in.Moved {
		s.pointerX, s.pointerY = float64(in.PointerX), float64(in.PointerY)
		s.hasPointer = true
		kind := game.EventPointerMove
		if in.Touch {
			kind = game.EventTouchMove
		}
		s.bus.Publish(game.Event{Kind: kind, X: float64(in.PointerX), Y: float64(in.PointerY)})
	}
	if in.WheelY != 0 {
		s.bus.Publish(game.Event{Kind: game.EventWheel, DeltaY: in.WheelY})
	}
	if in.DragDY != 0 && s.interactive() {
		s.scroll.By(-float64(in.DragDY))
	}
	if in.Clicked {
		s.handleClick(float64(in.ClickX), float64(in.ClickY))
	}
}

func (s *PortfolioScene) handleClick(x, y float64) {
	if !s.interactive() {
		return
	}
	if s.page.HitMenuButton(x, y) {
		s.menuOpen = !s.menuOpen
		return
	}
	if s.navVisible() {
		if item, ok := s.page.HitNav(x, y); ok {
			log.Printf("[Portfolio] Nav %q -> %.0f", item.Label, item.TargetY)
			s.scroll.ScrollTo(item.TargetY)
			s.menuOpen = false
			return
		}
	}
	if s.menuOpen {
		// 点击菜单以外的位置收起菜单
		s.menuOpen = false
		return
	}
	if y <= config.NavHeight {
		return
	}

	px, py := utils.ScreenToPage(x, y, s.scroll.Offset(), false)
	if s.page.HitCTA(px, py) {
		cta := s.page.Hero.CTA
		log.Printf("[Portfolio] CTA %q -> %.0f", cta.Label, cta.TargetY)
		s.scroll.ScrollTo(cta.TargetY)
		return
	}

	// 点击推荐语切换下一条
	if sec, ok := s.page.Section(s.quotesID); ok && len(sec.Items) > 0 {
		if sec.Items[0].Bounds.Contains(px, py) {
			s.carousel.Next()
		}
	}
}

// navVisible 导航条目是否显示（宽屏常驻，窄屏需展开菜单）
func (s *PortfolioScene) navVisible() bool {
	return !s.page.NavCollapsed || s.menuOpen
}

// updateHover 按指针位置确定悬停元素并推进悬停进度
func (s *PortfolioScene) updateHover(deltaTime float64) {
	if key, ok := s.hoverTarget(); ok {
		s.hover.Set(key)
	} else {
		s.hover.Clear()
	}
	s.hover.Step(deltaTime)
}

func (s *PortfolioScene) hoverTarget() (HoverKey, bool) {
	if !s.interactive() || !s.hasPointer {
		return HoverKey{}, false
	}
	x, y := s.pointerX, s.pointerY
	if s.page.HitMenuButton(x, y) {
		return HoverKey{Group: hoverGroupMenu}, true
	}
	if s.navVisible() {
		if i := s.page.navIndex(x, y); i >= 0 {
			return HoverKey{Group: hoverGroupNav, Index: i}, true
		}
	}
	// 导航栏和展开的菜单遮住下面的内容
	if y <= config.NavHeight || (s.menuOpen && y <= s.page.MenuBottom()) {
		return HoverKey{}, false
	}

	px, py := utils.ScreenToPage(x, y, s.scroll.Offset(), false)
	if s.page.HitCTA(px, py) {
		return HoverKey{Group: hoverGroupCTA}, true
	}
	return s.page.HitItem(px, py)
}

// NavItemScale 导航条目 i 的缩放：悬停放大，按下缩小
func (s *PortfolioScene) NavItemScale(i int) float64 {
	key := HoverKey{Group: hoverGroupNav, Index: i}
	if target, ok := s.hover.Target(); ok && target == key && s.pressed {
		return s.opts.Motion.Hover.NavPressScale
	}
	return utils.Lerp(1, s.opts.Motion.Hover.NavScale, s.hover.Progress(key))
}

// ItemHover 区块第 i 个子元素的悬停进度
func (s *PortfolioScene) ItemHover(sectionID string, i int) float64 {
	return s.hover.Progress(HoverKey{Group: sectionID, Index: i})
}

// CTAHover 首屏按钮的悬停进度
func (s *PortfolioScene) CTAHover() float64 {
	return s.hover.Progress(HoverKey{Group: hoverGroupCTA})
}

// MenuOpen 收起模式下导航菜单是否展开
func (s *PortfolioScene) MenuOpen() bool {
	return s.menuOpen
}

// viewport 当前视口（页面坐标）
func (s *PortfolioScene) viewport() reveal.Rect {
	return reveal.Rect{X: 0, Y: s.scroll.Offset(), W: float64(s.viewW), H: float64(s.viewH)}
}

// ContentAlpha 主内容淡入进度
func (s *PortfolioScene) ContentAlpha() float64 {
	if s.contentAt < 0 {
		return 0
	}
	fade := float64(s.opts.Motion.Content.FadeInMs) / 1000
	return utils.Progress(s.life.Clock(), s.contentAt, fade)
}

// heroDelay 首屏第 i 行的入场延迟（秒）
// 超出配置的行按最后两项的间隔继续递增
func (s *PortfolioScene) heroDelay(i int) float64 {
	d := s.opts.Motion.Hero.DelaysMs
	switch {
	case len(d) == 0:
		return 0
	case i < len(d):
		return float64(d[i]) / 1000
	}
	step := 200
	if len(d) >= 2 {
		step = d[len(d)-1] - d[len(d)-2]
	}
	return float64(d[len(d)-1]+step*(i-len(d)+1)) / 1000
}

// HeroProgress 首屏第 i 行的入场进度（已缓动）
func (s *PortfolioScene) HeroProgress(i int) float64 {
	if s.contentAt < 0 {
		return 0
	}
	dur := float64(s.opts.Motion.Hero.DurationMs) / 1000
	return utils.EaseOutCubic(utils.Progress(s.life.Clock()-s.contentAt, s.heroDelay(i), dur))
}

// Unmount 释放全部监听器和计时器，取消未完成的预加载
func (s *PortfolioScene) Unmount() {
	if s.unmounted {
		return
	}
	s.unmounted = true
	if s.cancelPreload != nil {
		s.cancelPreload()
	}
	if s.tracker != nil {
		s.tracker.Close()
	}
	s.splash.Close()
	s.life.Unmount()
	if s.layer != nil {
		s.layer.Deallocate()
		s.layer = nil
	}
	log.Printf("[Portfolio] Unmounted")
}

// ListenerCount 仍然有效的事件监听器数量
func (s *PortfolioScene) ListenerCount() int {
	return s.bus.ListenerCount()
}

// PendingTimers 尚未触发的计时器数量
func (s *PortfolioScene) PendingTimers() int {
	return s.life.PendingTimers()
}

// Splash 开场遮罩
func (s *PortfolioScene) Splash() *splash.Sequencer { return s.splash }

// Reveal 入场调度器
func (s *PortfolioScene) Reveal() *reveal.Scheduler { return s.reveal }

// Trail 光标拖尾，禁用光标时为 nil
func (s *PortfolioScene) Trail() *motion.Trail { return s.trail }

// Page 当前排版，首次 Layout 之前为 nil
func (s *PortfolioScene) Page() *PageLayout { return s.page }

// Scroll 滚动状态
func (s *PortfolioScene) Scroll() *Scroller { return s.scroll }
