package scenes

import (
	"math"
	"strings"
	"time"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/reveal"
)

// FontRole 文本用途，对应一种字体和字号
type FontRole int

const (
	RoleBody FontRole = iota
	RoleSmall
	RoleCardHead
	RoleTitle
	RoleHero
	RoleNav
	RoleSplash
)

// Measurer 文本测量
// 绘制时由字体实现，测试中可以用等宽假实现
type Measurer interface {
	Wrap(s string, role FontRole, maxWidth float64) []string
	TextWidth(s string, role FontRole) float64
	LineHeight(role FontRole) float64
}

// TextBlock 已换行的一段文字，坐标相对所在元素左上角
type TextBlock struct {
	Role  FontRole
	Lines []string
	X, Y  float64
}

// ItemLayout 区块中一个子元素（卡片、列表项、图块、推荐语、联系方式）
type ItemLayout struct {
	Entry  config.Entry
	Bounds reveal.Rect
	Blocks []TextBlock
}

// SectionLayout 一个区块的排版结果（页面坐标）
type SectionLayout struct {
	ID     string
	Kind   config.SectionKind
	Title  string
	Bounds reveal.Rect
	// TitleY 标题基线所在行的顶部
	TitleY  float64
	Items   []ItemLayout
	Stagger time.Duration
	Hover   config.HoverStyle
}

// Children 参与错峰入场的子元素数量
// 推荐语轮播作为一个整体入场
func (s SectionLayout) Children() int {
	if s.Kind == config.KindQuotes {
		return 1
	}
	if len(s.Items) == 0 {
		return 1
	}
	return len(s.Items)
}

// NavItem 导航栏条目（屏幕坐标，导航栏固定在顶部）
type NavItem struct {
	Label   string
	TargetY float64
	Bounds  reveal.Rect
}

// HeroLayout 首屏
type HeroLayout struct {
	Bounds reveal.Rect
	// Lines 依次为姓名、简介、角色、链接行，各自按 hero.delaysMs 入场
	Lines []TextBlock
	// Scene 3D 场景区域
	Scene reveal.Rect
	// CTA 行动按钮，Label 为空表示没有
	CTA HeroButton
}

// HeroButton 首屏页内跳转按钮（页面坐标）
type HeroButton struct {
	Label   string
	Target  string
	TargetY float64
	Bounds  reveal.Rect
	// TextX, TextY 文字左上角
	TextX, TextY float64
}

// PageLayout 整页排版
type PageLayout struct {
	Width, Height float64
	ContentX      float64
	ContentWidth  float64
	Hero          HeroLayout
	Sections      []SectionLayout
	Nav           []NavItem
	// NavCollapsed 窄屏导航：条目收进 MenuButton，展开后纵向排在导航栏下方
	NavCollapsed bool
	MenuButton   reveal.Rect
	Brand        string
	Footer       reveal.Rect
	FooterText   string
}

// Section 按 ID 查找区块排版
func (p *PageLayout) Section(id string) (SectionLayout, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionLayout{}, false
}

// Composer 把静态内容排成带入场动画的页面
//
// 内容条目只按字段渲染，不做任何转换。
type Composer struct {
	content        *config.ContentConfig
	measure        Measurer
	defaultStagger time.Duration
}

// NewComposer 创建排版器
func NewComposer(content *config.ContentConfig, m Measurer, defaultStagger time.Duration) *Composer {
	return &Composer{content: content, measure: m, defaultStagger: defaultStagger}
}

const (
	footerHeight = 96.0
	navItemGap   = 28.0
	heroSceneMin = 280.0
)

// Compose 按视口宽高排版
func (c *Composer) Compose(viewW, viewH float64) *PageLayout {
	contentW := math.Min(viewW-2*config.PagePaddingX, config.ContentMaxWidth)
	if contentW < 0 {
		contentW = 0
	}
	page := &PageLayout{
		Width:        viewW,
		ContentX:     (viewW - contentW) / 2,
		ContentWidth: contentW,
		Brand:        strings.TrimSpace(c.content.Owner.FirstName + " " + c.content.Owner.LastName),
	}

	page.Hero = c.composeHero(page, math.Max(viewH, config.HeroMinHeight))
	y := page.Hero.Bounds.Bottom()

	for _, entry := range c.content.Sections {
		sec := c.composeSection(page, entry, y)
		page.Sections = append(page.Sections, sec)
		y = sec.Bounds.Bottom()
	}

	page.Footer = reveal.Rect{X: 0, Y: y, W: viewW, H: footerHeight}
	page.FooterText = footerText(c.content.Footer)
	page.Height = page.Footer.Bottom()

	if cta := &page.Hero.CTA; cta.Target != "" {
		if sec, ok := page.Section(cta.Target); ok {
			cta.TargetY = sec.Bounds.Y
		}
	}
	c.composeNav(page)
	return page
}

func (c *Composer) composeHero(page *PageLayout, height float64) HeroLayout {
	hero := HeroLayout{Bounds: reveal.Rect{X: 0, Y: 0, W: page.Width, H: height}}

	wide := page.Width >= config.WideBreakpoint
	textW := page.ContentWidth
	if wide {
		// 宽屏左文右图
		textW = page.ContentWidth * 0.55
		sceneW := page.ContentWidth - textW
		hero.Scene = reveal.Rect{
			X: page.ContentX + textW,
			Y: config.NavHeight + (height-config.NavHeight-sceneW)/2,
			W: sceneW,
			H: sceneW,
		}
	}

	h := c.content.Hero
	var links []string
	for _, l := range h.Links {
		links = append(links, l.Label)
	}
	if h.Resume.Label != "" {
		links = append(links, h.Resume.Label)
	}

	blocks := []TextBlock{
		{Role: RoleHero, Lines: c.measure.Wrap(page.Brand, RoleHero, textW)},
		{Role: RoleCardHead, Lines: c.measure.Wrap(h.Tagline, RoleCardHead, textW)},
		{Role: RoleBody, Lines: c.measure.Wrap(h.Roles, RoleBody, textW)},
		{Role: RoleNav, Lines: []string{strings.Join(links, "   ")}},
	}

	cta := h.CTA
	ctaH := 0.0
	if cta.Label != "" {
		ctaH = c.measure.LineHeight(RoleNav) + 2*config.HeroButtonPadY
	}

	total := 0.0
	for i := range blocks {
		total += c.blockHeight(blocks[i])
		if i > 0 {
			total += config.CardGap
		}
	}
	if ctaH > 0 {
		total += config.CardGap + ctaH
	}
	y := config.NavHeight + (height-config.NavHeight-total)/2
	for i := range blocks {
		blocks[i].X = page.ContentX
		blocks[i].Y = y
		y += c.blockHeight(blocks[i]) + config.CardGap
	}
	hero.Lines = blocks

	if ctaH > 0 {
		w := c.measure.TextWidth(cta.Label, RoleNav) + 2*config.HeroButtonPadX
		hero.CTA = HeroButton{
			Label:  cta.Label,
			Target: cta.Target,
			Bounds: reveal.Rect{X: page.ContentX, Y: y, W: w, H: ctaH},
			TextX:  page.ContentX + config.HeroButtonPadX,
			TextY:  y + config.HeroButtonPadY,
		}
		y += ctaH + config.CardGap
	}

	if !wide {
		// 窄屏把 3D 场景放到文字下方
		size := math.Min(page.ContentWidth, heroSceneMin)
		hero.Scene = reveal.Rect{X: page.ContentX + (page.ContentWidth-size)/2, Y: y, W: size, H: size}
		if bottom := hero.Scene.Bottom() + config.SectionPaddingY/2; bottom > hero.Bounds.H {
			hero.Bounds.H = bottom
		}
	}
	return hero
}

func (c *Composer) blockHeight(b TextBlock) float64 {
	return float64(len(b.Lines)) * c.measure.LineHeight(b.Role)
}

func (c *Composer) composeSection(page *PageLayout, entry config.SectionEntry, top float64) SectionLayout {
	sec := SectionLayout{
		ID:      entry.ID,
		Kind:    entry.Kind,
		Title:   entry.Title,
		Stagger: entry.Stagger(c.defaultStagger),
		Hover:   entry.Hover,
	}

	y := top + config.SectionPaddingY
	if entry.Title != "" {
		sec.TitleY = y
		y += c.measure.LineHeight(RoleTitle) + config.SectionTitleGap
	}

	x, w := page.ContentX, page.ContentWidth
	wide := page.Width >= config.WideBreakpoint

	switch entry.Kind {
	case config.KindCards:
		cols := config.CardColumnsNarrow
		if wide {
			cols = config.CardColumnsWide
		}
		y = c.composeGrid(&sec, entry.Entries, x, y, w, cols, 0)
	case config.KindTiles:
		cols := config.TileColumnsNarrow
		if wide {
			cols = config.TileColumnsWide
		}
		y = c.composeGrid(&sec, entry.Entries, x, y, w, cols, config.TileSize)
	case config.KindQuotes:
		y = c.composeQuotes(&sec, entry.Entries, x, y, w)
	default:
		// text、list、contact 都是单列
		y = c.composeGrid(&sec, entry.Entries, x, y, w, 1, 0)
	}

	sec.Bounds = reveal.Rect{X: 0, Y: top, W: page.Width, H: y + config.SectionPaddingY - top}
	return sec
}

// composeGrid 按列排布子元素，返回网格底部 y
// fixedHeight > 0 时每个格子等高（技能图块）
func (c *Composer) composeGrid(sec *SectionLayout, entries []config.Entry, x, y, w float64, cols int, fixedHeight float64) float64 {
	if len(entries) == 0 {
		return y
	}
	cellW := (w - float64(cols-1)*config.CardGap) / float64(cols)

	rowTop := y
	rowH := 0.0
	for i, e := range entries {
		col := i % cols
		if col == 0 && i > 0 {
			rowTop += rowH + config.CardGap
			rowH = 0
		}

		var item ItemLayout
		if fixedHeight > 0 {
			item = c.tile(e, cellW, fixedHeight)
		} else {
			item = c.card(e, sec.Kind, cellW)
		}
		item.Bounds.X = x + float64(col)*(cellW+config.CardGap)
		item.Bounds.Y = rowTop
		rowH = math.Max(rowH, item.Bounds.H)
		sec.Items = append(sec.Items, item)
	}
	return rowTop + rowH
}

// card 卡片/列表项：标题、副标题、正文、附注、标签依次向下
func (c *Composer) card(e config.Entry, kind config.SectionKind, w float64) ItemLayout {
	inner := w - 2*config.CardPadding
	if kind == config.KindText {
		inner = w
	}

	var blocks []TextBlock
	add := func(role FontRole, s string) {
		if s == "" {
			return
		}
		blocks = append(blocks, TextBlock{Role: role, Lines: c.measure.Wrap(s, role, inner)})
	}

	add(RoleCardHead, e.Title)
	add(RoleSmall, e.Subtitle)
	add(RoleBody, e.Detail)
	add(RoleSmall, e.Meta)
	if len(e.Tags) > 0 {
		add(RoleSmall, strings.Join(e.Tags, " · "))
	}
	if kind == config.KindContact && e.Subtitle == "" && e.Link != "" {
		add(RoleSmall, e.Link)
	}

	pad := config.CardPadding
	if kind == config.KindText {
		pad = 0
	}
	y := pad
	for i := range blocks {
		blocks[i].X = pad
		blocks[i].Y = y
		y += c.blockHeight(blocks[i]) + 6
	}
	h := y + pad
	if len(blocks) > 0 {
		h -= 6
	}
	return ItemLayout{Entry: e, Bounds: reveal.Rect{W: w, H: h}, Blocks: blocks}
}

// tile 技能图块：文字居中
func (c *Composer) tile(e config.Entry, w, h float64) ItemLayout {
	lines := c.measure.Wrap(e.Title, RoleBody, w-config.CardPadding)
	lh := c.measure.LineHeight(RoleBody)
	blockH := float64(len(lines)) * lh
	return ItemLayout{
		Entry:  e,
		Bounds: reveal.Rect{W: w, H: h},
		Blocks: []TextBlock{{Role: RoleBody, Lines: lines, X: 0, Y: (h - blockH) / 2}},
	}
}

// composeQuotes 推荐语轮播：同一时刻只显示一条，所有条目共用最大高度
func (c *Composer) composeQuotes(sec *SectionLayout, entries []config.Entry, x, y, w float64) float64 {
	qw := math.Min(w, config.QuoteMaxWidth)
	qx := x + (w-qw)/2

	maxH := 0.0
	start := len(sec.Items)
	for _, e := range entries {
		quote := e
		quote.Detail = "“" + e.Detail + "”"
		item := c.card(quote, config.KindQuotes, qw)
		item.Entry = e
		maxH = math.Max(maxH, item.Bounds.H)
		sec.Items = append(sec.Items, item)
	}
	for i := start; i < len(sec.Items); i++ {
		sec.Items[i].Bounds = reveal.Rect{X: qx, Y: y, W: qw, H: maxH}
	}
	if len(entries) == 0 {
		return y
	}
	// 轮播指示点
	return y + maxH + config.CardGap
}

// composeNav 导航栏：品牌名在左，条目右对齐
// 窄屏或一行放不下时收起到右侧菜单按钮
func (c *Composer) composeNav(page *PageLayout) {
	items := []NavItem{{Label: "Home", TargetY: 0}}
	for _, s := range c.content.NavSections() {
		target := 0.0
		if sec, ok := page.Section(s.ID); ok {
			target = sec.Bounds.Y
		}
		items = append(items, NavItem{Label: s.NavLabel, TargetY: target})
	}
	page.Nav = items

	rowW := c.measure.TextWidth(page.Brand, RoleNav)
	for _, item := range items {
		rowW += navItemGap + c.measure.TextWidth(item.Label, RoleNav)
	}
	page.NavCollapsed = page.Width < config.NavCollapseBreakpoint || rowW > page.ContentWidth

	if page.NavCollapsed {
		size := config.NavMenuButtonSize
		page.MenuButton = reveal.Rect{
			X: page.ContentX + page.ContentWidth - size,
			Y: (config.NavHeight - size) / 2,
			W: size,
			H: size,
		}
		for i := range items {
			items[i].Bounds = reveal.Rect{
				X: page.ContentX,
				Y: config.NavHeight + float64(i)*config.NavMenuItemHeight,
				W: page.ContentWidth,
				H: config.NavMenuItemHeight,
			}
		}
		return
	}

	lh := c.measure.LineHeight(RoleNav)
	y := (config.NavHeight - lh) / 2
	right := page.ContentX + page.ContentWidth
	for i := len(items) - 1; i >= 0; i-- {
		w := c.measure.TextWidth(items[i].Label, RoleNav)
		right -= w
		items[i].Bounds = reveal.Rect{X: right, Y: y, W: w, H: lh}
		right -= navItemGap
	}
}

// MenuBottom 展开菜单的下边界（屏幕坐标）
func (p *PageLayout) MenuBottom() float64 {
	return config.NavHeight + float64(len(p.Nav))*config.NavMenuItemHeight
}

// HitMenuButton 点是否落在菜单按钮上（仅收起模式）
func (p *PageLayout) HitMenuButton(x, y float64) bool {
	return p.NavCollapsed && p.MenuButton.Contains(x, y)
}

// HitNav 返回被点击的导航条目
// 收起模式下命中的是展开菜单的行，调用方负责判断菜单是否展开
func (p *PageLayout) HitNav(x, y float64) (NavItem, bool) {
	if i := p.navIndex(x, y); i >= 0 {
		return p.Nav[i], true
	}
	return NavItem{}, false
}

func (p *PageLayout) navIndex(x, y float64) int {
	for i, item := range p.Nav {
		b := item.Bounds
		if p.NavCollapsed {
			if b.Contains(x, y) {
				return i
			}
			continue
		}
		// 点击区域上下扩展到整个导航栏
		if x >= b.X && x <= b.X+b.W && y >= 0 && y <= config.NavHeight {
			return i
		}
	}
	return -1
}

// HitCTA 页面坐标下的点是否落在首屏按钮上
func (p *PageLayout) HitCTA(px, py float64) bool {
	return p.Hero.CTA.Label != "" && p.Hero.CTA.Bounds.Contains(px, py)
}

// HitItem 页面坐标下命中的可悬停子元素
// 推荐语和没有悬停效果的区块不参与
func (p *PageLayout) HitItem(px, py float64) (HoverKey, bool) {
	for _, sec := range p.Sections {
		if !sec.Hover.Active() || sec.Kind == config.KindQuotes {
			continue
		}
		if py < sec.Bounds.Y || py > sec.Bounds.Bottom() {
			continue
		}
		for i, item := range sec.Items {
			if item.Bounds.Contains(px, py) {
				return HoverKey{Group: sec.ID, Index: i}, true
			}
		}
	}
	return HoverKey{}, false
}

func footerText(links []config.Link) string {
	labels := make([]string, 0, len(links))
	for _, l := range links {
		labels = append(labels, l.Label)
	}
	return strings.Join(labels, "  ·  ")
}
