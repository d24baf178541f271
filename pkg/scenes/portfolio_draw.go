package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/motion"
	"github.com/decker502/portfolio/pkg/reveal"
	"github.com/decker502/portfolio/pkg/utils"
)

// 配色
var (
	colorBackground = color.RGBA{12, 10, 9, 255}
	colorSurface    = color.RGBA{28, 25, 23, 255}
	colorBorder     = color.RGBA{68, 64, 60, 255}
	colorText       = color.RGBA{245, 245, 244, 255}
	colorMuted      = color.RGBA{168, 162, 158, 255}
	colorAccent     = color.RGBA{239, 126, 12, 255}
	colorAccentDark = color.RGBA{194, 91, 0, 255}
	colorNavBar     = color.RGBA{12, 10, 9, 220}
)

const (
	splashSlideDistance = 40.0
	quoteFadeSeconds    = 0.5
	meshYawSpeed        = 0.4
	meshPitch           = 0.35
)

// Draw renders the page, then the splash overlay, then the cursor on top.
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if s.unmounted || s.page == nil {
		return
	}

	if alpha := s.ContentAlpha(); alpha > 0 {
		layer := s.contentLayer()
		layer.Clear()
		s.drawHero(layer)
		s.drawSections(layer)
		s.drawFooter(layer)
		s.drawNav(layer)

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(layer, op)
	}

	if s.splash.OverlayPresent() {
		s.drawSplash(screen)
	}
	s.drawCursor(screen)
}

// contentLayer 主内容离屏图层，整体淡入
func (s *PortfolioScene) contentLayer() *ebiten.Image {
	if s.layer == nil {
		s.layer = ebiten.NewImage(s.viewW, s.viewH)
	}
	return s.layer
}

// drawText 在 (x, y) 绘制单行文字，scale 以 (x, y) 为原点
func (s *PortfolioScene) drawText(dst *ebiten.Image, str string, role FontRole, x, y, scale float64, clr color.Color, alpha float64) {
	if str == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, str, s.fonts.face(role), op)
}

// drawBlock 逐行绘制已换行的文字块，scale 以 (ox, oy) 为原点
func (s *PortfolioScene) drawBlock(dst *ebiten.Image, b TextBlock, ox, oy, scale float64, clr color.Color, alpha float64) {
	lh := s.fonts.LineHeight(b.Role) * scale
	for i, line := range b.Lines {
		s.drawText(dst, line, b.Role, ox+b.X*scale, oy+b.Y*scale+float64(i)*lh, scale, clr, alpha)
	}
}

func blockColor(role FontRole) color.Color {
	if role == RoleSmall {
		return colorMuted
	}
	return colorText
}

func (s *PortfolioScene) drawHero(dst *ebiten.Image) {
	hero := s.page.Hero
	scrollY := s.scroll.Offset()
	if !utils.SpanOnScreen(hero.Bounds.Y, hero.Bounds.Bottom(), scrollY, float64(s.viewH)) {
		return
	}

	slide := s.opts.Motion.Hero.SlideDistance
	for i, b := range hero.Lines {
		p := s.HeroProgress(i)
		clr := blockColor(b.Role)
		if i == len(hero.Lines)-1 {
			clr = colorAccent
		}
		s.drawBlock(dst, b, -slide*(1-p), -scrollY, 1, clr, p)
	}
	s.drawCTA(dst, hero.CTA, s.HeroProgress(len(hero.Lines)), slide, scrollY)

	scene := hero.Scene
	cx := scene.X + scene.W/2
	cy := scene.Y + scene.H/2 - scrollY
	if s.mesh == nil {
		label := s.opts.Content.Hero.SceneLabel
		w := s.fonts.TextWidth(label, RoleBody)
		s.drawText(dst, label, RoleBody, cx-w/2, cy, 1, colorMuted, 1)
		return
	}

	yaw := s.life.Clock() * meshYawSpeed
	for _, seg := range s.mesh.Project(yaw, meshPitch, cx, cy, scene.W*0.42) {
		// 近处的边更亮
		c := scaleAlpha(colorAccent, 0.2+0.6*(seg.Depth+1)/2)
		vector.StrokeLine(dst, float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1), 1, c, true)
	}
}

// drawCTA 首屏按钮，随最后一行之后的延迟入场，悬停时加深
func (s *PortfolioScene) drawCTA(dst *ebiten.Image, cta HeroButton, p, slide, scrollY float64) {
	if cta.Label == "" || p <= 0 {
		return
	}
	dx := -slide * (1 - p)
	b := cta.Bounds
	fillRect(dst, b.X+dx, b.Y-scrollY, b.W, b.H, colorAccent, p)
	if h := s.CTAHover(); h > 0 {
		fillRect(dst, b.X+dx, b.Y-scrollY, b.W, b.H, colorAccentDark, p*h)
	}
	s.drawText(dst, cta.Label, RoleNav, cta.TextX+dx, cta.TextY-scrollY, 1, colorText, p)
}

func (s *PortfolioScene) drawSections(dst *ebiten.Image) {
	view := s.viewport()
	for _, sec := range s.page.Sections {
		if !sec.Bounds.Intersects(view) {
			continue
		}
		s.drawSection(dst, sec, view.Y)
	}
}

func (s *PortfolioScene) drawSection(dst *ebiten.Image, sec SectionLayout, scrollY float64) {
	if sec.Title != "" {
		ent := s.reveal.Slide(s.reveal.ChildProgress(sec.ID, 0))
		w := s.fonts.TextWidth(sec.Title, RoleTitle)
		x := s.page.ContentX + (s.page.ContentWidth-w)/2
		s.drawText(dst, sec.Title, RoleTitle, x, sec.TitleY-scrollY+ent.OffsetY, 1, colorText, ent.Alpha)
	}

	if sec.Kind == config.KindQuotes {
		s.drawQuotes(dst, sec, scrollY)
		return
	}

	for i, item := range sec.Items {
		p := s.reveal.ChildProgress(sec.ID, i)
		hp := s.ItemHover(sec.ID, i)
		if sec.Kind == config.KindTiles {
			s.drawTile(dst, item, scrollY, s.reveal.Zoom(p), sec.Hover, hp)
			continue
		}
		s.drawItem(dst, sec.Kind, item, scrollY, s.reveal.Slide(p), sec.Hover, hp)
	}
}

// drawItem 卡片、列表项和联系方式
// 悬停时按 style 上移并以中心缩放，hp 为悬停进度
func (s *PortfolioScene) drawItem(dst *ebiten.Image, kind config.SectionKind, item ItemLayout, scrollY float64, ent reveal.Entrance, style config.HoverStyle, hp float64) {
	if ent.Alpha <= 0 {
		return
	}
	b := item.Bounds
	scale := style.ScaleAt(hp)
	w, h := b.W*scale, b.H*scale
	x := b.X - (w-b.W)/2
	y := b.Y - scrollY + ent.OffsetY - style.Lift*hp - (h-b.H)/2

	switch kind {
	case config.KindCards:
		fillRect(dst, x, y, w, h, colorSurface, ent.Alpha)
		strokeRect(dst, x, y, w, h, colorBorder, ent.Alpha)
	case config.KindList:
		if hp > 0 {
			fillRect(dst, x, y, w, h, colorSurface, ent.Alpha*hp)
		}
		c := scaleAlpha(colorAccent, ent.Alpha)
		vector.StrokeLine(dst, float32(x), float32(y), float32(x), float32(y+h), 3, c, true)
	case config.KindContact:
		strokeRect(dst, x, y, w, h, colorBorder, ent.Alpha)
	}
	if style.Glow && hp > 0 {
		strokeRect(dst, x, y, w, h, colorAccent, ent.Alpha*hp)
	}

	for i, block := range item.Blocks {
		clr := blockColor(block.Role)
		if kind == config.KindContact && i == 0 {
			clr = colorAccent
		}
		s.drawBlock(dst, block, x, y, scale, clr, ent.Alpha)
	}
}

// drawTile 技能图块：入场缩放叠加悬停缩放，悬停时外圈发光
func (s *PortfolioScene) drawTile(dst *ebiten.Image, item ItemLayout, scrollY float64, ent reveal.Entrance, style config.HoverStyle, hp float64) {
	if ent.Alpha <= 0 {
		return
	}
	b := item.Bounds
	scale := ent.Scale * style.ScaleAt(hp)
	cx, cy := b.X+b.W/2, b.Y+b.H/2-scrollY-style.Lift*hp
	w, h := b.W*scale, b.H*scale
	fillRect(dst, cx-w/2, cy-h/2, w, h, colorSurface, ent.Alpha)
	strokeRect(dst, cx-w/2, cy-h/2, w, h, colorAccent, ent.Alpha*(0.6+0.4*hp))
	if style.Glow && hp > 0 {
		const spread = 4.0
		strokeRect(dst, cx-w/2-spread, cy-h/2-spread, w+2*spread, h+2*spread, colorAccent, ent.Alpha*0.35*hp)
	}

	clr := blockColor(RoleSmall)
	if hp > 0 || !style.Glow {
		clr = colorText
	}
	for _, block := range item.Blocks {
		lh := s.fonts.LineHeight(block.Role) * scale
		top := cy - float64(len(block.Lines))*lh/2
		for i, line := range block.Lines {
			lw := s.fonts.TextWidth(line, block.Role) * scale
			s.drawText(dst, line, block.Role, cx-lw/2, top+float64(i)*lh, scale, clr, ent.Alpha)
		}
	}
}

// drawQuotes 推荐语轮播：整体入场，切换时淡入
func (s *PortfolioScene) drawQuotes(dst *ebiten.Image, sec SectionLayout, scrollY float64) {
	if len(sec.Items) == 0 {
		return
	}
	ent := s.reveal.Slide(s.reveal.ChildProgress(sec.ID, 0))
	alpha := ent.Alpha
	if since := s.carousel.SinceChange(); since >= 0 && since < quoteFadeSeconds {
		alpha *= since / quoteFadeSeconds
	}

	idx := s.carousel.Index()
	if idx >= len(sec.Items) {
		idx = 0
	}
	s.drawItem(dst, config.KindCards, sec.Items[idx], scrollY, reveal.Entrance{OffsetY: ent.OffsetY, Alpha: alpha, Scale: 1}, config.HoverStyle{}, 0)

	// 指示点
	b := sec.Items[0].Bounds
	const r, gap = 4.0, 16.0
	n := len(sec.Items)
	startX := b.X + b.W/2 - float64(n-1)*gap/2
	y := b.Bottom() - scrollY + config.CardGap/2 + ent.OffsetY
	for i := 0; i < n; i++ {
		c := colorBorder
		if i == idx {
			c = colorAccent
		}
		vector.DrawFilledCircle(dst, float32(startX+float64(i)*gap), float32(y), r, scaleAlpha(c, ent.Alpha), true)
	}
}

func (s *PortfolioScene) drawFooter(dst *ebiten.Image) {
	f := s.page.Footer
	if !utils.SpanOnScreen(f.Y, f.Y+f.H, s.scroll.Offset(), float64(s.viewH)) {
		return
	}
	_, y := utils.PageToScreen(0, f.Y, s.scroll.Offset(), false)
	vector.StrokeLine(dst, 0, float32(y), float32(f.W), float32(y), 1, colorBorder, false)
	w := s.fonts.TextWidth(s.page.FooterText, RoleSmall)
	lh := s.fonts.LineHeight(RoleSmall)
	s.drawText(dst, s.page.FooterText, RoleSmall, (f.W-w)/2, y+(f.H-lh)/2, 1, colorMuted, 1)
}

// drawNav 固定在顶部的导航栏，高亮当前所在区块
// 收起模式下画菜单按钮，展开时条目纵向排在导航栏下方
func (s *PortfolioScene) drawNav(dst *ebiten.Image) {
	fillRect(dst, 0, 0, float64(s.viewW), config.NavHeight, colorNavBar, 1)
	vector.StrokeLine(dst, 0, config.NavHeight, float32(s.viewW), config.NavHeight, 1, colorBorder, false)

	lh := s.fonts.LineHeight(RoleNav)
	s.drawText(dst, s.page.Brand, RoleNav, s.page.ContentX, (config.NavHeight-lh)/2, 1, colorAccent, 1)

	current := 0
	for i, item := range s.page.Nav {
		if s.scroll.Offset()+config.NavHeight >= item.TargetY {
			current = i
		}
	}

	if s.page.NavCollapsed {
		s.drawMenuButton(dst)
		if !s.menuOpen {
			return
		}
		fillRect(dst, 0, config.NavHeight, float64(s.viewW), s.page.MenuBottom()-config.NavHeight, colorNavBar, 1)
		vector.StrokeLine(dst, 0, float32(s.page.MenuBottom()), float32(s.viewW), float32(s.page.MenuBottom()), 1, colorBorder, false)
	}

	for i, item := range s.page.Nav {
		clr := colorMuted
		if i == current {
			clr = colorText
		}
		hp := s.hover.Progress(HoverKey{Group: hoverGroupNav, Index: i})
		if hp > 0 {
			clr = colorAccent
		}
		b := item.Bounds
		scale := s.NavItemScale(i)
		w := s.fonts.TextWidth(item.Label, RoleNav)
		if s.page.NavCollapsed {
			if hp > 0 {
				fillRect(dst, 0, b.Y, float64(s.viewW), b.H, colorSurface, hp)
			}
			// 菜单行左对齐，缩放以文字左端为原点
			s.drawText(dst, item.Label, RoleNav, b.X, b.Y+(b.H-lh*scale)/2, scale, clr, 1)
			continue
		}
		s.drawText(dst, item.Label, RoleNav, b.X+(b.W-w*scale)/2, b.Y+(b.H-lh*scale)/2, scale, clr, 1)
	}
}

// drawMenuButton 三横线菜单按钮，展开时中间一横变为强调色
func (s *PortfolioScene) drawMenuButton(dst *ebiten.Image) {
	b := s.page.MenuButton
	if hp := s.hover.Progress(HoverKey{Group: hoverGroupMenu}); hp > 0 {
		fillRect(dst, b.X, b.Y, b.W, b.H, colorSurface, hp)
	}
	const inset = 7.0
	for i := 0; i < 3; i++ {
		y := b.Y + b.H/4 + float64(i)*b.H/4
		c := colorText
		if i == 1 && s.menuOpen {
			c = colorAccent
		}
		vector.StrokeLine(dst, float32(b.X+inset), float32(y), float32(b.X+b.W-inset), float32(y), 2, c, true)
	}
}

// drawSplash 开场遮罩：引言 + 光晕脉冲，退出时淡出并上移
func (s *PortfolioScene) drawSplash(dst *ebiten.Image) {
	alpha := s.splash.OverlayAlpha()
	fillRect(dst, 0, 0, float64(s.viewW), float64(s.viewH), colorBackground, alpha)

	msg := s.opts.Content.Splash.Message
	if msg == "" {
		return
	}
	maxW := math.Min(float64(s.viewW)-2*config.PagePaddingX, 900)
	lines := s.fonts.Wrap(msg, RoleSplash, maxW)
	lh := s.fonts.LineHeight(RoleSplash)
	top := (float64(s.viewH)-float64(len(lines))*lh)/2 + s.splash.MessageOffsetY(splashSlideDistance)

	period := float64(s.opts.Motion.Splash.GlowPeriodMs) / 1000
	glow := utils.Pulse(s.splash.Elapsed(), period)

	for i, line := range lines {
		w := s.fonts.TextWidth(line, RoleSplash)
		x := (float64(s.viewW) - w) / 2
		y := top + float64(i)*lh
		// 光晕：四向偏移的强调色副本
		for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			s.drawText(dst, line, RoleSplash, x+d[0], y+d[1], 1, colorAccent, alpha*0.35*glow)
		}
		s.drawText(dst, line, RoleSplash, x, y, 1, colorText, alpha)
	}
}

// drawCursor 由远到近绘制三层团块
func (s *PortfolioScene) drawCursor(dst *ebiten.Image) {
	if s.trail == nil || s.tracker.EmitCount() == 0 {
		return
	}
	cur := s.opts.Motion.Cursor
	for i := motion.FollowerCount - 1; i >= 0; i-- {
		r := cur.Radii[i]
		ox, oy := s.trail.Transform(i).Origin(2*r, 2*r)
		vector.DrawFilledCircle(dst, float32(ox+r), float32(oy+r), float32(r), cur.Colors[i].Color(), true)
	}
}

func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	a = utils.Clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA, alpha float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), scaleAlpha(c, alpha), false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA, alpha float64) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, scaleAlpha(c, alpha), true)
}
