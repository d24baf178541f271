package scenes

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/decker502/portfolio/pkg/config"
)

// monoMeasurer 等宽假测量：每个字符 8 像素，行高 20
type monoMeasurer struct{}

func (monoMeasurer) TextWidth(s string, role FontRole) float64 {
	return float64(len([]rune(s))) * 8
}

func (m monoMeasurer) Wrap(s string, role FontRole, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{s}
	}
	var lines []string
	line := ""
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if line != "" && m.TextWidth(candidate, role) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

func (monoMeasurer) LineHeight(FontRole) float64 { return 20 }

func testContent() *config.ContentConfig {
	return &config.ContentConfig{
		Owner: config.OwnerInfo{FirstName: "ANUSH", LastName: "NAIK"},
		Hero: config.HeroContent{
			Tagline: "Full-stack developer",
			Roles:   "Full Stack Developer | AI & ML Enthusiast",
			Links:   []config.Link{{Label: "GitHub"}, {Label: "LinkedIn"}},
			Resume:  config.Link{Label: "Resume"},
			CTA:     config.CallToAction{Label: "Contact Me", Target: "contact"},
		},
		Sections: []config.SectionEntry{
			{ID: "about", Kind: config.KindText, Entries: []config.Entry{{Detail: "Hello there"}}},
			{ID: "education", NavLabel: "Education", Title: "Education", Kind: config.KindCards, StaggerMs: 200,
				Hover:   config.HoverStyle{Lift: 5, Scale: 1.02, Glow: true},
				Entries: []config.Entry{{Title: "B.E"}, {Title: "PU"}, {Title: "SSLC"}, {Title: "Extra"}}},
			{ID: "skills", NavLabel: "Skills", Title: "Technical Skills", Kind: config.KindTiles,
				Hover:   config.HoverStyle{Scale: 1.1, Glow: true},
				Entries: []config.Entry{{Title: "Go"}, {Title: "React"}, {Title: "Git"}}},
			{ID: "testimonials", NavLabel: "Testimonials", Title: "Testimonials", Kind: config.KindQuotes,
				Entries: []config.Entry{{Title: "A", Detail: "short"}, {Title: "B", Detail: strings.Repeat("long words ", 40)}}},
			{ID: "contact", NavLabel: "Let's Talk", Title: "Let's Talk", Kind: config.KindContact,
				Entries: []config.Entry{{Title: "Email", Subtitle: "me@example.com"}, {Title: "GitHub", Link: "https://github.com"}}},
		},
		Footer: []config.Link{{Label: "GitHub"}, {Label: "LinkedIn"}},
	}
}

func TestComposeSectionsStackInSourceOrder(t *testing.T) {
	page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(1280, 720)

	var ids []string
	for _, s := range page.Sections {
		ids = append(ids, s.ID)
	}
	if diff := cmp.Diff([]string{"about", "education", "skills", "testimonials", "contact"}, ids); diff != "" {
		t.Fatalf("区块顺序不符 (-want +got):\n%s", diff)
	}

	y := page.Hero.Bounds.Bottom()
	for _, s := range page.Sections {
		if s.Bounds.Y != y {
			t.Errorf("区块 %s 顶部 = %v, 期望紧接上一区块 %v", s.ID, s.Bounds.Y, y)
		}
		if s.Bounds.H <= 2*config.SectionPaddingY {
			t.Errorf("区块 %s 高度 %v 过小", s.ID, s.Bounds.H)
		}
		y = s.Bounds.Bottom()
	}
	if page.Footer.Y != y || page.Height != page.Footer.Bottom() {
		t.Errorf("页脚位置不符: footer=%+v height=%v", page.Footer, page.Height)
	}
}

func TestComposeCardGrid(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		wantCols int
	}{
		{"宽屏三列", 1280, config.CardColumnsWide},
		{"窄屏单列", 480, config.CardColumnsNarrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(tt.width, 720)
			edu, ok := page.Section("education")
			if !ok {
				t.Fatal("缺少 education")
			}
			if len(edu.Items) != 4 {
				t.Fatalf("卡片数 = %d, 期望 4", len(edu.Items))
			}

			firstRowY := edu.Items[0].Bounds.Y
			cols := 0
			for _, it := range edu.Items {
				if it.Bounds.Y == firstRowY {
					cols++
				}
				if it.Bounds.X < page.ContentX || it.Bounds.X+it.Bounds.W > page.ContentX+page.ContentWidth+1e-9 {
					t.Errorf("卡片 %q 超出内容区: %+v", it.Entry.Title, it.Bounds)
				}
				if !edu.Bounds.Intersects(it.Bounds) {
					t.Errorf("卡片 %q 不在区块内", it.Entry.Title)
				}
			}
			if cols != tt.wantCols {
				t.Errorf("第一行列数 = %d, 期望 %d", cols, tt.wantCols)
			}
			if edu.Stagger != 200*time.Millisecond {
				t.Errorf("Stagger = %v, 期望 200ms", edu.Stagger)
			}
			if edu.Children() != 4 {
				t.Errorf("Children() = %d, 期望 4", edu.Children())
			}
		})
	}
}

func TestComposeTilesAndQuotes(t *testing.T) {
	page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(1280, 720)

	skills, _ := page.Section("skills")
	for _, it := range skills.Items {
		if it.Bounds.H != config.TileSize {
			t.Errorf("图块 %q 高度 = %v, 期望 %v", it.Entry.Title, it.Bounds.H, config.TileSize)
		}
	}
	if skills.Stagger != 100*time.Millisecond {
		t.Errorf("未配置错峰时应使用默认值, got %v", skills.Stagger)
	}

	quotes, _ := page.Section("testimonials")
	if len(quotes.Items) != 2 {
		t.Fatalf("推荐语数 = %d, 期望 2", len(quotes.Items))
	}
	if quotes.Items[0].Bounds != quotes.Items[1].Bounds {
		t.Errorf("轮播条目应共用同一区域: %+v vs %+v", quotes.Items[0].Bounds, quotes.Items[1].Bounds)
	}
	if quotes.Items[0].Bounds.W > config.QuoteMaxWidth {
		t.Errorf("推荐语宽度 %v 超过上限", quotes.Items[0].Bounds.W)
	}
	if quotes.Children() != 1 {
		t.Errorf("轮播整体入场, Children() = %d", quotes.Children())
	}
	// 内容原样保留
	if quotes.Items[0].Entry.Detail != "short" {
		t.Errorf("条目内容被改写: %q", quotes.Items[0].Entry.Detail)
	}
}

func TestComposeNav(t *testing.T) {
	page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(1280, 720)

	var labels []string
	for _, n := range page.Nav {
		labels = append(labels, n.Label)
	}
	want := []string{"Home", "Education", "Skills", "Testimonials", "Let's Talk"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("导航条目不符 (-want +got):\n%s", diff)
	}

	skills, _ := page.Section("skills")
	if page.Nav[2].TargetY != skills.Bounds.Y {
		t.Errorf("Skills 目标 = %v, 期望 %v", page.Nav[2].TargetY, skills.Bounds.Y)
	}

	for i := 1; i < len(page.Nav); i++ {
		if page.Nav[i].Bounds.X <= page.Nav[i-1].Bounds.X {
			t.Errorf("导航条目应从左到右排列: %v", page.Nav)
		}
	}
	last := page.Nav[len(page.Nav)-1].Bounds
	if right := last.X + last.W; right != page.ContentX+page.ContentWidth {
		t.Errorf("最后一项右边界 = %v, 期望与内容区右对齐 %v", right, page.ContentX+page.ContentWidth)
	}

	b := page.Nav[1].Bounds
	hit, ok := page.HitNav(b.X+1, config.NavHeight/2)
	if !ok || hit.Label != "Education" {
		t.Errorf("HitNav 命中 %v, %v", hit, ok)
	}
	if _, ok := page.HitNav(b.X+1, config.NavHeight+10); ok {
		t.Error("导航栏下方的点击不应命中")
	}
}

func TestComposeNavCollapsed(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		collapsed bool
	}{
		{"桌面宽度", 1280, false},
		{"断点处", config.NavCollapseBreakpoint, false},
		{"手机宽度", 390, true},
		{"最小宽度", 320, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(tt.width, 800)
			if page.NavCollapsed != tt.collapsed {
				t.Fatalf("NavCollapsed = %v, 期望 %v", page.NavCollapsed, tt.collapsed)
			}

			for _, n := range page.Nav {
				if b := n.Bounds; b.X < 0 || b.X+b.W > tt.width {
					t.Errorf("%s 超出视口: x=%v w=%v viewport=%v", n.Label, b.X, b.W, tt.width)
				}
			}
			if !tt.collapsed {
				if page.HitMenuButton(page.MenuButton.X+1, page.MenuButton.Y+1) {
					t.Error("宽屏不应有菜单按钮")
				}
				return
			}

			btn := page.MenuButton
			if btn.X < page.ContentX || btn.X+btn.W > tt.width || btn.Bottom() > config.NavHeight {
				t.Errorf("菜单按钮 = %+v, 期望在导航栏右侧", btn)
			}
			if !page.HitMenuButton(btn.X+btn.W/2, btn.Y+btn.H/2) {
				t.Error("期望命中菜单按钮")
			}
			for i, n := range page.Nav {
				want := config.NavHeight + float64(i)*config.NavMenuItemHeight
				if n.Bounds.Y != want || n.Bounds.H != config.NavMenuItemHeight {
					t.Errorf("%s 行位置 = %+v, 期望 y=%v", n.Label, n.Bounds, want)
				}
			}
			if got, want := page.MenuBottom(), config.NavHeight+float64(len(page.Nav))*config.NavMenuItemHeight; got != want {
				t.Errorf("MenuBottom() = %v, 期望 %v", got, want)
			}

			row := page.Nav[2].Bounds
			hit, ok := page.HitNav(row.X+row.W/2, row.Y+row.H/2)
			if !ok || hit.Label != "Skills" {
				t.Errorf("HitNav 命中 %v, %v, 期望 Skills", hit, ok)
			}
			if _, ok := page.HitNav(row.X+row.W/2, config.NavHeight/2); ok {
				t.Error("收起模式下导航栏本身不应命中条目")
			}
		})
	}
}

func TestComposeHeroCTA(t *testing.T) {
	for _, width := range []float64{1280, 390} {
		page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(width, 720)
		cta := page.Hero.CTA
		if cta.Label != "Contact Me" {
			t.Fatalf("宽度 %v: CTA = %+v", width, cta)
		}

		contact, _ := page.Section("contact")
		if cta.TargetY != contact.Bounds.Y {
			t.Errorf("宽度 %v: CTA 目标 = %v, 期望 contact 顶部 %v", width, cta.TargetY, contact.Bounds.Y)
		}
		last := page.Hero.Lines[len(page.Hero.Lines)-1]
		if cta.Bounds.Y < last.Y+20 {
			t.Errorf("宽度 %v: CTA 应在链接行下方: %+v", width, cta.Bounds)
		}
		if cta.Bounds.Bottom() > page.Hero.Bounds.Bottom() || cta.Bounds.X+cta.Bounds.W > width {
			t.Errorf("宽度 %v: CTA 超出首屏: %+v", width, cta.Bounds)
		}
		if !page.HitCTA(cta.Bounds.X+1, cta.Bounds.Y+1) {
			t.Errorf("宽度 %v: 期望命中 CTA", width)
		}
		if page.HitCTA(cta.Bounds.X+cta.Bounds.W+1, cta.Bounds.Y+1) {
			t.Errorf("宽度 %v: CTA 右侧不应命中", width)
		}
	}

	noCTA := testContent()
	noCTA.Hero.CTA = config.CallToAction{}
	page := NewComposer(noCTA, monoMeasurer{}, 100*time.Millisecond).Compose(1280, 720)
	if page.HitCTA(page.ContentX+1, config.NavHeight+1) || page.Hero.CTA.Label != "" {
		t.Error("未配置 CTA 时不应有按钮")
	}
}

func TestPageHitItem(t *testing.T) {
	page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(1280, 720)
	edu, _ := page.Section("education")
	skills, _ := page.Section("skills")
	about, _ := page.Section("about")
	center := func(b ItemLayout) (float64, float64) {
		return b.Bounds.X + b.Bounds.W/2, b.Bounds.Y + b.Bounds.H/2
	}

	tests := []struct {
		name   string
		item   ItemLayout
		want   HoverKey
		wantOK bool
	}{
		{"教育卡片", edu.Items[1], HoverKey{Group: "education", Index: 1}, true},
		{"技能图块", skills.Items[2], HoverKey{Group: "skills", Index: 2}, true},
		{"没有悬停效果的区块", about.Items[0], HoverKey{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := center(tt.item)
			got, ok := page.HitItem(x, y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("HitItem(%v, %v) = %+v, %v, 期望 %+v, %v", x, y, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	// 卡片间隙
	gapX := edu.Items[0].Bounds.X + edu.Items[0].Bounds.W + config.CardGap/2
	if _, ok := page.HitItem(gapX, edu.Items[0].Bounds.Y+5); ok {
		t.Error("卡片间隙不应命中")
	}
}

func TestComposeHeroLines(t *testing.T) {
	page := NewComposer(testContent(), monoMeasurer{}, 100*time.Millisecond).Compose(1280, 720)

	if len(page.Hero.Lines) != 4 {
		t.Fatalf("首屏文字块数 = %d, 期望 4", len(page.Hero.Lines))
	}
	if got := page.Hero.Lines[0].Lines[0]; got != "ANUSH NAIK" {
		t.Errorf("姓名行 = %q", got)
	}
	if got := page.Hero.Lines[3].Lines[0]; !strings.Contains(got, "Resume") {
		t.Errorf("链接行缺少简历: %q", got)
	}
	for i := 1; i < len(page.Hero.Lines); i++ {
		if page.Hero.Lines[i].Y <= page.Hero.Lines[i-1].Y {
			t.Errorf("首屏文字块应自上而下排列")
		}
	}
	if page.Hero.Scene.W <= 0 || !page.Hero.Bounds.Intersects(page.Hero.Scene) {
		t.Errorf("3D 场景区域无效: %+v", page.Hero.Scene)
	}
}
