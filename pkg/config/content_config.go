package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/portfolio/pkg/embedded"
)

// SectionKind 区块排版方式
type SectionKind string

const (
	// KindText 段落文本（关于）
	KindText SectionKind = "text"
	// KindCards 卡片网格（教育、项目、比赛）
	KindCards SectionKind = "cards"
	// KindList 纵向列表（工作经历）
	KindList SectionKind = "list"
	// KindTiles 小图块网格（技能）
	KindTiles SectionKind = "tiles"
	// KindQuotes 推荐语轮播
	KindQuotes SectionKind = "quotes"
	// KindContact 联系方式
	KindContact SectionKind = "contact"
)

// ContentConfig 页面内容
//
// 内容对动画层是不透明的：只按字段渲染，不做校验以外的转换。
// 配置文件位置: data/content.yaml
type ContentConfig struct {
	Owner    OwnerInfo      `yaml:"owner"`
	Splash   SplashContent  `yaml:"splash"`
	Hero     HeroContent    `yaml:"hero"`
	Sections []SectionEntry `yaml:"sections"`
	Footer   []Link         `yaml:"footer"`
}

// OwnerInfo 页面主人
type OwnerInfo struct {
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
}

// SplashContent 开场文字
type SplashContent struct {
	Message string `yaml:"message"`
}

// HeroContent 首屏
type HeroContent struct {
	Tagline string `yaml:"tagline"`
	Roles   string `yaml:"roles"`
	Links   []Link `yaml:"links"`
	Resume  Link   `yaml:"resume"`
	// SceneLabel 3D 场景未就绪时的占位文字
	SceneLabel string `yaml:"sceneLabel"`
	// CTA 首屏行动按钮，点击后滚动到 Target 区块
	CTA CallToAction `yaml:"cta"`
}

// CallToAction 页内跳转按钮
type CallToAction struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Link 外部链接（只渲染，不拦截）
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// SectionEntry 一个页面区块
type SectionEntry struct {
	ID        string      `yaml:"id"`
	NavLabel  string      `yaml:"navLabel"` // 为空时不出现在导航栏
	Title     string      `yaml:"title"`
	Kind      SectionKind `yaml:"kind"`
	StaggerMs int         `yaml:"staggerMs"` // 0 表示使用默认错峰
	Hover     HoverStyle  `yaml:"hover"`
	Entries   []Entry     `yaml:"entries"`
}

// HoverStyle 子元素悬停效果，零值表示没有悬停反馈
type HoverStyle struct {
	// Lift 上移距离（像素）
	Lift float64 `yaml:"lift"`
	// Scale 放大倍数，0 表示不缩放
	Scale float64 `yaml:"scale"`
	// Glow 边框高亮
	Glow bool `yaml:"glow"`
}

// Active 是否有任何悬停效果
func (h HoverStyle) Active() bool {
	return h.Lift != 0 || h.Scale != 0 || h.Glow
}

// ScaleAt 悬停进度 p 对应的缩放
func (h HoverStyle) ScaleAt(p float64) float64 {
	if h.Scale == 0 {
		return 1
	}
	return 1 + (h.Scale-1)*p
}

// Stagger 子元素错峰延迟，未配置时使用 fallback
func (s SectionEntry) Stagger(fallback time.Duration) time.Duration {
	if s.StaggerMs <= 0 {
		return fallback
	}
	return time.Duration(s.StaggerMs) * time.Millisecond
}

// Entry 区块中的一条内容
type Entry struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Detail   string   `yaml:"detail"`
	Meta     string   `yaml:"meta"`
	Tags     []string `yaml:"tags"`
	Link     string   `yaml:"link"`
}

// LoadContentConfig 从嵌入资源加载页面内容
func LoadContentConfig(path string) (*ContentConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content config: %w", err)
	}
	return ParseContentConfig(data)
}

// LoadContentConfigFile 从磁盘加载页面内容
func LoadContentConfigFile(path string) (*ContentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content config file: %w", err)
	}
	return ParseContentConfig(data)
}

// ParseContentConfig 解析并验证 YAML
func ParseContentConfig(data []byte) (*ContentConfig, error) {
	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse content config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content config: %w", err)
	}
	return &cfg, nil
}

// Validate 检查区块 ID 唯一、排版方式可识别、首屏按钮指向已有区块
func (c *ContentConfig) Validate() error {
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d has no id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
		switch s.Kind {
		case KindText, KindCards, KindList, KindTiles, KindQuotes, KindContact:
		default:
			return fmt.Errorf("section %q has unknown kind %q", s.ID, s.Kind)
		}
		if s.StaggerMs < 0 {
			return fmt.Errorf("section %q has negative staggerMs", s.ID)
		}
		if s.Hover.Lift < 0 || s.Hover.Scale < 0 {
			return fmt.Errorf("section %q has negative hover lift or scale", s.ID)
		}
	}
	if t := c.Hero.CTA.Target; t != "" && !seen[t] {
		return fmt.Errorf("hero cta targets unknown section %q", t)
	}
	return nil
}

// Section 按 ID 查找区块
func (c *ContentConfig) Section(id string) (SectionEntry, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionEntry{}, false
}

// NavSections 出现在导航栏的区块（保持原顺序）
func (c *ContentConfig) NavSections() []SectionEntry {
	var out []SectionEntry
	for _, s := range c.Sections {
		if s.NavLabel != "" {
			out = append(out, s)
		}
	}
	return out
}
