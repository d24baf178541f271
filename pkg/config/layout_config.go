package config

// 布局配置常量
// 本文件定义了页面的逻辑屏幕尺寸、栏宽、卡片尺寸和字号
// 所有坐标使用"页面坐标系"（相对于页面顶部，不随滚动变化）

// Window Configuration (窗口配置)
const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 1280

	// WindowHeight 逻辑屏幕高度
	WindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Portfolio"
)

// Page Layout (页面布局)
const (
	// NavHeight 顶部导航栏高度（固定，不随滚动）
	NavHeight = 56.0

	// ContentMaxWidth 内容区最大宽度，居中显示
	ContentMaxWidth = 1100.0

	// PagePaddingX 内容区左右留白
	PagePaddingX = 32.0

	// SectionPaddingY 区块上下留白
	SectionPaddingY = 80.0

	// SectionTitleGap 区块标题与内容的间距
	SectionTitleGap = 48.0

	// CardGap 卡片间距
	CardGap = 24.0

	// CardPadding 卡片内边距
	CardPadding = 20.0

	// TileSize 技能图块边长
	TileSize = 96.0

	// QuoteMaxWidth 推荐语最大宽度
	QuoteMaxWidth = 760.0

	// HeroMinHeight 首屏最小高度
	HeroMinHeight = WindowHeight
)

// Grid Columns (网格列数)
// 宽度越大列数越多，以 WideBreakpoint 为界
const (
	// CardColumnsWide 宽屏卡片列数
	CardColumnsWide = 3

	// CardColumnsNarrow 窄屏卡片列数
	CardColumnsNarrow = 1

	// TileColumnsWide 宽屏技能图块列数
	TileColumnsWide = 6

	// TileColumnsNarrow 窄屏技能图块列数
	TileColumnsNarrow = 2

	// WideBreakpoint 宽屏断点
	WideBreakpoint = 900.0
)

// Navigation (导航栏)
// 低于 NavCollapseBreakpoint 时条目收进右上角的菜单按钮，展开为纵向列表
const (
	// NavCollapseBreakpoint 导航收起断点
	NavCollapseBreakpoint = 768.0

	// NavMenuButtonSize 菜单按钮边长
	NavMenuButtonSize = 32.0

	// NavMenuItemHeight 展开菜单每行高度
	NavMenuItemHeight = 44.0
)

// Hero Buttons (首屏按钮)
const (
	// HeroButtonPadX 按钮文字左右内边距
	HeroButtonPadX = 24.0

	// HeroButtonPadY 按钮文字上下内边距
	HeroButtonPadY = 12.0
)

// Font Sizes (字号)
const (
	FontSizeBody     = 16.0
	FontSizeSmall    = 13.0
	FontSizeCardHead = 20.0
	FontSizeTitle    = 36.0
	FontSizeHero     = 72.0
	FontSizeSplash   = 44.0
	FontSizeNav      = 15.0
)

// LineSpacing 行距倍数
const LineSpacing = 1.4
