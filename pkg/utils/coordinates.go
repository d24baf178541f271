// coordinates.go 提供页面坐标与屏幕坐标的转换
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **页面坐标**：相对于页面顶部（固定），排版结果都使用此坐标
//   - **屏幕坐标**：相对于窗口左上角（随滚动变化）
//   - **固定元素**：导航栏、启动遮罩、光标，页面坐标即屏幕坐标
//
// # 核心转换公式
//
//	screenY = pageY - scrollY
//
// 页面只有纵向滚动，横坐标两种坐标系相同。

package utils

// PageToScreen 页面坐标转屏幕坐标
//
// fixed 为 true 时表示元素不随滚动（例如导航栏）
func PageToScreen(pageX, pageY, scrollY float64, fixed bool) (screenX, screenY float64) {
	if fixed {
		return pageX, pageY
	}
	return pageX, pageY - scrollY
}

// ScreenToPage 屏幕坐标转页面坐标（点击检测）
func ScreenToPage(screenX, screenY, scrollY float64, fixed bool) (pageX, pageY float64) {
	if fixed {
		return screenX, screenY
	}
	return screenX, screenY + scrollY
}

// SpanOnScreen 页面纵向区间 [top, bottom) 是否与视口重叠
func SpanOnScreen(top, bottom, scrollY, viewH float64) bool {
	return bottom > scrollY && top < scrollY+viewH
}
