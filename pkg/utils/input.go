// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FrameInput 一帧内收集到的输入
//
// Ebitengine 只提供轮询接口，没有"移动"事件；
// InputPoller 比较相邻两帧的位置来合成移动。
type FrameInput struct {
	// PointerX, PointerY 当前指针位置（触摸优先）
	PointerX, PointerY int
	// Moved 指针位置相对上一帧发生了变化
	Moved bool
	// Touch 位置来自触摸
	Touch bool

	// Clicked 本帧刚按下（鼠标左键或新触摸）
	Clicked        bool
	ClickX, ClickY int
	// Pressed 鼠标左键按住或有手指在屏幕上
	Pressed bool

	// WheelY 滚轮纵向增量（向上为正）
	WheelY float64

	// DragDY 触摸拖动的纵向增量（像素，向下为正）
	DragDY int
}

// InputPoller 每帧轮询一次输入
type InputPoller struct {
	hasLast      bool
	lastX, lastY int
	drag         dragTracker
}

// NewInputPoller 创建轮询器
func NewInputPoller() *InputPoller {
	return &InputPoller{drag: dragTracker{id: -1}}
}

// Poll 读取本帧输入（每帧调用一次）
func (p *InputPoller) Poll() FrameInput {
	var in FrameInput

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		id := touchIDs[0]
		in.PointerX, in.PointerY = ebiten.TouchPosition(id)
		in.Touch = true
		in.DragDY = p.drag.update(true, int(id), in.PointerY)
	} else {
		p.drag.update(false, -1, 0)
		if IsMobile() && p.hasLast {
			// 移动端没有悬停光标，手指抬起后停在最后位置
			in.PointerX, in.PointerY = p.lastX, p.lastY
		} else {
			in.PointerX, in.PointerY = ebiten.CursorPosition()
		}
	}

	in.Moved = p.observe(in.PointerX, in.PointerY)

	in.Clicked, in.ClickX, in.ClickY = IsJustTouchedOrClicked()
	in.Pressed = in.Touch || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	_, in.WheelY = ebiten.Wheel()
	return in
}

// observe 记录位置并返回是否移动
// 第一次观察到位置也算作一次移动
func (p *InputPoller) observe(x, y int) bool {
	moved := !p.hasLast || x != p.lastX || y != p.lastY
	p.hasLast = true
	p.lastX, p.lastY = x, y
	return moved
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// dragTracker 跟踪单指拖动
type dragTracker struct {
	id    int
	lastY int
}

// update 返回本帧相对上一帧的拖动增量
// 手指抬起或换了一根手指时重新开始，不产生跳变
func (d *dragTracker) update(active bool, id, y int) int {
	if !active {
		d.id = -1
		return 0
	}
	if d.id != id {
		d.id = id
		d.lastY = y
		return 0
	}
	dy := y - d.lastY
	d.lastY = y
	return dy
}
