package motion

import (
	"fmt"
	"math"
)

// Transform 二维平移变换
// 坐标取整到像素，并附带 -50%/-50% 的自身偏移，使元素中心落在计算点上
type Transform struct {
	X, Y                     int     // 取整后的平移（像素）
	SelfOffsetX, SelfOffsetY float64 // 相对元素自身尺寸的偏移比例
}

// NewTransform 由浮点位置生成变换
func NewTransform(x, y float64) Transform {
	return Transform{
		X:           int(math.Round(x)),
		Y:           int(math.Round(y)),
		SelfOffsetX: -0.5,
		SelfOffsetY: -0.5,
	}
}

// Origin 返回尺寸为 w×h 的元素左上角绘制位置
func (t Transform) Origin(w, h float64) (float64, float64) {
	return float64(t.X) + w*t.SelfOffsetX, float64(t.Y) + h*t.SelfOffsetY
}

// String 以 CSS transform 形式输出
func (t Transform) String() string {
	return fmt.Sprintf("translate3d(%dpx,%dpx,0) translate3d(%g%%,%g%%,0)",
		t.X, t.Y, t.SelfOffsetX*100, t.SelfOffsetY*100)
}
