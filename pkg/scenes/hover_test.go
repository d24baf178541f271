package scenes

import (
	"math"
	"testing"
)

func TestHoverEasesInAndOut(t *testing.T) {
	card := HoverKey{Group: "education", Index: 0}
	other := HoverKey{Group: "education", Index: 1}

	h := NewHover(0.2)
	h.Set(card)

	tests := []struct {
		name      string
		step      func()
		wantCard  float64
		wantOther float64
	}{
		{"半程", func() { h.Step(0.1) }, 0.75, 0},
		{"到达", func() { h.Step(0.2) }, 1, 0},
		{"移到另一张", func() { h.Set(other); h.Step(0.1) }, 0.75, 0.75},
		{"离开全部", func() { h.Clear(); h.Step(0.2) }, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.step()
			if got := h.Progress(card); math.Abs(got-tt.wantCard) > 1e-9 {
				t.Errorf("card 进度 = %v, 期望 %v", got, tt.wantCard)
			}
			if got := h.Progress(other); math.Abs(got-tt.wantOther) > 1e-9 {
				t.Errorf("other 进度 = %v, 期望 %v", got, tt.wantOther)
			}
		})
	}

	if len(h.progress) != 0 {
		t.Errorf("回落到 0 的条目应被移除, 剩余 %v", h.progress)
	}
}

func TestHoverZeroDurationIsInstant(t *testing.T) {
	key := HoverKey{Group: hoverGroupCTA}
	h := NewHover(0)
	h.Set(key)
	h.Step(1.0 / 60)
	if got := h.Progress(key); got != 1 {
		t.Errorf("Progress() = %v, 期望立即为 1", got)
	}
	if target, ok := h.Target(); !ok || target != key {
		t.Errorf("Target() = %+v, %v", target, ok)
	}

	h.Reset()
	if _, ok := h.Target(); ok || h.Progress(key) != 0 {
		t.Error("Reset 后应没有悬停")
	}
}
