package splash

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/decker502/portfolio/pkg/game"
)

const frameDT = 1.0 / 60.0

// runFrames 推进 n 帧，每帧检查状态不会从 Hidden 回到 Visible
func runFrames(t *testing.T, lc *game.Lifecycle, s *Sequencer, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		wasHidden := s.State() == Hidden
		lc.Tick(frameDT)
		if wasHidden && s.State() != Hidden {
			t.Fatalf("Sequencer returned to %s after being hidden", s.State())
		}
	}
}

func TestGateRequiresBothInputs(t *testing.T) {
	tests := []struct {
		name  string
		timer bool
		ready bool
		open  bool
	}{
		{"都未满足", false, false, false},
		{"仅计时器", true, false, false},
		{"仅内容", false, true, false},
		{"都满足", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Gate
			if tt.ready {
				g.SetContentReady()
			}
			if tt.timer {
				g.SetTimerElapsed()
			}
			if g.Open() != tt.open {
				t.Errorf("Open() = %v, 期望 %v", g.Open(), tt.open)
			}
		})
	}
}

// TestGateSnapshot Sequencer.Gate() 返回快照，可直接链式查询
func TestGateSnapshot(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimerAndReady, MinDisplay: time.Second})

	if s.Gate().ContentReady() || s.Gate().TimerElapsed() || s.Gate().Open() {
		t.Fatalf("新建闸门 = %+v, 期望两个输入都未满足", s.Gate())
	}

	before := s.Gate()
	s.MarkContentReady()
	if before.ContentReady() {
		t.Error("快照不应随 Sequencer 变化")
	}
	if !s.Gate().ContentReady() || s.Gate().Open() {
		t.Errorf("Gate() = %+v, 期望仅内容就绪", s.Gate())
	}

	runFrames(t, lc, s, 61)
	if !s.Gate().Open() {
		t.Error("期望最短时间过后闸门打开")
	}
	s.Close()
}

func TestTimerVariantHidesAfterMinimum(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimer, MinDisplay: 3000 * time.Millisecond, Exit: 500 * time.Millisecond})

	runFrames(t, lc, s, 170) // 约 2.83 秒
	if s.State() != Visible {
		t.Fatalf("Hidden before the minimum display time (%.3fs)", lc.Clock())
	}

	runFrames(t, lc, s, 20)
	if s.State() != Hidden {
		t.Fatalf("Expected Hidden after %.3fs", lc.Clock())
	}
	if s.HiddenAt() < 3.0 {
		t.Errorf("HiddenAt = %.3f, 期望 >= 3.0", s.HiddenAt())
	}
}

// TestReadyLateGovernsDismissal 最短 1500ms，内容在 3000ms 就绪：约 3000ms 隐藏
func TestReadyLateGovernsDismissal(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimerAndReady, MinDisplay: 1500 * time.Millisecond})
	lc.After(3000*time.Millisecond, s.MarkContentReady)

	runFrames(t, lc, s, 120) // 2 秒
	if !s.Gate().TimerElapsed() {
		t.Fatal("Expected the minimum timer to have elapsed")
	}
	if s.State() != Visible {
		t.Fatalf("Hidden at %.3fs before content was ready", s.HiddenAt())
	}

	runFrames(t, lc, s, 120)
	if s.State() != Hidden {
		t.Fatal("Expected Hidden once content became ready")
	}
	if math.Abs(s.HiddenAt()-3.0) > 2*frameDT {
		t.Errorf("HiddenAt = %.3fs, 期望约 3.0s", s.HiddenAt())
	}
}

// TestInstantReadyStillWaitsForMinimum 内容立即就绪也不会提前隐藏
func TestInstantReadyStillWaitsForMinimum(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimerAndReady, MinDisplay: 1500 * time.Millisecond})
	s.MarkContentReady()

	runFrames(t, lc, s, 80)
	if s.State() != Visible {
		t.Fatalf("Hidden at %.3fs, before the 1.5s minimum", s.HiddenAt())
	}
	runFrames(t, lc, s, 20)
	if s.State() != Hidden {
		t.Fatal("Expected Hidden after the minimum elapsed")
	}
	if s.HiddenAt() < 1.5 {
		t.Errorf("HiddenAt = %.3f, 期望 >= 1.5", s.HiddenAt())
	}
}

func TestPreloadFailureDoesNotBlock(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimerAndReady, MinDisplay: 500 * time.Millisecond})
	s.PreloadFailed(errors.New("scene asset missing"))

	runFrames(t, lc, s, 40)
	if s.State() != Hidden {
		t.Error("A failed preload should not prevent the splash from hiding")
	}
}

func TestOnHiddenCalledOnce(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimer, MinDisplay: 100 * time.Millisecond})
	calls := 0
	s.OnHidden(func() { calls++ })

	runFrames(t, lc, s, 30)
	s.MarkContentReady()
	runFrames(t, lc, s, 30)

	if calls != 1 {
		t.Errorf("OnHidden called %d times, 期望 1", calls)
	}

	late := 0
	s.OnHidden(func() { late++ })
	if late != 1 {
		t.Error("OnHidden registered after hiding should run immediately")
	}
}

// TestExitTransitionIsCosmetic 状态立即切换，退出过渡只影响绘制
func TestExitTransitionIsCosmetic(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimer, MinDisplay: 100 * time.Millisecond, Exit: 500 * time.Millisecond})

	runFrames(t, lc, s, 7)
	if s.State() != Hidden {
		t.Fatal("Expected Hidden right after the timer")
	}
	if !s.OverlayPresent() {
		t.Error("Overlay should still be drawn during the exit transition")
	}
	if a := s.OverlayAlpha(); a <= 0 || a > 1 {
		t.Errorf("OverlayAlpha() = %.3f during exit, 期望 (0,1]", a)
	}

	runFrames(t, lc, s, 40)
	if s.OverlayPresent() {
		t.Error("Overlay should be removed after the exit transition")
	}
	if s.ExitProgress() != 1 || s.OverlayAlpha() != 0 {
		t.Errorf("ExitProgress=%.3f alpha=%.3f after exit", s.ExitProgress(), s.OverlayAlpha())
	}
	if s.MessageOffsetY(20) != -20 {
		t.Errorf("MessageOffsetY(20) = %.2f, 期望 -20", s.MessageOffsetY(20))
	}
}

func TestSequencerUnmountClearsTimer(t *testing.T) {
	lc := game.NewLifecycle(game.NewEventBus())
	s := NewSequencer(lc, Options{Variant: VariantTimerAndReady, MinDisplay: time.Second})

	if lc.PendingTimers() != 1 {
		t.Fatalf("Expected 1 pending timer, got %d", lc.PendingTimers())
	}
	s.Close()
	if lc.PendingTimers() != 0 {
		t.Errorf("Expected 0 pending timers after Close, got %d", lc.PendingTimers())
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", VariantTimerAndReady, false},
		{"enhanced", VariantTimerAndReady, false},
		{"Timer+Ready", VariantTimerAndReady, false},
		{"timer", VariantTimer, false},
		{"simple", VariantTimer, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVariant(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseVariant(%q) = %v, 期望 %v", tt.in, got, tt.want)
		}
	}
}
