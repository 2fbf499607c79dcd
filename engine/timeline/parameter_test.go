package timeline

import (
	"testing"
	"time"
)

func testParameter(t *testing.T) *TimelineParameter[float32] {
	t.Helper()
	// Deliberately unordered input; construction sorts by position.
	p, err := NewTimelineParameter("Value", InterpolationLinear,
		NewKeyframe(2*time.Second, float32(20)),
		NewKeyframe(0, float32(0)),
		NewKeyframe(3*time.Second, float32(30)),
		NewKeyframe(1*time.Second, float32(10)),
	)
	if err != nil {
		t.Fatalf("NewTimelineParameter = %v", err)
	}
	return p
}

func TestNewTimelineParameter(t *testing.T) {
	t.Run("sorts keyframes", func(t *testing.T) {
		p := testParameter(t)
		kfs := p.Keyframes()
		for i := 1; i < len(kfs); i++ {
			if kfs[i].Position <= kfs[i-1].Position {
				t.Fatalf("keyframes not sorted: %v after %v", kfs[i].Position, kfs[i-1].Position)
			}
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewTimelineParameter[float32]("", InterpolationNone); err == nil {
			t.Fatal("empty name must be rejected")
		}
	})

	t.Run("rejects duplicate positions", func(t *testing.T) {
		_, err := NewTimelineParameter("Value", InterpolationLinear,
			NewKeyframe(1*time.Second, float32(1)),
			NewKeyframe(1*time.Second, float32(2)),
		)
		if err == nil {
			t.Fatal("duplicate keyframe positions must be rejected")
		}
	})

	t.Run("empty channel", func(t *testing.T) {
		p, err := NewTimelineParameter[float32]("Value", InterpolationNone)
		if err != nil {
			t.Fatalf("NewTimelineParameter = %v", err)
		}
		if p.HasKeyframes() {
			t.Error("empty channel reports keyframes")
		}
		if p.Start() != 0 || p.End() != 0 {
			t.Errorf("empty channel bounds = [%v, %v], want [0, 0]", p.Start(), p.End())
		}
	})
}

func TestParameterBounds(t *testing.T) {
	p := testParameter(t)
	if p.Start() != 0 {
		t.Errorf("Start = %v, want 0", p.Start())
	}
	if p.End() != 3*time.Second {
		t.Errorf("End = %v, want 3s", p.End())
	}
	if p.KeyframeCount() != 4 {
		t.Errorf("KeyframeCount = %d, want 4", p.KeyframeCount())
	}
}

func TestTryFindKeyframeBefore(t *testing.T) {
	p := testParameter(t)

	tests := []struct {
		name     string
		at       time.Duration
		offset   int
		wantPos  time.Duration
		wantMiss bool
	}{
		{"between keyframes", 1500 * time.Millisecond, 0, 1 * time.Second, false},
		{"exactly on a keyframe", 1 * time.Second, 0, 1 * time.Second, false},
		{"step back one", 1500 * time.Millisecond, 1, 0, false},
		{"negative offset steps forward", 1500 * time.Millisecond, -1, 2 * time.Second, false},
		{"before the first keyframe", -1 * time.Millisecond, 0, 0, true},
		{"step back past the start", 500 * time.Millisecond, 1, 0, true},
		{"after the last keyframe", 10 * time.Second, 0, 3 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kf, ok := p.TryFindKeyframeBefore(tt.at, tt.offset)
			if tt.wantMiss {
				if ok {
					t.Fatalf("found %v, want miss", kf.Position)
				}
				return
			}
			if !ok {
				t.Fatal("miss, want hit")
			}
			if kf.Position != tt.wantPos {
				t.Errorf("position = %v, want %v", kf.Position, tt.wantPos)
			}
		})
	}
}

func TestTryFindKeyframeAfter(t *testing.T) {
	p := testParameter(t)

	tests := []struct {
		name     string
		at       time.Duration
		offset   int
		wantPos  time.Duration
		wantMiss bool
	}{
		{"between keyframes", 1500 * time.Millisecond, 0, 2 * time.Second, false},
		{"exactly on a keyframe", 2 * time.Second, 0, 2 * time.Second, false},
		{"step forward one", 1500 * time.Millisecond, 1, 3 * time.Second, false},
		{"negative offset steps back", 1500 * time.Millisecond, -1, 1 * time.Second, false},
		{"after the last keyframe", 4 * time.Second, 0, 0, true},
		{"step forward past the end", 2500 * time.Millisecond, 1, 0, true},
		{"before the first keyframe", -1 * time.Second, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kf, ok := p.TryFindKeyframeAfter(tt.at, tt.offset)
			if tt.wantMiss {
				if ok {
					t.Fatalf("found %v, want miss", kf.Position)
				}
				return
			}
			if !ok {
				t.Fatal("miss, want hit")
			}
			if kf.Position != tt.wantPos {
				t.Errorf("position = %v, want %v", kf.Position, tt.wantPos)
			}
		})
	}
}

func TestInterpolationMethodString(t *testing.T) {
	tests := []struct {
		method InterpolationMethod
		want   string
	}{
		{InterpolationNone, "None"},
		{InterpolationLinear, "Linear"},
		{InterpolationCubic, "Cubic"},
		{InterpolationMethod(9), "InterpolationMethod(9)"},
	}
	for _, tt := range tests {
		if got := tt.method.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
