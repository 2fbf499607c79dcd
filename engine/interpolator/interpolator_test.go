package interpolator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/medley-go/common"
)

const epsilon = 1e-5

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestForBuiltins(t *testing.T) {
	// Every built-in value type must resolve without registration by the
	// caller.
	t.Run("float32", func(t *testing.T) {
		if _, err := For[float32](); err != nil {
			t.Fatalf("For[float32]() = %v", err)
		}
	})
	t.Run("int64", func(t *testing.T) {
		if _, err := For[int64](); err != nil {
			t.Fatalf("For[int64]() = %v", err)
		}
	})
	t.Run("bool", func(t *testing.T) {
		if _, err := For[bool](); err != nil {
			t.Fatalf("For[bool]() = %v", err)
		}
	})
	t.Run("time.Duration", func(t *testing.T) {
		if _, err := For[time.Duration](); err != nil {
			t.Fatalf("For[time.Duration]() = %v", err)
		}
	})
	t.Run("Vector3", func(t *testing.T) {
		if _, err := For[common.Vector3](); err != nil {
			t.Fatalf("For[common.Vector3]() = %v", err)
		}
	})
	t.Run("Quaternion", func(t *testing.T) {
		if _, err := For[common.Quaternion](); err != nil {
			t.Fatalf("For[common.Quaternion]() = %v", err)
		}
	})
	t.Run("Matrix", func(t *testing.T) {
		if _, err := For[common.Matrix](); err != nil {
			t.Fatalf("For[common.Matrix]() = %v", err)
		}
	})
}

func TestForUnregisteredType(t *testing.T) {
	type unregistered struct{ a, b float32 }
	_, err := For[unregistered]()
	if err == nil {
		t.Fatal("For on an unregistered type must fail")
	}
	if !errors.Is(err, ErrNoStrategy) {
		t.Fatalf("error = %v, want ErrNoStrategy", err)
	}
}

type rgb struct{ r, g, b float32 }

type rgbStrategy struct{}

func (rgbStrategy) Default() rgb { return rgb{} }

func (rgbStrategy) Linear(x, y rgb, ratio float32) rgb {
	return rgb{
		x.r + (y.r-x.r)*ratio,
		x.g + (y.g-x.g)*ratio,
		x.b + (y.b-x.b)*ratio,
	}
}

func (s rgbStrategy) Cubic(before, x, y, after rgb, ratio float32) rgb {
	return s.Linear(x, y, ratio)
}

func TestRegisterCustomType(t *testing.T) {
	Register[rgb](rgbStrategy{})

	s, err := For[rgb]()
	if err != nil {
		t.Fatalf("For[rgb]() after Register = %v", err)
	}
	got := s.Linear(rgb{0, 0, 0}, rgb{1, 1, 1}, 0.5)
	if !floatEq(float64(got.r), 0.5) {
		t.Errorf("custom Linear = %v, want midpoint", got)
	}
}

func TestScalarLinear(t *testing.T) {
	t.Run("float64 midpoint", func(t *testing.T) {
		s, _ := For[float64]()
		if got := s.Linear(10, 20, 0.5); !floatEq(got, 15) {
			t.Errorf("Linear(10, 20, 0.5) = %v, want 15", got)
		}
	})

	t.Run("integer truncation", func(t *testing.T) {
		s, _ := For[int32]()
		// 0..9 at ratio 0.15 is 1.35, truncated to 1.
		if got := s.Linear(0, 9, 0.15); got != 1 {
			t.Errorf("Linear(0, 9, 0.15) = %v, want 1", got)
		}
	})

	t.Run("duration", func(t *testing.T) {
		s, _ := For[time.Duration]()
		got := s.Linear(0, time.Second, 0.25)
		if got != 250*time.Millisecond {
			t.Errorf("Linear(0, 1s, 0.25) = %v, want 250ms", got)
		}
	})

	t.Run("endpoints", func(t *testing.T) {
		s, _ := For[float32]()
		if got := s.Linear(3, 7, 0); got != 3 {
			t.Errorf("ratio 0 = %v, want 3", got)
		}
		if got := s.Linear(3, 7, 1); got != 7 {
			t.Errorf("ratio 1 = %v, want 7", got)
		}
	})
}

func TestScalarCubic(t *testing.T) {
	s, _ := For[float64]()

	t.Run("endpoints", func(t *testing.T) {
		if got := s.Cubic(0, 10, 20, 30, 0); !floatEq(got, 10) {
			t.Errorf("Cubic at ratio 0 = %v, want x", got)
		}
		if got := s.Cubic(0, 10, 20, 30, 1); !floatEq(got, 20) {
			t.Errorf("Cubic at ratio 1 = %v, want y", got)
		}
	})

	t.Run("symmetric window midpoint", func(t *testing.T) {
		// interim = 30 - 20 - 0 + 10 = 20
		// at t=0.5: 20*0.125 + (0-10-20)*0.25 + (20-0)*0.5 + 10 = 15
		if got := s.Cubic(0, 10, 20, 30, 0.5); !floatEq(got, 15) {
			t.Errorf("Cubic(0, 10, 20, 30, 0.5) = %v, want 15", got)
		}
	})

	t.Run("known value", func(t *testing.T) {
		// interim = after - y - before + x = 5 - 1 - 0 + 0 = 4
		// at t=0.5: 4*0.125 + (0-0-4)*0.25 + (1-0)*0.5 + 0 = 0.5 - 1 + 0.5 = 0
		if got := s.Cubic(0, 0, 1, 5, 0.5); !floatEq(got, 0) {
			t.Errorf("Cubic(0, 0, 1, 5, 0.5) = %v, want 0", got)
		}
	})
}

func TestBoolStrategy(t *testing.T) {
	s, _ := For[bool]()

	tests := []struct {
		ratio float32
		want  bool
	}{
		{0, false},
		{0.49, false},
		{0.5, true},
		{1, true},
	}
	for _, tt := range tests {
		if got := s.Linear(false, true, tt.ratio); got != tt.want {
			t.Errorf("Linear(false, true, %v) = %v, want %v", tt.ratio, got, tt.want)
		}
		if got := s.Cubic(false, false, true, true, tt.ratio); got != tt.want {
			t.Errorf("Cubic at ratio %v = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestVector3Strategy(t *testing.T) {
	s, _ := For[common.Vector3]()

	if got := s.Default(); got != (common.Vector3{}) {
		t.Errorf("Default = %v, want zero vector", got)
	}

	got := s.Linear(common.Vector3{0, 0, 0}, common.Vector3{0, 10, 0}, 0.5)
	if !floatEq(float64(got[1]), 5) {
		t.Errorf("Linear midpoint = %v, want (0, 5, 0)", got)
	}

	// Component-wise cubic: interim = 2 - 1 - (-1) + 0 = 2, so at t=0.25
	// each component is 2*0.015625 - 3*0.0625 + 2*0.25 = 0.34375.
	got = s.Cubic(common.Vector3{-1, -1, -1}, common.Vector3{0, 0, 0}, common.Vector3{1, 1, 1}, common.Vector3{2, 2, 2}, 0.25)
	for i := range got {
		if !floatEq(float64(got[i]), 0.34375) {
			t.Fatalf("Cubic component %d = %v, want 0.34375", i, got[i])
		}
	}
}

func TestQuaternionStrategy(t *testing.T) {
	s, _ := For[common.Quaternion]()

	if got := s.Default(); got != common.QuaternionIdentity() {
		t.Errorf("Default = %v, want identity", got)
	}

	identity := common.QuaternionIdentity()
	quarter := common.Quaternion{0, 0, float32(math.Sin(math.Pi / 4)), float32(math.Cos(math.Pi / 4))}

	linear := s.Linear(identity, quarter, 0.5)
	cubic := s.Cubic(quarter, identity, quarter, identity, 0.5)

	// Cubic rotation sampling degrades to slerp between the inner pair;
	// the outer control points must not affect the result.
	for i := range linear {
		if !floatEq(float64(linear[i]), float64(cubic[i])) {
			t.Fatalf("Cubic diverges from slerp at component %d: %v vs %v", i, cubic[i], linear[i])
		}
	}
}

func TestMatrixStrategyDefault(t *testing.T) {
	s, _ := For[common.Matrix]()
	if got := s.Default(); got != common.MatrixIdentity() {
		t.Errorf("Default = %v, want identity matrix", got)
	}
}
