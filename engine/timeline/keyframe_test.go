package timeline

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/medley-go/common"
)

const epsilon = 1e-5

func floatEq(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < epsilon
}

func TestCalculateRatioTo(t *testing.T) {
	a := NewKeyframe(1*time.Second, float32(0))
	b := NewKeyframe(3*time.Second, float32(0))

	tests := []struct {
		name    string
		at      time.Duration
		want    float32
		wantErr bool
	}{
		{"at first keyframe", 1 * time.Second, 0, false},
		{"at second keyframe", 3 * time.Second, 1, false},
		{"midpoint", 2 * time.Second, 0.5, false},
		{"quarter", 1500 * time.Millisecond, 0.25, false},
		{"before the interval", 500 * time.Millisecond, 0, true},
		{"after the interval", 4 * time.Second, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.CalculateRatioTo(b, tt.at)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CalculateRatioTo(%v) succeeded, want range error", tt.at)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalculateRatioTo(%v) = %v", tt.at, err)
			}
			if !floatEq(got, tt.want) {
				t.Errorf("CalculateRatioTo(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestCalculateRatioToReversedOperands(t *testing.T) {
	// The interval is the span between the two positions regardless of
	// operand order; the ratio is still measured from the receiver.
	a := NewKeyframe(3*time.Second, float32(0))
	b := NewKeyframe(1*time.Second, float32(0))

	got, err := a.CalculateRatioTo(b, 2*time.Second)
	if err != nil {
		t.Fatalf("CalculateRatioTo = %v", err)
	}
	if !floatEq(got, 0.5) {
		t.Errorf("reversed midpoint ratio = %v, want 0.5", got)
	}
}

func TestCalculateRatioToEqualPositions(t *testing.T) {
	a := NewKeyframe(1*time.Second, float32(0))
	b := NewKeyframe(1*time.Second, float32(0))

	got, err := a.CalculateRatioTo(b, 1*time.Second)
	if err != nil {
		t.Fatalf("CalculateRatioTo = %v", err)
	}
	if got != 0 {
		t.Errorf("ratio over a zero interval = %v, want 0", got)
	}
}

func TestKeyframeRoundTrip(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		k := NewKeyframe(1500*time.Millisecond, float32(2.5))
		data, err := k.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes = %v", err)
		}
		if len(data) != 12 {
			t.Fatalf("record size = %d, want 12", len(data))
		}
		got, err := KeyframeFromBytes[float32](data)
		if err != nil {
			t.Fatalf("KeyframeFromBytes = %v", err)
		}
		if got.Position != k.Position || got.Value != k.Value {
			t.Errorf("round trip = %+v, want %+v", got, k)
		}
	})

	t.Run("vector3", func(t *testing.T) {
		k := NewKeyframe(2*time.Second, common.Vector3{1, -2, 3})
		data, err := k.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes = %v", err)
		}
		if len(data) != 8+12 {
			t.Fatalf("record size = %d, want 20", len(data))
		}
		got, err := KeyframeFromBytes[common.Vector3](data)
		if err != nil {
			t.Fatalf("KeyframeFromBytes = %v", err)
		}
		if got.Position != k.Position || got.Value != k.Value {
			t.Errorf("round trip = %+v, want %+v", got, k)
		}
	})

	t.Run("bool", func(t *testing.T) {
		k := NewKeyframe(0, true)
		data, err := k.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes = %v", err)
		}
		if len(data) != 9 {
			t.Fatalf("record size = %d, want 9", len(data))
		}
		got, err := KeyframeFromBytes[bool](data)
		if err != nil {
			t.Fatalf("KeyframeFromBytes = %v", err)
		}
		if got.Value != true {
			t.Errorf("round trip value = %v, want true", got.Value)
		}
	})
}

func TestKeyframeFromBytesUndersized(t *testing.T) {
	_, err := KeyframeFromBytes[float32](make([]byte, 11))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("undersized record error = %v, want ErrFormat", err)
	}
}

func TestKeyframeCodecMissing(t *testing.T) {
	type custom struct{ a int }
	k := NewKeyframe(0, custom{})
	if _, err := k.ToBytes(); !errors.Is(err, ErrNoCodec) {
		t.Fatalf("ToBytes without codec error = %v, want ErrNoCodec", err)
	}
	if _, err := KeyframeFromBytes[custom](make([]byte, 16)); !errors.Is(err, ErrNoCodec) {
		t.Fatalf("FromBytes without codec error = %v, want ErrNoCodec", err)
	}
}
