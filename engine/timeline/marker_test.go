package timeline

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewMarker(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := NewMarker(2*time.Second, "walk-start")
		if err != nil {
			t.Fatalf("NewMarker = %v", err)
		}
		if m.Position != 2*time.Second || m.Identifier != "walk-start" {
			t.Errorf("marker = %+v", m)
		}
	})

	t.Run("empty identifier", func(t *testing.T) {
		if _, err := NewMarker(0, ""); err == nil {
			t.Fatal("empty identifier must be rejected")
		}
	})

	t.Run("at the byte limit", func(t *testing.T) {
		if _, err := NewMarker(0, strings.Repeat("a", MaxMarkerIdentifierBytes)); err != nil {
			t.Fatalf("512-byte identifier rejected: %v", err)
		}
	})

	t.Run("over the byte limit", func(t *testing.T) {
		if _, err := NewMarker(0, strings.Repeat("a", MaxMarkerIdentifierBytes+1)); err == nil {
			t.Fatal("513-byte identifier must be rejected")
		}
	})

	t.Run("multibyte identifiers count bytes", func(t *testing.T) {
		// 171 three-byte runes are 513 bytes.
		if _, err := NewMarker(0, strings.Repeat("日", 171)); err == nil {
			t.Fatal("identifier over 512 UTF-8 bytes must be rejected")
		}
	})
}

func TestMarkerRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		position   time.Duration
		identifier string
	}{
		{"ascii", 1500 * time.Millisecond, "run"},
		{"zero position", 0, "start"},
		{"multibyte", 3 * time.Second, "ジャンプ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMarker(tt.position, tt.identifier)
			if err != nil {
				t.Fatalf("NewMarker = %v", err)
			}
			data := m.ToBytes()
			if len(data) != 12+len(tt.identifier) {
				t.Fatalf("record size = %d, want %d", len(data), 12+len(tt.identifier))
			}
			got, err := MarkerFromBytes(data)
			if err != nil {
				t.Fatalf("MarkerFromBytes = %v", err)
			}
			if got != m {
				t.Errorf("round trip = %+v, want %+v", got, m)
			}
		})
	}
}

func TestMarkerFromBytesInvalid(t *testing.T) {
	valid, _ := NewMarker(time.Second, "clip")

	t.Run("undersized header", func(t *testing.T) {
		if _, err := MarkerFromBytes(make([]byte, 11)); !errors.Is(err, ErrFormat) {
			t.Fatalf("error = %v, want ErrFormat", err)
		}
	})

	t.Run("zero identifier length", func(t *testing.T) {
		data := valid.ToBytes()
		data[8], data[9], data[10], data[11] = 0, 0, 0, 0
		if _, err := MarkerFromBytes(data); !errors.Is(err, ErrFormat) {
			t.Fatalf("error = %v, want ErrFormat", err)
		}
	})

	t.Run("oversized identifier length", func(t *testing.T) {
		data := valid.ToBytes()
		data[8], data[9] = 0x01, 0x02 // 513
		if _, err := MarkerFromBytes(data); !errors.Is(err, ErrFormat) {
			t.Fatalf("error = %v, want ErrFormat", err)
		}
	})

	t.Run("truncated identifier", func(t *testing.T) {
		data := valid.ToBytes()
		if _, err := MarkerFromBytes(data[:len(data)-1]); !errors.Is(err, ErrFormat) {
			t.Fatalf("error = %v, want ErrFormat", err)
		}
	})
}
