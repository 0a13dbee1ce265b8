package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestColorPremultipliedRoundTrip(t *testing.T) {
	cases := []ColorRGBA{
		{255, 128, 64, 255},
		{10, 200, 30, 1},
		{0, 0, 0, 255},
		{255, 255, 255, 128},
	}
	for _, c := range cases {
		got := ColorFromPremultiplied(c.AsPremultiplied())
		if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 || absDiff(got.A, c.A) > 1 {
			t.Errorf("round trip of %+v gave %+v, channels must match within +-1", c, got)
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestColorFromPremultipliedSaturatesInsteadOfWrapping(t *testing.T) {
	// Ambient plus several lights can push a channel past full white;
	// the result must clamp to 255, not wrap around uint8's range.
	over := mgl32.Vec4{3.0, 2.0, 1.2, 1.0}
	got := ColorFromPremultiplied(over)
	if got.R != 255 || got.G != 255 || got.B != 255 || got.A != 255 {
		t.Errorf("out-of-range channels must saturate to 255, got %+v", got)
	}
}

func TestColorIsEmpty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Errorf("Empty must report IsEmpty")
	}
	if WhiteOpaque.IsEmpty() {
		t.Errorf("opaque white must not report IsEmpty")
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := WhiteOpaque.WithAlpha(10)
	if c.A != 10 || c.R != 255 {
		t.Errorf("WithAlpha must only change alpha, got %+v", c)
	}
}
