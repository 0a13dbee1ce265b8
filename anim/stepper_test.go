package anim

import "testing"

func TestStepperInvokesMutatorAfterAnimate(t *testing.T) {
	v := newVariant()
	var seen []uint32
	st := NewStepper(v, func(value **sceneVariant, frame uint32) {
		seen = append(seen, frame)
		(*value).Scene.Ambient.R = uint8(frame)
	})

	for frame := uint32(0); frame < 3; frame++ {
		st.Animate(frame)
	}

	if len(v.animated) != 3 {
		t.Fatalf("inner value's own Animate must run every frame, got %d calls", len(v.animated))
	}
	if len(seen) != 3 || seen[2] != 2 {
		t.Fatalf("mutator must run once per frame with the current frame number, got %v", seen)
	}
	if v.Scene.Ambient.R != 2 {
		t.Fatalf("mutator must be able to mutate the wrapped value in place")
	}
}
