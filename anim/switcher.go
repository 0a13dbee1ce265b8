package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/teaspot-studio/zercalo-go/scene"
	"github.com/teaspot-studio/zercalo-go/zlog"
)

/// Switcher is a time-indexed variant selector: first N frames play variant
// 0, the next M frames variant 1, and so on. Used to animate complex
// multi-pose models cheaply.
//
// T is expected to be a pointer (or otherwise reference-like) Animatable,
// the same way *scene.Scene, *Root or another wrapper is used elsewhere
// in this package — mutating the value returned by Current must mutate
// the variant stored in Variants.
type Switcher[T Animatable] struct {
	Variants []T
	// Schedule holds the cumulative end-frame for each variant.
	Schedule []uint32
	Active   uint32
	// LastFrame is the last frame animate() was called with.
	LastFrame uint32
	// Looping controls what happens once the last variant's window ends.
	Looping bool
	// LoopOffset is the epoch start of the current loop; schedule borders
	// are measured relative to it, not to the current variant's own
	// start.
	LoopOffset uint32

	log zlog.Logger
}

// Frame pairs a variant with how many frames it plays for.
type Frame[T Animatable] struct {
	Duration uint32
	Variant  T
}

// NewSwitcher builds a Switcher from a non-empty ordered list of
// (duration, variant) pairs, prefix-summing durations into Schedule.
func NewSwitcher[T Animatable](frames []Frame[T]) *Switcher[T] {
	if len(frames) == 0 {
		panic("anim: Switcher requires at least one variant")
	}
	variants := make([]T, len(frames))
	schedule := make([]uint32, len(frames))
	acc := uint32(0)
	for i, f := range frames {
		variants[i] = f.Variant
		acc += f.Duration
		schedule[i] = acc
	}
	return &Switcher[T]{
		Variants: variants,
		Schedule: schedule,
		Looping:  true,
		log:      zlog.Default(),
	}
}

// WithLogger overrides the logger used for the backward-frame warning.
func (s *Switcher[T]) WithLogger(l zlog.Logger) *Switcher[T] {
	s.log = l
	return s
}

// Current returns the currently active variant.
func (s *Switcher[T]) Current() T {
	return s.Variants[s.Active]
}

// CycleLen returns the total duration of one loop (the last schedule
// entry).
func (s *Switcher[T]) CycleLen() uint32 {
	return s.Schedule[len(s.Schedule)-1]
}

// Animate steps the active variant and then advances (or loops) the
// selector. A backward-time call (frame < LastFrame) logs a warning and
// returns without mutating any state — replays must be tolerable.
func (s *Switcher[T]) Animate(frame uint32) {
	if frame < s.LastFrame {
		s.log.Warnf("Switcher animate frame backward, last frame was %d, but got new %d", s.LastFrame, frame)
		return
	}
	if int(s.Active) >= len(s.Variants) {
		panic("anim: Switcher active index out of range")
	}
	if int(s.Active) >= len(s.Schedule) {
		panic("anim: Switcher active index out of schedule range")
	}

	s.Current().Animate(frame)

	border := s.Schedule[s.Active] + s.LoopOffset
	if frame >= border {
		if int(s.Active) >= len(s.Variants)-1 {
			if s.Looping {
				s.Active = 0
				s.LoopOffset = frame
			}
			// else: stay on the last variant.
		} else {
			s.Active++
		}
	}
	s.LastFrame = frame
}

func (s *Switcher[T]) GetCamera() *scene.Camera {
	return any(s.Current()).(scene.HasCamera).GetCamera()
}

func (s *Switcher[T]) GetMutCamera() *scene.Camera {
	return any(s.Current()).(scene.HasMutCamera).GetMutCamera()
}

func (s *Switcher[T]) GetBoundingVolume() (mgl32.Vec3, mgl32.Vec3) {
	return any(s.Current()).(scene.HasBounding).GetBoundingVolume()
}

func (s *Switcher[T]) GetScene() *scene.Scene {
	return any(s.Current()).(scene.HasScene).GetScene()
}

func (s *Switcher[T]) GetMutScene() *scene.Scene {
	return any(s.Current()).(scene.HasMutScene).GetMutScene()
}
