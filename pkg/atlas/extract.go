package atlas

import (
	"fmt"

	"github.com/Faultbox/aseforge/pkg/ase"
)

// LoopMode is how a runtime player cycles a clip. It is carried through
// from configuration, never derived from the document.
type LoopMode uint8

const (
	LoopForward LoopMode = iota
	LoopReverse
	LoopPingPong
	LoopOnce
)

// String returns the mode name used in configuration and metadata.
func (m LoopMode) String() string {
	switch m {
	case LoopReverse:
		return "reverse"
	case LoopPingPong:
		return "pingpong"
	case LoopOnce:
		return "once"
	default:
		return "forward"
	}
}

// ParseLoopMode parses a configuration loop mode name.
func ParseLoopMode(s string) (LoopMode, error) {
	switch s {
	case "", "forward":
		return LoopForward, nil
	case "reverse":
		return LoopReverse, nil
	case "pingpong":
		return LoopPingPong, nil
	case "once":
		return LoopOnce, nil
	}
	return LoopForward, fmt.Errorf("unknown loop mode %q", s)
}

// TimingMethod tags how a runtime player should interpret the clip's
// frame rates. Carried through from configuration like LoopMode.
type TimingMethod uint8

const (
	// TimingPerFrame plays each step at its own frame rate.
	TimingPerFrame TimingMethod = iota

	// TimingUniform plays the whole clip at the first step's rate.
	TimingUniform
)

// String returns the method name used in configuration and metadata.
func (t TimingMethod) String() string {
	if t == TimingUniform {
		return "uniform"
	}
	return "per-frame"
}

// ParseTimingMethod parses a configuration timing method name.
func ParseTimingMethod(s string) (TimingMethod, error) {
	switch s {
	case "", "per-frame":
		return TimingPerFrame, nil
	case "uniform":
		return TimingUniform, nil
	}
	return TimingPerFrame, fmt.Errorf("unknown timing method %q", s)
}

// Animation is one clip over packed sprites with per-step playback rates.
type Animation struct {
	Sprites    []Sprite     `json:"sprites"`
	FrameRates []float64    `json:"frame_rates"`
	Loop       LoopMode     `json:"loop"`
	Timing     TimingMethod `json:"timing"`
}

// defaultDurationMs replaces non-positive authored durations so a clip
// step always has a finite rate.
const defaultDurationMs = 100

// ExtractAnimations maps named tag ranges over the packed sprites into
// animation clips. durations holds each frame's authored display time in
// milliseconds; a step's frame rate is 1000/duration, derived per frame so
// variable-speed clips survive. Tag bounds are validated against the
// sprite count — out-of-range tags error rather than clamp, since a
// malformed tag is a document defect.
func ExtractAnimations(tags []ase.Tag, durations []int, sprites []Sprite, loop LoopMode, timing TimingMethod) ([]Animation, []string, error) {
	anims := make([]Animation, 0, len(tags))
	names := make([]string, 0, len(tags))

	for _, tag := range tags {
		if tag.From < 0 || tag.From > tag.To || tag.To >= len(sprites) {
			return nil, nil, fmt.Errorf("%w: tag %q [%d, %d] over %d frames",
				ErrTagOutOfRange, tag.Name, tag.From, tag.To, len(sprites))
		}

		n := tag.To - tag.From + 1
		anim := Animation{
			Sprites:    make([]Sprite, 0, n),
			FrameRates: make([]float64, 0, n),
			Loop:       loop,
			Timing:     timing,
		}
		for i := tag.From; i <= tag.To; i++ {
			d := durations[i]
			if d <= 0 {
				d = defaultDurationMs
			}
			anim.Sprites = append(anim.Sprites, sprites[i])
			anim.FrameRates = append(anim.FrameRates, 1000/float64(d))
		}

		anims = append(anims, anim)
		names = append(names, tag.Name)
	}

	return anims, names, nil
}
