package input

import "math/rand/v2"

// Script is a Source that replays one batch of events per Poll call. Once the
// batches run out it yields nothing, or a single quit event when QuitAtEnd is
// set.
type Script struct {
	Frames    [][]Event
	QuitAtEnd bool

	next int
}

// NewScript returns a Script replaying frames in order.
func NewScript(frames ...[]Event) *Script {
	return &Script{Frames: frames}
}

// Poll appends the next batch of events to dst.
func (s *Script) Poll(dst []Event) []Event {
	if s.next < len(s.Frames) {
		dst = append(dst, s.Frames[s.next]...)
		s.next++
		return dst
	}
	if s.QuitAtEnd {
		s.QuitAtEnd = false
		dst = append(dst, Quit())
	}
	return dst
}

// Remaining returns the number of batches not yet replayed.
func (s *Script) Remaining() int { return len(s.Frames) - s.next }

// steeringKeys are the keys a random script may press.
var steeringKeys = []Key{KeyW, KeyA, KeyS, KeyD, KeySpace}

// RandomScript builds a deterministic script of the given length that presses
// and releases steering keys. Each frame toggles a key with probability 1/4.
// The script ends with a quit event.
func RandomScript(seed int64, frames int) *Script {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	held := map[Key]bool{}
	out := make([][]Event, frames)
	for i := range out {
		if rng.IntN(4) != 0 {
			continue
		}
		k := steeringKeys[rng.IntN(len(steeringKeys))]
		if held[k] {
			out[i] = []Event{KeyUp(k)}
		} else {
			out[i] = []Event{KeyDown(k, 0)}
		}
		held[k] = !held[k]
	}
	return &Script{Frames: out, QuitAtEnd: true}
}
