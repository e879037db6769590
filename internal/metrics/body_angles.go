package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/motion.report/internal/frames"
)

// AngleStat is the descriptive summary of one body-angle channel.
type AngleStat struct {
	Min           float64
	Max           float64
	RangeOfMotion float64
}

// BodyAngleStats summarises every channel of frames.BodyAngleChannels over
// the absolute values of its samples. Channels without samples are left out
// of the map, so an empty sequence yields an empty map.
func BodyAngleStats(seq []frames.BodyAngleFrame) map[string]AngleStat {
	out := make(map[string]AngleStat, len(frames.BodyAngleChannels))
	if len(seq) == 0 {
		return out
	}
	for _, ch := range frames.BodyAngleChannels {
		vals := ch.Values(seq)
		for i, v := range vals {
			vals[i] = math.Abs(v)
		}
		lo, hi := floats.Min(vals), floats.Max(vals)
		out[ch.Name] = AngleStat{Min: lo, Max: hi, RangeOfMotion: hi - lo}
	}
	return out
}
