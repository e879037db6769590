package metrics

import (
	"strings"

	"github.com/banshee-data/motion.report/internal/frames"
)

// Zone is an anatomical region of one foot on the balance mat.
type Zone int

const (
	Front Zone = iota
	Mid
	Heel
)

var zoneNames = [...]string{Front: "Front", Mid: "Mid", Heel: "Heel"}

func (z Zone) String() string { return zoneNames[z] }

// Zones lists the zones in label order.
var Zones = [...]Zone{Front, Mid, Heel}

// averageWindow is the half-open channel range [lo, hi) averaged per frame.
// The Front and Mid windows overlap on channels 3 and 4.
var averageWindow = [...][2]int{
	Front: {0, 5},
	Mid:   {3, 7},
	Heel:  {9, 13},
}

// activeRange is the inclusive channel range tested for activity.
var activeRange = [...][2]int{
	Front: {0, 4},
	Mid:   {3, 7},
	Heel:  {9, 12},
}

// UnknownPlacement is the placement order of a foot with no frames.
const UnknownPlacement = "Unknown"

// DefaultPlacementSeparator joins zone names in a placement label.
const DefaultPlacementSeparator = "-"

// FootMetrics holds pressure-zone statistics, transition counts and the
// dominant placement order for both feet.
type FootMetrics struct {
	LeftFrontAvg    float64
	LeftFrontStdDev float64

	LeftMidAvg    float64
	LeftMidStdDev float64

	LeftHeelAvg    float64
	LeftHeelStdDev float64

	RightFrontAvg    float64
	RightFrontStdDev float64

	RightMidAvg    float64
	RightMidStdDev float64

	RightHeelAvg    float64
	RightHeelStdDev float64

	LeftHeelToFrontCount  int
	LeftFrontToHeelCount  int
	RightHeelToFrontCount int
	RightFrontToHeelCount int

	LeftFootPlacementOrder  string
	RightFootPlacementOrder string
}

// WindowAverage is the mean pressure over the zone's averaging window.
func WindowAverage(sensors [frames.PressureChannels]uint16, z Zone) float64 {
	lo, hi := averageWindow[z][0], min(averageWindow[z][1], len(sensors))
	if hi <= lo {
		return 0
	}
	var sum float64
	for _, v := range sensors[lo:hi] {
		sum += float64(v)
	}
	return sum / float64(hi-lo)
}

// ZoneActive reports whether any channel in the zone's activity range is
// nonzero.
func ZoneActive(sensors [frames.PressureChannels]uint16, z Zone) bool {
	for _, v := range sensors[activeRange[z][0] : activeRange[z][1]+1] {
		if v > 0 {
			return true
		}
	}
	return false
}

// PlacementLabel names the active zones of one frame in Front, Mid, Heel
// order joined by sep, e.g. "Front-Heel". No active zone gives "".
func PlacementLabel(sensors [frames.PressureChannels]uint16, sep string) string {
	parts := make([]string, 0, len(Zones))
	for _, z := range Zones {
		if ZoneActive(sensors, z) {
			parts = append(parts, z.String())
		}
	}
	return strings.Join(parts, sep)
}

// DominantLabel returns the most frequent label. Ties go to the label seen
// first; an empty input gives UnknownPlacement.
func DominantLabel(labels []string) string {
	if len(labels) == 0 {
		return UnknownPlacement
	}
	counts := make(map[string]int)
	var order []string
	for _, l := range labels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}
	best := order[0]
	for _, l := range order[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best
}

// ZoneSeries is the per-frame window average of one zone of one foot.
func ZoneSeries(seq []frames.BalanceMatFrame, side frames.Side, z Zone) []float64 {
	out := make([]float64, len(seq))
	for i := range seq {
		out[i] = WindowAverage(seq[i].Sensors(side), z)
	}
	return out
}

// heelAndFront is the predicate behind both transition counters.
func heelAndFront(sensors [frames.PressureChannels]uint16) bool {
	return ZoneActive(sensors, Heel) && ZoneActive(sensors, Front)
}

// transitionCount counts consecutive frame pairs that both satisfy pred.
func transitionCount(seq []frames.BalanceMatFrame, side frames.Side, pred func([frames.PressureChannels]uint16) bool) int {
	n := 0
	for i := 1; i < len(seq); i++ {
		if pred(seq[i-1].Sensors(side)) && pred(seq[i].Sensors(side)) {
			n++
		}
	}
	return n
}

// FootAnalyzer computes FootMetrics. The zero value uses
// DefaultPlacementSeparator.
type FootAnalyzer struct {
	Separator string
}

// Foot computes FootMetrics with the default separator.
func Foot(seq []frames.BalanceMatFrame) FootMetrics {
	return FootAnalyzer{}.Analyze(seq)
}

// Analyze computes FootMetrics. With no frames every average is 0 and both
// placement orders are UnknownPlacement.
//
// The heel-to-front and front-to-heel counters test the same predicate
// (heel and front both active in frames i-1 and i), so they are always
// equal.
func (a FootAnalyzer) Analyze(seq []frames.BalanceMatFrame) FootMetrics {
	sep := a.Separator
	if sep == "" {
		sep = DefaultPlacementSeparator
	}

	var m FootMetrics
	zone := func(side frames.Side, z Zone) (avg, sd float64) {
		s := ZoneSeries(seq, side, z)
		return mean(s), popStdDev(s)
	}
	m.LeftFrontAvg, m.LeftFrontStdDev = zone(frames.Left, Front)
	m.LeftMidAvg, m.LeftMidStdDev = zone(frames.Left, Mid)
	m.LeftHeelAvg, m.LeftHeelStdDev = zone(frames.Left, Heel)
	m.RightFrontAvg, m.RightFrontStdDev = zone(frames.Right, Front)
	m.RightMidAvg, m.RightMidStdDev = zone(frames.Right, Mid)
	m.RightHeelAvg, m.RightHeelStdDev = zone(frames.Right, Heel)

	m.LeftHeelToFrontCount = transitionCount(seq, frames.Left, heelAndFront)
	m.LeftFrontToHeelCount = transitionCount(seq, frames.Left, heelAndFront)
	m.RightHeelToFrontCount = transitionCount(seq, frames.Right, heelAndFront)
	m.RightFrontToHeelCount = transitionCount(seq, frames.Right, heelAndFront)

	m.LeftFootPlacementOrder = DominantLabel(placementLabels(seq, frames.Left, sep))
	m.RightFootPlacementOrder = DominantLabel(placementLabels(seq, frames.Right, sep))
	return m
}

func placementLabels(seq []frames.BalanceMatFrame, side frames.Side, sep string) []string {
	out := make([]string, len(seq))
	for i := range seq {
		out[i] = PlacementLabel(seq[i].Sensors(side), sep)
	}
	return out
}

// ZoneAverages returns the zone averages of both feet in Front, Mid, Heel
// order, for charting.
func (m FootMetrics) ZoneAverages() (labels []string, left, right []float64) {
	return []string{"Front", "Mid", "Heel"},
		[]float64{m.LeftFrontAvg, m.LeftMidAvg, m.LeftHeelAvg},
		[]float64{m.RightFrontAvg, m.RightMidAvg, m.RightHeelAvg}
}
