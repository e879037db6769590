package metrics

import "github.com/banshee-data/motion.report/internal/frames"

// GaitMetrics holds range of motion, mean and population standard deviation
// for eight joint groups, over raw signed angles.
type GaitMetrics struct {
	LeftHipRangeOfMotion float64
	LeftHipMean          float64
	LeftHipStdDev        float64

	LeftKneeRangeOfMotion float64
	LeftKneeMean          float64
	LeftKneeStdDev        float64

	LeftAnkleRangeOfMotion float64
	LeftAnkleMean          float64
	LeftAnkleStdDev        float64

	RightHipRangeOfMotion float64
	RightHipMean          float64
	RightHipStdDev        float64

	RightKneeRangeOfMotion float64
	RightKneeMean          float64
	RightKneeStdDev        float64

	RightAnkleRangeOfMotion float64
	RightAnkleMean          float64
	RightAnkleStdDev        float64

	LeftShoulderAbductionRangeOfMotion float64
	LeftShoulderAbductionMean          float64
	LeftShoulderAbductionStdDev        float64

	RightShoulderAbductionRangeOfMotion float64
	RightShoulderAbductionMean          float64
	RightShoulderAbductionStdDev        float64
}

// JointSummary is one joint group of GaitMetrics.
type JointSummary struct {
	RangeOfMotion float64
	Mean          float64
	StdDev        float64
}

// joint summarises a single channel.
func joint(xs []float64) JointSummary {
	return JointSummary{RangeOfMotion: span(xs), Mean: mean(xs), StdDev: popStdDev(xs)}
}

// ankle combines dorsiflexion and plantarflexion. Range of motion is the sum
// of the two channel ranges, not the range of the pooled samples; mean and
// standard deviation are over the pooled samples.
func ankle(dorsi, plantar []float64) JointSummary {
	pooled := make([]float64, 0, len(dorsi)+len(plantar))
	pooled = append(pooled, dorsi...)
	pooled = append(pooled, plantar...)
	return JointSummary{
		RangeOfMotion: span(dorsi) + span(plantar),
		Mean:          mean(pooled),
		StdDev:        popStdDev(pooled),
	}
}

func values(seq []frames.BodyAngleFrame, get func(*frames.BodyAngleFrame) float64) []float64 {
	out := make([]float64, len(seq))
	for i := range seq {
		out[i] = get(&seq[i])
	}
	return out
}

// Gait computes GaitMetrics. An empty sequence yields all zeros.
func Gait(seq []frames.BodyAngleFrame) GaitMetrics {
	var g GaitMetrics

	lh := joint(values(seq, func(f *frames.BodyAngleFrame) float64 { return f.LeftHipFlexion }))
	g.LeftHipRangeOfMotion, g.LeftHipMean, g.LeftHipStdDev = lh.RangeOfMotion, lh.Mean, lh.StdDev

	lk := joint(values(seq, func(f *frames.BodyAngleFrame) float64 { return f.LeftKneeFlexionExtension }))
	g.LeftKneeRangeOfMotion, g.LeftKneeMean, g.LeftKneeStdDev = lk.RangeOfMotion, lk.Mean, lk.StdDev

	la := ankle(
		values(seq, func(f *frames.BodyAngleFrame) float64 { return f.LeftAnkleDorsiflexion }),
		values(seq, func(f *frames.BodyAngleFrame) float64 { return f.LeftAnklePlantarflexion }),
	)
	g.LeftAnkleRangeOfMotion, g.LeftAnkleMean, g.LeftAnkleStdDev = la.RangeOfMotion, la.Mean, la.StdDev

	rh := joint(values(seq, func(f *frames.BodyAngleFrame) float64 { return f.RightHipFlexion }))
	g.RightHipRangeOfMotion, g.RightHipMean, g.RightHipStdDev = rh.RangeOfMotion, rh.Mean, rh.StdDev

	rk := joint(values(seq, func(f *frames.BodyAngleFrame) float64 { return f.RightKneeFlexionExtension }))
	g.RightKneeRangeOfMotion, g.RightKneeMean, g.RightKneeStdDev = rk.RangeOfMotion, rk.Mean, rk.StdDev

	ra := ankle(
		values(seq, func(f *frames.BodyAngleFrame) float64 { return f.RightAnkleDorsiflexion }),
		values(seq, func(f *frames.BodyAngleFrame) float64 { return f.RightAnklePlantarflexion }),
	)
	g.RightAnkleRangeOfMotion, g.RightAnkleMean, g.RightAnkleStdDev = ra.RangeOfMotion, ra.Mean, ra.StdDev

	ls := joint(values(seq, func(f *frames.BodyAngleFrame) float64 { return f.LeftShoulderSideAbductionAdduction }))
	g.LeftShoulderAbductionRangeOfMotion, g.LeftShoulderAbductionMean, g.LeftShoulderAbductionStdDev = ls.RangeOfMotion, ls.Mean, ls.StdDev

	rs := joint(values(seq, func(f *frames.BodyAngleFrame) float64 { return f.RightShoulderSideAbductionAdduction }))
	g.RightShoulderAbductionRangeOfMotion, g.RightShoulderAbductionMean, g.RightShoulderAbductionStdDev = rs.RangeOfMotion, rs.Mean, rs.StdDev

	return g
}

// NamedJoint pairs a joint group label with its summary.
type NamedJoint struct {
	Name string
	JointSummary
}

// Joints lists the eight joint groups in report order, for charting.
func (g GaitMetrics) Joints() []NamedJoint {
	return []NamedJoint{
		{"LeftHip", JointSummary{g.LeftHipRangeOfMotion, g.LeftHipMean, g.LeftHipStdDev}},
		{"LeftKnee", JointSummary{g.LeftKneeRangeOfMotion, g.LeftKneeMean, g.LeftKneeStdDev}},
		{"LeftAnkle", JointSummary{g.LeftAnkleRangeOfMotion, g.LeftAnkleMean, g.LeftAnkleStdDev}},
		{"RightHip", JointSummary{g.RightHipRangeOfMotion, g.RightHipMean, g.RightHipStdDev}},
		{"RightKnee", JointSummary{g.RightKneeRangeOfMotion, g.RightKneeMean, g.RightKneeStdDev}},
		{"RightAnkle", JointSummary{g.RightAnkleRangeOfMotion, g.RightAnkleMean, g.RightAnkleStdDev}},
		{"LeftShoulderAbduction", JointSummary{g.LeftShoulderAbductionRangeOfMotion, g.LeftShoulderAbductionMean, g.LeftShoulderAbductionStdDev}},
		{"RightShoulderAbduction", JointSummary{g.RightShoulderAbductionRangeOfMotion, g.RightShoulderAbductionMean, g.RightShoulderAbductionStdDev}},
	}
}
