package metrics

import (
	"errors"

	"github.com/banshee-data/motion.report/internal/frames"
)

// HandToMouthMetrics summarises left wrist to left mouth corner and right
// wrist to right mouth corner distances over a session.
type HandToMouthMetrics struct {
	MaxDistanceLeftHandToMouth  float64
	MinDistanceLeftHandToMouth  float64
	AvgDistanceLeftHandToMouth  float64
	MaxDistanceRightHandToMouth float64
	MinDistanceRightHandToMouth float64
	AvgDistanceRightHandToMouth float64
}

// HipCenterMetrics summarises hand and ankle distances to the hip center.
type HipCenterMetrics struct {
	LeftHandToHipCenter   DistanceMetrics
	RightHandToHipCenter  DistanceMetrics
	LeftAnkleToHipCenter  DistanceMetrics
	RightAnkleToHipCenter DistanceMetrics
}

// HipCenterSource supplies a hip-center point for a frame. ok=false skips the
// frame for hip-center distances.
type HipCenterSource interface {
	HipCenter2D(f *frames.Position2DFrame) (c frames.Vec2, ok bool)
	HipCenter3D(f *frames.Position3DFrame) (c frames.Vec3, ok bool)
}

// MidHip places the hip center halfway between the left and right hip
// landmarks.
type MidHip struct{}

func (MidHip) HipCenter2D(f *frames.Position2DFrame) (frames.Vec2, bool) {
	l, r := f.Landmark(frames.BodyLeftHip), f.Landmark(frames.BodyRightHip)
	return frames.Vec2{X: (l.X + r.X) / 2, Y: (l.Y + r.Y) / 2}, true
}

func (MidHip) HipCenter3D(f *frames.Position3DFrame) (frames.Vec3, bool) {
	l, r := f.Landmark(frames.BodyLeftHip), f.Landmark(frames.BodyRightHip)
	return frames.Vec3{X: (l.X + r.X) / 2, Y: (l.Y + r.Y) / 2, Z: (l.Z + r.Z) / 2}, true
}

// distancer is satisfied by frames.Vec2 and frames.Vec3.
type distancer[P any] interface {
	Distance(P) float64
}

func handToMouth[F any, P distancer[P]](seq []F, at func(*F, frames.BodyLandmark) P) (HandToMouthMetrics, error) {
	left := make([]float64, len(seq))
	right := make([]float64, len(seq))
	for i := range seq {
		f := &seq[i]
		left[i] = at(f, frames.BodyLeftWrist).Distance(at(f, frames.BodyMouthLeft))
		right[i] = at(f, frames.BodyRightWrist).Distance(at(f, frames.BodyMouthRight))
	}

	l, err := SummarizeDistances(left)
	if err != nil {
		return HandToMouthMetrics{}, err
	}
	r, err := SummarizeDistances(right)
	if err != nil {
		return HandToMouthMetrics{}, err
	}
	return HandToMouthMetrics{
		MaxDistanceLeftHandToMouth:  l.MaxDistance,
		MinDistanceLeftHandToMouth:  l.MinDistance,
		AvgDistanceLeftHandToMouth:  l.AvgDistance,
		MaxDistanceRightHandToMouth: r.MaxDistance,
		MinDistanceRightHandToMouth: r.MinDistance,
		AvgDistanceRightHandToMouth: r.AvgDistance,
	}, nil
}

func hipCenter[F any, P distancer[P]](seq []F, at func(*F, frames.BodyLandmark) P, center func(*F) (P, bool)) (HipCenterMetrics, error) {
	var lh, rh, la, ra []float64
	for i := range seq {
		f := &seq[i]
		c, ok := center(f)
		if !ok {
			continue
		}
		lh = append(lh, at(f, frames.BodyLeftWrist).Distance(c))
		rh = append(rh, at(f, frames.BodyRightWrist).Distance(c))
		la = append(la, at(f, frames.BodyLeftAnkle).Distance(c))
		ra = append(ra, at(f, frames.BodyRightAnkle).Distance(c))
	}

	var (
		m    HipCenterMetrics
		errs [4]error
	)
	m.LeftHandToHipCenter, errs[0] = SummarizeDistances(lh)
	m.RightHandToHipCenter, errs[1] = SummarizeDistances(rh)
	m.LeftAnkleToHipCenter, errs[2] = SummarizeDistances(la)
	m.RightAnkleToHipCenter, errs[3] = SummarizeDistances(ra)
	for _, err := range errs {
		if err != nil {
			return HipCenterMetrics{}, err
		}
	}
	return m, nil
}

func at2D(f *frames.Position2DFrame, l frames.BodyLandmark) frames.Vec2 { return f.Landmark(l) }
func at3D(f *frames.Position3DFrame, l frames.BodyLandmark) frames.Vec3 { return f.Landmark(l) }

// HandToMouth2D summarises hand-to-mouth distances of 2D body frames.
// An empty sequence returns ErrEmptySeries.
func HandToMouth2D(seq []frames.Position2DFrame) (HandToMouthMetrics, error) {
	return handToMouth(seq, at2D)
}

// HandToMouth3D summarises hand-to-mouth distances of 3D body frames.
// An empty sequence returns ErrEmptySeries.
func HandToMouth3D(seq []frames.Position3DFrame) (HandToMouthMetrics, error) {
	return handToMouth(seq, at3D)
}

// PositionMetrics is the output of one PositionAnalyzer pass. A nil field
// is an omitted section.
type PositionMetrics struct {
	HandToMouth *HandToMouthMetrics
	HipCenter   *HipCenterMetrics
}

// PositionAnalyzer computes distance metrics for one dimensionality. With a
// nil HipCenter no hip-center metrics are produced.
type PositionAnalyzer struct {
	HipCenter HipCenterSource
}

// Analyze2D computes 2D position metrics. Sections whose series come out
// empty are left nil.
func (a PositionAnalyzer) Analyze2D(seq []frames.Position2DFrame) (PositionMetrics, error) {
	var pm PositionMetrics
	h, err := HandToMouth2D(seq)
	if err := keep(&pm.HandToMouth, h, err); err != nil {
		return pm, err
	}
	if a.HipCenter == nil {
		return pm, nil
	}
	c, err := hipCenter(seq, at2D, a.HipCenter.HipCenter2D)
	return pm, keep(&pm.HipCenter, c, err)
}

// Analyze3D computes 3D position metrics. Sections whose series come out
// empty are left nil.
func (a PositionAnalyzer) Analyze3D(seq []frames.Position3DFrame) (PositionMetrics, error) {
	var pm PositionMetrics
	h, err := HandToMouth3D(seq)
	if err := keep(&pm.HandToMouth, h, err); err != nil {
		return pm, err
	}
	if a.HipCenter == nil {
		return pm, nil
	}
	c, err := hipCenter(seq, at3D, a.HipCenter.HipCenter3D)
	return pm, keep(&pm.HipCenter, c, err)
}

// keep stores v in *dst on success and swallows ErrEmptySeries.
func keep[T any](dst **T, v T, err error) error {
	switch {
	case err == nil:
		*dst = &v
		return nil
	case errors.Is(err, ErrEmptySeries):
		return nil
	}
	return err
}
