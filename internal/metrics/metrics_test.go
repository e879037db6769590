package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/motion.report/internal/frames"
)

const eps = 1e-9

func bodyAngles(set func(i int, f *frames.BodyAngleFrame), n int) []frames.BodyAngleFrame {
	out := make([]frames.BodyAngleFrame, n)
	for i := range out {
		set(i, &out[i])
	}
	return out
}

func TestStatsHelpers_Empty(t *testing.T) {
	assert.Zero(t, span(nil))
	assert.Zero(t, mean(nil))
	assert.Zero(t, popStdDev(nil))

	_, err := SummarizeDistances(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestPopStdDev(t *testing.T) {
	// Population, not sample: {2,4,4,4,5,5,7,9} has sd exactly 2.
	assert.InDelta(t, 2.0, popStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), eps)
	assert.InDelta(t, 5.0, mean([]float64{2, 4, 4, 4, 5, 5, 7, 9}), eps)
}

func TestBodyAngleStats(t *testing.T) {
	seq := bodyAngles(func(i int, f *frames.BodyAngleFrame) {
		f.LeftHipFlexion = []float64{-30, 10, 20}[i]
		f.RightKneeFlexionExtension = 5
	}, 3)

	stats := BodyAngleStats(seq)
	assert.Len(t, stats, frames.BodyAngleCount)

	hip := stats["leftHipFlexion"]
	assert.Equal(t, AngleStat{Min: 10, Max: 30, RangeOfMotion: 20}, hip, "absolute values")

	knee := stats["rightKneeFlexion_Extension"]
	assert.Equal(t, AngleStat{Min: 5, Max: 5, RangeOfMotion: 0}, knee)

	assert.Empty(t, BodyAngleStats(nil), "no samples means no channels")
}

func TestGait_AnkleCombination(t *testing.T) {
	seq := bodyAngles(func(i int, f *frames.BodyAngleFrame) {
		f.LeftAnkleDorsiflexion = []float64{0, 10}[i]
		f.LeftAnklePlantarflexion = []float64{0, 5}[i]
	}, 2)

	g := Gait(seq)
	assert.InDelta(t, 15.0, g.LeftAnkleRangeOfMotion, eps)
	assert.InDelta(t, 3.75, g.LeftAnkleMean, eps)
	// {0,10,0,5}: deviations -3.75, 6.25, -3.75, 1.25
	wantSD := math.Sqrt((3.75*3.75 + 6.25*6.25 + 3.75*3.75 + 1.25*1.25) / 4)
	assert.InDelta(t, wantSD, g.LeftAnkleStdDev, eps)
}

func TestGait_SignedChannels(t *testing.T) {
	seq := bodyAngles(func(i int, f *frames.BodyAngleFrame) {
		f.LeftHipFlexion = []float64{-10, 10}[i]
		f.RightKneeFlexionExtension = []float64{1, 3}[i]
		f.LeftShoulderSideAbductionAdduction = []float64{-4, -2}[i]
		f.RightShoulderSideAbductionAdduction = 7
		f.RightAnkleDorsiflexion = []float64{2, 4}[i]
	}, 2)

	g := Gait(seq)
	assert.InDelta(t, 20.0, g.LeftHipRangeOfMotion, eps)
	assert.InDelta(t, 0.0, g.LeftHipMean, eps)
	assert.InDelta(t, 10.0, g.LeftHipStdDev, eps)

	assert.InDelta(t, 2.0, g.RightKneeRangeOfMotion, eps)
	assert.InDelta(t, 2.0, g.RightKneeMean, eps)
	assert.InDelta(t, 1.0, g.RightKneeStdDev, eps)

	assert.InDelta(t, -3.0, g.LeftShoulderAbductionMean, eps)
	assert.InDelta(t, 7.0, g.RightShoulderAbductionMean, eps)
	assert.Zero(t, g.RightShoulderAbductionStdDev)

	assert.InDelta(t, 2.0, g.RightAnkleRangeOfMotion, eps)
	assert.InDelta(t, 1.5, g.RightAnkleMean, eps, "pooled {2,4,0,0}")

	joints := g.Joints()
	require.Len(t, joints, 8)
	assert.Equal(t, "LeftHip", joints[0].Name)
	assert.InDelta(t, 20.0, joints[0].RangeOfMotion, eps)
}

func TestGait_Empty(t *testing.T) {
	assert.Equal(t, GaitMetrics{}, Gait(nil))
}

func mat(left, right [13]uint16) frames.BalanceMatFrame {
	return frames.BalanceMatFrame{Left: left, Right: right}
}

func TestFoot_WindowAverages(t *testing.T) {
	a := [13]uint16{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130}
	b := [13]uint16{}
	seq := []frames.BalanceMatFrame{mat(a, b), mat(b, a)}

	// Front: mean of channels 0..4 inclusive, averaged over frames.
	assert.InDelta(t, 30.0, WindowAverage(a, Front), eps)
	assert.InDelta(t, 55.0, WindowAverage(a, Mid), eps) // 40,50,60,70
	assert.InDelta(t, 115.0, WindowAverage(a, Heel), eps)

	m := Foot(seq)
	assert.InDelta(t, 15.0, m.LeftFrontAvg, eps)
	assert.InDelta(t, 15.0, m.LeftFrontStdDev, eps)
	assert.InDelta(t, 27.5, m.LeftMidAvg, eps)
	assert.InDelta(t, 57.5, m.RightHeelAvg, eps)
	assert.InDelta(t, 57.5, m.RightHeelStdDev, eps)
}

func TestFoot_LeftFrontAvgIsMeanOfFrameMeans(t *testing.T) {
	seq := []frames.BalanceMatFrame{
		mat([13]uint16{1, 2, 3, 4, 5, 999}, [13]uint16{}),
		mat([13]uint16{5, 5, 5, 5, 5}, [13]uint16{}),
		mat([13]uint16{0, 0, 0, 0, 10}, [13]uint16{}),
	}
	want := (3.0 + 5.0 + 2.0) / 3
	assert.InDelta(t, want, Foot(seq).LeftFrontAvg, eps)
}

func TestFoot_Transitions(t *testing.T) {
	both := [13]uint16{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	front := [13]uint16{0, 0, 0, 0, 1}
	none := [13]uint16{}

	seq := []frames.BalanceMatFrame{
		mat(both, none),
		mat(both, both),
		mat(both, both),
		mat(front, both),
		mat(both, none),
	}
	m := Foot(seq)
	assert.Equal(t, 2, m.LeftHeelToFrontCount)
	assert.Equal(t, m.LeftHeelToFrontCount, m.LeftFrontToHeelCount)
	assert.Equal(t, 2, m.RightHeelToFrontCount)
	assert.Equal(t, m.RightHeelToFrontCount, m.RightFrontToHeelCount)
}

func TestPlacementLabel(t *testing.T) {
	tests := []struct {
		name    string
		sensors [13]uint16
		want    string
	}{
		{"none", [13]uint16{}, ""},
		{"front only", [13]uint16{1}, "Front"},
		{"front and mid overlap", [13]uint16{0, 0, 0, 1}, "Front-Mid"},
		{"mid only", [13]uint16{0, 0, 0, 0, 0, 0, 0, 2}, "Mid"},
		{"front heel", [13]uint16{0, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4}, "Front-Heel"},
		{"channel 8 belongs to no zone", [13]uint16{0, 0, 0, 0, 0, 0, 0, 0, 5}, ""},
		{"mid heel", [13]uint16{0, 0, 0, 0, 0, 1, 0, 0, 0, 1}, "Mid-Heel"},
		{"all zones", [13]uint16{0, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, 0, 1}, "Front-Mid-Heel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlacementLabel(tt.sensors, "-"))
		})
	}

	assert.Equal(t, "Front|Heel", PlacementLabel([13]uint16{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, "|"))
}

func TestDominantLabel(t *testing.T) {
	assert.Equal(t, "Front-Heel", DominantLabel([]string{"Front-Heel", "Front-Heel", "Mid"}))
	assert.Equal(t, "Mid", DominantLabel([]string{"Mid", "Heel", "Heel", "Mid"}), "tie goes to first seen")
	assert.Equal(t, "", DominantLabel([]string{"", "", "Front"}))
	assert.Equal(t, UnknownPlacement, DominantLabel(nil))
}

func TestFoot_PlacementOrder(t *testing.T) {
	frontHeel := [13]uint16{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	mid := [13]uint16{0, 0, 0, 0, 0, 9}
	seq := []frames.BalanceMatFrame{mat(frontHeel, mid), mat(frontHeel, mid), mat(mid, frontHeel)}

	m := Foot(seq)
	assert.Equal(t, "Front-Heel", m.LeftFootPlacementOrder)
	assert.Equal(t, "Mid", m.RightFootPlacementOrder)

	m = FootAnalyzer{Separator: "+"}.Analyze(seq)
	assert.Equal(t, "Front+Heel", m.LeftFootPlacementOrder)
}

func TestFoot_Empty(t *testing.T) {
	m := Foot(nil)
	assert.Zero(t, m.LeftFrontAvg)
	assert.Zero(t, m.RightHeelStdDev)
	assert.Zero(t, m.LeftHeelToFrontCount)
	assert.Equal(t, UnknownPlacement, m.LeftFootPlacementOrder)
	assert.Equal(t, UnknownPlacement, m.RightFootPlacementOrder)

	labels, left, right := m.ZoneAverages()
	assert.Equal(t, []string{"Front", "Mid", "Heel"}, labels)
	assert.Len(t, left, 3)
	assert.Len(t, right, 3)
}

func body2D(lw, ml, rw, mr frames.Vec2) frames.Position2DFrame {
	var f frames.Position2DFrame
	f.Landmarks[frames.BodyLeftWrist] = lw
	f.Landmarks[frames.BodyMouthLeft] = ml
	f.Landmarks[frames.BodyRightWrist] = rw
	f.Landmarks[frames.BodyMouthRight] = mr
	return f
}

func TestHandToMouth2D(t *testing.T) {
	seq := []frames.Position2DFrame{
		body2D(frames.Vec2{X: 3, Y: 4}, frames.Vec2{}, frames.Vec2{X: 1}, frames.Vec2{}),
		body2D(frames.Vec2{X: 6, Y: 8}, frames.Vec2{}, frames.Vec2{X: 0, Y: 2}, frames.Vec2{}),
	}
	m, err := HandToMouth2D(seq)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, m.MaxDistanceLeftHandToMouth, eps)
	assert.InDelta(t, 5.0, m.MinDistanceLeftHandToMouth, eps)
	assert.InDelta(t, 7.5, m.AvgDistanceLeftHandToMouth, eps)
	assert.InDelta(t, 2.0, m.MaxDistanceRightHandToMouth, eps)
	assert.InDelta(t, 1.0, m.MinDistanceRightHandToMouth, eps)
	assert.InDelta(t, 1.5, m.AvgDistanceRightHandToMouth, eps)

	_, err = HandToMouth2D(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestHandToMouth3D(t *testing.T) {
	var f frames.Position3DFrame
	f.Landmarks[frames.BodyLeftWrist] = frames.Vec3{X: 1, Y: 2, Z: 2}
	f.Landmarks[frames.BodyMouthLeft] = frames.Vec3{}
	f.Landmarks[frames.BodyRightWrist] = frames.Vec3{Z: 4}
	f.Landmarks[frames.BodyMouthRight] = frames.Vec3{Z: 1}

	m, err := HandToMouth3D([]frames.Position3DFrame{f})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, m.AvgDistanceLeftHandToMouth, eps)
	assert.InDelta(t, 3.0, m.MaxDistanceRightHandToMouth, eps)
}

func TestPositionAnalyzer(t *testing.T) {
	var f frames.Position2DFrame
	f.Landmarks[frames.BodyLeftHip] = frames.Vec2{X: -1}
	f.Landmarks[frames.BodyRightHip] = frames.Vec2{X: 1}
	f.Landmarks[frames.BodyLeftWrist] = frames.Vec2{Y: 2}
	f.Landmarks[frames.BodyRightWrist] = frames.Vec2{Y: -3}
	f.Landmarks[frames.BodyLeftAnkle] = frames.Vec2{X: 4}
	f.Landmarks[frames.BodyRightAnkle] = frames.Vec2{X: -5}
	seq := []frames.Position2DFrame{f}

	t.Run("no hip-center source", func(t *testing.T) {
		pm, err := PositionAnalyzer{}.Analyze2D(seq)
		require.NoError(t, err)
		require.NotNil(t, pm.HandToMouth)
		assert.Nil(t, pm.HipCenter)
	})

	t.Run("mid hip", func(t *testing.T) {
		pm, err := PositionAnalyzer{HipCenter: MidHip{}}.Analyze2D(seq)
		require.NoError(t, err)
		require.NotNil(t, pm.HipCenter)
		assert.InDelta(t, 2.0, pm.HipCenter.LeftHandToHipCenter.AvgDistance, eps)
		assert.InDelta(t, 3.0, pm.HipCenter.RightHandToHipCenter.MaxDistance, eps)
		assert.InDelta(t, 4.0, pm.HipCenter.LeftAnkleToHipCenter.MinDistance, eps)
		assert.InDelta(t, 5.0, pm.HipCenter.RightAnkleToHipCenter.AvgDistance, eps)
	})

	t.Run("empty sequence omits everything", func(t *testing.T) {
		pm, err := PositionAnalyzer{HipCenter: MidHip{}}.Analyze2D(nil)
		require.NoError(t, err)
		assert.Nil(t, pm.HandToMouth)
		assert.Nil(t, pm.HipCenter)

		pm, err = PositionAnalyzer{HipCenter: MidHip{}}.Analyze3D(nil)
		require.NoError(t, err)
		assert.Nil(t, pm.HandToMouth)
		assert.Nil(t, pm.HipCenter)
	})

	t.Run("source that never answers", func(t *testing.T) {
		pm, err := PositionAnalyzer{HipCenter: noHip{}}.Analyze2D(seq)
		require.NoError(t, err)
		assert.NotNil(t, pm.HandToMouth)
		assert.Nil(t, pm.HipCenter)
	})

	t.Run("3d mid hip", func(t *testing.T) {
		var g frames.Position3DFrame
		g.Landmarks[frames.BodyLeftHip] = frames.Vec3{Z: 2}
		g.Landmarks[frames.BodyRightHip] = frames.Vec3{Z: 4}
		g.Landmarks[frames.BodyLeftWrist] = frames.Vec3{Z: 3}
		pm, err := PositionAnalyzer{HipCenter: MidHip{}}.Analyze3D([]frames.Position3DFrame{g})
		require.NoError(t, err)
		require.NotNil(t, pm.HipCenter)
		assert.InDelta(t, 0.0, pm.HipCenter.LeftHandToHipCenter.AvgDistance, eps)
	})
}

type noHip struct{}

func (noHip) HipCenter2D(*frames.Position2DFrame) (frames.Vec2, bool) { return frames.Vec2{}, false }
func (noHip) HipCenter3D(*frames.Position3DFrame) (frames.Vec3, bool) { return frames.Vec3{}, false }

func TestHipCenter_EmptySeriesError(t *testing.T) {
	seq := []frames.Position2DFrame{{}}
	_, err := hipCenter(seq, at2D, noHip{}.HipCenter2D)
	assert.ErrorIs(t, err, ErrEmptySeries)
}
