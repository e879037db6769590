// Package frames defines the typed, timestamped samples decoded from a
// capture session: joint angles, 3D and 2D landmark positions, hand landmarks,
// body-angle parameters and balance-mat pressure readings.
//
// Timestamps are capture-device clock units. They are not guaranteed to be
// monotonic across concatenated files and nothing in this package sorts by them.
package frames

import "gonum.org/v1/gonum/floats"

// Landmark counts for the position formats.
const (
	BodyLandmarkCount = 33
	HandLandmarkCount = 21
	JointAngleCount   = 12
	BodyAngleCount    = 30
	PressureChannels  = 13
)

// Vec2 is a 2D landmark coordinate.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec3 is a 3D landmark coordinate.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Distance returns the Euclidean distance between a and b.
func (a Vec2) Distance(b Vec2) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// Distance returns the Euclidean distance between a and b.
func (a Vec3) Distance(b Vec3) float64 {
	return floats.Distance([]float64{a.X, a.Y, a.Z}, []float64{b.X, b.Y, b.Z}, 2)
}

// JointAngleFrame holds one .bja line. The source format carries no timestamp
// token, so Timestamp is always zero for decoded frames.
type JointAngleFrame struct {
	LeftShoulder  float64
	LeftElbow     float64
	LeftHip       float64
	LeftKnee      float64
	RightShoulder float64
	RightElbow    float64
	RightHip      float64
	RightKnee     float64
	Neck          float64
	Pelvis        float64
	LeftAnkle     float64
	RightAnkle    float64
	Timestamp     int64
}

// Angles returns the 12 channels in file order.
func (f JointAngleFrame) Angles() [JointAngleCount]float64 {
	return [JointAngleCount]float64{
		f.LeftShoulder, f.LeftElbow, f.LeftHip, f.LeftKnee,
		f.RightShoulder, f.RightElbow, f.RightHip, f.RightKnee,
		f.Neck, f.Pelvis, f.LeftAnkle, f.RightAnkle,
	}
}

// NewJointAngleFrame maps 12 values positionally onto the named channels.
func NewJointAngleFrame(v [JointAngleCount]float64) JointAngleFrame {
	return JointAngleFrame{
		LeftShoulder:  v[0],
		LeftElbow:     v[1],
		LeftHip:       v[2],
		LeftKnee:      v[3],
		RightShoulder: v[4],
		RightElbow:    v[5],
		RightHip:      v[6],
		RightKnee:     v[7],
		Neck:          v[8],
		Pelvis:        v[9],
		LeftAnkle:     v[10],
		RightAnkle:    v[11],
	}
}

// Position3DFrame holds the 33 body landmarks of one .btr line, indexed by
// the Body* constants.
type Position3DFrame struct {
	Landmarks [BodyLandmarkCount]Vec3
	Timestamp int64
}

// Landmark returns the landmark at index i (see the Body* constants).
func (f *Position3DFrame) Landmark(i BodyLandmark) Vec3 { return f.Landmarks[i] }

// Position2DFrame holds the 33 body landmarks of one _body.btr2d line.
type Position2DFrame struct {
	Landmarks [BodyLandmarkCount]Vec2
	Timestamp int64
}

// Landmark returns the landmark at index i (see the Body* constants).
func (f *Position2DFrame) Landmark(i BodyLandmark) Vec2 { return f.Landmarks[i] }

// HandFrame holds the 21 landmarks of one _leftHand/_rightHand.btr2d line.
type HandFrame struct {
	Landmarks [HandLandmarkCount]Vec2
	Timestamp int64
}

// Landmark returns the landmark at index i (see the Hand* constants).
func (f *HandFrame) Landmark(i HandLandmark) Vec2 { return f.Landmarks[i] }

// BalanceMatFrame holds anatomically mapped pressure readings. Index i of
// Left/Right is sensor position L<i>/R<i>; raw decoder slots never appear here.
type BalanceMatFrame struct {
	Left      [PressureChannels]uint16
	Right     [PressureChannels]uint16
	Timestamp int64
}

// Side selects one foot of a BalanceMatFrame.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "Right"
	}
	return "Left"
}

// Sensors returns the 13 readings for one foot.
func (f *BalanceMatFrame) Sensors(s Side) [PressureChannels]uint16 {
	if s == Right {
		return f.Right
	}
	return f.Left
}
