package frames

// BodyAngleFrame holds one .bap line: 30 flexion/extension/abduction/rotation
// angles in degrees followed by a timestamp.
type BodyAngleFrame struct {
	LeftShoulderFlexion                 float64
	LeftShoulderExtension               float64
	LeftElbowFlexionExtension           float64
	LeftHipFlexion                      float64
	LeftHipExtension                    float64
	LeftKneeFlexionExtension            float64
	LeftAnkleDorsiflexion               float64
	LeftAnklePlantarflexion             float64
	RightShoulderFlexion                float64
	RightShoulderExtension              float64
	RightElbowFlexionExtension          float64
	RightHipFlexion                     float64
	RightHipExtension                   float64
	RightKneeFlexionExtension           float64
	RightAnkleDorsiflexion              float64
	RightAnklePlantarflexion            float64
	LeftTrunkFlexion                    float64
	LeftTrunkExtension                  float64
	RightTrunkFlexion                   float64
	RightTrunkExtension                 float64
	LeftTrunkRotation                   float64
	RightTrunkRotation                  float64
	LeftTrunkLateralFlexion             float64
	RightTrunkLateralFlexion            float64
	LeftShoulderSideAbductionAdduction  float64
	RightShoulderSideAbductionAdduction float64
	LeftHipAbduction                    float64
	LeftHipAdduction                    float64
	RightHipAbduction                   float64
	RightHipAdduction                   float64
	Timestamp                           int64
}

// BodyAngleChannel names one numeric channel of a BodyAngleFrame and how to
// read it. Name is the key used in the report, so it must stay stable.
type BodyAngleChannel struct {
	Name string
	Get  func(*BodyAngleFrame) float64
	set  func(*BodyAngleFrame, float64)
}

// BodyAngleChannels lists every angle channel in .bap column order. Anything
// that iterates body-angle channels goes through this table; adding a channel
// here is enough for it to show up in descriptive statistics.
var BodyAngleChannels = [BodyAngleCount]BodyAngleChannel{
	{"leftShoulderFlexion", func(f *BodyAngleFrame) float64 { return f.LeftShoulderFlexion }, func(f *BodyAngleFrame, v float64) { f.LeftShoulderFlexion = v }},
	{"leftShoulderExtension", func(f *BodyAngleFrame) float64 { return f.LeftShoulderExtension }, func(f *BodyAngleFrame, v float64) { f.LeftShoulderExtension = v }},
	{"leftElbowFlexion_Extension", func(f *BodyAngleFrame) float64 { return f.LeftElbowFlexionExtension }, func(f *BodyAngleFrame, v float64) { f.LeftElbowFlexionExtension = v }},
	{"leftHipFlexion", func(f *BodyAngleFrame) float64 { return f.LeftHipFlexion }, func(f *BodyAngleFrame, v float64) { f.LeftHipFlexion = v }},
	{"leftHipExtension", func(f *BodyAngleFrame) float64 { return f.LeftHipExtension }, func(f *BodyAngleFrame, v float64) { f.LeftHipExtension = v }},
	{"leftKneeFlexion_Extension", func(f *BodyAngleFrame) float64 { return f.LeftKneeFlexionExtension }, func(f *BodyAngleFrame, v float64) { f.LeftKneeFlexionExtension = v }},
	{"leftAnkleDorsiflexion", func(f *BodyAngleFrame) float64 { return f.LeftAnkleDorsiflexion }, func(f *BodyAngleFrame, v float64) { f.LeftAnkleDorsiflexion = v }},
	{"leftAnklePlantarflexion", func(f *BodyAngleFrame) float64 { return f.LeftAnklePlantarflexion }, func(f *BodyAngleFrame, v float64) { f.LeftAnklePlantarflexion = v }},
	{"rightShoulderFlexion", func(f *BodyAngleFrame) float64 { return f.RightShoulderFlexion }, func(f *BodyAngleFrame, v float64) { f.RightShoulderFlexion = v }},
	{"rightShoulderExtension", func(f *BodyAngleFrame) float64 { return f.RightShoulderExtension }, func(f *BodyAngleFrame, v float64) { f.RightShoulderExtension = v }},
	{"rightElbowFlexion_Extension", func(f *BodyAngleFrame) float64 { return f.RightElbowFlexionExtension }, func(f *BodyAngleFrame, v float64) { f.RightElbowFlexionExtension = v }},
	{"rightHipFlexion", func(f *BodyAngleFrame) float64 { return f.RightHipFlexion }, func(f *BodyAngleFrame, v float64) { f.RightHipFlexion = v }},
	{"rightHipExtension", func(f *BodyAngleFrame) float64 { return f.RightHipExtension }, func(f *BodyAngleFrame, v float64) { f.RightHipExtension = v }},
	{"rightKneeFlexion_Extension", func(f *BodyAngleFrame) float64 { return f.RightKneeFlexionExtension }, func(f *BodyAngleFrame, v float64) { f.RightKneeFlexionExtension = v }},
	{"rightAnkleDorsiflexion", func(f *BodyAngleFrame) float64 { return f.RightAnkleDorsiflexion }, func(f *BodyAngleFrame, v float64) { f.RightAnkleDorsiflexion = v }},
	{"rightAnklePlantarflexion", func(f *BodyAngleFrame) float64 { return f.RightAnklePlantarflexion }, func(f *BodyAngleFrame, v float64) { f.RightAnklePlantarflexion = v }},
	{"lefttrunkFlexion", func(f *BodyAngleFrame) float64 { return f.LeftTrunkFlexion }, func(f *BodyAngleFrame, v float64) { f.LeftTrunkFlexion = v }},
	{"lefttrunkExtension", func(f *BodyAngleFrame) float64 { return f.LeftTrunkExtension }, func(f *BodyAngleFrame, v float64) { f.LeftTrunkExtension = v }},
	{"righttrunkFlexion", func(f *BodyAngleFrame) float64 { return f.RightTrunkFlexion }, func(f *BodyAngleFrame, v float64) { f.RightTrunkFlexion = v }},
	{"righttrunkExtension", func(f *BodyAngleFrame) float64 { return f.RightTrunkExtension }, func(f *BodyAngleFrame, v float64) { f.RightTrunkExtension = v }},
	{"lefttrunkRotation", func(f *BodyAngleFrame) float64 { return f.LeftTrunkRotation }, func(f *BodyAngleFrame, v float64) { f.LeftTrunkRotation = v }},
	{"righttrunkRotation", func(f *BodyAngleFrame) float64 { return f.RightTrunkRotation }, func(f *BodyAngleFrame, v float64) { f.RightTrunkRotation = v }},
	{"lefttrunkLateralFlexion", func(f *BodyAngleFrame) float64 { return f.LeftTrunkLateralFlexion }, func(f *BodyAngleFrame, v float64) { f.LeftTrunkLateralFlexion = v }},
	{"righttrunkLateralFlexion", func(f *BodyAngleFrame) float64 { return f.RightTrunkLateralFlexion }, func(f *BodyAngleFrame, v float64) { f.RightTrunkLateralFlexion = v }},
	{"leftShoulderSideAbduction_Adduction", func(f *BodyAngleFrame) float64 { return f.LeftShoulderSideAbductionAdduction }, func(f *BodyAngleFrame, v float64) { f.LeftShoulderSideAbductionAdduction = v }},
	{"rightShoulderSideAbduction_Adduction", func(f *BodyAngleFrame) float64 { return f.RightShoulderSideAbductionAdduction }, func(f *BodyAngleFrame, v float64) { f.RightShoulderSideAbductionAdduction = v }},
	{"leftHipAbduction", func(f *BodyAngleFrame) float64 { return f.LeftHipAbduction }, func(f *BodyAngleFrame, v float64) { f.LeftHipAbduction = v }},
	{"leftHipAdduction", func(f *BodyAngleFrame) float64 { return f.LeftHipAdduction }, func(f *BodyAngleFrame, v float64) { f.LeftHipAdduction = v }},
	{"rightHipAbduction", func(f *BodyAngleFrame) float64 { return f.RightHipAbduction }, func(f *BodyAngleFrame, v float64) { f.RightHipAbduction = v }},
	{"rightHipAdduction", func(f *BodyAngleFrame) float64 { return f.RightHipAdduction }, func(f *BodyAngleFrame, v float64) { f.RightHipAdduction = v }},
}

// NewBodyAngleFrame maps 30 angles positionally onto the channels of
// BodyAngleChannels.
func NewBodyAngleFrame(angles [BodyAngleCount]float64, timestamp int64) BodyAngleFrame {
	f := BodyAngleFrame{Timestamp: timestamp}
	for i, ch := range BodyAngleChannels {
		ch.set(&f, angles[i])
	}
	return f
}

// Values extracts one channel across a frame sequence.
func (c BodyAngleChannel) Values(seq []BodyAngleFrame) []float64 {
	out := make([]float64, len(seq))
	for i := range seq {
		out[i] = c.Get(&seq[i])
	}
	return out
}

// BodyAngleChannelByName looks up a channel by its report name.
func BodyAngleChannelByName(name string) (BodyAngleChannel, bool) {
	for _, ch := range BodyAngleChannels {
		if ch.Name == name {
			return ch, true
		}
	}
	return BodyAngleChannel{}, false
}
