package session

import (
	"github.com/banshee-data/motion.report/internal/decode"
	"github.com/banshee-data/motion.report/internal/frames"
)

// SessionData holds every frame sequence of one session. Sequences keep the
// line order of their files, and files of one family are concatenated in
// discovery order; nothing is re-sorted by timestamp.
//
// A SessionData is filled once by a Loader and only read afterwards.
type SessionData struct {
	Dir string

	JointAngles []frames.JointAngleFrame
	Positions3D []frames.Position3DFrame
	Body2D      []frames.Position2DFrame
	BodyAngles  []frames.BodyAngleFrame
	LeftHand2D  []frames.HandFrame
	RightHand2D []frames.HandFrame
	BalanceMat  []frames.BalanceMatFrame

	// Results aggregates decode diagnostics per family.
	Results [familyCount]decode.Result
	// FileCount is the number of files decoded per family.
	FileCount [familyCount]int
}

// Clear drops all frames and diagnostics so the value can be reloaded.
func (s *SessionData) Clear() {
	*s = SessionData{}
}

// Frames is the number of frames decoded for one family.
func (s *SessionData) Frames(f Family) int {
	switch f {
	case JointAngles:
		return len(s.JointAngles)
	case Positions3D:
		return len(s.Positions3D)
	case Body2D:
		return len(s.Body2D)
	case BodyAngles:
		return len(s.BodyAngles)
	case LeftHand2D:
		return len(s.LeftHand2D)
	case RightHand2D:
		return len(s.RightHand2D)
	case BalanceMat:
		return len(s.BalanceMat)
	}
	return 0
}

// Result returns the aggregated decode diagnostics for one family.
func (s *SessionData) Result(f Family) decode.Result { return s.Results[f] }

// FrameCounts maps family name to frame count, for logs and history rows.
func (s *SessionData) FrameCounts() map[string]int {
	out := make(map[string]int, familyCount)
	for _, f := range Families() {
		out[f.String()] = s.Frames(f)
	}
	return out
}

// Skipped is the total number of dropped lines across all families.
func (s *SessionData) Skipped() int {
	n := 0
	for _, r := range s.Results {
		n += r.Skipped
	}
	return n
}

// Empty reports whether no frame of any family was decoded.
func (s *SessionData) Empty() bool {
	for _, f := range Families() {
		if s.Frames(f) > 0 {
			return false
		}
	}
	return true
}
