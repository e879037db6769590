package decode

import (
	"io"
	"math"
	"strings"

	"github.com/banshee-data/motion.report/internal/frames"
)

// bodyAngleFields is 30 angles plus the trailing timestamp.
const bodyAngleFields = frames.BodyAngleCount + 1

// DecodeJointAngles decodes a .bja stream. Whitespace-only fields are ignored
// before counting, so "1,2,,3" has three fields.
func DecodeJointAngles(r io.Reader) ([]frames.JointAngleFrame, Result, error) {
	return decodeLines(r, parseJointAngleLine)
}

func parseJointAngleLine(line string) (frames.JointAngleFrame, error) {
	raw := strings.Split(line, ",")
	fields := raw[:0]
	for _, f := range raw {
		if strings.TrimSpace(f) != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) != frames.JointAngleCount {
		return frames.JointAngleFrame{}, faultf(ErrFieldCount, "want %d, got %d", frames.JointAngleCount, len(fields))
	}

	var v [frames.JointAngleCount]float64
	for i, f := range fields {
		x, err := parseFloat(f)
		if err != nil {
			return frames.JointAngleFrame{}, err
		}
		v[i] = x
	}
	return frames.NewJointAngleFrame(v), nil
}

// DecodeBodyAngles decodes a .bap stream: 30 angles and a timestamp written
// as a float, truncated toward zero.
func DecodeBodyAngles(r io.Reader) ([]frames.BodyAngleFrame, Result, error) {
	return decodeLines(r, parseBodyAngleLine)
}

func parseBodyAngleLine(line string) (frames.BodyAngleFrame, error) {
	fields := strings.Split(line, ",")
	if len(fields) != bodyAngleFields {
		return frames.BodyAngleFrame{}, faultf(ErrFieldCount, "want %d, got %d", bodyAngleFields, len(fields))
	}

	var angles [frames.BodyAngleCount]float64
	for i := 0; i < frames.BodyAngleCount; i++ {
		x, err := parseFloat(fields[i])
		if err != nil {
			return frames.BodyAngleFrame{}, err
		}
		angles[i] = x
	}

	ts, err := parseFloat(fields[frames.BodyAngleCount])
	if err != nil {
		return frames.BodyAngleFrame{}, faultf(ErrTimestamp, "%q", fields[frames.BodyAngleCount])
	}
	if math.Abs(ts) >= math.MaxInt64 {
		return frames.BodyAngleFrame{}, faultf(ErrTimestamp, "%v out of range", ts)
	}
	return frames.NewBodyAngleFrame(angles, int64(ts)), nil
}
