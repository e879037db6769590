package decode

import (
	"io"
	"strings"

	"github.com/banshee-data/motion.report/internal/frames"
)

// DecodePositions3D decodes a .btr stream.
func DecodePositions3D(r io.Reader) ([]frames.Position3DFrame, Result, error) {
	return decodeLines(r, parsePosition3DLine)
}

// parsePosition3DLine accepts "x,y,z;...;x,y,z/timestamp". Empty, malformed
// or non-numeric triples are dropped individually; the line survives only if
// exactly 33 good triples remain.
func parsePosition3DLine(line string) (frames.Position3DFrame, error) {
	var f frames.Position3DFrame

	parts := strings.Split(line, "/")
	if len(parts) != 2 {
		return f, faultf(ErrDelimiter, "want one '/', got %d", len(parts)-1)
	}

	pts := make([]frames.Vec3, 0, frames.BodyLandmarkCount)
	for _, c := range strings.Split(strings.TrimSpace(parts[0]), ";") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		xyz := strings.Split(c, ",")
		if len(xyz) != 3 {
			continue
		}
		x, errX := parseFloat(xyz[0])
		y, errY := parseFloat(xyz[1])
		z, errZ := parseFloat(xyz[2])
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		pts = append(pts, frames.Vec3{X: x, Y: y, Z: z})
	}

	ts, err := parseTimestamp(parts[1])
	if err != nil {
		return f, err
	}
	if len(pts) != frames.BodyLandmarkCount {
		return f, faultf(ErrFieldCount, "want %d triples, got %d", frames.BodyLandmarkCount, len(pts))
	}

	copy(f.Landmarks[:], pts)
	f.Timestamp = ts
	return f, nil
}

// DecodeBody2D decodes a _body.btr2d stream.
func DecodeBody2D(r io.Reader) ([]frames.Position2DFrame, Result, error) {
	return decodeLines(r, func(line string) (frames.Position2DFrame, error) {
		var f frames.Position2DFrame
		pts, ts, err := parse2DLine(line, frames.BodyLandmarkCount)
		if err != nil {
			return f, err
		}
		copy(f.Landmarks[:], pts)
		f.Timestamp = ts
		return f, nil
	})
}

// DecodeHand2D decodes a _leftHand.btr2d or _rightHand.btr2d stream.
func DecodeHand2D(r io.Reader) ([]frames.HandFrame, Result, error) {
	return decodeLines(r, func(line string) (frames.HandFrame, error) {
		var f frames.HandFrame
		pts, ts, err := parse2DLine(line, frames.HandLandmarkCount)
		if err != nil {
			return f, err
		}
		copy(f.Landmarks[:], pts)
		f.Timestamp = ts
		return f, nil
	})
}

// parse2DLine parses "x,y;...;x,y/timestamp" with zero-fill for structural
// faults. The last ';' segment carries both the final pair and the timestamp.
// When that segment lacks a single '/', a zero vector is added and the segment
// is treated as "0,0/0", which contributes one more zero pair and timestamp 0.
// The result always holds at least want points; callers copy the first want.
func parse2DLine(line string, want int) ([]frames.Vec2, int64, error) {
	segs := strings.Split(line, ";")
	if len(segs) < 2 && !strings.Contains(segs[0], "/") {
		return nil, 0, faultf(ErrDelimiter, "no ';' or '/' separator")
	}

	pts := make([]frames.Vec2, 0, want+2)
	for _, s := range segs[:len(segs)-1] {
		v, ok, err := parsePair(s)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			v = frames.Vec2{}
		}
		pts = append(pts, v)
	}

	tail := strings.Split(segs[len(segs)-1], "/")
	if len(tail) != 2 {
		pts = append(pts, frames.Vec2{})
		tail = []string{"0,0", "0"}
	}
	v, ok, err := parsePair(tail[0])
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		v = frames.Vec2{}
	}
	pts = append(pts, v)

	for len(pts) < want {
		pts = append(pts, frames.Vec2{})
	}

	ts, err := parseTimestamp(tail[1])
	if err != nil {
		return nil, 0, err
	}
	return pts, ts, nil
}

// parsePair reports ok=false for a structurally wrong pair (zero-filled by the
// caller) and an error for a non-numeric coordinate (drops the line).
func parsePair(s string) (frames.Vec2, bool, error) {
	xy := strings.Split(s, ",")
	if len(xy) != 2 {
		return frames.Vec2{}, false, nil
	}
	x, err := parseFloat(xy[0])
	if err != nil {
		return frames.Vec2{}, false, err
	}
	y, err := parseFloat(xy[1])
	if err != nil {
		return frames.Vec2{}, false, err
	}
	return frames.Vec2{X: x, Y: y}, true, nil
}
