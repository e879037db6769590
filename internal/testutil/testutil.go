// Package testutil provides shared test helpers and capture-file fixtures.
//
// The line builders produce text in the exact formats the capture pipeline
// writes, so decoder and pipeline tests can describe frames as values and
// let this package render them.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/banshee-data/motion.report/internal/frames"
)

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// JointAngleLine renders one .bja line.
func JointAngleLine(v [frames.JointAngleCount]float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = ftoa(x)
	}
	return strings.Join(parts, ",")
}

// Position3DLine renders one .btr line.
func Position3DLine(pts [frames.BodyLandmarkCount]frames.Vec3, ts int64) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = ftoa(p.X) + "," + ftoa(p.Y) + "," + ftoa(p.Z)
	}
	return strings.Join(parts, ";") + "/" + strconv.FormatInt(ts, 10)
}

// Position2DLine renders one .btr2d line from any number of pairs.
func Position2DLine(pts []frames.Vec2, ts int64) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = ftoa(p.X) + "," + ftoa(p.Y)
	}
	return strings.Join(parts, ";") + "/" + strconv.FormatInt(ts, 10)
}

// BodyAngleLine renders one .bap line. The timestamp is written as a float
// the way the capture tool does.
func BodyAngleLine(angles [frames.BodyAngleCount]float64, ts float64) string {
	parts := make([]string, 0, len(angles)+1)
	for _, a := range angles {
		parts = append(parts, ftoa(a))
	}
	parts = append(parts, strconv.FormatFloat(ts, 'f', 1, 64))
	return strings.Join(parts, ",")
}

// BalanceMatBlock packs 28 raw sensor slots into a 58-byte block
// (little-endian, two zero padding bytes).
func BalanceMatBlock(slots [28]uint16) [58]byte {
	var b [58]byte
	for i, v := range slots {
		b[2*i] = byte(v)
		b[2*i+1] = byte(v >> 8)
	}
	return b
}

// BalanceMatLine renders one .bmr line.
func BalanceMatLine(block [58]byte, ts int64) string {
	parts := make([]string, len(block))
	for i, b := range block {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ",") + "-" + strconv.FormatInt(ts, 10)
}

// Body3D returns 33 landmarks where landmark i sits at (i, 2i, 3i).
func Body3D() [frames.BodyLandmarkCount]frames.Vec3 {
	var pts [frames.BodyLandmarkCount]frames.Vec3
	for i := range pts {
		pts[i] = frames.Vec3{X: float64(i), Y: float64(2 * i), Z: float64(3 * i)}
	}
	return pts
}

// WriteLines writes lines, newline terminated, to dir/name and returns the
// full path.
func WriteLines(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// WriteSession populates dir with one small file of every family under the
// given session stem and returns dir. Every family decodes to two frames;
// each file also carries one malformed line.
func WriteSession(t testing.TB, dir, stem string) string {
	t.Helper()

	WriteLines(t, dir, stem+".bja",
		JointAngleLine([12]float64{10, 20, 30, 40, 11, 21, 31, 41, 5, 6, 7, 8}),
		"not,a,joint,line",
		JointAngleLine([12]float64{12, 22, 32, 42, 13, 23, 33, 43, 5, 6, 7, 8}),
	)

	body := Body3D()
	WriteLines(t, dir, stem+".btr",
		Position3DLine(body, 100),
		"0,0,0/101",
		Position3DLine(shift3D(body, 1), 102),
	)

	body2D := make([]frames.Vec2, frames.BodyLandmarkCount)
	for i := range body2D {
		body2D[i] = frames.Vec2{X: float64(i), Y: float64(i) / 2}
	}
	WriteLines(t, dir, stem+"_body.btr2d",
		Position2DLine(body2D, 200),
		"garbage",
		Position2DLine(body2D[:20], 201),
	)

	hand := make([]frames.Vec2, frames.HandLandmarkCount)
	for i := range hand {
		hand[i] = frames.Vec2{X: float64(i), Y: 1}
	}
	for _, side := range []string{"_leftHand", "_rightHand"} {
		WriteLines(t, dir, stem+side+".btr2d",
			Position2DLine(hand, 300),
			"x,y/z",
			Position2DLine(hand, 301),
		)
	}

	var a1, a2 [frames.BodyAngleCount]float64
	for i := range a1 {
		a1[i] = float64(i)
		a2[i] = -float64(2 * i)
	}
	WriteLines(t, dir, stem+".bap",
		BodyAngleLine(a1, 400.7),
		"1,2,3",
		BodyAngleLine(a2, 401.2),
	)

	var s1, s2 [28]uint16
	for i := 2; i < 28; i++ {
		s1[i] = uint16(100 + i)
	}
	for _, i := range []int{9, 4, 12, 6, 14, 10, 27, 22, 15} {
		s2[i] = 50
	}
	WriteLines(t, dir, stem+".bmr",
		BalanceMatLine(BalanceMatBlock(s1), 500),
		"1,2,3-501",
		BalanceMatLine(BalanceMatBlock(s2), 502),
	)
	return dir
}

func shift3D(pts [frames.BodyLandmarkCount]frames.Vec3, d float64) [frames.BodyLandmarkCount]frames.Vec3 {
	for i := range pts {
		pts[i].X += d
		pts[i].Y += d
		pts[i].Z += d
	}
	return pts
}

// MustReadFile reads path or fails the test.
func MustReadFile(t testing.TB, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return b
}

