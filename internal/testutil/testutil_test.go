package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/motion.report/internal/frames"
)

func TestBalanceMatBlock_LittleEndian(t *testing.T) {
	t.Parallel()

	var slots [28]uint16
	slots[9] = 0x1234
	b := BalanceMatBlock(slots)
	if b[18] != 0x34 || b[19] != 0x12 {
		t.Errorf("slot 9 bytes = %#x %#x, want 0x34 0x12", b[18], b[19])
	}
	if b[56] != 0 || b[57] != 0 {
		t.Error("padding bytes should be zero")
	}
}

func TestLineBuilders(t *testing.T) {
	t.Parallel()

	if got := Position2DLine([]frames.Vec2{{X: 1, Y: 2}, {X: 3.5, Y: 4}}, 9); got != "1,2;3.5,4/9" {
		t.Errorf("Position2DLine = %q", got)
	}
	if got := strings.Count(Position3DLine(Body3D(), 1), ";"); got != frames.BodyLandmarkCount-1 {
		t.Errorf("Position3DLine has %d separators", got)
	}
	var a [frames.BodyAngleCount]float64
	if got := BodyAngleLine(a, 12.5); !strings.HasSuffix(got, ",12.5") {
		t.Errorf("BodyAngleLine timestamp suffix: %q", got)
	}
}

func TestWriteSession(t *testing.T) {
	t.Parallel()

	dir := WriteSession(t, t.TempDir(), "s1")
	for _, suffix := range []string{".bja", ".btr", "_body.btr2d", "_leftHand.btr2d", "_rightHand.btr2d", ".bap", ".bmr"} {
		if _, err := os.Stat(filepath.Join(dir, "s1"+suffix)); err != nil {
			t.Errorf("missing fixture %s: %v", suffix, err)
		}
	}
	data := MustReadFile(t, filepath.Join(dir, "s1.bmr"))
	if n := strings.Count(string(data), "\n"); n != 3 {
		t.Errorf("s1.bmr has %d lines, want 3", n)
	}
}
