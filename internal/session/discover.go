// Package session discovers the capture files of one session folder and
// decodes them into a SessionData value.
package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banshee-data/motion.report/internal/fsutil"
)

// Family is one input format family. Families are loaded in declaration
// order.
type Family int

const (
	JointAngles Family = iota
	Positions3D
	Body2D
	BodyAngles
	LeftHand2D
	RightHand2D
	BalanceMat

	familyCount
)

var familySuffix = [familyCount]string{
	JointAngles: ".bja",
	Positions3D: ".btr",
	Body2D:      "_body.btr2d",
	BodyAngles:  ".bap",
	LeftHand2D:  "_leftHand.btr2d",
	RightHand2D: "_rightHand.btr2d",
	BalanceMat:  ".bmr",
}

var familyName = [familyCount]string{
	JointAngles: "joint_angles",
	Positions3D: "positions_3d",
	Body2D:      "body_2d",
	BodyAngles:  "body_angles",
	LeftHand2D:  "left_hand_2d",
	RightHand2D: "right_hand_2d",
	BalanceMat:  "balance_mat",
}

// Families returns every family in load order.
func Families() []Family {
	out := make([]Family, familyCount)
	for i := range out {
		out[i] = Family(i)
	}
	return out
}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyName[f]
}

// Suffix is the file name suffix that identifies the family.
func (f Family) Suffix() string { return familySuffix[f] }

// Files lists the discovered paths per family, each list in lexical order.
type Files [familyCount][]string

// Paths returns the files of one family.
func (files *Files) Paths(f Family) []string { return files[f] }

// Total is the number of files across all families.
func (files *Files) Total() int {
	n := 0
	for _, p := range files {
		n += len(p)
	}
	return n
}

// Discover finds the capture files in dir. A family with no matching files
// is not an error; a missing or non-directory dir is.
func Discover(fsys fsutil.FileSystem, dir string) (Files, error) {
	var files Files

	info, err := fsys.Stat(dir)
	if err != nil {
		return files, fmt.Errorf("session folder: %w", err)
	}
	if !info.IsDir() {
		return files, fmt.Errorf("session folder %s is not a directory", dir)
	}

	base := escapeGlob(filepath.Clean(dir))
	for _, f := range Families() {
		matches, err := fsys.Glob(filepath.Join(base, "*"+f.Suffix()))
		if err != nil {
			return files, fmt.Errorf("discover %s files: %w", f, err)
		}
		files[f] = matches
	}
	return files, nil
}

// escapeGlob quotes pattern metacharacters in a literal directory path.
func escapeGlob(dir string) string {
	if filepath.Separator == '\\' {
		return dir
	}
	var sb strings.Builder
	for _, r := range dir {
		switch r {
		case '*', '?', '[', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
