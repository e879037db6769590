package session

import (
	"fmt"
	"io"

	"github.com/banshee-data/motion.report/internal/decode"
	"github.com/banshee-data/motion.report/internal/fsutil"
	"github.com/banshee-data/motion.report/internal/monitoring"
)

// Progress is reported once per decoded file.
type Progress struct {
	Family Family
	Path   string
	Index  int // 1-based position across all files of the session
	Total  int
	Result decode.Result
}

// Loader decodes a session folder. The zero value reads from the OS
// filesystem and logs only the per-file summary line.
type Loader struct {
	FS fsutil.FileSystem

	// MaxLoggedFaults caps per-line fault logging for one file. Negative
	// means the default of 5.
	MaxLoggedFaults int

	// OnProgress, when set, is called after each file is decoded.
	OnProgress func(Progress)
}

const defaultMaxLoggedFaults = 5

func (l *Loader) fs() fsutil.FileSystem {
	if l.FS == nil {
		return fsutil.OSFileSystem{}
	}
	return l.FS
}

// Load discovers and decodes every file under dir into a fresh SessionData.
func (l *Loader) Load(dir string) (*SessionData, error) {
	s := &SessionData{}
	if err := l.Reload(s, dir); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload clears s and refills it from dir. Families are decoded one after
// the other, in load order; a family must finish before the next begins.
// On error s is left cleared.
func (l *Loader) Reload(s *SessionData, dir string) error {
	s.Clear()

	files, err := Discover(l.fs(), dir)
	if err != nil {
		return err
	}

	s.Dir = dir
	total := files.Total()
	index := 0
	for _, fam := range Families() {
		for _, path := range files.Paths(fam) {
			index++
			res, err := l.decodeFile(s, fam, path)
			if err != nil {
				s.Clear()
				return err
			}
			s.Results[fam].Add(res)
			s.FileCount[fam]++
			if l.OnProgress != nil {
				l.OnProgress(Progress{Family: fam, Path: path, Index: index, Total: total, Result: res})
			}
		}
	}
	return nil
}

func (l *Loader) decodeFile(s *SessionData, fam Family, path string) (decode.Result, error) {
	f, err := l.fs().Open(path)
	if err != nil {
		return decode.Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := decodeInto(s, fam, f)
	res.Source = path
	if err != nil {
		return res, fmt.Errorf("decode %s: %w", path, err)
	}
	l.logFaults(path, res)
	return res, nil
}

func decodeInto(s *SessionData, fam Family, r io.Reader) (decode.Result, error) {
	switch fam {
	case JointAngles:
		out, res, err := decode.DecodeJointAngles(r)
		s.JointAngles = append(s.JointAngles, out...)
		return res, err
	case Positions3D:
		out, res, err := decode.DecodePositions3D(r)
		s.Positions3D = append(s.Positions3D, out...)
		return res, err
	case Body2D:
		out, res, err := decode.DecodeBody2D(r)
		s.Body2D = append(s.Body2D, out...)
		return res, err
	case BodyAngles:
		out, res, err := decode.DecodeBodyAngles(r)
		s.BodyAngles = append(s.BodyAngles, out...)
		return res, err
	case LeftHand2D:
		out, res, err := decode.DecodeHand2D(r)
		s.LeftHand2D = append(s.LeftHand2D, out...)
		return res, err
	case RightHand2D:
		out, res, err := decode.DecodeHand2D(r)
		s.RightHand2D = append(s.RightHand2D, out...)
		return res, err
	case BalanceMat:
		out, res, err := decode.DecodeBalanceMat(r)
		s.BalanceMat = append(s.BalanceMat, out...)
		return res, err
	}
	return decode.Result{}, fmt.Errorf("unknown family %v", fam)
}

func (l *Loader) logFaults(path string, res decode.Result) {
	limit := l.MaxLoggedFaults
	if limit < 0 {
		limit = defaultMaxLoggedFaults
	}
	for i, fault := range res.Faults {
		if i >= limit {
			break
		}
		monitoring.Logf("skip %s %v", path, fault)
	}
	if limit > 0 && res.Skipped > limit {
		monitoring.Logf("skip %s: %d more faults not shown", path, res.Skipped-limit)
	}
	monitoring.Logf("decoded %d frames from %s (%d skipped)", res.Frames, path, res.Skipped)
}
