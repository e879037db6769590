package decode

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MaxRecordedFaults caps how many LineErrors a Result keeps. Counts are
// always exact; only the detail list is truncated.
const MaxRecordedFaults = 16

// maxLineBytes is the longest line decoded; longer lines are skipped. A
// 33-landmark 3D line is well under 4 KiB.
const maxLineBytes = 1 << 20

// Result summarises one decode pass.
type Result struct {
	Source  string       `json:"source,omitempty"`
	Lines   int          `json:"lines"`
	Frames  int          `json:"frames"`
	Blank   int          `json:"blank"`
	Skipped int          `json:"skipped"`
	Faults  []*LineError `json:"-"`
}

func (r *Result) skip(fault *LineError) {
	r.Skipped++
	if len(r.Faults) < MaxRecordedFaults {
		r.Faults = append(r.Faults, fault)
	}
}

// Add folds o into r. Used to aggregate several files of one family.
func (r *Result) Add(o Result) {
	r.Lines += o.Lines
	r.Frames += o.Frames
	r.Blank += o.Blank
	r.Skipped += o.Skipped
	for _, f := range o.Faults {
		if len(r.Faults) >= MaxRecordedFaults {
			break
		}
		r.Faults = append(r.Faults, f)
	}
}

func (r Result) String() string {
	return fmt.Sprintf("%d lines, %d frames, %d blank, %d skipped", r.Lines, r.Frames, r.Blank, r.Skipped)
}

// decodeLines runs parse over every non-blank line of r. Lines whose parse
// returns an error are recorded and skipped; only read errors are returned.
func decodeLines[T any](r io.Reader, parse func(line string) (T, error)) ([]T, Result, error) {
	var (
		out []T
		res Result
	)
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		raw, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, res, fmt.Errorf("read line %d: %w", res.Lines+1, err)
		}
		res.Lines++
		line := string(raw)
		if tooLong {
			res.skip(newLineError(res.Lines, line, faultf(ErrLineTooLong, "over %d bytes", maxLineBytes)))
			continue
		}
		if strings.TrimSpace(line) == "" {
			res.Blank++
			continue
		}
		v, err := parse(line)
		if err != nil {
			res.skip(newLineError(res.Lines, line, err))
			continue
		}
		out = append(out, v)
		res.Frames++
	}
	return out, res, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed in full but only its first maxFaultText bytes are
// kept, and tooLong is set. io.EOF is returned only when no line remains.
func readLine(br *bufio.Reader) ([]byte, bool, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			return nil, false, err
		}
		if !tooLong {
			if len(line)+len(frag) > maxLineBytes {
				tooLong = true
				if n := maxFaultText - len(line); n > 0 {
					line = append(line, frag[:min(n, len(frag))]...)
				}
			} else {
				line = append(line, frag...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// parseFloat accepts finite values only; NaN and Inf count as non-numeric.
func parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, faultf(ErrNumber, "%q", tok)
	}
	return v, nil
}

func parseTimestamp(tok string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
	if err != nil {
		return 0, faultf(ErrTimestamp, "%q", tok)
	}
	return v, nil
}
