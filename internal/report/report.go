// Package report assembles the per-session aggregate statistics record and
// writes it as pretty-printed JSON (bapresults.json).
package report

import (
	"encoding/json"
	"fmt"

	"github.com/banshee-data/motion.report/internal/fsutil"
	"github.com/banshee-data/motion.report/internal/metrics"
	"github.com/banshee-data/motion.report/internal/monitoring"
)

// DefaultFilename is the report file written into the session folder.
const DefaultFilename = "bapresults.json"

// Section names used in OmittedSections, in the order they are checked.
const (
	SectionGait          = "GaitMetrics"
	SectionFoot          = "FootMetrics"
	SectionHandToMouth2D = "HandToMouthMetrics2D"
	SectionHandToMouth3D = "HandToMouthMetrics3D"
	SectionHipCenter2D   = "HipCenterMetrics2D"
	SectionHipCenter3D   = "HipCenterMetrics3D"
)

// Report is the aggregate statistics record of one session.
type Report struct {
	// Stats is keyed by body-angle channel name.
	Stats           map[string]metrics.AngleStat
	GaitMetrics     *metrics.GaitMetrics `json:",omitempty"`
	PositionMetrics PositionMetrics
	FootMetrics     *metrics.FootMetrics `json:",omitempty"`

	// OmittedSections names every optional section that was not produced.
	OmittedSections []string
}

// PositionMetrics groups the hand-to-mouth and hip-center distance metrics of
// both dimensionalities. Nil fields are omitted.
type PositionMetrics struct {
	HandToMouthMetrics2D *metrics.HandToMouthMetrics `json:",omitempty"`
	HandToMouthMetrics3D *metrics.HandToMouthMetrics `json:",omitempty"`

	LeftHandToHipCenter2D   *metrics.DistanceMetrics `json:",omitempty"`
	RightHandToHipCenter2D  *metrics.DistanceMetrics `json:",omitempty"`
	LeftAnkleToHipCenter2D  *metrics.DistanceMetrics `json:",omitempty"`
	RightAnkleToHipCenter2D *metrics.DistanceMetrics `json:",omitempty"`

	LeftHandToHipCenter3D   *metrics.DistanceMetrics `json:",omitempty"`
	RightHandToHipCenter3D  *metrics.DistanceMetrics `json:",omitempty"`
	LeftAnkleToHipCenter3D  *metrics.DistanceMetrics `json:",omitempty"`
	RightAnkleToHipCenter3D *metrics.DistanceMetrics `json:",omitempty"`
}

// Section is an optional collaborator result. The zero value is absent.
type Section[T any] struct {
	v  T
	ok bool
}

// Present wraps a produced section.
func Present[T any](v T) Section[T] { return Section[T]{v: v, ok: true} }

// Absent marks a section whose collaborator did not run.
func Absent[T any]() Section[T] { return Section[T]{} }

// Get returns the value and whether it is present.
func (s Section[T]) Get() (T, bool) { return s.v, s.ok }

// Assembler collects sections and builds a Report. Every setter overwrites
// the previous value of its section.
type Assembler struct {
	stats         map[string]metrics.AngleStat
	gait          Section[metrics.GaitMetrics]
	foot          Section[metrics.FootMetrics]
	handToMouth2D Section[metrics.HandToMouthMetrics]
	handToMouth3D Section[metrics.HandToMouthMetrics]
	hipCenter2D   Section[metrics.HipCenterMetrics]
	hipCenter3D   Section[metrics.HipCenterMetrics]
}

func (a *Assembler) SetStats(s map[string]metrics.AngleStat) { a.stats = s }

func (a *Assembler) SetGaitMetrics(g metrics.GaitMetrics) { a.gait = Present(g) }

func (a *Assembler) SetFootMetrics(f metrics.FootMetrics) { a.foot = Present(f) }

func (a *Assembler) SetHandToMouthMetrics2D(m metrics.HandToMouthMetrics) {
	monitoring.Logf("report: updating HandToMouthMetrics2D")
	a.handToMouth2D = Present(m)
}

func (a *Assembler) SetHandToMouthMetrics3D(m metrics.HandToMouthMetrics) {
	monitoring.Logf("report: updating HandToMouthMetrics3D")
	a.handToMouth3D = Present(m)
}

func (a *Assembler) SetHipCenterMetrics2D(m metrics.HipCenterMetrics) {
	monitoring.Logf("report: updating HipCenterMetrics2D")
	a.hipCenter2D = Present(m)
}

func (a *Assembler) SetHipCenterMetrics3D(m metrics.HipCenterMetrics) {
	monitoring.Logf("report: updating HipCenterMetrics3D")
	a.hipCenter3D = Present(m)
}

// SetPositionMetrics2D stores whichever parts of a 2D analyzer pass were
// produced. Nil parts leave the stored section unchanged.
func (a *Assembler) SetPositionMetrics2D(pm metrics.PositionMetrics) {
	if pm.HandToMouth != nil {
		a.SetHandToMouthMetrics2D(*pm.HandToMouth)
	}
	if pm.HipCenter != nil {
		a.SetHipCenterMetrics2D(*pm.HipCenter)
	}
}

// SetPositionMetrics3D is the 3D counterpart of SetPositionMetrics2D.
func (a *Assembler) SetPositionMetrics3D(pm metrics.PositionMetrics) {
	if pm.HandToMouth != nil {
		a.SetHandToMouthMetrics3D(*pm.HandToMouth)
	}
	if pm.HipCenter != nil {
		a.SetHipCenterMetrics3D(*pm.HipCenter)
	}
}

// Report builds the aggregate record. Absent sections are left empty and
// listed in OmittedSections; they are never an error.
func (a *Assembler) Report() *Report {
	r := &Report{
		Stats:           make(map[string]metrics.AngleStat, len(a.stats)),
		OmittedSections: []string{},
	}
	for k, v := range a.stats {
		r.Stats[k] = v
	}

	omit := func(name string) {
		monitoring.Logf("report: %s not set", name)
		r.OmittedSections = append(r.OmittedSections, name)
	}

	if g, ok := a.gait.Get(); ok {
		r.GaitMetrics = &g
	} else {
		omit(SectionGait)
	}
	if f, ok := a.foot.Get(); ok {
		r.FootMetrics = &f
	} else {
		omit(SectionFoot)
	}

	pm := &r.PositionMetrics
	if m, ok := a.handToMouth2D.Get(); ok {
		pm.HandToMouthMetrics2D = &m
	} else {
		omit(SectionHandToMouth2D)
	}
	if m, ok := a.handToMouth3D.Get(); ok {
		pm.HandToMouthMetrics3D = &m
	} else {
		omit(SectionHandToMouth3D)
	}
	if m, ok := a.hipCenter2D.Get(); ok {
		pm.LeftHandToHipCenter2D = &m.LeftHandToHipCenter
		pm.RightHandToHipCenter2D = &m.RightHandToHipCenter
		pm.LeftAnkleToHipCenter2D = &m.LeftAnkleToHipCenter
		pm.RightAnkleToHipCenter2D = &m.RightAnkleToHipCenter
	} else {
		omit(SectionHipCenter2D)
	}
	if m, ok := a.hipCenter3D.Get(); ok {
		pm.LeftHandToHipCenter3D = &m.LeftHandToHipCenter
		pm.RightHandToHipCenter3D = &m.RightHandToHipCenter
		pm.LeftAnkleToHipCenter3D = &m.LeftAnkleToHipCenter
		pm.RightAnkleToHipCenter3D = &m.RightAnkleToHipCenter
	} else {
		omit(SectionHipCenter3D)
	}
	return r
}

// Inputs carries every section for a one-shot Assemble.
type Inputs struct {
	Stats      map[string]metrics.AngleStat
	Gait       Section[metrics.GaitMetrics]
	Foot       Section[metrics.FootMetrics]
	Position2D Section[metrics.PositionMetrics]
	Position3D Section[metrics.PositionMetrics]
}

// Assemble builds a Report from in.
func Assemble(in Inputs) *Report {
	var a Assembler
	a.SetStats(in.Stats)
	if g, ok := in.Gait.Get(); ok {
		a.SetGaitMetrics(g)
	}
	if f, ok := in.Foot.Get(); ok {
		a.SetFootMetrics(f)
	}
	if pm, ok := in.Position2D.Get(); ok {
		a.SetPositionMetrics2D(pm)
	}
	if pm, ok := in.Position3D.Get(); ok {
		a.SetPositionMetrics3D(pm)
	}
	return a.Report()
}

// Marshal encodes r as indented JSON with a trailing newline. Map keys are
// sorted, so equal reports encode to equal bytes.
func Marshal(r *Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

// Write marshals r and writes it to path on fsys, replacing any previous
// report. It returns the bytes written.
func Write(fsys fsutil.FileSystem, path string, r *Report) ([]byte, error) {
	data, err := Marshal(r)
	if err != nil {
		return nil, err
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", path, err)
	}
	monitoring.Logf("report saved to %s", path)
	return data, nil
}

// Read decodes a report previously written by Write.
func Read(fsys fsutil.FileSystem, path string) (*Report, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &r, nil
}
