//----------------------------------------------------------------------
// This file is part of aecore.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// aecore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// aecore is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import (
	"fmt"
	"os"
)

// PolarTask bundles polars that share every PolarDefinition compatibility
// key into a single worker invocation. Exactly one task owns one worker
// process.
type PolarTask struct {
	AirfoilPath string
	WorkingDir  string
	Compat      CompatKey

	polars  []*Polar
	worker  *Worker
	started bool
	done    bool
	killed  bool
}

// NewPolarTask starts a new task seeded with the first polar.
func NewPolarTask(airfoilPath, workingDir string, first *Polar) *PolarTask {
	return &PolarTask{
		AirfoilPath: airfoilPath,
		WorkingDir:  workingDir,
		Compat:      first.Def.Compat(),
		polars:      []*Polar{first},
		worker:      NewWorker(),
	}
}

// AddPolar accepts an additional polar only while the task has not
// started and the compatibility keys match.
func (t *PolarTask) AddPolar(p *Polar) bool {
	if t.started || p.Def.Compat() != t.Compat {
		return false
	}
	t.polars = append(t.polars, p)
	return true
}

// IsCompatible reports whether a definition could join this task.
func (t *PolarTask) IsCompatible(def *PolarDefinition) bool {
	return !t.started && def.Compat() == t.Compat
}

// IsRunning reports whether the worker process is still active.
func (t *PolarTask) IsRunning() bool {
	return t.started && !t.done && t.worker.IsRunning()
}

// IsCompleted reports whether every polar in the bundle is loaded.
func (t *PolarTask) IsCompleted() bool {
	for _, p := range t.polars {
		if !p.IsLoaded {
			return false
		}
	}
	return true
}

// Run writes the worker invocation for the whole bundle (shared ncrit,
// xtrip, value range, spec variable, optional flap) and launches the
// worker process. Launch failure marks every polar in the bundle errored.
func (t *PolarTask) Run() error {
	if t.started {
		return nil
	}
	reList := make([]float64, len(t.polars))
	maList := make([]float64, len(t.polars))
	flapList := make([]float64, 0, len(t.polars))
	for i, p := range t.polars {
		reList[i] = p.Def.Re
		maList[i] = p.Def.Mach
		if p.Def.Flap.Active {
			flapList = append(flapList, p.Def.FlapAngle)
		}
	}
	first := t.polars[0].Def
	req := GeneratePolarRequest{
		AirfoilPath: t.AirfoilPath,
		Type:        first.Type,
		Re:          reList,
		Mach:        maList,
		Ncrit:       first.Ncrit,
		XtripTop:    first.XtripTop,
		XtripBot:    first.XtripBot,
		AutoRange:   first.AutoRange,
		SpecVar:     first.SpecVar,
		ValMin:      first.ValMin,
		ValMax:      first.ValMax,
		ValStep:     first.ValStep,
		FlapAngles:  flapList,
		Flap:        first.Flap,
		RunAsync:    true,
	}
	if err := t.worker.GeneratePolar(t.WorkingDir, req); err != nil {
		reason := err.Error()
		for _, p := range t.polars {
			p.MarkError(reason)
		}
		t.done = true
		return err
	}
	t.started = true
	return nil
}

// pollLoaded is called by the Watchdog each tick: checks for newly
// finished polar files and loads them, returning how many were freshly
// loaded this call. A task only knows its own airfoil path, not the
// owning PolarSet's rescale factor — but rescaling is already baked
// into each polar's Def by the time it reaches a task, so the plain
// airfoil path is enough to reconstruct the canonical file name.
func (t *PolarTask) pollLoaded() int {
	loaded := 0
	for _, p := range t.polars {
		if p.IsLoaded {
			continue
		}
		path := canonicalPolarPath(t.AirfoilPath, p.Def)
		if fileExists(path) {
			if err := LoadPolarFile(path, p); err != nil {
				p.MarkError(err.Error())
			}
			loaded++
		}
	}
	if t.IsCompleted() || (!t.worker.IsRunning() && t.started) {
		t.Finalize()
	}
	return loaded
}

// Finalize marks the task done; if the worker exited with an error and
// polars remain unloaded, they are marked errored with its exit reason.
func (t *PolarTask) Finalize() {
	if t.done {
		return
	}
	if code, text := t.worker.FinishedResult(); code != 0 {
		for _, p := range t.polars {
			if !p.IsLoaded {
				p.MarkError(fmt.Sprintf("worker exited %d: %s", code, text))
			}
		}
	}
	t.done = true
}

// Terminate kills the worker process; remaining polars are marked errored
// with the worker's textual exit reason.
func (t *PolarTask) Terminate() {
	if t.killed {
		return
	}
	t.killed = true
	reason := t.worker.Terminate()
	for _, p := range t.polars {
		if !p.IsLoaded {
			p.MarkError(reason)
		}
	}
	t.done = true
}

// PolarTaskRegistry is a per-application-model registry of live tasks,
// replacing the original process-wide static instance list (see the
// strategy-dispatch design notes): the Watchdog receives a handle to one
// of these rather than a package-level variable.
type PolarTaskRegistry struct {
	tasks []*PolarTask
}

// NewPolarTaskRegistry returns an empty registry.
func NewPolarTaskRegistry() *PolarTaskRegistry { return &PolarTaskRegistry{} }

// Register adds a task.
func (r *PolarTaskRegistry) Register(t *PolarTask) { r.tasks = append(r.tasks, t) }

// Tasks returns all registered tasks in registration order.
func (r *PolarTaskRegistry) Tasks() []*PolarTask { return r.tasks }

func (r *PolarTaskRegistry) tasksFor(airfoilPath string) []*PolarTask {
	var out []*PolarTask
	for _, t := range r.tasks {
		if t.AirfoilPath == airfoilPath {
			out = append(out, t)
		}
	}
	return out
}

func (r *PolarTaskRegistry) findCompatible(airfoilPath string, def *PolarDefinition) *PolarTask {
	for _, t := range r.tasks {
		if t.AirfoilPath == airfoilPath && t.IsCompatible(def) {
			return t
		}
	}
	return nil
}

// RemoveFinalized drops every finalized task from the registry; called by
// the Watchdog after harvesting.
func (r *PolarTaskRegistry) RemoveFinalized() {
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if !t.done {
			kept = append(kept, t)
		}
	}
	r.tasks = kept
}

// TerminateInstancesExcept kills any task whose owning airfoil path is not
// in keep, bounding the number of concurrent worker processes when
// switching airfoils. A task records only its airfoil path, not the
// airfoil's role, so tasks of Design copies are not exempted.
func (r *PolarTaskRegistry) TerminateInstancesExcept(keep map[string]bool) {
	for _, t := range r.tasks {
		if !keep[t.AirfoilPath] {
			t.Terminate()
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
