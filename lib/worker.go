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
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// GeneratePolarRequest bundles everything the worker process needs to
// compute a group of compatible polars in one invocation.
type GeneratePolarRequest struct {
	AirfoilPath string
	Type        PolarType
	Re, Mach    []float64
	Ncrit       float64
	XtripTop    float64
	XtripBot    float64
	AutoRange   bool
	SpecVar     SpecVar
	ValMin, ValMax, ValStep float64
	FlapAngles  []float64
	Flap        FlapHinge
	RunAsync    bool
	NPoints     int
}

// Worker spawns, monitors, and (if requested) terminates the external
// aerodynamic worker process for one PolarTask.
type Worker struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	cancel context.CancelFunc
	stdout bytes.Buffer
	stderr bytes.Buffer
	done   bool
	code   int
}

// NewWorker returns an unstarted worker handle.
func NewWorker() *Worker { return &Worker{} }

// IsReady resolves the worker executable in projectDir and compares its
// reported version against minVersion.
func IsReady(projectDir, minVersion string) (bool, string, error) {
	path := resolveExecutable(projectDir, Cfg.Worker.XfoilExe)
	if path == "" {
		return false, "", NewWorkerError(ErrWorkerNotReady, "worker executable not found", 0)
	}
	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		return false, "", WrapGeometryError(ErrWorkerNotReady, "querying worker version", err)
	}
	version := strings.TrimSpace(string(out))
	if compareVersions(version, minVersion) < 0 {
		return false, version, NewWorkerError(ErrWorkerVersionTooOld, fmt.Sprintf("worker version %s older than required %s", version, minVersion), 0)
	}
	return true, version, nil
}

func resolveExecutable(dir, name string) string {
	candidate := filepath.Join(dir, name)
	if fileExists(candidate) {
		return candidate
	}
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return ""
}

// compareVersions compares two "a.b.c" semantic version strings, returning
// -1, 0, or 1. Non-numeric or short components compare as zero.
func compareVersions(a, b string) int {
	as := strings.Split(strings.TrimPrefix(a, "v"), ".")
	bs := strings.Split(strings.TrimPrefix(b, "v"), ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv int
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// GeneratePolar spawns the worker in workingDir with a temporary input
// namelist describing req, and returns once launched (if req.RunAsync) or
// once the process has exited.
func (w *Worker) GeneratePolar(workingDir string, req GeneratePolarRequest) error {
	exePath := resolveExecutable(workingDir, Cfg.Worker.XfoilExe)
	if exePath == "" {
		return NewWorkerError(ErrWorkerNotReady, "xfoil worker executable not found", 0)
	}
	inputPath := filepath.Join(workingDir, ".aecore_polargen.nml")
	nl := buildPolarNamelist(req)
	if err := WriteNamelist(inputPath, nl); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, exePath, "-i", inputPath)
	cmd.Dir = workingDir

	w.mu.Lock()
	w.cmd = cmd
	w.cancel = cancel
	cmd.Stdout = &w.stdout
	cmd.Stderr = &w.stderr
	w.mu.Unlock()

	if err := cmd.Start(); err != nil {
		cancel()
		return WrapGeometryError(ErrPolarGenerationFailed, "starting worker process", err)
	}

	if req.RunAsync {
		go func() {
			err := cmd.Wait()
			w.mu.Lock()
			w.done = true
			if exitErr, ok := err.(*exec.ExitError); ok {
				w.code = exitErr.ExitCode()
			}
			w.mu.Unlock()
		}()
		return nil
	}
	err := cmd.Wait()
	w.mu.Lock()
	w.done = true
	if exitErr, ok := err.(*exec.ExitError); ok {
		w.code = exitErr.ExitCode()
	}
	w.mu.Unlock()
	if err != nil {
		return WrapGeometryError(ErrPolarGenerationFailed, "worker process failed", err)
	}
	return nil
}

// SetFlap runs the worker synchronously to produce a flapped copy of the
// given airfoil file, returning the generated filename.
func (w *Worker) SetFlap(workingDir, airfoilFile string, xFlap, yFlap float64, yFlapSpec string, flapAngle float64, outName string) (string, error) {
	exePath := resolveExecutable(workingDir, Cfg.Worker.XfoilExe)
	if exePath == "" {
		return "", NewWorkerError(ErrWorkerNotReady, "xfoil worker executable not found", 0)
	}
	if outName == "" {
		stem := stemName(filepath.Base(airfoilFile), filepath.Ext(airfoilFile))
		outName = stem + FlappedSuffix(flapAngle, xFlap, yFlap, yFlapSpec) + ".dat"
	}
	args := []string{
		"-i", airfoilFile,
		"-o", outName,
		"-flap", fmt.Sprintf("%.4f;%.4f;%s;%.3f", xFlap, yFlap, yFlapSpec, flapAngle),
	}
	cmd := exec.Command(exePath, args...)
	cmd.Dir = workingDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", WrapGeometryError(ErrPolarGenerationFailed, "set_flap failed: "+stderr.String(), err)
	}
	return outName, nil
}

// IsRunning reports whether the process is still active.
func (w *Worker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cmd != nil && !w.done
}

// FinishedResult returns the exit code and stderr text, valid only after
// the process has terminated.
func (w *Worker) FinishedResult() (int, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.code, w.stderr.String()
}

// Terminate kills the worker process (if running) and returns a textual
// exit reason for the owning task's remaining polars.
func (w *Worker) Terminate() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cmd != nil && !w.done && w.cancel != nil {
		w.cancel()
	}
	if w.stderr.Len() > 0 {
		return "terminated: " + w.stderr.String()
	}
	return "terminated by request"
}

// CleanWorkingDir deletes worker temporary files matching the known
// scratch-namelist pattern.
func CleanWorkingDir(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, ".aecore_*"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// FlappedSuffix produces the shortest unique suffix describing a flap
// deflection: just the angle when every other flap parameter is default,
// otherwise the fully qualified form.
func FlappedSuffix(flapAngle, xFlap, yFlap float64, yFlapSpec string) string {
	isDefaultFlap := IsClose(xFlap, 0.75, 1e-6) && IsClose(yFlap, 0, 1e-6) && (yFlapSpec == "" || yFlapSpec == "y/c")
	if isDefaultFlap {
		return fmt.Sprintf("_f%.1f", flapAngle)
	}
	return fmt.Sprintf("_f%.1f_xf%.2f_yf%.2f_yspec%s", flapAngle, xFlap, yFlap, strings.ToUpper(strings.ReplaceAll(yFlapSpec, "/", "")))
}

func buildPolarNamelist(req GeneratePolarRequest) *Namelist {
	nl := NewNamelist()
	g := nl.Group("polar_generation")
	g.Set("airfoil_file", req.AirfoilPath)
	g.Set("type", req.Type.String())
	g.SetFloats("re", req.Re)
	g.SetFloats("mach", req.Mach)
	g.SetFloat("ncrit", req.Ncrit)
	g.SetFloat("xtript", req.XtripTop)
	g.SetFloat("xtripb", req.XtripBot)
	g.SetBool("auto_range", req.AutoRange)
	g.Set("spec_var", req.SpecVar.String())
	g.SetFloat("val_min", req.ValMin)
	g.SetFloat("val_max", req.ValMax)
	g.SetFloat("val_step", req.ValStep)
	if len(req.FlapAngles) > 0 {
		g.SetFloats("flap_angle", req.FlapAngles)
		g.SetFloat("x_flap", req.Flap.XFlap)
		g.SetFloat("y_flap", req.Flap.YFlap)
		g.Set("y_flap_spec", req.Flap.YFlapSpec)
	}
	return nl
}
