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
	"path/filepath"
	"testing"
	"time"
)

// newFakeOptimizerExe drops a tiny shell script standing in for xoptfoil2
// into dir, printing one progress line after sleepSec before exiting.
func newFakeOptimizerExe(t *testing.T, dir string, sleepSec float64) {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\nsleep %v\necho '  12 steps, 7 designs, objective 0.00234'\nexit 0\n", sleepSec)
	path := filepath.Join(dir, "xoptfoil2")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestOptimizerNotReadyWithoutExecutable(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewOptimizer(dir); err == nil {
		t.Error("expected error when no xoptfoil2 executable is present")
	}
}

func TestOptimizerRunReachesReadyAfterExit(t *testing.T) {
	dir := t.TempDir()
	newFakeOptimizerExe(t, dir, 0)
	opt, err := NewOptimizer(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := opt.State(); got != OptNotReady {
		t.Errorf("initial state: got %v want OptNotReady", got)
	}
	if err := opt.Run("out.dat", "in.nml"); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if opt.State() == OptReady {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if got := opt.State(); got != OptReady {
		t.Fatalf("final state: got %v want OptReady", got)
	}
	nSteps, nDesigns, objective := opt.GetProgress()
	if nSteps != 12 || nDesigns != 7 {
		t.Errorf("progress: got steps=%d designs=%d", nSteps, nDesigns)
	}
	if !IsClose(objective, 0.00234, 1e-6) {
		t.Errorf("objective: got %v", objective)
	}
}

func TestOptimizerStopWritesSentinelWhileRunning(t *testing.T) {
	dir := t.TempDir()
	newFakeOptimizerExe(t, dir, 1)
	opt, err := NewOptimizer(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := opt.Run("out.dat", "in.nml"); err != nil {
		t.Fatal(err)
	}
	if err := opt.Stop(); err != nil {
		t.Fatal(err)
	}
	if got := opt.State(); got != OptStopping {
		t.Errorf("state after Stop: got %v want OptStopping", got)
	}
	sentinel := filepath.Join(dir, "stop_monitoring")
	if _, err := os.Stat(sentinel); err != nil {
		t.Errorf("expected sentinel file to exist: %v", err)
	}
	opt.Kill()
}
