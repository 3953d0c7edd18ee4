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
	"encoding/json"
	"os"
)

// GeometryDefaults holds the fallback parameters applied when a mutator
// is invoked without explicit values (e.g. repaneling bunching).
type GeometryDefaults struct {
	NPanels       int     `json:"nPanels"`       // panels per side after repanel
	TEGap         float64 `json:"teGap"`         // trailing edge gap (chord fraction)
	LEBunch       float64 `json:"leBunch"`       // leading edge panel bunching
	TEBunch       float64 `json:"teBunch"`       // trailing edge panel bunching
	SplineDegree  int     `json:"splineDegree"`  // not read: Spline2D is always cubic
	NelderMeadTol float64 `json:"nmTol"`         // not read: Minimize1D/FindRoot use gonum's default Nelder-Mead settings
}

// PolarDefaults holds the default operating-point spec applied to a new
// PolarDefinition when none is supplied.
type PolarDefaults struct {
	Ncrit      float64 `json:"ncrit"`
	XtripTop   float64 `json:"xtripTop"`
	XtripBot   float64 `json:"xtripBot"`
	AutoRange  bool    `json:"autoRange"`
	ValMin     float64 `json:"valMin"`
	ValMax     float64 `json:"valMax"`
	ValStep    float64 `json:"valStep"`
}

// WorkerConfig holds the paths and timing parameters for driving the
// external Xfoil/Xoptfoil2 worker processes.
type WorkerConfig struct {
	XfoilExe      string  `json:"xfoilExe"`
	Xoptfoil2Exe  string  `json:"xoptfoil2Exe"`
	MinVersion    string  `json:"minVersion"`
	TimeoutSec    float64 `json:"timeoutSec"`
	PollWarmupMs  int     `json:"pollWarmupMs"` // not read: Watchdog uses its fixed watchdogWarmup (1 s)
	PollSteadyMs  int     `json:"pollSteadyMs"` // not read: Watchdog uses its fixed watchdogTick (500 ms)
}

// CacheConfig controls the sqlite-backed polar header cache.
type CacheConfig struct {
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// Config is the top-level, process-wide configuration for aecore.
type Config struct {
	Geometry *GeometryDefaults `json:"geometry"`
	Polar    *PolarDefaults    `json:"polar"`
	Worker   *WorkerConfig     `json:"worker"`
	Cache    *CacheConfig      `json:"cache"`
}

// Cfg is the globally-accessible configuration (pre-set with defaults
// matching Xfoil/Xoptfoil2 community conventions).
var Cfg = &Config{
	Geometry: &GeometryDefaults{
		NPanels:       160,
		TEGap:         0.0,
		LEBunch:       0.86,
		TEBunch:       0.6,
		SplineDegree:  3,
		NelderMeadTol: 1e-6,
	},
	Polar: &PolarDefaults{
		Ncrit:     9.0,
		XtripTop:  1.0,
		XtripBot:  1.0,
		AutoRange: true,
		ValMin:    -3.0,
		ValMax:    12.0,
		ValStep:   0.25,
	},
	Worker: &WorkerConfig{
		XfoilExe:     "xfoil_worker",
		Xoptfoil2Exe: "xoptfoil2",
		MinVersion:   "1.0.0",
		TimeoutSec:   60.0,
		PollWarmupMs: 500,
		PollSteadyMs: 1000,
	},
	Cache: &CacheConfig{
		Path:    "polarindex.db",
		Enabled: true,
	},
}

// ReadConfig overrides Cfg with values read from a JSON file. Fields not
// present in the file keep their compiled-in defaults.
func ReadConfig(fname string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fname); err == nil {
		err = json.Unmarshal(data, &Cfg)
	}
	return
}
