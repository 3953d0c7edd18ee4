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

// afworker-watch is a small harness for exercising the Watchdog/PolarTask
// machinery from the command line, without a UI attached.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jxjo/aecore/lib"
)

// cliObserver just logs whatever the watchdog reports.
type cliObserver struct{}

func (cliObserver) GeometryChanged(airfoilID string, mod lib.Modification) {
	log.Printf("geometry changed: %s %s %q", airfoilID, mod.Kind, mod.Label)
}
func (cliObserver) NewPolars(airfoilID string) {
	log.Printf("new polars loaded for %s", airfoilID)
}
func (cliObserver) OptimizerState(caseID string, state lib.OptState, nSteps, nDesigns int) {
	log.Printf("case %s: %s (%d steps, %d designs)", caseID, state, nSteps, nDesigns)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		log.Fatal("usage: afworker-watch <gen-polars|run-duration> ...")
	}

	switch args[0] {
	case "gen-polars":
		genPolars(args[1:])
	case "run-duration":
		runDuration(args[1:])
	default:
		log.Fatalf("unknown command %q", args[0])
	}
}

// genPolars loads an airfoil, adds one T1 definition, and drives the
// registry/watchdog loop until the resulting PolarTask finalizes.
func genPolars(args []string) {
	var in string
	var re float64
	var timeoutSec int
	fs := flag.NewFlagSet("gen-polars", flag.ContinueOnError)
	fs.StringVar(&in, "in", "", "airfoil file")
	fs.Float64Var(&re, "re", 200000, "Reynolds number")
	fs.IntVar(&timeoutSec, "timeout", 60, "give up after this many seconds")
	fs.Parse(args)

	if in == "" {
		fs.Usage()
		log.Fatal("missing -in")
	}
	af := lib.NewAirfoilFromPath(in)
	if err := af.Load(); err != nil {
		log.Fatal("load: ", err)
	}
	af.PolarSet = lib.NewPolarSet(af.Name, af.PathFileName)
	af.PolarSet.AddDefinition(lib.NewPolarDefinition(re, 0, lib.T1))
	if lib.Cfg.Cache.Enabled {
		idx, ierr := lib.OpenPolarIndex(filepath.Join(af.WorkingDir, lib.Cfg.Cache.Path))
		if ierr != nil {
			log.Fatal("open polar index: ", ierr)
		}
		defer idx.Close()
		af.PolarSet.UseIndex(idx)
	}

	reg := lib.NewPolarTaskRegistry()
	if err := af.PolarSet.LoadOrGeneratePolars(reg, af.WorkingDir); err != nil {
		log.Fatal("launch: ", err)
	}

	wd := lib.NewWatchdog(reg)
	wd.Start(cliObserver{})
	defer wd.Stop()

	deadline := time.Now().Add(time.Duration(timeoutSec) * time.Second)
	for time.Now().Before(deadline) {
		done := true
		for _, p := range af.PolarSet.Polars {
			if !p.IsLoaded {
				done = false
			}
		}
		if done {
			log.Println("all polars loaded or errored")
			return
		}
		time.Sleep(250 * time.Millisecond)
	}
	log.Println("timed out waiting for polars")
}

// runDuration just exercises the watchdog warm-up/tick cadence for a
// fixed wall-clock duration against an empty registry, useful for
// confirming the cadence itself without a worker executable present.
func runDuration(args []string) {
	var seconds int
	fs := flag.NewFlagSet("run-duration", flag.ContinueOnError)
	fs.IntVar(&seconds, "seconds", 5, "how long to run")
	fs.Parse(args)

	reg := lib.NewPolarTaskRegistry()
	wd := lib.NewWatchdog(reg)
	wd.Start(cliObserver{})
	time.Sleep(time.Duration(seconds) * time.Second)
	wd.Stop()
	log.Println("watchdog stopped")
}
