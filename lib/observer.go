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

// ModKind identifies a kind of geometry modification, used both for the
// Geometry modification dictionary (section 7) and for change notification.
type ModKind int

const (
	ModNone ModKind = iota
	ModNormalize
	ModRepanel
	ModTEGap
	ModLERadius
	ModMaxThickness
	ModMaxCamber
	ModUpperHighpoint
	ModLowerHighpoint
	ModBlend
	ModFailed
)

func (m ModKind) String() string {
	switch m {
	case ModNormalize:
		return "NORMALIZE"
	case ModRepanel:
		return "REPANEL"
	case ModTEGap:
		return "TE_GAP"
	case ModLERadius:
		return "LE_RADIUS"
	case ModMaxThickness:
		return "MAX_THICK"
	case ModMaxCamber:
		return "MAX_CAMB"
	case ModUpperHighpoint:
		return "UPPER_HIGHPOINT"
	case ModLowerHighpoint:
		return "LOWER_HIGHPOINT"
	case ModBlend:
		return "BLEND"
	case ModFailed:
		return "FAILED"
	default:
		return "NONE"
	}
}

// Modification records one entry of a Geometry's modification history.
type Modification struct {
	Kind  ModKind
	Label string // human readable description, e.g. "0.3000/0.1200 -> 0.3500/0.1000"
}

// OptState is the optimizer controller's state machine (section 4.8).
type OptState int

const (
	OptNotReady OptState = iota
	OptReady
	OptRunning
	OptStopping
	OptRunError
)

func (s OptState) String() string {
	switch s {
	case OptReady:
		return "Ready"
	case OptRunning:
		return "Running"
	case OptStopping:
		return "Stopping"
	case OptRunError:
		return "RunError"
	default:
		return "NotReady"
	}
}

// Observer receives change notifications from the core model. It replaces
// the Qt-signal / bound-method callbacks of the original implementation:
// the core never holds a reference back into a UI toolkit, it only calls
// out through this interface.
type Observer interface {
	// GeometryChanged is emitted whenever a Geometry mutator commits
	// (successfully or not) a change to an airfoil's point set.
	GeometryChanged(airfoilID string, mod Modification)

	// NewPolars is emitted by the Watchdog when one or more polars
	// finished loading (from disk or from a worker) since the last tick.
	NewPolars(airfoilID string)

	// OptimizerState is emitted by the Watchdog when an optimize case's
	// optimizer state, step count, or design count changes.
	OptimizerState(caseID string, state OptState, nSteps, nDesigns int)
}

// Observable is embedded by types that fan out notifications to a set of
// subscribed Observers.
type Observable struct {
	observers []Observer
}

// Subscribe registers an observer. Not safe for concurrent Subscribe calls;
// per section 5 all mutation of model data (including subscriber lists)
// happens in the UI domain.
func (o *Observable) Subscribe(obs Observer) {
	o.observers = append(o.observers, obs)
}

func (o *Observable) notifyGeometryChanged(airfoilID string, mod Modification) {
	for _, obs := range o.observers {
		obs.GeometryChanged(airfoilID, mod)
	}
}

func (o *Observable) notifyNewPolars(airfoilID string) {
	for _, obs := range o.observers {
		obs.NewPolars(airfoilID)
	}
}

func (o *Observable) notifyOptimizerState(caseID string, state OptState, nSteps, nDesigns int) {
	for _, obs := range o.observers {
		obs.OptimizerState(caseID, state, nSteps, nDesigns)
	}
}
