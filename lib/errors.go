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

import "fmt"

// ErrorKind classifies the errors raised by the geometry/polar/worker
// subsystems (see spec section 7, "Error Handling Design").
type ErrorKind int

const (
	_ ErrorKind = iota
	ErrInvalidCoordinates
	ErrNormalizationFailed
	ErrLeFindFailed
	ErrPolarLoadFailed
	ErrPolarGenerationFailed
	ErrWorkerNotReady
	ErrWorkerVersionTooOld
	ErrInputParseError
	ErrIOFileNotFound
	ErrIOPermission
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidCoordinates:
		return "Geometry.InvalidCoordinates"
	case ErrNormalizationFailed:
		return "Geometry.NormalizationFailed"
	case ErrLeFindFailed:
		return "Geometry.LeFindFailed"
	case ErrPolarLoadFailed:
		return "Polar.LoadFailed"
	case ErrPolarGenerationFailed:
		return "Polar.GenerationFailed"
	case ErrWorkerNotReady:
		return "Worker.NotReady"
	case ErrWorkerVersionTooOld:
		return "Worker.VersionTooOld"
	case ErrInputParseError:
		return "Input.ParseError"
	case ErrIOFileNotFound:
		return "IO.FileNotFound"
	case ErrIOPermission:
		return "IO.Permission"
	default:
		return "Unknown"
	}
}

// GeometryError wraps a geometry-subsystem failure with its Kind and an
// optional wrapped cause, so a caller can react via errors.As/Is.
type GeometryError struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func NewGeometryError(kind ErrorKind, msg string) *GeometryError {
	return &GeometryError{Kind: kind, Msg: msg}
}

func WrapGeometryError(kind ErrorKind, msg string, cause error) *GeometryError {
	return &GeometryError{Kind: kind, Msg: msg, Cause: cause}
}

func (e *GeometryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *GeometryError) Unwrap() error { return e.Cause }

// PolarError reports a failure attached to a single polar or polar task.
type PolarError struct {
	Kind ErrorKind
	Msg  string
}

func NewPolarError(kind ErrorKind, msg string) *PolarError {
	return &PolarError{Kind: kind, Msg: msg}
}

func (e *PolarError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// WorkerError reports a failure in spawning/monitoring an external process.
type WorkerError struct {
	Kind ErrorKind
	Msg  string
	Code int // process exit code, if applicable
}

func NewWorkerError(kind ErrorKind, msg string, code int) *WorkerError {
	return &WorkerError{Kind: kind, Msg: msg, Code: code}
}

func (e *WorkerError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: %s (exit code %d)", e.Kind, e.Msg, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// InputError reports a namelist/input-file validation failure.
type InputError struct {
	Group string // offending namelist group, if known
	Msg   string
}

func NewInputError(group, msg string) *InputError {
	return &InputError{Group: group, Msg: msg}
}

func (e *InputError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("Input.ParseError[%s]: %s", e.Group, e.Msg)
	}
	return fmt.Sprintf("Input.ParseError: %s", e.Msg)
}
