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
	"os"
	"path/filepath"
)

// InputFile wraps the Xoptfoil2 namelist input, bundling the groups
// named in section 6.4. It is the thing an OptimizeCase saves, checks,
// and hands to the Optimizer.
type InputFile struct {
	Path string
	NL   *Namelist
}

// NewInputFile wraps an already-built namelist for writing to path.
func NewInputFile(path string, nl *Namelist) *InputFile {
	return &InputFile{Path: path, NL: nl}
}

// LoadInputFile parses an existing Xoptfoil2 input file.
func LoadInputFile(path string) (*InputFile, error) {
	nl, err := ParseNamelist(path)
	if err != nil {
		return nil, err
	}
	return &InputFile{Path: path, NL: nl}, nil
}

// Save writes the namelist and, if exePath is non-empty, validates it
// via the optimizer's --check-input mode first.
func (f *InputFile) Save(exePath string) error {
	if exePath != "" {
		tmp := f.Path + ".tmp"
		if err := WriteNamelist(tmp, f.NL); err != nil {
			return err
		}
		if err := CheckContent(exePath, tmp); err != nil {
			os.Remove(tmp)
			return err
		}
		os.Remove(tmp)
	}
	return WriteNamelist(f.Path, f.NL)
}

// ResultReader locates and validates the result airfoil file an
// optimizer run is expected to produce.
type ResultReader struct {
	ResultDir  string
	OutName    string
	ResultExt  string
}

// ResultPath returns the expected result airfoil path.
func (r *ResultReader) ResultPath() string {
	return filepath.Join(r.ResultDir, r.OutName+r.ResultExt)
}

// Exists reports whether the result file is present.
func (r *ResultReader) Exists() bool {
	_, err := os.Stat(r.ResultPath())
	return err == nil
}

// MTime returns the result file's modification time as a unix second
// count, or 0 if it does not exist.
func (r *ResultReader) MTime() int64 {
	info, err := os.Stat(r.ResultPath())
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}

// OptimizeCase owns one Optimizer run: its input file, the airfoil it
// is meant to produce, and the logic deciding whether that run has
// genuinely finished.
type OptimizeCase struct {
	Input     *InputFile
	Result    *ResultReader
	Optimizer *Optimizer

	resultDirMTime int64 // last-write time of the result directory itself
}

// NewOptimizeCase wires an input file, expected result location, and
// optimizer together. outName is derived from the input file's stem.
func NewOptimizeCase(input *InputFile, resultDir, resultExt string, opt *Optimizer) *OptimizeCase {
	outName := stemName(filepath.Base(input.Path), filepath.Ext(input.Path))
	return &OptimizeCase{
		Input:     input,
		Result:    &ResultReader{ResultDir: resultDir, OutName: outName, ResultExt: resultExt},
		Optimizer: opt,
	}
}

// Run launches the optimizer against this case's input file.
func (c *OptimizeCase) Run() error {
	c.noteResultDirWrite()
	return c.Optimizer.Run(c.Result.OutName, c.Input.Path)
}

// IsFinished reports true iff: the input file exists, a result airfoil
// file exists, its mtime is at least as new as the result directory's
// last observed write time, and the optimizer has settled into Ready.
func (c *OptimizeCase) IsFinished() bool {
	if _, err := os.Stat(c.Input.Path); err != nil {
		return false
	}
	if !c.Result.Exists() {
		return false
	}
	if c.Result.MTime() < c.resultDirMTime {
		return false
	}
	return c.Optimizer.State() == OptReady
}

// noteResultDirWrite records the result directory's mtime at the moment
// the run was launched, so a stale leftover result file from a previous
// run cannot be mistaken for a fresh one.
func (c *OptimizeCase) noteResultDirWrite() {
	if info, err := os.Stat(c.Result.ResultDir); err == nil {
		c.resultDirMTime = info.ModTime().Unix()
	}
}
