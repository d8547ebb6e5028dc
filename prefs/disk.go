// This file is part of cardslot.
//
// cardslot is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cardslot is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cardslot.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/logger"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key and value on a line of the prefs file.
const keySep = " :: "

// Sentinel errors returned by the Disk type.
const (
	DuplicateKey  = "prefs: duplicate key (%s)"
	FileError     = "prefs: %s: %v"
	NoBoilerPlate = "prefs: %s: not a prefs file"
)

// Disk is a collection of preference values that are saved to, and loaded
// from, the same file.
type Disk struct {
	path    string
	entries map[string]pref

	// keys with values taken from the command line. these are not changed by
	// Load()
	commandLine map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to Disk. If the key has been given on the command
// line, the command line value is applied now.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return err
		}
		dsk.commandLine[key] = true
	}

	return nil
}

// read the prefs file into a map. a missing file is the same as an empty file
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, curated.Errorf(FileError, dsk.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		if scanner.Err() != nil {
			return nil, curated.Errorf(FileError, dsk.path, scanner.Err())
		}
		// an empty file is allowed
		if scanner.Text() == "" {
			return entries, nil
		}
		return nil, curated.Errorf(NoBoilerPlate, dsk.path)
	}

	for scanner.Scan() {
		if k, v, ok := strings.Cut(scanner.Text(), keySep); ok {
			entries[k] = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FileError, dsk.path, err)
	}

	return entries, nil
}

// Save preference values to disk. Entries in the file that do not belong to
// this Disk are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(FileError, dsk.path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, entries[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(FileError, dsk.path, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(FileError, dsk.path, err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d entries to %s", len(dsk.entries), dsk.path)

	return nil
}

// Load preference values from disk. Only the values that have been added to
// the Disk are changed. Values given on the command line are not overwritten.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		v, ok := entries[k]
		if !ok || dsk.commandLine[k] {
			continue // for loop
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(FileError, dsk.path, err)
		}
	}

	return nil
}

// FromCommandLine returns true if the value for key was taken from the
// command line when it was added to the Disk.
func (dsk *Disk) FromCommandLine(key string) bool {
	return dsk.commandLine[key]
}
