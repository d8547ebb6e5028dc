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

// Package preferences contains the preferences of the cardslot application.
//
// Preference values are decided in the following order, with later values
// replacing earlier ones:
//
//  1. built-in defaults
//  2. the preferences file
//  3. environment variables
//  4. the -prefs flag on the command line
//
// The environment variables are CARDSLOT_DATABASE, CARDSLOT_INTERACTIVE,
// CARDSLOT_ECHO_LOG and CARDSLOT_LOG_TAIL.
package preferences

import (
	"github.com/caarlos0/env/v11"
	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/prefs"
)

// Sentinel errors returned by the preferences package.
const (
	EnvError = "preferences: environment: %v"
)

// Keys used in the preferences file and with the -prefs flag.
const (
	KeyDatabase    = "selections.database"
	KeyInteractive = "chooser.interactive"
	KeyEchoLog     = "logger.echo"
	KeyLogTail     = "logger.tail"
)

// environment variables. pointer fields are nil if the variable is not set
type environment struct {
	Database    *string `env:"CARDSLOT_DATABASE"`
	Interactive *bool   `env:"CARDSLOT_INTERACTIVE"`
	EchoLog     *bool   `env:"CARDSLOT_ECHO_LOG"`
	LogTail     *int    `env:"CARDSLOT_LOG_TAIL"`
}

// Preferences for the cardslot application.
type Preferences struct {
	dsk *prefs.Disk

	// path to the selections database
	Database prefs.String

	// use single key selection in the SELECT mode if stdin is a terminal
	Interactive prefs.Bool

	// echo log entries to stderr as they are created
	EchoLog prefs.Bool

	// number of log entries to print after an error. not used if the log is
	// being echoed
	LogTail prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The filename argument is the path to the preferences
// file. The defaultDatabase argument is the database path to use if no other
// path is specified.
func NewPreferences(filename string, defaultDatabase string) (*Preferences, error) {
	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}

	if err := p.SetDefaults(defaultDatabase); err != nil {
		return nil, err
	}

	if err := p.dsk.Add(KeyDatabase, &p.Database); err != nil {
		return nil, err
	}
	if err := p.dsk.Add(KeyInteractive, &p.Interactive); err != nil {
		return nil, err
	}
	if err := p.dsk.Add(KeyEchoLog, &p.EchoLog); err != nil {
		return nil, err
	}
	if err := p.dsk.Add(KeyLogTail, &p.LogTail); err != nil {
		return nil, err
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the built-in default values.
func (p *Preferences) SetDefaults(defaultDatabase string) error {
	if err := p.Database.Set(defaultDatabase); err != nil {
		return err
	}
	if err := p.Interactive.Set(true); err != nil {
		return err
	}
	if err := p.EchoLog.Set(false); err != nil {
		return err
	}
	return p.LogTail.Set(0)
}

// Load preferences from disk and then apply the environment. Values given on
// the command line are not changed.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(); err != nil {
		return err
	}

	var e environment
	if err := env.Parse(&e); err != nil {
		return curated.Errorf(EnvError, err)
	}

	if e.Database != nil && !p.dsk.FromCommandLine(KeyDatabase) {
		if err := p.Database.Set(*e.Database); err != nil {
			return err
		}
	}
	if e.Interactive != nil && !p.dsk.FromCommandLine(KeyInteractive) {
		if err := p.Interactive.Set(*e.Interactive); err != nil {
			return err
		}
	}
	if e.EchoLog != nil && !p.dsk.FromCommandLine(KeyEchoLog) {
		if err := p.EchoLog.Set(*e.EchoLog); err != nil {
			return err
		}
	}
	if e.LogTail != nil && !p.dsk.FromCommandLine(KeyLogTail) {
		if err := p.LogTail.Set(*e.LogTail); err != nil {
			return err
		}
	}

	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
