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

package preferences_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/preferences"
	"github.com/jetsetilly/cardslot/prefs"
	"github.com/jetsetilly/cardslot/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn, "default.db")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Database.String(), "default.db")
	test.ExpectEquality(t, p.Interactive.Get(), prefs.Value(true))
	test.ExpectEquality(t, p.EchoLog.Get(), prefs.Value(false))
	test.ExpectEquality(t, p.LogTail.Get(), prefs.Value(0))
}

func TestFileAndEnvironment(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	content := fmt.Sprintf("%s\n%s :: disk.db\n%s :: false\n", prefs.WarningBoilerPlate,
		preferences.KeyDatabase, preferences.KeyInteractive)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0600))

	p, err := preferences.NewPreferences(fn, "default.db")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Database.String(), "disk.db")
	test.ExpectEquality(t, p.Interactive.Get(), prefs.Value(false))

	// environment is more important than the file
	t.Setenv("CARDSLOT_DATABASE", "env.db")
	t.Setenv("CARDSLOT_ECHO_LOG", "true")
	t.Setenv("CARDSLOT_LOG_TAIL", "5")

	p, err = preferences.NewPreferences(fn, "default.db")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Database.String(), "env.db")
	test.ExpectEquality(t, p.EchoLog.Get(), prefs.Value(true))
	test.ExpectEquality(t, p.LogTail.Get(), prefs.Value(5))

	// the command line is more important than the environment
	prefs.PushCommandLineStack(fmt.Sprintf("%s::cmd.db", preferences.KeyDatabase))
	p, err = preferences.NewPreferences(fn, "default.db")
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Database.String(), "cmd.db")
	test.ExpectEquality(t, p.LogTail.Get(), prefs.Value(5))

	// invalid environment value
	t.Setenv("CARDSLOT_INTERACTIVE", "maybe")
	_, err = preferences.NewPreferences(fn, "default.db")
	test.ExpectEquality(t, curated.Is(err, preferences.EnvError), true)
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn, "default.db")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.EchoLog.Set(true))
	test.DemandSuccess(t, p.Save())

	p, err = preferences.NewPreferences(fn, "default.db")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.EchoLog.Get(), prefs.Value(true))
	test.ExpectEquality(t, p.Database.String(), "default.db")
}
