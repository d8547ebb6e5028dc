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

package slot

// Sentinel error patterns returned by the Registry. Use curated.Is() or
// curated.Has() to test for these.
const (
	// the first placeholder is the slot tag and the second is the name of the
	// operation. for example "add" or "remove"
	NoName = "slot: %s: attempt to %s option without name"

	// slot tag and option name
	DuplicateOption = "slot: %s: duplicate option (%s)"

	// slot tag, name of operation and option name
	NonexistentOption = "slot: %s: attempt to %s nonexistent option (%s)"

	// slot tag and option name. returned by Require()
	NoSuchOption = "slot: %s: no option (%s)"
)
