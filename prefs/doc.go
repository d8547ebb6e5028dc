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

// Package prefs facilitates the storage of preferential values in the
// cardslot system. Preference values are stored in a Disk instance, which
// saves them to a text file.
//
// Preference types implement the pref interface. The Bool, String and Int
// types are provided. Each type can be given hook functions that are called
// before and after the value changes.
//
// Values can also be given on the command line with the -prefs flag. The
// command line values are pushed with PushCommandLineStack() and are used
// instead of the values on disk when a preference is added to a Disk.
package prefs
