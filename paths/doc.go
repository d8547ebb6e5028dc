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

// Package paths contains functions to prepare paths to cardslot resources,
// such as the selections database and the preferences file.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the selections database.
//
//	d, err := paths.ResourcePath("", "selections.db")
//
// For development builds the base path is ".cardslot" in the current
// directory. For release builds (built with the "release" build tag) the
// user's config directory is used, as returned by os.UserConfigDir(). On a
// modern Linux system the path returned for the example above will be:
//
//	/home/user/.config/cardslot/selections.db
//
// Directories in the path are created as required.
package paths
