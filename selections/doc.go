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

// Package selections remembers the option chosen by the user for each slot of
// a machine. Selections are stored in an SQLite database.
//
// The option name for a selection may be the empty string. This indicates
// that the user has chosen to leave the slot empty. Machine and slot names can
// not be empty.
//
// The schema is created and upgraded by the migrations in the migrations
// directory, which are embedded in the binary. Migrations are applied when the
// store is opened.
package selections
