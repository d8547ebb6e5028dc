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

// Package machine describes an emulated machine as a list of expansion slots.
// Each slot has a registry of the options (cards) that can be plugged into
// it.
//
// A Machine can be built in code or loaded from a YAML description with
// LoadYAML(). Lua machine scripts are handled by the machine/script package.
//
// Once a Machine has been built, the Validate() function should be used to
// check for problems that could not be detected during assembly. After that,
// the Resolve() function decides which option is to be used for each slot and
// the Instantiate() function creates the cards.
//
// The option used for a slot is decided in this order:
//
//  1. the user's choice for the slot
//  2. the default card chosen by the slot for the software being loaded
//  3. the default option of the slot registry
//
// If none of these name an option the slot is left empty.
package machine
