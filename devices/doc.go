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

// Package devices defines the device types that slot options refer to and the
// cards that are created from them.
//
// A device type is registered with a Catalogue under its short name. Machine
// descriptions refer to device types by short name and the Catalogue is used
// to find the Type. The Type is then stored in the slot registry as the
// option's slot.DeviceType.
//
// When a machine is instantiated the Type of the chosen option is used to
// create a Card. Cards that implement the Configurable interface can then be
// given the option's BIOS, input defaults and settings.
package devices
