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

package devices

// Builtin returns a new catalogue containing the device types that are known
// to cardslot without any additional code.
//
// The controller types are the peripherals that can be plugged into the player
// ports of an Atari VCS. The remaining types are cartridge and expansion
// cards.
func Builtin() *Catalogue {
	cat := NewCatalogue()

	for _, t := range []*Type{
		NewType("stick", "Joystick", nil),
		NewType("paddle", "Paddle Controllers", nil),
		NewType("keypad", "Keypad Controller", nil),
		NewType("gamepad", "Genesis Gamepad", nil),
		NewType("savekey", "SaveKey EEPROM", nil),
		NewType("atarivox", "AtariVox Speech Synthesizer", nil, "speakjet", "festival"),
		NewType("rom", "ROM Cartridge", nil),
		NewType("supercharger", "Supercharger", nil, "default", "alt"),
		NewType("ram", "RAM Expansion", nil),
		NewType("fdc", "Floppy Disk Controller", nil, "rev1", "rev2"),
	} {
		// none of the built-in types share a short name so Register() can not
		// fail
		if err := cat.Register(t); err != nil {
			panic(err)
		}
	}

	return cat
}
