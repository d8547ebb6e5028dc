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

package machine

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/slot"
)

// Settings returns a MachineConfig that applies the key/value settings to a
// configurable card. Settings are applied in key order.
func Settings(settings map[string]string) slot.MachineConfig {
	// copy settings so that later changes to the map have no effect
	s := maps.Clone(settings)
	keys := slices.Sorted(maps.Keys(s))

	return func(card any) error {
		c, ok := card.(devices.Configurable)
		if !ok {
			return fmt.Errorf("card does not accept settings")
		}
		for _, k := range keys {
			if err := c.SetSetting(k, s[k]); err != nil {
				return err
			}
		}
		return nil
	}
}

// SoftwareDefaults returns a function suitable for the DefaultCardSoftware
// field of a Slot. The types argument maps file types to option names. File
// types are compared without regard to case.
func SoftwareDefaults(types map[string]string) func(*slot.SoftwareHook) string {
	t := maps.Clone(types)
	keys := slices.Sorted(maps.Keys(t))

	return func(hook *slot.SoftwareHook) string {
		for _, k := range keys {
			if hook.IsFiletype(k) {
				return t[k]
			}
		}
		return ""
	}
}
