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

import (
	"fmt"
	"strings"
)

// DeviceType is the recipe for the card that an Option creates when it is
// chosen. The Registry does not use the DeviceType except to store it and to
// return it.
type DeviceType interface {
	// short name of the device type. used to refer to the type in machine
	// descriptions
	Shortname() string

	// human readable name
	Fullname() string
}

// MachineConfig is a sub-configuration applied to the card created by an
// Option. The type of the card argument depends on the DeviceType.
type MachineConfig func(card any) error

// InputDefault is the default value for an input field of a card. The meaning
// of the Tag, Mask and Default fields is decided by the card.
type InputDefault struct {
	Tag     string
	Mask    uint32
	Default uint32
}

func (d InputDefault) String() string {
	return fmt.Sprintf("%s %#x=%#x", d.Tag, d.Mask, d.Default)
}

// Option is a single card configuration available to a slot.
type Option struct {
	name       string
	deviceType DeviceType
	selectable bool
	clock      uint32

	// opaque payloads. stored and returned but not interpreted by the registry
	defaultBIOS   string
	machineConfig MachineConfig
	inputDefaults []InputDefault
}

func newOption(name string, deviceType DeviceType, selectable bool) *Option {
	return &Option{
		name:       name,
		deviceType: deviceType,
		selectable: selectable,
	}
}

func (opt *Option) String() string {
	s := strings.Builder{}
	s.WriteString(opt.name)
	if opt.deviceType != nil {
		s.WriteString(fmt.Sprintf(" [%s]", opt.deviceType.Shortname()))
	}
	if !opt.selectable {
		s.WriteString(" (internal)")
	}
	return s.String()
}

// Name of the option. Unique within the Registry.
func (opt *Option) Name() string {
	return opt.name
}

// DeviceType returns the device type that will be used to create the card.
func (opt *Option) DeviceType() DeviceType {
	return opt.deviceType
}

// Selectable returns true if the option can be offered to the user as a choice.
func (opt *Option) Selectable() bool {
	return opt.selectable
}

// Clock returns the clock that will be used for the card. The value may be a
// derived clock. See DerivedClock().
func (opt *Option) Clock() uint32 {
	return opt.clock
}

// DefaultBIOS returns the name of the firmware the card should use unless the
// user chooses otherwise. Empty if there is no preference.
func (opt *Option) DefaultBIOS() string {
	return opt.defaultBIOS
}

// MachineConfig returns the sub-configuration for the card. May be nil.
func (opt *Option) MachineConfig() MachineConfig {
	return opt.machineConfig
}

// InputDefaults returns the default input values for the card. May be empty.
func (opt *Option) InputDefaults() []InputDefault {
	return opt.inputDefaults
}

// SetClock sets the clock to use for the card. Returns the same Option so
// that calls can be chained.
func (opt *Option) SetClock(clock uint32) *Option {
	opt.clock = clock
	return opt
}

// SetDefaultBIOS sets the default firmware. Returns the same Option so that
// calls can be chained.
func (opt *Option) SetDefaultBIOS(bios string) *Option {
	opt.defaultBIOS = bios
	return opt
}

// SetMachineConfig sets the sub-configuration for the card. Returns the same
// Option so that calls can be chained.
func (opt *Option) SetMachineConfig(config MachineConfig) *Option {
	opt.machineConfig = config
	return opt
}

// SetInputDefaults sets the default input values for the card. Returns the
// same Option so that calls can be chained.
func (opt *Option) SetInputDefaults(defaults ...InputDefault) *Option {
	opt.inputDefaults = defaults
	return opt
}
