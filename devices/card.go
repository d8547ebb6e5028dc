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

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/slot"
)

// Card is a device that has been plugged into a slot.
type Card interface {
	// String should return information about the state of the card
	String() string

	// the tag of the slot the card is plugged into
	Tag() string

	// the Type the card was created from
	Type() *Type

	// the clock frequency of the card. never a derived clock
	Clock() uint32
}

// Configurable is implemented by cards that can accept the configuration
// payloads of a slot option.
type Configurable interface {
	SetBIOS(bios string) error
	SetInputDefaults(defaults []slot.InputDefault) error
	SetSetting(key string, value string) error
}

// Sentinel errors returned by the Generic card.
const (
	UnknownBIOS = "devices: %s: unknown bios (%s)"
)

// Generic is a card with no behaviour. It records the configuration it has
// been given.
type Generic struct {
	tag   string
	typ   *Type
	clock uint32

	bios     string
	inputs   []slot.InputDefault
	settings map[string]string
}

// NewGeneric creates a new Generic card. It satisfies the CreateFunc type.
func NewGeneric(t *Type, tag string, clock uint32) (Card, error) {
	c := &Generic{
		tag:      tag,
		typ:      t,
		clock:    clock,
		settings: make(map[string]string),
	}

	// the first bios in the list is the default
	if len(t.bios) > 0 {
		c.bios = t.bios[0]
	}

	return c, nil
}

func (c *Generic) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s @ %dHz", c.tag, c.typ.shortname, c.clock))
	if c.bios != "" {
		s.WriteString(fmt.Sprintf(" bios=%s", c.bios))
	}
	for _, d := range c.inputs {
		s.WriteString(fmt.Sprintf(" input=%s", d))
	}
	for _, k := range c.SettingKeys() {
		s.WriteString(fmt.Sprintf(" %s=%s", k, c.settings[k]))
	}
	return s.String()
}

// Tag implements the Card interface.
func (c *Generic) Tag() string {
	return c.tag
}

// Type implements the Card interface.
func (c *Generic) Type() *Type {
	return c.typ
}

// Clock implements the Card interface.
func (c *Generic) Clock() uint32 {
	return c.clock
}

// BIOS returns the firmware in use.
func (c *Generic) BIOS() string {
	return c.bios
}

// SetBIOS implements the Configurable interface. The firmware must be one of
// the firmware names of the card's Type.
func (c *Generic) SetBIOS(bios string) error {
	if !c.typ.HasBIOS(bios) {
		return curated.Errorf(UnknownBIOS, c.tag, bios)
	}
	c.bios = bios
	return nil
}

// InputDefaults returns the input defaults given to the card.
func (c *Generic) InputDefaults() []slot.InputDefault {
	return c.inputs
}

// SetInputDefaults implements the Configurable interface.
func (c *Generic) SetInputDefaults(defaults []slot.InputDefault) error {
	c.inputs = defaults
	return nil
}

// Setting returns the value of the named setting and whether it has been set.
func (c *Generic) Setting(key string) (string, bool) {
	v, ok := c.settings[key]
	return v, ok
}

// SettingKeys returns the names of all settings in alphabetical order.
func (c *Generic) SettingKeys() []string {
	keys := make([]string, 0, len(c.settings))
	for k := range c.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetSetting implements the Configurable interface.
func (c *Generic) SetSetting(key string, value string) error {
	if key == "" {
		return fmt.Errorf("devices: %s: setting without a name", c.tag)
	}
	c.settings[key] = value
	return nil
}
