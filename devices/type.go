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
)

// CreateFunc creates a new card of the specified type.
type CreateFunc func(t *Type, tag string, clock uint32) (Card, error)

// Type implements the slot.DeviceType interface.
type Type struct {
	shortname string
	fullname  string
	create    CreateFunc

	// list of firmware names the card accepts. an empty list means that the
	// card has no firmware
	bios []string
}

// NewType is the preferred method of initialisation for the Type type. The
// create argument can be nil, in which case the Generic card will be created.
func NewType(shortname string, fullname string, create CreateFunc, bios ...string) *Type {
	if create == nil {
		create = NewGeneric
	}
	return &Type{
		shortname: shortname,
		fullname:  fullname,
		create:    create,
		bios:      bios,
	}
}

func (t *Type) String() string {
	return fmt.Sprintf("%s (%s)", t.shortname, t.fullname)
}

// Shortname implements the slot.DeviceType interface.
func (t *Type) Shortname() string {
	return t.shortname
}

// Fullname implements the slot.DeviceType interface.
func (t *Type) Fullname() string {
	return t.fullname
}

// BIOS returns the list of firmware names accepted by cards of this type.
func (t *Type) BIOS() []string {
	return t.bios
}

// HasBIOS returns true if the named firmware is accepted by cards of this
// type.
func (t *Type) HasBIOS(bios string) bool {
	for _, b := range t.bios {
		if b == bios {
			return true
		}
	}
	return false
}

// Create a new card of this type.
func (t *Type) Create(tag string, clock uint32) (Card, error) {
	c, err := t.create(t, tag, clock)
	if err != nil {
		return nil, fmt.Errorf("devices: %s: %w", t.shortname, err)
	}
	return c, nil
}
