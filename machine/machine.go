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

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/logger"
	"github.com/jetsetilly/cardslot/slot"
	"github.com/jetsetilly/cardslot/validity"
)

// Sentinel errors returned by the machine package.
const (
	NoSlotTag     = "machine: %s: slot without a tag"
	DuplicateSlot = "machine: %s: duplicate slot (%s)"
	UnknownSlot   = "machine: %s: no slot (%s)"
)

// Slot is a single expansion slot in the machine.
type Slot struct {
	*slot.Registry

	// DefaultCardSoftware returns the name of the option that should be used
	// for the software being loaded. An empty string indicates no preference.
	// Can be nil.
	DefaultCardSoftware func(*slot.SoftwareHook) string
}

// Machine is a named list of expansion slots.
type Machine struct {
	Name string

	// master clock of the machine. derived clocks of slot options are
	// resolved against this value
	Clock uint32

	slots map[string]*Slot
	order []string
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(name string, clock uint32) *Machine {
	return &Machine{
		Name:  name,
		Clock: clock,
		slots: make(map[string]*Slot),
		order: make([]string, 0),
	}
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s (%d slots)", m.Name, len(m.order))
}

// AddSlot adds a new, empty slot to the machine. The tag must not be empty and
// must not already be in use.
func (m *Machine) AddSlot(tag string) (*Slot, error) {
	if tag == "" {
		return nil, curated.Errorf(NoSlotTag, m.Name)
	}
	if _, ok := m.slots[tag]; ok {
		return nil, curated.Errorf(DuplicateSlot, m.Name, tag)
	}

	s := &Slot{
		Registry: slot.NewRegistry(tag),
	}
	m.slots[tag] = s
	m.order = append(m.order, tag)

	logger.Logf(logger.Allow, "machine", "%s: added slot %s", m.Name, tag)

	return s, nil
}

// Slot returns the slot with the tag or an UnknownSlot error.
func (m *Machine) Slot(tag string) (*Slot, error) {
	if s, ok := m.slots[tag]; ok {
		return s, nil
	}
	return nil, curated.Errorf(UnknownSlot, m.Name, tag)
}

// Slots returns all slots in the order they were added.
func (m *Machine) Slots() []*Slot {
	s := make([]*Slot, 0, len(m.order))
	for _, t := range m.order {
		s = append(s, m.slots[t])
	}
	return s
}

// Validate every slot in the machine. The context of the Checker is changed
// for each slot.
func (m *Machine) Validate(v *validity.Checker) {
	if len(m.order) == 0 {
		v.SetContext(m.Name)
		v.Warningf("machine has no slots")
	}

	for _, s := range m.Slots() {
		v.SetContext(fmt.Sprintf("%s:%s", m.Name, s.Tag()))
		s.Validate(v)

		if s.Fixed() && s.DefaultOption() == "" {
			v.Warningf("fixed slot has no default option")
		}
	}
}
