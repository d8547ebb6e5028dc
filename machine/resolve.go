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
	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/logger"
	"github.com/jetsetilly/cardslot/slot"
)

// Sentinel errors returned by Resolve() and Instantiate().
const (
	NotSelectable   = "machine: %s: option (%s) in slot (%s) can not be selected"
	FixedSlot       = "machine: %s: slot (%s) is fixed"
	NotCreatable    = "machine: %s: option (%s) in slot (%s) has a device type that can not be created"
	ConfigureFailed = "machine: %s: configuring option (%s) in slot (%s): %v"
)

// Source indicates why an option was chosen for a slot.
type Source int

// List of valid Source values.
const (
	SourceEmpty Source = iota
	SourceChoice
	SourceSoftware
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceEmpty:
		return "empty"
	case SourceChoice:
		return "choice"
	case SourceSoftware:
		return "software"
	case SourceDefault:
		return "default"
	}
	return "unknown"
}

// Resolved is the option that has been chosen for a slot.
type Resolved struct {
	Slot *Slot

	// the option is nil if the slot is to be left empty
	Option *slot.Option
	Source Source
}

func (r Resolved) String() string {
	if r.Option == nil {
		return fmt.Sprintf("%s: (empty)", r.Slot.Tag())
	}
	return fmt.Sprintf("%s: %s (%s)", r.Slot.Tag(), r.Option.Name(), r.Source)
}

// Resolve decides which option is to be used for each slot in the machine.
//
// The choices argument maps slot tags to option names. A choice of the empty
// string means that the slot should be left empty. A choice must name a
// selectable option and choices for fixed slots must be the default option.
//
// The hook argument can be nil.
func (m *Machine) Resolve(choices map[string]string, hook *slot.SoftwareHook) ([]Resolved, error) {
	for tag := range choices {
		if _, ok := m.slots[tag]; !ok {
			return nil, curated.Errorf(UnknownSlot, m.Name, tag)
		}
	}

	res := make([]Resolved, 0, len(m.order))

	for _, s := range m.Slots() {
		r, err := m.resolveSlot(s, choices, hook)
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "machine", "%s: resolved %s", m.Name, r)
		res = append(res, r)
	}

	return res, nil
}

// Check decides what Resolve() would do with the choice for a single slot.
// Other slots in the machine are not examined, so a problem with another slot
// does not prevent the choice from being checked.
func (m *Machine) Check(tag string, choice string) (Resolved, error) {
	s, err := m.Slot(tag)
	if err != nil {
		return Resolved{}, err
	}
	return m.resolveSlot(s, map[string]string{tag: choice}, nil)
}

func (m *Machine) resolveSlot(s *Slot, choices map[string]string, hook *slot.SoftwareHook) (Resolved, error) {
	if name, ok := choices[s.Tag()]; ok {
		if s.Fixed() && name != s.DefaultOption() {
			return Resolved{}, curated.Errorf(FixedSlot, m.Name, s.Tag())
		}

		if name == "" {
			return Resolved{Slot: s, Source: SourceChoice}, nil
		}

		opt, err := s.Require(name)
		if err != nil {
			return Resolved{}, curated.Errorf("machine: %s: %v", m.Name, err)
		}

		// internal options can still be the choice for a fixed slot because we
		// know the choice is the same as the default option
		if !opt.Selectable() && !s.Fixed() {
			return Resolved{}, curated.Errorf(NotSelectable, m.Name, name, s.Tag())
		}

		return Resolved{Slot: s, Option: opt, Source: SourceChoice}, nil
	}

	if hook != nil && s.DefaultCardSoftware != nil {
		if name := s.DefaultCardSoftware(hook); name != "" {
			opt, err := s.Require(name)
			if err != nil {
				return Resolved{}, curated.Errorf("machine: %s: %v", m.Name, err)
			}
			return Resolved{Slot: s, Option: opt, Source: SourceSoftware}, nil
		}
	}

	if name := s.DefaultOption(); name != "" {
		opt, err := s.Require(name)
		if err != nil {
			return Resolved{}, curated.Errorf("machine: %s: %v", m.Name, err)
		}
		return Resolved{Slot: s, Option: opt, Source: SourceDefault}, nil
	}

	return Resolved{Slot: s, Source: SourceEmpty}, nil
}

// Creator is implemented by device types that can create a card. The
// devices.Type type implements this interface.
type Creator interface {
	Create(tag string, clock uint32) (devices.Card, error)
}

// Instantiate creates a card for every resolved slot that is not empty. The
// card is given the BIOS and input defaults of the option, if it is
// configurable, and then the option's machine config is applied.
func (m *Machine) Instantiate(res []Resolved) ([]devices.Card, error) {
	cards := make([]devices.Card, 0, len(res))

	for _, r := range res {
		if r.Option == nil {
			continue
		}

		opt := r.Option
		tag := r.Slot.Tag()

		cr, ok := opt.DeviceType().(Creator)
		if !ok {
			return nil, curated.Errorf(NotCreatable, m.Name, opt.Name(), tag)
		}

		card, err := cr.Create(tag, slot.ResolveClock(opt.Clock(), m.Clock))
		if err != nil {
			return nil, curated.Errorf("machine: %s: %v", m.Name, err)
		}

		if c, ok := card.(devices.Configurable); ok {
			if opt.DefaultBIOS() != "" {
				if err := c.SetBIOS(opt.DefaultBIOS()); err != nil {
					return nil, curated.Errorf(ConfigureFailed, m.Name, opt.Name(), tag, err)
				}
			}
			if len(opt.InputDefaults()) > 0 {
				if err := c.SetInputDefaults(opt.InputDefaults()); err != nil {
					return nil, curated.Errorf(ConfigureFailed, m.Name, opt.Name(), tag, err)
				}
			}
		}

		if cfg := opt.MachineConfig(); cfg != nil {
			if err := cfg(card); err != nil {
				return nil, curated.Errorf(ConfigureFailed, m.Name, opt.Name(), tag, err)
			}
		}

		logger.Logf(logger.Allow, "machine", "%s: created %s", m.Name, card)

		cards = append(cards, card)
	}

	return cards, nil
}
