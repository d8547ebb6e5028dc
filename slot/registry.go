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
	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/logger"
	"github.com/jetsetilly/cardslot/validity"
)

// Registry is the set of options available to a single slot.
//
// A Registry is not safe for concurrent mutation. It is expected that a
// Registry is populated by a single goroutine while a machine is being
// described. Once complete it can be shared freely for reading.
type Registry struct {
	// tag of the slot that owns the registry. used in error messages
	tag string

	options map[string]*Option

	// the order in which options were added. the order of options in the
	// Options() list is the order of this slice
	order []string

	// name of the default option. may name an option that has not (yet) been
	// added. checked by Validate()
	defaultOption string

	// a fixed slot offers no choice to the user
	fixed bool

	// clock given to new options
	defaultClock uint32
}

// NewRegistry is the preferred method of initialisation for the Registry type.
// The tag argument is the name of the slot that owns the registry.
func NewRegistry(tag string) *Registry {
	return &Registry{
		tag:          tag,
		options:      make(map[string]*Option),
		order:        make([]string, 0),
		defaultClock: DerivedClock(1, 1),
	}
}

// Tag returns the tag of the slot that owns the registry.
func (r *Registry) Tag() string {
	return r.tag
}

// DefaultOption returns the name of the default option. The empty string
// indicates there is no default option.
func (r *Registry) DefaultOption() string {
	return r.defaultOption
}

// SetDefaultOption sets the name of the default option. The option does not
// need to exist yet. Use the empty string for no default.
func (r *Registry) SetDefaultOption(name string) {
	r.defaultOption = name
}

// Fixed returns true if the slot offers no choice to the user.
func (r *Registry) Fixed() bool {
	return r.fixed
}

// SetFixed sets whether the slot offers a choice to the user.
func (r *Registry) SetFixed(fixed bool) {
	r.fixed = fixed
}

// DefaultClock returns the clock that will be given to new options.
func (r *Registry) DefaultClock() uint32 {
	return r.defaultClock
}

// SetDefaultClock sets the clock that will be given to options added or
// replaced after this call. Existing options are not changed.
func (r *Registry) SetDefaultClock(clock uint32) {
	r.defaultClock = clock
}

// Add a new selectable option to the registry. The name must not be empty and
// must not already be in use.
func (r *Registry) Add(name string, deviceType DeviceType) (*Option, error) {
	return r.add("add", name, deviceType, true)
}

// AddInternal adds a new option that can not be selected by the user. The name
// must not be empty and must not already be in use.
func (r *Registry) AddInternal(name string, deviceType DeviceType) (*Option, error) {
	return r.add("add", name, deviceType, false)
}

func (r *Registry) add(op string, name string, deviceType DeviceType, selectable bool) (*Option, error) {
	if name == "" {
		return nil, curated.Errorf(NoName, r.tag, op)
	}
	if _, ok := r.options[name]; ok {
		return nil, curated.Errorf(DuplicateOption, r.tag, name)
	}

	opt := newOption(name, deviceType, selectable).SetClock(r.defaultClock)
	r.options[name] = opt
	r.order = append(r.order, name)

	return opt, nil
}

// Replace an existing option with a new selectable option. Nothing from the
// previous option is kept. The clock of the new option is the current default
// clock of the registry.
func (r *Registry) Replace(name string, deviceType DeviceType) (*Option, error) {
	return r.replace(name, deviceType, true)
}

// ReplaceInternal replaces an existing option with a new option that can not
// be selected by the user. Nothing from the previous option is kept.
func (r *Registry) ReplaceInternal(name string, deviceType DeviceType) (*Option, error) {
	return r.replace(name, deviceType, false)
}

func (r *Registry) replace(name string, deviceType DeviceType, selectable bool) (*Option, error) {
	if name == "" {
		return nil, curated.Errorf(NoName, r.tag, "replace")
	}
	if _, ok := r.options[name]; !ok {
		return nil, curated.Errorf(NonexistentOption, r.tag, "replace", name)
	}

	// the position of the option in the order list is not changed
	opt := newOption(name, deviceType, selectable).SetClock(r.defaultClock)
	r.options[name] = opt

	logger.Logf(logger.Allow, "slot", "%s: replaced option %s", r.tag, name)

	return opt, nil
}

// Remove an existing option. Removing the default option does not change the
// DefaultOption() value. A stale default will be reported by Validate().
func (r *Registry) Remove(name string) error {
	if name == "" {
		return curated.Errorf(NoName, r.tag, "remove")
	}
	if _, ok := r.options[name]; !ok {
		return curated.Errorf(NonexistentOption, r.tag, "remove", name)
	}

	delete(r.options, name)
	for i := range r.order {
		if r.order[i] == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break // for loop
		}
	}

	logger.Logf(logger.Allow, "slot", "%s: removed option %s", r.tag, name)

	return nil
}

// Lookup returns the named option or nil if there is no such option.
func (r *Registry) Lookup(name string) *Option {
	return r.options[name]
}

// Require returns the named option. Unlike Lookup(), it is an error for the
// option not to exist.
func (r *Registry) Require(name string) (*Option, error) {
	if opt, ok := r.options[name]; ok {
		return opt, nil
	}
	return nil, curated.Errorf(NoSuchOption, r.tag, name)
}

// Len returns the number of options in the registry.
func (r *Registry) Len() int {
	return len(r.options)
}

// Names returns the names of all options in the order they were added.
func (r *Registry) Names() []string {
	n := make([]string, len(r.order))
	copy(n, r.order)
	return n
}

// Options returns all options, selectable or otherwise, in the order they were
// added. A replaced option is in the position of the option it replaced.
func (r *Registry) Options() []*Option {
	o := make([]*Option, 0, len(r.order))
	for _, n := range r.order {
		o = append(o, r.options[n])
	}
	return o
}

// Selectable returns the options that should be offered to the user as a
// choice. The list is empty for fixed slots.
func (r *Registry) Selectable() []*Option {
	o := make([]*Option, 0, len(r.order))
	if r.fixed {
		return o
	}
	for _, n := range r.order {
		if opt := r.options[n]; opt.selectable {
			o = append(o, opt)
		}
	}
	return o
}

// HasSelectableOptions returns true if the slot is not fixed and at least one
// option is selectable.
func (r *Registry) HasSelectableOptions() bool {
	if !r.fixed {
		for _, opt := range r.options {
			if opt.selectable {
				return true
			}
		}
	}
	return false
}

// Validate checks the registry for problems that could not be checked during
// assembly. Problems are reported to the Reporter and not returned.
func (r *Registry) Validate(v validity.Reporter) {
	if r.defaultOption != "" {
		if _, ok := r.options[r.defaultOption]; !ok {
			v.Warningf("default option (%s) does not correspond to any configured option", r.defaultOption)
		}
	}

	for _, n := range r.order {
		if r.options[n].deviceType == nil {
			v.Errorf("option (%s) has no device type", n)
		}
	}
}
