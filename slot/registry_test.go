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

package slot_test

import (
	"testing"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/slot"
	"github.com/jetsetilly/cardslot/test"
	"github.com/jetsetilly/cardslot/validity"
)

// deviceType is a minimal implementation of slot.DeviceType
type deviceType string

func (d deviceType) Shortname() string {
	return string(d)
}

func (d deviceType) Fullname() string {
	return "test " + string(d)
}

const (
	typeA = deviceType("typeA")
	typeB = deviceType("typeB")
	typeC = deviceType("typeC")
)

// names of all options in the registry in the order returned by Options()
func optionNames(r *slot.Registry) string {
	var s string
	for _, opt := range r.Options() {
		s += opt.Name() + ";"
	}
	return s
}

func TestAdd(t *testing.T) {
	r := slot.NewRegistry("cart")

	opt, err := r.Add("stick", typeA)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opt.Name(), "stick")

	l := r.Lookup("stick")
	test.DemandInequality(t, l, nil)
	test.ExpectEquality(t, l, opt)
	test.ExpectEquality(t, l.DeviceType(), slot.DeviceType(typeA))
	test.ExpectSuccess(t, l.Selectable())

	opt, err = r.AddInternal("builtin", typeB)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, opt.Selectable())
	test.ExpectEquality(t, r.Len(), 2)
	test.ExpectEquality(t, optionNames(r), "stick;builtin;")
}

func TestAddNoName(t *testing.T) {
	r := slot.NewRegistry("cart")

	_, err := r.Add("", typeA)
	test.ExpectSuccess(t, curated.Is(err, slot.NoName))
	_, err = r.AddInternal("", typeA)
	test.ExpectSuccess(t, curated.Is(err, slot.NoName))
	test.ExpectEquality(t, r.Len(), 0)
}

func TestAddDuplicate(t *testing.T) {
	r := slot.NewRegistry("cart")

	_, err := r.Add("stick", typeA)
	test.DemandSuccess(t, err)

	// adding the same name is an error and the registry is unchanged
	opt, err := r.Add("stick", typeB)
	test.ExpectSuccess(t, curated.Is(err, slot.DuplicateOption))
	test.ExpectEquality(t, err.Error(), "slot: cart: duplicate option (stick)")
	test.ExpectEquality(t, opt, nil)
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, r.Lookup("stick").DeviceType(), slot.DeviceType(typeA))
	test.ExpectSuccess(t, r.Lookup("stick").Selectable())

	// the same is true of an internal option with a name already in use
	_, err = r.AddInternal("stick", typeB)
	test.ExpectSuccess(t, curated.Is(err, slot.DuplicateOption))
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectSuccess(t, r.Lookup("stick").Selectable())
}

func TestReplace(t *testing.T) {
	r := slot.NewRegistry("cart")
	r.SetDefaultClock(1000)

	_, err := r.Add("first", typeA)
	test.DemandSuccess(t, err)
	old, err := r.Add("stick", typeA)
	test.DemandSuccess(t, err)
	old.SetClock(50).SetDefaultBIOS("rev1")
	_, err = r.Add("last", typeA)
	test.DemandSuccess(t, err)

	r.SetDefaultClock(2000)
	opt, err := r.Replace("stick", typeB)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opt.DeviceType(), slot.DeviceType(typeB))
	test.ExpectEquality(t, opt.Clock(), 2000)
	test.ExpectEquality(t, opt.DefaultBIOS(), "")
	test.ExpectSuccess(t, opt.Selectable())
	test.ExpectEquality(t, r.Lookup("stick"), opt)

	// position of replaced option is unchanged
	test.ExpectEquality(t, optionNames(r), "first;stick;last;")

	// the old handle is detached from the registry
	old.SetClock(99)
	test.ExpectEquality(t, r.Lookup("stick").Clock(), 2000)

	opt, err = r.ReplaceInternal("stick", typeC)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, opt.Selectable())
	test.ExpectEquality(t, r.Lookup("stick").DeviceType(), slot.DeviceType(typeC))
}

func TestReplaceNonexistent(t *testing.T) {
	r := slot.NewRegistry("cart")
	_, err := r.Add("stick", typeA)
	test.DemandSuccess(t, err)

	_, err = r.Replace("paddle", typeB)
	test.ExpectSuccess(t, curated.Is(err, slot.NonexistentOption))
	test.ExpectEquality(t, err.Error(), "slot: cart: attempt to replace nonexistent option (paddle)")
	_, err = r.ReplaceInternal("paddle", typeB)
	test.ExpectSuccess(t, curated.Is(err, slot.NonexistentOption))
	_, err = r.Replace("", typeB)
	test.ExpectSuccess(t, curated.Is(err, slot.NoName))

	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, r.Lookup("paddle"), nil)
	test.ExpectEquality(t, r.Lookup("stick").DeviceType(), slot.DeviceType(typeA))
}

func TestRemove(t *testing.T) {
	r := slot.NewRegistry("cart")
	for _, n := range []string{"a", "b", "c"} {
		_, err := r.Add(n, typeA)
		test.DemandSuccess(t, err)
	}

	test.ExpectSuccess(t, r.Remove("b"))
	test.ExpectEquality(t, r.Len(), 2)
	test.ExpectEquality(t, r.Lookup("b"), nil)
	test.ExpectEquality(t, optionNames(r), "a;c;")

	// removing a nonexistent option is an error and the registry is unchanged
	err := r.Remove("b")
	test.ExpectSuccess(t, curated.Is(err, slot.NonexistentOption))
	err = r.Remove("")
	test.ExpectSuccess(t, curated.Is(err, slot.NoName))
	test.ExpectEquality(t, r.Len(), 2)
	test.ExpectEquality(t, optionNames(r), "a;c;")

	// a removed name can be added again
	_, err = r.Add("b", typeB)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, optionNames(r), "a;c;b;")
}

func TestLookupAndRequire(t *testing.T) {
	r := slot.NewRegistry("cart")
	_, err := r.Add("stick", typeA)
	test.DemandSuccess(t, err)

	// lookup never fails
	test.ExpectEquality(t, r.Lookup("paddle"), nil)
	test.ExpectEquality(t, r.Lookup(""), nil)

	opt, err := r.Require("stick")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, opt, r.Lookup("stick"))

	opt, err = r.Require("paddle")
	test.ExpectSuccess(t, curated.Is(err, slot.NoSuchOption))
	test.ExpectEquality(t, err.Error(), "slot: cart: no option (paddle)")
	test.ExpectEquality(t, opt, nil)
	test.ExpectEquality(t, r.Len(), 1)
}

func TestHasSelectableOptions(t *testing.T) {
	r := slot.NewRegistry("cart")
	test.ExpectFailure(t, r.HasSelectableOptions())

	_, err := r.AddInternal("builtin", typeB)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, r.HasSelectableOptions())
	test.ExpectEquality(t, len(r.Selectable()), 0)

	_, err = r.Add("stick", typeA)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, r.HasSelectableOptions())
	test.DemandEquality(t, len(r.Selectable()), 1)
	test.ExpectEquality(t, r.Selectable()[0].Name(), "stick")

	// fixed slots have no selectable options even if there are selectable
	// entries in the registry
	r.SetFixed(true)
	test.ExpectFailure(t, r.HasSelectableOptions())
	test.ExpectEquality(t, len(r.Selectable()), 0)

	r.SetFixed(false)
	test.ExpectSuccess(t, r.HasSelectableOptions())
}

func TestValidate(t *testing.T) {
	r := slot.NewRegistry("cart")

	// no default option is not a problem
	v := validity.NewChecker()
	r.Validate(v)
	test.ExpectEquality(t, v.Count(), 0)

	// default option set before the option is added
	r.SetDefaultOption("stick")
	v = validity.NewChecker()
	r.Validate(v)
	test.ExpectEquality(t, v.Warnings(), 1)

	_, err := r.Add("stick", typeA)
	test.DemandSuccess(t, err)
	v = validity.NewChecker()
	r.Validate(v)
	test.ExpectEquality(t, v.Count(), 0)

	// removing the default option leaves a stale default
	test.DemandSuccess(t, r.Remove("stick"))
	test.ExpectEquality(t, r.DefaultOption(), "stick")
	v = validity.NewChecker()
	r.Validate(v)
	test.DemandEquality(t, v.Count(), 1)
	test.ExpectEquality(t, v.Diagnostics()[0].Message, "default option (stick) does not correspond to any configured option")

	// options without a device type are errors
	_, err = r.Add("stick", nil)
	test.DemandSuccess(t, err)
	v = validity.NewChecker()
	r.Validate(v)
	test.ExpectEquality(t, v.Errors(), 1)
	test.ExpectEquality(t, v.Warnings(), 0)
}

func TestOptionPayloads(t *testing.T) {
	r := slot.NewRegistry("cart")

	var configured any
	opt, err := r.Add("stick", typeA)
	test.DemandSuccess(t, err)
	opt.SetClock(3579545).
		SetDefaultBIOS("rev2").
		SetMachineConfig(func(card any) error {
			configured = card
			return nil
		}).
		SetInputDefaults(slot.InputDefault{Tag: "buttons", Mask: 0x0f, Default: 0x01})

	l := r.Lookup("stick")
	test.ExpectEquality(t, l.Clock(), 3579545)
	test.ExpectEquality(t, l.DefaultBIOS(), "rev2")
	test.DemandEquality(t, len(l.InputDefaults()), 1)
	test.ExpectEquality(t, l.InputDefaults()[0], slot.InputDefault{Tag: "buttons", Mask: 0x0f, Default: 0x01})
	test.DemandSuccess(t, l.MachineConfig() != nil)
	test.ExpectSuccess(t, l.MachineConfig()("card"))
	test.ExpectEquality(t, configured, any("card"))
}

func TestScenario(t *testing.T) {
	r := slot.NewRegistry("exp")
	r.SetDefaultClock(1000)

	opt, err := r.Add("cart", typeA)
	test.DemandSuccess(t, err)
	opt.SetDefaultBIOS("v1").SetMachineConfig(func(any) error { return nil })

	_, err = r.AddInternal("builtin", typeB)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, r.Len(), 2)

	cart := r.Lookup("cart")
	test.ExpectSuccess(t, cart.Selectable())
	test.ExpectEquality(t, cart.Clock(), 1000)

	builtin := r.Lookup("builtin")
	test.ExpectFailure(t, builtin.Selectable())
	test.ExpectEquality(t, builtin.Clock(), 1000)

	test.ExpectSuccess(t, r.HasSelectableOptions())

	// replacing resets the payloads and uses the registry default clock
	_, err = r.Replace("cart", typeC)
	test.DemandSuccess(t, err)
	cart = r.Lookup("cart")
	test.ExpectEquality(t, cart.DeviceType(), slot.DeviceType(typeC))
	test.ExpectEquality(t, cart.Clock(), 1000)
	test.ExpectEquality(t, cart.DefaultBIOS(), "")
	test.ExpectSuccess(t, cart.MachineConfig() == nil)
	test.ExpectEquality(t, len(cart.InputDefaults()), 0)
}
