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

package machine_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/machine"
	"github.com/jetsetilly/cardslot/slot"
	"github.com/jetsetilly/cardslot/test"
	"github.com/jetsetilly/cardslot/validity"
)

const vcsYAML = `
name: vcs
clock: 1193182
slots:
  - tag: left
    default: stick
    software:
      bin: paddle
    options:
      - name: stick
        type: stick
      - name: paddle
        type: paddle
        clock: 500
      - name: keypad
        type: keypad
  - tag: cart
    default: rom
    fixed: true
    options:
      - name: rom
        type: rom
        internal: true
  - tag: exp
    default: vox
    options:
      - name: vox
        type: atarivox
        bios: festival
        settings: {volume: loud}
        inputs:
          - {tag: buttons, mask: 0x0f, default: 0x01}
      - name: savekey
        type: savekey
      - name: ram
        type: ram
    remove: [ram]
    replace:
      - {name: savekey, type: fdc, internal: true}
`

func loadVCS(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := machine.LoadYAML(strings.NewReader(vcsYAML), devices.Builtin())
	test.DemandSuccess(t, err)
	return m
}

func TestAddSlot(t *testing.T) {
	m := machine.NewMachine("test", 1000)

	_, err := m.AddSlot("")
	test.ExpectEquality(t, curated.Is(err, machine.NoSlotTag), true)

	s, err := m.AddSlot("a")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Tag(), "a")

	_, err = m.AddSlot("a")
	test.ExpectEquality(t, curated.Is(err, machine.DuplicateSlot), true)

	_, err = m.AddSlot("b")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(m.Slots()), 2)
	test.ExpectEquality(t, m.Slots()[0].Tag(), "a")
	test.ExpectEquality(t, m.Slots()[1].Tag(), "b")

	_, err = m.Slot("c")
	test.ExpectEquality(t, curated.Is(err, machine.UnknownSlot), true)
}

func TestLoadYAML(t *testing.T) {
	m := loadVCS(t)
	test.ExpectEquality(t, m.Name, "vcs")
	test.ExpectEquality(t, m.Clock, uint32(1193182))
	test.DemandEquality(t, len(m.Slots()), 3)

	left, err := m.Slot("left")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(left.Names(), ","), "stick,paddle,keypad")
	test.ExpectEquality(t, left.DefaultOption(), "stick")
	test.ExpectSuccess(t, left.HasSelectableOptions())
	test.ExpectEquality(t, left.Lookup("paddle").Clock(), uint32(500))
	test.ExpectEquality(t, left.Lookup("stick").Clock(), slot.DerivedClock(1, 1))

	cart, err := m.Slot("cart")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.Fixed())
	test.ExpectFailure(t, cart.HasSelectableOptions())

	exp, err := m.Slot("exp")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(exp.Names(), ","), "vox,savekey")
	test.ExpectFailure(t, exp.Lookup("savekey").Selectable())
	test.ExpectEquality(t, exp.Lookup("savekey").DeviceType().Shortname(), "fdc")
	test.ExpectEquality(t, exp.Lookup("vox").DefaultBIOS(), "festival")
	test.ExpectEquality(t, len(exp.Lookup("vox").InputDefaults()), 1)
	test.ExpectSuccess(t, exp.Lookup("vox").MachineConfig() != nil)
}

func TestLoadYAMLErrors(t *testing.T) {
	cat := devices.Builtin()

	_, err := machine.LoadYAML(strings.NewReader(""), cat)
	test.ExpectEquality(t, curated.Is(err, machine.DescriptionError), true)

	_, err = machine.LoadYAML(strings.NewReader("clock: 100\n"), cat)
	test.ExpectEquality(t, curated.Is(err, machine.NoMachineName), true)

	// unknown fields are not allowed
	_, err = machine.LoadYAML(strings.NewReader("name: a\ncolour: red\n"), cat)
	test.ExpectEquality(t, curated.Is(err, machine.DescriptionError), true)

	_, err = machine.LoadYAML(strings.NewReader(`
name: a
slots:
  - tag: s
    options:
      - {name: x, type: nosuchtype}
`), cat)
	test.ExpectEquality(t, curated.Is(err, machine.DescriptionError), true)
	test.ExpectEquality(t, curated.Has(err, devices.UnknownType), true)

	_, err = machine.LoadYAML(strings.NewReader(`
name: a
slots:
  - tag: s
    options:
      - {name: x, type: stick}
      - {name: x, type: paddle}
`), cat)
	test.ExpectEquality(t, curated.Is(err, slot.DuplicateOption), true)

	_, err = machine.LoadYAML(strings.NewReader(`
name: a
slots:
  - tag: s
    remove: [x]
`), cat)
	test.ExpectEquality(t, curated.Is(err, slot.NonexistentOption), true)
}

func TestLoadFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "vcs.yaml")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(vcsYAML), 0600))

	m, err := machine.LoadFile(pth, devices.Builtin())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Name, "vcs")

	_, err = machine.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), devices.Builtin())
	test.ExpectEquality(t, curated.Is(err, machine.DescriptionError), true)
}

func TestValidate(t *testing.T) {
	m := loadVCS(t)

	v := validity.NewChecker()
	m.Validate(v)
	test.ExpectEquality(t, v.Count(), 0)

	// removing the default option leaves a stale default
	exp, err := m.Slot("exp")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, exp.Remove("vox"))

	v = validity.NewChecker()
	m.Validate(v)
	test.ExpectEquality(t, v.Warnings(), 1)
	test.ExpectEquality(t, v.Errors(), 0)
	test.ExpectEquality(t, v.Diagnostics()[0].Context, "vcs:exp")

	// empty machine
	v = validity.NewChecker()
	machine.NewMachine("empty", 0).Validate(v)
	test.ExpectEquality(t, v.Warnings(), 1)
}
