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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/machine"
	"github.com/jetsetilly/cardslot/slot"
	"github.com/jetsetilly/cardslot/test"
)

func TestResolveDefaults(t *testing.T) {
	m := loadVCS(t)

	res, err := m.Resolve(nil, nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(res), 3)

	test.ExpectEquality(t, res[0].Option.Name(), "stick")
	test.ExpectEquality(t, res[0].Source, machine.SourceDefault)
	test.ExpectEquality(t, res[1].Option.Name(), "rom")
	test.ExpectEquality(t, res[2].Option.Name(), "vox")
	test.ExpectEquality(t, res[2].String(), "exp: vox (default)")
}

func TestResolveChoices(t *testing.T) {
	m := loadVCS(t)

	res, err := m.Resolve(map[string]string{"left": "keypad", "exp": ""}, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res[0].Option.Name(), "keypad")
	test.ExpectEquality(t, res[0].Source, machine.SourceChoice)
	test.ExpectEquality(t, res[2].Option == nil, true)
	test.ExpectEquality(t, res[2].String(), "exp: (empty)")

	// the default option of a fixed slot is an acceptable choice, even if it
	// is internal
	_, err = m.Resolve(map[string]string{"cart": "rom"}, nil)
	test.ExpectSuccess(t, err)

	_, err = m.Resolve(map[string]string{"cart": ""}, nil)
	test.ExpectEquality(t, curated.Is(err, machine.FixedSlot), true)

	_, err = m.Resolve(map[string]string{"left": "nosuchoption"}, nil)
	test.ExpectEquality(t, curated.Has(err, slot.NoSuchOption), true)

	// savekey was replaced by an internal option
	_, err = m.Resolve(map[string]string{"exp": "savekey"}, nil)
	test.ExpectEquality(t, curated.Is(err, machine.NotSelectable), true)

	_, err = m.Resolve(map[string]string{"right": "stick"}, nil)
	test.ExpectEquality(t, curated.Is(err, machine.UnknownSlot), true)
}

func TestResolveSoftware(t *testing.T) {
	m := loadVCS(t)

	pth := filepath.Join(t.TempDir(), "game.BIN")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0x00}, 0600))

	hook := slot.NewSoftwareHook(pth, nil)
	defer hook.Close()

	res, err := m.Resolve(nil, hook)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res[0].Option.Name(), "paddle")
	test.ExpectEquality(t, res[0].Source, machine.SourceSoftware)

	// the user's choice is more important than the software default
	res, err = m.Resolve(map[string]string{"left": "stick"}, hook)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res[0].Option.Name(), "stick")
}

func TestResolveStaleDefault(t *testing.T) {
	m := loadVCS(t)

	exp, err := m.Slot("exp")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, exp.Remove("vox"))

	_, err = m.Resolve(nil, nil)
	test.ExpectEquality(t, curated.Has(err, slot.NoSuchOption), true)

	// a choice for the slot means the stale default is never consulted
	_, err = m.Resolve(map[string]string{"exp": ""}, nil)
	test.ExpectSuccess(t, err)
}

func TestCheck(t *testing.T) {
	m := loadVCS(t)

	// a stale default in one slot does not stop a choice in another slot from
	// being checked
	exp, err := m.Slot("exp")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, exp.Remove("vox"))

	r, err := m.Check("left", "keypad")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "left: keypad (choice)")

	r, err = m.Check("left", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "left: (empty)")

	_, err = m.Check("left", "nosuchoption")
	test.ExpectEquality(t, curated.Has(err, slot.NoSuchOption), true)

	_, err = m.Check("cart", "")
	test.ExpectEquality(t, curated.Is(err, machine.FixedSlot), true)

	_, err = m.Check("right", "stick")
	test.ExpectEquality(t, curated.Is(err, machine.UnknownSlot), true)
}

func TestInstantiate(t *testing.T) {
	m := loadVCS(t)

	res, err := m.Resolve(map[string]string{"left": "paddle"}, nil)
	test.DemandSuccess(t, err)

	cards, err := m.Instantiate(res)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(cards), 3)

	// explicit clock
	test.ExpectEquality(t, cards[0].Clock(), uint32(500))
	test.ExpectEquality(t, cards[0].Type().Shortname(), "paddle")

	// derived clock is resolved against the machine clock
	test.ExpectEquality(t, cards[1].Clock(), uint32(1193182))

	vox, ok := cards[2].(*devices.Generic)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, vox.BIOS(), "festival")
	test.ExpectEquality(t, len(vox.InputDefaults()), 1)
	test.ExpectEquality(t, vox.InputDefaults()[0].Mask, uint32(0x0f))
	v, ok := vox.Setting("volume")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "loud")
	test.ExpectEquality(t, vox.String(), "exp: atarivox @ 1193182Hz bios=festival input=buttons 0xf=0x1 volume=loud")

	// empty slots do not create a card
	res, err = m.Resolve(map[string]string{"exp": ""}, nil)
	test.DemandSuccess(t, err)
	cards, err = m.Instantiate(res)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cards), 2)
}

type plainType string

func (t plainType) Shortname() string { return string(t) }
func (t plainType) Fullname() string  { return string(t) }

func TestInstantiateErrors(t *testing.T) {
	m := machine.NewMachine("test", 1000)
	s, err := m.AddSlot("a")
	test.DemandSuccess(t, err)
	s.SetDefaultOption("x")

	// a device type that can not create cards
	_, err = s.Add("x", plainType("plain"))
	test.DemandSuccess(t, err)

	res, err := m.Resolve(nil, nil)
	test.DemandSuccess(t, err)
	_, err = m.Instantiate(res)
	test.ExpectEquality(t, curated.Is(err, machine.NotCreatable), true)

	// an unknown bios
	opt, err := s.Replace("x", devices.NewType("fdc", "FDC", nil, "rev1"))
	test.DemandSuccess(t, err)
	opt.SetDefaultBIOS("rev9")

	res, err = m.Resolve(nil, nil)
	test.DemandSuccess(t, err)
	_, err = m.Instantiate(res)
	test.ExpectEquality(t, curated.Is(err, machine.ConfigureFailed), true)
	test.ExpectEquality(t, curated.Has(err, devices.UnknownBIOS), true)

	// failing machine config
	opt.SetDefaultBIOS("")
	opt.SetMachineConfig(func(_ any) error {
		return errors.New("broken")
	})

	res, err = m.Resolve(nil, nil)
	test.DemandSuccess(t, err)
	_, err = m.Instantiate(res)
	test.ExpectEquality(t, curated.Is(err, machine.ConfigureFailed), true)
}

func TestSettingsAndSoftwareDefaults(t *testing.T) {
	cfg := machine.Settings(map[string]string{"b": "2", "a": "1"})

	card, err := devices.NewType("ram", "RAM", nil).Create("exp", 100)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cfg(card))
	test.ExpectEquality(t, card.String(), "exp: ram @ 100Hz a=1 b=2")

	// a value that is not a configurable card
	test.ExpectFailure(t, cfg(42))

	// an empty key is rejected by the card
	test.ExpectFailure(t, machine.Settings(map[string]string{"": "x"})(card))

	pth := filepath.Join(t.TempDir(), "game.a26")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0x00}, 0600))
	hook := slot.NewSoftwareHook(pth, nil)
	defer hook.Close()

	sw := machine.SoftwareDefaults(map[string]string{"A26": "rom", "bin": "stick"})
	test.ExpectEquality(t, sw(hook), "rom")

	sw = machine.SoftwareDefaults(map[string]string{"bin": "stick"})
	test.ExpectEquality(t, sw(hook), "")
}
