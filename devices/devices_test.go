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

package devices_test

import (
	"testing"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/slot"
	"github.com/jetsetilly/cardslot/test"
)

func TestCatalogue(t *testing.T) {
	cat := devices.NewCatalogue()

	stick := devices.NewType("stick", "Joystick", nil)
	test.ExpectSuccess(t, cat.Register(stick))

	err := cat.Register(devices.NewType("stick", "Another Joystick", nil))
	test.ExpectSuccess(t, curated.Is(err, devices.DuplicateType))

	err = cat.Register(devices.NewType("", "No Name", nil))
	test.ExpectSuccess(t, curated.Is(err, devices.NoShortname))

	typ, err := cat.Lookup("stick")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, typ, stick)
	test.ExpectEquality(t, typ.Fullname(), "Joystick")

	_, err = cat.Lookup("paddle")
	test.ExpectSuccess(t, curated.Is(err, devices.UnknownType))

	test.ExpectSuccess(t, cat.Register(devices.NewType("atarivox", "AtariVox", nil)))
	l := cat.List()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0].Shortname(), "atarivox")
	test.ExpectEquality(t, l[1].Shortname(), "stick")
}

func TestBuiltin(t *testing.T) {
	cat := devices.Builtin()
	for _, n := range []string{"stick", "paddle", "keypad", "gamepad", "savekey", "atarivox"} {
		_, err := cat.Lookup(n)
		test.ExpectSuccess(t, err, n)
	}
}

func TestTypeImplementsDeviceType(t *testing.T) {
	var d slot.DeviceType = devices.NewType("rom", "ROM Cartridge", nil)
	test.ExpectEquality(t, d.Shortname(), "rom")
}

func TestGeneric(t *testing.T) {
	typ := devices.NewType("fdc", "Floppy Disk Controller", nil, "rev1", "rev2")

	c, err := typ.Create("exp", 1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Tag(), "exp")
	test.ExpectEquality(t, c.Type(), typ)
	test.ExpectEquality(t, c.Clock(), 1000)

	g, ok := c.(*devices.Generic)
	test.DemandSuccess(t, ok)

	// first bios is the default
	test.ExpectEquality(t, g.BIOS(), "rev1")
	test.ExpectSuccess(t, g.SetBIOS("rev2"))
	test.ExpectEquality(t, g.BIOS(), "rev2")

	err = g.SetBIOS("rev3")
	test.ExpectSuccess(t, curated.Is(err, devices.UnknownBIOS))
	test.ExpectEquality(t, g.BIOS(), "rev2")

	test.ExpectSuccess(t, g.SetSetting("mode", "fast"))
	test.ExpectFailure(t, g.SetSetting("", "fast"))
	v, ok := g.Setting("mode")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "fast")

	test.ExpectSuccess(t, g.SetInputDefaults([]slot.InputDefault{{Tag: "buttons", Mask: 0x0f, Default: 0x01}}))
	test.ExpectEquality(t, len(g.InputDefaults()), 1)

	test.ExpectEquality(t, g.String(), "exp: fdc @ 1000Hz bios=rev2 input=buttons 0xf=0x1 mode=fast")
}

func TestCreateError(t *testing.T) {
	failing := func(_ *devices.Type, _ string, _ uint32) (devices.Card, error) {
		return nil, curated.Errorf("no card today")
	}
	typ := devices.NewType("broken", "Broken Card", failing)
	_, err := typ.Create("exp", 0)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "devices: broken: no card today")
}
