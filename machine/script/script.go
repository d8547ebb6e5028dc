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

// Package script loads machine descriptions written in Lua.
//
// A script creates a machine with Machine.new() and returns it:
//
//	local m = Machine.new("vcs", 1193182)
//	local s = m:slot("left")
//	s:add("stick", "stick")
//	s:add("paddle", "paddle"):clock(500)
//	s:add_internal("builtin", "keypad"):bios("rev2"):input("buttons", 0x0f, 0)
//	s:default("stick")
//	return m
//
// Device types are named by their short name in the catalogue given to Load()
// or LoadFile(). Errors from the slot registry are raised as Lua errors and
// abort the script.
package script

import (
	"math"
	"path/filepath"

	"github.com/Shopify/go-lua"
	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/logger"
	"github.com/jetsetilly/cardslot/machine"
	"github.com/jetsetilly/cardslot/slot"
)

// Sentinel errors returned by Load() and LoadFile().
const (
	ScriptError = "script: %s: %v"
	NoMachine   = "script: %s: script must return a Machine"
)

const (
	machineTypeName = "cardslot.Machine"
	slotTypeName    = "cardslot.Slot"
	optionTypeName  = "cardslot.Option"
)

type loader struct {
	cat *devices.Catalogue

	// file type to option mappings for each slot. applied to the slot when
	// the script has finished
	software map[*machine.Slot]map[string]string
}

// LoadFile runs the Lua script in the named file and returns the machine it
// creates.
func LoadFile(filename string, cat *devices.Catalogue) (*machine.Machine, error) {
	return run(filepath.Base(filename), cat, func(state *lua.State) error {
		return lua.LoadFile(state, filename, "")
	})
}

// Load runs the Lua script in the src string. The name argument is used in
// error messages.
func Load(name string, src string, cat *devices.Catalogue) (*machine.Machine, error) {
	return run(name, cat, func(state *lua.State) error {
		return lua.LoadBuffer(state, src, name, "")
	})
}

func run(name string, cat *devices.Catalogue, load func(*lua.State) error) (*machine.Machine, error) {
	ld := &loader{
		cat:      cat,
		software: make(map[*machine.Slot]map[string]string),
	}

	state := lua.NewState()
	lua.OpenLibraries(state)
	ld.register(state)

	if err := load(state); err != nil {
		return nil, curated.Errorf(ScriptError, name, err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, curated.Errorf(ScriptError, name, err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, curated.Errorf(NoMachine, name)
	}
	ud := state.ToUserData(-1)
	state.Pop(1)

	m, ok := ud.(*machine.Machine)
	if !ok || m == nil {
		return nil, curated.Errorf(NoMachine, name)
	}

	for s, types := range ld.software {
		s.DefaultCardSoftware = machine.SoftwareDefaults(types)
	}

	logger.Logf(logger.Allow, "script", "%s: loaded %s", name, m)

	return m, nil
}

func (ld *loader) register(state *lua.State) {
	registerType(state, machineTypeName, []lua.RegistryFunction{
		{Name: "slot", Function: machineSlot},
	})

	registerType(state, slotTypeName, []lua.RegistryFunction{
		{Name: "add", Function: ld.slotAdd},
		{Name: "add_internal", Function: ld.slotAddInternal},
		{Name: "replace", Function: ld.slotReplace},
		{Name: "replace_internal", Function: ld.slotReplaceInternal},
		{Name: "remove", Function: slotRemove},
		{Name: "default", Function: slotDefault},
		{Name: "fixed", Function: slotFixed},
		{Name: "default_clock", Function: slotDefaultClock},
		{Name: "software", Function: ld.slotSoftware},
	})

	registerType(state, optionTypeName, []lua.RegistryFunction{
		{Name: "clock", Function: optionClock},
		{Name: "bios", Function: optionBIOS},
		{Name: "settings", Function: optionSettings},
		{Name: "input", Function: optionInput},
	})

	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "new", Function: machineNew},
	}, 0)
	state.SetGlobal("Machine")

	state.Register("derived_clock", derivedClock)
}

func registerType(state *lua.State, name string, methods []lua.RegistryFunction) {
	lua.NewMetaTable(state, name)
	state.NewTable()
	lua.SetFunctions(state, methods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func push(state *lua.State, v any, typeName string) int {
	state.PushUserData(v)
	lua.SetMetaTableNamed(state, typeName)
	return 1
}

func checkUint32(state *lua.State, index int) uint32 {
	n := int64(lua.CheckInteger(state, index))
	lua.ArgumentCheck(state, n >= 0 && n <= math.MaxUint32, index, "value out of range")
	return uint32(n)
}

func checkMachine(state *lua.State) *machine.Machine {
	ud := lua.CheckUserData(state, 1, machineTypeName)
	if m, ok := ud.(*machine.Machine); ok && m != nil {
		return m
	}
	lua.ArgumentError(state, 1, "machine expected")
	return nil
}

func checkSlot(state *lua.State) *machine.Slot {
	ud := lua.CheckUserData(state, 1, slotTypeName)
	if s, ok := ud.(*machine.Slot); ok && s != nil {
		return s
	}
	lua.ArgumentError(state, 1, "slot expected")
	return nil
}

func checkOption(state *lua.State) *slot.Option {
	ud := lua.CheckUserData(state, 1, optionTypeName)
	if o, ok := ud.(*slot.Option); ok && o != nil {
		return o
	}
	lua.ArgumentError(state, 1, "option expected")
	return nil
}

func derivedClock(state *lua.State) int {
	mul := checkUint32(state, 1)
	lua.ArgumentCheck(state, mul <= slot.MaxClockRatio, 1, "multiplier out of range")
	div := checkUint32(state, 2)
	lua.ArgumentCheck(state, div <= slot.MaxClockRatio, 2, "divisor out of range")
	state.PushInteger(int(slot.DerivedClock(mul, div)))
	return 1
}

func machineNew(state *lua.State) int {
	name := lua.CheckString(state, 1)
	clock := uint32(0)
	if !state.IsNoneOrNil(2) {
		clock = checkUint32(state, 2)
	}
	return push(state, machine.NewMachine(name, clock), machineTypeName)
}

// returns the slot with the tag, creating it if necessary
func machineSlot(state *lua.State) int {
	m := checkMachine(state)
	tag := lua.CheckString(state, 2)

	s, err := m.Slot(tag)
	if err != nil {
		s, err = m.AddSlot(tag)
		if err != nil {
			lua.Errorf(state, "%s", err.Error())
			return 0
		}
	}

	return push(state, s, slotTypeName)
}

func (ld *loader) option(state *lua.State, f func(*machine.Slot, string, slot.DeviceType) (*slot.Option, error)) int {
	s := checkSlot(state)
	name := lua.CheckString(state, 2)
	typeName := lua.CheckString(state, 3)

	t, err := ld.cat.Lookup(typeName)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}

	opt, err := f(s, name, t)
	if err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}

	return push(state, opt, optionTypeName)
}

func (ld *loader) slotAdd(state *lua.State) int {
	return ld.option(state, func(s *machine.Slot, name string, t slot.DeviceType) (*slot.Option, error) {
		return s.Add(name, t)
	})
}

func (ld *loader) slotAddInternal(state *lua.State) int {
	return ld.option(state, func(s *machine.Slot, name string, t slot.DeviceType) (*slot.Option, error) {
		return s.AddInternal(name, t)
	})
}

func (ld *loader) slotReplace(state *lua.State) int {
	return ld.option(state, func(s *machine.Slot, name string, t slot.DeviceType) (*slot.Option, error) {
		return s.Replace(name, t)
	})
}

func (ld *loader) slotReplaceInternal(state *lua.State) int {
	return ld.option(state, func(s *machine.Slot, name string, t slot.DeviceType) (*slot.Option, error) {
		return s.ReplaceInternal(name, t)
	})
}

func slotRemove(state *lua.State) int {
	s := checkSlot(state)
	if err := s.Remove(lua.CheckString(state, 2)); err != nil {
		lua.Errorf(state, "%s", err.Error())
		return 0
	}
	state.PushValue(1)
	return 1
}

func slotDefault(state *lua.State) int {
	s := checkSlot(state)
	s.SetDefaultOption(lua.CheckString(state, 2))
	state.PushValue(1)
	return 1
}

func slotFixed(state *lua.State) int {
	s := checkSlot(state)
	fixed := true
	if !state.IsNoneOrNil(2) {
		lua.CheckType(state, 2, lua.TypeBoolean)
		fixed = state.ToBoolean(2)
	}
	s.SetFixed(fixed)
	state.PushValue(1)
	return 1
}

func slotDefaultClock(state *lua.State) int {
	s := checkSlot(state)
	s.SetDefaultClock(checkUint32(state, 2))
	state.PushValue(1)
	return 1
}

func (ld *loader) slotSoftware(state *lua.State) int {
	s := checkSlot(state)
	filetype := lua.CheckString(state, 2)
	name := lua.CheckString(state, 3)

	if _, ok := ld.software[s]; !ok {
		ld.software[s] = make(map[string]string)
	}
	ld.software[s][filetype] = name

	state.PushValue(1)
	return 1
}

func optionClock(state *lua.State) int {
	o := checkOption(state)
	o.SetClock(checkUint32(state, 2))
	state.PushValue(1)
	return 1
}

func optionBIOS(state *lua.State) int {
	o := checkOption(state)
	o.SetDefaultBIOS(lua.CheckString(state, 2))
	state.PushValue(1)
	return 1
}

func optionSettings(state *lua.State) int {
	o := checkOption(state)
	lua.CheckType(state, 2, lua.TypeTable)

	settings := make(map[string]string)
	state.PushNil()
	for state.Next(2) {
		// keys and values must both be strings. numbers are converted
		if state.TypeOf(-2) != lua.TypeString {
			lua.Errorf(state, "setting names must be strings")
			return 0
		}
		key, _ := state.ToString(-2)
		value, ok := state.ToString(-1)
		if !ok {
			lua.Errorf(state, "setting (%s) must be a string or a number", key)
			return 0
		}
		settings[key] = value
		state.Pop(1)
	}

	o.SetMachineConfig(machine.Settings(settings))
	state.PushValue(1)
	return 1
}

func optionInput(state *lua.State) int {
	o := checkOption(state)
	d := slot.InputDefault{
		Tag:     lua.CheckString(state, 2),
		Mask:    checkUint32(state, 3),
		Default: checkUint32(state, 4),
	}
	o.SetInputDefaults(append(o.InputDefaults(), d)...)
	state.PushValue(1)
	return 1
}
