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
	"errors"
	"io"
	"os"

	"github.com/jetsetilly/cardslot/curated"
	"github.com/jetsetilly/cardslot/devices"
	"github.com/jetsetilly/cardslot/slot"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned when loading a machine description.
const (
	DescriptionError = "machine: description: %v"
	NoMachineName    = "machine: description: machine has no name"
)

type inputDescription struct {
	Tag     string `yaml:"tag"`
	Mask    uint32 `yaml:"mask"`
	Default uint32 `yaml:"default"`
}

type optionDescription struct {
	Name     string             `yaml:"name"`
	Type     string             `yaml:"type"`
	Internal bool               `yaml:"internal"`
	Clock    *uint32            `yaml:"clock"`
	BIOS     string             `yaml:"bios"`
	Settings map[string]string  `yaml:"settings"`
	Inputs   []inputDescription `yaml:"inputs"`
}

type slotDescription struct {
	Tag      string              `yaml:"tag"`
	Default  string              `yaml:"default"`
	Fixed    bool                `yaml:"fixed"`
	Clock    *uint32             `yaml:"clock"`
	Software map[string]string   `yaml:"software"`
	Options  []optionDescription `yaml:"options"`
	Remove   []string            `yaml:"remove"`
	Replace  []optionDescription `yaml:"replace"`
}

type description struct {
	Name  string            `yaml:"name"`
	Clock uint32            `yaml:"clock"`
	Slots []slotDescription `yaml:"slots"`
}

// LoadFile opens the named file and loads the YAML machine description in it.
func LoadFile(filename string, cat *devices.Catalogue) (*Machine, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DescriptionError, err)
	}
	defer f.Close()
	return LoadYAML(f, cat)
}

// LoadYAML reads a YAML machine description. Device types are found in the
// catalogue by their short name.
//
// The options of each slot are added in the order they appear in the
// description. Replacements are then applied, followed by removals. The
// default option and fixed status of the slot are set last.
func LoadYAML(r io.Reader, cat *devices.Catalogue) (*Machine, error) {
	var desc description

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, curated.Errorf(DescriptionError, "empty description")
		}
		return nil, curated.Errorf(DescriptionError, err)
	}

	if desc.Name == "" {
		return nil, curated.Errorf(NoMachineName)
	}

	m := NewMachine(desc.Name, desc.Clock)

	for _, sd := range desc.Slots {
		s, err := m.AddSlot(sd.Tag)
		if err != nil {
			return nil, err
		}

		if sd.Clock != nil {
			s.SetDefaultClock(*sd.Clock)
		}

		for _, od := range sd.Options {
			if err := addOption(s, od, cat, false); err != nil {
				return nil, err
			}
		}

		for _, od := range sd.Replace {
			if err := addOption(s, od, cat, true); err != nil {
				return nil, err
			}
		}

		for _, name := range sd.Remove {
			if err := s.Remove(name); err != nil {
				return nil, err
			}
		}

		s.SetDefaultOption(sd.Default)
		s.SetFixed(sd.Fixed)

		if len(sd.Software) > 0 {
			s.DefaultCardSoftware = SoftwareDefaults(sd.Software)
		}
	}

	return m, nil
}

func addOption(s *Slot, od optionDescription, cat *devices.Catalogue, replace bool) error {
	t, err := cat.Lookup(od.Type)
	if err != nil {
		return curated.Errorf(DescriptionError, err)
	}

	var opt *slot.Option

	switch {
	case replace && od.Internal:
		opt, err = s.ReplaceInternal(od.Name, t)
	case replace:
		opt, err = s.Replace(od.Name, t)
	case od.Internal:
		opt, err = s.AddInternal(od.Name, t)
	default:
		opt, err = s.Add(od.Name, t)
	}
	if err != nil {
		return err
	}

	if od.Clock != nil {
		opt.SetClock(*od.Clock)
	}

	if od.BIOS != "" {
		opt.SetDefaultBIOS(od.BIOS)
	}

	if len(od.Settings) > 0 {
		opt.SetMachineConfig(Settings(od.Settings))
	}

	if len(od.Inputs) > 0 {
		inp := make([]slot.InputDefault, 0, len(od.Inputs))
		for _, i := range od.Inputs {
			inp = append(inp, slot.InputDefault{Tag: i.Tag, Mask: i.Mask, Default: i.Default})
		}
		opt.SetInputDefaults(inp...)
	}

	return nil
}
