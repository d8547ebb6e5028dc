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
	"sort"

	"github.com/jetsetilly/cardslot/curated"
)

// Sentinel errors returned by the Catalogue.
const (
	DuplicateType = "devices: duplicate device type (%s)"
	UnknownType   = "devices: unknown device type (%s)"
	NoShortname   = "devices: device type without a short name"
)

// Catalogue is the list of known device types, keyed by short name.
type Catalogue struct {
	types map[string]*Type
}

// NewCatalogue is the preferred method of initialisation for the Catalogue
// type.
func NewCatalogue() *Catalogue {
	return &Catalogue{
		types: make(map[string]*Type),
	}
}

// Register adds a device type to the catalogue. It is an error to register
// two types with the same short name.
func (cat *Catalogue) Register(t *Type) error {
	if t.shortname == "" {
		return curated.Errorf(NoShortname)
	}
	if _, ok := cat.types[t.shortname]; ok {
		return curated.Errorf(DuplicateType, t.shortname)
	}
	cat.types[t.shortname] = t
	return nil
}

// Lookup returns the device type with the short name or an UnknownType error.
func (cat *Catalogue) Lookup(shortname string) (*Type, error) {
	if t, ok := cat.types[shortname]; ok {
		return t, nil
	}
	return nil, curated.Errorf(UnknownType, shortname)
}

// List returns all device types sorted by short name.
func (cat *Catalogue) List() []*Type {
	l := make([]*Type, 0, len(cat.types))
	for _, t := range cat.types {
		l = append(l, t)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].shortname < l[j].shortname
	})
	return l
}
